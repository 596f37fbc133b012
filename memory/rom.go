package memory

// ROM is a fixed, read-only memory area (BASIC, KERNAL, or character ROM).
// Writes are silently discarded, matching real ROM behaviour on this bus
// (the write still completes a bus cycle, it just has no effect).
type ROM struct {
	AreaInfo
	memory []uint8
}

// NewROM creates a ROM area covering [origin, origin+len(image)-1] and
// backed by image. image is copied so the caller's slice may be reused.
func NewROM(label string, origin uint16, image []uint8) *ROM {
	memory := make([]uint8, len(image))
	copy(memory, image)
	return &ROM{
		AreaInfo: NewAreaInfo(label, origin, origin+uint16(len(image))-1),
		memory:   memory,
	}
}

// Read returns the byte at address relative to the ROM's origin.
func (r *ROM) Read(address uint16) (uint8, error) {
	return r.memory[address-r.Origin()], nil
}

// Write is a no-op; ROM cannot be modified through the bus.
func (r *ROM) Write(address uint16, data uint8) error {
	return nil
}

// Peek implements Area without side effects.
func (r *ROM) Peek(address uint16) (uint8, error) {
	return r.memory[address-r.Origin()], nil
}
