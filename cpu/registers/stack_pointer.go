package registers

// StackPointer is the 8-bit stack pointer, permanently confined to page one
// ($0100-$01FF). Push decrements after use, pull increments before use.
type StackPointer struct {
	Register
}

// NewStackPointer creates a stack pointer with the given initial value.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: New(val, "SP")}
}

// Address returns the current page-one address the pointer refers to.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.Value())
}

// Push returns the address to write to and moves the pointer down one slot.
func (sp *StackPointer) Push() uint16 {
	addr := sp.Address()
	sp.Load(sp.Value() - 1)
	return addr
}

// Pull moves the pointer up one slot and returns the address to read from.
func (sp *StackPointer) Pull() uint16 {
	sp.Load(sp.Value() + 1)
	return sp.Address()
}
