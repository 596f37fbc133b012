// This file is part of virtualc64.
//
// virtualc64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// virtualc64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with virtualc64.  If not, see <https://www.gnu.org/licenses/>.

// Package machine ties the CPU, VIC-II and shared bus together into the
// single object a host embeds: it owns the fixed per-cycle ordering between
// the two chips and exposes the frame/interrupt/snapshot surface external
// collaborators (cartridges, CIAs, a host renderer) use.
package machine

import (
	"github.com/aiSzzPL77/virtualc64/cpu"
	"github.com/aiSzzPL77/virtualc64/internal/instance"
	"github.com/aiSzzPL77/virtualc64/memory"
	"github.com/aiSzzPL77/virtualc64/vic"
)

// ROMImages carries the three ROM blobs a running C64 needs. A nil Basic or
// Kernal leaves that range reading the RAM beneath it, and a nil CharGen
// reads back as $ff; useful for CPU-only or VIC-only regression tests.
type ROMImages struct {
	Basic   []uint8
	Kernal  []uint8
	CharGen []uint8
}

// Machine owns the CPU, VIC-II, and the bus between them, and drives them in
// the fixed per-cycle order spec.md §2 requires.
type Machine struct {
	instance *instance.Instance
	bus      *memory.Bus
	cpu      *cpu.CPU
	vic      *vic.VIC
}

// New assembles a fully wired machine: bus, CPU, VIC-II register file and
// sequencer, and the VIC's own 14-bit ChipBus view of the same RAM.
func New(inst *instance.Instance, roms ROMImages) *Machine {
	if inst == nil {
		inst = instance.NewInstance()
	}

	bus := memory.NewBus(roms.Basic, roms.Kernal, roms.CharGen)
	vicBus := memory.NewVICBus(bus, bus.CharROM())

	c := cpu.NewCPU(inst, bus)

	m := &Machine{instance: inst, bus: bus, cpu: c}
	m.vic = vic.NewVIC(inst, vicBus, c)
	bus.AttachVIC(m.vic)

	return m
}

// Reset brings CPU and VIC to their documented poweron state and loads the
// CPU's PC from the reset vector.
func (m *Machine) Reset() error {
	m.cpu.Reset()
	m.vic.Reset()
	return m.cpu.LoadResetVector()
}

// Step advances the whole machine by exactly one master clock cycle.
func (m *Machine) Step() error {
	m.vic.Phi1()
	m.cpu.SetRDY(m.vic.RDY())
	if err := m.cpu.Step(); err != nil {
		return err
	}
	m.vic.Phi2()
	return nil
}

// CPU exposes the CPU core, e.g. for attaching CIA/cartridge interrupt
// sources or reading registers from a debugger collaborator.
func (m *Machine) CPU() *cpu.CPU { return m.cpu }

// VIC exposes the VIC-II, e.g. for a host renderer or a debugger inspecting
// raster position.
func (m *Machine) VIC() *vic.VIC { return m.vic }

// Bus exposes the shared memory map, e.g. for attaching CIAs or a
// cartridge, or for a debugger performing non-destructive peeks.
func (m *Machine) Bus() *memory.Bus { return m.bus }

// StableFramebuffer and FrameSize forward the host-facing frame API of
// spec.md §6.
func (m *Machine) StableFramebuffer() []uint32 { return m.vic.StableFramebuffer() }
func (m *Machine) FrameSize() (width, height int) { return m.vic.FrameSize() }

// StateSize, Save and Load give the opaque snapshot surface spec.md §6
// names. They currently forward to the VIC's own snapshot only; CPU
// registers and RAM contents are not yet part of the saved state.
func (m *Machine) StateSize() int {
	return m.vic.StateSize()
}

func (m *Machine) Save(buf []byte) int {
	return m.vic.Save(buf)
}

func (m *Machine) Load(buf []byte) bool {
	return m.vic.Load(buf)
}
