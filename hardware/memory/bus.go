// This file is part of dmd5620.
//
// dmd5620 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dmd5620 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dmd5620.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"encoding/binary"
	"strings"

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware/memory/cpubus"
	"github.com/dmdterm/dmd5620/hardware/memory/memorymap"
)

// Device is the interface to the registers of a memory mapped device. Offsets
// are relative to the origin of the device's area.
type Device interface {
	// ReadRegister returns the value of the register. Reading a register may
	// change the state of the device
	ReadRegister(offset uint32) uint8

	// WriteRegister sets the value of the register. A returned error is not
	// a bus fault and is passed back to the caller unchanged
	WriteRegister(offset uint32, data uint8) error

	// PeekRegister returns the value of the register without side effects
	PeekRegister(offset uint32) uint8
}

// Error patterns returned by NewBus().
const (
	ErrROMSize       = "memory: rom image (%d bytes) is larger than the rom area (%d bytes)"
	ErrNoDUART       = "memory: no device for the DUART area"
	ErrAreaAlignment = "memory: %s area must be word aligned and a multiple of four bytes in size"
	ErrMap           = "memory: %v"
)

// Bus is the memory of the DMD 5620 as seen by the CPU. Implements the
// cpubus.Memory and cpubus.DebuggerBus interfaces.
type Bus struct {
	mmap *memorymap.Map

	ROM   *ROM
	RAM   *RAM
	DUART Device

	// the address of the last access made through the cpu bus. useful for
	// debugging
	LastAccessAddress uint32
	LastAccessWrite   bool
}

// NewBus is the preferred method of initialisation for the Bus type. The
// bindings are checked by memorymap.NewMap() and any error from that function
// is returned.
func NewBus(bindings []memorymap.Binding, rom []uint8, ramFill uint8, duart Device) (*Bus, error) {
	if duart == nil {
		return nil, curated.Errorf(ErrNoDUART)
	}

	mmap, err := memorymap.NewMap(bindings)
	if err != nil {
		return nil, curated.Errorf(ErrMap, err)
	}

	for _, a := range []memorymap.Area{memorymap.ROM, memorymap.RAM} {
		b := mmap.Binding(a)
		if b.Origin%4 != 0 || b.Size()%4 != 0 {
			return nil, curated.Errorf(ErrAreaAlignment, a)
		}
	}

	romArea := mmap.Binding(memorymap.ROM)
	if len(rom) > romArea.Size() {
		return nil, curated.Errorf(ErrROMSize, len(rom), romArea.Size())
	}

	ramArea := mmap.Binding(memorymap.RAM)

	bus := &Bus{
		mmap:  mmap,
		ROM:   newROM(romArea.Origin, romArea.Size(), rom),
		RAM:   newRAM(ramArea.Origin, ramArea.Size(), ramFill),
		DUART: duart,
	}

	return bus, nil
}

// Map returns the memory map used by the bus.
func (bus *Bus) Map() *memorymap.Map {
	return bus.mmap
}

func (bus *Bus) String() string {
	s := strings.Builder{}
	s.WriteString(bus.mmap.Summary())
	s.WriteString("\n")
	s.WriteString(bus.RAM.String())
	return s.String()
}

// the lane of a DUART access that reaches the register
func duartLane(offset uint32, width int) uint32 {
	return offset | uint32(width-1)
}

func (bus *Bus) read(address uint32, width int, peek bool) (uint32, error) {
	if address%uint32(width) != 0 {
		return 0, cpubus.NewFault(cpubus.Misaligned, address, cpubus.AccessRead, width)
	}

	area, offset := bus.mmap.MapAddress(address)
	var data []uint8

	switch area {
	case memorymap.ROM:
		data = bus.ROM.memory
	case memorymap.RAM:
		data = bus.RAM.memory
	case memorymap.DUART:
		var v uint8
		if peek {
			v = bus.DUART.PeekRegister(duartLane(offset, width))
		} else {
			v = bus.DUART.ReadRegister(duartLane(offset, width))
		}
		return uint32(v), nil
	default:
		return 0, cpubus.NewFault(cpubus.Unmapped, address, cpubus.AccessRead, width)
	}

	// areas are a multiple of four bytes in size so an aligned access can not
	// straddle the end of an area
	switch width {
	case 1:
		return uint32(data[offset]), nil
	case 2:
		return uint32(binary.BigEndian.Uint16(data[offset:])), nil
	}
	return binary.BigEndian.Uint32(data[offset:]), nil
}

func (bus *Bus) write(address uint32, width int, value uint32) error {
	if address%uint32(width) != 0 {
		return cpubus.NewFault(cpubus.Misaligned, address, cpubus.AccessWrite, width)
	}

	area, offset := bus.mmap.MapAddress(address)

	switch area {
	case memorymap.ROM:
		return cpubus.NewFault(cpubus.ReadOnly, address, cpubus.AccessWrite, width)
	case memorymap.RAM:
		switch width {
		case 1:
			bus.RAM.memory[offset] = uint8(value)
		case 2:
			binary.BigEndian.PutUint16(bus.RAM.memory[offset:], uint16(value))
		default:
			binary.BigEndian.PutUint32(bus.RAM.memory[offset:], value)
		}
		return nil
	case memorymap.DUART:
		return bus.DUART.WriteRegister(duartLane(offset, width), uint8(value))
	}

	return cpubus.NewFault(cpubus.Unmapped, address, cpubus.AccessWrite, width)
}

// Read8 is an implementation of cpubus.Memory.
func (bus *Bus) Read8(address uint32) (uint8, error) {
	bus.LastAccessAddress = address
	bus.LastAccessWrite = false
	v, err := bus.read(address, 1, false)
	return uint8(v), err
}

// Read16 is an implementation of cpubus.Memory.
func (bus *Bus) Read16(address uint32) (uint16, error) {
	bus.LastAccessAddress = address
	bus.LastAccessWrite = false
	v, err := bus.read(address, 2, false)
	return uint16(v), err
}

// Read32 is an implementation of cpubus.Memory.
func (bus *Bus) Read32(address uint32) (uint32, error) {
	bus.LastAccessAddress = address
	bus.LastAccessWrite = false
	return bus.read(address, 4, false)
}

// Write8 is an implementation of cpubus.Memory.
func (bus *Bus) Write8(address uint32, data uint8) error {
	bus.LastAccessAddress = address
	bus.LastAccessWrite = true
	return bus.write(address, 1, uint32(data))
}

// Write16 is an implementation of cpubus.Memory.
func (bus *Bus) Write16(address uint32, data uint16) error {
	bus.LastAccessAddress = address
	bus.LastAccessWrite = true
	return bus.write(address, 2, uint32(data))
}

// Write32 is an implementation of cpubus.Memory.
func (bus *Bus) Write32(address uint32, data uint32) error {
	bus.LastAccessAddress = address
	bus.LastAccessWrite = true
	return bus.write(address, 4, data)
}

// Peek8 is an implementation of cpubus.DebuggerBus.
func (bus *Bus) Peek8(address uint32) (uint8, error) {
	v, err := bus.read(address, 1, true)
	return uint8(v), err
}

// Peek16 is an implementation of cpubus.DebuggerBus.
func (bus *Bus) Peek16(address uint32) (uint16, error) {
	v, err := bus.read(address, 2, true)
	return uint16(v), err
}

// Peek32 is an implementation of cpubus.DebuggerBus.
func (bus *Bus) Peek32(address uint32) (uint32, error) {
	return bus.read(address, 4, true)
}

// Poke8 is an implementation of cpubus.DebuggerBus.
func (bus *Bus) Poke8(address uint32, data uint8) error {
	return bus.write(address, 1, uint32(data))
}

// Poke16 is an implementation of cpubus.DebuggerBus.
func (bus *Bus) Poke16(address uint32, data uint16) error {
	return bus.write(address, 2, uint32(data))
}

// Poke32 is an implementation of cpubus.DebuggerBus.
func (bus *Bus) Poke32(address uint32, data uint32) error {
	return bus.write(address, 4, data)
}
