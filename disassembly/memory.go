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

package disassembly

import (
	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware/memory/memorymap"
)

// Memory is the interface to memory required by the disassembler. It is
// satisfied by memory.Bus.
type Memory interface {
	Peek8(address uint32) (uint8, error)
}

// Error patterns returned by the memory implementation in this package.
const (
	ErrOutOfRange = "disassembly: address %08x out of range"
)

// romMemory is a minimal implementation of Memory used to disassemble a ROM
// image without creating a machine.
type romMemory struct {
	rom    []uint8
	origin uint32
}

func (mem romMemory) Peek8(address uint32) (uint8, error) {
	if address < mem.origin || address-mem.origin >= uint32(len(mem.rom)) {
		return 0, curated.Errorf(ErrOutOfRange, address)
	}
	return mem.rom[address-mem.origin], nil
}

// FromROM disassembles a ROM image as it would appear at the ROM origin. The
// ROM image must not be larger than the ROM area.
func FromROM(rom []uint8) (*Disassembly, error) {
	if len(rom) == 0 {
		return nil, curated.Errorf(ErrEmpty)
	}
	if len(rom) > int(memorymap.MemtopROM-memorymap.OriginROM)+1 {
		return nil, curated.Errorf(ErrTooLarge, len(rom))
	}
	mem := romMemory{rom: rom, origin: memorymap.OriginROM}
	return FromMemory(mem, memorymap.OriginROM, memorymap.OriginROM+uint32(len(rom))-1)
}
