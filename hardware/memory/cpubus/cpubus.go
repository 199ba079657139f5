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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The Bus type in the memory package implements this interface and maps
// the read/write address to the correct memory area, meaning that CPU access
// need not care which part of memory it is accessing.
//
// Data is big-endian. Halfword accesses must be aligned to two bytes and word
// accesses to four bytes. A failed access returns a *Fault.
type Memory interface {
	Read8(address uint32) (uint8, error)
	Read16(address uint32) (uint16, error)
	Read32(address uint32) (uint32, error)
	Write8(address uint32, data uint8) error
	Write16(address uint32, data uint16) error
	Write32(address uint32, data uint32) error
}

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine. Peeking has no side effects on memory mapped
// devices and poking can not change the contents of ROM.
type DebuggerBus interface {
	Peek8(address uint32) (uint8, error)
	Peek16(address uint32) (uint16, error)
	Peek32(address uint32) (uint32, error)
	Poke8(address uint32, data uint8) error
	Poke16(address uint32, data uint16) error
	Poke32(address uint32, data uint32) error
}
