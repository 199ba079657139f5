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

// VectorTable is the address of the table of trap and interrupt vectors. The
// table is 32 words long.
const VectorTable = uint32(0x00000000)

// PCBPointer is the address where the pointer to the initial process control
// block is stored. Used by the CPU during reset.
const PCBPointer = uint32(0x00000080)

// Vector returns the address in the vector table for the vector index.
func Vector(index int) uint32 {
	return VectorTable + uint32(index)*4
}
