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

// Package memory implements the memory bus of the DMD 5620. The bus connects
// the CPU to the three areas of memory: the ROM containing the firmware, the
// RAM (which includes the display memory) and the registers of the DUART.
//
//	                        ---- ROM
//	                       |
//	    CPU ---- cpu bus ---- *  ---- RAM
//	                       |
//	                        ---- DUART
//
//	              |
//	              |
//
//	         debugger bus
//
// The asterisk indicates that the address is mapped to an area by the
// memorymap package. Addresses that are not in any area cause a MemoryFault.
// The ROM can not be written to and writing to it also causes a MemoryFault.
//
// The debugger bus (the Peek and Poke functions) uses the same address mapping
// but reading the DUART through the debugger bus has no side effects.
//
// Data on the bus is big-endian. Halfword accesses must be aligned to a two
// byte boundary and word accesses to a four byte boundary, otherwise an
// AlignmentFault is returned.
//
// The DUART registers are byte wide and sit on the odd addresses. A halfword
// or word access to the DUART area reaches the register on the least
// significant byte of the access and the other bytes read as zero.
package memory
