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

// Package disassembly produces a listing of WE32100 code held in memory.
//
// The disassembly is a linear sweep. Decoding starts at the origin and each
// decoded instruction is followed by the instruction at the next address.
// Bytes that do not decode are listed as data and the sweep moves on by one
// byte. This means that data embedded in code can throw the sweep off for an
// instruction or two, but the sweep will nearly always resynchronise.
//
// Decoding is done with the cpu.Decode() function, the same function used by
// the CPU itself, so the disassembly always agrees with what the CPU would
// execute. Memory is read with the Peek8() function of the memory bus, which
// means disassembling a live machine has no side effects.
//
// The targets of branch instructions are given labels. The labels are used in
// place of the target address in the listing when the target is inside the
// disassembled range.
package disassembly
