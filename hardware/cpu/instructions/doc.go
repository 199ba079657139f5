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

// Package instructions defines the instruction set of the WE32100 as used in
// the DMD 5620. Each opcode has a Definition, describing the mnemonic, the
// operation performed, the data type the operation works with and the list
// of operands that follow the opcode in the instruction stream.
//
// Definitions are held in two dense tables of 256 entries, indexed directly by
// the opcode byte. The second table is for the halfword opcodes, which are
// the opcodes prefixed by the 0x30 byte. Unused entries in the tables are
// nil.
//
//	defn := instructions.GetDefinitions().Lookup(opcode)
//
// The tables are created once and are read-only. They are safe to share
// between any number of CPU instances.
package instructions
