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

package instructions

// Category of an instruction describes its effect on the program counter and
// on its operands.
type Category int

// List of valid categories.
const (
	// operands are only read. compare and test instructions
	Read Category = iota

	// the destination operand is written without being read
	Write

	// the destination operand is read and then written
	Modify

	// the program counter is changed by something other than the length of
	// the instruction
	Flow

	// as Flow but the instruction also saves or restores a frame on the stack
	Subroutine

	// the instruction raises a trap or changes the execution state of the CPU
	Interrupt
)

var categoryNames = [...]string{
	Read:       "read",
	Write:      "write",
	Modify:     "modify",
	Flow:       "flow",
	Subroutine: "subroutine",
	Interrupt:  "interrupt",
}

func (e Category) String() string {
	if e < 0 || int(e) >= len(categoryNames) {
		return "unknown category"
	}
	return categoryNames[e]
}
