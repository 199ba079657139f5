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

// Operator is the operation performed by an instruction. Many opcodes share an
// operator, differing only in data type or condition.
type Operator int

// List of operators.
const (
	Illegal Operator = iota

	// data movement
	Halt
	Nop
	Move
	MoveAddress
	MoveComplement
	MoveNegate
	Clear
	Push
	PushAddress
	Pop
	Swap

	// arithmetic and logic
	Add
	Subtract
	Multiply
	Divide
	Modulo
	Or
	Xor
	And
	Increment
	Decrement
	Compare
	Test
	Bit
	ArithLeftShift
	ArithRightShift
	LogicalLeftShift
	LogicalRightShift
	Rotate
	InsertField
	ExtractField

	// program flow
	Branch
	Jump
	JumpSubroutine
	BranchSubroutine
	ReturnSubroutine
	Return
	Call
	ReturnFromCall
	Save
	Restore

	// system
	Breakpoint
	Wait
	CacheFlush
	Gate
	ReturnFromTrap
	InterruptAck
	VersionNumber
	VirtualJump
	BlockMove
	StringEnd
	StringCopy
)

var operatorNames = [...]string{
	Illegal:           "illegal",
	Halt:              "halt",
	Nop:               "nop",
	Move:              "move",
	MoveAddress:       "move address",
	MoveComplement:    "move complement",
	MoveNegate:        "move negate",
	Clear:             "clear",
	Push:              "push",
	PushAddress:       "push address",
	Pop:               "pop",
	Swap:              "swap",
	Add:               "add",
	Subtract:          "subtract",
	Multiply:          "multiply",
	Divide:            "divide",
	Modulo:            "modulo",
	Or:                "or",
	Xor:               "xor",
	And:               "and",
	Increment:         "increment",
	Decrement:         "decrement",
	Compare:           "compare",
	Test:              "test",
	Bit:               "bit",
	ArithLeftShift:    "arithmetic left shift",
	ArithRightShift:   "arithmetic right shift",
	LogicalLeftShift:  "logical left shift",
	LogicalRightShift: "logical right shift",
	Rotate:            "rotate",
	InsertField:       "insert field",
	ExtractField:      "extract field",
	Branch:            "branch",
	Jump:              "jump",
	JumpSubroutine:    "jump subroutine",
	BranchSubroutine:  "branch subroutine",
	ReturnSubroutine:  "return subroutine",
	Return:            "return",
	Call:              "call",
	ReturnFromCall:    "return from call",
	Save:              "save",
	Restore:           "restore",
	Breakpoint:        "breakpoint",
	Wait:              "wait",
	CacheFlush:        "cache flush",
	Gate:              "gate",
	ReturnFromTrap:    "return from trap",
	InterruptAck:      "interrupt acknowledge",
	VersionNumber:     "version number",
	VirtualJump:       "virtual jump",
	BlockMove:         "block move",
	StringEnd:         "string end",
	StringCopy:        "string copy",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return "unknown operator"
	}
	return operatorNames[o]
}
