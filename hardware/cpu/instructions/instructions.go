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

import "fmt"

// DataType describes the width and signedness of an operand. The DataType of
// an instruction is the type used when no expanded type has been specified
// for the operand.
type DataType int

// List of valid data types.
const (
	None DataType = iota
	Byte          // unsigned 8 bit
	SByte         // signed 8 bit
	Half          // signed 16 bit
	UHalf         // unsigned 16 bit
	Word          // signed 32 bit
	UWord         // unsigned 32 bit
)

func (t DataType) String() string {
	switch t {
	case Byte:
		return "byte"
	case SByte:
		return "sbyte"
	case Half:
		return "half"
	case UHalf:
		return "uhalf"
	case Word:
		return "word"
	case UWord:
		return "uword"
	}
	return "none"
}

// Size returns the number of bytes in the data type.
func (t DataType) Size() int {
	switch t {
	case Byte, SByte:
		return 1
	case Half, UHalf:
		return 2
	case Word, UWord:
		return 4
	}
	return 0
}

// Bits returns the number of bits in the data type.
func (t DataType) Bits() int {
	return t.Size() * 8
}

// Signed returns true if the data type is sign extended when read.
func (t DataType) Signed() bool {
	return t == SByte || t == Half || t == Word
}

// Mask returns the bit mask for the width of the data type.
func (t DataType) Mask() uint32 {
	switch t.Size() {
	case 1:
		return 0xff
	case 2:
		return 0xffff
	}
	return 0xffffffff
}

// SignBit returns the bit that indicates a negative number for the width of
// the data type.
func (t DataType) SignBit() uint32 {
	switch t.Size() {
	case 1:
		return 0x80
	case 2:
		return 0x8000
	}
	return 0x80000000
}

// Extend returns the value extended to 32 bits according to the width and
// signedness of the data type.
func (t DataType) Extend(v uint32) uint32 {
	switch t {
	case Byte:
		return v & 0xff
	case SByte:
		return uint32(int32(int8(v)))
	case Half:
		return uint32(int32(int16(v)))
	case UHalf:
		return v & 0xffff
	}
	return v
}

// ExpandedType returns the data type selected by the register field of an
// expanded-type operand descriptor (descriptor mode 0xe). Returns false if the
// field does not select a data type.
func ExpandedType(field uint8) (DataType, bool) {
	switch field {
	case 0:
		return UWord, true
	case 2:
		return UHalf, true
	case 3:
		return Byte, true
	case 4:
		return Word, true
	case 6:
		return Half, true
	case 7:
		return SByte, true
	}
	return None, false
}

// OperandKind describes how an operand of an instruction is used.
type OperandKind int

// List of valid operand kinds.
const (
	// a branch displacement, embedded in the instruction stream without an
	// operand descriptor. The size of the displacement is the DataType of the
	// instruction
	Literal OperandKind = iota

	// a value read by the instruction
	Source

	// a location written to by the instruction
	Destination

	// the effective address of the operand is used rather than the value at
	// that address
	Address
)

func (k OperandKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Source:
		return "source"
	case Destination:
		return "destination"
	case Address:
		return "address"
	}
	return "unknown operand kind"
}

// Condition is the test applied to the flags by a conditional branch or
// return instruction.
type Condition int

// List of valid conditions.
const (
	Always Condition = iota
	GEQ
	GTR
	LSS
	LEQ
	GEQU
	GTRU
	LSSU
	LEQU
	VC
	VS
	NEQ
	EQL
)

func (c Condition) String() string {
	switch c {
	case Always:
		return ""
	case GEQ:
		return "GEQ"
	case GTR:
		return "GTR"
	case LSS:
		return "LSS"
	case LEQ:
		return "LEQ"
	case GEQU:
		return "GEQU"
	case GTRU:
		return "GTRU"
	case LSSU:
		return "LSSU"
	case LEQU:
		return "LEQU"
	case VC:
		return "VC"
	case VS:
		return "VS"
	case NEQ:
		return "NEQ"
	case EQL:
		return "EQL"
	}
	return "unknown condition"
}

// Test the condition against the flag values.
func (c Condition) Test(n, z, v, carry bool) bool {
	switch c {
	case Always:
		return true
	case GEQ:
		return !n || z
	case GTR:
		return !n && !z
	case LSS:
		return n && !z
	case LEQ:
		return n || z
	case GEQU:
		return !carry || z
	case GTRU:
		return !carry && !z
	case LSSU:
		return carry
	case LEQU:
		return carry || z
	case VC:
		return !v
	case VS:
		return v
	case NEQ:
		return !z
	case EQL:
		return z
	}
	return false
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	// halfword opcodes include the 0x30 prefix in the high byte
	Opcode    uint16
	Mnemonic  string
	Operator  Operator
	DataType  DataType
	Operands  []OperandKind
	Condition Condition

	// base number of cycles. the CPU adds cycles for memory operands
	Cycles int

	Effect Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s (%d cycles) [%s %s operands=%d]", defn.Opcode, defn.Mnemonic, defn.Cycles, defn.DataType, defn.Effect, len(defn.Operands))
}

// IsHalfword returns true if the opcode is one of the halfword opcodes.
func (defn Definition) IsHalfword() bool {
	return defn.Opcode > 0xff
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.Operator == Branch
}

// OpcodeBytes returns the number of bytes used by the opcode.
func (defn Definition) OpcodeBytes() int {
	if defn.IsHalfword() {
		return 2
	}
	return 1
}
