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

package cpu

import (
	"fmt"
	"strings"

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware/cpu/instructions"
	"github.com/dmdterm/dmd5620/hardware/cpu/registers"
)

// Error patterns returned by Decode().
const (
	ErrFetch             = "cpu: instruction fetch at %08x: %v"
	ErrIllegalOpcode     = "cpu: illegal opcode (%04x) at %08x"
	ErrIllegalDescriptor = "cpu: illegal operand descriptor (%02x) at %08x"
)

// Fetcher reads a single byte from the instruction stream. The CPU uses the
// Read8() function of the bus and the disassembler uses Peek8().
type Fetcher func(address uint32) (uint8, error)

// Mode is the addressing mode of an operand.
type Mode int

// List of valid Mode values.
const (
	// operand embedded in the instruction rather than described by an operand
	// descriptor. used by branches and the NOP2 and NOP3 instructions
	ModeInstructionLiteral Mode = iota

	ModePositiveLiteral
	ModeNegativeLiteral
	ModeWordImmediate
	ModeHalfImmediate
	ModeByteImmediate
	ModeRegister
	ModeRegisterDeferred
	ModeAutoIncrement
	ModeAutoDecrement
	ModeFPOffset
	ModeAPOffset
	ModeAbsolute
	ModeAbsoluteDeferred
	ModeWordDisplacement
	ModeWordDisplacementDeferred
	ModeHalfDisplacement
	ModeHalfDisplacementDeferred
	ModeByteDisplacement
	ModeByteDisplacementDeferred
)

// IsImmediate returns true if the value of the operand is held in the
// instruction stream.
func (m Mode) IsImmediate() bool {
	return m <= ModeByteImmediate
}

// IsDeferred returns true if the address of the operand is read from memory.
func (m Mode) IsDeferred() bool {
	switch m {
	case ModeAbsoluteDeferred, ModeWordDisplacementDeferred, ModeHalfDisplacementDeferred, ModeByteDisplacementDeferred:
		return true
	}
	return false
}

// Operand is a decoded operand.
type Operand struct {
	Kind instructions.OperandKind
	Mode Mode

	// register number for modes that use a register
	Register int

	// the type the operand is accessed with
	Type instructions.DataType

	// the type was set by an expanded operand type descriptor
	Expanded bool

	// the literal, immediate value, displacement or absolute address. values
	// are as read from the instruction stream and are not sign extended
	Embedded uint32
}

// literal value of an operand in one of the immediate modes, sign extended to
// 32 bits
func (op Operand) literal() uint32 {
	switch op.Mode {
	case ModePositiveLiteral, ModeNegativeLiteral, ModeByteImmediate:
		return uint32(int32(int8(op.Embedded)))
	case ModeHalfImmediate:
		return uint32(int32(int16(op.Embedded)))
	case ModeInstructionLiteral:
		switch op.Type.Size() {
		case 1:
			return uint32(int32(int8(op.Embedded)))
		case 2:
			return uint32(int32(int16(op.Embedded)))
		}
	}
	return op.Embedded
}

// displacement of one of the displacement modes, sign extended to 32 bits
func (op Operand) displacement() uint32 {
	switch op.Mode {
	case ModeHalfDisplacement, ModeHalfDisplacementDeferred:
		return uint32(int32(int16(op.Embedded)))
	case ModeByteDisplacement, ModeByteDisplacementDeferred:
		return uint32(int32(int8(op.Embedded)))
	}
	return op.Embedded
}

func (op Operand) String() string {
	s := strings.Builder{}
	if op.Expanded {
		s.WriteString(fmt.Sprintf("{%s}", op.Type))
	}

	reg := registers.Name(op.Register)

	switch op.Mode {
	case ModeInstructionLiteral:
		s.WriteString(fmt.Sprintf("%d", int32(op.literal())))
	case ModePositiveLiteral, ModeNegativeLiteral, ModeByteImmediate, ModeHalfImmediate:
		s.WriteString(fmt.Sprintf("&%d", int32(op.literal())))
	case ModeWordImmediate:
		s.WriteString(fmt.Sprintf("&0x%x", op.Embedded))
	case ModeRegister:
		s.WriteString(fmt.Sprintf("%%%s", reg))
	case ModeRegisterDeferred:
		s.WriteString(fmt.Sprintf("(%%%s)", reg))
	case ModeAutoIncrement:
		s.WriteString(fmt.Sprintf("(%%%s)+", reg))
	case ModeAutoDecrement:
		s.WriteString(fmt.Sprintf("-(%%%s)", reg))
	case ModeFPOffset, ModeAPOffset:
		s.WriteString(fmt.Sprintf("%d(%%%s)", op.Embedded, reg))
	case ModeAbsolute:
		s.WriteString(fmt.Sprintf("$0x%x", op.Embedded))
	case ModeAbsoluteDeferred:
		s.WriteString(fmt.Sprintf("*$0x%x", op.Embedded))
	case ModeWordDisplacement, ModeHalfDisplacement, ModeByteDisplacement:
		s.WriteString(fmt.Sprintf("%d(%%%s)", int32(op.displacement()), reg))
	case ModeWordDisplacementDeferred, ModeHalfDisplacementDeferred, ModeByteDisplacementDeferred:
		s.WriteString(fmt.Sprintf("*%d(%%%s)", int32(op.displacement()), reg))
	}

	return s.String()
}

// Instruction is a decoded instruction.
type Instruction struct {
	Address uint32

	// nil if the opcode is not recognised
	Defn *instructions.Definition

	// the opcode as read from the instruction stream. halfword opcodes
	// include the prefix byte
	Opcode uint16

	Operands []Operand

	// number of bytes in the instruction stream
	Length int
}

// Next returns the address of the following instruction.
func (in Instruction) Next() uint32 {
	return in.Address + uint32(in.Length)
}

// Target returns the destination of a branch instruction. Branch targets are
// relative to the address of the opcode. Returns false if the instruction is
// not a branch.
func (in Instruction) Target() (uint32, bool) {
	if in.Defn == nil || len(in.Operands) != 1 {
		return 0, false
	}
	if in.Defn.Operator != instructions.Branch && in.Defn.Operator != instructions.BranchSubroutine {
		return 0, false
	}
	return in.Address + in.Operands[0].literal(), true
}

func (in Instruction) String() string {
	if in.Defn == nil {
		return fmt.Sprintf("??? (%02x)", in.Opcode)
	}

	if target, ok := in.Target(); ok {
		return fmt.Sprintf("%s 0x%08x", in.Defn.Mnemonic, target)
	}

	s := strings.Builder{}
	s.WriteString(in.Defn.Mnemonic)
	for i, op := range in.Operands {
		if i == 0 {
			s.WriteString(" ")
		} else {
			s.WriteString(",")
		}
		s.WriteString(op.String())
	}
	return s.String()
}

// decoder reads from the instruction stream, keeping count of the number of
// bytes read
type decoder struct {
	fetch   Fetcher
	address uint32
	n       int
}

func (d *decoder) read8() (uint8, error) {
	v, err := d.fetch(d.address)
	if err != nil {
		return 0, curated.Errorf(ErrFetch, d.address, err)
	}
	d.address++
	d.n++
	return v, nil
}

// immediates and displacements are little-endian and need not be aligned
func (d *decoder) read(size int) (uint32, error) {
	var v uint32
	for i := 0; i < size; i++ {
		b, err := d.read8()
		if err != nil {
			return 0, err
		}
		v |= uint32(b) << (8 * i)
	}
	return v, nil
}

// Decode the instruction at the address. The definitions argument can be nil,
// in which case the table returned by instructions.GetDefinitions() is used.
//
// If the instruction cannot be decoded the returned Instruction contains as
// much information as was decoded before the error. Errors are one of the
// patterns ErrFetch, ErrIllegalOpcode or ErrIllegalDescriptor. An ErrFetch
// error wraps the error returned by the Fetcher.
func Decode(fetch Fetcher, address uint32, definitions *instructions.Definitions) (Instruction, error) {
	if definitions == nil {
		definitions = instructions.GetDefinitions()
	}

	d := decoder{fetch: fetch, address: address}
	in := Instruction{Address: address}

	err := d.decode(&in, definitions)
	in.Length = d.n

	return in, err
}

func (d *decoder) decode(in *Instruction, definitions *instructions.Definitions) error {
	b, err := d.read8()
	if err != nil {
		return err
	}
	in.Opcode = uint16(b)

	if b == instructions.HalfwordPrefix {
		b, err = d.read8()
		if err != nil {
			return err
		}
		in.Opcode = instructions.HalfwordPrefix<<8 | uint16(b)
		in.Defn = definitions.LookupHalfword(b)
	} else {
		in.Defn = definitions.Lookup(b)
	}

	if in.Defn == nil {
		return curated.Errorf(ErrIllegalOpcode, in.Opcode, in.Address)
	}

	// the expanded type stays in force for the remaining operands
	etype := instructions.None

	in.Operands = make([]Operand, 0, len(in.Defn.Operands))
	for _, kind := range in.Defn.Operands {
		var op Operand
		if kind == instructions.Literal {
			op, err = d.instructionLiteral(in.Defn.DataType)
		} else {
			op, err = d.descriptor(kind, in.Defn.DataType, etype, in.Address, false)
		}
		if err != nil {
			return err
		}
		if op.Expanded {
			etype = op.Type
		}
		in.Operands = append(in.Operands, op)
	}

	return nil
}

func (d *decoder) instructionLiteral(dt instructions.DataType) (Operand, error) {
	op := Operand{
		Kind: instructions.Literal,
		Mode: ModeInstructionLiteral,
		Type: dt,
	}
	v, err := d.read(dt.Size())
	op.Embedded = v
	return op, err
}

// the nested argument is true if the descriptor follows an expanded type
// descriptor
func (d *decoder) descriptor(kind instructions.OperandKind, dt instructions.DataType, etype instructions.DataType, address uint32, nested bool) (Operand, error) {
	op := Operand{Kind: kind, Type: dt}
	if etype != instructions.None {
		op.Type = etype
		op.Expanded = true
	}

	b, err := d.read8()
	if err != nil {
		return op, err
	}

	illegal := func() (Operand, error) {
		return op, curated.Errorf(ErrIllegalDescriptor, b, address)
	}

	mode := b >> 4
	op.Register = int(b & 0x0f)

	switch mode {
	case 0x0, 0x1, 0x2, 0x3:
		op.Mode = ModePositiveLiteral
		op.Embedded = uint32(b)
	case 0xf:
		op.Mode = ModeNegativeLiteral
		op.Embedded = uint32(b)
	case 0x4:
		if op.Register == registers.PC {
			op.Mode = ModeWordImmediate
			op.Embedded, err = d.read(4)
		} else {
			op.Mode = ModeRegister
		}
	case 0x5:
		switch op.Register {
		case registers.PC:
			op.Mode = ModeHalfImmediate
			op.Embedded, err = d.read(2)
		case registers.PSW:
			return illegal()
		default:
			op.Mode = ModeRegisterDeferred
		}
	case 0x6:
		if op.Register == registers.PC {
			op.Mode = ModeByteImmediate
			op.Embedded, err = d.read(1)
		} else {
			op.Mode = ModeFPOffset
			op.Embedded = uint32(op.Register)
			op.Register = registers.FP
		}
	case 0x7:
		if op.Register == registers.PC {
			op.Mode = ModeAbsolute
			op.Embedded, err = d.read(4)
		} else {
			op.Mode = ModeAPOffset
			op.Embedded = uint32(op.Register)
			op.Register = registers.AP
		}
	case 0x8, 0x9, 0xa, 0xb, 0xc, 0xd:
		if op.Register == registers.PSW {
			return illegal()
		}
		size := 4
		switch mode {
		case 0x8:
			op.Mode = ModeWordDisplacement
		case 0x9:
			op.Mode = ModeWordDisplacementDeferred
		case 0xa:
			op.Mode = ModeHalfDisplacement
			size = 2
		case 0xb:
			op.Mode = ModeHalfDisplacementDeferred
			size = 2
		case 0xc:
			op.Mode = ModeByteDisplacement
			size = 1
		case 0xd:
			op.Mode = ModeByteDisplacementDeferred
			size = 1
		}
		op.Embedded, err = d.read(size)
	case 0xe:
		switch op.Register {
		case registers.PC:
			op.Mode = ModeAbsoluteDeferred
			op.Embedded, err = d.read(4)
		case 0x1, 0x5:
			if op.Register == 0x1 {
				op.Mode = ModeAutoIncrement
			} else {
				op.Mode = ModeAutoDecrement
			}
			var r uint8
			r, err = d.read8()
			if err != nil {
				return op, err
			}
			op.Register = int(r & 0x0f)
			if op.Register == registers.PC || op.Register == registers.PSW {
				return illegal()
			}
		default:
			// an expanded type cannot follow another expanded type
			if nested {
				return illegal()
			}
			t, ok := instructions.ExpandedType(uint8(op.Register))
			if !ok {
				return illegal()
			}
			return d.descriptor(kind, dt, t, address, true)
		}
	}

	if err != nil {
		return op, err
	}

	// literals and immediates can only be read. registers have no address
	switch kind {
	case instructions.Destination:
		if op.Mode.IsImmediate() {
			return illegal()
		}
	case instructions.Address:
		if op.Mode.IsImmediate() || op.Mode == ModeRegister {
			return illegal()
		}
	}

	return op, nil
}
