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

import (
	"fmt"
	"sync"
)

// HalfwordPrefix is the opcode byte that introduces a halfword opcode.
const HalfwordPrefix = 0x30

// Definitions is the pair of dense opcode tables.
type Definitions struct {
	// opcodes 0x00 to 0xff. the entry for HalfwordPrefix is nil
	Primary [256]*Definition

	// opcodes 0x3000 to 0x30ff, indexed by the low byte
	Halfword [256]*Definition
}

// Lookup returns the definition for the one byte opcode. Returns nil if the
// opcode is not defined.
func (d *Definitions) Lookup(opcode uint8) *Definition {
	return d.Primary[opcode]
}

// LookupHalfword returns the definition for the second byte of a halfword
// opcode. Returns nil if the opcode is not defined.
func (d *Definitions) LookupHalfword(opcode uint8) *Definition {
	return d.Halfword[opcode]
}

var definitions struct {
	once  sync.Once
	table *Definitions
}

// GetDefinitions returns the opcode tables. The tables are created on first
// use and shared thereafter.
func GetDefinitions() *Definitions {
	definitions.once.Do(func() {
		t, err := newDefinitions()
		if err != nil {
			panic(err)
		}
		definitions.table = t
	})
	return definitions.table
}

func newDefinitions() (*Definitions, error) {
	t := &Definitions{}
	for i := range definitionList {
		d := &definitionList[i]
		var entry **Definition
		if d.IsHalfword() {
			if d.Opcode>>8 != HalfwordPrefix {
				return nil, fmt.Errorf("instructions: bad halfword opcode (%04x)", d.Opcode)
			}
			entry = &t.Halfword[d.Opcode&0xff]
		} else {
			if d.Opcode == HalfwordPrefix {
				return nil, fmt.Errorf("instructions: opcode %02x is reserved for the halfword prefix", d.Opcode)
			}
			entry = &t.Primary[d.Opcode]
		}
		if *entry != nil {
			return nil, fmt.Errorf("instructions: duplicate opcode (%02x)", d.Opcode)
		}
		*entry = d
	}
	return t, nil
}

var (
	none   = []OperandKind{}
	lit    = []OperandKind{Literal}
	src    = []OperandKind{Source}
	dst    = []OperandKind{Destination}
	addr   = []OperandKind{Address}
	srcSrc = []OperandKind{Source, Source}
	srcDst = []OperandKind{Source, Destination}
	adrDst = []OperandKind{Address, Destination}
	adrAdr = []OperandKind{Address, Address}
	three  = []OperandKind{Source, Source, Destination}
	four   = []OperandKind{Source, Source, Source, Destination}
)

// every instruction with a width variant is in groups of four opcodes: +0 is
// the word form, +2 the halfword form and +3 the byte form
func group(opcode uint16, mnemonic string, suffix string, operator Operator, operands []OperandKind, cycles int, effect Category) []Definition {
	return []Definition{
		{Opcode: opcode, Mnemonic: mnemonic + "W" + suffix, Operator: operator, DataType: Word, Operands: operands, Cycles: cycles, Effect: effect},
		{Opcode: opcode + 2, Mnemonic: mnemonic + "H" + suffix, Operator: operator, DataType: Half, Operands: operands, Cycles: cycles, Effect: effect},
		{Opcode: opcode + 3, Mnemonic: mnemonic + "B" + suffix, Operator: operator, DataType: Byte, Operands: operands, Cycles: cycles, Effect: effect},
	}
}

// a conditional return followed by the halfword and byte forms of the
// conditional branch with the same condition
func conditional(opcode uint16, ret string, branch string, cond Condition) []Definition {
	return []Definition{
		{Opcode: opcode, Mnemonic: ret, Operator: Return, DataType: Word, Operands: none, Condition: cond, Cycles: 6, Effect: Subroutine},
		{Opcode: opcode + 2, Mnemonic: branch + "H", Operator: Branch, DataType: Half, Operands: lit, Condition: cond, Cycles: 3, Effect: Flow},
		{Opcode: opcode + 3, Mnemonic: branch + "B", Operator: Branch, DataType: Byte, Operands: lit, Condition: cond, Cycles: 3, Effect: Flow},
	}
}

func illegal(opcode uint16, mnemonic string, operands []OperandKind) Definition {
	return Definition{Opcode: opcode, Mnemonic: mnemonic, Operator: Illegal, DataType: Word, Operands: operands, Cycles: 1, Effect: Interrupt}
}

func join(lists ...[]Definition) []Definition {
	var d []Definition
	for _, l := range lists {
		d = append(d, l...)
	}
	return d
}

var definitionList = join(
	[]Definition{
		{Opcode: 0x00, Mnemonic: "HALT", Operator: Halt, DataType: None, Operands: none, Cycles: 2, Effect: Interrupt},

		// support processor instructions. the DMD has no support processor so
		// these are all illegal but they are decoded for the disassembler
		illegal(0x02, "SPOPRD", []OperandKind{Literal, Source}),
		illegal(0x03, "SPOPD2", []OperandKind{Literal, Source, Destination}),
		illegal(0x06, "SPOPRT", []OperandKind{Literal, Source}),
		illegal(0x07, "SPOPT2", []OperandKind{Literal, Source, Destination}),
		illegal(0x13, "SPOPWD", []OperandKind{Literal, Destination}),
		illegal(0x17, "SPOPWT", []OperandKind{Literal, Destination}),
		illegal(0x22, "SPOPRS", []OperandKind{Literal, Source}),
		illegal(0x23, "SPOPS2", []OperandKind{Literal, Source, Destination}),
		illegal(0x32, "SPOP", lit),
		illegal(0x33, "SPOPWS", []OperandKind{Literal, Destination}),

		// reserved opcode exception
		illegal(0x14, "EXTOP", none),

		{Opcode: 0x04, Mnemonic: "MOVAW", Operator: MoveAddress, DataType: Word, Operands: adrDst, Cycles: 2, Effect: Write},
		{Opcode: 0x08, Mnemonic: "RET", Operator: ReturnFromCall, DataType: Word, Operands: none, Cycles: 8, Effect: Subroutine},
		{Opcode: 0x0c, Mnemonic: "MOVTRW", Operator: MoveAddress, DataType: Word, Operands: adrDst, Cycles: 4, Effect: Write},
		{Opcode: 0x10, Mnemonic: "SAVE", Operator: Save, DataType: Word, Operands: src, Cycles: 10, Effect: Subroutine},
		{Opcode: 0x18, Mnemonic: "RESTORE", Operator: Restore, DataType: Word, Operands: src, Cycles: 10, Effect: Subroutine},
		{Opcode: 0x1c, Mnemonic: "SWAPWI", Operator: Swap, DataType: Word, Operands: dst, Cycles: 6, Effect: Modify},
		{Opcode: 0x1e, Mnemonic: "SWAPHI", Operator: Swap, DataType: Half, Operands: dst, Cycles: 6, Effect: Modify},
		{Opcode: 0x1f, Mnemonic: "SWAPBI", Operator: Swap, DataType: Byte, Operands: dst, Cycles: 6, Effect: Modify},
		{Opcode: 0x20, Mnemonic: "POPW", Operator: Pop, DataType: Word, Operands: dst, Cycles: 3, Effect: Write},
		{Opcode: 0x24, Mnemonic: "JMP", Operator: Jump, DataType: Word, Operands: addr, Cycles: 3, Effect: Flow},
		{Opcode: 0x27, Mnemonic: "CFLUSH", Operator: CacheFlush, DataType: None, Operands: none, Cycles: 2, Effect: Read},
		{Opcode: 0x2c, Mnemonic: "CALL", Operator: Call, DataType: Word, Operands: adrAdr, Cycles: 8, Effect: Subroutine},
		{Opcode: 0x2e, Mnemonic: "BPT", Operator: Breakpoint, DataType: None, Operands: none, Cycles: 2, Effect: Interrupt},
		{Opcode: 0x2f, Mnemonic: "WAIT", Operator: Wait, DataType: None, Operands: none, Cycles: 2, Effect: Interrupt},
		{Opcode: 0x34, Mnemonic: "JSB", Operator: JumpSubroutine, DataType: Word, Operands: addr, Cycles: 5, Effect: Subroutine},
		{Opcode: 0x36, Mnemonic: "BSBH", Operator: BranchSubroutine, DataType: Half, Operands: lit, Cycles: 5, Effect: Subroutine},
		{Opcode: 0x37, Mnemonic: "BSBB", Operator: BranchSubroutine, DataType: Byte, Operands: lit, Cycles: 5, Effect: Subroutine},

		{Opcode: 0x70, Mnemonic: "NOP", Operator: Nop, DataType: None, Operands: none, Cycles: 1, Effect: Read},
		{Opcode: 0x72, Mnemonic: "NOP3", Operator: Nop, DataType: Half, Operands: lit, Cycles: 1, Effect: Read},
		{Opcode: 0x73, Mnemonic: "NOP2", Operator: Nop, DataType: Byte, Operands: lit, Cycles: 1, Effect: Read},
		{Opcode: 0x78, Mnemonic: "RSB", Operator: ReturnSubroutine, DataType: Word, Operands: none, Cycles: 5, Effect: Subroutine},
		{Opcode: 0x7a, Mnemonic: "BRH", Operator: Branch, DataType: Half, Operands: lit, Condition: Always, Cycles: 3, Effect: Flow},
		{Opcode: 0x7b, Mnemonic: "BRB", Operator: Branch, DataType: Byte, Operands: lit, Condition: Always, Cycles: 3, Effect: Flow},

		{Opcode: 0xa0, Mnemonic: "PUSHW", Operator: Push, DataType: Word, Operands: src, Cycles: 3, Effect: Read},
		{Opcode: 0xe0, Mnemonic: "PUSHAW", Operator: PushAddress, DataType: Word, Operands: addr, Cycles: 3, Effect: Read},

		// shifts with only a word form
		{Opcode: 0xc0, Mnemonic: "ALSW3", Operator: ArithLeftShift, DataType: Word, Operands: three, Cycles: 4, Effect: Write},
		{Opcode: 0xd4, Mnemonic: "LRSW3", Operator: LogicalRightShift, DataType: Word, Operands: three, Cycles: 4, Effect: Write},
		{Opcode: 0xd8, Mnemonic: "ROTW", Operator: Rotate, DataType: Word, Operands: three, Cycles: 4, Effect: Write},
	},

	group(0x28, "TST", "", Test, src, 2, Read),
	group(0x38, "BIT", "", Bit, srcSrc, 2, Read),
	group(0x3c, "CMP", "", Compare, srcSrc, 2, Read),

	conditional(0x40, "RGEQ", "BGE", GEQ),
	conditional(0x44, "RGTR", "BG", GTR),
	conditional(0x48, "RLSS", "BL", LSS),
	conditional(0x4c, "RLEQ", "BLE", LEQ),
	conditional(0x50, "RGEQU", "BGEU", GEQU),
	conditional(0x54, "RGTRU", "BGU", GTRU),
	conditional(0x58, "RLSSU", "BLU", LSSU),
	conditional(0x5c, "RLEQU", "BLEU", LEQU),
	conditional(0x60, "RVC", "BVC", VC),
	conditional(0x64, "RNEQU", "BNE", NEQ),
	conditional(0x68, "RVS", "BVS", VS),
	conditional(0x6c, "REQLU", "BE", EQL),
	conditional(0x74, "RNEQ", "BNE", NEQ),
	conditional(0x7c, "REQL", "BE", EQL),

	group(0x80, "CLR", "", Clear, dst, 2, Write),
	group(0x84, "MOV", "", Move, srcDst, 2, Write),
	group(0x88, "MCOM", "", MoveComplement, srcDst, 2, Write),
	group(0x8c, "MNEG", "", MoveNegate, srcDst, 2, Write),
	group(0x90, "INC", "", Increment, dst, 3, Modify),
	group(0x94, "DEC", "", Decrement, dst, 3, Modify),
	group(0x9c, "ADD", "2", Add, srcDst, 3, Modify),
	group(0xa4, "MOD", "2", Modulo, srcDst, 24, Modify),
	group(0xa8, "MUL", "2", Multiply, srcDst, 16, Modify),
	group(0xac, "DIV", "2", Divide, srcDst, 24, Modify),
	group(0xb0, "OR", "2", Or, srcDst, 3, Modify),
	group(0xb4, "XOR", "2", Xor, srcDst, 3, Modify),
	group(0xb8, "AND", "2", And, srcDst, 3, Modify),
	group(0xbc, "SUB", "2", Subtract, srcDst, 3, Modify),

	group(0xc4, "ARS", "3", ArithRightShift, three, 4, Write),
	group(0xc8, "INSF", "", InsertField, four, 6, Modify),
	group(0xcc, "EXTF", "", ExtractField, four, 6, Write),
	group(0xd0, "LLS", "3", LogicalLeftShift, three, 4, Write),

	group(0xdc, "ADD", "3", Add, three, 3, Write),
	group(0xe4, "MOD", "3", Modulo, three, 24, Write),
	group(0xe8, "MUL", "3", Multiply, three, 16, Write),
	group(0xec, "DIV", "3", Divide, three, 24, Write),
	group(0xf0, "OR", "3", Or, three, 3, Write),
	group(0xf4, "XOR", "3", Xor, three, 3, Write),
	group(0xf8, "AND", "3", And, three, 3, Write),
	group(0xfc, "SUB", "3", Subtract, three, 3, Write),

	// halfword opcodes
	[]Definition{
		{Opcode: 0x3009, Mnemonic: "MVERNO", Operator: VersionNumber, DataType: Word, Operands: none, Cycles: 3, Effect: Write},
		{Opcode: 0x300d, Mnemonic: "ENBVJMP", Operator: VirtualJump, DataType: None, Operands: none, Cycles: 3, Effect: Flow},
		{Opcode: 0x3013, Mnemonic: "DISVJMP", Operator: VirtualJump, DataType: None, Operands: none, Cycles: 3, Effect: Flow},
		{Opcode: 0x3019, Mnemonic: "MOVBLW", Operator: BlockMove, DataType: Word, Operands: none, Cycles: 4, Effect: Write},
		{Opcode: 0x301f, Mnemonic: "STREND", Operator: StringEnd, DataType: Byte, Operands: none, Cycles: 4, Effect: Read},
		{Opcode: 0x302f, Mnemonic: "INTACK", Operator: InterruptAck, DataType: Word, Operands: none, Cycles: 3, Effect: Write},
		{Opcode: 0x303f, Mnemonic: "STRCPY", Operator: StringCopy, DataType: Byte, Operands: none, Cycles: 4, Effect: Write},
		{Opcode: 0x3045, Mnemonic: "RETG", Operator: Illegal, DataType: Word, Operands: none, Cycles: 1, Effect: Interrupt},
		{Opcode: 0x3061, Mnemonic: "GATE", Operator: Gate, DataType: Word, Operands: none, Cycles: 4, Effect: Interrupt},
		{Opcode: 0x30ac, Mnemonic: "CALLPS", Operator: Illegal, DataType: Word, Operands: none, Cycles: 1, Effect: Interrupt},
		{Opcode: 0x30c8, Mnemonic: "RETPS", Operator: ReturnFromTrap, DataType: Word, Operands: none, Cycles: 8, Effect: Interrupt},
	},
)
