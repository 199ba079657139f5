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

package instructions_test

import (
	"testing"

	"github.com/dmdterm/dmd5620/hardware/cpu/instructions"
	"github.com/dmdterm/dmd5620/test"
)

func TestTableDensity(t *testing.T) {
	defs := instructions.GetDefinitions()

	// table entries must agree with the index they are stored at
	for i, d := range defs.Primary {
		if d == nil {
			continue
		}
		test.ExpectEquality(t, d.Opcode, uint16(i))
		test.ExpectEquality(t, d.OpcodeBytes(), 1)
	}
	for i, d := range defs.Halfword {
		if d == nil {
			continue
		}
		test.ExpectEquality(t, d.Opcode, 0x3000|uint16(i))
		test.ExpectEquality(t, d.OpcodeBytes(), 2)
	}

	test.ExpectSuccess(t, defs.Lookup(instructions.HalfwordPrefix) == nil)
	test.ExpectSuccess(t, defs.Lookup(0x35) == nil)
	test.ExpectSuccess(t, defs.Lookup(0x01) == nil)
	test.ExpectSuccess(t, defs.LookupHalfword(0x00) == nil)

	// tables are shared
	test.ExpectSuccess(t, defs == instructions.GetDefinitions())
}

func TestDefinitions(t *testing.T) {
	defs := instructions.GetDefinitions()

	type entry struct {
		opcode   uint8
		mnemonic string
		operator instructions.Operator
		dataType instructions.DataType
		operands int
	}

	for _, e := range []entry{
		{0x00, "HALT", instructions.Halt, instructions.None, 0},
		{0x04, "MOVAW", instructions.MoveAddress, instructions.Word, 2},
		{0x2c, "CALL", instructions.Call, instructions.Word, 2},
		{0x3e, "CMPH", instructions.Compare, instructions.Half, 2},
		{0x43, "BGEB", instructions.Branch, instructions.Byte, 1},
		{0x7a, "BRH", instructions.Branch, instructions.Half, 1},
		{0x87, "MOVB", instructions.Move, instructions.Byte, 2},
		{0x9c, "ADDW2", instructions.Add, instructions.Word, 2},
		{0xc8, "INSFW", instructions.InsertField, instructions.Word, 4},
		{0xdf, "ADDB3", instructions.Add, instructions.Byte, 3},
		{0xff, "SUBB3", instructions.Subtract, instructions.Byte, 3},
		{0x14, "EXTOP", instructions.Illegal, instructions.Word, 0},
	} {
		d := defs.Lookup(e.opcode)
		if d == nil {
			t.Errorf("%02x: missing definition", e.opcode)
			continue
		}
		test.ExpectEquality(t, d.Mnemonic, e.mnemonic, e.opcode)
		test.ExpectEquality(t, d.Operator, e.operator, e.opcode)
		test.ExpectEquality(t, d.DataType, e.dataType, e.opcode)
		test.ExpectEquality(t, len(d.Operands), e.operands, e.opcode)
	}

	d := defs.LookupHalfword(0x61)
	test.DemandSuccess(t, d != nil)
	test.ExpectEquality(t, d.Mnemonic, "GATE")
	test.ExpectSuccess(t, d.IsHalfword())
}

func TestConditions(t *testing.T) {
	// n, z, v, c
	test.ExpectSuccess(t, instructions.GEQ.Test(false, false, false, false))
	test.ExpectSuccess(t, instructions.GEQ.Test(true, true, false, false))
	test.ExpectFailure(t, instructions.GEQ.Test(true, false, false, false))
	test.ExpectSuccess(t, instructions.GTR.Test(false, false, false, false))
	test.ExpectFailure(t, instructions.GTR.Test(false, true, false, false))
	test.ExpectSuccess(t, instructions.LSS.Test(true, false, false, false))
	test.ExpectFailure(t, instructions.LSS.Test(true, true, false, false))
	test.ExpectSuccess(t, instructions.LEQ.Test(false, true, false, false))
	test.ExpectSuccess(t, instructions.LSSU.Test(false, false, false, true))
	test.ExpectFailure(t, instructions.GTRU.Test(false, false, false, true))
	test.ExpectSuccess(t, instructions.LEQU.Test(false, true, false, false))
	test.ExpectSuccess(t, instructions.VS.Test(false, false, true, false))
	test.ExpectFailure(t, instructions.VC.Test(false, false, true, false))
	test.ExpectSuccess(t, instructions.NEQ.Test(true, false, true, true))
	test.ExpectSuccess(t, instructions.EQL.Test(false, true, false, false))
	test.ExpectSuccess(t, instructions.Always.Test(false, false, false, false))
}

func TestDataTypes(t *testing.T) {
	test.ExpectEquality(t, instructions.SByte.Extend(0x80), 0xffffff80)
	test.ExpectEquality(t, instructions.Byte.Extend(0xff80), 0x80)
	test.ExpectEquality(t, instructions.Half.Extend(0x8000), 0xffff8000)
	test.ExpectEquality(t, instructions.UHalf.Extend(0x18000), 0x8000)
	test.ExpectEquality(t, instructions.Word.Size(), 4)
	test.ExpectSuccess(t, instructions.Half.Signed())
	test.ExpectFailure(t, instructions.Byte.Signed())

	dt, ok := instructions.ExpandedType(7)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, dt, instructions.SByte)
	_, ok = instructions.ExpandedType(1)
	test.ExpectFailure(t, ok)
}
