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
	"math/bits"

	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
	"github.com/dmdterm/dmd5620/hardware/cpu/instructions"
	"github.com/dmdterm/dmd5620/hardware/cpu/registers"
)

// operators that can raise the integer overflow trap
func arithmetic(op instructions.Operator) bool {
	switch op {
	case instructions.Add, instructions.Subtract, instructions.Multiply,
		instructions.Divide, instructions.Modulo, instructions.Increment,
		instructions.Decrement, instructions.MoveNegate, instructions.ArithLeftShift:
		return true
	}
	return false
}

// value sign extended from the width of the type, whether or not the type is
// signed
func signed(v uint32, t instructions.DataType) int64 {
	s := 32 - uint(t.Bits())
	return int64(int32(v<<s) >> s)
}

func (mc *CPU) setFlags(r uint32, t instructions.DataType, v bool, c bool) {
	psw := mc.R.Status()
	psw.SetFlags(r&t.SignBit() != 0, r&t.Mask() == 0, v, c)
	mc.R.SetStatus(psw)
}

// flags for results that cannot overflow or carry
func (mc *CPU) logicFlags(r uint32, t instructions.DataType) {
	mc.setFlags(r, t, false, false)
}

func add(a, b uint32, t instructions.DataType) (r uint32, v bool, c bool) {
	m := t.Mask()
	a &= m
	b &= m
	r = (a + b) & m
	c = uint64(a)+uint64(b) > uint64(m)
	v = (a^r)&(b^r)&t.SignBit() != 0
	return r, v, c
}

// b - a
func sub(b, a uint32, t instructions.DataType) (r uint32, v bool, c bool) {
	m := t.Mask()
	a &= m
	b &= m
	r = (b - a) & m
	c = b < a
	v = (b^a)&(b^r)&t.SignBit() != 0
	return r, v, c
}

// the operands of a two or three operand instruction. for two operands the
// second operand is also the destination
func (mc *CPU) operands(locs []location) (a uint32, b uint32, dst location, err error) {
	a, err = mc.load(locs[0])
	if err != nil {
		return
	}
	b, err = mc.load(locs[1])
	if err != nil {
		return
	}
	dst = locs[len(locs)-1]
	return
}

// operate executes instructions that do not change the flow of the program
func (mc *CPU) operate(defn *instructions.Definition, locs []location) error {
	switch defn.Operator {
	case instructions.Nop, instructions.CacheFlush:
		return nil

	case instructions.Move, instructions.MoveComplement, instructions.MoveNegate:
		a, err := mc.load(locs[0])
		if err != nil {
			return err
		}
		dst := locs[1]
		t := dst.op.Type
		switch defn.Operator {
		case instructions.MoveComplement:
			a = ^a
			mc.logicFlags(a, t)
		case instructions.MoveNegate:
			var v, c bool
			a, v, c = sub(0, a, t)
			mc.setFlags(a, t, v, c)
		default:
			mc.logicFlags(a, t)
		}
		return mc.store(dst, a)

	case instructions.MoveAddress:
		dst := locs[1]
		mc.logicFlags(locs[0].address, dst.op.Type)
		return mc.store(dst, locs[0].address)

	case instructions.Clear:
		mc.logicFlags(0, locs[0].op.Type)
		return mc.store(locs[0], 0)

	case instructions.Push, instructions.PushAddress:
		v := locs[0].address
		if defn.Operator == instructions.Push {
			var err error
			v, err = mc.load(locs[0])
			if err != nil {
				return err
			}
		}
		if err := mc.write32(mc.R[registers.SP], v); err != nil {
			return err
		}
		mc.R[registers.SP] += 4
		mc.logicFlags(v, instructions.Word)
		return nil

	case instructions.Pop:
		v, err := mc.read32(mc.R[registers.SP] - 4)
		if err != nil {
			return err
		}
		mc.R[registers.SP] -= 4
		mc.logicFlags(v, locs[0].op.Type)
		return mc.store(locs[0], v)

	case instructions.Swap:
		dst := locs[0]
		v, err := mc.load(dst)
		if err != nil {
			return err
		}
		mc.logicFlags(v, dst.op.Type)
		if err := mc.store(dst, mc.R[0]); err != nil {
			return err
		}
		mc.R[0] = v
		return nil

	case instructions.Increment, instructions.Decrement:
		dst := locs[0]
		t := dst.op.Type
		b, err := mc.load(dst)
		if err != nil {
			return err
		}
		var r uint32
		var v, c bool
		if defn.Operator == instructions.Increment {
			r, v, c = add(1, b, t)
		} else {
			r, v, c = sub(b, 1, t)
		}
		mc.setFlags(r, t, v, c)
		return mc.store(dst, r)

	case instructions.Test:
		a, err := mc.load(locs[0])
		if err != nil {
			return err
		}
		mc.logicFlags(a, locs[0].op.Type)
		return nil

	case instructions.Compare:
		a, b, dst, err := mc.operands(locs)
		if err != nil {
			return err
		}
		t := dst.op.Type
		m := t.Mask()
		psw := mc.R.Status()
		psw.SetFlags(signed(b, t) < signed(a, t), b&m == a&m, false, b&m < a&m)
		mc.R.SetStatus(psw)
		return nil

	case instructions.Bit:
		a, b, dst, err := mc.operands(locs)
		if err != nil {
			return err
		}
		mc.logicFlags(a&b, dst.op.Type)
		return nil

	case instructions.Add, instructions.Subtract:
		a, b, dst, err := mc.operands(locs)
		if err != nil {
			return err
		}
		t := dst.op.Type
		var r uint32
		var v, c bool
		if defn.Operator == instructions.Add {
			r, v, c = add(a, b, t)
		} else {
			r, v, c = sub(b, a, t)
		}
		mc.setFlags(r, t, v, c)
		return mc.store(dst, r)

	case instructions.Multiply:
		a, b, dst, err := mc.operands(locs)
		if err != nil {
			return err
		}
		t := dst.op.Type
		m := t.Mask()
		var r uint32
		var v bool
		if t.Signed() {
			p := signed(a, t) * signed(b, t)
			r = uint32(p) & m
			v = p != signed(r, t)
		} else {
			p := uint64(a&m) * uint64(b&m)
			r = uint32(p) & m
			v = p > uint64(m)
		}
		mc.setFlags(r, t, v, false)
		return mc.store(dst, r)

	case instructions.Divide, instructions.Modulo:
		a, b, dst, err := mc.operands(locs)
		if err != nil {
			return err
		}
		t := dst.op.Type
		m := t.Mask()
		if a&m == 0 {
			return trapped{cause: execution.ArithmeticTrap}
		}
		var r uint32
		var v bool
		if t.Signed() {
			var q int64
			if defn.Operator == instructions.Divide {
				q = signed(b, t) / signed(a, t)
			} else {
				q = signed(b, t) % signed(a, t)
			}
			r = uint32(q) & m

			// the most negative number divided by -1
			v = q != signed(r, t)
		} else {
			if defn.Operator == instructions.Divide {
				r = (b & m) / (a & m)
			} else {
				r = (b & m) % (a & m)
			}
		}
		mc.setFlags(r, t, v, false)
		return mc.store(dst, r)

	case instructions.Or, instructions.Xor, instructions.And:
		a, b, dst, err := mc.operands(locs)
		if err != nil {
			return err
		}
		var r uint32
		switch defn.Operator {
		case instructions.Or:
			r = b | a
		case instructions.Xor:
			r = b ^ a
		default:
			r = b & a
		}
		mc.logicFlags(r, dst.op.Type)
		return mc.store(dst, r)

	case instructions.ArithLeftShift, instructions.ArithRightShift,
		instructions.LogicalLeftShift, instructions.LogicalRightShift, instructions.Rotate:
		return mc.shift(defn.Operator, locs)

	case instructions.InsertField, instructions.ExtractField:
		return mc.field(defn.Operator, locs)

	case instructions.VersionNumber:
		mc.R[0] = Version
		return nil

	case instructions.InterruptAck:
		mc.R[0] = uint32(mc.pendingLevel())
		return nil

	case instructions.BlockMove, instructions.StringEnd, instructions.StringCopy:
		return mc.block(defn.Operator)
	}

	return trapped{cause: execution.IllegalInstruction}
}

// shift and rotate instructions. the first operand is the count
func (mc *CPU) shift(op instructions.Operator, locs []location) error {
	count, b, dst, err := mc.operands(locs)
	if err != nil {
		return err
	}
	t := dst.op.Type
	m := t.Mask()

	if op == instructions.Rotate {
		r := bits.RotateLeft32(b, -int(count&31))
		mc.logicFlags(r, t)
		return mc.store(dst, r)
	}

	if count >= 32 {
		return trapped{cause: execution.ArithmeticTrap}
	}

	var r uint32
	var v bool
	switch op {
	case instructions.ArithLeftShift:
		p := signed(b, t) << count
		r = uint32(p) & m
		v = p != signed(r, t)
	case instructions.ArithRightShift:
		r = uint32(signed(b, t)>>count) & m
	case instructions.LogicalLeftShift:
		r = (b << count) & m
	case instructions.LogicalRightShift:
		r = (b & m) >> count
	}

	mc.setFlags(r, t, v, false)
	return mc.store(dst, r)
}

// INSF and EXTF. the first two operands are the width (less one) and offset of
// the field. both are taken modulo 32
func (mc *CPU) field(op instructions.Operator, locs []location) error {
	var vals [3]uint32
	for i := range vals {
		var err error
		vals[i], err = mc.load(locs[i])
		if err != nil {
			return err
		}
	}
	dst := locs[3]
	t := dst.op.Type

	width := uint(vals[0]&31) + 1
	offset := uint(vals[1] & 31)
	mask := (uint64(1) << width) - 1

	var r uint32
	if op == instructions.ExtractField {
		r = uint32((uint64(vals[2]) >> offset) & mask)
	} else {
		d, err := mc.load(dst)
		if err != nil {
			return err
		}
		fm := uint32(mask << offset)
		r = (d &^ fm) | (uint32(uint64(vals[2])<<offset) & fm)
	}

	r &= t.Mask()
	mc.logicFlags(r, t)
	return mc.store(dst, r)
}

// MOVBLW, STREND and STRCPY operate on r0, r1 and r2
func (mc *CPU) block(op instructions.Operator) error {
	switch op {
	case instructions.BlockMove:
		for mc.R[2] != 0 {
			v, err := mc.read32(mc.R[0])
			if err != nil {
				return err
			}
			if err := mc.write32(mc.R[1], v); err != nil {
				return err
			}
			mc.R[0] += 4
			mc.R[1] += 4
			mc.R[2]--
			mc.LastResult.Cycles += 2
		}

	case instructions.StringEnd:
		for {
			v, err := mc.read(mc.R[0], 1)
			if err != nil {
				return err
			}
			if v == 0 {
				break
			}
			mc.R[0]++
			mc.LastResult.Cycles++
		}

	case instructions.StringCopy:
		for {
			v, err := mc.read(mc.R[0], 1)
			if err != nil {
				return err
			}
			if err := mc.write(mc.R[1], 1, v); err != nil {
				return err
			}
			if v == 0 {
				break
			}
			mc.R[0]++
			mc.R[1]++
			mc.LastResult.Cycles += 2
		}
	}

	return nil
}
