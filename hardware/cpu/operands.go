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
	"errors"

	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
	"github.com/dmdterm/dmd5620/hardware/memory/cpubus"
)

// the location of a resolved operand
type location struct {
	op Operand

	// register number. -1 if the operand is not a register
	reg int

	// effective address for memory operands
	address uint32

	// value of literal and immediate operands
	immediate bool
	value     uint32
}

// the number of cycles added to an instruction by an operand
func operandCycles(op Operand) int {
	switch {
	case op.Mode == ModeInstructionLiteral, op.Mode == ModePositiveLiteral, op.Mode == ModeNegativeLiteral:
		return 0
	case op.Mode.IsImmediate():
		return 1
	case op.Mode == ModeRegister:
		return 0
	case op.Mode.IsDeferred():
		return 4
	}
	return 2
}

// convert bus faults into traps. other errors are returned unchanged
func busError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cpubus.AlignmentFault):
		return trapped{cause: execution.AlignmentFault, err: err}
	case errors.Is(err, cpubus.MemoryFault):
		return trapped{cause: execution.MemoryFault, err: err}
	}
	return err
}

// read data of size bytes from memory
func (mc *CPU) read(address uint32, size int) (uint32, error) {
	var v uint32
	var err error
	switch size {
	case 1:
		var b uint8
		b, err = mc.mem.Read8(address)
		v = uint32(b)
	case 2:
		var h uint16
		h, err = mc.mem.Read16(address)
		v = uint32(h)
	default:
		v, err = mc.mem.Read32(address)
	}
	return v, busError(err)
}

// write data of size bytes to memory. errors that are not bus faults come from
// a device that has accepted the write and are held until the instruction
// completes
func (mc *CPU) write(address uint32, size int, v uint32) error {
	var err error
	switch size {
	case 1:
		err = mc.mem.Write8(address, uint8(v))
	case 2:
		err = mc.mem.Write16(address, uint16(v))
	default:
		err = mc.mem.Write32(address, v)
	}

	err = busError(err)
	if err != nil {
		var t trapped
		if !errors.As(err, &t) {
			if mc.deviceErr == nil {
				mc.deviceErr = err
			}
			return nil
		}
	}
	return err
}

func (mc *CPU) read32(address uint32) (uint32, error) {
	return mc.read(address, 4)
}

func (mc *CPU) write32(address uint32, v uint32) error {
	return mc.write(address, 4, v)
}

// resolve the operands of the instruction into locations. effective addresses
// are calculated in operand order and auto-increment and auto-decrement
// registers are updated as they are encountered
func (mc *CPU) resolve(in Instruction) ([]location, error) {
	locs := make([]location, len(in.Operands))
	for i, op := range in.Operands {
		l, err := mc.locate(op)
		if err != nil {
			return nil, err
		}
		locs[i] = l
		mc.LastResult.Cycles += operandCycles(op)
	}
	return locs, nil
}

func (mc *CPU) locate(op Operand) (location, error) {
	l := location{op: op, reg: -1}

	var err error

	switch op.Mode {
	case ModeInstructionLiteral, ModePositiveLiteral, ModeNegativeLiteral,
		ModeWordImmediate, ModeHalfImmediate, ModeByteImmediate:
		l.immediate = true
		l.value = op.literal()
	case ModeRegister:
		l.reg = op.Register
	case ModeRegisterDeferred:
		l.address = mc.R[op.Register]
	case ModeAutoIncrement:
		l.address = mc.R[op.Register]
		mc.R[op.Register] += uint32(op.Type.Size())
	case ModeAutoDecrement:
		mc.R[op.Register] -= uint32(op.Type.Size())
		l.address = mc.R[op.Register]
	case ModeFPOffset, ModeAPOffset:
		l.address = mc.R[op.Register] + op.Embedded
	case ModeAbsolute:
		l.address = op.Embedded
	case ModeAbsoluteDeferred:
		l.address, err = mc.read32(op.Embedded)
	case ModeWordDisplacement, ModeHalfDisplacement, ModeByteDisplacement:
		l.address = mc.R[op.Register] + op.displacement()
	case ModeWordDisplacementDeferred, ModeHalfDisplacementDeferred, ModeByteDisplacementDeferred:
		l.address, err = mc.read32(mc.R[op.Register] + op.displacement())
	}

	return l, err
}

// load the value of the operand, extended to 32 bits according to the type
// of the operand
func (mc *CPU) load(l location) (uint32, error) {
	t := l.op.Type
	switch {
	case l.immediate:
		return t.Extend(l.value), nil
	case l.reg >= 0:
		return t.Extend(mc.R[l.reg]), nil
	}
	v, err := mc.read(l.address, t.Size())
	if err != nil {
		return 0, err
	}
	return t.Extend(v), nil
}

// store the value to the operand. registers receive the value extended to 32
// bits according to the type of the operand
func (mc *CPU) store(l location, v uint32) error {
	t := l.op.Type
	switch {
	case l.immediate:
		return trapped{cause: execution.IllegalInstruction}
	case l.reg >= 0:
		mc.R[l.reg] = t.Extend(v & t.Mask())
		return nil
	}
	return mc.write(l.address, t.Size(), v&t.Mask())
}
