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
	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
	"github.com/dmdterm/dmd5620/hardware/cpu/instructions"
	"github.com/dmdterm/dmd5620/hardware/cpu/registers"
)

// size of the frame created by SAVE. the frame pointer and r3 to r8
const saveFrame = 28

func (mc *CPU) condition(cond instructions.Condition) bool {
	psw := mc.R.Status()
	return cond.Test(psw.Is(registers.N), psw.Is(registers.Z), psw.Is(registers.V), psw.Is(registers.C))
}

func (mc *CPU) push(v uint32) error {
	if err := mc.write32(mc.R[registers.SP], v); err != nil {
		return err
	}
	mc.R[registers.SP] += 4
	return nil
}

func (mc *CPU) pop() (uint32, error) {
	v, err := mc.read32(mc.R[registers.SP] - 4)
	if err != nil {
		return 0, err
	}
	mc.R[registers.SP] -= 4
	return v, nil
}

// flow executes instructions that change the flow of the program. the PC is
// always set by this function
func (mc *CPU) flow(in Instruction, locs []location, next uint32) error {
	defn := in.Defn

	switch defn.Operator {
	case instructions.Halt:
		mc.State = execution.Halted
		mc.R[registers.PC] = next
		mc.ins.Logf("cpu", "halted at %08x", in.Address)
		return nil

	case instructions.Wait:
		mc.State = execution.Waiting
		mc.R[registers.PC] = next
		return nil

	case instructions.Breakpoint:
		mc.R[registers.PC] = next
		return trapped{cause: execution.Breakpoint}

	case instructions.Gate:
		mc.R[registers.PC] = next
		return trapped{cause: execution.Gate}

	case instructions.VirtualJump:
		mc.R[registers.PC] = next
		return nil

	case instructions.ReturnFromTrap:
		isp := mc.R[registers.ISP]
		psw, err := mc.read32(isp - 4)
		if err != nil {
			return err
		}
		pc, err := mc.read32(isp - 8)
		if err != nil {
			return err
		}
		mc.R[registers.ISP] = isp - 8
		mc.R[registers.PSW] = psw
		mc.R[registers.PC] = pc
		return nil

	case instructions.Branch:
		if mc.condition(defn.Condition) {
			mc.R[registers.PC] = in.Address + locs[0].value
		} else {
			mc.R[registers.PC] = next
		}
		return nil

	case instructions.Jump:
		mc.R[registers.PC] = locs[0].address
		return nil

	case instructions.JumpSubroutine, instructions.BranchSubroutine:
		if err := mc.push(next); err != nil {
			return err
		}
		if defn.Operator == instructions.JumpSubroutine {
			mc.R[registers.PC] = locs[0].address
		} else {
			mc.R[registers.PC] = in.Address + locs[0].value
		}
		return nil

	case instructions.ReturnSubroutine, instructions.Return:
		if !mc.condition(defn.Condition) {
			mc.R[registers.PC] = next
			return nil
		}
		pc, err := mc.pop()
		if err != nil {
			return err
		}
		mc.R[registers.PC] = pc
		return nil

	case instructions.Call:
		sp := mc.R[registers.SP]
		if err := mc.write32(sp, next); err != nil {
			return err
		}
		if err := mc.write32(sp+4, mc.R[registers.AP]); err != nil {
			return err
		}
		mc.R[registers.AP] = locs[0].address
		mc.R[registers.SP] = sp + 8
		mc.R[registers.PC] = locs[1].address
		return nil

	case instructions.ReturnFromCall:
		sp := mc.R[registers.SP]
		pc, err := mc.read32(sp - 8)
		if err != nil {
			return err
		}
		ap, err := mc.read32(sp - 4)
		if err != nil {
			return err
		}

		// arguments to the call are discarded
		mc.R[registers.SP] = mc.R[registers.AP]
		mc.R[registers.AP] = ap
		mc.R[registers.PC] = pc
		return nil

	case instructions.Save:
		if locs[0].op.Mode != ModeRegister {
			return trapped{cause: execution.IllegalInstruction}
		}
		sp := mc.R[registers.SP]
		if err := mc.write32(sp, mc.R[registers.FP]); err != nil {
			return err
		}
		for r, i := 8, uint32(1); r >= locs[0].op.Register; r, i = r-1, i+1 {
			if err := mc.write32(sp+i*4, mc.R[r]); err != nil {
				return err
			}
			mc.LastResult.Cycles++
		}
		mc.R[registers.FP] = sp + saveFrame
		mc.R[registers.SP] = sp + saveFrame
		mc.R[registers.PC] = next
		return nil

	case instructions.Restore:
		if locs[0].op.Mode != ModeRegister {
			return trapped{cause: execution.IllegalInstruction}
		}
		base := mc.R[registers.FP] - saveFrame
		for r, i := 8, uint32(1); r >= locs[0].op.Register; r, i = r-1, i+1 {
			v, err := mc.read32(base + i*4)
			if err != nil {
				return err
			}
			mc.R[r] = v
			mc.LastResult.Cycles++
		}
		fp, err := mc.read32(base)
		if err != nil {
			return err
		}
		mc.R[registers.FP] = fp
		mc.R[registers.SP] = base
		mc.R[registers.PC] = next
		return nil
	}

	return mc.operateFlow(defn, locs, next)
}

// instructions in the flow categories that are executed like any other
// instruction
func (mc *CPU) operateFlow(defn *instructions.Definition, locs []location, next uint32) error {
	if err := mc.operate(defn, locs); err != nil {
		return err
	}
	mc.R[registers.PC] = next
	return nil
}
