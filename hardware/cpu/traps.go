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

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
	"github.com/dmdterm/dmd5620/hardware/cpu/registers"
)

// trapped is returned by the functions that execute an instruction when the
// instruction must be abandoned and a trap dispatched
type trapped struct {
	cause execution.Cause

	// the bus fault for MemoryFault and AlignmentFault, and the decoding
	// error for IllegalInstruction
	err error
}

func (t trapped) Error() string {
	if t.err != nil {
		return fmt.Sprintf("cpu: %s: %v", t.cause, t.err)
	}
	return fmt.Sprintf("cpu: %s", t.cause)
}

func (t trapped) Unwrap() error {
	return t.err
}

// move CPU into the Faulted state. the error is logged and returned
func (mc *CPU) fault(err error) error {
	mc.State = execution.Faulted
	mc.ins.Log("cpu", err)
	return err
}

// dispatch the trap raised by the instruction
func (mc *CPU) dispatchTrap(t trapped, in Instruction) error {
	var savedPC uint32
	if t.cause.SavesNextPC() {
		// the instruction has completed and has set the PC
		savedPC = mc.R[registers.PC]
	} else {
		// the instruction is abandoned and will be restarted on return from
		// the handler
		mc.R = mc.checkpoint
		savedPC = in.Address
	}

	if err := mc.dispatch(t.cause, 0, savedPC, t.err); err != nil {
		return err
	}

	if mc.ins.Live.TraceTraps {
		mc.ins.Logf("cpu", "%s at %08x: %s", mc.LastResult.Trap, in.Address, in)
	}

	return nil
}

// dispatch a trap or interrupt through the vector table. the PC and PSW are
// pushed onto the interrupt stack, which grows upwards
func (mc *CPU) dispatch(cause execution.Cause, level int, savedPC uint32, cerr error) error {
	vector := int(cause)
	if cause == execution.Interrupt {
		vector = execution.InterruptBase + level
	}

	trap := execution.Trap{
		Cause:   cause,
		Level:   level,
		Vector:  vector,
		Handler: mc.vectors[vector],
		SavedPC: savedPC,
		Err:     cerr,
	}
	mc.LastResult.Trap = trap
	mc.LastResult.Cycles += TrapCycles

	psw := mc.R.Status()
	isp := mc.R[registers.ISP]

	if err := mc.mem.Write32(isp, savedPC); err != nil {
		return mc.fault(curated.Errorf(ErrDoubleFault, trap, err))
	}
	if err := mc.mem.Write32(isp+4, uint32(psw)); err != nil {
		return mc.fault(curated.Errorf(ErrDoubleFault, trap, err))
	}
	mc.R[registers.ISP] = isp + 8

	psw.SetPM(psw.CM())
	psw.SetCM(registers.Kernel)
	if cause == execution.Interrupt {
		psw.SetIPL(level)
	} else {
		psw.SetET(3)
		psw.SetISC(uint32(cause) & 0x0f)
	}
	mc.R.SetStatus(psw)
	mc.R[registers.PC] = trap.Handler

	return nil
}

// the level of the interrupt being requested. zero if there is no request
func (mc *CPU) pendingLevel() int {
	if mc.interrupts == nil {
		return 0
	}
	return mc.interrupts.InterruptLevel()
}

// dispatch an interrupt if one is being requested at a level higher than the
// current interrupt priority level
func (mc *CPU) checkInterrupts() error {
	level := mc.pendingLevel()
	if level <= mc.R.Status().IPL() || level >= execution.NumVectors-execution.InterruptBase {
		return nil
	}

	if err := mc.dispatch(execution.Interrupt, level, mc.R[registers.PC], nil); err != nil {
		return err
	}

	if mc.State == execution.Waiting {
		mc.State = execution.Running
	}

	if mc.ins.Live.TraceTraps {
		mc.ins.Logf("cpu", "%s", mc.LastResult.Trap)
	}

	return mc.cycleCallback(TrapCycles)
}
