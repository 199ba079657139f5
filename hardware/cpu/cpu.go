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
	"fmt"

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
	"github.com/dmdterm/dmd5620/hardware/cpu/instructions"
	"github.com/dmdterm/dmd5620/hardware/cpu/registers"
	"github.com/dmdterm/dmd5620/hardware/instance"
	"github.com/dmdterm/dmd5620/hardware/memory/cpubus"
)

// Version is the value placed in r0 by the MVERNO instruction.
const Version = 0x1a

// TrapCycles is the number of cycles taken to dispatch a trap or interrupt.
const TrapCycles = 10

// Error patterns returned by the CPU.
const (
	ErrVectors     = "cpu: reading vector table: %v"
	ErrReset       = "cpu: reset: %v"
	ErrDoubleFault = "cpu: double fault dispatching %s: %v"
)

// InterruptSource is anything that can request an interrupt. The DUART is
// the only interrupt source in the DMD 5620.
type InterruptSource interface {
	// the level of the interrupt being requested. zero if no interrupt is
	// being requested
	InterruptLevel() int
}

// CPU implements the WE32100 as found in the DMD 5620. There is no MMU and
// no math accelerator.
type CPU struct {
	ins *instance.Instance

	// the register file. r15 is the program counter
	R registers.File

	State execution.State

	mem         cpubus.Memory
	definitions *instructions.Definitions
	interrupts  InterruptSource

	// copied from ROM when the CPU is created
	vectors [execution.NumVectors]uint32

	// called with the number of cycles consumed by the instruction, before
	// pending interrupts are checked
	cycleCallback func(int) error

	// last result. the address field is the address of the instruction that
	// was executed, or the value of the PC if the CPU did not execute an
	// instruction
	LastResult execution.Result

	// the register file before the current instruction started. restored if
	// the instruction faults
	checkpoint registers.File

	// the first error returned by a memory mapped device during the current
	// instruction. the write itself has happened so the error is returned
	// after the instruction has completed
	deviceErr error
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// vector table is read from memory at this point and is not read again.
//
// The interrupts argument can be nil.
func NewCPU(ins *instance.Instance, mem cpubus.Memory, interrupts InterruptSource) (*CPU, error) {
	mc := &CPU{
		ins:         ins,
		mem:         mem,
		definitions: instructions.GetDefinitions(),
		interrupts:  interrupts,
	}

	for i := range mc.vectors {
		v, err := mem.Read32(cpubus.Vector(i))
		if err != nil {
			return nil, curated.Errorf(ErrVectors, err)
		}
		mc.vectors[i] = v
	}

	return mc, nil
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s\n%s [%s]", mc.R.String(), mc.R.Status(), mc.State)
}

// Vector returns the handler address for the vector index.
func (mc *CPU) Vector(index int) uint32 {
	if index < 0 || index >= len(mc.vectors) {
		return 0
	}
	return mc.vectors[index]
}

// Reset the CPU. The initial context is read from the process control block
// pointed to by the word at cpubus.PCBPointer.
//
// A fault during the reset sequence leaves the CPU in the Faulted state and
// the error is returned.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset()
	mc.R = registers.File{}
	mc.R[registers.ISP] = mc.ins.Live.ISP
	mc.State = execution.Running

	var err error
	read := func(address uint32) uint32 {
		if err != nil {
			return 0
		}
		var v uint32
		v, err = mc.mem.Read32(address)
		return v
	}

	mc.R[registers.PCBP] = read(cpubus.PCBPointer)
	mc.R[registers.PSW] = read(mc.R[registers.PCBP])
	mc.R[registers.PC] = read(mc.R[registers.PCBP] + 4)
	mc.R[registers.SP] = read(mc.R[registers.PCBP] + 8)

	mc.LastResult.Address = mc.R[registers.PC]
	mc.LastResult.Final = true

	if err != nil {
		return mc.fault(curated.Errorf(ErrReset, err))
	}

	psw := mc.R.Status()
	if psw.Is(registers.I) {
		psw.Set(registers.I, false)
		mc.R[registers.PCBP] += 12
	}
	psw.SetISC(3)
	mc.R.SetStatus(psw)

	return nil
}

// Decode the instruction at the address without executing it. Instruction
// stream reads are made through the CPU's memory.
func (mc *CPU) Decode(address uint32) (Instruction, error) {
	return Decode(mc.mem.Read8, address, mc.definitions)
}

// ExecuteInstruction steps the CPU forward one instruction. The cycleCallback
// argument is called with the number of cycles taken by the instruction and
// again if an interrupt is dispatched. It can be nil.
//
// Traps are not errors. They are dispatched through the vector table and
// recorded in LastResult. An error is returned if the instruction stream could
// not be read or if a trap could not be dispatched, in which case the CPU is
// left in the Faulted state. Errors returned by cycleCallback and errors from
// memory mapped devices are returned unchanged. A device error does not stop
// the instruction, it is returned once the instruction has completed.
//
// A CPU that is Halted or Faulted does nothing until it is reset.
func (mc *CPU) ExecuteInstruction(cycleCallback func(int) error) error {
	if cycleCallback == nil {
		cycleCallback = func(int) error { return nil }
	}
	mc.cycleCallback = cycleCallback

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.R[registers.PC]

	var err error

	switch mc.State {
	case execution.Halted, execution.Faulted:
	case execution.Waiting:
		err = mc.wait()
	default:
		err = mc.execute()
	}

	mc.LastResult.State = mc.State
	mc.LastResult.Final = true

	return err
}

// idle for one quantum or until an interrupt is dispatched
func (mc *CPU) wait() error {
	mc.LastResult.Cycles = mc.ins.Live.WaitQuantum
	if err := mc.cycleCallback(mc.LastResult.Cycles); err != nil {
		return err
	}
	return mc.checkInterrupts()
}

func (mc *CPU) execute() error {
	mc.checkpoint = mc.R
	mc.deviceErr = nil

	in, err := mc.Decode(mc.R[registers.PC])
	mc.LastResult.Defn = in.Defn
	mc.LastResult.ByteCount = in.Length
	if in.Defn != nil {
		mc.LastResult.Cycles = in.Defn.Cycles
	}

	if err != nil {
		if curated.Is(err, ErrFetch) {
			return mc.fault(err)
		}
		err = trapped{cause: execution.IllegalInstruction, err: err}
	} else {
		err = mc.executeInstruction(in)
	}

	if err != nil {
		var t trapped
		if !errors.As(err, &t) {
			return err
		}
		if err := mc.dispatchTrap(t, in); err != nil {
			return err
		}
	}

	if err := mc.cycleCallback(mc.LastResult.Cycles); err != nil {
		return err
	}

	// one trap per instruction. a pending interrupt will be seen on the next
	// step
	if !mc.LastResult.Trap.IsTrap() {
		if err := mc.checkInterrupts(); err != nil {
			return err
		}
	}

	return mc.deviceErr
}

// the instruction has been decoded and the PC still points to the start of
// the instruction
func (mc *CPU) executeInstruction(in Instruction) error {
	if in.Defn.Operator == instructions.Illegal {
		return trapped{cause: execution.IllegalInstruction}
	}

	locs, err := mc.resolve(in)
	if err != nil {
		return err
	}

	defn := in.Defn
	next := in.Next()

	switch defn.Effect {
	case instructions.Flow, instructions.Subroutine, instructions.Interrupt:
		return mc.flow(in, locs, next)
	}

	err = mc.operate(defn, locs)
	if err != nil {
		return err
	}

	mc.R[registers.PC] = next

	// the instruction has completed so an overflow trap saves the address of
	// the next instruction
	psw := mc.R.Status()
	if psw.Is(registers.OE) && psw.Is(registers.V) && arithmetic(defn.Operator) {
		return trapped{cause: execution.IntegerOverflow}
	}

	return nil
}
