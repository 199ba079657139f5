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

package execution

import "fmt"

// State of the CPU.
type State int

// List of CPU states.
const (
	Running State = iota

	// the CPU has executed a HALT instruction. requires a reset
	Halted

	// the CPU is idle in a WAIT instruction until an interrupt is dispatched
	Waiting

	// the CPU could not fetch from the instruction stream or could not
	// dispatch a trap. requires a reset
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Waiting:
		return "waiting"
	case Faulted:
		return "faulted"
	}
	return "unknown state"
}

// Cause of a trap.
type Cause int

// List of trap causes. The value of the cause is also the index into the
// vector table. Interrupts are vectored at InterruptBase plus the level.
const (
	NoTrap             Cause = 0
	IllegalInstruction Cause = 1
	MemoryFault        Cause = 2
	AlignmentFault     Cause = 3
	ArithmeticTrap     Cause = 4
	Breakpoint         Cause = 5
	Gate               Cause = 6
	IntegerOverflow    Cause = 7
	Interrupt          Cause = 16
)

// InterruptBase is the vector index of interrupt level zero.
const InterruptBase = 16

// NumVectors is the number of entries in the vector table.
const NumVectors = 32

func (c Cause) String() string {
	switch c {
	case NoTrap:
		return "none"
	case IllegalInstruction:
		return "illegal instruction"
	case MemoryFault:
		return "memory fault"
	case AlignmentFault:
		return "alignment fault"
	case ArithmeticTrap:
		return "arithmetic trap"
	case Breakpoint:
		return "breakpoint"
	case Gate:
		return "gate"
	case IntegerOverflow:
		return "integer overflow"
	case Interrupt:
		return "interrupt"
	}
	return "unknown cause"
}

// SavesNextPC returns true if the trap saves the address of the next
// instruction rather than the address of the faulting instruction.
func (c Cause) SavesNextPC() bool {
	switch c {
	case Breakpoint, Gate, IntegerOverflow, Interrupt:
		return true
	}
	return false
}

// Trap records a trap or interrupt dispatched by the CPU.
type Trap struct {
	Cause Cause

	// interrupt level. zero for anything other than an interrupt
	Level int

	// the vector index used for dispatch
	Vector int

	// address of the handler
	Handler uint32

	// the program counter saved on the interrupt stack
	SavedPC uint32

	// the error that caused a MemoryFault or AlignmentFault
	Err error
}

// IsTrap returns true if the Trap records a dispatched trap.
func (t Trap) IsTrap() bool {
	return t.Cause != NoTrap
}

func (t Trap) String() string {
	if t.Cause == NoTrap {
		return "no trap"
	}
	if t.Cause == Interrupt {
		return fmt.Sprintf("interrupt level %d (vector %d -> %08x)", t.Level, t.Vector, t.Handler)
	}
	if t.Err != nil {
		return fmt.Sprintf("%s (vector %d -> %08x): %v", t.Cause, t.Vector, t.Handler, t.Err)
	}
	return fmt.Sprintf("%s (vector %d -> %08x)", t.Cause, t.Vector, t.Handler)
}
