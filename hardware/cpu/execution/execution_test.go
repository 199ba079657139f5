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

package execution_test

import (
	"testing"

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
	"github.com/dmdterm/dmd5620/hardware/cpu/instructions"
	"github.com/dmdterm/dmd5620/test"
)

func TestCause(t *testing.T) {
	test.ExpectFailure(t, execution.IllegalInstruction.SavesNextPC())
	test.ExpectFailure(t, execution.AlignmentFault.SavesNextPC())
	test.ExpectSuccess(t, execution.Breakpoint.SavesNextPC())
	test.ExpectSuccess(t, execution.Interrupt.SavesNextPC())
	test.ExpectEquality(t, int(execution.ArithmeticTrap), 4)
}

func TestValidity(t *testing.T) {
	var r execution.Result
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.ErrNotFinal))

	defs := instructions.GetDefinitions()

	// MOVW with two operands cannot be two bytes long
	r = execution.Result{Defn: defs.Lookup(0x84), ByteCount: 2, Cycles: 10, Final: true}
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.ErrByteCount))

	r.ByteCount = 3
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 0
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.ErrCycleCount))

	r = execution.Result{Final: true, Trap: execution.Trap{Cause: execution.Interrupt, Level: 13, Vector: 29}}
	test.ExpectSuccess(t, r.IsValid())
	r.Trap.Vector = 13
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.ErrBadTrap))
}

func TestResultString(t *testing.T) {
	r := execution.Result{Address: 0x1000, Defn: instructions.GetDefinitions().Lookup(0x70), Cycles: 1, Final: true}
	test.ExpectEquality(t, r.String(), "00001000\tNOP\t[1]")

	r.State = execution.Halted
	test.ExpectEquality(t, r.String(), "00001000\tNOP\t[1] (halted)")
}
