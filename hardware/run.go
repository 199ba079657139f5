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

package hardware

import (
	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
)

// RunResult summarises a call to Run() or RunToTrap().
type RunResult struct {
	// number of steps taken. a step of a CPU that is waiting for an interrupt
	// counts as a step
	Steps int

	// number of CPU cycles consumed
	Cycles uint64

	// the first trap or interrupt dispatched during the run. the Cause field
	// is execution.NoTrap if there was none
	FirstTrap execution.Trap

	// address of the instruction that was executing when FirstTrap was
	// dispatched
	FirstTrapAddress uint32

	// state of the CPU at the end of the run
	State execution.State
}

// Run the emulation for up to n steps. The run ends early if the CPU halts or
// faults.
func (m *Machine) Run(n int) (RunResult, error) {
	return m.run(n, false)
}

// RunToTrap runs the emulation for up to n steps, stopping after the first
// step that dispatches a trap or interrupt. The run also ends if the CPU halts
// or faults.
func (m *Machine) RunToTrap(n int) (RunResult, error) {
	return m.run(n, true)
}

func (m *Machine) run(n int, stopOnTrap bool) (RunResult, error) {
	var r RunResult

	for r.Steps < n {
		if m.CPU.State == execution.Halted || m.CPU.State == execution.Faulted {
			break
		}

		res, err := m.Step()
		r.Steps++
		r.Cycles += uint64(res.Cycles)

		if res.Trap.IsTrap() && !r.FirstTrap.IsTrap() {
			r.FirstTrap = res.Trap
			r.FirstTrapAddress = res.Address
		}

		if err != nil {
			r.State = m.CPU.State
			return r, err
		}

		if stopOnTrap && res.Trap.IsTrap() {
			break
		}
	}

	r.State = m.CPU.State

	return r, nil
}
