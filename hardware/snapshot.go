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
	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
	"github.com/dmdterm/dmd5620/hardware/cpu/registers"
)

// Error patterns returned by Plumb().
const (
	ErrPlumbNil     = "machine: cannot plumb in a nil state"
	ErrPlumbRAMSize = "machine: state has %d bytes of RAM but the machine has %d"
)

// State stores the CPU registers and the contents of RAM. It is produced by
// the Snapshot() function and can be restored with the Plumb() function.
//
// Note that the DUART is not part of the snapshot.
type State struct {
	Registers registers.File
	CPUState  execution.State
	RAM       []uint8
	Clock     uint64
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	n := *s
	n.RAM = make([]uint8, len(s.RAM))
	copy(n.RAM, s.RAM)
	return &n
}

// Snapshot the state of the machine.
func (m *Machine) Snapshot() *State {
	s := &State{
		Registers: m.CPU.R,
		CPUState:  m.CPU.State,
		RAM:       make([]uint8, m.Mem.RAM.Size()),
		Clock:     m.Clock,
	}
	m.Mem.RAM.Copy(s.RAM, 0)
	return s
}

// Plumb a previously snapshotted state into the machine. The state is copied
// so the machine does not change the stored state.
func (m *Machine) Plumb(state *State) error {
	if state == nil {
		return curated.Errorf(ErrPlumbNil)
	}
	if len(state.RAM) != m.Mem.RAM.Size() {
		return curated.Errorf(ErrPlumbRAMSize, len(state.RAM), m.Mem.RAM.Size())
	}

	m.CPU.R = state.Registers
	m.CPU.State = state.CPUState
	m.Mem.RAM.Restore(state.RAM)
	m.Clock = state.Clock

	return nil
}
