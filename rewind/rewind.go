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

package rewind

import (
	"fmt"

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware"
)

// DefaultCapacity is the number of states kept by a Rewind created with a
// capacity of zero.
const DefaultCapacity = 100

// Error patterns returned by the rewind package.
const (
	ErrCapacity = "rewind: capacity of %d is too small"
	ErrEmpty    = "rewind: no states recorded"
	ErrCatchUp  = "rewind: catching up: %v"
)

// Rewind contains a history of machine states.
type Rewind struct {
	m        *hardware.Machine
	capacity int

	// ordered by clock. entries after curr are discarded by the next call to
	// Record()
	entries []*hardware.State
	curr    int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
func NewRewind(m *hardware.Machine, capacity int) (*Rewind, error) {
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	if capacity < 2 {
		return nil, curated.Errorf(ErrCapacity, capacity)
	}

	r := &Rewind{
		m:        m,
		capacity: capacity,
		entries:  make([]*hardware.State, 0, capacity),
	}
	r.Reset()

	return r, nil
}

// Reset removes all entries and records the current state of the machine.
// Should be called whenever the machine itself is reset.
func (r *Rewind) Reset() {
	r.entries = r.entries[:0]
	r.curr = -1
	r.Record()
}

// Record the current state of the machine. If the history has been rewound,
// the entries after the current position are forgotten. Once capacity is
// reached the earliest entry is forgotten.
func (r *Rewind) Record() {
	s := r.m.Snapshot()

	r.entries = r.entries[:r.curr+1]

	// a second snapshot at the same clock replaces the first
	if r.curr >= 0 && r.entries[r.curr].Clock == s.Clock {
		r.entries[r.curr] = s
		return
	}

	if len(r.entries) >= r.capacity {
		copy(r.entries, r.entries[1:])
		r.entries = r.entries[:len(r.entries)-1]
	}

	r.entries = append(r.entries, s)
	r.curr = len(r.entries) - 1
}

// Timeline summarises the recorded history.
type Timeline struct {
	// clock values of the earliest and latest entries
	Start uint64
	End   uint64

	// clock value of the current entry
	Current uint64

	Entries int
}

func (tl Timeline) String() string {
	return fmt.Sprintf("%d entries [%d -> %d] @ %d", tl.Entries, tl.Start, tl.End, tl.Current)
}

// Timeline returns a summary of the recorded history.
func (r *Rewind) Timeline() Timeline {
	if len(r.entries) == 0 {
		return Timeline{}
	}
	return Timeline{
		Start:   r.entries[0].Clock,
		End:     r.entries[len(r.entries)-1].Clock,
		Current: r.entries[r.curr].Clock,
		Entries: len(r.entries),
	}
}

func (r *Rewind) plumb(idx int) error {
	r.curr = idx

	// the machine takes a copy of the stored state so the stored state is
	// not changed by the emulation
	return r.m.Plumb(r.entries[idx])
}

// GotoLast plumbs in the latest entry in the history.
func (r *Rewind) GotoLast() error {
	if len(r.entries) == 0 {
		return curated.Errorf(ErrEmpty)
	}
	return r.plumb(len(r.entries) - 1)
}

// GotoClock plumbs in the latest entry with a clock value no later than the
// requested clock. The emulation is then run forward until the machine clock
// reaches the requested value or the CPU stops. Requests earlier than the
// first entry plumb in the first entry.
//
// Returns the machine clock after the catch up. Because instructions take
// more than one cycle this can be later than the requested value.
func (r *Rewind) GotoClock(clock uint64) (uint64, error) {
	if len(r.entries) == 0 {
		return 0, curated.Errorf(ErrEmpty)
	}

	// binary search for the first entry later than the requested clock
	s := 0
	e := len(r.entries)
	for s < e {
		h := int(uint(s+e) >> 1)
		if r.entries[h].Clock <= clock {
			s = h + 1
		} else {
			e = h
		}
	}

	idx := s - 1
	if idx < 0 {
		idx = 0
	}

	if err := r.plumb(idx); err != nil {
		return 0, err
	}

	for r.m.Clock < clock {
		res, err := r.m.Run(1)
		if err != nil {
			return r.m.Clock, curated.Errorf(ErrCatchUp, err)
		}
		if res.Steps == 0 {
			break
		}
	}

	return r.m.Clock, nil
}
