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

package disassembly

import (
	"github.com/dmdterm/dmd5620/curated"
)

// Error patterns returned by the FromROM() and FromMemory() functions.
const (
	ErrEmpty    = "disassembly: nothing to disassemble"
	ErrTooLarge = "disassembly: ROM image too large (%d bytes)"
	ErrRange    = "disassembly: bad range (%08x -> %08x)"
)

// Disassembly represents the disassembly of an area of memory.
type Disassembly struct {
	// the inclusive range of the disassembly
	Origin uint32
	Memtop uint32

	// entries in address order. every byte in the range belongs to exactly
	// one entry
	Entries []*Entry

	// index into Entries by address of the first byte of the entry
	reference map[uint32]*Entry

	// labels for every address that is the target of a branch instruction
	labels map[uint32]string
}

// FromMemory disassembles the memory between origin and memtop inclusive.
// Instructions that would extend past memtop are listed as data.
func FromMemory(mem Memory, origin uint32, memtop uint32) (*Disassembly, error) {
	if memtop < origin {
		return nil, curated.Errorf(ErrRange, origin, memtop)
	}

	dsm := &Disassembly{
		Origin:    origin,
		Memtop:    memtop,
		reference: make(map[uint32]*Entry),
		labels:    make(map[uint32]string),
	}

	err := dsm.linearDisassembly(mem)
	if err != nil {
		return nil, err
	}

	return dsm, nil
}

// GetEntryByAddress returns the entry that starts at the address.
func (dsm *Disassembly) GetEntryByAddress(address uint32) (*Entry, bool) {
	e, ok := dsm.reference[address]
	return e, ok
}

// Label returns the label for the address. Only addresses that are the
// target of a branch instruction have a label.
func (dsm *Disassembly) Label(address uint32) (string, bool) {
	l, ok := dsm.labels[address]
	return l, ok
}

// Count returns the number of entries at each level.
func (dsm *Disassembly) Count(level EntryLevel) int {
	n := 0
	for _, e := range dsm.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}
