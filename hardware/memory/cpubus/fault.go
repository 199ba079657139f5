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

package cpubus

import (
	"errors"
	"fmt"
)

// MemoryFault is the sentinal error for accesses to unmapped addresses and
// writes to read-only memory. Use with errors.Is().
var MemoryFault = errors.New("memory fault")

// AlignmentFault is the sentinal error for halfword and word accesses that are
// not aligned to their width. Use with errors.Is().
var AlignmentFault = errors.New("alignment fault")

// FaultKind distinguishes the reasons for a Fault.
type FaultKind int

// List of fault kinds.
const (
	Unmapped FaultKind = iota
	ReadOnly
	Misaligned
)

func (k FaultKind) String() string {
	switch k {
	case Unmapped:
		return "unmapped address"
	case ReadOnly:
		return "read-only memory"
	case Misaligned:
		return "misaligned access"
	}
	return "unknown fault"
}

// Access is the direction of a memory access.
type Access int

// List of access directions.
const (
	AccessRead Access = iota
	AccessWrite
)

func (a Access) String() string {
	if a == AccessWrite {
		return "write"
	}
	return "read"
}

// Fault is the error returned by the memory system when an access can not be
// completed.
type Fault struct {
	Kind    FaultKind
	Address uint32
	Access  Access

	// width of the access in bytes
	Width int
}

// NewFault is a convenience function returning a *Fault as an error.
func NewFault(kind FaultKind, address uint32, access Access, width int) error {
	return &Fault{Kind: kind, Address: address, Access: access, Width: width}
}

func (f *Fault) Error() string {
	return fmt.Sprintf("cpubus: %s: %d byte %s at %08x", f.Kind, f.Width, f.Access, f.Address)
}

// Is implements the interface used by errors.Is(). A Misaligned fault is an
// AlignmentFault and every other kind of fault is a MemoryFault.
func (f *Fault) Is(target error) bool {
	if f.Kind == Misaligned {
		return target == AlignmentFault
	}
	return target == MemoryFault
}
