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

package memorymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmdterm/dmd5620/curated"
)

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case RAM:
		return "RAM"
	case DUART:
		return "DUART"
	}

	return "undefined"
}

// The different memory areas in the DMD 5620.
const (
	Undefined Area = iota
	ROM
	RAM
	DUART
)

// The origin and memory top for each area of memory in the default layout.
//
// Implementations of the different memory areas drag the address down into
// the range of an array with (address - origin). The offset is also returned
// by the MapAddress() function.
const (
	OriginROM   = uint32(0x00000000)
	MemtopROM   = uint32(0x0001ffff)
	OriginDUART = uint32(0x00200000)
	MemtopDUART = uint32(0x0020003f)
	OriginRAM   = uint32(0x00700000)
	MemtopRAM   = uint32(0x007fffff)
)

// Dimensions of the display. The display memory is one bit per pixel and
// starts at the origin of RAM.
const (
	DisplayWidth  = 800
	DisplayHeight = 1024
	DisplaySize   = DisplayWidth * DisplayHeight / 8
)

// Error patterns returned by NewMap(). The patterns can be used with the
// curated.Is() function.
const (
	ErrOverlap    = "memorymap: %s (%08x -> %08x) overlaps %s (%08x -> %08x)"
	ErrBadBinding = "memorymap: %s: bad binding (%08x -> %08x)"
	ErrDuplicate  = "memorymap: %s bound more than once"
	ErrMissing    = "memorymap: no binding for %s"
)

// Binding of an address range to an area. Origin and Memtop are inclusive.
type Binding struct {
	Area   Area
	Origin uint32
	Memtop uint32
}

// Size returns the number of bytes in the binding.
func (b Binding) Size() int {
	return int(b.Memtop-b.Origin) + 1
}

func (b Binding) String() string {
	return fmt.Sprintf("%08x -> %08x\t%s", b.Origin, b.Memtop, b.Area)
}

// Contains returns true if the address is inside the binding.
func (b Binding) Contains(address uint32) bool {
	return address >= b.Origin && address <= b.Memtop
}

// Default returns the bindings for the DMD 5620 layout.
func Default() []Binding {
	return []Binding{
		{Area: ROM, Origin: OriginROM, Memtop: MemtopROM},
		{Area: DUART, Origin: OriginDUART, Memtop: MemtopDUART},
		{Area: RAM, Origin: OriginRAM, Memtop: MemtopRAM},
	}
}

// Map is the ordered set of bindings for a machine.
type Map struct {
	// sorted by origin
	bindings []Binding

	// indexed by Area
	byArea [DUART + 1]Binding
}

// NewMap is the preferred method of initialisation for the Map type. Every area
// in the closed set must be bound exactly once and no two bindings may
// overlap.
func NewMap(bindings []Binding) (*Map, error) {
	m := &Map{
		bindings: make([]Binding, len(bindings)),
	}
	copy(m.bindings, bindings)

	sort.Slice(m.bindings, func(i, j int) bool {
		return m.bindings[i].Origin < m.bindings[j].Origin
	})

	for i, b := range m.bindings {
		if b.Area <= Undefined || b.Area > DUART || b.Origin > b.Memtop {
			return nil, curated.Errorf(ErrBadBinding, b.Area, b.Origin, b.Memtop)
		}
		if m.byArea[b.Area].Area != Undefined {
			return nil, curated.Errorf(ErrDuplicate, b.Area)
		}
		m.byArea[b.Area] = b

		if i > 0 {
			p := m.bindings[i-1]
			if b.Origin <= p.Memtop {
				return nil, curated.Errorf(ErrOverlap, b.Area, b.Origin, b.Memtop, p.Area, p.Origin, p.Memtop)
			}
		}
	}

	for _, a := range []Area{ROM, RAM, DUART} {
		if m.byArea[a].Area == Undefined {
			return nil, curated.Errorf(ErrMissing, a)
		}
	}

	return m, nil
}

// MapAddress returns the area the address is in and the offset of the address
// from the origin of that area. Returns the Undefined area if the address is
// not mapped.
func (m *Map) MapAddress(address uint32) (Area, uint32) {
	for _, b := range m.bindings {
		if address < b.Origin {
			break
		}
		if address <= b.Memtop {
			return b.Area, address - b.Origin
		}
	}
	return Undefined, 0
}

// Binding returns the binding for the area.
func (m *Map) Binding(area Area) Binding {
	if area <= Undefined || area > DUART {
		return Binding{}
	}
	return m.byArea[area]
}

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func (m *Map) Summary() string {
	s := strings.Builder{}
	for _, b := range m.bindings {
		s.WriteString(b.String())
		s.WriteString("\n")
	}
	return s.String()
}
