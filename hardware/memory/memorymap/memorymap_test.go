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

package memorymap_test

import (
	"testing"

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware/memory/memorymap"
	"github.com/dmdterm/dmd5620/test"
)

const validMemMap = `00000000 -> 0001ffff	ROM
00200000 -> 0020003f	DUART
00700000 -> 007fffff	RAM
`

func TestSummary(t *testing.T) {
	m, err := memorymap.NewMap(memorymap.Default())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Summary(), validMemMap)
}

func TestMapAddress(t *testing.T) {
	m, err := memorymap.NewMap(memorymap.Default())
	test.DemandSuccess(t, err)

	type tc struct {
		address uint32
		area    memorymap.Area
		offset  uint32
	}

	for _, c := range []tc{
		{0x00000000, memorymap.ROM, 0},
		{0x0001ffff, memorymap.ROM, 0x1ffff},
		{0x00020000, memorymap.Undefined, 0},
		{0x001fffff, memorymap.Undefined, 0},
		{0x00200000, memorymap.DUART, 0},
		{0x0020000f, memorymap.DUART, 0x0f},
		{0x00200040, memorymap.Undefined, 0},
		{0x006fffff, memorymap.Undefined, 0},
		{0x00700000, memorymap.RAM, 0},
		{0x007fffff, memorymap.RAM, 0xfffff},
		{0x00800000, memorymap.Undefined, 0},
		{0xffffffff, memorymap.Undefined, 0},
	} {
		area, offset := m.MapAddress(c.address)
		test.ExpectEquality(t, area, c.area, c.address)
		test.ExpectEquality(t, offset, c.offset, c.address)
	}
}

// every address resolves to at most one area. the ranges either side of each
// boundary belong to different areas
func TestBoundaries(t *testing.T) {
	m, err := memorymap.NewMap(memorymap.Default())
	test.DemandSuccess(t, err)

	for _, a := range []memorymap.Area{memorymap.ROM, memorymap.RAM, memorymap.DUART} {
		b := m.Binding(a)
		area, _ := m.MapAddress(b.Origin)
		test.ExpectEquality(t, area, a)
		area, _ = m.MapAddress(b.Memtop)
		test.ExpectEquality(t, area, a)
		if b.Origin > 0 {
			area, _ = m.MapAddress(b.Origin - 1)
			test.ExpectInequality(t, area, a)
		}
		area, _ = m.MapAddress(b.Memtop + 1)
		test.ExpectInequality(t, area, a)
	}
}

func TestOverlap(t *testing.T) {
	b := memorymap.Default()
	b[2].Origin = 0x0020003f
	_, err := memorymap.NewMap(b)
	test.ExpectSuccess(t, curated.Is(err, memorymap.ErrOverlap))

	b = memorymap.Default()
	b[0].Memtop = 0x00200000
	_, err = memorymap.NewMap(b)
	test.ExpectSuccess(t, curated.Is(err, memorymap.ErrOverlap))
}

func TestBadBindings(t *testing.T) {
	b := memorymap.Default()
	b[1].Origin = b[1].Memtop + 1
	_, err := memorymap.NewMap(b)
	test.ExpectSuccess(t, curated.Is(err, memorymap.ErrBadBinding))

	b = memorymap.Default()
	b = append(b, memorymap.Binding{Area: memorymap.RAM, Origin: 0x00900000, Memtop: 0x009fffff})
	_, err = memorymap.NewMap(b)
	test.ExpectSuccess(t, curated.Is(err, memorymap.ErrDuplicate))

	b = memorymap.Default()[:2]
	_, err = memorymap.NewMap(b)
	test.ExpectSuccess(t, curated.Is(err, memorymap.ErrMissing))
}

// the bindings passed to NewMap() are copied
func TestImmutable(t *testing.T) {
	b := memorymap.Default()
	m, err := memorymap.NewMap(b)
	test.DemandSuccess(t, err)
	b[0].Memtop = 0
	area, _ := m.MapAddress(0x100)
	test.ExpectEquality(t, area, memorymap.ROM)
}
