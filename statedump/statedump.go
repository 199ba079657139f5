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

// Package statedump renders a snapshot of a machine for inspection. The
// snapshot is first reduced to a View, which contains the registers, the
// decoded status word and a window of RAM. The View can then be written as
// plain text or as a graphviz document with the memviz package.
//
// The reduction is necessary because a complete snapshot contains the whole
// of RAM and would produce a graph too large to be of use.
package statedump

import (
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/dmdterm/dmd5620/hardware"
	"github.com/dmdterm/dmd5620/hardware/cpu/registers"
	"github.com/dmdterm/dmd5620/hardware/memory/memorymap"
)

// BytesPerRow in the memory section of a View.
const BytesPerRow = 16

// Register is a single register in a View.
type Register struct {
	Name  string
	Value string
}

// Status is the decoded processor status word.
type Status struct {
	Flags string
	IPL   int
	CM    string
	PM    string
	ISC   uint32
	ET    uint32
	I     bool
	R     bool
}

// Row is a single row of memory in a View.
type Row struct {
	Address string
	Bytes   string
	ASCII   string
}

// View is the reduced form of a machine snapshot.
type View struct {
	Clock     uint64
	State     string
	Registers []Register
	Status    Status
	Memory    []Row
}

// Window describes the part of RAM to include in a View. The address is an
// address on the bus and not an offset into RAM. A Window of length zero
// includes no memory.
type Window struct {
	Address uint32
	Length  int
}

// NewView reduces the state to a View. The RAM of the state is assumed to
// start at the default RAM origin. Parts of the window that are outside RAM
// are not included.
func NewView(st *hardware.State, win Window) *View {
	v := &View{
		Clock: st.Clock,
		State: st.CPUState.String(),
	}

	for i, r := range st.Registers {
		v.Registers = append(v.Registers, Register{
			Name:  registers.Name(i),
			Value: fmt.Sprintf("%08x", r),
		})
	}

	psw := st.Registers.Status()
	v.Status = Status{
		Flags: psw.String()[:5],
		IPL:   psw.IPL(),
		CM:    psw.CM().String(),
		PM:    psw.PM().String(),
		ISC:   psw.ISC(),
		ET:    psw.ET(),
		I:     psw.Is(registers.I),
		R:     psw.Is(registers.R),
	}

	if win.Length <= 0 || win.Address < memorymap.OriginRAM {
		return v
	}

	start := int(win.Address - memorymap.OriginRAM)
	end := min(start+win.Length, len(st.RAM))

	for a := start; a < end; a += BytesPerRow {
		row := st.RAM[a:min(a+BytesPerRow, end)]

		b := strings.Builder{}
		c := strings.Builder{}
		for i, d := range row {
			if i > 0 {
				b.WriteRune(' ')
			}
			b.WriteString(fmt.Sprintf("%02x", d))
			if d >= 0x20 && d < 0x7f {
				c.WriteByte(d)
			} else {
				c.WriteRune('.')
			}
		}

		v.Memory = append(v.Memory, Row{
			Address: fmt.Sprintf("%08x", memorymap.OriginRAM+uint32(a)),
			Bytes:   b.String(),
			ASCII:   c.String(),
		})
	}

	return v
}

// Write the View as plain text.
func (v *View) Write(output io.Writer) error {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("state: %s  clock: %d\n", v.State, v.Clock))

	for i, r := range v.Registers {
		if i > 0 {
			if i%4 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString(fmt.Sprintf("%4s=%s", r.Name, r.Value))
	}
	s.WriteString("\n")

	s.WriteString(fmt.Sprintf("psw: %s ipl=%d cm=%s pm=%s isc=%d et=%d", v.Status.Flags, v.Status.IPL, v.Status.CM, v.Status.PM, v.Status.ISC, v.Status.ET))
	if v.Status.I {
		s.WriteString(" I")
	}
	if v.Status.R {
		s.WriteString(" R")
	}
	s.WriteString("\n")

	for _, r := range v.Memory {
		s.WriteString(fmt.Sprintf("%s  %-47s  %s\n", r.Address, r.Bytes, r.ASCII))
	}

	_, err := io.WriteString(output, s.String())
	return err
}

// Graph writes the View as a graphviz document.
func (v *View) Graph(output io.Writer) {
	memviz.Map(output, v)
}
