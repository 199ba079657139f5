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

package statedump_test

import (
	"strings"
	"testing"

	"github.com/dmdterm/dmd5620/hardware"
	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
	"github.com/dmdterm/dmd5620/hardware/cpu/registers"
	"github.com/dmdterm/dmd5620/hardware/memory/memorymap"
	"github.com/dmdterm/dmd5620/statedump"
	"github.com/dmdterm/dmd5620/test"
)

func newState() *hardware.State {
	st := &hardware.State{
		CPUState: execution.Halted,
		RAM:      make([]uint8, 40),
		Clock:    1234,
	}
	copy(st.RAM, "hello, world")
	st.Registers[registers.PC] = 0x2000

	var psw registers.Status
	psw.SetIPL(13)
	psw.Set(registers.Z|registers.I, true)
	st.Registers.SetStatus(psw)

	return st
}

func TestView(t *testing.T) {
	v := statedump.NewView(newState(), statedump.Window{Address: memorymap.OriginRAM, Length: 20})

	test.ExpectEquality(t, v.State, "halted")
	test.ExpectEquality(t, v.Clock, 1234)
	test.ExpectEquality(t, len(v.Registers), registers.NumRegisters)
	test.ExpectEquality(t, v.Registers[registers.PC].Name, "pc")
	test.ExpectEquality(t, v.Registers[registers.PC].Value, "00002000")

	test.ExpectEquality(t, v.Status.Flags, "nZvco")
	test.ExpectEquality(t, v.Status.IPL, 13)
	test.ExpectEquality(t, v.Status.CM, "kernel")
	test.ExpectSuccess(t, v.Status.I)
	test.ExpectFailure(t, v.Status.R)

	// twenty bytes is one full row and a partial row
	test.ExpectEquality(t, len(v.Memory), 2)
	test.ExpectEquality(t, v.Memory[0].Address, "00700000")
	test.ExpectEquality(t, v.Memory[0].ASCII, "hello, world....")
	test.ExpectEquality(t, v.Memory[1].Address, "00700010")
	test.ExpectEquality(t, v.Memory[1].Bytes, "00 00 00 00")
}

func TestWindow(t *testing.T) {
	st := newState()

	// no window
	v := statedump.NewView(st, statedump.Window{})
	test.ExpectEquality(t, len(v.Memory), 0)

	// window below RAM
	v = statedump.NewView(st, statedump.Window{Address: 0, Length: 16})
	test.ExpectEquality(t, len(v.Memory), 0)

	// window runs past the end of RAM
	v = statedump.NewView(st, statedump.Window{Address: memorymap.OriginRAM + 32, Length: 64})
	test.ExpectEquality(t, len(v.Memory), 1)
	test.ExpectEquality(t, v.Memory[0].Bytes, "00 00 00 00 00 00 00 00")
}

func TestWrite(t *testing.T) {
	v := statedump.NewView(newState(), statedump.Window{Address: memorymap.OriginRAM, Length: 16})

	w := &strings.Builder{}
	test.ExpectSuccess(t, v.Write(w))

	s := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "state: halted  clock: 1234\n"))
	test.ExpectSuccess(t, strings.Contains(s, "  pc=00002000"))
	test.ExpectSuccess(t, strings.Contains(s, "psw: nZvco ipl=13 cm=kernel pm=kernel isc=0 et=0 I\n"))
	test.ExpectSuccess(t, strings.Contains(s, "00700000  68 65 6c 6c 6f"))
}

func TestGraph(t *testing.T) {
	v := statedump.NewView(newState(), statedump.Window{Address: memorymap.OriginRAM, Length: 16})

	w := &strings.Builder{}
	v.Graph(w)

	s := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "digraph"))
	test.ExpectSuccess(t, strings.Contains(s, "00002000"))
}
