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

package registers_test

import (
	"testing"

	"github.com/dmdterm/dmd5620/hardware/cpu/registers"
	"github.com/dmdterm/dmd5620/test"
)

func TestStatusFields(t *testing.T) {
	var s registers.Status

	s.SetIPL(13)
	test.ExpectEquality(t, s.IPL(), 13)
	test.ExpectEquality(t, uint32(s), 0x0001a000)

	s.SetCM(registers.User)
	s.SetPM(registers.Executive)
	test.ExpectEquality(t, s.CM(), registers.User)
	test.ExpectEquality(t, s.PM(), registers.Executive)
	test.ExpectEquality(t, s.IPL(), 13)

	s.SetISC(3)
	s.SetET(3)
	test.ExpectEquality(t, s.ISC(), uint32(3))
	test.ExpectEquality(t, s.ET(), uint32(3))

	// fields are masked
	s.SetIPL(0x1f)
	test.ExpectEquality(t, s.IPL(), 15)
	test.ExpectEquality(t, s.CM(), registers.User)
}

func TestStatusFlags(t *testing.T) {
	var s registers.Status
	s.SetFlags(true, false, true, false)
	test.ExpectSuccess(t, s.Is(registers.N))
	test.ExpectFailure(t, s.Is(registers.Z))
	test.ExpectSuccess(t, s.Is(registers.V))
	test.ExpectFailure(t, s.Is(registers.C))
	test.ExpectFailure(t, s.Is(registers.N|registers.Z))
	test.ExpectEquality(t, s.String(), "NzVco ipl=0 cm=kernel")

	s.Set(registers.N, false)
	test.ExpectFailure(t, s.Is(registers.N))
}

func TestFile(t *testing.T) {
	var f registers.File
	f[registers.PSW] = uint32(registers.Z)
	test.ExpectSuccess(t, f.Status().Is(registers.Z))

	s := f.Status()
	s.SetIPL(15)
	f.SetStatus(s)
	test.ExpectEquality(t, f[registers.PSW], 0x0011e000)

	test.ExpectEquality(t, registers.Name(registers.ISP), "isp")
	test.ExpectEquality(t, registers.Name(3), "r3")
}
