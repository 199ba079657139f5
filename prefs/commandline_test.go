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

package prefs_test

import (
	"testing"

	"github.com/dmdterm/dmd5620/prefs"
	"github.com/dmdterm/dmd5620/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	for _, c := range []struct {
		prefs    string
		expected string
	}{
		{"hardware.ram.size::0x40000", "hardware.ram.size::0x40000"},
		{"  hardware.ram.size :: 0x40000  ", "hardware.ram.size::0x40000"},

		// unused entries are returned sorted by key
		{"hardware.ram.size::0x40000; hardware.duart.level::12", "hardware.duart.level::12; hardware.ram.size::0x40000"},

		// malformed entries are ignored
		{"hardware.ram.size", ""},
		{"hardware.ram.size;hardware.duart.level::12", "hardware.duart.level::12"},
		{"hardware.ram.size::1::2; hardware.duart.level::12", "hardware.duart.level::12"},
		{";;", ""},
	} {
		prefs.PushCommandLineStack(c.prefs)
		test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1, c.prefs)
		test.ExpectEquality(t, prefs.PopCommandLineStack(), c.expected, c.prefs)
	}
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("hardware.ram.fill::255")
	prefs.PushCommandLineStack("hardware.duart.bell::7")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top group is visible
	ok, _ := prefs.GetCommandLinePref("hardware.ram.fill")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("hardware.duart.bell")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "7")

	// entries are consumed when they are used
	ok, _ = prefs.GetCommandLinePref("hardware.duart.bell")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.ram.fill::255")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
