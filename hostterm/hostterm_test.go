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

package hostterm_test

import (
	"os"
	"testing"

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hostterm"
	"github.com/dmdterm/dmd5620/test"
)

func TestNoFile(t *testing.T) {
	_, err := hostterm.NewTerminal(nil, os.Stdout)
	test.ExpectSuccess(t, curated.Is(err, hostterm.ErrNoFile))
}

func TestPipe(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()

	out, err := os.CreateTemp(t.TempDir(), "out")
	test.DemandSuccess(t, err)
	defer out.Close()

	pt, err := hostterm.NewTerminal(r, out)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, pt.IsTerminal())

	// mode changes are ignored for a pipe
	test.ExpectSuccess(t, pt.RawMode())
	test.ExpectSuccess(t, pt.CanonicalMode())

	bytes, err := pt.Start()
	test.DemandSuccess(t, err)

	_, err = pt.Start()
	test.ExpectSuccess(t, curated.Is(err, hostterm.ErrStarted))

	_, err = w.Write([]uint8{'a', 'b', hostterm.Escape, 'c'})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, w.Close())

	var got []uint8
	for b := range bytes {
		got = append(got, b)
	}
	test.ExpectEquality(t, string(got), "ab")

	n, err := pt.Write([]uint8("hello"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 5)

	test.ExpectSuccess(t, pt.CleanUp())
	test.ExpectSuccess(t, pt.CleanUp())
}

func TestEndOfFile(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()

	pt, err := hostterm.NewTerminal(r, os.Stdout)
	test.DemandSuccess(t, err)

	bytes, err := pt.Start()
	test.DemandSuccess(t, err)

	_, err = w.Write([]uint8("xyz"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, w.Close())

	var got []uint8
	for b := range bytes {
		got = append(got, b)
	}
	test.ExpectEquality(t, string(got), "xyz")
}
