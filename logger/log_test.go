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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmdterm/dmd5620/logger"
	"github.com/dmdterm/dmd5620/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.Write(w)
	test.ExpectSuccess(t, w.Compare(""))

	log.Log(logger.Allow, "cpu", "reset")
	log.Log(logger.Allow, "duart", "keyboard queue full")

	for _, c := range []struct {
		n        int
		expected string
	}{
		{100, "cpu: reset\nduart: keyboard queue full\n"},
		{2, "cpu: reset\nduart: keyboard queue full\n"},
		{1, "duart: keyboard queue full\n"},
		{0, ""},
	} {
		w.Clear()
		log.Tail(w, c.n)
		test.ExpectEquality(t, w.String(), c.expected, c.n)
	}
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "duart", "unsupported baud code 14")
	log.Log(logger.Allow, "duart", "unsupported baud code 14")
	log.Log(logger.Allow, "duart", "unsupported baud code 14")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "duart: unsupported baud code 14 (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", 1)
	log.Log(logger.Allow, "b", 2)
	log.Log(logger.Allow, "c", 3)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "first")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: first\n")

	w.Reset()
	log.Log(logger.Allow, "b", "second")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: second\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}
	log.SetEcho(w)
	log.Log(logger.Allow, "echo", "hello")
	test.ExpectEquality(t, w.String(), "echo: hello\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "world")
	test.ExpectEquality(t, w.String(), "echo: hello\n")
}

// switchable permission
type quiet struct {
	quiet bool
}

func (p *quiet) AllowLogging() bool {
	return !p.quiet
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	p := &quiet{}

	for i := range 10 {
		p.quiet = i%3 == 0
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.quiet {
			test.ExpectEquality(t, w.String(), "", i)
		} else {
			test.ExpectEquality(t, w.String(), "tag: detail\n", i)
		}
	}

	log.Clear()
	w.Reset()
	log.Log(logger.Deny, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stringer test\n")
}
