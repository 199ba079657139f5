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
	"fmt"
	"testing"

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/prefs"
	"github.com/dmdterm/dmd5620/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)

	// anything other than "true" is false
	test.ExpectSuccess(t, v.Set("yes"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)

	test.ExpectSuccess(t, v.Set("20"))
	test.ExpectEquality(t, v.Get().(int), 20)

	// base prefixes
	test.ExpectSuccess(t, v.Set("0x700000"))
	test.ExpectEquality(t, v.Get().(int), 0x700000)

	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectFailure(t, v.Set(1.5))
	test.ExpectEquality(t, v.Get().(int), 0x700000)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook prevents the value being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestSet(t *testing.T) {
	var b prefs.Bool
	var i prefs.Int

	s := prefs.NewSet()
	test.ExpectSuccess(t, s.Add("dmd.trace", &b))
	test.ExpectSuccess(t, s.Add("dmd.level", &i))
	test.ExpectSuccess(t, curated.Is(s.Add("dmd.level", &i), prefs.ErrDuplicateKey))

	test.ExpectSuccess(t, s.Set("dmd.level", 13))
	test.ExpectEquality(t, s.String(), "dmd.trace::false; dmd.level::13")
	test.ExpectSuccess(t, curated.Is(s.Set("dmd.foo", 1), prefs.ErrUnknownKey))
	test.ExpectSuccess(t, curated.Is(s.Set("dmd.level", "x"), prefs.ErrBadValue))

	v, ok := s.Get("dmd.level")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(int), 13)

	test.ExpectSuccess(t, s.Reset())
	test.ExpectEquality(t, i.Get().(int), 0)
}

func TestSetCommandLine(t *testing.T) {
	var b prefs.Bool
	var i prefs.Int

	s := prefs.NewSet()
	test.ExpectSuccess(t, s.Add("dmd.trace", &b))
	test.ExpectSuccess(t, s.Add("dmd.level", &i))

	prefs.PushCommandLineStack("dmd.trace::true; dmd.level::0x0d; other::value")
	test.ExpectSuccess(t, s.ApplyCommandLine())
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, i.Get().(int), 13)

	// unused entries remain on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::value")
}
