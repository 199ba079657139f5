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

package prefs

import (
	"fmt"
	"strings"

	"github.com/dmdterm/dmd5620/curated"
)

// Error patterns returned by the Set type.
const (
	ErrDuplicateKey = "prefs: duplicate key (%s)"
	ErrUnknownKey   = "prefs: unknown key (%s)"
	ErrBadValue     = "prefs: %s: %v"
)

// Set is a collection of named preference values. Values in the set can be
// overridden by the top group of the command line stack with the
// ApplyCommandLine() function.
type Set struct {
	entries map[string]pref

	// order in which keys were added
	keys []string
}

// NewSet is the preferred method of initialisation for the Set type.
func NewSet() *Set {
	return &Set{
		entries: make(map[string]pref),
	}
}

// Add preference value to the set under the supplied key.
func (s *Set) Add(key string, p pref) error {
	if _, ok := s.entries[key]; ok {
		return curated.Errorf(ErrDuplicateKey, key)
	}
	s.entries[key] = p
	s.keys = append(s.keys, key)
	return nil
}

// Set the value of the preference with the key.
func (s *Set) Set(key string, v Value) error {
	p, ok := s.entries[key]
	if !ok {
		return curated.Errorf(ErrUnknownKey, key)
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf(ErrBadValue, key, err)
	}
	return nil
}

// Get the value of the preference with the key.
func (s *Set) Get(key string) (Value, bool) {
	p, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return p.Get(), true
}

// ApplyCommandLine sets every preference in the set that has an entry in the
// top group of the command line stack. The entry is removed from the stack as
// it is used. Entries for keys that are not in the set are left for other
// sets to consume.
func (s *Set) ApplyCommandLine() error {
	for _, k := range s.keys {
		if ok, v := GetCommandLinePref(k); ok {
			if err := s.Set(k, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reset every preference in the set to its zero value.
func (s *Set) Reset() error {
	for _, k := range s.keys {
		if err := s.entries[k].Reset(); err != nil {
			return curated.Errorf(ErrBadValue, k, err)
		}
	}
	return nil
}

// String returns the set in the same format as used by the command line
// stack, in the order the keys were added.
func (s *Set) String() string {
	b := strings.Builder{}
	for i, k := range s.keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fmt.Sprintf("%s::%s", k, s.entries[k]))
	}
	return b.String()
}
