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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is used in the same way as
// the format string of fmt.Errorf() but formatting is deferred until the
// Error() function is called.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the go language error interface. When a curated error
// wraps another error with the same leading message part, as happens when a
// package annotates an error it produced itself, the repeated part appears
// only once.
func (er curated) Error() string {
	s := fmt.Sprintf(er.pattern, er.values...)

	head, rest, ok := strings.Cut(s, ": ")
	if ok && (rest == head || strings.HasPrefix(rest, head+": ")) {
		return rest
	}

	return s
}

// Unwrap returns the error values used to build the curated error. This
// means errors.Is() and errors.As() see through a curated error to the typed
// errors (bus faults for example) that it wraps.
func (er curated) Unwrap() []error {
	var w []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			w = append(w, e)
		}
	}
	return w
}

// IsAny checks if the error is, or wraps, a curated error.
func IsAny(err error) bool {
	var c curated
	return errors.As(err, &c)
}

// Is checks if the error is a curated error with a specific pattern. Only
// the outermost error is checked. Use Has() to check the entire chain.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has checks if the error is a curated error with a specific pattern, or
// wraps one somewhere in the chain.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}
	if er.pattern == pattern {
		return true
	}
	for _, e := range er.Unwrap() {
		if Has(e, pattern) {
			return true
		}
	}
	return false
}
