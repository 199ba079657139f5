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

package test

import "strings"

// CompareWriter captures everything written to it so that it can be compared
// with an expected string.
type CompareWriter struct {
	strings.Builder
}

// Clear the captured output.
func (tw *CompareWriter) Clear() {
	tw.Reset()
}

// Compare captured output with the expected string.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.String() == s
}
