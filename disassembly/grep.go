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

package disassembly

import (
	"bytes"
	"io"
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the disassembly for the specified search string. Matching
// entries are written to output in the same format as the Write() function
// but without label lines, so that every match is a single line.
// Returns the number of matches.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) (int, error) {
	var s string

	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	matches := 0
	for _, e := range dsm.Entries {
		// limit scope of grep to the correct field
		switch scope {
		case GrepMnemonic:
			s = e.Mnemonic()
		case GrepOperand:
			s = e.Operand()
		case GrepAll:
			s = e.String()
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			line := &bytes.Buffer{}
			if err := dsm.WriteEntry(line, WriteAttr{NoLabels: true}, e); err != nil {
				return matches, err
			}
			if _, err := output.Write(line.Bytes()); err != nil {
				return matches, err
			}
			matches++
		}
	}

	return matches, nil
}
