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

package modalflag

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage text the flag package writes on a -help
// request so that it can be amended with information about sub-modes.
type helpWriter struct {
	buf bytes.Buffer
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buf.Write(p)
}

// Clear the collected usage text.
func (hw *helpWriter) Clear() {
	hw.buf.Reset()
}

// Help writes the collected usage text to output. The banner is the mode path
// and names the mode in the first line of the usage text.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	usage, flags, _ := strings.Cut(hw.buf.String(), "\n")

	var s strings.Builder

	if flags == "" && len(subModes) == 0 {
		s.WriteString("No help available")
		if banner != "" {
			fmt.Fprintf(&s, " for %s", banner)
		}
		s.WriteString("\n")
		_, _ = io.WriteString(output, s.String())
		return
	}

	s.WriteString(usage)
	if banner != "" {
		fmt.Fprintf(&s, " for %s mode", banner)
	}
	s.WriteString("\n")
	s.WriteString(flags)

	if len(subModes) > 0 {
		if flags != "" {
			s.WriteString("\n")
		}
		fmt.Fprintf(&s, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(&s, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(&s, "\n%s\n", additionalHelp)
	}

	_, _ = io.WriteString(output, s.String())
}
