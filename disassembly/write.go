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
	"fmt"
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool

	// omit data entries
	DecodedOnly bool

	// omit the label line that precedes a labelled entry
	NoLabels bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if attr.DecodedOnly && e.Level != EntryLevelDecoded {
			continue
		}
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteRange writes the entries that start between the from and to addresses
// inclusive.
func (dsm *Disassembly) WriteRange(output io.Writer, attr WriteAttr, from uint32, to uint32) error {
	for _, e := range dsm.Entries {
		if e.Address < from || e.Address > to {
			continue
		}
		if attr.DecodedOnly && e.Level != EntryLevelDecoded {
			continue
		}
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer. The entry is preceded by a
// line containing its label if it has one, unless the NoLabels attribute is
// set.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	if l, ok := dsm.Label(e.Address); ok && !attr.NoLabels {
		if _, err := fmt.Fprintf(output, "%s:\n", l); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(output, "%08x", e.Address); err != nil {
		return err
	}

	if attr.ByteCode {
		if _, err := fmt.Fprintf(output, "  %-24s", e.Bytecode()); err != nil {
			return err
		}
	}

	if op := e.Operand(); op == "" {
		if _, err := fmt.Fprintf(output, "  %s", e.Mnemonic()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(output, "  %-8s %s", e.Mnemonic(), op); err != nil {
			return err
		}
	}

	if attr.Cycles && e.Level == EntryLevelDecoded {
		if _, err := fmt.Fprintf(output, "  ; %s", e.Cycles()); err != nil {
			return err
		}
	}

	_, err := output.Write([]byte("\n"))
	return err
}
