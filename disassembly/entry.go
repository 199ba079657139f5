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
	"strings"

	"github.com/dmdterm/dmd5620/hardware/cpu"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel values.
const (
	// the bytes of the entry could not be decoded as an instruction
	EntryLevelData EntryLevel = iota

	// the entry is a decoded instruction
	EntryLevelDecoded
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelData:
		return "data"
	case EntryLevelDecoded:
		return "decoded"
	}
	return "unknown level"
}

// Entry is a single line of the disassembly.
type Entry struct {
	dsm *Disassembly

	Level   EntryLevel
	Address uint32

	// the bytes the entry was created from
	Bytes []uint8

	// the decoded instruction. only valid if Level is EntryLevelDecoded
	Instruction cpu.Instruction
}

// Bytecode returns the bytes of the entry as a string of hex values.
func (e *Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}

// Mnemonic returns the mnemonic of the instruction or the data directive.
func (e *Entry) Mnemonic() string {
	if e.Level == EntryLevelData {
		return ".byte"
	}
	return e.Instruction.Defn.Mnemonic
}

// Operand returns the operands of the entry as a string. Branch targets with
// a label are shown as the label.
func (e *Entry) Operand() string {
	if e.Level == EntryLevelData {
		s := strings.Builder{}
		for i, b := range e.Bytes {
			if i > 0 {
				s.WriteRune(',')
			}
			s.WriteString(fmt.Sprintf("0x%02x", b))
		}
		return s.String()
	}

	if target, ok := e.Instruction.Target(); ok {
		if l, ok := e.dsm.Label(target); ok {
			return l
		}
		return fmt.Sprintf("0x%08x", target)
	}

	s := strings.Builder{}
	for i, op := range e.Instruction.Operands {
		if i > 0 {
			s.WriteRune(',')
		}
		s.WriteString(op.String())
	}
	return s.String()
}

// Cycles returns the number of cycles in the instruction definition.
func (e *Entry) Cycles() string {
	if e.Level == EntryLevelData {
		return ""
	}
	return fmt.Sprintf("%d", e.Instruction.Defn.Cycles)
}

func (e *Entry) String() string {
	op := e.Operand()
	if op == "" {
		return e.Mnemonic()
	}
	return fmt.Sprintf("%s %s", e.Mnemonic(), op)
}
