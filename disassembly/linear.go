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

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware/cpu"
)

// Error patterns returned by the linear sweep.
const (
	ErrUnreadable = "disassembly: %v"
)

// linearDisassembly decodes the range of memory from the origin. an
// instruction that decodes successfully is followed by the instruction at
// the address after it. a failed decode results in a single byte data entry.
//
// the sweep fails only if a byte in the range can not be read at all.
func (dsm *Disassembly) linearDisassembly(mem Memory) error {
	// instructions must not be read from outside the range
	fetch := func(address uint32) (uint8, error) {
		if address < dsm.Origin || address > dsm.Memtop {
			return 0, curated.Errorf(ErrOutOfRange, address)
		}
		return mem.Peek8(address)
	}

	// address is wider than the address space so that a range that ends at
	// the top of the address space terminates
	address := uint64(dsm.Origin)
	for address <= uint64(dsm.Memtop) {
		in, err := cpu.Decode(fetch, uint32(address), nil)

		e := &Entry{
			dsm:     dsm,
			Address: uint32(address),
		}

		if err == nil {
			e.Level = EntryLevelDecoded
			e.Instruction = in
			e.Bytes = make([]uint8, in.Length)
		} else {
			e.Level = EntryLevelData
			e.Bytes = make([]uint8, 1)
		}

		for i := range e.Bytes {
			e.Bytes[i], err = mem.Peek8(uint32(address) + uint32(i))
			if err != nil {
				return curated.Errorf(ErrUnreadable, err)
			}
		}

		dsm.Entries = append(dsm.Entries, e)
		dsm.reference[e.Address] = e
		address += uint64(len(e.Bytes))
	}

	// label branch targets that are the start of an entry
	for _, e := range dsm.Entries {
		if e.Level != EntryLevelDecoded {
			continue
		}
		if target, ok := e.Instruction.Target(); ok {
			if _, ok := dsm.reference[target]; ok {
				dsm.labels[target] = fmt.Sprintf("L%06x", target)
			}
		}
	}

	return nil
}
