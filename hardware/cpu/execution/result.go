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

package execution

import (
	"fmt"

	"github.com/dmdterm/dmd5620/hardware/cpu/instructions"
)

// Result records the state/result of the last instruction executed by the
// CPU.
type Result struct {
	// the address at which the instruction began
	Address uint32

	// a reference to the instruction definition. nil if the opcode was not
	// recognised
	Defn *instructions.Definition

	// the number of bytes read from the instruction stream
	ByteCount int

	// the number of cycles taken by the instruction, including any trap
	// dispatch that followed it
	Cycles int

	// trap or interrupt dispatched during or after the instruction
	Trap Trap

	// state of the CPU after the instruction
	State State

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	mnemonic := "???"
	if r.Defn != nil {
		mnemonic = r.Defn.Mnemonic
	}

	cycles := "[v]"
	if r.Final {
		cycles = fmt.Sprintf("[%d]", r.Cycles)
	}

	s := fmt.Sprintf("%08x\t%s\t%s", r.Address, mnemonic, cycles)
	if r.Trap.IsTrap() {
		s = fmt.Sprintf("%s * %s *", s, r.Trap)
	}
	if r.State != Running {
		s = fmt.Sprintf("%s (%s)", s, r.State)
	}
	return s
}
