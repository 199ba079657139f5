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
	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware/cpu/instructions"
)

// Error patterns returned by IsValid().
const (
	ErrNotFinal   = "execution: result not finalised"
	ErrByteCount  = "execution: byte count (%d) too short for opcode %04x [%s]"
	ErrCycleCount = "execution: cycle count (%d) less than base cycles (%d) for opcode %04x [%s]"
	ErrBadTrap    = "execution: trap vector %d does not match cause %s"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition. Intended to be used in tests
// to make sure the CPU implementation hasn't gone off the rails.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(ErrNotFinal)
	}

	if r.Trap.IsTrap() {
		v := int(r.Trap.Cause)
		if r.Trap.Cause == Interrupt {
			v = InterruptBase + r.Trap.Level
		}
		if v != r.Trap.Vector {
			return curated.Errorf(ErrBadTrap, r.Trap.Vector, r.Trap.Cause)
		}
	}

	// an illegal opcode or an interrupt taken out of a WAIT may have no
	// definition
	if r.Defn == nil {
		return nil
	}

	// every operand is at least one byte long. operands are not read if the
	// instruction is illegal
	if r.Defn.Operator != instructions.Illegal {
		n := r.Defn.OpcodeBytes() + len(r.Defn.Operands)
		if r.Trap.Cause == NoTrap && r.ByteCount < n {
			return curated.Errorf(ErrByteCount, r.ByteCount, r.Defn.Opcode, r.Defn.Mnemonic)
		}
	}

	if r.Cycles < r.Defn.Cycles {
		return curated.Errorf(ErrCycleCount, r.Cycles, r.Defn.Cycles, r.Defn.Opcode, r.Defn.Mnemonic)
	}

	return nil
}
