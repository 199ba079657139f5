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

// Package cpu emulates the WE32100 microprocessor found in the DMD 5620. The
// WE32100 is a 32 bit processor with sixteen registers, of which r9 to r15
// have special purposes (see the registers package). The DMD 5620 has no MMU
// and no math accelerator so instructions that require them raise the
// IllegalInstruction trap.
//
// An instruction is an opcode followed by zero or more operands. Opcodes are
// a single byte or, if the first byte is instructions.HalfwordPrefix, two
// bytes. Operands are described by operand descriptors, the high nibble of
// which is the addressing mode and the low nibble a register. The Decode()
// function decodes an instruction without executing it and is used by the
// disassembly package.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function that is given the number of cycles
// taken by the instruction. The DMD 5620 uses this to advance the DUART before
// the CPU checks for a pending interrupt.
//
//	mc, _ := cpu.NewCPU(ins, mem, duart)
//	_ = mc.Reset()
//
//	for mc.State != execution.Halted {
//		err := mc.ExecuteInstruction(func(cycles int) error {
//			duart.Step(cycles)
//			return nil
//		})
//		if err != nil {
//			break
//		}
//	}
//
// Traps are not errors. A trap pushes the PC and PSW onto the interrupt stack
// and continues execution at the address in the vector table. The vector table
// is read from memory once, when the CPU is created. Faults that prevent an
// instruction from being fetched, or a trap from being dispatched, move the
// CPU into the Faulted state and are returned as errors. A Faulted CPU must
// be reset before it will execute another instruction.
//
// The LastResult field can be inspected for information about the last
// instruction executed. See the execution package for more information.
package cpu
