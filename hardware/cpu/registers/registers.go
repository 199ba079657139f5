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

package registers

import (
	"fmt"
	"strings"
)

// The special purpose registers. r0 to r8 are general purpose.
const (
	FP   = 9
	AP   = 10
	PSW  = 11
	SP   = 12
	PCBP = 13
	ISP  = 14
	PC   = 15
)

// NumRegisters in the register file.
const NumRegisters = 16

var names = [NumRegisters]string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8",
	"fp", "ap", "psw", "sp", "pcbp", "isp", "pc",
}

// Name returns the assembler name of the register.
func Name(r int) string {
	if r < 0 || r >= NumRegisters {
		return fmt.Sprintf("r?%d", r)
	}
	return names[r]
}

// File is the register file of the CPU.
type File [NumRegisters]uint32

// Status returns the PSW register as a Status value.
func (f *File) Status() Status {
	return Status(f[PSW])
}

// SetStatus sets the PSW register.
func (f *File) SetStatus(s Status) {
	f[PSW] = uint32(s)
}

func (f *File) String() string {
	s := strings.Builder{}
	for i, v := range f {
		if i > 0 {
			if i%4 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString(fmt.Sprintf("%4s=%08x", names[i], v))
	}
	return s.String()
}
