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

import "strings"

// Status is the processor status word.
type Status uint32

// Bits and fields in the status word.
const (
	ET  Status = 0x00000003 // exception type
	TM  Status = 0x00000004 // trace mask
	ISC Status = 0x00000078 // internal state code
	I   Status = 0x00000080 // initial context
	R   Status = 0x00000100 // register save
	PM  Status = 0x00000600 // previous execution mode
	CM  Status = 0x00001800 // current execution mode
	IPL Status = 0x0001e000 // interrupt priority level
	TE  Status = 0x00020000 // trace enable
	C   Status = 0x00040000 // carry
	V   Status = 0x00080000 // overflow
	Z   Status = 0x00100000 // zero
	N   Status = 0x00200000 // negative
	OE  Status = 0x00400000 // enable overflow trap
	CD  Status = 0x00800000 // cache disable
	QIE Status = 0x01000000 // quick interrupt enable
	CFD Status = 0x02000000 // cache flush disable
)

const (
	shiftET  = 0
	shiftISC = 3
	shiftPM  = 9
	shiftCM  = 11
	shiftIPL = 13
)

// Mode is the execution level of the CPU.
type Mode uint32

// List of execution modes.
const (
	Kernel Mode = iota
	Executive
	Supervisor
	User
)

func (m Mode) String() string {
	switch m {
	case Kernel:
		return "kernel"
	case Executive:
		return "executive"
	case Supervisor:
		return "supervisor"
	case User:
		return "user"
	}
	return "unknown mode"
}

// Is returns true if all the bits in the mask are set.
func (s Status) Is(mask Status) bool {
	return s&mask == mask
}

// Set or clear the bits in the mask.
func (s *Status) Set(mask Status, v bool) {
	if v {
		*s |= mask
	} else {
		*s &^= mask
	}
}

// SetFlags sets all four condition flags in one go.
func (s *Status) SetFlags(n, z, v, c bool) {
	s.Set(N, n)
	s.Set(Z, z)
	s.Set(V, v)
	s.Set(C, c)
}

func (s Status) field(mask Status, shift int) uint32 {
	return uint32(s&mask) >> shift
}

func (s *Status) setField(mask Status, shift int, v uint32) {
	*s = (*s &^ mask) | (Status(v<<shift) & mask)
}

// IPL returns the interrupt priority level.
func (s Status) IPL() int {
	return int(s.field(IPL, shiftIPL))
}

// SetIPL sets the interrupt priority level.
func (s *Status) SetIPL(l int) {
	s.setField(IPL, shiftIPL, uint32(l))
}

// CM returns the current execution mode.
func (s Status) CM() Mode {
	return Mode(s.field(CM, shiftCM))
}

// SetCM sets the current execution mode.
func (s *Status) SetCM(m Mode) {
	s.setField(CM, shiftCM, uint32(m))
}

// PM returns the previous execution mode.
func (s Status) PM() Mode {
	return Mode(s.field(PM, shiftPM))
}

// SetPM sets the previous execution mode.
func (s *Status) SetPM(m Mode) {
	s.setField(PM, shiftPM, uint32(m))
}

// ISC returns the internal state code.
func (s Status) ISC() uint32 {
	return s.field(ISC, shiftISC)
}

// SetISC sets the internal state code.
func (s *Status) SetISC(v uint32) {
	s.setField(ISC, shiftISC, v)
}

// ET returns the exception type.
func (s Status) ET() uint32 {
	return s.field(ET, shiftET)
}

// SetET sets the exception type.
func (s *Status) SetET(v uint32) {
	s.setField(ET, shiftET, v)
}

func (s Status) String() string {
	b := strings.Builder{}
	flag := func(mask Status, c byte) {
		if s.Is(mask) {
			b.WriteByte(c)
		} else {
			b.WriteByte(c + 32)
		}
	}
	flag(N, 'N')
	flag(Z, 'Z')
	flag(V, 'V')
	flag(C, 'C')
	flag(OE, 'O')
	b.WriteString(" ipl=")
	b.WriteString(string("0123456789abcdef"[s.IPL()]))
	b.WriteString(" cm=")
	b.WriteString(s.CM().String())
	return b.String()
}
