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

package duart

// Register offsets from the origin of the DUART area. Registers are byte wide
// and are on the odd addresses. Where two registers share an offset the first
// is read and the second is written.
const (
	MRA      = 0x03 // mode register 1/2 A
	SRA      = 0x07 // status register A / clock select A
	CRA      = 0x0b // command register A (write only)
	RHRA     = 0x0f // receive holding register A / transmit holding register A
	IPCR     = 0x13 // input port change register / auxiliary control register
	ISR      = 0x17 // interrupt status register / interrupt mask register
	CTU      = 0x1b // counter upper / counter timer upper
	CTL      = 0x1f // counter lower / counter timer lower
	MRB      = 0x23 // mode register 1/2 B
	SRB      = 0x27 // status register B / clock select B
	CRB      = 0x2b // command register B (write only)
	RHRB     = 0x2f // receive holding register B / transmit holding register B
	IVR      = 0x33 // interrupt vector register
	IP       = 0x37 // input port / output port configuration register
	OPRSet   = 0x3b // start counter command / set output port bits
	OPRReset = 0x3f // stop counter command / reset output port bits
)

// Aliases for registers that share an offset.
const (
	CSRA = SRA
	THRA = RHRA
	ACR  = IPCR
	IMR  = ISR
	CSRB = SRB
	THRB = RHRB
	OPCR = IP
)

// Status register bits.
const (
	StatusRxRDY    = 0x01
	StatusFFULL    = 0x02
	StatusTxRDY    = 0x04
	StatusTxEMT    = 0x08
	StatusOverrun  = 0x10
	StatusParity   = 0x20
	StatusFraming  = 0x40
	StatusBreak    = 0x80
	statusErrors   = StatusOverrun | StatusParity | StatusFraming | StatusBreak
	statusRxErrors = StatusParity | StatusFraming
)

// Command register bits. The miscellaneous command is in bits 6 to 4.
const (
	CommandRxEnable  = 0x01
	CommandRxDisable = 0x02
	CommandTxEnable  = 0x04
	CommandTxDisable = 0x08
)

// Miscellaneous commands.
const (
	MiscNone                = 0
	MiscResetModePointer    = 1
	MiscResetReceiver       = 2
	MiscResetTransmitter    = 3
	MiscResetErrorStatus    = 4
	MiscResetBreakInterrupt = 5
	MiscStartBreak          = 6
	MiscStopBreak           = 7
)

// Interrupt status register bits.
const (
	InterruptTxRDYA    = 0x01
	InterruptRxRDYA    = 0x02
	InterruptErrorA    = 0x04
	InterruptCounter   = 0x08
	InterruptTxRDYB    = 0x10
	InterruptRxRDYB    = 0x20
	InterruptErrorB    = 0x40
	InterruptIPChanged = 0x80
)

// Input port bits. The mouse buttons are active low.
const (
	InputButton2       = 0x01
	InputButton1       = 0x02
	InputVerticalBlank = 0x04
	InputButton0       = 0x08
)

// power on value of the input port. all buttons released
const inputPowerOn = InputButton0 | InputButton1 | InputButton2

// ACR bit selecting the second set of baud rates
const acrBaudSet = 0x80

// mode register 2 channel mode field
const (
	channelModeMask     = 0xc0
	channelModeLoopback = 0x80
)

// KeyboardStatusRequest is the byte sent by the firmware to the keyboard to
// ask for its status.
const KeyboardStatusRequest = 0x02
