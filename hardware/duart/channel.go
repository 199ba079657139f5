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

import (
	"fmt"

	"github.com/dmdterm/dmd5620/hardware/queue"
)

// Channel identifies one of the two serial channels.
type Channel int

// List of channels.
const (
	// the RS-232 port
	A Channel = iota

	// the keyboard
	B
)

func (c Channel) String() string {
	switch c {
	case A:
		return "A"
	case B:
		return "B"
	}
	return "?"
}

type channel struct {
	id Channel

	// mode registers 1 and 2 and the pointer selecting which is accessed
	mr    [2]uint8
	mrPtr int

	// clock select codes
	rxCode int
	txCode int

	// cycles per character
	rxDivisor int
	txDivisor int

	rxEnabled bool
	txEnabled bool

	// receive holding register
	rxHolding uint8
	rxReady   bool

	// cycles remaining until the character being received arrives in the
	// holding register. zero if no character is being received
	rxRemaining int

	// overrun, parity, framing and break bits of the status register
	errors uint8

	// transmit holding register
	txHolding uint8
	txBusy    bool

	// cycles remaining until the character being transmitted has been sent.
	// if txBusy is true and txRemaining is zero or less the character is
	// waiting for space in the output queue
	txRemaining int

	// bytes received from outside the DUART
	input *queue.Queue

	// bytes transmitted by the DUART. nil if the channel has no host facing
	// output
	output *queue.Queue
}

func (ch *channel) String() string {
	return fmt.Sprintf("%s: sr=%02x mr1=%02x mr2=%02x rx=%d/%d tx=%d/%d in=%d",
		ch.id, ch.status(), ch.mr[0], ch.mr[1],
		ch.rxCode, ch.rxDivisor, ch.txCode, ch.txDivisor, ch.input.Len())
}

func (ch *channel) reset() {
	ch.mr = [2]uint8{}
	ch.mrPtr = 0
	ch.rxCode = PowerOnBaudCode
	ch.txCode = PowerOnBaudCode
	ch.rxDivisor, _ = Divisor(false, PowerOnBaudCode)
	ch.txDivisor = ch.rxDivisor
	ch.rxEnabled = false
	ch.txEnabled = false
	ch.rxHolding = 0
	ch.rxReady = false
	ch.rxRemaining = 0
	ch.errors = 0
	ch.txHolding = 0
	ch.txBusy = false
	ch.txRemaining = 0
}

// status register value
func (ch *channel) status() uint8 {
	s := ch.errors
	if ch.rxReady {
		s |= StatusRxRDY
	}
	if ch.txEnabled && !ch.txBusy {
		s |= StatusTxRDY | StatusTxEMT
	}
	return s
}

func (ch *channel) loopback() bool {
	return ch.mr[1]&channelModeMask == channelModeLoopback
}

func (ch *channel) readMode(peek bool) uint8 {
	v := ch.mr[ch.mrPtr]
	if !peek {
		ch.mrPtr = 1
	}
	return v
}

func (ch *channel) writeMode(v uint8) {
	ch.mr[ch.mrPtr] = v
	ch.mrPtr = 1
}

func (ch *channel) readHolding(peek bool) uint8 {
	v := ch.rxHolding
	if !peek {
		ch.rxReady = false
		ch.errors &^= statusRxErrors
	}
	return v
}

// returns false if the code is not supported. the previous divisor is kept in
// that case
func (ch *channel) selectClock(rxCode int, txCode int, setB bool) bool {
	ok := true
	ch.rxCode = rxCode
	ch.txCode = txCode
	if d, valid := Divisor(setB, rxCode); valid {
		ch.rxDivisor = d
	} else {
		ok = false
	}
	if d, valid := Divisor(setB, txCode); valid {
		ch.txDivisor = d
	} else {
		ok = false
	}
	return ok
}

// push a byte into the input queue. sets the overrun bit if the queue is full
func (ch *channel) receive(v uint8) bool {
	if !ch.input.Push(v) {
		ch.errors |= StatusOverrun
		return false
	}
	return true
}

func (ch *channel) stepReceiver(cycles int) {
	if ch.rxRemaining <= 0 && ch.rxEnabled && !ch.rxReady && !ch.input.Empty() {
		ch.rxRemaining = ch.rxDivisor
	}

	if ch.rxRemaining <= 0 {
		return
	}

	ch.rxRemaining -= cycles
	if ch.rxRemaining > 0 {
		return
	}

	ch.rxRemaining = 0

	// the receiver may have been disabled or reset while the character was
	// arriving
	if v, ok := ch.input.Pop(); ok {
		ch.rxHolding = v
		ch.rxReady = true
	}
}

// returns the byte and true if a character has finished transmitting and
// should be delivered. deliver() must then be called
func (ch *channel) stepTransmitter(cycles int) (uint8, bool) {
	if !ch.txBusy {
		return 0, false
	}
	if ch.txRemaining > 0 {
		ch.txRemaining -= cycles
		if ch.txRemaining > 0 {
			return 0, false
		}
	}
	return ch.txHolding, true
}

func (ch *channel) transmit(v uint8) {
	ch.txHolding = v
	ch.txBusy = true
	ch.txRemaining = ch.txDivisor
}
