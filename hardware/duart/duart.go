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
	"strings"

	"github.com/dmdterm/dmd5620/hardware/instance"
	"github.com/dmdterm/dmd5620/hardware/queue"
	"github.com/dmdterm/dmd5620/notifications"
)

// DUART implements the memory.Device interface for the SCN2681.
type DUART struct {
	ins    *instance.Instance
	notify notifications.Notify

	channels [2]channel

	acr  uint8
	imr  uint8
	ivr  uint8
	opcr uint8
	opr  uint8

	// counter/timer preset. stored but the counter is not emulated
	ctur uint8
	ctlr uint8

	// input port and the change bits of the IPCR. the change bits are held in
	// the upper nibble, as they are seen in the IPCR
	inport  uint8
	ipDelta uint8

	// cycles until the next vertical blank
	vblankRemaining int

	// bell byte and interrupt level copied from the instance preferences
	bell  uint8
	level int

	// the keyboard. receives bytes transmitted on channel B
	Keyboard func(uint8)
}

// NewDUART is the preferred method of initialisation for the DUART type. The
// notify argument can be nil.
func NewDUART(ins *instance.Instance, notify notifications.Notify) *DUART {
	if notify == nil {
		notify = notifications.Discard
	}

	dev := &DUART{
		ins:    ins,
		notify: notify,
		bell:   ins.Live.Bell,
		level:  ins.Live.DUARTLevel,
	}

	dev.channels[A] = channel{
		id:     A,
		input:  queue.NewQueue(ins.Live.RS232InQueue),
		output: queue.NewQueue(ins.Live.RS232OutQueue),
	}
	dev.channels[B] = channel{
		id:    B,
		input: queue.NewQueue(ins.Live.KeyboardQueue),
	}

	dev.Reset()

	return dev
}

// Reset the DUART to its power on state. The input and output queues are not
// changed.
func (dev *DUART) Reset() {
	dev.channels[A].reset()
	dev.channels[B].reset()
	dev.acr = 0
	dev.imr = 0
	dev.ivr = 0x0f
	dev.opcr = 0
	dev.opr = 0
	dev.ctur = 0
	dev.ctlr = 0
	dev.inport = inputPowerOn
	dev.ipDelta = 0
	dev.vblankRemaining = dev.ins.Live.VerticalBlank
}

func (dev *DUART) String() string {
	s := strings.Builder{}
	s.WriteString(dev.channels[A].String())
	s.WriteString("\n")
	s.WriteString(dev.channels[B].String())
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("isr=%02x imr=%02x acr=%02x ip=%02x", dev.isr(), dev.imr, dev.acr, dev.inport))
	return s.String()
}

// Input pushes a byte into the input queue of the channel. Returns false if
// the queue is full, in which case the overrun bit of the channel's status
// register is set and the byte is discarded.
func (dev *DUART) Input(ch Channel, v uint8) bool {
	return dev.channels[ch].receive(v)
}

// Output pops a transmitted byte from the output queue of channel A. Returns
// false if there is nothing to pop.
func (dev *DUART) Output() (uint8, bool) {
	return dev.channels[A].output.Pop()
}

// OutputLen returns the number of bytes waiting in the output queue.
func (dev *DUART) OutputLen() int {
	return dev.channels[A].output.Len()
}

// InputLen returns the number of bytes waiting in the input queue of the
// channel.
func (dev *DUART) InputLen(ch Channel) int {
	return dev.channels[ch].input.Len()
}

// Status returns the value of the status register of the channel.
func (dev *DUART) Status(ch Channel) uint8 {
	return dev.channels[ch].status()
}

// isr computes the interrupt status register
func (dev *DUART) isr() uint8 {
	var v uint8

	a := &dev.channels[A]
	if a.txEnabled && !a.txBusy {
		v |= InterruptTxRDYA
	}
	if a.rxReady {
		v |= InterruptRxRDYA
	}
	if a.errors != 0 {
		v |= InterruptErrorA
	}

	b := &dev.channels[B]
	if b.txEnabled && !b.txBusy {
		v |= InterruptTxRDYB
	}
	if b.rxReady {
		v |= InterruptRxRDYB
	}
	if b.errors != 0 {
		v |= InterruptErrorB
	}

	// input port change interrupts are enabled individually by the lower four
	// bits of the ACR
	if (dev.ipDelta>>4)&dev.acr&0x0f != 0 {
		v |= InterruptIPChanged
	}

	return v
}

// InterruptLevel returns the level of the interrupt requested by the DUART.
// Returns zero if no interrupt is being requested.
func (dev *DUART) InterruptLevel() int {
	if dev.isr()&dev.imr != 0 {
		return dev.level
	}
	return 0
}

// MouseButton sets the state of one of the three mouse buttons. Buttons are
// numbered from zero.
func (dev *DUART) MouseButton(button int, pressed bool) {
	var bit uint8
	switch button {
	case 0:
		bit = InputButton0
	case 1:
		bit = InputButton1
	case 2:
		bit = InputButton2
	default:
		return
	}

	// buttons are active low
	state := dev.inport | bit
	if pressed {
		state &^= bit
	}
	dev.setInport(state)
}

func (dev *DUART) setInport(state uint8) {
	dev.ipDelta |= (dev.inport ^ state) << 4
	dev.inport = state
}

// Step advances the DUART by the number of CPU cycles.
func (dev *DUART) Step(cycles int) {
	dev.vblankRemaining -= cycles
	for dev.vblankRemaining <= 0 {
		dev.vblankRemaining += dev.ins.Live.VerticalBlank
		dev.setInport(dev.inport ^ InputVerticalBlank)
	}

	for i := range dev.channels {
		ch := &dev.channels[i]
		ch.stepReceiver(cycles)

		v, ok := ch.stepTransmitter(cycles)
		if !ok {
			continue
		}

		switch {
		case ch.loopback():
			ch.receive(v)
		case ch.output != nil:
			// try again on the next step if the queue is full
			if !ch.output.Push(v) {
				continue
			}
		case dev.Keyboard != nil:
			dev.Keyboard(v)
		}

		ch.txBusy = false
		ch.txRemaining = 0
	}
}
