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
	"github.com/dmdterm/dmd5620/notifications"
)

// ReadRegister implements the memory.Device interface.
func (dev *DUART) ReadRegister(offset uint32) uint8 {
	return dev.read(offset, false)
}

// PeekRegister implements the memory.Device interface.
func (dev *DUART) PeekRegister(offset uint32) uint8 {
	return dev.read(offset, true)
}

func (dev *DUART) read(offset uint32, peek bool) uint8 {
	switch offset {
	case MRA:
		return dev.channels[A].readMode(peek)
	case SRA:
		return dev.channels[A].status()
	case RHRA:
		return dev.channels[A].readHolding(peek)
	case IPCR:
		v := dev.ipDelta | (dev.inport & 0x0f)
		if !peek {
			dev.ipDelta = 0
		}
		return v
	case ISR:
		return dev.isr()
	case MRB:
		return dev.channels[B].readMode(peek)
	case SRB:
		return dev.channels[B].status()
	case RHRB:
		return dev.channels[B].readHolding(peek)
	case IVR:
		return dev.ivr
	case IP:
		return dev.inport
	case CTU, CTL, OPRSet, OPRReset:
		if !peek {
			dev.ins.Logf("duart", "counter/timer not emulated (read %02x)", offset)
		}
		return 0
	}

	// even addresses and write only registers
	return 0
}

// WriteRegister implements the memory.Device interface.
func (dev *DUART) WriteRegister(offset uint32, data uint8) error {
	switch offset {
	case MRA:
		dev.channels[A].writeMode(data)
	case CSRA:
		dev.selectClock(A, data)
	case CRA:
		dev.command(A, data)
	case THRA:
		return dev.transmit(A, data)
	case ACR:
		dev.acr = data
		dev.reselectClocks()
	case IMR:
		dev.imr = data
	case CTU:
		dev.ctur = data
	case CTL:
		dev.ctlr = data
	case MRB:
		dev.channels[B].writeMode(data)
	case CSRB:
		dev.selectClock(B, data)
	case CRB:
		dev.command(B, data)
	case THRB:
		return dev.transmit(B, data)
	case IVR:
		dev.ivr = data
	case OPCR:
		dev.opcr = data
	case OPRSet:
		dev.opr |= data
	case OPRReset:
		dev.opr &^= data
	default:
		dev.ins.Logf("duart", "write to unimplemented register (%02x)", offset)
	}
	return nil
}

func (dev *DUART) selectClock(id Channel, data uint8) {
	ch := &dev.channels[id]
	if !ch.selectClock(int(data>>4), int(data&0x0f), dev.acr&acrBaudSet == acrBaudSet) {
		dev.ins.Logf("duart", "channel %s: clock select (%02x) not emulated. keeping previous rate", id, data)
	}
}

// changing the ACR changes the rate set of the selected codes
func (dev *DUART) reselectClocks() {
	for i := range dev.channels {
		ch := &dev.channels[i]
		ch.selectClock(ch.rxCode, ch.txCode, dev.acr&acrBaudSet == acrBaudSet)
	}
}

func (dev *DUART) command(id Channel, data uint8) {
	ch := &dev.channels[id]

	switch (data >> 4) & 0x07 {
	case MiscNone:
	case MiscResetModePointer:
		ch.mrPtr = 0
	case MiscResetReceiver:
		ch.rxEnabled = false
		ch.rxReady = false
		ch.rxRemaining = 0
		ch.input.Clear()
	case MiscResetTransmitter:
		ch.txEnabled = false
		ch.txBusy = false
		ch.txRemaining = 0
	case MiscResetErrorStatus:
		ch.errors = 0
	default:
		dev.ins.Logf("duart", "channel %s: command (%02x) not emulated", id, data)
	}

	if data&CommandRxDisable == CommandRxDisable {
		ch.rxEnabled = false
	} else if data&CommandRxEnable == CommandRxEnable {
		ch.rxEnabled = true
	}

	if data&CommandTxDisable == CommandTxDisable {
		ch.txEnabled = false
	} else if data&CommandTxEnable == CommandTxEnable {
		ch.txEnabled = true
	}
}

func (dev *DUART) transmit(id Channel, data uint8) error {
	ch := &dev.channels[id]

	// the bell notification does not depend on the state of the transmitter
	var err error
	if id == A && data == dev.bell {
		err = dev.notify.Notify(notifications.NotifyBell)
	}

	if !ch.txEnabled {
		dev.ins.Logf("duart", "channel %s: write to disabled transmitter (%02x)", id, data)
		return err
	}

	if ch.txBusy {
		dev.ins.Logf("duart", "channel %s: transmitter overrun (%02x lost)", id, ch.txHolding)
	}

	ch.transmit(data)

	// the keyboard answers a status request immediately. the firmware sees the
	// answer as a received character with a parity error
	if id == B && data == KeyboardStatusRequest {
		ch.rxReady = true
		ch.errors |= StatusParity
		err = dev.notify.Notify(notifications.NotifyKeyboardStatus)
	}

	return err
}
