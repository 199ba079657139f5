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

package duart_test

import (
	"testing"

	"github.com/dmdterm/dmd5620/hardware/duart"
	"github.com/dmdterm/dmd5620/hardware/instance"
	"github.com/dmdterm/dmd5620/hardware/preferences"
	"github.com/dmdterm/dmd5620/notifications"
	"github.com/dmdterm/dmd5620/test"
)

// counts notifications by type
type notices map[notifications.Notice]int

func (n notices) Notify(notice notifications.Notice) error {
	n[notice]++
	return nil
}

func newDUART(t *testing.T, configure func(cfg *preferences.Config)) (*duart.DUART, notices) {
	t.Helper()

	cfg, err := preferences.NewConfig()
	test.DemandSuccess(t, err)
	if configure != nil {
		configure(cfg)
	}

	ins, err := instance.NewInstance(instance.Main, cfg)
	test.DemandSuccess(t, err)
	ins.Quiet = true

	n := make(notices)
	return duart.NewDUART(ins, n), n
}

func write(t *testing.T, dev *duart.DUART, reg uint32, v uint8) {
	t.Helper()
	test.DemandSuccess(t, dev.WriteRegister(reg, v))
}

// enable receiver and transmitter of the channel
func enable(t *testing.T, dev *duart.DUART, ch duart.Channel) {
	t.Helper()
	cr := uint32(duart.CRA)
	if ch == duart.B {
		cr = duart.CRB
	}
	write(t, dev, cr, duart.CommandRxEnable|duart.CommandTxEnable)
}

func TestBaudCodes(t *testing.T) {
	expected := [2][16]int{
		{2000000, 909091, 743494, 500000, 333333, 166667, 83333, 95238, 41667, 20833, 13889, 10417, 2604, 10417, 10417, 10417},
		{1333333, 909091, 743494, 666667, 333333, 166667, 83333, 50000, 41667, 20833, 55556, 10417, 5208, 10417, 10417, 10417},
	}

	for set := 0; set < 2; set++ {
		for code := 0; code < 16; code++ {
			d, ok := duart.Divisor(set == 1, code)
			test.ExpectEquality(t, ok, code < duart.NumBaudCodes, set, code)
			if ok {
				test.ExpectEquality(t, d, expected[set][code], set, code)
			}

			// codes 13 to 15 keep the previous rate, which is the power on rate
			dev, _ := newDUART(t, nil)
			if set == 1 {
				write(t, dev, duart.ACR, 0x80)
			}
			write(t, dev, duart.CSRA, uint8(code<<4|code))
			enable(t, dev, duart.A)

			test.DemandSuccess(t, dev.Input(duart.A, 'x'))
			dev.Step(expected[set][code] - 1)
			test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusRxRDY, 0, set, code)
			dev.Step(1)
			test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusRxRDY, duart.StatusRxRDY, set, code)
			test.ExpectEquality(t, dev.ReadRegister(duart.RHRA), 'x', set, code)
		}
	}
}

func TestBaudRates(t *testing.T) {
	b, ok := duart.Baud(false, 2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, 134.5)

	b, ok = duart.Baud(true, 12)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, 19200.0)

	_, ok = duart.Baud(true, 13)
	test.ExpectFailure(t, ok)
}

func TestRateSetChange(t *testing.T) {
	dev, _ := newDUART(t, nil)

	// code 7 is 1050 baud in the first set and 2000 baud in the second.
	// changing the ACR changes the rate of the selected code
	write(t, dev, duart.CSRA, 0x77)
	write(t, dev, duart.ACR, 0x80)
	enable(t, dev, duart.A)

	test.DemandSuccess(t, dev.Input(duart.A, 'x'))
	dev.Step(49999)
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusRxRDY, 0)
	dev.Step(1)
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusRxRDY, duart.StatusRxRDY)
}

func TestReceive(t *testing.T) {
	dev, _ := newDUART(t, nil)
	d, _ := duart.Divisor(false, duart.PowerOnBaudCode)

	// nothing is received while the receiver is disabled
	test.DemandSuccess(t, dev.Input(duart.A, 'a'))
	test.DemandSuccess(t, dev.Input(duart.A, 'b'))
	dev.Step(d * 4)
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusRxRDY, 0)
	test.ExpectEquality(t, dev.InputLen(duart.A), 2)

	enable(t, dev, duart.A)
	dev.Step(d)
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusRxRDY, duart.StatusRxRDY)
	test.ExpectEquality(t, dev.InputLen(duart.A), 1)

	// the next character is not received until the holding register has been
	// read
	dev.Step(d * 4)
	test.ExpectEquality(t, dev.InputLen(duart.A), 1)

	// peeking does not clear RxRDY
	test.ExpectEquality(t, dev.PeekRegister(duart.RHRA), 'a')
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusRxRDY, duart.StatusRxRDY)

	test.ExpectEquality(t, dev.ReadRegister(duart.RHRA), 'a')
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusRxRDY, 0)

	dev.Step(d)
	test.ExpectEquality(t, dev.ReadRegister(duart.RHRA), 'b')
	test.ExpectEquality(t, dev.InputLen(duart.A), 0)
}

func TestOverrun(t *testing.T) {
	dev, _ := newDUART(t, func(cfg *preferences.Config) {
		test.DemandSuccess(t, cfg.RS232InQueue.Set(2))
	})
	d, _ := duart.Divisor(false, duart.PowerOnBaudCode)

	test.ExpectSuccess(t, dev.Input(duart.A, 'a'))
	test.ExpectSuccess(t, dev.Input(duart.A, 'b'))
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusOverrun, 0)

	test.ExpectFailure(t, dev.Input(duart.A, 'c'))
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusOverrun, duart.StatusOverrun)
	test.ExpectEquality(t, dev.InputLen(duart.A), 2)

	// the oldest data is preserved
	enable(t, dev, duart.A)
	dev.Step(d)
	test.ExpectEquality(t, dev.ReadRegister(duart.RHRA), 'a')
	dev.Step(d)
	test.ExpectEquality(t, dev.ReadRegister(duart.RHRA), 'b')

	// the overrun bit remains until the error status is reset
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusOverrun, duart.StatusOverrun)
	write(t, dev, duart.CRA, duart.MiscResetErrorStatus<<4)
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusOverrun, 0)
}

func TestTransmit(t *testing.T) {
	dev, _ := newDUART(t, nil)
	d, _ := duart.Divisor(false, duart.PowerOnBaudCode)

	// transmitter is disabled at power on
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusTxRDY, 0)
	write(t, dev, duart.THRA, 'x')
	dev.Step(d)
	test.ExpectEquality(t, dev.OutputLen(), 0)

	enable(t, dev, duart.A)
	test.ExpectEquality(t, dev.Status(duart.A)&(duart.StatusTxRDY|duart.StatusTxEMT), duart.StatusTxRDY|duart.StatusTxEMT)

	write(t, dev, duart.THRA, 'y')
	test.ExpectEquality(t, dev.Status(duart.A)&(duart.StatusTxRDY|duart.StatusTxEMT), 0)

	dev.Step(d - 1)
	test.ExpectEquality(t, dev.OutputLen(), 0)
	dev.Step(1)
	test.ExpectEquality(t, dev.OutputLen(), 1)
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusTxRDY, duart.StatusTxRDY)

	v, ok := dev.Output()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 'y')

	_, ok = dev.Output()
	test.ExpectFailure(t, ok)
}

func TestOutputQueueFull(t *testing.T) {
	dev, _ := newDUART(t, func(cfg *preferences.Config) {
		test.DemandSuccess(t, cfg.RS232OutQueue.Set(1))
	})
	d, _ := duart.Divisor(false, duart.PowerOnBaudCode)
	enable(t, dev, duart.A)

	write(t, dev, duart.THRA, 'a')
	dev.Step(d)
	write(t, dev, duart.THRA, 'b')
	dev.Step(d * 2)

	// queue is full so the transmitter stays busy
	test.ExpectEquality(t, dev.OutputLen(), 1)
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusTxRDY, 0)

	v, _ := dev.Output()
	test.ExpectEquality(t, v, 'a')

	// the byte is delivered on the next step
	dev.Step(1)
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusTxRDY, duart.StatusTxRDY)
	v, _ = dev.Output()
	test.ExpectEquality(t, v, 'b')
}

func TestBell(t *testing.T) {
	dev, n := newDUART(t, nil)
	d, _ := duart.Divisor(false, duart.PowerOnBaudCode)
	enable(t, dev, duart.A)

	write(t, dev, duart.THRA, 0x07)
	test.ExpectEquality(t, n[notifications.NotifyBell], 1)

	// the notification is not repeated when the byte is delivered or when
	// the status is polled
	dev.Step(d * 2)
	dev.ReadRegister(duart.SRA)
	test.ExpectEquality(t, n[notifications.NotifyBell], 1)

	// the bell byte is transmitted like any other byte
	v, _ := dev.Output()
	test.ExpectEquality(t, v, 0x07)

	write(t, dev, duart.THRA, 'a')
	test.ExpectEquality(t, n[notifications.NotifyBell], 1)

	// the bell byte on the keyboard channel is not the bell
	enable(t, dev, duart.B)
	write(t, dev, duart.THRB, 0x07)
	test.ExpectEquality(t, n[notifications.NotifyBell], 1)

	write(t, dev, duart.THRA, 0x07)
	test.ExpectEquality(t, n[notifications.NotifyBell], 2)
}

func TestBellConfigured(t *testing.T) {
	dev, n := newDUART(t, func(cfg *preferences.Config) {
		test.DemandSuccess(t, cfg.Bell.Set(0x1b))
	})
	enable(t, dev, duart.A)
	write(t, dev, duart.THRA, 0x07)
	write(t, dev, duart.THRA, 0x1b)
	test.ExpectEquality(t, n[notifications.NotifyBell], 1)
}

func TestLoopback(t *testing.T) {
	dev, _ := newDUART(t, nil)
	d, _ := duart.Divisor(false, duart.PowerOnBaudCode)

	// MR1 then MR2
	write(t, dev, duart.MRA, 0x13)
	write(t, dev, duart.MRA, 0x80)
	enable(t, dev, duart.A)

	write(t, dev, duart.THRA, 'z')
	dev.Step(d)
	test.ExpectEquality(t, dev.OutputLen(), 0)
	test.ExpectEquality(t, dev.InputLen(duart.A), 1)

	dev.Step(d)
	test.ExpectEquality(t, dev.ReadRegister(duart.RHRA), 'z')
}

func TestModePointer(t *testing.T) {
	dev, _ := newDUART(t, nil)

	write(t, dev, duart.MRB, 0x11)
	write(t, dev, duart.MRB, 0x22)

	// pointer stays on MR2
	test.ExpectEquality(t, dev.ReadRegister(duart.MRB), 0x22)
	write(t, dev, duart.MRB, 0x33)
	test.ExpectEquality(t, dev.ReadRegister(duart.MRB), 0x33)

	write(t, dev, duart.CRB, duart.MiscResetModePointer<<4)
	test.ExpectEquality(t, dev.PeekRegister(duart.MRB), 0x11)
	test.ExpectEquality(t, dev.ReadRegister(duart.MRB), 0x11)
	test.ExpectEquality(t, dev.ReadRegister(duart.MRB), 0x33)
}

func TestResetReceiver(t *testing.T) {
	dev, _ := newDUART(t, nil)
	d, _ := duart.Divisor(false, duart.PowerOnBaudCode)
	enable(t, dev, duart.A)

	dev.Input(duart.A, 'a')
	dev.Input(duart.A, 'b')
	dev.Step(d)
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusRxRDY, duart.StatusRxRDY)

	write(t, dev, duart.CRA, duart.MiscResetReceiver<<4)
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusRxRDY, 0)
	test.ExpectEquality(t, dev.InputLen(duart.A), 0)

	// receiver is disabled after a reset
	dev.Input(duart.A, 'c')
	dev.Step(d)
	test.ExpectEquality(t, dev.Status(duart.A)&duart.StatusRxRDY, 0)
}

func TestInterrupts(t *testing.T) {
	dev, _ := newDUART(t, nil)
	d, _ := duart.Divisor(false, duart.PowerOnBaudCode)
	enable(t, dev, duart.A)

	// TxRDYA is in the ISR but masked
	test.ExpectEquality(t, dev.ReadRegister(duart.ISR)&duart.InterruptTxRDYA, duart.InterruptTxRDYA)
	test.ExpectEquality(t, dev.InterruptLevel(), 0)

	write(t, dev, duart.IMR, duart.InterruptRxRDYA)
	test.ExpectEquality(t, dev.InterruptLevel(), 0)

	dev.Input(duart.A, 'a')
	dev.Step(d)
	test.ExpectEquality(t, dev.InterruptLevel(), preferences.DefaultDUARTLevel)

	dev.ReadRegister(duart.RHRA)
	test.ExpectEquality(t, dev.InterruptLevel(), 0)

	write(t, dev, duart.IMR, duart.InterruptTxRDYA)
	test.ExpectEquality(t, dev.InterruptLevel(), preferences.DefaultDUARTLevel)
	write(t, dev, duart.THRA, 'a')
	test.ExpectEquality(t, dev.InterruptLevel(), 0)
	dev.Step(d)
	test.ExpectEquality(t, dev.InterruptLevel(), preferences.DefaultDUARTLevel)
}

func TestInterruptLevel(t *testing.T) {
	dev, _ := newDUART(t, func(cfg *preferences.Config) {
		test.DemandSuccess(t, cfg.DUARTLevel.Set(5))
	})
	enable(t, dev, duart.A)
	write(t, dev, duart.IMR, duart.InterruptTxRDYA)
	test.ExpectEquality(t, dev.InterruptLevel(), 5)
}

func TestKeyboard(t *testing.T) {
	dev, n := newDUART(t, nil)
	d, _ := duart.Divisor(false, duart.PowerOnBaudCode)

	var sent []uint8
	dev.Keyboard = func(v uint8) {
		sent = append(sent, v)
	}

	enable(t, dev, duart.B)
	write(t, dev, duart.IMR, duart.InterruptRxRDYB)

	// status request
	write(t, dev, duart.THRB, duart.KeyboardStatusRequest)
	test.ExpectEquality(t, n[notifications.NotifyKeyboardStatus], 1)
	test.ExpectEquality(t, dev.Status(duart.B)&(duart.StatusRxRDY|duart.StatusParity), duart.StatusRxRDY|duart.StatusParity)
	test.ExpectEquality(t, dev.InterruptLevel(), preferences.DefaultDUARTLevel)

	// reading the holding register clears the parity error
	dev.ReadRegister(duart.RHRB)
	test.ExpectEquality(t, dev.Status(duart.B)&(duart.StatusRxRDY|duart.StatusParity), 0)

	// transmitted bytes go to the keyboard
	dev.Step(d)
	test.ExpectEquality(t, len(sent), 1)
	test.ExpectEquality(t, sent[0], duart.KeyboardStatusRequest)
	test.ExpectEquality(t, dev.OutputLen(), 0)

	// key presses
	test.ExpectSuccess(t, dev.Input(duart.B, 0x41))
	dev.Step(d)
	test.ExpectEquality(t, dev.ReadRegister(duart.ISR)&duart.InterruptRxRDYB, duart.InterruptRxRDYB)
	test.ExpectEquality(t, dev.ReadRegister(duart.RHRB), 0x41)
}

func TestInputPort(t *testing.T) {
	dev, _ := newDUART(t, nil)

	test.ExpectEquality(t, dev.ReadRegister(duart.IP)&0x0f, duart.InputButton0|duart.InputButton1|duart.InputButton2)

	dev.MouseButton(0, true)
	test.ExpectEquality(t, dev.ReadRegister(duart.IP)&duart.InputButton0, 0)

	// peeking does not clear the change bits
	test.ExpectEquality(t, dev.PeekRegister(duart.IPCR)&0xf0, duart.InputButton0<<4)
	test.ExpectEquality(t, dev.ReadRegister(duart.IPCR)&0xf0, duart.InputButton0<<4)
	test.ExpectEquality(t, dev.ReadRegister(duart.IPCR)&0xf0, 0)

	// no change no delta
	dev.MouseButton(0, true)
	test.ExpectEquality(t, dev.ReadRegister(duart.IPCR)&0xf0, 0)

	// change interrupts must be enabled in the ACR
	write(t, dev, duart.IMR, duart.InterruptIPChanged)
	dev.MouseButton(2, true)
	test.ExpectEquality(t, dev.InterruptLevel(), 0)
	write(t, dev, duart.ACR, 0x0f)
	test.ExpectEquality(t, dev.InterruptLevel(), preferences.DefaultDUARTLevel)
	dev.ReadRegister(duart.IPCR)
	test.ExpectEquality(t, dev.InterruptLevel(), 0)

	dev.MouseButton(2, false)
	test.ExpectEquality(t, dev.ReadRegister(duart.IPCR), duart.InputButton2<<4|duart.InputButton1|duart.InputButton2)

	// unknown buttons are ignored
	dev.MouseButton(3, true)
	test.ExpectEquality(t, dev.ReadRegister(duart.IPCR)&0xf0, 0)
}

func TestVerticalBlank(t *testing.T) {
	dev, _ := newDUART(t, func(cfg *preferences.Config) {
		test.DemandSuccess(t, cfg.VerticalBlank.Set(1000))
	})

	dev.Step(999)
	test.ExpectEquality(t, dev.ReadRegister(duart.IPCR)&0xf0, 0)
	dev.Step(1)
	test.ExpectEquality(t, dev.ReadRegister(duart.IPCR)&0xf0, duart.InputVerticalBlank<<4)

	write(t, dev, duart.ACR, duart.InputVerticalBlank)
	write(t, dev, duart.IMR, duart.InterruptIPChanged)
	dev.Step(1000)
	test.ExpectEquality(t, dev.InterruptLevel(), preferences.DefaultDUARTLevel)
}

func TestRegisterStorage(t *testing.T) {
	dev, _ := newDUART(t, nil)

	write(t, dev, duart.IVR, 0x55)
	test.ExpectEquality(t, dev.ReadRegister(duart.IVR), 0x55)

	// even addresses read as zero
	test.ExpectEquality(t, dev.ReadRegister(0x00), 0)
	test.ExpectEquality(t, dev.ReadRegister(duart.RHRA-1), 0)
	test.ExpectSuccess(t, dev.WriteRegister(0x00, 0xff))

	dev.Reset()
	test.ExpectEquality(t, dev.ReadRegister(duart.IVR), 0x0f)
}
