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

package hardware

import (
	"github.com/dmdterm/dmd5620/hardware/cpu"
	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
	"github.com/dmdterm/dmd5620/hardware/duart"
	"github.com/dmdterm/dmd5620/hardware/instance"
	"github.com/dmdterm/dmd5620/hardware/memory"
	"github.com/dmdterm/dmd5620/hardware/memory/memorymap"
	"github.com/dmdterm/dmd5620/hardware/preferences"
	"github.com/dmdterm/dmd5620/hardware/queue"
	"github.com/dmdterm/dmd5620/notifications"
)

// Machine is the root of the emulation. It contains the CPU, the memory bus
// and the DUART.
type Machine struct {
	Instance *instance.Instance

	CPU   *cpu.CPU
	Mem   *memory.Bus
	DUART *duart.DUART

	notify notifications.Notify

	// number of CPU cycles since the last reset
	Clock uint64
}

type options struct {
	label    instance.Label
	quiet    bool
	notify   notifications.Notify
	keyboard func(uint8)
	bindings []memorymap.Binding
}

// Option changes how a Machine is created.
type Option func(*options)

// WithNotify sets the implementation of notifications.Notify that receives
// bell, halt and fault notices.
func WithNotify(notify notifications.Notify) Option {
	return func(o *options) {
		o.notify = notify
	}
}

// WithLabel sets the label of the instance. The label prefixes log entries.
func WithLabel(label instance.Label) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithQuiet prevents the Machine from creating log entries.
func WithQuiet() Option {
	return func(o *options) {
		o.quiet = true
	}
}

// WithKeyboard sets the function that receives bytes transmitted by the
// firmware to the keyboard.
func WithKeyboard(keyboard func(uint8)) Option {
	return func(o *options) {
		o.keyboard = keyboard
	}
}

// WithMemoryMap replaces the default memory map. The size of the RAM area in
// the bindings takes precedence over the RAM size preference.
func WithMemoryMap(bindings []memorymap.Binding) Option {
	return func(o *options) {
		o.bindings = bindings
	}
}

// NewMachine creates a new Machine with the default configuration. The ROM
// image is copied and loaded at the origin of the ROM area.
func NewMachine(rom []uint8, opts ...Option) (*Machine, error) {
	return NewMachineWithConfig(rom, nil, opts...)
}

// NewMachineWithConfig creates a new Machine with the supplied configuration.
// The prefs argument can be nil, in which case the default configuration is
// used. The configuration can be shared between machines.
//
// The machine is reset before it is returned. An error is returned if the
// memory map is invalid, if the ROM image is too big, or if the CPU could not
// be reset.
func NewMachineWithConfig(rom []uint8, prefs *preferences.Config, opts ...Option) (*Machine, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.notify == nil {
		o.notify = notifications.Discard
	}

	ins, err := instance.NewInstance(o.label, prefs)
	if err != nil {
		return nil, err
	}
	ins.Quiet = o.quiet

	m := &Machine{
		Instance: ins,
		notify:   o.notify,
	}

	bindings := o.bindings
	if bindings == nil {
		bindings = memorymap.Default()
		for i := range bindings {
			if bindings[i].Area == memorymap.RAM {
				bindings[i].Memtop = bindings[i].Origin + uint32(ins.Live.RAMSize) - 1
			}
		}
	}

	m.DUART = duart.NewDUART(ins, o.notify)
	m.DUART.Keyboard = o.keyboard

	m.Mem, err = memory.NewBus(bindings, rom, ins.Live.RAMFill, m.DUART)
	if err != nil {
		return nil, err
	}

	m.CPU, err = cpu.NewCPU(ins, m.Mem, m.DUART)
	if err != nil {
		return nil, err
	}

	if err := m.Reset(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Reset the machine. RAM is filled with the configured value, the DUART
// returns to its power on state and the CPU is reset. Bytes waiting in the
// DUART queues are kept.
func (m *Machine) Reset() error {
	m.Clock = 0
	m.Mem.RAM.Fill(m.Instance.Live.RAMFill)
	m.DUART.Reset()

	if err := m.CPU.Reset(); err != nil {
		_ = m.notify.Notify(notifications.NotifyFaulted)
		return err
	}

	return nil
}

// called by the CPU with the number of cycles consumed by an instruction
func (m *Machine) cycle(n int) error {
	m.Clock += uint64(n)
	m.DUART.Step(n)
	return nil
}

// Step the emulation forward one CPU instruction. A CPU that is waiting for an
// interrupt consumes one wait quantum.
//
// Traps are not errors and are recorded in the returned Result. An error is
// returned if the CPU faulted or if a notification failed.
func (m *Machine) Step() (execution.Result, error) {
	prev := m.CPU.State

	err := m.CPU.ExecuteInstruction(m.cycle)

	if m.CPU.State != prev {
		var nerr error
		switch m.CPU.State {
		case execution.Halted:
			nerr = m.notify.Notify(notifications.NotifyHalt)
		case execution.Faulted:
			nerr = m.notify.Notify(notifications.NotifyFaulted)
		}
		if err == nil {
			err = nerr
		}
	}

	return m.CPU.LastResult, err
}

// KeyboardInput queues a key code for the keyboard channel of the DUART.
// Returns false if the queue is full, in which case the key code is discarded
// and the channel reports an overrun.
func (m *Machine) KeyboardInput(v uint8) bool {
	return m.DUART.Input(duart.B, v)
}

// RS232Input queues a byte for the RS-232 channel of the DUART. Returns false
// if the queue is full, in which case the byte is discarded and the channel
// reports an overrun.
func (m *Machine) RS232Input(v uint8) bool {
	return m.DUART.Input(duart.A, v)
}

// RS232Write queues bytes for the RS-232 channel, stopping at the first byte
// that does not fit. Returns the number of bytes queued and queue.ErrQueueFull
// if not all bytes could be queued.
//
// Unlike RS232Input() a full queue does not cause an overrun.
func (m *Machine) RS232Write(p []uint8) (int, error) {
	for i, v := range p {
		if m.DUART.InputLen(duart.A) >= m.Instance.Live.RS232InQueue {
			return i, queue.ErrQueueFull
		}
		m.DUART.Input(duart.A, v)
	}
	return len(p), nil
}

// RS232Output pops a byte transmitted by the firmware on the RS-232 channel.
// Returns false if there is nothing to pop.
func (m *Machine) RS232Output() (uint8, bool) {
	return m.DUART.Output()
}

// RS232OutputLen returns the number of bytes waiting to be popped by
// RS232Output().
func (m *Machine) RS232OutputLen() int {
	return m.DUART.OutputLen()
}

// MouseButton sets the state of one of the three mouse buttons. Buttons are
// numbered from zero, left to right.
func (m *Machine) MouseButton(button int, pressed bool) {
	m.DUART.MouseButton(button, pressed)
}

// VideoRAM copies the display memory into dst. Returns the number of bytes
// copied, which is never more than memorymap.DisplaySize.
func (m *Machine) VideoRAM(dst []uint8) int {
	if len(dst) > memorymap.DisplaySize {
		dst = dst[:memorymap.DisplaySize]
	}
	return m.Mem.RAM.Copy(dst, 0)
}
