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

package preferences

import (
	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware/clocks"
	"github.com/dmdterm/dmd5620/hardware/memory/memorymap"
	"github.com/dmdterm/dmd5620/prefs"
)

// Default values for the configuration.
const (
	DefaultRAMSize       = 0x100000
	DefaultDUARTLevel    = 13
	DefaultQueueCapacity = 64
	DefaultBell          = 0x07
	DefaultWaitQuantum   = 100

	// the interrupt stack starts after the display memory so that trap
	// frames do not overwrite the top of the screen
	DefaultISP = memorymap.OriginRAM + memorymap.DisplaySize
)

// Error patterns returned by Validate() and the value hooks.
const (
	ErrRAMSize  = "preferences: ram size (%#x) must be a multiple of 4 between 4 and %#x"
	ErrISP      = "preferences: interrupt stack pointer (%#08x) must be word aligned and inside RAM"
	ErrLevel    = "preferences: interrupt level (%d) must be between 1 and 15"
	ErrCapacity = "preferences: queue capacity (%d) must be at least 1"
	ErrByte     = "preferences: %s (%d) must fit in a byte"
	ErrCycles   = "preferences: %s (%d) must be positive"
)

// Config defines and collates all the configuration values of the hardware.
type Config struct {
	set *prefs.Set

	// size of RAM in bytes
	RAMSize prefs.Int

	// value RAM is filled with at power on
	RAMFill prefs.Int

	// initial value of the interrupt stack pointer
	ISP prefs.Int

	// the CPU interrupt level used by the DUART
	DUARTLevel prefs.Int

	// capacity of the keyboard, RS-232 input and RS-232 output queues
	KeyboardQueue prefs.Int
	RS232InQueue  prefs.Int
	RS232OutQueue prefs.Int

	// the byte that raises a bell notification when transmitted on the RS-232
	// channel
	Bell prefs.Int

	// number of cycles between vertical blanks
	VerticalBlank prefs.Int

	// number of cycles consumed by each step while the CPU is waiting for an
	// interrupt
	WaitQuantum prefs.Int

	// log every trap and interrupt dispatched by the CPU
	TraceTraps prefs.Bool
}

func (c *Config) String() string {
	return c.set.String()
}

// NewConfig is the preferred method of initialisation for the Config type.
// The values in the new instance are the default values.
func NewConfig() (*Config, error) {
	c := &Config{
		set: prefs.NewSet(),
	}

	c.RAMSize.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		top := int(memorymap.MemtopRAM-memorymap.OriginRAM) + 1
		if n < 4 || n > top || n%4 != 0 {
			return curated.Errorf(ErrRAMSize, n, top)
		}
		return nil
	})
	c.RAMFill.SetHookPre(byteHook("ram fill"))
	c.Bell.SetHookPre(byteHook("bell"))
	c.DUARTLevel.SetHookPre(func(v prefs.Value) error {
		if l := v.(int); l < 1 || l > 15 {
			return curated.Errorf(ErrLevel, l)
		}
		return nil
	})
	c.KeyboardQueue.SetHookPre(capacityHook)
	c.RS232InQueue.SetHookPre(capacityHook)
	c.RS232OutQueue.SetHookPre(capacityHook)
	c.VerticalBlank.SetHookPre(cyclesHook("vertical blank"))
	c.WaitQuantum.SetHookPre(cyclesHook("wait quantum"))

	for _, e := range []struct {
		key string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{"hardware.ram.size", &c.RAMSize},
		{"hardware.ram.fill", &c.RAMFill},
		{"hardware.cpu.isp", &c.ISP},
		{"hardware.cpu.waitquantum", &c.WaitQuantum},
		{"hardware.cpu.tracetraps", &c.TraceTraps},
		{"hardware.duart.level", &c.DUARTLevel},
		{"hardware.duart.bell", &c.Bell},
		{"hardware.duart.vblank", &c.VerticalBlank},
		{"hardware.queue.keyboard", &c.KeyboardQueue},
		{"hardware.queue.rs232in", &c.RS232InQueue},
		{"hardware.queue.rs232out", &c.RS232OutQueue},
	} {
		if err := c.set.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	if err := c.SetDefaults(); err != nil {
		return nil, err
	}

	return c, nil
}

func byteHook(name string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if n := v.(int); n < 0 || n > 0xff {
			return curated.Errorf(ErrByte, name, n)
		}
		return nil
	}
}

func cyclesHook(name string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if n := v.(int); n <= 0 {
			return curated.Errorf(ErrCycles, name, n)
		}
		return nil
	}
}

func capacityHook(v prefs.Value) error {
	if n := v.(int); n < 1 {
		return curated.Errorf(ErrCapacity, n)
	}
	return nil
}

// SetDefaults reverts all configuration values to their default values.
func (c *Config) SetDefaults() error {
	for _, e := range []struct {
		p interface{ Set(prefs.Value) error }
		v prefs.Value
	}{
		{&c.RAMSize, DefaultRAMSize},
		{&c.RAMFill, 0},
		{&c.ISP, int(DefaultISP)},
		{&c.WaitQuantum, DefaultWaitQuantum},
		{&c.TraceTraps, false},
		{&c.DUARTLevel, DefaultDUARTLevel},
		{&c.Bell, DefaultBell},
		{&c.VerticalBlank, clocks.VerticalBlank},
		{&c.KeyboardQueue, DefaultQueueCapacity},
		{&c.RS232InQueue, DefaultQueueCapacity},
		{&c.RS232OutQueue, DefaultQueueCapacity},
	} {
		if err := e.p.Set(e.v); err != nil {
			return err
		}
	}
	return nil
}

// ApplyCommandLine sets configuration values from the top group of the
// command line stack.
func (c *Config) ApplyCommandLine() error {
	if err := c.set.ApplyCommandLine(); err != nil {
		return err
	}
	return c.Validate()
}

// Set the configuration value with the key. For example "hardware.ram.size".
func (c *Config) Set(key string, v prefs.Value) error {
	return c.set.Set(key, v)
}

// Validate checks the values that depend on one another. Individual values are
// checked as they are set.
func (c *Config) Validate() error {
	isp := uint32(c.ISP.Get().(int))
	top := memorymap.OriginRAM + uint32(c.RAMSize.Get().(int))
	if isp%4 != 0 || isp < memorymap.OriginRAM || isp >= top {
		return curated.Errorf(ErrISP, isp)
	}
	return nil
}

// Live values of the configuration. Components of the emulation use the
// Live type rather than the prefs values because reading the prefs values is
// comparatively slow.
type Live struct {
	RAMSize       int
	RAMFill       uint8
	ISP           uint32
	DUARTLevel    int
	KeyboardQueue int
	RS232InQueue  int
	RS232OutQueue int
	Bell          uint8
	VerticalBlank int
	WaitQuantum   int
	TraceTraps    bool
}

// Live returns the current configuration values.
func (c *Config) Live() Live {
	return Live{
		RAMSize:       c.RAMSize.Get().(int),
		RAMFill:       uint8(c.RAMFill.Get().(int)),
		ISP:           uint32(c.ISP.Get().(int)),
		DUARTLevel:    c.DUARTLevel.Get().(int),
		KeyboardQueue: c.KeyboardQueue.Get().(int),
		RS232InQueue:  c.RS232InQueue.Get().(int),
		RS232OutQueue: c.RS232OutQueue.Get().(int),
		Bell:          uint8(c.Bell.Get().(int)),
		VerticalBlank: c.VerticalBlank.Get().(int),
		WaitQuantum:   c.WaitQuantum.Get().(int),
		TraceTraps:    c.TraceTraps.Get().(bool),
	}
}
