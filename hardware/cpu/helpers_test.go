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

package cpu_test

import (
	"testing"

	"github.com/dmdterm/dmd5620/hardware/cpu"
	"github.com/dmdterm/dmd5620/hardware/cpu/registers"
	"github.com/dmdterm/dmd5620/hardware/instance"
	"github.com/dmdterm/dmd5620/hardware/memory/cpubus"
	"github.com/dmdterm/dmd5620/hardware/preferences"
	"github.com/dmdterm/dmd5620/test"
)

// layout of the mock memory
const (
	romTop  = 0x0001ffff
	memTop  = 0x007fffff
	pcb     = 0x00000100
	origin  = 0x00002000
	stack   = 0x00710000
	handler = 0x00001000
	istack  = preferences.DefaultISP
)

// handler address for the vector
func vector(index int) uint32 {
	return handler + uint32(index)*0x10
}

// mockMem is flat memory with a read-only area at the bottom, like the ROM
type mockMem struct {
	internal map[uint32]uint8
}

func newMockMem() *mockMem {
	mem := &mockMem{
		internal: make(map[uint32]uint8),
	}

	for i := 0; i < 32; i++ {
		mem.putWord(cpubus.Vector(i), vector(i))
	}

	mem.putWord(cpubus.PCBPointer, pcb)
	mem.putWord(pcb, 0)
	mem.putWord(pcb+4, origin)
	mem.putWord(pcb+8, stack)

	return mem
}

func (mem *mockMem) check(address uint32, width int, access cpubus.Access) error {
	if address%uint32(width) != 0 {
		return cpubus.NewFault(cpubus.Misaligned, address, access, width)
	}
	if address > memTop {
		return cpubus.NewFault(cpubus.Unmapped, address, access, width)
	}
	if access == cpubus.AccessWrite && address <= romTop {
		return cpubus.NewFault(cpubus.ReadOnly, address, access, width)
	}
	return nil
}

func (mem *mockMem) get(address uint32, width int) uint32 {
	var v uint32
	for i := 0; i < width; i++ {
		v = v<<8 | uint32(mem.internal[address+uint32(i)])
	}
	return v
}

func (mem *mockMem) put(address uint32, width int, v uint32) {
	for i := width - 1; i >= 0; i-- {
		mem.internal[address+uint32(i)] = uint8(v)
		v >>= 8
	}
}

func (mem *mockMem) Read8(address uint32) (uint8, error) {
	if err := mem.check(address, 1, cpubus.AccessRead); err != nil {
		return 0, err
	}
	return uint8(mem.get(address, 1)), nil
}

func (mem *mockMem) Read16(address uint32) (uint16, error) {
	if err := mem.check(address, 2, cpubus.AccessRead); err != nil {
		return 0, err
	}
	return uint16(mem.get(address, 2)), nil
}

func (mem *mockMem) Read32(address uint32) (uint32, error) {
	if err := mem.check(address, 4, cpubus.AccessRead); err != nil {
		return 0, err
	}
	return mem.get(address, 4), nil
}

func (mem *mockMem) Write8(address uint32, data uint8) error {
	if err := mem.check(address, 1, cpubus.AccessWrite); err != nil {
		return err
	}
	mem.put(address, 1, uint32(data))
	return nil
}

func (mem *mockMem) Write16(address uint32, data uint16) error {
	if err := mem.check(address, 2, cpubus.AccessWrite); err != nil {
		return err
	}
	mem.put(address, 2, uint32(data))
	return nil
}

func (mem *mockMem) Write32(address uint32, data uint32) error {
	if err := mem.check(address, 4, cpubus.AccessWrite); err != nil {
		return err
	}
	mem.put(address, 4, data)
	return nil
}

func (mem *mockMem) putWord(address uint32, v uint32) {
	mem.put(address, 4, v)
}

func (mem *mockMem) word(address uint32) uint32 {
	return mem.get(address, 4)
}

func (mem *mockMem) putInstructions(origin uint32, bytes ...uint8) uint32 {
	for i, b := range bytes {
		mem.internal[origin+uint32(i)] = b
	}
	return origin + uint32(len(bytes))
}

// mockInterrupts requests an interrupt at a fixed level
type mockInterrupts struct {
	level int
}

func (irq *mockInterrupts) InterruptLevel() int {
	return irq.level
}

// create CPU without resetting it
func createCPU(t *testing.T, mem *mockMem, irq cpu.InterruptSource) *cpu.CPU {
	t.Helper()

	ins, err := instance.NewInstance(instance.Main, nil)
	test.DemandSuccess(t, err)
	ins.Quiet = true

	mc, err := cpu.NewCPU(ins, mem, irq)
	test.DemandSuccess(t, err)

	return mc
}

func newCPU(t *testing.T, mem *mockMem, irq cpu.InterruptSource) *cpu.CPU {
	t.Helper()
	mc := createCPU(t, mem, irq)
	test.DemandSuccess(t, mc.Reset())
	return mc
}

// step the CPU, failing the test if the result is not valid. returns the
// number of cycles reported to the callback
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()

	var cycles int
	err := mc.ExecuteInstruction(func(n int) error {
		cycles += n
		return nil
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, cycles, mc.LastResult.Cycles)

	return cycles
}

func flags(mc *cpu.CPU) string {
	psw := mc.R.Status()
	s := []byte("nzvc")
	for i, f := range []registers.Status{registers.N, registers.Z, registers.V, registers.C} {
		if psw.Is(f) {
			s[i] -= 'a' - 'A'
		}
	}
	return string(s)
}
