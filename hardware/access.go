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

// Host access to memory. Accesses follow the same routing and alignment rules
// as the CPU but reading a DUART register has no side effects and ROM can not
// be written. Failed accesses return a *cpubus.Fault.

// PeekByte reads the byte at the address.
func (m *Machine) PeekByte(address uint32) (uint8, error) {
	return m.Mem.Peek8(address)
}

// PeekHalf reads the big-endian halfword at the address.
func (m *Machine) PeekHalf(address uint32) (uint16, error) {
	return m.Mem.Peek16(address)
}

// PeekWord reads the big-endian word at the address.
func (m *Machine) PeekWord(address uint32) (uint32, error) {
	return m.Mem.Peek32(address)
}

// PokeByte writes the byte to the address.
func (m *Machine) PokeByte(address uint32, data uint8) error {
	return m.Mem.Poke8(address, data)
}

// PokeHalf writes the halfword to the address.
func (m *Machine) PokeHalf(address uint32, data uint16) error {
	return m.Mem.Poke16(address, data)
}

// PokeWord writes the word to the address.
func (m *Machine) PokeWord(address uint32, data uint32) error {
	return m.Mem.Poke32(address, data)
}

// Load copies data into memory starting at the address, one byte at a time.
// Loading stops at the first byte that can not be written and the error is
// returned.
func (m *Machine) Load(address uint32, data []uint8) error {
	for i, v := range data {
		if err := m.Mem.Poke8(address+uint32(i), v); err != nil {
			return err
		}
	}
	return nil
}
