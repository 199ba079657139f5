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

package memory

import (
	"fmt"
	"strings"
)

// hexdump of the first lines of a memory area
func hexdump(origin uint32, data []uint8, lines int) string {
	s := strings.Builder{}
	s.WriteString("           -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("         ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < lines && y*16 < len(data); y++ {
		s.WriteString(fmt.Sprintf("%08x |", origin+uint32(y*16)))
		for x := 0; x < 16 && y*16+x < len(data); x++ {
			s.WriteString(fmt.Sprintf(" %02x", data[y*16+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// RAM represents the random access memory of the DMD 5620. The display memory
// is part of the RAM.
type RAM struct {
	origin uint32
	memory []uint8
}

// newRAM is the preferred method of initialisation for the RAM memory area.
func newRAM(origin uint32, size int, fill uint8) *RAM {
	ram := &RAM{
		origin: origin,
		memory: make([]uint8, size),
	}
	ram.Fill(fill)
	return ram
}

// Fill every byte of RAM with the value.
func (ram *RAM) Fill(v uint8) {
	for i := range ram.memory {
		ram.memory[i] = v
	}
}

func (ram *RAM) String() string {
	return hexdump(ram.origin, ram.memory, 8)
}

// Size returns the number of bytes of RAM.
func (ram *RAM) Size() int {
	return len(ram.memory)
}

// Copy RAM starting at the offset into the dst slice. Returns the number of
// bytes copied.
func (ram *RAM) Copy(dst []uint8, offset int) int {
	if offset < 0 || offset >= len(ram.memory) {
		return 0
	}
	return copy(dst, ram.memory[offset:])
}

// Restore the contents of RAM from a copy made with Copy(). Returns the number
// of bytes restored.
func (ram *RAM) Restore(src []uint8) int {
	return copy(ram.memory, src)
}

// ROM represents the read only memory containing the firmware.
type ROM struct {
	origin uint32
	memory []uint8
}

// newROM is the preferred method of initialisation for the ROM memory area.
// The image is copied into the area. The remainder of the area reads as zero.
func newROM(origin uint32, size int, image []uint8) *ROM {
	rom := &ROM{
		origin: origin,
		memory: make([]uint8, size),
	}
	copy(rom.memory, image)
	return rom
}

func (rom *ROM) String() string {
	return hexdump(rom.origin, rom.memory, 8)
}

// Size returns the number of bytes in the ROM area.
func (rom *ROM) Size() int {
	return len(rom.memory)
}
