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

// Package clocks defines the basic clock and timing values of the DMD 5620.
// All timing in the emulation is expressed as a count of CPU cycles. Nothing
// in the emulation core refers to the wall clock.
package clocks

// CPU is the clock frequency of the WE32100 in the DMD 5620, in Hz.
const CPU = 10_000_000

// VerticalBlankHz is the refresh rate of the display.
const VerticalBlankHz = 60

// VerticalBlank is the number of CPU cycles between vertical blanks.
const VerticalBlank = (CPU + VerticalBlankHz/2) / VerticalBlankHz

// BitsPerCharacter is the number of bits in an asynchronous serial character
// frame (start bit, eight data bits and stop bit). Used to convert baud rates
// to character times.
const BitsPerCharacter = 10

// CharacterTime returns the number of CPU cycles taken to send one character
// at the baud rate. The baud rate is expressed in tenths of a baud so that
// rates like 134.5 can be represented exactly. The result is rounded to the
// nearest cycle.
func CharacterTime(baudTenths int) int {
	if baudTenths <= 0 {
		return 0
	}
	n := CPU * BitsPerCharacter * 10
	return (n + baudTenths/2) / baudTenths
}

// Seconds converts a number of CPU cycles to seconds.
func Seconds(cycles uint64) float64 {
	return float64(cycles) / CPU
}
