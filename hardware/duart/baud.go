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

import "github.com/dmdterm/dmd5620/hardware/clocks"

// NumBaudCodes is the number of baud rate codes that select a rate from the
// internal baud rate generator. Codes above this select the counter/timer or
// an external clock, which are not emulated.
const NumBaudCodes = 13

// PowerOnBaudCode is the code selected for both channels when the DUART is
// reset. 9600 baud in either rate set.
const PowerOnBaudCode = 11

// baud rates in tenths of a baud for each code. the first set is selected
// when ACR bit 7 is clear and the second set when it is set
var baudTenths = [2][NumBaudCodes]int{
	{500, 1100, 1345, 2000, 3000, 6000, 12000, 10500, 24000, 48000, 72000, 96000, 384000},
	{750, 1100, 1345, 1500, 3000, 6000, 12000, 20000, 24000, 48000, 18000, 96000, 192000},
}

// divisors in CPU cycles per character, derived from baudTenths
var divisors [2][NumBaudCodes]int

func init() {
	for set := range baudTenths {
		for code, b := range baudTenths[set] {
			divisors[set][code] = clocks.CharacterTime(b)
		}
	}
}

// Baud returns the baud rate for the code in the selected rate set. Returns
// false if the code is not supported.
func Baud(setB bool, code int) (float64, bool) {
	if code < 0 || code >= NumBaudCodes {
		return 0, false
	}
	return float64(baudTenths[rateSet(setB)][code]) / 10, true
}

// Divisor returns the number of CPU cycles taken to receive or transmit one
// character for the code in the selected rate set. Returns false if the code
// is not supported.
func Divisor(setB bool, code int) (int, bool) {
	if code < 0 || code >= NumBaudCodes {
		return 0, false
	}
	return divisors[rateSet(setB)][code], true
}

func rateSet(setB bool) int {
	if setB {
		return 1
	}
	return 0
}
