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

// Package notifications allow communication from the emulated hardware
// directly to the host application. The hardware raises a Notice through the
// Notify interface supplied at machine construction.
//
// The most important notice is NotifyBell. The DMD firmware rings the
// terminal bell by transmitting the bell control character. A host that only
// polls the RS-232 output queue can miss the moment of transmission, so the
// DUART raises NotifyBell at the moment the byte is written to the transmit
// register.
package notifications
