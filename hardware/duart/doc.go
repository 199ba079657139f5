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

// Package duart implements the SCN2681 dual asynchronous receiver/transmitter
// of the DMD 5620.
//
// Channel A is the RS-232 port connecting the terminal to the host computer.
// Channel B is connected to the keyboard. Bytes arrive through bounded input
// queues filled by the host application and bytes transmitted on channel A
// leave through a bounded output queue emptied by the host application.
//
// The DUART has no sense of real time. Character timing is measured in CPU
// cycles and the DUART is advanced by calling Step() with the number of
// cycles taken by each CPU instruction. A character takes the number of
// cycles given by the baud rate divisor to be received or transmitted.
//
// The input port of the DUART is connected to the mouse buttons and to the
// vertical blank signal of the display. Changes on the input port are
// recorded in the IPCR register and can raise an interrupt.
//
// The interrupt request of the DUART is asserted while any bit in the
// interrupt status register is also set in the interrupt mask register. The
// CPU sees the request at a single interrupt level, which is part of the
// hardware preferences.
package duart
