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

// Package queue implements the fixed capacity byte FIFO used by the DUART for
// the keyboard input, RS-232 input and RS-232 output paths.
//
// The queue is a plain data structure. It does not block and it is not safe
// for concurrent use; a host that drives the emulation from one goroutine and
// feeds input from another must serialise access itself.
//
// Push() never grows the queue beyond its capacity. What happens to a byte
// that could not be pushed is the decision of the caller: the DUART receiver
// discards it and records an overrun in its status register, while the
// transmitter keeps the byte in its holding register and tries again later.
package queue
