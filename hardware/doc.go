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

// Package hardware is the base package for the DMD 5620 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the DMD sub-systems. From here, the emulation can be run
// for a number of instructions or stepped one instruction at a time. The host
// application is responsible for rendering the display memory and for
// providing keyboard, mouse and RS-232 input.
//
// The emulation is single threaded. A host that reads input on another
// goroutine must hand the input to the goroutine that calls Step() or Run().
//
// More than one Machine can exist in the same process. Each Machine owns its
// memory, DUART and queues.
package hardware
