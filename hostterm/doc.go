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

// Package hostterm connects the RS-232 port of the emulated terminal to the
// terminal of the host. It is a wrapper for "github.com/pkg/term/termios",
// putting the host terminal into raw mode so that every key press is passed
// to the emulation unaltered, and restoring the original mode afterwards.
//
// Reading of the host terminal happens in its own goroutine. Bytes are passed
// to the emulation loop over a channel so that the emulation itself never
// blocks on the host.
//
// When the input is not a terminal (a pipe or a file) the mode changing
// functions do nothing and input is read exactly as it arrives.
package hostterm
