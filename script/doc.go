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

// Package script allows a machine to be driven by a Lua script. Scripts are
// useful for automated testing of firmware and for feeding a machine with
// input at specific points in its execution.
//
// The machine is exposed to the script as a table named dmd. The functions
// in the table are:
//
//	dmd.step()                  step one instruction. returns cycles and the
//	                            cause of any trap (or nil)
//	dmd.run(n)                  run for up to n steps. returns steps, cycles
//	                            and the CPU state
//	dmd.run_to_trap(n)          as run() but stops after the first trap.
//	                            returns steps, trap cause (or nil) and the
//	                            address of the trapping instruction
//	dmd.reset()                 reset the machine
//	dmd.peek(addr [,size])      read 1, 2 or 4 bytes from memory
//	dmd.poke(addr, v [,size])   write 1, 2 or 4 bytes to memory
//	dmd.reg(name)               value of the named register
//	dmd.set_reg(name, v)        change the value of the named register
//	dmd.keyboard(k)             queue a key code
//	dmd.rs232(s)                queue a string on the RS-232 port. returns the
//	                            number of bytes queued
//	dmd.output()                pop everything transmitted on the RS-232 port
//	dmd.mouse(button, pressed)  change the state of a mouse button
//	dmd.state()                 the CPU state as a string
//	dmd.clock()                 CPU cycles since reset
//	dmd.record()                record the state of the machine. returns the
//	                            number of recorded states
//	dmd.goto_clock(c)           rewind to clock value c. returns the clock
//	                            value actually reached
//	dmd.goto_last()             return to the latest recorded state
//
// Errors from the machine are raised as Lua errors. The Lua print() function
// writes to the output supplied to NewScript().
package script
