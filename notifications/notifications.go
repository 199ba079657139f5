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

package notifications

// Notice describes events in the emulated hardware that a host application may
// want to react to.
type Notice string

// List of defined notifications.
const (
	// the bell control character has been written to the RS-232 transmitter
	NotifyBell Notice = "NotifyBell"

	// the CPU has executed a HALT instruction
	NotifyHalt Notice = "NotifyHalt"

	// the CPU could not dispatch a trap and is now faulted. the machine must
	// be reset before it will execute any more instructions
	NotifyFaulted Notice = "NotifyFaulted"

	// the keyboard has been sent a status request by the firmware
	NotifyKeyboardStatus Notice = "NotifyKeyboardStatus"
)

// Notify is used for direct communication between the hardware and the host.
// Implementations should return quickly. A returned error is passed back to
// the caller of the emulation step that raised the notice.
type Notify interface {
	Notify(notice Notice) error
}

// NotifyFunc allows a plain function to be used as an implementation of the
// Notify interface.
type NotifyFunc func(notice Notice) error

// Notify implements the Notify interface.
func (f NotifyFunc) Notify(notice Notice) error {
	return f(notice)
}

// Discard is an implementation of Notify that ignores every notice.
var Discard Notify = NotifyFunc(func(Notice) error { return nil })
