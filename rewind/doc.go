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

// Package rewind keeps a history of machine states. States are recorded on
// request and can be plumbed back into the machine. A request for a clock value
// between two recorded states is satisfied by plumbing in the earlier state
// and running the emulation forward.
//
// The DUART is not part of a recorded state. Bytes in the serial queues and
// the state of the timer are whatever they were when the rewind happened.
package rewind
