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

// Package logger is the logging package used by the emulator. Log entries are
// tagged strings held in memory. A host can write the log to any io.Writer
// (usually on exit or on request) or echo entries as they are added.
//
// Logging is reserved for events that are interesting but not errors: a ROM
// selecting an unsupported baud rate, a write to an unimplemented DUART
// register, a double fault during trap dispatch. Errors are returned to the
// caller and never only logged.
//
// Each call to Log() takes a Permission argument. Hardware components pass
// their owning machine as the permission, which allows a host to silence the
// logging of an individual machine instance.
package logger
