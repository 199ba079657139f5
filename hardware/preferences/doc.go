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

// Package preferences contains the configuration of an emulated DMD 5620.
//
// Values are held as prefs types so that they can be set from the command
// line stack (see the prefs package) with keys of the form "hardware.ram.size".
// Components of the emulation copy the values they need when they are
// created, so changing a value has no effect on a machine that has already
// been constructed.
package preferences
