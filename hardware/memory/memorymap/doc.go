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

// Package memorymap describes the address space of the DMD 5620. The address
// space is divided into areas, each bound to one of the devices on the bus.
// The set of devices is closed: ROM, RAM and the DUART. Any address that is
// not inside an area is unmapped.
//
// The default layout is that of the DMD 5620:
//
//	00000000 -> 0001ffff	ROM
//	00200000 -> 0020003f	DUART
//	00700000 -> 007fffff	RAM
//
// A Map is created with NewMap(). The bindings are checked when the map is
// created and a map with overlapping areas is never returned. The bindings
// cannot be changed once the map is created.
package memorymap
