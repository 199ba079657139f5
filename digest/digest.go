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

// Package digest is used to create hashes of the output of the emulation.
// Hashes are useful for regression testing of firmware: two runs of the same
// ROM with the same input must produce the same hashes.
//
// Video hashes the display memory and Serial hashes the bytes transmitted on
// the RS-232 port. Both chain their hashes, meaning that the hash depends on
// every frame or every write that came before it.
package digest

// Digest implementations compute a hash of the emulation output. The hash is
// returned as a string by Hash().
type Digest interface {
	Hash() string
	ResetDigest()
}
