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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// Serial is an implementation of the Digest interface that hashes bytes
// written to it. It implements the io.Writer interface so it can be used
// wherever output from the RS-232 port is written.
type Serial struct {
	digest [sha1.Size]uint8
	buffer []uint8

	// number of bytes written since the last reset
	Count int
}

// Hash implements the Digest interface.
func (dig *Serial) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Serial) ResetDigest() {
	clear(dig.digest[:])
	dig.Count = 0
}

// Write implements the io.Writer interface. Every call to Write() chains the
// hash so the same bytes written in different sized pieces produce different
// hashes.
func (dig *Serial) Write(p []uint8) (int, error) {
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	dig.buffer = append(dig.buffer, p...)
	dig.digest = sha1.Sum(dig.buffer)
	dig.Count += len(p)
	return len(p), nil
}
