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

	"github.com/dmdterm/dmd5620/hardware/memory/memorymap"
)

// VideoSource is the source of display memory. It is satisfied by
// hardware.Machine.
type VideoSource interface {
	VideoRAM(dst []uint8) int
}

// Video is an implementation of the Digest interface that hashes the display
// memory. Note that the use of SHA-1 is fine for this application because
// this is not a cryptographic task.
type Video struct {
	src    VideoSource
	digest [sha1.Size]uint8

	// the previous digest followed by the display memory
	frame []uint8

	// number of frames hashed since the last reset
	Frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(src VideoSource) *Video {
	return &Video{
		src:   src,
		frame: make([]uint8, sha1.Size+memorymap.DisplaySize),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.Frames = 0
}

// Frame takes a copy of the display memory and updates the hash.
func (dig *Video) Frame() {
	// chain hashes by copying the value of the last hash to the head of the
	// frame data
	n := copy(dig.frame, dig.digest[:])
	clear(dig.frame[n:])
	dig.src.VideoRAM(dig.frame[n:])
	dig.digest = sha1.Sum(dig.frame)
	dig.Frames++
}
