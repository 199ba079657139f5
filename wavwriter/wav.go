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

// Package wavwriter allows the bell of the terminal to be written to disk as a
// WAV file. Note that bell events are buffered in memory and the file is
// written when EndMixing() is called. It is therefore probably only suitable
// for testing purposes.
//
// The WavWriter type implements the notifications.Notify interface. Bell
// notices are timestamped with the machine clock and each bell becomes a
// short square wave tone in the output. The time between bells is silence so
// that the spacing of bells in the output matches the emulated time.
package wavwriter

import (
	"os"

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware/clocks"
	"github.com/dmdterm/dmd5620/logger"
	"github.com/dmdterm/dmd5620/notifications"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Details of the WAV file and the bell tone.
const (
	SampleFreq = 22050
	BitDepth   = 16

	// frequency of the bell tone in Hz
	ToneFreq = 880

	// length of a single bell in samples
	ToneLength = SampleFreq / 5

	// amplitude of the square wave
	ToneVolume = 8192
)

// Error patterns returned by the wavwriter package.
const (
	ErrWavWriter = "wavwriter: %v"
)

// Clock returns the number of CPU cycles since the machine was reset.
type Clock func() uint64

// WavWriter records bell notices and writes them as a WAV file.
type WavWriter struct {
	filename string
	clock    Clock

	// the notices that are not bells are forwarded
	next notifications.Notify

	// sample offset of each bell
	bells []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// next argument can be nil.
func New(filename string, clock Clock, next notifications.Notify) (*WavWriter, error) {
	if clock == nil {
		return nil, curated.Errorf(ErrWavWriter, "no clock")
	}
	if next == nil {
		next = notifications.Discard
	}

	aw := &WavWriter{
		filename: filename,
		clock:    clock,
		next:     next,
		bells:    make([]int, 0),
	}

	return aw, nil
}

// sample returns the sample offset of the clock value
func sample(cycles uint64) int {
	return int(cycles * SampleFreq / clocks.CPU)
}

// Notify implements the notifications.Notify interface.
func (aw *WavWriter) Notify(notice notifications.Notice) error {
	if notice == notifications.NotifyBell {
		aw.bells = append(aw.bells, sample(aw.clock()))
		return nil
	}
	return aw.next.Notify(notice)
}

// Bells returns the number of bells recorded so far.
func (aw *WavWriter) Bells() int {
	return len(aw.bells)
}

// mix returns the samples for all the bells recorded so far. the length of
// the output is the current clock or the end of the last bell, whichever is
// later.
func (aw *WavWriter) mix() []int {
	n := sample(aw.clock())
	if len(aw.bells) > 0 {
		n = max(n, aw.bells[len(aw.bells)-1]+ToneLength)
	}

	data := make([]int, n)
	half := SampleFreq / ToneFreq / 2

	for _, b := range aw.bells {
		for i := 0; i < ToneLength && b+i < n; i++ {
			if (i/half)%2 == 0 {
				data[b+i] = ToneVolume
			} else {
				data[b+i] = -ToneVolume
			}
		}
	}

	return data
}

// EndMixing writes the WAV file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(ErrWavWriter, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(ErrWavWriter, err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, BitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		SourceBitDepth: BitDepth,
		Data:           aw.mix(),
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d bells to %s", len(aw.bells), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf(ErrWavWriter, err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf(ErrWavWriter, err)
	}

	return nil
}
