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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmdterm/dmd5620/hardware/clocks"
	"github.com/dmdterm/dmd5620/notifications"
	"github.com/dmdterm/dmd5620/test"
	"github.com/dmdterm/dmd5620/wavwriter"
	"github.com/go-audio/wav"
)

func TestBells(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "bell.wav")

	var clock uint64
	var forwarded []notifications.Notice

	aw, err := wavwriter.New(filename, func() uint64 { return clock }, notifications.NotifyFunc(func(n notifications.Notice) error {
		forwarded = append(forwarded, n)
		return nil
	}))
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.Notify(notifications.NotifyBell))
	clock = clocks.CPU
	test.ExpectSuccess(t, aw.Notify(notifications.NotifyBell))
	test.ExpectSuccess(t, aw.Notify(notifications.NotifyHalt))
	clock = clocks.CPU * 2

	test.ExpectEquality(t, aw.Bells(), 2)
	test.ExpectEquality(t, len(forwarded), 1)
	test.ExpectEquality(t, forwarded[0], notifications.NotifyHalt)

	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dec.SampleRate, uint32(wavwriter.SampleFreq))
	test.ExpectEquality(t, dec.BitDepth, uint16(wavwriter.BitDepth))
	test.ExpectEquality(t, dec.NumChans, uint16(1))

	// two seconds of audio with a bell at the start of each second
	test.ExpectEquality(t, len(buf.Data), wavwriter.SampleFreq*2)
	test.ExpectEquality(t, buf.Data[0], wavwriter.ToneVolume)
	test.ExpectEquality(t, buf.Data[wavwriter.ToneLength], 0)
	test.ExpectEquality(t, buf.Data[wavwriter.SampleFreq], wavwriter.ToneVolume)
	test.ExpectEquality(t, buf.Data[wavwriter.SampleFreq*2-1], 0)
}

func TestLateBell(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "bell.wav")

	aw, err := wavwriter.New(filename, func() uint64 { return clocks.CPU }, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, aw.Notify(notifications.NotifyBell))
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	// the file is long enough for the whole of the last bell
	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), wavwriter.SampleFreq+wavwriter.ToneLength)
}

func TestNoClock(t *testing.T) {
	_, err := wavwriter.New("bell.wav", nil, nil)
	test.ExpectFailure(t, err)
}
