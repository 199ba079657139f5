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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware"
	"github.com/dmdterm/dmd5620/hardware/clocks"
	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
)

// Brake is the number of steps taken between checks of the timer. Checking
// the timer is comparatively expensive.
const Brake = 10000

// Error patterns returned by Check().
const (
	ErrCheck   = "performance: %v"
	ErrStopped = "performance: machine stopped after %.2f seconds (%s)"
)

// CalcSpeed takes the number of CPU cycles and the duration (in seconds) and
// returns the effective clock speed in MHz and the accuracy of that value as
// a percentage of the real clock.
func CalcSpeed(cycles uint64, duration float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	hz := float64(cycles) / duration
	return hz / 1_000_000, 100 * hz / clocks.CPU
}

// Check the performance of the emulator by running the machine as quickly as
// possible for the duration. The result is written to output.
//
// The machine must not halt or fault during the check.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration time.Duration) error {
	var cycles uint64
	var elapsed time.Duration

	runner := func() error {
		start := time.Now()
		for elapsed < duration {
			r, err := m.Run(Brake)
			cycles += r.Cycles
			elapsed = time.Since(start)
			if err != nil {
				return curated.Errorf(ErrCheck, err)
			}
			if r.State == execution.Halted || r.State == execution.Faulted {
				return curated.Errorf(ErrStopped, elapsed.Seconds(), r.State)
			}
		}
		return nil
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return err
	}

	mhz, accuracy := CalcSpeed(cycles, elapsed.Seconds())
	_, err := fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, elapsed.Seconds(), accuracy)
	return err
}
