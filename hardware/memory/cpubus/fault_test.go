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

package cpubus_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmdterm/dmd5620/hardware/memory/cpubus"
	"github.com/dmdterm/dmd5620/test"
)

func TestFault(t *testing.T) {
	err := cpubus.NewFault(cpubus.Unmapped, 0x300000, cpubus.AccessRead, 4)
	test.ExpectSuccess(t, errors.Is(err, cpubus.MemoryFault))
	test.ExpectFailure(t, errors.Is(err, cpubus.AlignmentFault))
	test.ExpectEquality(t, err.Error(), "cpubus: unmapped address: 4 byte read at 00300000")

	err = cpubus.NewFault(cpubus.ReadOnly, 0x10, cpubus.AccessWrite, 1)
	test.ExpectSuccess(t, errors.Is(err, cpubus.MemoryFault))

	err = cpubus.NewFault(cpubus.Misaligned, 0x700001, cpubus.AccessWrite, 2)
	test.ExpectSuccess(t, errors.Is(err, cpubus.AlignmentFault))
	test.ExpectFailure(t, errors.Is(err, cpubus.MemoryFault))

	// faults survive wrapping
	w := fmt.Errorf("cpu: %w", err)
	test.ExpectSuccess(t, errors.Is(w, cpubus.AlignmentFault))

	var f *cpubus.Fault
	test.DemandSuccess(t, errors.As(w, &f))
	test.ExpectEquality(t, f.Address, 0x700001)
}

func TestVector(t *testing.T) {
	test.ExpectEquality(t, cpubus.Vector(0), 0)
	test.ExpectEquality(t, cpubus.Vector(29), 0x74)
}
