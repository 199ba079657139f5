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

package hostterm

import (
	"os"
	"sync"

	"github.com/dmdterm/dmd5620/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Error patterns returned by the hostterm package.
const (
	ErrNoFile   = "hostterm: terminal requires an input and an output file"
	ErrTermios  = "hostterm: %v"
	ErrStarted  = "hostterm: reader already started"
	ErrGeometry = "hostterm: geometry: %v"
)

// Escape is the byte that ends a session when it is typed at the host
// terminal. It is never passed to the emulation. The value is ctrl-].
const Escape = 0x1d

// Terminal is the host terminal.
type Terminal struct {
	input  *os.File
	output *os.File

	// input is a terminal and the attributes below are valid
	isTerm bool

	canAttr unix.Termios
	rawAttr unix.Termios
	raw     bool

	// bytes read from the input file. closed when the input reaches the end
	// of file or fails
	bytes chan uint8

	stop    chan struct{}
	stopped sync.Once
}

// NewTerminal prepares the input and output files for use as the host
// terminal. The terminal is left in its current mode.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, curated.Errorf(ErrNoFile)
	}

	pt := &Terminal{
		input:  input,
		output: output,
		isTerm: term.IsTerminal(int(input.Fd())),
		stop:   make(chan struct{}),
	}

	if pt.isTerm {
		if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
			return nil, curated.Errorf(ErrTermios, err)
		}
		pt.rawAttr = pt.canAttr
		termios.Cfmakeraw(&pt.rawAttr)
	}

	return pt, nil
}

// IsTerminal returns true if the input file is a terminal.
func (pt *Terminal) IsTerminal() bool {
	return pt.isTerm
}

// RawMode puts the terminal into raw mode.
func (pt *Terminal) RawMode() error {
	if !pt.isTerm || pt.raw {
		return nil
	}
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.rawAttr); err != nil {
		return curated.Errorf(ErrTermios, err)
	}
	pt.raw = true
	return nil
}

// CanonicalMode puts the terminal back into the mode it was in when
// NewTerminal() was called.
func (pt *Terminal) CanonicalMode() error {
	if !pt.isTerm || !pt.raw {
		return nil
	}
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr); err != nil {
		return curated.Errorf(ErrTermios, err)
	}
	pt.raw = false
	return nil
}

// Geometry returns the number of columns and rows of the output terminal.
func (pt *Terminal) Geometry() (int, int, error) {
	w, h, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return 0, 0, curated.Errorf(ErrGeometry, err)
	}
	return w, h, nil
}

// Start reading from the input file. Bytes are sent on the returned channel.
// The channel is closed when the input file reaches the end of file or when
// the Escape byte is read.
func (pt *Terminal) Start() (<-chan uint8, error) {
	if pt.bytes != nil {
		return nil, curated.Errorf(ErrStarted)
	}
	pt.bytes = make(chan uint8, 256)

	go func() {
		defer close(pt.bytes)

		buf := make([]uint8, 64)
		for {
			n, err := pt.input.Read(buf)
			for _, b := range buf[:n] {
				if b == Escape {
					return
				}
				select {
				case pt.bytes <- b:
				case <-pt.stop:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	return pt.bytes, nil
}

// Write implements the io.Writer interface. Output from the emulation is
// written unaltered.
func (pt *Terminal) Write(p []uint8) (int, error) {
	return pt.output.Write(p)
}

// CleanUp restores the terminal mode and stops the reader. The reader
// goroutine ends at the next byte read from the input.
func (pt *Terminal) CleanUp() error {
	pt.stopped.Do(func() {
		close(pt.stop)
	})
	return pt.CanonicalMode()
}
