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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dmdterm/dmd5620/digest"
	"github.com/dmdterm/dmd5620/disassembly"
	"github.com/dmdterm/dmd5620/hardware"
	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
	"github.com/dmdterm/dmd5620/hardware/instance"
	"github.com/dmdterm/dmd5620/hardware/memory/memorymap"
	"github.com/dmdterm/dmd5620/hardware/preferences"
	"github.com/dmdterm/dmd5620/hostterm"
	"github.com/dmdterm/dmd5620/logger"
	"github.com/dmdterm/dmd5620/modalflag"
	"github.com/dmdterm/dmd5620/notifications"
	"github.com/dmdterm/dmd5620/performance"
	"github.com/dmdterm/dmd5620/prefs"
	"github.com/dmdterm/dmd5620/script"
	"github.com/dmdterm/dmd5620/statedump"
	"github.com/dmdterm/dmd5620/version"
	"github.com/dmdterm/dmd5620/wavwriter"
)

// number of steps the emulation takes between servicing the host terminal
const stepsPerSlice = 1000

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "STATE", "SCRIPT", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "print version and exit")
	md.AdditionalHelp(`  RUN          run a ROM with the RS-232 port attached to the terminal
  DISASM       disassemble a ROM
  STATE        run a ROM for a number of steps and dump the machine state
  SCRIPT       drive a machine with a Lua script
  PERFORMANCE  measure the speed of the emulation`)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DISASM":
		err = disasm(md)

	case "STATE":
		err = state(md)

	case "SCRIPT":
		err = runScript(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)

		// most recent log entries often explain the error
		logger.Tail(os.Stdout, 10)

		os.Exit(20)
	}
}

// flags common to every mode that creates a machine
type machineFlags struct {
	prefs *string
	log   *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		prefs: md.AddString("prefs", "", "hardware preferences (eg. \"hardware.ram.fill::255; hardware.duart.level::12\")"),
		log:   md.AddBool("log", false, "echo log to stderr"),
	}
}

// read the ROM file named by the only remaining argument
func readROM(md *modalflag.Modes, extra int) ([]uint8, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("ROM file required for %s mode", md)
	case 1 + extra:
	default:
		return nil, fmt.Errorf("wrong number of arguments for %s mode", md)
	}
	return os.ReadFile(md.GetArg(0))
}

// create a machine from the ROM with the preferences in the machine flags
func newMachine(rom []uint8, f machineFlags, opts ...hardware.Option) (*hardware.Machine, error) {
	if *f.log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	cfg, err := preferences.NewConfig()
	if err != nil {
		return nil, err
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
		err = cfg.ApplyCommandLine()
		if err != nil {
			return nil, err
		}
	}

	return hardware.NewMachineWithConfig(rom, cfg, opts...)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	f := addMachineFlags(md)
	wav := md.AddString("wav", "", "record the bell to a wav file")
	bell := md.AddBool("bell", true, "ring the host terminal bell")
	steps := md.AddInt("steps", 0, "stop after the number of steps (0 is no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	rom, err := readROM(md, 0)
	if err != nil {
		return err
	}

	var m *hardware.Machine

	var notify notifications.Notify = notifications.NotifyFunc(func(notice notifications.Notice) error {
		switch notice {
		case notifications.NotifyBell:
			if *bell {
				_, _ = os.Stderr.Write([]uint8{0x07})
			}
		case notifications.NotifyHalt:
			logger.Log(logger.Allow, "run", "machine halted")
		case notifications.NotifyFaulted:
			logger.Log(logger.Allow, "run", "machine faulted")
		}
		return nil
	})

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav, func() uint64 { return m.Clock }, notify)
		if err != nil {
			return err
		}
		notify = aw
	}

	m, err = newMachine(rom, f, hardware.WithNotify(notify), hardware.WithLabel(instance.Main))
	if err != nil {
		return err
	}

	term, err := hostterm.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.CleanUp()

	if term.IsTerminal() {
		fmt.Fprintf(os.Stderr, "! ctrl-] to end session\r\n")
	}

	err = term.RawMode()
	if err != nil {
		return err
	}

	input, err := term.Start()
	if err != nil {
		return err
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	// a byte read from the host that did not fit in the input queue
	var pending []uint8

	taken := 0
	done := false
	for !done {
		if len(pending) > 0 {
			n, _ := m.RS232Write(pending)
			pending = pending[n:]
		}

		if len(pending) == 0 {
			select {
			case b, ok := <-input:
				if !ok {
					done = true
				} else {
					pending = append(pending, b)
				}
			case <-intChan:
				done = true
			default:
			}
		}

		n := stepsPerSlice
		if *steps > 0 {
			n = min(n, *steps-taken)
		}

		r, err := m.Run(n)
		taken += r.Steps

		for m.RS232OutputLen() > 0 {
			b, _ := m.RS232Output()
			_, _ = term.Write([]uint8{b})
		}

		if err != nil {
			return err
		}

		switch r.State {
		case execution.Halted, execution.Faulted:
			done = true
		}

		if *steps > 0 && taken >= *steps {
			done = true
		}
	}

	if aw != nil {
		return aw.EndMixing()
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle counts in disassembly")
	decoded := md.AddBool("decoded", false, "omit bytes that do not decode")
	from := md.AddAddress("from", memorymap.OriginROM, "first address to list")
	to := md.AddAddress("to", memorymap.MemtopROM, "last address to list")
	grep := md.AddString("grep", "", "only list entries containing the string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	rom, err := readROM(md, 0)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromROM(rom)
	if err != nil {
		return err
	}

	if *grep != "" {
		_, err = dsm.Grep(md.Output, disassembly.GrepAll, *grep, false)
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode:    *bytecode,
		Cycles:      *cycles,
		DecodedOnly: *decoded,
	}

	return dsm.WriteRange(md.Output, attr, *from, *to)
}

func state(md *modalflag.Modes) error {
	md.NewMode()

	f := addMachineFlags(md)
	steps := md.AddInt("steps", 0, "number of steps to run before the dump")
	toTrap := md.AddBool("trap", false, "stop at the first trap")
	address := md.AddAddress("ram", memorymap.OriginRAM, "first address of the RAM dump")
	length := md.AddInt("len", 0, "number of bytes in the RAM dump")
	dot := md.AddBool("dot", false, "write the dump as a graphviz document")
	hash := md.AddBool("digest", false, "print digests of the display and of the RS-232 output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	rom, err := readROM(md, 0)
	if err != nil {
		return err
	}

	m, err := newMachine(rom, f, hardware.WithLabel(instance.State))
	if err != nil {
		return err
	}

	serial := &digest.Serial{}

	// output is drained after every slice so that the output queue never
	// fills
	for taken := 0; taken < *steps; {
		n := min(stepsPerSlice, *steps-taken)

		var r hardware.RunResult
		if *toTrap {
			r, err = m.RunToTrap(n)
		} else {
			r, err = m.Run(n)
		}
		taken += r.Steps

		for m.RS232OutputLen() > 0 {
			b, _ := m.RS232Output()
			_, _ = serial.Write([]uint8{b})
		}

		if err != nil {
			logger.Log(logger.Allow, "state", err)
			break
		}
		if r.State == execution.Halted || r.State == execution.Faulted {
			break
		}
		if (*toTrap && r.FirstTrap.IsTrap()) || r.Steps < n {
			break
		}
	}

	if *hash {
		video := digest.NewVideo(m)
		video.Frame()
		fmt.Fprintf(md.Output, "display: %s\n", video.Hash())
		fmt.Fprintf(md.Output, "rs232:   %s (%d bytes)\n", serial.Hash(), serial.Count)
	}

	v := statedump.NewView(m.Snapshot(), statedump.Window{Address: *address, Length: *length})
	if *dot {
		v.Graph(md.Output)
		return nil
	}
	return v.Write(md.Output)
}

func runScript(md *modalflag.Modes) error {
	md.NewMode()

	f := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	rom, err := readROM(md, 1)
	if err != nil {
		return err
	}

	m, err := newMachine(rom, f, hardware.WithLabel(instance.Script))
	if err != nil {
		return err
	}

	scr := script.NewScript(m, md.Output)
	defer scr.Close()

	return scr.RunFile(md.GetArg(1))
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	f := addMachineFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	rom, err := readROM(md, 0)
	if err != nil {
		return err
	}

	m, err := newMachine(rom, f, hardware.WithQuiet())
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, m, *duration)
}
