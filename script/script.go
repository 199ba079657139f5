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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmdterm/dmd5620/curated"
	"github.com/dmdterm/dmd5620/hardware"
	"github.com/dmdterm/dmd5620/hardware/cpu/execution"
	"github.com/dmdterm/dmd5620/hardware/cpu/registers"
	"github.com/dmdterm/dmd5620/rewind"
	lua "github.com/yuin/gopher-lua"
)

// Error patterns returned by the script package.
const (
	ErrScript = "script: %v"
)

// Script is an instance of a Lua interpreter attached to a machine.
type Script struct {
	m      *hardware.Machine
	output io.Writer
	L      *lua.LState

	// history of states recorded by the script
	rw *rewind.Rewind
}

// NewScript creates a Lua interpreter for the machine. Output from the Lua
// print() function is written to output.
func NewScript(m *hardware.Machine, output io.Writer) *Script {
	scr := &Script{
		m:      m,
		output: output,
		L:      lua.NewState(),
	}

	// a capacity of zero selects the default capacity and cannot fail
	scr.rw, _ = rewind.NewRewind(m, 0)

	tb := scr.L.NewTable()
	scr.L.SetFuncs(tb, map[string]lua.LGFunction{
		"step":        scr.step,
		"run":         scr.run,
		"run_to_trap": scr.runToTrap,
		"reset":       scr.reset,
		"peek":        scr.peek,
		"poke":        scr.poke,
		"reg":         scr.reg,
		"set_reg":     scr.setReg,
		"keyboard":    scr.keyboard,
		"rs232":       scr.rs232,
		"output":      scr.rs232Output,
		"mouse":       scr.mouse,
		"state":       scr.state,
		"clock":       scr.clock,
		"record":      scr.record,
		"goto_clock":  scr.gotoClock,
		"goto_last":   scr.gotoLast,
	})
	scr.L.SetGlobal("dmd", tb)
	scr.L.SetGlobal("print", scr.L.NewFunction(scr.print))

	return scr
}

// Close the Lua interpreter.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunString runs Lua source code.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ErrScript, err)
	}
	return nil
}

// RunFile runs the Lua source in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ErrScript, err)
	}
	return nil
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}

func trapValue(t execution.Trap) lua.LValue {
	if !t.IsTrap() {
		return lua.LNil
	}
	return lua.LString(t.Cause.String())
}

func (scr *Script) step(L *lua.LState) int {
	res, err := scr.m.Step()
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(res.Cycles))
	L.Push(trapValue(res.Trap))
	return 2
}

func (scr *Script) run(L *lua.LState) int {
	r, err := scr.m.Run(L.CheckInt(1))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(r.Steps))
	L.Push(lua.LNumber(r.Cycles))
	L.Push(lua.LString(r.State.String()))
	return 3
}

func (scr *Script) runToTrap(L *lua.LState) int {
	r, err := scr.m.RunToTrap(L.CheckInt(1))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(r.Steps))
	L.Push(trapValue(r.FirstTrap))
	if r.FirstTrap.IsTrap() {
		L.Push(lua.LNumber(r.FirstTrapAddress))
	} else {
		L.Push(lua.LNil)
	}
	return 3
}

func (scr *Script) reset(L *lua.LState) int {
	if err := scr.m.Reset(); err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	scr.rw.Reset()
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	address := uint32(L.CheckInt64(1))

	var v uint32
	var err error

	switch L.OptInt(2, 1) {
	case 1:
		var d uint8
		d, err = scr.m.PeekByte(address)
		v = uint32(d)
	case 2:
		var d uint16
		d, err = scr.m.PeekHalf(address)
		v = uint32(d)
	case 4:
		v, err = scr.m.PeekWord(address)
	default:
		L.ArgError(2, "size must be 1, 2 or 4")
		return 0
	}

	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := uint32(L.CheckInt64(1))
	v := uint32(L.CheckInt64(2))

	var err error

	switch L.OptInt(3, 1) {
	case 1:
		err = scr.m.PokeByte(address, uint8(v))
	case 2:
		err = scr.m.PokeHalf(address, uint16(v))
	case 4:
		err = scr.m.PokeWord(address, v)
	default:
		L.ArgError(3, "size must be 1, 2 or 4")
		return 0
	}

	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// register number from the name of the register at the stack position
func register(L *lua.LState, n int) int {
	name := strings.ToLower(L.CheckString(n))
	for r := 0; r < registers.NumRegisters; r++ {
		if registers.Name(r) == name {
			return r
		}
	}
	L.ArgError(n, fmt.Sprintf("unknown register %q", name))
	return -1
}

func (scr *Script) reg(L *lua.LState) int {
	r := register(L, 1)
	if r < 0 {
		return 0
	}
	L.Push(lua.LNumber(scr.m.CPU.R[r]))
	return 1
}

func (scr *Script) setReg(L *lua.LState) int {
	r := register(L, 1)
	if r < 0 {
		return 0
	}
	scr.m.CPU.R[r] = uint32(L.CheckInt64(2))
	return 0
}

func (scr *Script) keyboard(L *lua.LState) int {
	L.Push(lua.LBool(scr.m.KeyboardInput(uint8(L.CheckInt(1)))))
	return 1
}

func (scr *Script) rs232(L *lua.LState) int {
	n, _ := scr.m.RS232Write([]uint8(L.CheckString(1)))
	L.Push(lua.LNumber(n))
	return 1
}

func (scr *Script) rs232Output(L *lua.LState) int {
	s := strings.Builder{}
	for {
		b, ok := scr.m.RS232Output()
		if !ok {
			break
		}
		s.WriteByte(b)
	}
	L.Push(lua.LString(s.String()))
	return 1
}

func (scr *Script) mouse(L *lua.LState) int {
	scr.m.MouseButton(L.CheckInt(1), L.ToBool(2))
	return 0
}

func (scr *Script) state(L *lua.LState) int {
	L.Push(lua.LString(scr.m.CPU.State.String()))
	return 1
}

func (scr *Script) clock(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.Clock))
	return 1
}

func (scr *Script) record(L *lua.LState) int {
	scr.rw.Record()
	L.Push(lua.LNumber(scr.rw.Timeline().Entries))
	return 1
}

func (scr *Script) gotoClock(L *lua.LState) int {
	clk, err := scr.rw.GotoClock(uint64(L.CheckInt64(1)))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(clk))
	return 1
}

func (scr *Script) gotoLast(L *lua.LState) int {
	if err := scr.rw.GotoLast(); err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(scr.m.Clock))
	return 1
}
