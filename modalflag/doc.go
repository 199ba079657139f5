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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet Parse() is called with the array of strings as the
// only argument, with modalflag NewArgs() is first called with the array of
// arguments and then Parse() is called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM", "STATE")
//	_, _ = md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, each with its own flags and arguments. The
// first mode in the list is the default mode and is selected if the first
// argument after the flags is not one of the listed modes. Mode comparisons
// are case insensitive.
//
// Once the mode is known, NewMode() prepares for the flags of that mode and
// Parse() is called again:
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		bytecode := md.AddBool("bytecode", false, "include bytecode")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		disasm(md.GetArg(0), *bytecode)
//	}
//
// Modes can be chained as deep as required. The Path() function returns every
// mode encountered so far.
package modalflag
