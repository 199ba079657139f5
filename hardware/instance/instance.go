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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the Machine type, but is not actually the Machine
// itself.
//
// Particularly useful when running more than one instance of the emulation in
// the same process.
package instance

import (
	"fmt"

	"github.com/dmdterm/dmd5620/hardware/preferences"
	"github.com/dmdterm/dmd5620/logger"
)

// Label indicates the context of the instance.
type Label string

// List of value Label values.
const (
	Main   Label = ""
	State  Label = "state"
	Script Label = "script"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Machine type, but is not actually the
// Machine itself.
type Instance struct {
	Label Label

	// the configuration of the running instance. this instance can be shared
	// with other running instances of the emulation
	Prefs *preferences.Config

	// values copied from Prefs when the instance was created. components of
	// the emulation read these rather than Prefs
	Live preferences.Live

	// if Quiet is true the instance will not create log entries
	Quiet bool
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case a new configuration with
// default values is created. Providing a non-nil value allows the
// configuration to be shared by more than one instance.
func NewInstance(label Label, prefs *preferences.Config) (*Instance, error) {
	ins := &Instance{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewConfig()
		if err != nil {
			return nil, err
		}
	}

	err = prefs.Validate()
	if err != nil {
		return nil, err
	}

	ins.Prefs = prefs
	ins.Live = prefs.Live()

	return ins, nil
}

// AllowLogging implements the logger.Permission interface.
func (ins *Instance) AllowLogging() bool {
	return ins != nil && !ins.Quiet
}

// Log is a convenience function that prefixes the tag with the instance label.
func (ins *Instance) Log(tag string, detail any) {
	logger.Log(ins, ins.tag(tag), detail)
}

// Logf is a convenience function that prefixes the tag with the instance
// label.
func (ins *Instance) Logf(tag string, detail string, args ...any) {
	logger.Logf(ins, ins.tag(tag), detail, args...)
}

func (ins *Instance) tag(tag string) string {
	if ins == nil || ins.Label == Main {
		return tag
	}
	return fmt.Sprintf("%s: %s", ins.Label, tag)
}
