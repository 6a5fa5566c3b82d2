// Zaparoo Core
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Core.
//
// Zaparoo Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Core.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"maps"
	"strings"
)

type Emulators struct {
	Emulator []EmulatorsEntry `toml:"emulator,omitempty" validate:"dive"`
}

type EmulatorsEntry struct {
	Options map[string]any `toml:"options,omitempty"`
	Name    string         `toml:"name" validate:"required"`
	ExePath string         `toml:"exe_path,omitempty" validate:"omitempty,filepath"`
}

func (c *Instance) lookupEmulator(name string) (EmulatorsEntry, bool) {
	for _, entry := range c.vals.Emulators.Emulator {
		if strings.EqualFold(entry.Name, name) {
			return entry, true
		}
	}
	return EmulatorsEntry{}, false
}

func (c *Instance) EmulatorOptions(name string) map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.lookupEmulator(name)
	if !ok {
		return nil
	}
	return maps.Clone(entry.Options)
}

// EmulatorPath is the configured executable of an emulator, empty to use
// the one found on PATH.
func (c *Instance) EmulatorPath(name string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.lookupEmulator(name)
	if !ok {
		return ""
	}
	return entry.ExePath
}
