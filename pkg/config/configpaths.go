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

type Paths struct {
	Mupen64PlusDB string `toml:"mupen64plus_db,omitempty" validate:"omitempty,filepath"`
	LogDir        string `toml:"log_dir,omitempty"`
	MAMEExe       string `toml:"mame_exe,omitempty"`
	StellaExe     string `toml:"stella_exe,omitempty"`
	TempDir       string `toml:"temp_dir,omitempty"`
}

func (c *Instance) Mupen64PlusDB() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Paths.Mupen64PlusDB
}

func (c *Instance) LogDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Paths.LogDir
}

func (c *Instance) MAMEExe() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Paths.MAMEExe
}

// StellaExe is the Stella binary used to read its cartridge database.
func (c *Instance) StellaExe() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Paths.StellaExe
}

// TempDir is where archives are extracted for emulators that cannot open
// them, the system temp dir if empty.
func (c *Instance) TempDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Paths.TempDir
}
