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

type Scan struct {
	// MaxArchiveEntryMB bounds how much of a zip or gzip entry is read
	// into memory, the romfile default if zero.
	MaxArchiveEntryMB int `toml:"max_archive_entry_mb,omitempty" validate:"gte=0"`
}

// MaxArchiveEntrySize is the archive entry limit in bytes, zero for the
// default.
func (c *Instance) MaxArchiveEntrySize() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(c.vals.Scan.MaxArchiveEntryMB) << 20
}
