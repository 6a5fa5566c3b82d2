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
	"slices"
	"strings"
)

type Systems struct {
	System []SystemsEntry `toml:"system,omitempty" validate:"dive"`
}

// SystemsEntry configures one platform. ID may be any alias of the
// platform, it is replaced by the canonical ID on load.
type SystemsEntry struct {
	Options   map[string]any `toml:"options,omitempty"`
	ID        string         `toml:"id" validate:"required"`
	Emulators []string       `toml:"emulators,omitempty" validate:"dive,required"`
}

func (c *Instance) lookupSystem(systemID string) (SystemsEntry, bool) {
	for _, entry := range c.vals.Systems.System {
		if strings.EqualFold(entry.ID, systemID) {
			return entry, true
		}
	}
	return SystemsEntry{}, false
}

// Emulators returns the configured candidate order of a platform, nil if
// the platform uses its default order.
func (c *Instance) Emulators(systemID string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.lookupSystem(systemID)
	if !ok {
		return nil
	}
	return slices.Clone(entry.Emulators)
}

// SystemOptions returns the raw option map configured for a platform.
func (c *Instance) SystemOptions(systemID string) map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.lookupSystem(systemID)
	if !ok {
		return nil
	}
	return maps.Clone(entry.Options)
}

// SetEmulators replaces the candidate order of a platform.
func (c *Instance) SetEmulators(systemID string, names []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.vals.Systems.System {
		if strings.EqualFold(c.vals.Systems.System[i].ID, systemID) {
			c.vals.Systems.System[i].Emulators = slices.Clone(names)
			return
		}
	}
	c.vals.Systems.System = append(c.vals.Systems.System, SystemsEntry{
		ID:        systemID,
		Emulators: slices.Clone(names),
	})
}
