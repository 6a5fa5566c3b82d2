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

// Package systems is the platform table: which files belong to a platform,
// which MAME driver and software lists describe it, which emulators are tried
// for it by default and which options it accepts.
package systems

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
)

type OptionKind int

const (
	OptionBool OptionKind = iota
	OptionString
	OptionFilePath
	OptionFolderPath
)

// Option describes a per-platform setting that command builders read.
type Option struct {
	Default     any
	Description string
	Kind        OptionKind
}

type System struct {
	FileTypes map[metadata.MediaType][]string
	Options   map[string]Option
	ID        string
	// MAMEDriver is the reference MAME machine for the platform, empty when
	// MAME has no driver for it.
	MAMEDriver    string
	Aliases       []string
	SoftwareLists []string
	// Emulators is the default candidate order, used when the config does
	// not list any for the platform.
	Emulators []string
	// Virtual platforms are not hardware, e.g. game engines.
	Virtual bool
}

// MediaType returns the media type the extension is registered under.
func (s *System) MediaType(ext string) (metadata.MediaType, bool) {
	ext = strings.ToLower(ext)
	// Iterate in a fixed order so an extension listed under two media
	// types always resolves the same way.
	for _, mt := range slices.Sorted(maps.Keys(s.FileTypes)) {
		if slices.Contains(s.FileTypes[mt], ext) {
			return mt, true
		}
	}
	return metadata.MediaUnknown, false
}

func (s *System) IsValidExtension(ext string) bool {
	_, ok := s.MediaType(ext)
	return ok
}

// Extensions returns every extension registered for the platform.
func (s *System) Extensions() []string {
	var exts []string
	for _, list := range s.FileTypes {
		for _, ext := range list {
			if !slices.Contains(exts, ext) {
				exts = append(exts, ext)
			}
		}
	}
	sort.Strings(exts)
	return exts
}

// DefaultOptions returns the default value of every option that has one.
func (s *System) DefaultOptions() map[string]any {
	opts := make(map[string]any, len(s.Options))
	for k, v := range s.Options {
		if v.Default != nil {
			opts[k] = v.Default
		}
	}
	return opts
}

// MapKeys returns a list of all keys in a map.
func MapKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func AlphaMapKeys[V any](m map[string]V) []string {
	keys := MapKeys(m)
	sort.Strings(keys)
	return keys
}

// GetSystem looks up an exact system definition by ID.
func GetSystem(id string) (*System, error) {
	if system, ok := Systems[id]; ok {
		return &system, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSystem, id)
}

// LookupSystem case-insensitively looks up system ID definition including aliases.
func LookupSystem(id string) (*System, error) {
	for k, v := range Systems {
		if strings.EqualFold(k, id) {
			return &v, nil
		}

		for _, alias := range v.Aliases {
			if strings.EqualFold(alias, id) {
				return &v, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownSystem, id)
}

func AllSystems() []System {
	systems := make([]System, 0, len(Systems))

	keys := AlphaMapKeys(Systems)
	for _, k := range keys {
		systems = append(systems, Systems[k])
	}

	return systems
}
