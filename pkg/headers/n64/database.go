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

package n64

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// DefaultDatabasePaths are where distributions install mupen64plus.ini.
var DefaultDatabasePaths = []string{
	"/usr/share/mupen64plus/mupen64plus.ini",
	"/usr/local/share/mupen64plus/mupen64plus.ini",
}

var ErrDatabaseNotFound = errors.New("mupen64plus database not found")

// Database is the mupen64plus ROM database, keyed by the uppercase MD5 of
// the z64 image. Entries with RefMD5 inherit missing keys from the
// referenced entry.
type Database struct {
	entries map[string]map[string]string
}

// ParseDatabase parses mupen64plus.ini contents.
func ParseDatabase(data []byte) (*Database, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("parsing mupen64plus database: %w", err)
	}

	entries := make(map[string]map[string]string)
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		entries[strings.ToUpper(section.Name())] = maps.Clone(section.KeysHash())
	}

	for _, entry := range entries {
		ref, ok := entry["RefMD5"]
		if !ok {
			continue
		}
		parent, ok := entries[strings.ToUpper(ref)]
		if !ok {
			continue
		}
		for k, v := range parent {
			if _, exists := entry[k]; !exists {
				entry[k] = v
			}
		}
	}

	return &Database{entries: entries}, nil
}

// LoadDatabase reads the database from the first path that exists.
func LoadDatabase(fs afero.Fs, paths ...string) (*Database, error) {
	if len(paths) == 0 {
		paths = DefaultDatabasePaths
	}
	for _, p := range paths {
		data, err := afero.ReadFile(fs, p)
		if err != nil {
			log.Debug().Err(err).Str("path", p).Msg("mupen64plus database not readable")
			continue
		}
		db, err := ParseDatabase(data)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", p).Int("entries", db.Len()).Msg("loaded mupen64plus database")
		return db, nil
	}
	return nil, ErrDatabaseNotFound
}

func (db *Database) Lookup(md5 string) (map[string]string, bool) {
	entry, ok := db.entries[strings.ToUpper(md5)]
	return entry, ok
}

func (db *Database) Len() int {
	return len(db.entries)
}
