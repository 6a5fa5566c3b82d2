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

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers/syncutil"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/resolver"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog/log"
)

var ErrNoPlatform = errors.New("no platform for path")

// platformFor finds the platform of path: the given platform if set,
// otherwise the nearest parent folder named after a platform or one of its
// aliases.
func platformFor(path, platform string) (*systems.System, error) {
	if platform != "" {
		return systems.LookupSystem(platform) //nolint:wrapcheck // already names the platform
	}
	dir := filepath.Dir(path)
	for {
		if system, err := systems.LookupSystem(filepath.Base(dir)); err == nil {
			return system, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%w: %s", ErrNoPlatform, path)
		}
		dir = parent
	}
}

// wanted reports whether a file found while walking is a game of system.
// Archives are always kept, their contents are checked on open.
func wanted(system *systems.System, name string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	ext = ext[1:]
	return romfile.IsCompressedExtension(ext) || system.IsValidExtension(ext)
}

// Collect turns command line paths into resolver inputs sorted by path.
// Files are taken as given, directories are walked for files with an
// extension of their platform.
func Collect(roots []string, platform string) ([]resolver.Input, error) {
	var (
		inputs []resolver.Input
		mu     syncutil.Mutex
	)

	add := func(path string, system *systems.System) {
		mu.Lock()
		defer mu.Unlock()
		inputs = append(inputs, resolver.Input{Path: path, Platform: system.ID})
	}

	if platform != "" {
		if _, err := systems.LookupSystem(platform); err != nil {
			return nil, err //nolint:wrapcheck // already names the platform
		}
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", root, err)
		}

		if !info.IsDir() {
			system, err := platformFor(root, platform)
			if err != nil {
				return nil, err
			}
			add(root, system)
			continue
		}

		conf := fastwalk.Config{Follow: true}
		err = fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
				return nil
			}
			if d.IsDir() {
				return nil
			}
			system, err := platformFor(path, platform)
			if err != nil {
				log.Debug().Str("path", path).Msg("no platform for file")
				return nil
			}
			if wanted(system, d.Name()) {
				add(path, system)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	sort.Slice(inputs, func(i, j int) bool {
		return inputs[i].Path < inputs[j].Path
	})
	log.Info().Int("files", len(inputs)).Msg("collected files")
	return inputs, nil
}
