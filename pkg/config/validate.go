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
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/emulators"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
	"github.com/go-playground/validator/v10"
	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

// minSuggestSimilarity is the Jaro-Winkler score a known emulator name
// needs to be offered as a correction.
const minSuggestSimilarity = 0.8

var validate = validator.New()

// SuggestEmulator returns the known emulator name closest to name, or
// empty if nothing is close enough.
func SuggestEmulator(name string) string {
	best := ""
	var bestScore float32
	query := strings.ToLower(name)
	for _, known := range emulators.Names() {
		score := edlib.JaroWinklerSimilarity(query, strings.ToLower(known))
		if score > bestScore {
			best, bestScore = known, score
		}
	}
	if bestScore < minSuggestSimilarity {
		return ""
	}
	return best
}

func checkEmulatorName(name string) (string, error) {
	candidate, err := emulators.Lookup(name)
	if err == nil {
		return candidate.Name, nil
	}
	if suggestion := SuggestEmulator(name); suggestion != "" {
		return "", fmt.Errorf("%w (did you mean %q?)", err, suggestion)
	}
	return "", err //nolint:wrapcheck // already names the emulator
}

func structErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation failed: %w", err)
	}
	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		errs = append(errs, fmt.Errorf("%s failed %s check", fe.Namespace(), fe.Tag()))
	}
	return errors.Join(errs...)
}

// validateValues checks vals and canonicalises platform IDs and emulator
// names in place. Every problem found is returned, joined.
func validateValues(vals *Values) error {
	if err := validate.Struct(vals); err != nil {
		return structErrors(err)
	}

	var errs []error
	seen := make(map[string]bool)

	for i := range vals.Systems.System {
		entry := &vals.Systems.System[i]

		system, err := systems.LookupSystem(entry.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entry.ID = system.ID
		if seen[system.ID] {
			log.Warn().Str("system", system.ID).Msg("system configured more than once, first entry wins")
		}
		seen[system.ID] = true

		for j, name := range entry.Emulators {
			canonical, err := checkEmulatorName(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", system.ID, err))
				continue
			}
			entry.Emulators[j] = canonical
		}

		opts := system.DefaultOptions()
		maps.Copy(opts, entry.Options)
		if _, err := emulators.DecodeSystemOptions(opts); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", system.ID, err))
		}
	}

	for i := range vals.Emulators.Emulator {
		entry := &vals.Emulators.Emulator[i]

		canonical, err := checkEmulatorName(entry.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entry.Name = canonical

		if _, err := emulators.DecodeEmulatorOptions(entry.Options); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", canonical, err))
		}
	}

	return errors.Join(errs...)
}
