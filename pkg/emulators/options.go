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

package emulators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

const optionTag = "option"

// SystemOptions are the per-platform settings from the config file.
type SystemOptions struct {
	SuperGameBoyBIOSPath      string `option:"super_game_boy_bios_path" validate:"omitempty,filepath"`
	SufamiTurboBIOSPath       string `option:"sufami_turbo_bios_path" validate:"omitempty,filepath"`
	BSXBIOSPath               string `option:"bsx_bios_path" validate:"omitempty,filepath"`
	BASICPath                 string `option:"basic_path" validate:"omitempty,filepath"`
	SaveDir                   string `option:"save_dir"`
	PreferControllerPak       bool   `option:"prefer_controller_pak_over_rumble"`
	SetGBCAsDifferentPlatform bool   `option:"set_gbc_as_different_platform"`
	SetFDSAsDifferentPlatform bool   `option:"set_fds_as_different_platform"`
}

// EmulatorOptions are the per-emulator toggles from the config file.
// Emulators that do not read a toggle ignore it.
type EmulatorOptions struct {
	// UseGBCForDMG runs original Game Boy games on a Game Boy Color.
	UseGBCForDMG           bool `option:"use_gbc_for_dmg"`
	PreferSGBOverGBC       bool `option:"prefer_sgb_over_gbc"`
	SGBIncompatibleWithGBC bool `option:"sgb_incompatible_with_gbc"`
	SGBEnhancedOnly        bool `option:"sgb_enhanced_only"`
	// ForceOpenGLVersion sets MESA_GL_VERSION_OVERRIDE for emulators that
	// refuse to start on drivers reporting an older version.
	ForceOpenGLVersion bool `option:"force_opengl_version"`
}

func DefaultEmulatorOptions() EmulatorOptions {
	return EmulatorOptions{SGBIncompatibleWithGBC: true}
}

var validate = validator.New()

func decodeOptions(raw map[string]any, dest any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dest,
		TagName:          optionTag,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode options: %w", err)
	}

	if err := validate.Struct(dest); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			msgs := make([]string, 0, len(validationErrors))
			for _, fe := range validationErrors {
				msgs = append(msgs, fmt.Sprintf("%s must be a valid %s", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid options: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// DecodeSystemOptions converts a free-form option map into SystemOptions.
// Unknown keys are an error. Values are weakly typed, "true" and true
// decode the same.
func DecodeSystemOptions(raw map[string]any) (SystemOptions, error) {
	var opts SystemOptions
	if err := decodeOptions(raw, &opts); err != nil {
		return SystemOptions{}, err
	}
	return opts, nil
}

// DecodeEmulatorOptions converts a free-form option map into
// EmulatorOptions, starting from the defaults.
func DecodeEmulatorOptions(raw map[string]any) (EmulatorOptions, error) {
	opts := DefaultEmulatorOptions()
	if err := decodeOptions(raw, &opts); err != nil {
		return EmulatorOptions{}, err
	}
	return opts, nil
}
