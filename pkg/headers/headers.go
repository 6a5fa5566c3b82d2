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

// Package headers dispatches a file to the header parser of its platform.
package headers

import (
	"context"
	"fmt"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/atari2600"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/atari7800"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/gameboy"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/gba"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/lynx"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/n64"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/nes"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/vectrex"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/zxspectrum"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
	"github.com/rs/zerolog/log"
)

// Options are the inputs a parser may need beyond the file itself.
type Options struct {
	// N64Database enriches N64 ROMs, nil skips the lookup.
	N64Database *n64.Database
	// Stella provides the Atari 2600 database, nil skips the lookup.
	Stella *atari2600.Stella
	// System is the resolved option map of the platform.
	System map[string]any
}

func (o Options) flag(key string) bool {
	v, ok := o.System[key].(bool)
	return ok && v
}

type parser func(ctx context.Context, rom romfile.ROM, md *metadata.Metadata, opts Options) error

var parsers = map[string]parser{
	systems.SystemGameboy:      parseGameboy,
	systems.SystemGameboyColor: parseGameboy,
	systems.SystemGBA: func(_ context.Context, rom romfile.ROM, md *metadata.Metadata, _ Options) error {
		return gba.ParseROM(rom, md)
	},
	systems.SystemNintendo64: func(_ context.Context, rom romfile.ROM, md *metadata.Metadata, opts Options) error {
		return n64.ParseROM(rom, md, opts.N64Database)
	},
	systems.SystemNDS: parseNDS,
	systems.SystemNES: parseNES,
	systems.SystemFDS: parseNES,
	systems.SystemAtari2600: func(ctx context.Context, rom romfile.ROM, md *metadata.Metadata, opts Options) error {
		return atari2600.ParseROM(ctx, rom, md, opts.Stella)
	},
	systems.SystemAtari7800: func(_ context.Context, rom romfile.ROM, md *metadata.Metadata, _ Options) error {
		return atari7800.ParseROM(rom, md)
	},
	systems.SystemAtariLynx: func(_ context.Context, rom romfile.ROM, md *metadata.Metadata, _ Options) error {
		return lynx.ParseROM(rom, md)
	},
	systems.SystemVectrex: func(_ context.Context, rom romfile.ROM, md *metadata.Metadata, _ Options) error {
		return vectrex.ParseROM(rom, md)
	},
	systems.SystemZXSpectrum: func(_ context.Context, rom romfile.ROM, md *metadata.Metadata, _ Options) error {
		return zxspectrum.ParseROM(rom, md)
	},
}

func parseGameboy(_ context.Context, rom romfile.ROM, md *metadata.Metadata, opts Options) error {
	if err := gameboy.ParseROM(rom, md); err != nil {
		return err
	}
	if rom.Extension() == "gbc" && opts.flag("set_gbc_as_different_platform") {
		md.Platform = systems.SystemGameboyColor
	}
	return nil
}

func parseNES(_ context.Context, rom romfile.ROM, md *metadata.Metadata, opts Options) error {
	if err := nes.ParseROM(rom, md); err != nil {
		return err
	}
	if md.MediaType == metadata.MediaFloppy && opts.flag("set_fds_as_different_platform") {
		md.Platform = systems.SystemFDS
	}
	return nil
}

// The NDS unit code byte tells NDS, DSi-enhanced (2) and DSi-exclusive (3)
// software apart.
const (
	ndsUnitCodeOffset = 0x12
	ndsUnitDSiOnly    = 3
)

func parseNDS(_ context.Context, rom romfile.ROM, md *metadata.Metadata, _ Options) error {
	if rom.Extension() == "dsi" {
		md.Platform = systems.PlatformDSi
		return nil
	}
	b, err := rom.Read(ndsUnitCodeOffset, 1)
	if err != nil {
		return fmt.Errorf("failed to read unit code: %w", err)
	}
	if len(b) == 1 && b[0] == ndsUnitDSiOnly {
		md.Platform = systems.PlatformDSi
	}
	return nil
}

// Supported reports whether a header parser exists for the platform.
func Supported(platform string) bool {
	_, ok := parsers[platform]
	return ok
}

// Parse runs the header parser of platform over rom. Platforms without a
// parser leave md untouched. A failed read is recorded on md as
// Header-Malformed instead of being returned, only cancellation is an
// error.
func Parse(ctx context.Context, platform string, rom romfile.ROM, md *metadata.Metadata, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck // context errors are returned as is
	}

	p, ok := parsers[platform]
	if !ok {
		return nil
	}

	if err := p(ctx, rom, md, opts); err != nil {
		log.Debug().Err(err).
			Str("platform", platform).
			Str("path", rom.Path()).
			Msg("header could not be read")
		md.Attributes.Set(metadata.KeyHeaderMalformed, err.Error())
	}
	return nil
}
