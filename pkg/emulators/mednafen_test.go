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
	"testing"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/nes"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
	"github.com/stretchr/testify/assert"
)

func TestMednafenArgs(t *testing.T) {
	t.Parallel()

	req := newRequest(systems.SystemPSX, "game.cue", 0x1000, metadata.MediaOpticalDisc)
	spec := mustResolve(t, "Mednafen (PS1)", req)
	assert.Equal(t, "mednafen", spec.Commands[0].Exe)
	assert.Equal(t, []string{"-video.fs", "1", "-force_module", "psx", launch.PathPlaceholder}, spec.Commands[0].Args)

	sms := newRequest(systems.SystemMasterSystem, "game.gg", 0x1000, metadata.MediaCartridge)
	spec = mustResolve(t, "Mednafen (Master System)", sms)
	assert.Equal(t, "gg", spec.Commands[0].Args[3])
}

func TestMednafenNESMappers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mapper   int
		accepted bool
	}{
		{mapper: 0, accepted: true},
		{mapper: 4, accepted: true},
		{mapper: 53},
		{mapper: 63},
		{mapper: 64, accepted: true},
		{mapper: 125},
		{mapper: 170},
		{mapper: 180, accepted: true},
		{mapper: 216},
		{mapper: 245},
		{mapper: 246, accepted: true},
	}

	for _, tt := range tests {
		req := newRequest(systems.SystemNES, "game.nes", 0x8010, metadata.MediaCartridge)
		req.Metadata.Attributes.Set(metadata.KeyHeaderFormat, nes.FormatNES20)
		req.Metadata.Attributes.Set(metadata.KeyMapperNumber, tt.mapper)
		if tt.accepted {
			mustResolve(t, "Mednafen (NES)", req)
		} else {
			mustReject(t, "Mednafen (NES)", req, RejectUnsupportedMapper)
		}
	}

	fds := newRequest(systems.SystemFDS, "game.fds", 65500, metadata.MediaFloppy)
	mustResolve(t, "Mednafen (NES)", fds)
}

func TestMednafenRejections(t *testing.T) {
	t.Parallel()

	gg := newRequest(systems.SystemGameGear, "game.gg", 0x1000, metadata.MediaCartridge)
	gg.Metadata.Attributes.Set(metadata.KeyMapper, "Codemasters")
	mustReject(t, "Mednafen (Game Gear)", gg, RejectUnsupportedMapper)

	gba := newRequest(systems.SystemGBA, "game.gba", 32*1024*1024+1, metadata.MediaCartridge)
	mustReject(t, "Mednafen (GBA)", gba, RejectUnsupportedHardware)

	md := newRequest(systems.SystemGenesis, "game.md", 0x1000, metadata.MediaCartridge)
	md.Metadata.Attributes.Set(metadata.KeyUsesSVP, true)
	mustReject(t, "Mednafen (Mega Drive)", md, RejectUnsupportedHardware)

	md = newRequest(systems.SystemGenesis, "game.md", 0x1000, metadata.MediaCartridge)
	md.Metadata.Attributes.Set(metadata.KeyMapper, "rom_lion3")
	mustReject(t, "Mednafen (Mega Drive)", md, RejectUnsupportedMapper)

	lynx := newRequest(systems.SystemAtariLynx, "game.lyx", 0x1000, metadata.MediaCartridge)
	mustReject(t, "Mednafen (Lynx)", lynx, RejectHeaderMalformed)

	snes := newRequest(systems.SystemSNES, "game.sfc", 0x1000, metadata.MediaCartridge)
	snes.Metadata.Attributes.Set(metadata.KeyExpansionChip, "SA-1")
	mustResolve(t, "Mednafen (SNES-Faust)", snes)
	snes.Metadata.Attributes.Set(metadata.KeyExpansionChip, "OBC1")
	mustReject(t, "Mednafen (SNES-Faust)", snes, RejectUnsupportedHardware)
}
