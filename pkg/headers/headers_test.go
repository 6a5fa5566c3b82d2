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

package headers

import (
	"context"
	"errors"
	"testing"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenROM struct {
	*romfile.File
}

func (brokenROM) Read(int64, int) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestParseDispatchesByPlatform(t *testing.T) {
	t.Parallel()

	header := make([]byte, 16)
	copy(header, "NES\x1a")
	header[6] = 0x40

	md := metadata.New(systems.SystemNES, metadata.MediaCartridge)
	err := Parse(context.Background(), systems.SystemNES, romfile.NewMemory("game.nes", header), md, Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, md.Attributes[metadata.KeyMapperNumber])
}

func TestParseUnknownPlatformIsNoop(t *testing.T) {
	t.Parallel()

	md := metadata.New(systems.SystemArcadia, metadata.MediaCartridge)
	err := Parse(context.Background(), systems.SystemArcadia, romfile.NewMemory("mine.bin", []byte{1}), md, Options{})
	require.NoError(t, err)
	assert.Empty(t, md.Attributes)
	assert.False(t, Supported(systems.SystemArcadia))
	assert.True(t, Supported(systems.SystemZXSpectrum))
}

func TestParseVectrex(t *testing.T) {
	t.Parallel()

	md := metadata.New(systems.SystemVectrex, metadata.MediaCartridge)
	rom := romfile.NewMemory("mine.vec", []byte("g GCE 1983\x80"))
	require.NoError(t, Parse(context.Background(), systems.SystemVectrex, rom, md, Options{}))
	assert.Equal(t, metadata.TVAgnostic, md.TVSystem)
	assert.Equal(t, "1983", md.Attributes.String(metadata.KeyYear))
}

func TestParseAtari2600WithoutStella(t *testing.T) {
	t.Parallel()

	md := metadata.New(systems.SystemAtari2600, metadata.MediaCartridge)
	rom := romfile.NewMemory("game.a26", make([]byte, 4096))
	require.NoError(t, Parse(context.Background(), systems.SystemAtari2600, rom, md, Options{}))
	assert.Empty(t, md.Attributes)
	assert.True(t, Supported(systems.SystemAtari2600))
}

func TestReadFailureMarksHeaderMalformed(t *testing.T) {
	t.Parallel()

	rom := brokenROM{File: romfile.NewMemory("game.gb", nil)}
	md := metadata.New(systems.SystemGameboy, metadata.MediaCartridge)
	err := Parse(context.Background(), systems.SystemGameboy, rom, md, Options{})
	require.NoError(t, err)
	assert.Contains(t, md.Attributes.String(metadata.KeyHeaderMalformed), "disk on fire")
	assert.False(t, md.Attributes.Has(metadata.KeyMapper))
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	md := metadata.New(systems.SystemNES, metadata.MediaCartridge)
	err := Parse(ctx, systems.SystemNES, romfile.NewMemory("game.nes", nil), md, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPlatformRefinement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		platform string
		file     string
		data     []byte
		opts     Options
		expected string
	}{
		{
			name:     "gbc stays gameboy by default",
			platform: systems.SystemGameboy,
			file:     "game.gbc",
			data:     make([]byte, 0x150),
			expected: systems.SystemGameboy,
		},
		{
			name:     "gbc split out when enabled",
			platform: systems.SystemGameboy,
			file:     "game.gbc",
			data:     make([]byte, 0x150),
			opts:     Options{System: map[string]any{"set_gbc_as_different_platform": true}},
			expected: systems.SystemGameboyColor,
		},
		{
			name:     "fds split out when enabled",
			platform: systems.SystemNES,
			file:     "game.fds",
			data:     []byte("FDS\x1a\x01"),
			opts:     Options{System: map[string]any{"set_fds_as_different_platform": true}},
			expected: systems.SystemFDS,
		},
		{
			name:     "dsi extension",
			platform: systems.SystemNDS,
			file:     "game.dsi",
			data:     make([]byte, 0x200),
			expected: systems.PlatformDSi,
		},
		{
			name:     "dsi exclusive unit code",
			platform: systems.SystemNDS,
			file:     "game.nds",
			data:     append(make([]byte, 0x12), 3, 0),
			expected: systems.PlatformDSi,
		},
		{
			name:     "dsi enhanced stays nds",
			platform: systems.SystemNDS,
			file:     "game.nds",
			data:     append(make([]byte, 0x12), 2, 0),
			expected: systems.SystemNDS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			md := metadata.New(tt.platform, metadata.MediaCartridge)
			err := Parse(context.Background(), tt.platform, romfile.NewMemory(tt.file, tt.data), md, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, md.Platform)
		})
	}
}
