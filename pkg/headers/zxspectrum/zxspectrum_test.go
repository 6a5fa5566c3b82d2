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

package zxspectrum

import (
	"testing"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func z80Header(pc uint16, length uint16, mode, hwFlags, flags byte) []byte {
	h := make([]byte, HeaderSize)
	h[6], h[7] = byte(pc), byte(pc>>8)
	h[29] = flags
	h[30], h[31] = byte(length), byte(length>>8)
	h[34] = mode
	h[37] = hwFlags
	return h
}

func TestParseZ80(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    []byte
		machine   Machine
		expansion Expansion
		format    string
		joystick  Joystick
	}{
		{
			name:     "v1 is always 48k",
			header:   z80Header(0x8000, 0, 7, 0x80, 0x40),
			machine:  Machine48k,
			format:   "Z80 v1",
			joystick: JoystickKempton,
		},
		{
			name:     "v2 mode 3 is 128k",
			header:   z80Header(0, 23, 3, 0, 0),
			machine:  Machine128k,
			format:   "Z80 v2",
			joystick: JoystickCursor,
		},
		{
			name:      "v2 mode 4 is 128k with interface 1",
			header:    z80Header(0, 23, 4, 0, 0x80),
			machine:   Machine128k,
			expansion: ExpansionInterface1,
			format:    "Z80 v2",
			joystick:  JoystickSinclairLeft,
		},
		{
			name:      "v3 mode 3 is 48k with mgt",
			header:    z80Header(0, 54, 3, 0, 0xC0),
			machine:   Machine48k,
			expansion: ExpansionMGT,
			format:    "Z80 v3",
			joystick:  JoystickSinclairRight,
		},
		{
			name:     "modifier turns 48k into 16k",
			header:   z80Header(0, 54, 0, 0x80, 0),
			machine:  Machine16k,
			format:   "Z80 v3",
			joystick: JoystickCursor,
		},
		{
			name:     "modifier turns 128k into +2",
			header:   z80Header(0, 55, 4, 0x80, 0),
			machine:  MachinePlus2,
			format:   "Z80 v3",
			joystick: JoystickCursor,
		},
		{
			name:     "modifier turns +3 into +2A",
			header:   z80Header(0, 23, 7, 0x80, 0),
			machine:  MachinePlus2A,
			format:   "Z80 v2",
			joystick: JoystickCursor,
		},
		{
			name:     "pentagon",
			header:   z80Header(0, 54, 9, 0, 0),
			machine:  MachinePentagon,
			format:   "Z80 v3",
			joystick: JoystickCursor,
		},
		{
			name:     "unknown mode keeps 48k",
			header:   z80Header(0, 54, 8, 0, 0),
			machine:  Machine48k,
			format:   "Z80 v3",
			joystick: JoystickCursor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			md := metadata.New("ZXSpectrum", metadata.MediaSnapshot)
			ParseZ80(tt.header, md)

			expected := metadata.Attributes{
				metadata.KeyMachine:      tt.machine,
				metadata.KeyROMFormat:    tt.format,
				metadata.KeyJoystickType: tt.joystick,
			}
			if tt.expansion != "" {
				expected[metadata.KeyExpansion] = tt.expansion
			}
			assert.Equal(t, expected, md.Attributes)
		})
	}
}

func TestMachineFromName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected Machine
		ok       bool
	}{
		{name: "Manic Miner (1983)(Bug-Byte)(16K)", expected: Machine16k, ok: true},
		{name: "Jetpac (1983)(Ultimate)(48K)", expected: Machine48k, ok: true},
		{name: "Chase H.Q. (1989)(Ocean)(48K-128K)", expected: Machine128k, ok: true},
		{name: "Myth (1989)(System 3)(128K)", expected: Machine128k, ok: true},
		{name: "Elite (1985)(Firebird)", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, ok := MachineFromName(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestParseROMFallsBackToNameTag(t *testing.T) {
	t.Parallel()

	md := metadata.New("ZXSpectrum", metadata.MediaTape)
	require.NoError(t, ParseROM(romfile.NewMemory("Myth (1989)(System 3)(128K).tzx", []byte{1, 2, 3}), md))
	assert.Equal(t, Machine128k, md.Attributes[metadata.KeyMachine])

	md = metadata.New("ZXSpectrum", metadata.MediaSnapshot)
	snap := z80Header(0, 54, 7, 0, 0)
	require.NoError(t, ParseROM(romfile.NewMemory("Game (48K).z80", snap), md))
	assert.Equal(t, MachinePlus3, md.Attributes[metadata.KeyMachine], "header wins over name tag")
}

func TestParseZ80NeverPanics(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		header := rapid.SliceOfN(rapid.Byte(), 0, HeaderSize).Draw(t, "header")
		ParseZ80(header, metadata.New("ZXSpectrum", metadata.MediaSnapshot))
	})
}
