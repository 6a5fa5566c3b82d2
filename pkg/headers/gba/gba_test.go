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

package gba

import (
	"testing"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func testCart(title, code, licensee string, rev byte, body string) []byte {
	cart := make([]byte, HeaderSize, HeaderSize+len(body))
	copy(cart[0xA0:], title)
	copy(cart[0xAC:], code)
	copy(cart[0xB0:], licensee)
	cart[0xBC] = rev
	return append(cart, body...)
}

func TestParseGolden(t *testing.T) {
	t.Parallel()

	md := metadata.New("GBA", metadata.MediaCartridge)
	Parse(testCart("POKEMON EMER", "BPEE", "01", 1, "xxFLASH1M_V103xxSIIRTC_V001"), md)

	assert.Equal(t, metadata.TVAgnostic, md.TVSystem)
	assert.Equal(t, metadata.Attributes{
		metadata.KeyNintendoLogoValid:   false,
		metadata.KeyInternalTitle:       "POKEMON EMER",
		metadata.KeyUsesMotionControls:  false,
		metadata.KeyForceFeedback:       false,
		metadata.KeyProductCode:         "BPEE",
		metadata.KeyLicensee:            "01",
		metadata.KeyPublisher:           "Nintendo",
		metadata.KeyRevision:            1,
		metadata.KeySaveType:            metadata.SaveCart,
		metadata.KeyHasRTC:              true,
		metadata.KeyUsesWirelessAdapter: false,
	}, md.Attributes)
}

func TestGameTypeFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   string
		motion bool
		rumble bool
	}{
		{code: "KYGE", motion: true},
		{code: "RZWE", motion: true, rumble: true},
		{code: "V49E", rumble: true},
		{code: "AXVE"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			md := metadata.New("GBA", metadata.MediaCartridge)
			ParseHeader(testCart("TITLE", tt.code, "01", 0, ""), md)
			assert.Equal(t, tt.motion, md.Attributes[metadata.KeyUsesMotionControls])
			assert.Equal(t, tt.rumble, md.Attributes[metadata.KeyForceFeedback])
		})
	}
}

func TestMultibootStopsAfterTitle(t *testing.T) {
	t.Parallel()

	md := metadata.New("GBA", metadata.MediaExecutable)
	ParseHeader(testCart("mb2gba", "AXVE", "01", 3, ""), md)
	assert.Equal(t, "mb2gba", md.Attributes[metadata.KeyInternalTitle])
	assert.False(t, md.Attributes.Has(metadata.KeyProductCode))
	assert.False(t, md.Attributes.Has(metadata.KeyRevision))
}

func TestNonAlphanumericCodesIgnored(t *testing.T) {
	t.Parallel()

	md := metadata.New("GBA", metadata.MediaCartridge)
	ParseHeader(testCart("TITLE", "A-B!", "\x00\x00", 0, ""), md)
	assert.False(t, md.Attributes.Has(metadata.KeyProductCode))
	assert.False(t, md.Attributes.Has(metadata.KeyLicensee))
}

func TestSmallCartSkipsHeader(t *testing.T) {
	t.Parallel()

	md := metadata.New("GBA", metadata.MediaExecutable)
	Parse([]byte("RFU_V10"), md)
	assert.False(t, md.Attributes.Has(metadata.KeyNintendoLogoValid))
	assert.Equal(t, metadata.SaveNothing, md.Attributes[metadata.KeySaveType])
	assert.True(t, md.Attributes.Bool(metadata.KeyUsesWirelessAdapter))
}

func TestTitleEscapesHighBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `AB\xff`, asciiTitle([]byte{'A', 'B', 0xFF, 0, 0}))
}

func TestParseNeverPanics(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		cart := rapid.SliceOfN(rapid.Byte(), 0, 0x200).Draw(t, "cart")
		Parse(cart, metadata.New("GBA", metadata.MediaCartridge))
	})
}
