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

// Package gba parses Game Boy Advance cartridge headers and scans the
// cartridge body for the library strings that reveal its hardware.
package gba

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/internal/bytewin"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/nintendo"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
)

const (
	HeaderSize = 0xC0

	logoCRC32 = 0xD0BEB55E
	// Title used by the multiboot conversion tool, which writes no
	// further header fields.
	multibootTitle = "mb2gba"
)

var (
	saveStrings = [][]byte{
		[]byte("EEPROM_V"),
		[]byte("SRAM_V"),
		[]byte("SRAM_F_V"),
		[]byte("FLASH_V"),
		[]byte("FLASH512_V"),
		[]byte("FLASH1M_V"),
	}
	rtcString      = []byte("SIIRTC_V")
	wirelessString = []byte("RFU_V10")
)

func asciiTitle(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c < 0x80 {
			sb.WriteByte(c)
		} else {
			_, _ = fmt.Fprintf(&sb, "\\x%02x", c)
		}
	}
	return strings.TrimRight(sb.String(), "\x00")
}

// ParseHeader fills md from the 0xC0 byte cartridge header.
func ParseHeader(header []byte, md *metadata.Metadata) {
	attrs := md.Attributes

	logo := bytewin.Slice(header, 4, 0xA0)
	attrs.Set(metadata.KeyNintendoLogoValid, len(logo) == 0x9C && crc32.ChecksumIEEE(logo) == logoCRC32)

	title := asciiTitle(bytewin.Slice(header, 0xA0, 0xAC))
	attrs.Set(metadata.KeyInternalTitle, title)
	if title == multibootTitle {
		return
	}

	code, err := nintendo.Alphanumeric(bytewin.Slice(header, 0xAC, 0xB0))
	if err == nil && len(code) == 4 {
		gameType := code[0]
		attrs.Set(metadata.KeyUsesMotionControls, gameType == 'K' || gameType == 'R')
		attrs.Set(metadata.KeyForceFeedback, gameType == 'R' || gameType == 'V')
		attrs.Set(metadata.KeyProductCode, code)
	}

	licensee, err := nintendo.Alphanumeric(bytewin.Slice(header, 0xB0, 0xB2))
	if err == nil && len(licensee) == 2 {
		attrs.Set(metadata.KeyLicensee, licensee)
		if publisher, ok := nintendo.Publisher(licensee); ok {
			attrs.Set(metadata.KeyPublisher, publisher)
		}
	}

	if rev, ok := bytewin.Byte(header, 0xBC); ok {
		attrs.Set(metadata.KeyRevision, int(rev))
	}
}

// ScanCart looks for the save, RTC and wireless adapter library
// signatures anywhere in the cartridge.
func ScanCart(cart []byte, md *metadata.Metadata) {
	save := metadata.SaveNothing
	for _, s := range saveStrings {
		if bytes.Contains(cart, s) {
			save = metadata.SaveCart
			break
		}
	}
	md.Attributes.Set(metadata.KeySaveType, save)
	md.Attributes.Set(metadata.KeyHasRTC, bytes.Contains(cart, rtcString))
	md.Attributes.Set(metadata.KeyUsesWirelessAdapter, bytes.Contains(cart, wirelessString))
}

// Parse fills md from an entire cartridge image. The header is only read
// when the image is large enough to hold one.
func Parse(cart []byte, md *metadata.Metadata) {
	md.TVSystem = metadata.TVAgnostic
	if len(cart) >= HeaderSize {
		ParseHeader(cart[:HeaderSize], md)
	}
	ScanCart(cart, md)
}

func ParseROM(rom romfile.ROM, md *metadata.Metadata) error {
	cart, err := rom.Read(0, -1)
	if err != nil {
		return fmt.Errorf("reading gba cartridge: %w", err)
	}
	Parse(cart, md)
	return nil
}
