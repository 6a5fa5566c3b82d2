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

// Package gameboy parses the cartridge header of Game Boy and Game Boy
// Color ROMs.
package gameboy

import (
	"fmt"
	"hash/crc32"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/internal/bytewin"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/nintendo"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
)

const (
	HeaderOffset = 0x100
	HeaderSize   = 0x50

	logoCRC32 = 0x46195417
)

// ColourSupport is the CGB flag of the header.
type ColourSupport string

const (
	ColourNo       ColourSupport = "No"
	ColourYes      ColourSupport = "Yes"
	ColourRequired ColourSupport = "Required"
)

// Mapper is the memory bank controller of a cartridge plus the extra
// hardware the cartridge type byte says is present.
type Mapper struct {
	Name          string
	RAM           bool
	Battery       bool
	RTC           bool
	Rumble        bool
	Accelerometer bool
}

func (m Mapper) String() string {
	return m.Name
}

var mappers = map[byte]Mapper{
	0: {Name: "ROM only"},
	8: {Name: "ROM only", RAM: true},
	9: {Name: "ROM only", RAM: true, Battery: true},

	1: {Name: "MBC1"},
	2: {Name: "MBC1", RAM: true},
	3: {Name: "MBC1", RAM: true, Battery: true},

	5: {Name: "MBC2"},
	6: {Name: "MBC2", RAM: true, Battery: true},

	11: {Name: "MMM01"},
	12: {Name: "MMM01", RAM: true},
	13: {Name: "MMM01", RAM: true, Battery: true},

	15: {Name: "MBC3", Battery: true, RTC: true},
	16: {Name: "MBC3", RAM: true, Battery: true, RTC: true},
	17: {Name: "MBC3"},
	18: {Name: "MBC3", RAM: true},
	19: {Name: "MBC3", Battery: true},

	25: {Name: "MBC5"},
	26: {Name: "MBC5", RAM: true},
	27: {Name: "MBC5", RAM: true, Battery: true},
	28: {Name: "MBC5", Rumble: true},
	29: {Name: "MBC5", Rumble: true, RAM: true},
	30: {Name: "MBC5", Rumble: true, RAM: true, Battery: true},

	32:  {Name: "MBC6", RAM: true, Battery: true},
	34:  {Name: "MBC7", RAM: true, Battery: true, Accelerometer: true},
	252: {Name: "Pocket Camera", RAM: true, Battery: true},
	253: {Name: "Bandai TAMA5"},
	254: {Name: "HuC3"},
	255: {Name: "HuC1", RAM: true, Battery: true},
}

// LookupMapper returns the mapper for a cartridge type byte.
func LookupMapper(cartType byte) (Mapper, bool) {
	m, ok := mappers[cartType]
	return m, ok
}

// MapperName returns the name of the mapper stored under key. Detection
// stores a Mapper, overrides from other sources may store a plain name.
func MapperName(attrs metadata.Attributes, key string) (string, bool) {
	switch v := attrs[key].(type) {
	case Mapper:
		return v.Name, true
	case string:
		return v, v != ""
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// Parse fills md from the 0x50 byte header window that starts at 0x100.
// Missing bytes leave their attributes unset.
func Parse(header []byte, md *metadata.Metadata) {
	md.TVSystem = metadata.TVAgnostic
	attrs := md.Attributes

	logo := bytewin.Slice(header, 4, 0x34)
	attrs.Set(metadata.KeyNintendoLogoValid, len(logo) == 0x30 && crc32.ChecksumIEEE(logo) == logoCRC32)

	if cgb, ok := bytewin.Byte(header, 0x43); ok {
		switch cgb {
		case 0x80:
			attrs.Set(metadata.KeyIsColour, ColourYes)
		case 0xC0:
			attrs.Set(metadata.KeyIsColour, ColourRequired)
		default:
			attrs.Set(metadata.KeyIsColour, ColourNo)
		}
	}

	if sgb, ok := bytewin.Byte(header, 0x46); ok {
		attrs.Set(metadata.KeySGBEnhanced, sgb == 3)
	}

	if cartType, ok := bytewin.Byte(header, 0x47); ok {
		if mapper, found := LookupMapper(cartType); found {
			attrs.Set(metadata.KeyMapper, mapper)
			if mapper.Battery {
				attrs.Set(metadata.KeySaveType, metadata.SaveCart)
			} else {
				attrs.Set(metadata.KeySaveType, metadata.SaveNothing)
			}
			attrs.Set(metadata.KeyForceFeedback, mapper.Rumble)
			attrs.Set(metadata.KeyUsesMotionControls, mapper.Accelerometer)
			attrs.Set(metadata.KeyHasRTC, mapper.RTC)
		}
	}

	old, ok := bytewin.Byte(header, 0x4B)
	if !ok {
		return
	}
	code := nintendo.LicenseeHex(old)
	if old == 0x33 {
		newCode, err := nintendo.Alphanumeric(bytewin.Slice(header, 0x44, 0x46))
		if err != nil || len(newCode) != 2 {
			return
		}
		code = newCode
	}
	attrs.Set(metadata.KeyLicensee, code)
	if publisher, found := nintendo.Publisher(code); found {
		attrs.Set(metadata.KeyPublisher, publisher)
	}
}

// ParseROM reads the header window from rom and parses it.
func ParseROM(rom romfile.ROM, md *metadata.Metadata) error {
	header, err := rom.Read(HeaderOffset, HeaderSize)
	if err != nil {
		return fmt.Errorf("reading game boy header: %w", err)
	}
	Parse(header, md)
	return nil
}
