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

// Package nes parses iNES, NES 2.0, UNIF and fwNES (FDS) headers.
package nes

import (
	"bytes"
	"fmt"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/internal/bytewin"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
)

const HeaderSize = 16

// Header-Format values.
const (
	FormatINES  = "iNES"
	FormatNES20 = "NES 2.0"
	FormatUNIF  = "UNIF"
	FormatFwNES = "fwNES"
	FormatRaw   = "Raw"
)

var (
	magicINES = []byte("NES\x1a")
	magicUNIF = []byte("UNIF")
	magicFDS  = []byte("FDS\x1a")
	// Raw FDS disk images start with the disk info block.
	magicFDSDisk = []byte("\x01*NINTENDO-HVC*")
)

// Peripheral is a controller a game needs beyond the standard joypad.
type Peripheral string

const (
	PeripheralNormalController Peripheral = "NormalController"
	PeripheralZapper           Peripheral = "Zapper"
	PeripheralArkanoidPaddle   Peripheral = "ArkanoidPaddle"
	PeripheralFamicomKeyboard  Peripheral = "FamicomKeyboard"
	PeripheralSuborKeyboard    Peripheral = "SuborKeyboard"
	PeripheralPiano            Peripheral = "Piano"
	PeripheralPowerPad         Peripheral = "PowerPad"
)

// Mapper returns the mapper number of a 16 byte iNES header and whether
// the header uses the NES 2.0 layout, which adds bits 8-11 from byte 8.
func Mapper(header []byte) (int, bool) {
	b6, _ := bytewin.Byte(header, 6)
	b7, _ := bytewin.Byte(header, 7)
	mapper := int(b6>>4) | int(b7&0xF0)
	if b7&0x0C != 0x08 {
		return mapper, false
	}
	b8, _ := bytewin.Byte(header, 8)
	return mapper | int(b8&0x0F)<<8, true
}

func parseINES(header []byte, md *metadata.Metadata) {
	attrs := md.Attributes
	mapper, nes20 := Mapper(header)
	if nes20 {
		attrs.Set(metadata.KeyHeaderFormat, FormatNES20)
	} else {
		attrs.Set(metadata.KeyHeaderFormat, FormatINES)
	}
	attrs.Set(metadata.KeyMapperNumber, mapper)

	b6, _ := bytewin.Byte(header, 6)
	if b6&0x02 != 0 {
		attrs.Set(metadata.KeySaveType, metadata.SaveCart)
	} else {
		attrs.Set(metadata.KeySaveType, metadata.SaveNothing)
	}

	if nes20 {
		timing, _ := bytewin.Byte(header, 12)
		switch timing & 0x03 {
		case 0:
			md.TVSystem = metadata.TVNTSC
		case 1, 3:
			md.TVSystem = metadata.TVPAL
		case 2:
			md.TVSystem = metadata.TVAgnostic
		}
		return
	}
	// iNES 1.0 flag 9 is rarely set correctly, so only trust PAL.
	if b9, _ := bytewin.Byte(header, 9); b9&0x01 != 0 {
		md.TVSystem = metadata.TVPAL
	}
}

// Parse fills md from the first 16 bytes of the file.
func Parse(header []byte, md *metadata.Metadata) {
	attrs := md.Attributes
	switch {
	case bytes.HasPrefix(header, magicINES) && len(header) >= HeaderSize:
		attrs.Set(metadata.KeyHeadered, true)
		parseINES(header, md)
	case bytes.HasPrefix(header, magicUNIF):
		attrs.Set(metadata.KeyHeadered, true)
		attrs.Set(metadata.KeyHeaderFormat, FormatUNIF)
	case bytes.HasPrefix(header, magicFDS):
		attrs.Set(metadata.KeyHeadered, true)
		attrs.Set(metadata.KeyHeaderFormat, FormatFwNES)
		md.MediaType = metadata.MediaFloppy
	case bytes.HasPrefix(header, magicFDSDisk):
		attrs.Set(metadata.KeyHeadered, false)
		attrs.Set(metadata.KeyHeaderFormat, FormatRaw)
		md.MediaType = metadata.MediaFloppy
	default:
		attrs.Set(metadata.KeyHeadered, false)
	}
	if md.MediaType == metadata.MediaFloppy {
		// Disk System software was only sold in Japan.
		md.TVSystem = metadata.TVNTSC
	}
}

func ParseROM(rom romfile.ROM, md *metadata.Metadata) error {
	header, err := rom.Read(0, HeaderSize)
	if err != nil {
		return fmt.Errorf("reading nes header: %w", err)
	}
	Parse(header, md)
	return nil
}
