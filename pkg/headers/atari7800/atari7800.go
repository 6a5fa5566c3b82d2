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

// Package atari7800 parses the optional 128 byte A78 header.
package atari7800

import (
	"bytes"
	"fmt"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/internal/bytewin"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
)

const HeaderSize = 128

var magic = []byte("ATARI7800")

// Peripheral is a controller type declared by the header.
type Peripheral string

const (
	PeripheralDigital   Peripheral = "Digital"
	PeripheralLightGun  Peripheral = "LightGun"
	PeripheralPaddle    Peripheral = "Paddle"
	PeripheralTrackball Peripheral = "Trackball"
	PeripheralCustom    Peripheral = "Custom"
)

// Buttons is the button count of the controller.
func (p Peripheral) Buttons() int {
	switch p {
	case PeripheralDigital:
		return 2
	case PeripheralLightGun, PeripheralPaddle, PeripheralTrackball:
		return 1
	default:
		return 0
	}
}

var peripherals = map[byte]Peripheral{
	1: PeripheralDigital,
	2: PeripheralLightGun,
	3: PeripheralPaddle,
	4: PeripheralTrackball,
}

func peripheral(b byte) (Peripheral, bool) {
	if b == 0 {
		return "", false
	}
	if p, ok := peripherals[b]; ok {
		return p, true
	}
	return PeripheralCustom, true
}

// Parse fills md from the first 128 bytes of the file. Files without the
// magic are headerless and get only Headered=false.
func Parse(header []byte, md *metadata.Metadata) {
	attrs := md.Attributes
	if !bytes.Equal(bytewin.Slice(header, 1, 10), magic) {
		attrs.Set(metadata.KeyHeadered, false)
		return
	}
	attrs.Set(metadata.KeyHeadered, true)

	if b, ok := bytewin.Byte(header, 55); ok {
		if p, present := peripheral(b); present {
			attrs.Set(metadata.KeyLeftPeripheral, p)
		}
	}
	if b, ok := bytewin.Byte(header, 56); ok {
		if p, present := peripheral(b); present {
			attrs.Set(metadata.KeyRightPeripheral, p)
		}
	}

	if tv, ok := bytewin.Byte(header, 57); ok {
		switch tv {
		case 0:
			md.TVSystem = metadata.TVNTSC
		case 1:
			md.TVSystem = metadata.TVPAL
		default:
			attrs.Set(metadata.KeyInvalidTVType, true)
		}
	}

	if save, ok := bytewin.Byte(header, 58); ok {
		switch save {
		case 0:
			attrs.Set(metadata.KeySaveType, metadata.SaveNothing)
		case 1:
			attrs.Set(metadata.KeySaveType, metadata.SaveInternal)
			attrs.Set(metadata.KeyUsesHiscoreCart, true)
		case 2:
			attrs.Set(metadata.KeySaveType, metadata.SaveMemoryCard)
			attrs.Set(metadata.KeyUsesSaveKey, true)
		}
	}
}

func ParseROM(rom romfile.ROM, md *metadata.Metadata) error {
	header, err := rom.Read(0, HeaderSize)
	if err != nil {
		return fmt.Errorf("reading a78 header: %w", err)
	}
	Parse(header, md)
	return nil
}
