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

// Package vectrex reads the copyright year from Vectrex cartridges.
package vectrex

import (
	"fmt"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/internal/bytewin"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
)

const (
	yearOffset = 6
	yearLength = 4
)

// Parse fills md from the start of a cartridge image. The Vectrex draws
// vectors, so the TV system never matters.
func Parse(header []byte, md *metadata.Metadata) {
	md.TVSystem = metadata.TVAgnostic

	year := bytewin.Slice(header, yearOffset, yearOffset+yearLength)
	if len(year) != yearLength || string(year) == "0000" {
		return
	}
	for _, c := range year {
		if c < '0' || c > '9' {
			return
		}
	}
	md.Attributes.Set(metadata.KeyYear, string(year))
}

func ParseROM(rom romfile.ROM, md *metadata.Metadata) error {
	header, err := rom.Read(0, yearOffset+yearLength)
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	Parse(header, md)
	return nil
}
