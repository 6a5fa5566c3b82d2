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

// Package lynx detects the LNX header used by fullpath Lynx loaders.
package lynx

import (
	"bytes"
	"fmt"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/internal/bytewin"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
)

const HeaderSize = 64

var magic = []byte("LYNX")

func Parse(header []byte, md *metadata.Metadata) {
	md.TVSystem = metadata.TVAgnostic
	headered := bytes.Equal(bytewin.Slice(header, 0, 4), magic)
	md.Attributes.Set(metadata.KeyHeadered, headered)
	if !headered {
		return
	}
	// Cart name is a NUL padded string at 0x0A.
	name := bytes.TrimRight(bytewin.Slice(header, 0x0A, 0x2A), "\x00")
	if len(name) > 0 {
		md.Attributes.Set(metadata.KeyInternalTitle, string(name))
	}
}

func ParseROM(rom romfile.ROM, md *metadata.Metadata) error {
	header, err := rom.Read(0, HeaderSize)
	if err != nil {
		return fmt.Errorf("reading lynx header: %w", err)
	}
	Parse(header, md)
	return nil
}
