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

// Package n64 parses Nintendo 64 ROM headers in big endian (z64) and
// byteswapped (v64) order.
package n64

import (
	"bytes"
	"crypto/md5" //nolint:gosec // md5 is the key the mupen64plus database uses
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/internal/bytewin"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/nintendo"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
	"golang.org/x/text/encoding/japanese"
)

const HeaderSize = 64

// ROM-Format values.
const (
	FormatZ64     = "Z64"
	FormatV64     = "V64"
	FormatUnknown = "Unknown"
)

var (
	magicZ64 = []byte{0x80, 0x37, 0x12, 0x40}
	magicV64 = []byte{0x37, 0x80, 0x40, 0x12}
)

// Byteswap swaps every pair of bytes. A trailing odd byte is kept as is.
func Byteswap(b []byte) []byte {
	out := bytes.Clone(b)
	for i := 0; i+1 < len(out); i += 2 {
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}

func decodeTitle(b []byte) string {
	b = bytes.TrimRight(b, "\x00")
	title, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return strings.TrimRight(string(title), "\x00")
}

// ParseHeader fills md from a big endian 64 byte header.
func ParseHeader(header []byte, md *metadata.Metadata) {
	attrs := md.Attributes
	if title := decodeTitle(bytewin.Slice(header, 28, 52)); title != "" {
		attrs.Set(metadata.KeyInternalTitle, title)
	}
	code, err := nintendo.Alphanumeric(bytewin.Slice(header, 59, 63))
	if err == nil && code != "" {
		attrs.Set(metadata.KeyProductCode, code)
	}
	if rev, ok := bytewin.Byte(header, 63); ok {
		attrs.Set(metadata.KeyRevision, int(rev))
	}
}

// ApplyDatabaseEntry copies what the mupen64plus database knows about
// the ROM into md.
func ApplyDatabaseEntry(entry map[string]string, md *metadata.Metadata) {
	attrs := md.Attributes
	if name, ok := entry["GoodName"]; ok {
		attrs.Set(metadata.KeyGoodName, name)
	}
	if players, ok := entry["Players"]; ok {
		if n, err := strconv.Atoi(players); err == nil {
			attrs.Set(metadata.KeyNumberOfPlayers, n)
		}
	}

	switch {
	case entry["SaveType"] != "" && entry["SaveType"] != "None":
		attrs.Set(metadata.KeySaveType, metadata.SaveCart)
	case entry["Mempak"] == "Yes":
		attrs.Set(metadata.KeyUsesControllerPak, true)
		attrs.Set(metadata.KeySaveType, metadata.SaveMemoryCard)
	default:
		attrs.Set(metadata.KeySaveType, metadata.SaveNothing)
	}

	if entry["Rumble"] == "Yes" {
		attrs.Set(metadata.KeyForceFeedback, true)
	}
	if entry["Transferpak"] == "Yes" {
		attrs.Set(metadata.KeyUsesTransferPak, true)
	}
}

// Parse fills md from an entire ROM image. db may be nil.
func Parse(rom []byte, md *metadata.Metadata, db *Database) {
	magic := bytewin.Slice(rom, 0, 4)
	header := bytewin.Slice(rom, 0, HeaderSize)
	switch {
	case bytes.Equal(magic, magicZ64):
		md.Attributes.Set(metadata.KeyROMFormat, FormatZ64)
	case bytes.Equal(magic, magicV64):
		md.Attributes.Set(metadata.KeyROMFormat, FormatV64)
		header = Byteswap(header)
	default:
		md.Attributes.Set(metadata.KeyROMFormat, FormatUnknown)
		return
	}

	ParseHeader(header, md)

	if db == nil {
		return
	}
	sum := md5.Sum(rom) //nolint:gosec // database key
	if entry, ok := db.Lookup(strings.ToUpper(hex.EncodeToString(sum[:]))); ok {
		ApplyDatabaseEntry(entry, md)
	}
}

func ParseROM(rom romfile.ROM, md *metadata.Metadata, db *Database) error {
	data, err := rom.Read(0, -1)
	if err != nil {
		return fmt.Errorf("reading n64 rom: %w", err)
	}
	Parse(data, md, db)
	return nil
}
