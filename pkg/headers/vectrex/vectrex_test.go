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

package vectrex

import (
	"testing"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		year   string
	}{
		{name: "copyright year", header: "g GCE 1982\x80", year: "1982"},
		{name: "zero year", header: "g GCE 0000\x80", year: ""},
		{name: "not digits", header: "g GCE 19XX\x80", year: ""},
		{name: "short", header: "g GCE", year: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			md := metadata.New("Vectrex", metadata.MediaCartridge)
			Parse([]byte(tt.header), md)
			assert.Equal(t, metadata.TVAgnostic, md.TVSystem)
			assert.Equal(t, tt.year, md.Attributes.String(metadata.KeyYear))
		})
	}
}

func TestParseNeverPanics(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		header := rapid.SliceOfN(rapid.Byte(), 0, 16).Draw(t, "header")
		md := metadata.New("Vectrex", metadata.MediaCartridge)
		Parse(header, md)
		if year := md.Attributes.String(metadata.KeyYear); year != "" {
			assert.Len(t, year, yearLength)
		}
	})
}
