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

// Package nintendo holds helpers shared by the Nintendo header formats.
package nintendo

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

//go:embed licensees.csv
var licenseesCSV []byte

var ErrNotAlphanumeric = errors.New("bytes are not alphanumeric")

type Licensee struct {
	Code      string `csv:"code"`
	Publisher string `csv:"publisher"`
}

var loadLicensees = sync.OnceValue(func() map[string]string {
	entries := make([]Licensee, 0)
	if err := gocsv.Unmarshal(bytes.NewReader(licenseesCSV), &entries); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal embedded licensee table")
		return map[string]string{}
	}

	codes := make(map[string]string, len(entries))
	for _, e := range entries {
		codes[e.Code] = e.Publisher
	}
	return codes
})

// Publisher returns the publisher for a two character licensee code.
func Publisher(code string) (string, bool) {
	name, ok := loadLicensees()[code]
	return name, ok
}

// Licensees returns a copy of the licensee table.
func Licensees() []Licensee {
	codes := loadLicensees()
	out := make([]Licensee, 0, len(codes))
	for code, name := range codes {
		out = append(out, Licensee{Code: code, Publisher: name})
	}
	return out
}

// Alphanumeric converts header bytes to a string if every byte is an
// ASCII digit or letter.
func Alphanumeric(b []byte) (string, error) {
	for _, c := range b {
		isDigit := c >= '0' && c <= '9'
		isUpper := c >= 'A' && c <= 'Z'
		isLower := c >= 'a' && c <= 'z'
		if !isDigit && !isUpper && !isLower {
			return "", fmt.Errorf("%w: %x", ErrNotAlphanumeric, b)
		}
	}
	return string(b), nil
}

// LicenseeHex formats a one byte licensee code the way the table keys it.
func LicenseeHex(code byte) string {
	return fmt.Sprintf("%02X", code)
}
