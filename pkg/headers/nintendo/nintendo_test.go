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

package nintendo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     string
		expected string
		found    bool
	}{
		{code: "01", expected: "Nintendo", found: true},
		{code: "8P", expected: "Sega", found: true},
		{code: "8F", expected: "I'Max", found: true},
		{code: "7L", expected: "Simon & Schuster", found: true},
		{code: "ZZ", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			name, ok := Publisher(tt.code)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestLicenseesLoaded(t *testing.T) {
	t.Parallel()

	all := Licensees()
	assert.Greater(t, len(all), 150)
	for _, l := range all {
		assert.Len(t, l.Code, 2, "licensee code %q", l.Code)
		assert.NotEmpty(t, l.Publisher)
	}
}

func TestAlphanumeric(t *testing.T) {
	t.Parallel()

	s, err := Alphanumeric([]byte("AGBE"))
	require.NoError(t, err)
	assert.Equal(t, "AGBE", s)

	_, err = Alphanumeric([]byte{'A', 0, 'B'})
	require.ErrorIs(t, err, ErrNotAlphanumeric)

	s, err = Alphanumeric(nil)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestLicenseeHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0A", LicenseeHex(0x0a))
	assert.Equal(t, "FF", LicenseeHex(0xff))
}
