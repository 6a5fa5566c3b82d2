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

// Package bytewin slices fixed header windows out of buffers that may be
// shorter than the header they are supposed to hold.
package bytewin

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Clamp limits v to the range [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Slice returns data[start:end] with both bounds clamped to the buffer.
// The result is empty, never nil, when the window lies past the end.
func Slice(data []byte, start, end int) []byte {
	start = Clamp(start, 0, len(data))
	end = Clamp(end, start, len(data))
	return data[start:end:end]
}

// Byte returns data[i] and whether it exists.
func Byte(data []byte, i int) (byte, bool) {
	if i < 0 || i >= len(data) {
		return 0, false
	}
	return data[i], true
}

// Uint16LE reads a little endian uint16 at offset.
func Uint16LE(data []byte, offset int) (uint16, bool) {
	w := Slice(data, offset, offset+2)
	if len(w) < 2 {
		return 0, false
	}
	return binary.LittleEndian.Uint16(w), true
}

// Has reports whether data holds the whole window [start, end).
func Has(data []byte, start, end int) bool {
	return start >= 0 && end >= start && end <= len(data)
}
