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

package emulators

import (
	"slices"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/gameboy"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
)

// gbMappers lists the Game Boy mappers an emulator can run. Detected
// mappers are ones the emulator recognises without trusting the header,
// so they work even when the header is overridden.
type gbMappers struct {
	supported []string
	detected  []string
}

func (m gbMappers) verify(attrs metadata.Attributes) *Rejection {
	mapper, ok := gameboy.MapperName(attrs, metadata.KeyMapper)
	if !ok {
		return &Rejection{Kind: RejectUnsupportedMapper, Reason: "mapper is not detected"}
	}
	if attrs.Bool(metadata.KeyOverrideMapper) && !slices.Contains(m.detected, mapper) {
		return &Rejection{
			Kind:   RejectUnsupportedMapper,
			Reason: "overriding the mapper to " + mapper + " is not supported",
		}
	}
	if !slices.Contains(m.supported, mapper) && !slices.Contains(m.detected, mapper) {
		return &Rejection{Kind: RejectUnsupportedMapper, Reason: "mapper " + mapper + " not supported"}
	}
	return nil
}

func rejected(r *Rejection) Result {
	return Result{Rejection: r}
}

// Mega Drive header region codes, also used by 32X, Mega CD and Pico.
var (
	mdUSARegions    = []string{"USA", "World", "BrazilUSA", "JapanUSA", "USAEurope"}
	mdJapanRegions  = []string{"Japan", "Japan1"}
	mdEuropeRegions = []string{"Europe", "EuropeA", "Europe8"}
)

func containsAny(have, want []string) bool {
	return slices.ContainsFunc(want, func(s string) bool {
		return slices.Contains(have, s)
	})
}

// regionVariant picks one of three machine variants from the header's
// region codes, checked in USA, Japan, Europe order. Without region codes
// the TV system decides between fallback and pal.
type regionVariant struct {
	usa, japan, europe string
	unknown            string
	fallback, pal      string
}

func (v regionVariant) pick(md *metadata.Metadata) string {
	codes := md.Attributes.Strings(metadata.KeyRegionCode)
	if len(codes) == 0 {
		if md.TVSystem == metadata.TVPAL {
			return v.pal
		}
		return v.fallback
	}
	switch {
	case containsAny(codes, mdUSARegions):
		return v.usa
	case containsAny(codes, mdJapanRegions):
		return v.japan
	case containsAny(codes, mdEuropeRegions):
		return v.europe
	default:
		return v.unknown
	}
}

// saturnRegion picks a variant from Saturn style region codes, which
// Dreamcast discs share. USA is the default.
func saturnRegion(md *metadata.Metadata, usa, japan, europe string) string {
	codes := md.Attributes.Strings(metadata.KeyRegionCode)
	switch {
	case slices.Contains(codes, "USA"):
		return usa
	case slices.Contains(codes, "Japan"):
		return japan
	case slices.Contains(codes, "Europe"):
		return europe
	default:
		return usa
	}
}

func isPAL(md *metadata.Metadata) bool {
	return md.TVSystem == metadata.TVPAL
}

type intSet map[int]struct{}

func newIntSet(groups ...[]int) intSet {
	set := make(intSet)
	for _, group := range groups {
		for _, v := range group {
			set[v] = struct{}{}
		}
	}
	return set
}

// span returns lo..hi inclusive.
func span(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

func (s intSet) has(v int) bool {
	_, ok := s[v]
	return ok
}
