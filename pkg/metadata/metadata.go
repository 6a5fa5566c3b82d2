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

// Package metadata holds the attributes recovered for a single file before
// it is matched against an emulator.
package metadata

import (
	"fmt"
	"strings"
)

type MediaType int

const (
	MediaUnknown MediaType = iota
	MediaCartridge
	MediaFloppy
	MediaOpticalDisc
	MediaTape
	MediaExecutable
	MediaDigital
	MediaSnapshot
	MediaBarcode
	MediaHardDisk
)

var mediaTypeNames = map[MediaType]string{
	MediaUnknown:     "Unknown",
	MediaCartridge:   "Cartridge",
	MediaFloppy:      "Floppy",
	MediaOpticalDisc: "OpticalDisc",
	MediaTape:        "Tape",
	MediaExecutable:  "Executable",
	MediaDigital:     "Digital",
	MediaSnapshot:    "Snapshot",
	MediaBarcode:     "Barcode",
	MediaHardDisk:    "HardDisk",
}

func (m MediaType) String() string {
	if name, ok := mediaTypeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MediaType(%d)", int(m))
}

// ParseMediaType case-insensitively parses a media type name.
func ParseMediaType(s string) (MediaType, error) {
	for k, v := range mediaTypeNames {
		if strings.EqualFold(v, s) {
			return k, nil
		}
	}
	return MediaUnknown, fmt.Errorf("unknown media type: %s", s)
}

type TVSystem int

const (
	TVUnknown TVSystem = iota
	TVNTSC
	TVPAL
	TVAgnostic
)

func (t TVSystem) String() string {
	switch t {
	case TVNTSC:
		return "NTSC"
	case TVPAL:
		return "PAL"
	case TVAgnostic:
		return "Agnostic"
	default:
		return "Unknown"
	}
}

type SaveType int

const (
	SaveUnknown SaveType = iota
	SaveNothing
	SaveCart
	SaveFloppy
	SaveMemoryCard
	SaveInternal
	SaveCloud
)

func (s SaveType) String() string {
	switch s {
	case SaveNothing:
		return "Nothing"
	case SaveCart:
		return "Cart"
	case SaveFloppy:
		return "Floppy"
	case SaveMemoryCard:
		return "MemoryCard"
	case SaveInternal:
		return "Internal"
	case SaveCloud:
		return "Cloud"
	default:
		return "Unknown"
	}
}

// Metadata is created per file, filled in by header parsers and consumed
// by a single resolution call.
type Metadata struct {
	Attributes Attributes
	// Platform is the system ID the file was scanned under. Parsers may
	// refine it, e.g. a .gbc file becomes GameboyColor.
	Platform  string
	Regions   []string
	MediaType MediaType
	TVSystem  TVSystem
}

func New(platform string, media MediaType) *Metadata {
	return &Metadata{
		Platform:   platform,
		MediaType:  media,
		Attributes: make(Attributes),
	}
}

// Fields flattens the metadata for output consumers. Attribute values are
// rendered with fmt so enum types print their names.
func (m *Metadata) Fields() map[string]string {
	fields := make(map[string]string, len(m.Attributes)+4)
	fields["Platform"] = m.Platform
	fields["Media-Type"] = m.MediaType.String()
	fields["TV-Type"] = m.TVSystem.String()
	if len(m.Regions) > 0 {
		fields["Regions"] = strings.Join(m.Regions, ";")
	}
	for k, v := range m.Attributes {
		fields[k] = fmt.Sprint(v)
	}
	return fields
}
