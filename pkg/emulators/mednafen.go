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
	"context"
	"slices"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
)

const mednafenExe = "mednafen"

var (
	mednafenCompression = []string{"zip", "gz"}
	mednafenGBMappers   = gbMappers{
		supported: []string{"ROM only", "MBC1", "MBC2", "MBC3", "MBC5", "MBC7", "HuC1", "HuC3"},
	}
	mednafenMegadriveUnsupported = []string{
		"rom_mcpir", "rom_sf002", "rom_mjlov", "rom_lion3", "rom_kof99_pokemon",
		"rom_squir", "rom_sf004", "rom_topf", "rom_smw64", "rom_lion2", "rom_stm95",
		"rom_cjmjclub", "rom_pokestad", "rom_soulb", "rom_smb", "rom_smb2", "rom_chinf3",
	}
	mednafenNESUnsupported = newIntSet(
		[]int{
			14, 20, 27, 28, 29, 31, 35, 36, 39, 43, 50, 81, 83, 84, 91, 98, 100,
			102, 103, 104, 106, 116, 136, 137, 138, 139, 141, 142, 143, 181,
			183, 186, 187, 188, 191, 192, 216, 223, 224, 225, 226, 227, 229,
			230, 231, 233, 235, 236, 237, 238, 239, 243, 245,
		},
		span(53, 63),
		span(108, 111),
		span(120, 132),
		span(145, 149),
		span(161, 179),
		span(194, 205),
		span(211, 214),
		span(218, 221),
	)
	mednafenSNESFaustChips = []string{"CX4", "SA-1", "DSP-1", "SuperFX", "SuperFX2", "DSP-2", "S-DD1"}
)

// mednafenArgs runs a file fullscreen with an explicit module, so that
// files with ambiguous extensions go to the intended system.
func mednafenArgs(module string) []string {
	return []string{"-video.fs", "1", "-force_module", module, launch.PathPlaceholder}
}

func mednafenModule(req *Request, module string) Result {
	return Accept(launch.Single(req.exe(mednafenExe), mednafenArgs(module)...))
}

func mednafenStatic(module string) StaticArgs {
	return StaticArgs{Exe: mednafenExe, Args: mednafenArgs(module)}
}

func mednafenGameGear(_ context.Context, req *Request) Result {
	switch mapper := req.attrs().Text(metadata.KeyMapper); mapper {
	case "Codemasters", "EEPROM":
		return Reject(RejectUnsupportedMapper, "%s mapper not supported", mapper)
	}
	return mednafenModule(req, "gg")
}

func mednafenGameBoy(_ context.Context, req *Request) Result {
	if rej := mednafenGBMappers.verify(req.attrs()); rej != nil {
		return rejected(rej)
	}
	return mednafenModule(req, "gb")
}

func mednafenGBA(_ context.Context, req *Request) Result {
	if size := req.ROM.Size(); size > 32*1024*1024 {
		return Reject(RejectUnsupportedHardware, "64MB GBA ROMs not supported")
	}
	return mednafenModule(req, "gba")
}

func mednafenLynx(_ context.Context, req *Request) Result {
	md := req.Metadata
	if md.MediaType == metadata.MediaCartridge && !md.Attributes.Bool(metadata.KeyHeadered) {
		return Reject(RejectHeaderMalformed, "needs to have .lnx header")
	}
	return mednafenModule(req, "lynx")
}

func mednafenMegadrive(_ context.Context, req *Request) Result {
	attrs := req.attrs()
	if attrs.Bool(metadata.KeyUsesSVP) {
		return Reject(RejectUnsupportedHardware, "SVP chip not supported")
	}
	if mapper := attrs.Text(metadata.KeyMapper); slices.Contains(mednafenMegadriveUnsupported, mapper) {
		return Reject(RejectUnsupportedMapper, "%s not supported", mapper)
	}
	return mednafenModule(req, "md")
}

func mednafenNES(_ context.Context, req *Request) Result {
	mapper, check, rej := nesMapper(req)
	if rej != nil {
		return rejected(rej)
	}
	if check && mednafenNESUnsupported.has(mapper) {
		return Reject(RejectUnsupportedMapper, "unsupported mapper: %d", mapper)
	}
	return mednafenModule(req, "nes")
}

func mednafenSNESFaust(_ context.Context, req *Request) Result {
	chip := req.attrs().Text(metadata.KeyExpansionChip)
	if chip != "" && !slices.Contains(mednafenSNESFaustChips, chip) {
		return Reject(RejectUnsupportedHardware, "%s not supported", chip)
	}
	return mednafenModule(req, "snes_faust")
}
