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
	"fmt"
	"slices"
	"sort"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
)

var (
	viceCartFormats = []string{"crt", "bin", "80", "a0", "e0", "20", "40", "60", "70", "b0"}
	viceDiskFormats = []string{
		"d64", "d71", "d80", "d81", "d82", "d1m", "d2m", "g64", "p64", "x64",
	}
	viceFormats     = slices.Concat(viceCartFormats, viceDiskFormats, []string{"tap", "t64", "prg", "p00"})
	viceCompression = []string{"zip", "gz"}
)

func mame(name string, cmd CommandSource, exts ...string) *Candidate {
	return &Candidate{Name: name, Command: cmd, Extensions: exts, Compression: mameCompression}
}

func mednafen(name string, cmd CommandSource, exts ...string) *Candidate {
	return &Candidate{Name: name, Command: cmd, Extensions: exts, Compression: mednafenCompression}
}

func emulator(name string, cmd CommandSource, compression []string, exts ...string) *Candidate {
	return &Candidate{Name: name, Command: cmd, Extensions: exts, Compression: compression}
}

func static(exe string, args ...string) StaticArgs {
	return StaticArgs{Exe: exe, Args: args}
}

func registry(cands ...*Candidate) map[string]*Candidate {
	out := make(map[string]*Candidate, len(cands))
	for _, c := range cands {
		if _, ok := out[c.Name]; ok {
			panic("duplicate emulator: " + c.Name)
		}
		out[c.Name] = c
	}
	return out
}

var mednafenPCEFormats = []string{"pce", "sgx", "iso", "cue", "ccd", "toc", "m3u"}

var mameMSXFormats = slices.Concat([]string{"bin", "rom", "dmk"}, mameFloppyFormats)

// Candidates is every emulator known by name.
var Candidates = registry(
	// Standalone
	emulator("A7800", Builder(a7800), []string{"zip"}, "a78", "bin"),
	emulator("bsnes", Builder(bsnes), []string{"zip"}, "sfc", "smc", "st", "bs", "gb", "gbc"),
	emulator("Citra", Builder(citra), nil, "3ds", "cxi", "3dsx"),
	emulator("cxNES", Builder(cxnes), []string{"zip"}, "nes", "fds", "unf"),
	emulator("Dolphin", Builder(dolphin), nil, "iso", "gcz", "elf", "dol", "wad"),
	emulator("DuckStation", static("duckstation-qt", "-batch", "-fullscreen", launch.PathPlaceholder), nil,
		"bin", "cue", "img", "iso", "chd", "ecm", "m3u", "pbp", "exe", "psexe"),
	emulator("Flycast", Builder(flycast), nil, "gdi", "cdi", "chd", "cue"),
	emulator("Gambatte", gbMapperEmulator(gambatteGBMappers, "gambatte_qt", "--full-screen", launch.PathPlaceholder),
		[]string{"zip"}, "gb", "gbc"),
	emulator("GBE+", gbMapperEmulator(gbePlusGBMappers, "gbe_plus_qt", launch.PathPlaceholder), nil, "gb", "gbc", "gba"),
	emulator("Kega Fusion", Builder(kegaFusion), []string{"zip"},
		"bin", "gen", "md", "smd", "sgd", "gg", "sms", "iso", "cue", "sg", "sc", "32x"),
	emulator("Medusa", Builder(medusa), []string{"7z", "zip"}, "nds"),
	emulator("melonDS", Builder(melonDS), []string{"zip"}, "nds", "srl"),
	emulator("mGBA", Builder(mgba), []string{"7z", "zip"}, "gb", "gbc", "gba", "srl", "bin", "mb"),
	emulator("Mupen64Plus", Builder(mupen64plus), nil, "z64", "v64", "n64"),
	emulator("PCSX2", static("pcsx2", "--nogui", "--fullscreen", "--fullboot", launch.PathPlaceholder),
		[]string{"gz"}, "iso", "cso", "bin"),
	emulator("PokeMini", static("PokeMini", "-fullscreen", launch.PathPlaceholder), []string{"zip"}, "min"),
	emulator("PokeMini (wrapper)", Builder(pokeminiWrapper), []string{"zip"}, "min"),
	emulator("PPSSPP", Builder(ppsspp), nil, "iso", "pbp", "cso"),
	emulator("PrBoom+", Builder(prboomPlus), nil, "wad"),
	emulator("Reicast", Builder(reicast), nil, "gdi", "cdi", "chd"),
	emulator("SimCoupe", static("simcoupe", "-fullscreen", "yes", launch.PathPlaceholder), []string{"zip", "gz"},
		"mgt", "sad", "dsk", "sbt"),
	emulator("Snes9x", Builder(snes9x), []string{"zip", "gz"}, "sfc", "smc", "swc"),
	emulator("Stella", static("stella", "-fullscreen", "1", launch.PathPlaceholder), []string{"gz", "zip"}, "a26", "bin", "rom"),
	emulator("Yuzu", static("yuzu", "-f", "-g", launch.PathPlaceholder), nil, "xci", "nsp", "nca", "nro", "nso", "elf"),

	// Mednafen
	mednafen("Mednafen (Game Boy)", Builder(mednafenGameBoy), "gb", "gbc"),
	mednafen("Mednafen (Game Gear)", Builder(mednafenGameGear), "gg"),
	mednafen("Mednafen (GBA)", Builder(mednafenGBA), "gba"),
	mednafen("Mednafen (Lynx)", Builder(mednafenLynx), "lnx", "lyx", "o"),
	// The gg module runs Master System games too, if they are renamed.
	mednafen("Mednafen (Master System)", mednafenStatic("gg"), "gg"),
	mednafen("Mednafen (Mega Drive)", Builder(mednafenMegadrive), "md", "bin", "gen", "smd", "sgd"),
	mednafen("Mednafen (Neo Geo Pocket)", mednafenStatic("ngp"), "ngp", "npc", "ngc"),
	mednafen("Mednafen (NES)", Builder(mednafenNES), "nes", "fds", "unf"),
	mednafen("Mednafen (PC Engine)", mednafenStatic("pce"), mednafenPCEFormats...),
	mednafen("Mednafen (PC Engine Fast)", mednafenStatic("pce_fast"), mednafenPCEFormats...),
	// Do not specify an FX-SCSI BIOS.
	mednafen("Mednafen (PC-FX)", mednafenStatic("pcfx"), "iso", "cue", "toc", "ccd", "m3u"),
	mednafen("Mednafen (PS1)", mednafenStatic("psx"), "iso", "cue", "exe", "toc", "ccd", "m3u"),
	mednafen("Mednafen (Saturn)", mednafenStatic("ss"), "cue", "toc", "ccd", "m3u"),
	mednafen("Mednafen (SNES)", mednafenStatic("snes"), "sfc", "smc", "swc"),
	mednafen("Mednafen (SNES-Faust)", Builder(mednafenSNESFaust), "sfc", "smc", "swc"),
	mednafen("Mednafen (Virtual Boy)", mednafenStatic("vb"), "bin", "vb"),
	mednafen("Mednafen (WonderSwan)", mednafenStatic("wswan"), "ws", "wsc", "bin", "pc2"),

	// MAME
	mame("MAME (32X)", Builder(mame32X), "32x", "bin"),
	mame("MAME (Amiga CD32)", Builder(mameAmigaCD32), mameCDROMFormats...),
	mame("MAME (Amstrad PCW)", Builder(mameAmstradPCW), mameFloppyFormats...),
	mame("MAME (Apple II)", Builder(mameAppleII), "do", "dsk", "po", "nib", "woz"),
	mame("MAME (Arcadia 2001)", mameStatic("arcadia", "cart"), "bin"),
	mame("MAME (Astrocade)", mameStatic("astrocde", "cart", slotOption{"exp", "rl64_ram"}), "bin"),
	mame("MAME (Atari 2600)", Builder(mameAtari2600), "bin", "a26"),
	mame("MAME (Atari 5200)", mameStatic("a5200", "cart"), "bin", "rom", "car", "a52"),
	mame("MAME (Atari 7800)", Builder(mameAtari7800), "bin", "a78"),
	mame("MAME (Atari Jaguar)", Builder(mameAtariJaguar), "j64", "bin", "rom", "abs", "cof", "jag", "prg"),
	mame("MAME (Atari 8-bit)", Builder(mameAtari8Bit), "bin", "rom", "car", "atr", "xfd"),
	mame("MAME (C64)", Builder(mameC64), "80", "a0", "e0", "crt"),
	mame("MAME (CD-i)", mameStatic("cdimono1", "cdrom"), mameCDROMFormats...),
	mame("MAME (Channel F)", mameStatic("channelf", "cart"), "bin", "chf"),
	mame("MAME (Coleco Adam)", Builder(mameColecoAdam), slices.Concat([]string{"wav", "ddp"}, mameFloppyFormats)...),
	mame("MAME (ColecoVision)", Builder(mameColecoVision), "bin", "col", "rom"),
	mame("MAME (Dreamcast)", Builder(mameDreamcast), mameCDROMFormats...),
	mame("MAME (Entex Adventure Vision)", mameStatic("advision", "cart"), "bin"),
	mame("MAME (FM Towns)", mameFMTowns("fmtownsux", "10M"), slices.Concat([]string{"bin"}, mameFloppyFormats, mameCDROMFormats)...),
	mame("MAME (FM Towns Marty)", mameFMTowns("fmtmarty", "4M"), slices.Concat([]string{"bin"}, mameFloppyFormats, mameCDROMFormats)...),
	mame("MAME (Gamate)", mameStatic("gamate", "cart"), "bin"),
	mame("MAME (Game Boy)", Builder(mameGameBoy), "bin", "gb", "gbc"),
	mame("MAME (Game Gear)", Builder(mameGameGear), "bin", "gg"),
	mame("MAME (Game.com)", mameStatic("gamecom", "cart1"), "bin", "tgc"),
	mame("MAME (GBA)", mameStatic("gba", "cart"), "bin", "gba"),
	mame("MAME (IBM PCjr)", Builder(mameIBMPCjr), slices.Concat([]string{"bin", "jrc"}, mameFloppyFormats)...),
	mame("MAME (Intellivision)", Builder(mameIntellivision), "bin", "int", "rom", "itv"),
	mame("MAME (Lynx)", Builder(mameLynx), "lnx", "lyx", "o"),
	mame("MAME (Master System)", Builder(mameMasterSystem), "sms", "bin"),
	mame("MAME (Mega CD)", Builder(mameMegaCD), mameCDROMFormats...),
	mame("MAME (Mega Drive)", Builder(mameMegadrive), "bin", "gen", "md", "smd", "sgd"),
	mame("MAME (Mega Duck)", mameStatic("megaduck", "cart"), "bin"),
	mame("MAME (Microbee)", Builder(mameMicrobee), slices.Concat([]string{"mwb", "com", "bee"}, mameFloppyFormats)...),
	mame("MAME (MSX1)", mameMSX("msx1", mameMSX1Drivers), mameMSXFormats...),
	mame("MAME (MSX2)", mameMSX("msx2", mameMSX2Drivers), mameMSXFormats...),
	mame("MAME (MSX2+)", mameMSX("msx2+", mameMSX2PlusDrivers), mameMSXFormats...),
	mame("MAME (N64)", Builder(mameN64), "z64", "v64", "n64", "bin"),
	mame("MAME (Neo Geo CD)", mameStatic("neocdz", "cdrom"), mameCDROMFormats...),
	mame("MAME (Neo Geo Pocket)", mameStatic("ngpc", "cart"), "bin", "ngp", "npc", "ngc"),
	mame("MAME (NES)", Builder(mameNES), "nes", "unf", "unif", "fds"),
	mame("MAME (Odyssey 2)", Builder(mameOdyssey2), "bin"),
	mame("MAME (PC Engine)", Builder(mamePCEngine), "pce", "sgx", "bin"),
	mame("MAME (Pokemon Mini)", mameStatic("pokemini", "cart"), "bin", "min"),
	mame("MAME (PV-1000)", mameStatic("pv1000", "cart"), "bin"),
	mame("MAME (Saturn)", Builder(mameSaturn), mameCDROMFormats...),
	mame("MAME (Sega Pico)", Builder(mameSegaPico), "bin", "md"),
	mame("MAME (SG-1000)", Builder(mameSG1000), slices.Concat([]string{"bin", "sg", "sc", "sf7"}, mameFloppyFormats)...),
	mame("MAME (Sharp X68000)", Builder(mameSharpX68000),
		slices.Concat([]string{"xdf", "hdm", "2hd", "dim", "m3u"}, mameFloppyFormats)...),
	mame("MAME (SNES)", Builder(mameSNES), "sfc", "bs", "st"),
	mame("MAME (Sord M5)", Builder(mameSordM5), "bin"),
	mame("MAME (Super Cassette Vision)", Builder(mameSuperCassetteVision), "bin"),
	mame("MAME (VC 4000)", mameStatic("vc4000", "cart"), "bin", "rom"),
	mame("MAME (Vectrex)", mameStatic("vectrex", "cart"), "bin", "gam", "vec"),
	mame("MAME (VIC-20)", Builder(mameVIC20), "20", "40", "60", "70", "a0", "b0", "crt"),
	mame("MAME (Virtual Boy)", mameStatic("vboy", "cart"), "bin", "vb"),
	mame("MAME (WonderSwan)", mameStatic("wscolor", "cart"), "ws", "wsc", "bin", "pc2"),
	mame("MAME (ZX Spectrum)", Builder(mameZXSpectrum), slices.Concat([]string{
		"ach", "frz", "plusd", "prg", "sem", "sit", "sna", "snp", "snx", "sp", "z80", "zx",
	}, mameFloppyFormats)...),

	// VICE
	emulator("VICE (C64)", viceC64("x64sc"), viceCompression, viceFormats...),
	emulator("VICE (C64 Fast)", viceC64("x64"), viceCompression, viceFormats...),
	emulator("VICE (C128)", Builder(viceC128), viceCompression, viceFormats...),
	emulator("VICE (Commodore PET)", Builder(vicePET), viceCompression, slices.Concat(viceDiskFormats, []string{"prg", "p00", "tap"})...),
	emulator("VICE (Plus/4)", Builder(vicePlus4), viceCompression, viceFormats...),
	emulator("VICE (VIC-20)", Builder(viceVIC20), viceCompression, viceFormats...),
)

// Lookup returns the candidate registered under name.
func Lookup(name string) (*Candidate, error) {
	c, ok := Candidates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEmulator, name)
	}
	return c, nil
}

// Names returns every registered emulator name, sorted.
func Names() []string {
	names := make([]string, 0, len(Candidates))
	for name := range Candidates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
