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

package systems

import (
	"errors"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
)

var ErrUnknownSystem = errors.New("unknown system")

// Consoles
const (
	System3DS                 = "3DS"
	SystemAmigaCD32           = "AmigaCD32"
	SystemAdventureVision     = "AdventureVision"
	SystemArcadia             = "Arcadia"
	SystemAstrocade           = "Astrocade"
	SystemAtari2600           = "Atari2600"
	SystemAtari5200           = "Atari5200"
	SystemAtari7800           = "Atari7800"
	SystemAtariLynx           = "AtariLynx"
	SystemAtariJaguar         = "AtariJaguar"
	SystemCasioPV1000         = "CasioPV1000"
	SystemCDI                 = "CDI"
	SystemChannelF            = "ChannelF"
	SystemColecoVision        = "ColecoVision"
	SystemDreamcast           = "Dreamcast"
	SystemFDS                 = "FDS"
	SystemGamate              = "Gamate"
	SystemGameboy             = "Gameboy"
	SystemGameboyColor        = "GameboyColor"
	SystemGameCube            = "GameCube"
	SystemGameGear            = "GameGear"
	SystemGameCom             = "GameCom"
	SystemGBA                 = "GBA"
	SystemGenesis             = "Genesis"
	SystemIntellivision       = "Intellivision"
	SystemMasterSystem        = "MasterSystem"
	SystemMegaCD              = "MegaCD"
	SystemMegaDuck            = "MegaDuck"
	SystemNDS                 = "NDS"
	SystemNeoGeoCD            = "NeoGeoCD"
	SystemNeoGeoPocket        = "NeoGeoPocket"
	SystemNES                 = "NES"
	SystemNintendo64          = "Nintendo64"
	SystemOdyssey2            = "Odyssey2"
	SystemPCFX                = "PCFX"
	SystemPokemonMini         = "PokemonMini"
	SystemPSX                 = "PSX"
	SystemPS2                 = "PS2"
	SystemPSP                 = "PSP"
	SystemSega32X             = "Sega32X"
	SystemSG1000              = "SG1000"
	SystemSaturn              = "Saturn"
	SystemSegaPico            = "SegaPico"
	SystemSNES                = "SNES"
	SystemSuperCassetteVision = "SuperCassetteVision"
	SystemSwitch              = "Switch"
	SystemTurboGrafx16        = "TurboGrafx16"
	SystemVC4000              = "VC4000"
	SystemVectrex             = "Vectrex"
	SystemVirtualBoy          = "VirtualBoy"
	SystemWii                 = "Wii"
	SystemWonderSwan          = "WonderSwan"
)

// Computers
const (
	SystemAmstradPCW = "AmstradPCW"
	SystemAppleII    = "AppleII"
	SystemAtari800   = "Atari800"
	SystemC16        = "C16"
	SystemC64        = "C64"
	SystemC128       = "C128"
	SystemColecoAdam = "ColecoAdam"
	SystemFMTowns    = "FMTowns"
	SystemIBMPCjr    = "IBMPCjr"
	SystemMicrobee   = "Microbee"
	SystemMSX        = "MSX"
	SystemMSX2       = "MSX2"
	SystemPET2001    = "PET2001"
	SystemSAMCoupe   = "SAMCoupe"
	SystemSordM5     = "SordM5"
	SystemVIC20      = "VIC20"
	SystemX68000     = "X68000"
	SystemZXSpectrum = "ZXSpectrum"
)

// Other
const (
	SystemDoom = "Doom"
)

// PlatformDSi is set on NDS metadata for DSi-exclusive software. It is a
// refinement of SystemNDS and has no entry of its own.
const PlatformDSi = "DSi"

var (
	genericCart  = []string{"bin", "rom"}
	cdromFormats = []string{
		"iso", "chd", "cue", "toc", "nrg", "cdr", "gdi", "cdi", "ccd", "m3u",
	}
	mameFloppyFormats = []string{
		"d77", "d88", "1dd", "dfi", "hfe", "imd", "ipf", "mfi", "mfm", "td0",
		"cqm", "cqi", "dsk",
	}
	commodoreCartFormats = []string{
		"crt", "bin", "80", "a0", "e0", "20", "40", "60", "70", "b0",
	}
	commodoreDiskFormats = []string{
		"d64", "g64", "x64", "p64", "d71", "d81", "d80", "d82", "d1m", "d2m",
	}
)

func withGeneric(exts ...string) []string {
	return append(exts, genericCart...)
}

var Systems = map[string]System{
	// Consoles
	System3DS: {
		ID:        System3DS,
		Emulators: []string{"Citra"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge:  {"3ds"},
			metadata.MediaDigital:    {"cxi"},
			metadata.MediaExecutable: {"3dsx"},
		},
	},
	SystemAdventureVision: {
		ID:            SystemAdventureVision,
		Aliases:       []string{"AVision"},
		MAMEDriver:    "advision",
		SoftwareLists: []string{"advision"},
		Emulators:     []string{"MAME (Entex Adventure Vision)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: genericCart},
	},
	SystemArcadia: {
		ID:            SystemArcadia,
		MAMEDriver:    "arcadia",
		SoftwareLists: []string{"arcadia"},
		Emulators:     []string{"MAME (Arcadia 2001)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: genericCart},
	},
	SystemAstrocade: {
		ID:            SystemAstrocade,
		MAMEDriver:    "astrocde",
		SoftwareLists: []string{"astrocde"},
		Emulators:     []string{"MAME (Astrocade)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: genericCart},
	},
	SystemAmigaCD32: {
		ID:            SystemAmigaCD32,
		Aliases:       []string{"CD32"},
		MAMEDriver:    "cd32",
		SoftwareLists: []string{"cd32"},
		Emulators:     []string{"MAME (Amiga CD32)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaOpticalDisc: cdromFormats},
	},
	SystemAtari2600: {
		ID:            SystemAtari2600,
		MAMEDriver:    "a2600",
		SoftwareLists: []string{"a2600", "a2600_cass"},
		Emulators:     []string{"Stella", "MAME (Atari 2600)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: withGeneric("a26")},
	},
	SystemAtari5200: {
		ID:            SystemAtari5200,
		MAMEDriver:    "a5200",
		SoftwareLists: []string{"a5200"},
		Emulators:     []string{"MAME (Atari 5200)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge: withGeneric("a52", "car"),
			metadata.MediaTape:      {"wav"},
		},
	},
	SystemAtari7800: {
		ID:            SystemAtari7800,
		MAMEDriver:    "a7800",
		SoftwareLists: []string{"a7800"},
		Emulators:     []string{"A7800", "MAME (Atari 7800)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: withGeneric("a78")},
	},
	SystemAtariLynx: {
		ID:            SystemAtariLynx,
		Aliases:       []string{"Lynx"},
		MAMEDriver:    "lynx",
		SoftwareLists: []string{"lynx"},
		Emulators:     []string{"Mednafen (Lynx)", "MAME (Lynx)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge:  {"lnx", "lyx"},
			metadata.MediaExecutable: {"o"},
		},
	},
	SystemAtariJaguar: {
		ID:            SystemAtariJaguar,
		Aliases:       []string{"Jaguar"},
		MAMEDriver:    "jaguar",
		SoftwareLists: []string{"jaguar"},
		Emulators:     []string{"MAME (Atari Jaguar)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge:  withGeneric("j64"),
			metadata.MediaExecutable: {"abs", "cof", "jag", "prg"},
		},
	},
	SystemCasioPV1000: {
		ID:            SystemCasioPV1000,
		MAMEDriver:    "pv1000",
		SoftwareLists: []string{"pv1000"},
		Emulators:     []string{"MAME (PV-1000)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: genericCart},
	},
	SystemCDI: {
		ID:            SystemCDI,
		MAMEDriver:    "cdimono1",
		SoftwareLists: []string{"cdi"},
		Emulators:     []string{"MAME (CD-i)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaOpticalDisc: cdromFormats},
	},
	SystemChannelF: {
		ID:            SystemChannelF,
		MAMEDriver:    "channelf",
		SoftwareLists: []string{"channelf"},
		Emulators:     []string{"MAME (Channel F)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"chf", "bin"}},
	},
	SystemColecoVision: {
		ID:            SystemColecoVision,
		Aliases:       []string{"Coleco"},
		MAMEDriver:    "coleco",
		SoftwareLists: []string{"coleco"},
		Emulators:     []string{"MAME (ColecoVision)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: withGeneric("col")},
	},
	SystemDreamcast: {
		ID:            SystemDreamcast,
		MAMEDriver:    "dc",
		SoftwareLists: []string{"dc"},
		Emulators:     []string{"Reicast", "Flycast", "MAME (Dreamcast)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaOpticalDisc: cdromFormats},
	},
	SystemFDS: {
		ID:            SystemFDS,
		Aliases:       []string{"FamicomDiskSystem"},
		MAMEDriver:    "fds",
		SoftwareLists: []string{"famicom_flop"},
		Emulators:     []string{"Mednafen (NES)", "MAME (NES)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaFloppy: {"fds", "qd"}},
	},
	SystemGamate: {
		ID:            SystemGamate,
		MAMEDriver:    "gamate",
		SoftwareLists: []string{"gamate"},
		Emulators:     []string{"MAME (Gamate)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"bin"}},
	},
	SystemGameboy: {
		ID:            SystemGameboy,
		Aliases:       []string{"GB"},
		MAMEDriver:    "gbpocket",
		SoftwareLists: []string{"gameboy", "gbcolor"},
		Emulators: []string{
			"Gambatte", "mGBA", "Mednafen (Game Boy)", "MAME (Game Boy)",
			"Medusa", "GBE+", "bsnes",
		},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge: {"gb", "gbc", "gbx", "sgb"},
		},
		Options: map[string]Option{
			"super_game_boy_bios_path": {
				Kind:        OptionFilePath,
				Description: "Path to Super Game Boy BIOS to use",
			},
			"set_gbc_as_different_platform": {
				Kind:        OptionBool,
				Default:     false,
				Description: "Set the platform of GBC games to GameboyColor",
			},
		},
	},
	SystemGameboyColor: {
		ID:            SystemGameboyColor,
		Aliases:       []string{"GBC"},
		MAMEDriver:    "gbcolor",
		SoftwareLists: []string{"gbcolor"},
		Emulators: []string{
			"Gambatte", "mGBA", "Mednafen (Game Boy)", "MAME (Game Boy)",
			"Medusa", "GBE+",
		},
		FileTypes: map[metadata.MediaType][]string{metadata.MediaCartridge: {"gbc", "gb"}},
	},
	SystemGameCube: {
		ID:         SystemGameCube,
		MAMEDriver: "gcjp",
		Emulators:  []string{"Dolphin"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaOpticalDisc: {"iso", "gcm", "tgc", "gcz", "ciso", "rvz"},
			metadata.MediaExecutable:  {"dol", "elf"},
		},
	},
	SystemGameGear: {
		ID:            SystemGameGear,
		Aliases:       []string{"GG"},
		MAMEDriver:    "gamegear",
		SoftwareLists: []string{"gamegear"},
		Emulators:     []string{"Kega Fusion", "Mednafen (Game Gear)", "MAME (Game Gear)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"sms", "gg", "bin"}},
	},
	SystemGameCom: {
		ID:            SystemGameCom,
		MAMEDriver:    "gamecom",
		SoftwareLists: []string{"gamecom"},
		Emulators:     []string{"MAME (Game.com)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"tgc", "bin"}},
	},
	SystemGBA: {
		ID:            SystemGBA,
		Aliases:       []string{"GameboyAdvance"},
		MAMEDriver:    "gba",
		SoftwareLists: []string{"gba"},
		Emulators:     []string{"mGBA", "Mednafen (GBA)", "MAME (GBA)", "Medusa", "GBE+"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge:  {"gba", "bin", "srl"},
			metadata.MediaExecutable: {"elf", "mb"},
		},
	},
	SystemGenesis: {
		ID:            SystemGenesis,
		Aliases:       []string{"MegaDrive"},
		MAMEDriver:    "megadriv",
		SoftwareLists: []string{"megadriv"},
		Emulators:     []string{"Kega Fusion", "Mednafen (Mega Drive)", "MAME (Mega Drive)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge: {"bin", "gen", "md", "smd", "sgd"},
		},
	},
	SystemIntellivision: {
		ID:            SystemIntellivision,
		MAMEDriver:    "intv",
		SoftwareLists: []string{"intv", "intvecs"},
		Emulators:     []string{"MAME (Intellivision)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge: {"bin", "int", "rom", "itv"},
		},
	},
	SystemMasterSystem: {
		ID:            SystemMasterSystem,
		Aliases:       []string{"SMS"},
		MAMEDriver:    "sms",
		SoftwareLists: []string{"sms"},
		Emulators:     []string{"Kega Fusion", "Mednafen (Master System)", "MAME (Master System)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"sms", "gg", "bin"}},
	},
	SystemMegaCD: {
		ID:            SystemMegaCD,
		Aliases:       []string{"SegaCD"},
		MAMEDriver:    "megacdj",
		SoftwareLists: []string{"megacd", "megacdj", "segacd"},
		Emulators:     []string{"Kega Fusion", "MAME (Mega CD)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaOpticalDisc: cdromFormats},
	},
	SystemMegaDuck: {
		ID:            SystemMegaDuck,
		MAMEDriver:    "megaduck",
		SoftwareLists: []string{"megaduck"},
		Emulators:     []string{"MAME (Mega Duck)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: genericCart},
	},
	SystemNDS: {
		ID:         SystemNDS,
		Aliases:    []string{"DS"},
		MAMEDriver: "nds",
		Emulators:  []string{"Medusa", "melonDS"},
		FileTypes:  map[metadata.MediaType][]string{metadata.MediaCartridge: {"nds", "dsi", "ids"}},
	},
	SystemNeoGeoCD: {
		ID:            SystemNeoGeoCD,
		MAMEDriver:    "neocdz",
		SoftwareLists: []string{"neocd"},
		Emulators:     []string{"MAME (Neo Geo CD)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaOpticalDisc: cdromFormats},
	},
	SystemNeoGeoPocket: {
		ID:            SystemNeoGeoPocket,
		Aliases:       []string{"NGP"},
		MAMEDriver:    "ngpc",
		SoftwareLists: []string{"ngp", "ngpc"},
		Emulators:     []string{"Mednafen (Neo Geo Pocket)", "MAME (Neo Geo Pocket)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge: {"ngp", "npc", "ngc", "bin"},
		},
	},
	SystemNES: {
		ID:         SystemNES,
		Aliases:    []string{"Famicom"},
		MAMEDriver: "nes",
		SoftwareLists: []string{
			"nes", "nes_ade", "nes_datach", "nes_kstudio", "nes_ntbrom",
			"famicom_cass", "famicom_flop",
		},
		Emulators: []string{"Mednafen (NES)", "MAME (NES)", "cxNES"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge: {"nes", "unf", "unif"},
			metadata.MediaFloppy:    {"fds", "qd"},
		},
		Options: map[string]Option{
			"set_fds_as_different_platform": {
				Kind:        OptionBool,
				Default:     false,
				Description: "Set the platform of FDS games to FDS",
			},
		},
	},
	SystemNintendo64: {
		ID:            SystemNintendo64,
		Aliases:       []string{"N64"},
		MAMEDriver:    "n64",
		SoftwareLists: []string{"n64"},
		Emulators:     []string{"Mupen64Plus", "MAME (N64)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge: {"z64", "v64", "n64", "bin"},
		},
		Options: map[string]Option{
			"prefer_controller_pak_over_rumble": {
				Kind:        OptionBool,
				Default:     true,
				Description: "If a game can use both the Controller Pak and the Rumble Pak, use the Controller Pak",
			},
		},
	},
	SystemOdyssey2: {
		ID:            SystemOdyssey2,
		Aliases:       []string{"Videopac"},
		MAMEDriver:    "odyssey2",
		SoftwareLists: []string{"odyssey2"},
		Emulators:     []string{"MAME (Odyssey 2)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: genericCart},
	},
	SystemPCFX: {
		ID:            SystemPCFX,
		MAMEDriver:    "pcfx",
		SoftwareLists: []string{"pcfx"},
		Emulators:     []string{"Mednafen (PC-FX)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaOpticalDisc: cdromFormats},
	},
	SystemPokemonMini: {
		ID:            SystemPokemonMini,
		MAMEDriver:    "pokemini",
		SoftwareLists: []string{"pokemini"},
		Emulators:     []string{"PokeMini", "PokeMini (wrapper)", "MAME (Pokemon Mini)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"min", "bin"}},
	},
	SystemPSX: {
		ID:            SystemPSX,
		Aliases:       []string{"PlayStation"},
		MAMEDriver:    "psj",
		SoftwareLists: []string{"psx"},
		Emulators:     []string{"Mednafen (PS1)", "DuckStation", "PCSX2"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaOpticalDisc: cdromFormats,
			metadata.MediaExecutable:  {"exe", "psx"},
		},
	},
	SystemPS2: {
		ID:        SystemPS2,
		Emulators: []string{"PCSX2"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaOpticalDisc: append([]string{"cso", "bin"}, cdromFormats...),
			metadata.MediaExecutable:  {"elf"},
		},
	},
	SystemPSP: {
		ID:        SystemPSP,
		Emulators: []string{"PPSSPP"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaOpticalDisc: append([]string{"cso"}, cdromFormats...),
			metadata.MediaExecutable:  {"pbp"},
		},
	},
	SystemSega32X: {
		ID:            SystemSega32X,
		Aliases:       []string{"32X"},
		MAMEDriver:    "32x",
		SoftwareLists: []string{"32x"},
		Emulators:     []string{"Kega Fusion", "MAME (32X)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"32x", "bin"}},
	},
	SystemSG1000: {
		ID:            SystemSG1000,
		MAMEDriver:    "sg1000",
		SoftwareLists: []string{"sg1000", "sc3000_cart", "sc3000_cass", "sf7000"},
		Emulators:     []string{"Kega Fusion", "MAME (SG-1000)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge: {"sg", "bin", "sc"},
			metadata.MediaTape:      {"wav", "bit"},
			metadata.MediaFloppy:    append([]string{"sf", "sf7"}, mameFloppyFormats...),
		},
	},
	SystemSaturn: {
		ID:            SystemSaturn,
		MAMEDriver:    "saturn",
		SoftwareLists: []string{"saturn", "sat_cart", "sat_vccart"},
		Emulators:     []string{"Mednafen (Saturn)", "MAME (Saturn)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaOpticalDisc: cdromFormats},
	},
	SystemSegaPico: {
		ID:            SystemSegaPico,
		Aliases:       []string{"Pico"},
		MAMEDriver:    "pico",
		SoftwareLists: []string{"pico"},
		Emulators:     []string{"MAME (Sega Pico)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"bin", "md"}},
	},
	SystemSNES: {
		ID:            SystemSNES,
		Aliases:       []string{"SuperFamicom"},
		MAMEDriver:    "snes",
		SoftwareLists: []string{"snes", "snes_bspack", "snes_strom"},
		Emulators: []string{
			"Snes9x", "Mednafen (SNES)", "Mednafen (SNES-Faust)", "MAME (SNES)", "bsnes",
		},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge: {"sfc", "swc", "smc", "bs", "st", "bin"},
		},
		Options: map[string]Option{
			"sufami_turbo_bios_path": {
				Kind:        OptionFilePath,
				Description: "Path to Sufami Turbo BIOS, required to run Sufami Turbo carts",
			},
			"bsx_bios_path": {
				Kind:        OptionFilePath,
				Description: "Path to BS-X BIOS, required to run Satellaview games",
			},
		},
	},
	SystemSuperCassetteVision: {
		ID:            SystemSuperCassetteVision,
		Aliases:       []string{"SCV"},
		MAMEDriver:    "scv",
		SoftwareLists: []string{"scv"},
		Emulators:     []string{"MAME (Super Cassette Vision)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"bin"}},
	},
	SystemSwitch: {
		ID:        SystemSwitch,
		Emulators: []string{"Yuzu"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge:  {"xci"},
			metadata.MediaDigital:    {"nsp", "nca"},
			metadata.MediaExecutable: {"nro", "nso", "elf"},
		},
	},
	SystemTurboGrafx16: {
		ID:            SystemTurboGrafx16,
		Aliases:       []string{"PCEngine", "TG16"},
		MAMEDriver:    "pce",
		SoftwareLists: []string{"pce", "sgx", "tg16"},
		Emulators: []string{
			"Mednafen (PC Engine)", "Mednafen (PC Engine Fast)", "MAME (PC Engine)",
		},
		FileTypes: map[metadata.MediaType][]string{metadata.MediaCartridge: {"pce", "sgx", "bin"}},
	},
	SystemVC4000: {
		ID:            SystemVC4000,
		MAMEDriver:    "vc4000",
		SoftwareLists: []string{"vc4000"},
		Emulators:     []string{"MAME (VC 4000)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: genericCart},
	},
	SystemVectrex: {
		ID:            SystemVectrex,
		MAMEDriver:    "vectrex",
		SoftwareLists: []string{"vectrex"},
		Emulators:     []string{"MAME (Vectrex)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"vec", "gam", "bin"}},
	},
	SystemVirtualBoy: {
		ID:            SystemVirtualBoy,
		MAMEDriver:    "vboy",
		SoftwareLists: []string{"vboy"},
		Emulators:     []string{"Mednafen (Virtual Boy)", "MAME (Virtual Boy)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"vb", "vboy", "bin"}},
	},
	SystemWii: {
		ID:        SystemWii,
		Emulators: []string{"Dolphin"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaOpticalDisc: {"iso", "gcm", "tgc", "gcz", "wbfs", "ciso", "wia", "rvz"},
			metadata.MediaExecutable:  {"dol", "elf"},
			metadata.MediaDigital:     {"wad"},
		},
	},
	SystemWonderSwan: {
		ID:            SystemWonderSwan,
		MAMEDriver:    "wscolor",
		SoftwareLists: []string{"wswan", "wscolor"},
		Emulators:     []string{"Mednafen (WonderSwan)", "MAME (WonderSwan)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"ws", "wsc", "bin"}},
	},

	// Computers
	SystemAtari800: {
		ID:            SystemAtari800,
		Aliases:       []string{"Atari8bit"},
		MAMEDriver:    "a800",
		SoftwareLists: []string{"a800", "a800_flop", "xegs"},
		Emulators:     []string{"MAME (Atari 8-bit)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaFloppy:     {"atr", "dsk", "xfd", "dcm"},
			metadata.MediaExecutable: {"xex", "bas", "com"},
			metadata.MediaCartridge:  {"bin", "rom", "car"},
			metadata.MediaTape:       {"wav"},
		},
		Options: map[string]Option{
			"basic_path": {
				Kind:        OptionFilePath,
				Description: "Path to BASIC ROM for floppy software which requires it",
			},
		},
	},
	SystemAmstradPCW: {
		ID:            SystemAmstradPCW,
		MAMEDriver:    "pcw10",
		SoftwareLists: []string{"pcw"},
		Emulators:     []string{"MAME (Amstrad PCW)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaFloppy: mameFloppyFormats},
	},
	SystemAppleII: {
		ID:            SystemAppleII,
		MAMEDriver:    "apple2",
		SoftwareLists: []string{"apple2", "apple2_flop_orig", "apple2_flop_clcracked", "apple2_flop_misc"},
		Emulators:     []string{"MAME (Apple II)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaFloppy: {"do", "dsk", "po", "nib", "woz"},
		},
	},
	SystemC16: {
		ID:            SystemC16,
		Aliases:       []string{"Plus4"},
		MAMEDriver:    "c16",
		SoftwareLists: []string{"plus4_cart", "plus4_cass", "plus4_flop"},
		Emulators:     []string{"VICE (Plus/4)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge:  commodoreCartFormats,
			metadata.MediaTape:       {"tap", "t64"},
			metadata.MediaExecutable: {"prg", "p00"},
			metadata.MediaFloppy:     commodoreDiskFormats,
		},
	},
	SystemC64: {
		ID:         SystemC64,
		MAMEDriver: "c64",
		SoftwareLists: []string{
			"c64_cart", "c64_cass", "c64_flop", "c64_flop_clcracked",
			"c64_flop_orig", "c64_flop_misc",
		},
		Emulators: []string{"MAME (C64)", "VICE (C64)", "VICE (C64 Fast)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge:  commodoreCartFormats,
			metadata.MediaTape:       {"tap", "t64"},
			metadata.MediaExecutable: {"prg", "p00"},
			metadata.MediaFloppy:     commodoreDiskFormats,
		},
	},
	SystemC128: {
		ID:            SystemC128,
		MAMEDriver:    "c128",
		SoftwareLists: []string{"c128_cart", "c128_flop", "c128_rom"},
		Emulators:     []string{"VICE (C128)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge:  commodoreCartFormats,
			metadata.MediaTape:       {"tap", "t64"},
			metadata.MediaExecutable: {"prg", "p00"},
			metadata.MediaFloppy:     commodoreDiskFormats,
		},
	},
	SystemColecoAdam: {
		ID:            SystemColecoAdam,
		MAMEDriver:    "adam",
		SoftwareLists: []string{"adam_cart", "adam_cass", "adam_flop"},
		Emulators:     []string{"MAME (Coleco Adam)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaTape:      {"wav", "ddp"},
			metadata.MediaFloppy:    mameFloppyFormats,
			metadata.MediaCartridge: withGeneric("col"),
		},
	},
	SystemFMTowns: {
		ID:            SystemFMTowns,
		MAMEDriver:    "fmtmarty",
		SoftwareLists: []string{"fmtowns_cd", "fmtowns_flop"},
		Emulators:     []string{"MAME (FM Towns Marty)", "MAME (FM Towns)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaFloppy:      append([]string{"bin"}, mameFloppyFormats...),
			metadata.MediaOpticalDisc: cdromFormats,
		},
	},
	SystemIBMPCjr: {
		ID:            SystemIBMPCjr,
		MAMEDriver:    "ibmpcjr",
		SoftwareLists: []string{"ibmpcjr_cart"},
		Emulators:     []string{"MAME (IBM PCjr)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge: {"bin", "jrc"},
			metadata.MediaFloppy:    mameFloppyFormats,
		},
	},
	SystemMicrobee: {
		ID:            SystemMicrobee,
		MAMEDriver:    "mbeepc",
		SoftwareLists: []string{"mbee_cass", "mbee_flop", "mbee_quik"},
		Emulators:     []string{"MAME (Microbee)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaExecutable: {"mwb", "com", "bee"},
			metadata.MediaFloppy:     mameFloppyFormats,
		},
	},
	SystemMSX: {
		ID:            SystemMSX,
		Aliases:       []string{"MSX1"},
		MAMEDriver:    "svi738",
		SoftwareLists: []string{"msx1_cart", "msx1_cass", "msx1_flop"},
		Emulators:     []string{"MAME (MSX1)", "MAME (MSX2)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaFloppy:    append([]string{"dmk"}, mameFloppyFormats...),
			metadata.MediaTape:      {"wav", "tap", "cas"},
			metadata.MediaCartridge: genericCart,
		},
	},
	SystemMSX2: {
		ID:            SystemMSX2,
		MAMEDriver:    "fsa1wsx",
		SoftwareLists: []string{"msx2_cart", "msx2_cass", "msx2_flop", "msx2p_flop"},
		Emulators:     []string{"MAME (MSX2)", "MAME (MSX2+)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaFloppy:    append([]string{"dmk"}, mameFloppyFormats...),
			metadata.MediaTape:      {"wav", "tap", "cas"},
			metadata.MediaCartridge: genericCart,
		},
	},
	SystemPET2001: {
		ID:            SystemPET2001,
		Aliases:       []string{"PET"},
		MAMEDriver:    "pet2001",
		SoftwareLists: []string{"pet_cass", "pet_flop", "pet_hdd", "pet_quik", "pet_rom"},
		Emulators:     []string{"VICE (Commodore PET)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaFloppy:     commodoreDiskFormats,
			metadata.MediaCartridge:  {"bin", "rom"},
			metadata.MediaExecutable: {"prg", "p00"},
			metadata.MediaTape:       {"wav", "tap"},
		},
	},
	SystemSAMCoupe: {
		ID:            SystemSAMCoupe,
		MAMEDriver:    "samcoupe",
		SoftwareLists: []string{"samcoupe_cass", "samcoupe_flop"},
		Emulators:     []string{"SimCoupe"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaFloppy:     {"mgt", "sad", "dsk", "sdf"},
			metadata.MediaExecutable: {"sbt"},
		},
	},
	SystemSordM5: {
		ID:            SystemSordM5,
		MAMEDriver:    "m5",
		SoftwareLists: []string{"m5_cart", "m5_cass", "m5_flop"},
		Emulators:     []string{"MAME (Sord M5)"},
		FileTypes:     map[metadata.MediaType][]string{metadata.MediaCartridge: {"bin"}},
	},
	SystemVIC20: {
		ID:            SystemVIC20,
		MAMEDriver:    "vic20",
		SoftwareLists: []string{"vic1001_cart", "vic1001_cass", "vic1001_flop"},
		Emulators:     []string{"MAME (VIC-20)", "VICE (VIC-20)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaCartridge:  commodoreCartFormats,
			metadata.MediaTape:       {"wav", "tap", "t64"},
			metadata.MediaExecutable: {"prg", "p00"},
			metadata.MediaFloppy:     commodoreDiskFormats,
		},
	},
	SystemX68000: {
		ID:            SystemX68000,
		Aliases:       []string{"SharpX68000"},
		MAMEDriver:    "x68000",
		SoftwareLists: []string{"x68k_flop"},
		Emulators:     []string{"MAME (Sharp X68000)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaFloppy: append([]string{"xdf", "hdm", "2hd", "dim", "m3u"}, mameFloppyFormats...),
		},
	},
	SystemZXSpectrum: {
		ID:            SystemZXSpectrum,
		Aliases:       []string{"Spectrum"},
		MAMEDriver:    "spectrum",
		SoftwareLists: []string{"spectrum_cart", "spectrum_cass", "specpls3_flop"},
		Emulators:     []string{"MAME (ZX Spectrum)"},
		FileTypes: map[metadata.MediaType][]string{
			metadata.MediaSnapshot:   {"z80", "sna"},
			metadata.MediaTape:       {"wav", "cas", "tap", "tzx"},
			metadata.MediaExecutable: {"raw", "scr"},
			metadata.MediaFloppy:     {"dsk", "ipf", "trd", "td0", "scl", "fdi", "opd", "opu"},
			metadata.MediaCartridge:  {"bin", "rom"},
		},
	},

	// Other
	SystemDoom: {
		ID:        SystemDoom,
		Emulators: []string{"PrBoom+"},
		FileTypes: map[metadata.MediaType][]string{metadata.MediaDigital: {"wad"}},
		Options: map[string]Option{
			"save_dir": {
				Kind:        OptionFolderPath,
				Description: "Folder to put save files in",
			},
		},
		Virtual: true,
	},
}
