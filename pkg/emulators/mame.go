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
	"strings"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/atari2600"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/gameboy"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/nes"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/zxspectrum"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
)

const mameExe = "mame"

var (
	mameCompression    = []string{"7z", "zip"}
	mameCDROMFormats   = []string{"iso", "chd", "cue", "toc", "nrg", "cdr", "gdi"}
	mameFloppyFormats  = []string{"d77", "d88", "1dd", "dfi", "hfe", "imd", "ipf", "mfi", "mfm", "td0", "cqm", "cqi", "dsk"}
	mameNESUnsupported = newIntSet([]int{
		29, 30, 55, 59, 60, 81, 84, 98, 99, 100, 101, 102, 109, 110, 111, 122,
		124, 125, 127, 128, 129, 130, 131, 135, 151, 161, 169, 170, 174, 181,
		219, 220, 236, 237, 239, 247, 248, 251, 253,
	})
	mameGBMappers = gbMappers{
		supported: []string{"ROM only", "MBC1", "MBC2", "MBC3", "MBC5", "MBC6", "MBC7", "Pocket Camera", "Bandai TAMA5"},
		detected:  []string{"MMM01", "MBC1 Multicart", "Wisdom Tree", "Li Cheng", "Sintax"},
	}
	// Listed as unsupported in cbm_crt.cpp, plus 18 (Sega) and 32
	// (EasyFlash) which do not boot.
	mameC64Unsupported = newIntSet([]int{
		1, 2, 6, 9, 20, 29, 30, 33, 34, 35, 36, 37, 38, 40, 42, 45, 46, 47, 50,
		52, 54, 18, 32,
	})
	// Mappers MAME does not detect when loading a file outside of the
	// software list.
	mameMegadriveUnsupported = []string{
		"rom_topf", "rom_yasech", "rom_kof99_pokemon", "rom_smw64",
		"rom_cjmjclub", "rom_soulb", "rom_chinf3",
	}
	// vcs_slot.cpp only recognises these sizes.
	mameA2600Sizes = []int64{
		0x800, 0x1000, 0x2000, 0x28ff, 0x2900, 0x3000, 0x4000, 0x8000, 0x10000, 0x80000,
	}
)

// slotOption is a MAME slot device setting, rendered as -name value.
// Order matters to MAME for nested slots, so these are kept in a slice.
type slotOption struct {
	name  string
	value string
}

func mameArgs(driver, slot string, opts []slotOption, keyboard bool) []string {
	args := []string{"-skip_gameinfo"}
	if keyboard {
		args = append(args, "-ui_active")
	}
	args = append(args, driver)
	for _, opt := range opts {
		args = append(args, "-"+opt.name, opt.value)
	}
	if slot != "" {
		args = append(args, "-"+slot, launch.PathPlaceholder)
	}
	return args
}

func mameDriver(req *Request, driver, slot string, opts []slotOption, keyboard bool) Result {
	return Accept(launch.Single(req.exe(mameExe), mameArgs(driver, slot, opts, keyboard)...))
}

func mameStatic(driver, slot string, opts ...slotOption) StaticArgs {
	return StaticArgs{Exe: mameExe, Args: mameArgs(driver, slot, opts, false)}
}

func mameStaticKeyboard(driver, slot string, opts ...slotOption) StaticArgs {
	return StaticArgs{Exe: mameExe, Args: mameArgs(driver, slot, opts, true)}
}

func mame32X(_ context.Context, req *Request) Result {
	driver := regionVariant{
		usa: "32x", japan: "32xj", europe: "32xe", unknown: "32x",
		fallback: "32x", pal: "32xe",
	}.pick(req.Metadata)
	return mameDriver(req, driver, "cart", nil, false)
}

func a2600Port(controller string) string {
	switch atari2600.Controller(controller) {
	case atari2600.ControllerJoystick:
		return "joy"
	case atari2600.ControllerPaddle:
		return "pad"
	case atari2600.ControllerKeyboardController:
		return "keypad"
	case atari2600.ControllerBoostergrip:
		return "joybstr"
	case atari2600.ControllerDrivingController:
		return "wheel"
	default:
		return ""
	}
}

func mameAtari2600(_ context.Context, req *Request) Result {
	size := req.ROM.Size()
	if !slices.Contains(mameA2600Sizes, size) {
		return Reject(RejectUnsupportedHardware, "ROM size not supported: %d", size)
	}
	attrs := req.attrs()
	if attrs.Bool(metadata.KeyUsesSupercharger) {
		// Supercharger tapes need the play button pressed.
		return Reject(RejectUnsupportedHardware, "requires Supercharger")
	}

	var opts []slotOption
	if port := a2600Port(attrs.Text(metadata.KeyLeftPeripheral)); port != "" {
		opts = append(opts, slotOption{"joyport1", port})
	}
	if port := a2600Port(attrs.Text(metadata.KeyRightPeripheral)); port != "" {
		opts = append(opts, slotOption{"joyport2", port})
	}

	driver := "a2600"
	if isPAL(req.Metadata) {
		driver = "a2600p"
	}
	return mameDriver(req, driver, "cart", opts, false)
}

func mameAtari7800(ctx context.Context, req *Request) Result {
	if !req.attrs().Bool(metadata.KeyHeadered) {
		return Reject(RejectHeaderMalformed, "no header, only runs from the software list")
	}
	driver := "a7800"
	if isPAL(req.Metadata) {
		driver = "a7800p"
	}
	if req.attrs().Bool(metadata.KeyUsesHiscoreCart) && req.hasSoftware(ctx, "a7800", "hiscore") {
		return mameDriver(req, driver, "cart2", []slotOption{{"cart1", "hiscore"}}, false)
	}
	return mameDriver(req, driver, "cart", nil, false)
}

func mameAtari8Bit(_ context.Context, req *Request) Result {
	md := req.Metadata
	attrs := md.Attributes
	var opts []slotOption
	var slot string

	if md.MediaType == metadata.MediaCartridge {
		if attrs.Bool(metadata.KeyHeadered) {
			cartType, _ := attrs.Int(metadata.KeyCartType)
			switch {
			case slices.Contains([]int{13, 14, 23, 24, 25}, cartType) || (cartType >= 33 && cartType <= 38):
				return Reject(RejectUnsupportedMapper, "XEGS cart: %d", cartType)
			case slices.Contains([]int{5, 17, 22, 41, 42, 43, 45, 46, 47, 48, 49, 53, 57, 58, 59, 60, 61}, cartType) ||
				(cartType >= 26 && cartType <= 32) || (cartType >= 54 && cartType <= 56):
				return Reject(RejectUnsupportedMapper, "unsupported cart type: %d", cartType)
			case slices.Contains([]int{4, 6, 7, 16, 19, 20}, cartType):
				return Reject(RejectUnsupportedHardware, "Atari 5200 cart: %d", cartType)
			}
		} else if size := req.ROM.Size(); size > 16*1024+16 {
			// Headerless 8K and 16K files are types 1 and 2.
			return Reject(RejectUnsupportedHardware,
				"no header and size %d cannot be recognised as a valid cart", size)
		}
		slot = "cart1"
		if s := attrs.Text(metadata.KeySlot); s != "" && s != "Left" {
			slot = "cart2"
		}
	} else {
		slot = "flop1"
		if attrs.Bool(metadata.KeyRequiresBASIC) {
			if req.System.BASICPath == "" {
				return Reject(RejectMissingDependency, "this software needs the BASIC ROM")
			}
			opts = append(opts, slotOption{"cart1", req.System.BASICPath})
		}
	}

	var driver string
	switch attrs.Text(metadata.KeyMachine) {
	case "XL":
		driver = "a800xl"
		if isPAL(md) {
			driver = "a800xlp"
		}
	case "XE":
		driver = "a65xe"
	default:
		driver = "a800"
		if isPAL(md) {
			driver = "a800pal"
		}
	}
	return mameDriver(req, driver, slot, opts, true)
}

func mameC64(_ context.Context, req *Request) Result {
	attrs := req.attrs()
	cartType, known := attrs.Int(metadata.KeyMapperNumber)
	if known && mameC64Unsupported.has(cartType) {
		return Reject(RejectUnsupportedMapper, "%s cart not supported", attrs.Text(metadata.KeyMapper))
	}

	driver := "c64"
	if known && cartType == 15 {
		// System 3 carts only work on the C64GS.
		driver = "c64gs"
	}
	if isPAL(req.Metadata) {
		driver = "c64p"
	}
	opts := []slotOption{{"joy1", "joybstr"}, {"joy2", "joybstr"}, {"iec8", ""}}
	return mameDriver(req, driver, "cart", opts, true)
}

func mameColecoVision(_ context.Context, req *Request) Result {
	driver := "coleco"
	if isPAL(req.Metadata) {
		driver = "colecop"
	}
	return mameDriver(req, driver, "cart", nil, false)
}

func mameDreamcast(_ context.Context, req *Request) Result {
	if req.attrs().Bool(metadata.KeyUsesWindowsCE) {
		return Reject(RejectUnsupportedHardware, "Windows CE based games not supported")
	}
	driver := saturnRegion(req.Metadata, "dc", "dcjp", "dceu")
	return mameDriver(req, driver, "cdrom", nil, false)
}

func mameGameBoy(_ context.Context, req *Request) Result {
	attrs := req.attrs()
	if rej := mameGBMappers.verify(attrs); rej != nil {
		return rejected(rej)
	}

	driver := "gbpocket"
	if req.Emulator.UseGBCForDMG {
		driver = "gbcolor"
	}
	const superGB = "supergb2"

	colour := attrs.Text(metadata.KeyIsColour)
	isColour := colour == string(gameboy.ColourYes) || colour == string(gameboy.ColourRequired)
	isSGB := attrs.Bool(metadata.KeySGBEnhanced)

	switch {
	case isColour && isSGB:
		driver = "gbcolor"
		if req.Emulator.PreferSGBOverGBC {
			driver = superGB
		}
	case isColour:
		driver = "gbcolor"
	case isSGB:
		driver = superGB
	}
	return mameDriver(req, driver, "cart", nil, false)
}

func mameGameGear(_ context.Context, req *Request) Result {
	driver := "gamegear"
	if slices.Contains(req.attrs().Strings(metadata.KeyRegionCode), "Japanese") {
		driver = "gamegeaj"
	}
	return mameDriver(req, driver, "cart", nil, false)
}

func mameIntellivision(_ context.Context, req *Request) Result {
	attrs := req.attrs()
	driver := "intv"
	keyboard := false
	switch {
	case attrs.Bool(metadata.KeyUsesECS):
		// ECS brings the keyboard and the Intellivoice.
		driver = "intvecs"
		keyboard = true
	case attrs.Bool(metadata.KeyUsesIntellivoice):
		driver = "intvoice"
	}
	return mameDriver(req, driver, "cart", nil, keyboard)
}

func mameLynx(_ context.Context, req *Request) Result {
	md := req.Metadata
	if md.MediaType == metadata.MediaCartridge && !md.Attributes.Bool(metadata.KeyHeadered) {
		return Reject(RejectHeaderMalformed, "needs to have .lnx header")
	}
	slot := "cart"
	if md.MediaType == metadata.MediaExecutable {
		slot = "quik"
	}
	return mameDriver(req, "lynx", slot, nil, false)
}

func smsController(peripheral string) string {
	switch peripheral {
	case "Lightgun":
		return "lphaser"
	case "Paddle":
		return "paddle"
	case "Tablet":
		return "graphic"
	case "SportsPad":
		return "sportspad"
	case "StandardController":
		return "joypad"
	default:
		return ""
	}
}

func mameMasterSystem(_ context.Context, req *Request) Result {
	md := req.Metadata
	attrs := md.Attributes
	// PAL unless the game says otherwise, some homebrew demands it.
	ntsc := md.TVSystem == metadata.TVNTSC || md.TVSystem == metadata.TVAgnostic
	sms2 := attrs.Bool(metadata.KeySMS2Only)

	var driver string
	switch {
	case attrs.Bool(metadata.KeyJapaneseOnly):
		driver = "smsj"
	case !ntsc && sms2:
		driver = "smspal"
	case !ntsc:
		driver = "sms1pal"
	case sms2:
		driver = "sms"
	default:
		// smsj has the FM unit.
		driver = "smsj"
	}

	var opts []slotOption
	if controller := smsController(attrs.Text(metadata.KeyPeripheral)); controller != "" {
		opts = []slotOption{
			{"ctrl1", "rapidfire"},
			{"ctrl2", "rapidfire"},
			{"ctrl1:rapidfire:ctrl", controller},
			{"ctrl2:rapidfire:ctrl", controller},
		}
	}
	return mameDriver(req, driver, "cart", opts, false)
}

func mameMegaCD(_ context.Context, req *Request) Result {
	driver := regionVariant{
		usa: "segacd", japan: "megacdj", europe: "megacd", unknown: "segacd",
		fallback: "segacd", pal: "megacd",
	}.pick(req.Metadata)
	return mameDriver(req, driver, "cdrom", nil, false)
}

func mameMegadrive(_ context.Context, req *Request) Result {
	if mapper := req.attrs().Text(metadata.KeyMapper); slices.Contains(mameMegadriveUnsupported, mapper) {
		return Reject(RejectUnsupportedMapper, "%s not supported", mapper)
	}
	driver := regionVariant{
		usa: "genesis", japan: "megadrij", europe: "megadriv", unknown: "genesis",
		fallback: "genesis", pal: "megadriv",
	}.pick(req.Metadata)
	return mameDriver(req, driver, "cart", nil, false)
}

func mameN64(_ context.Context, req *Request) Result {
	if isPAL(req.Metadata) {
		return Reject(RejectUnsupportedHardware, "NTSC only")
	}
	return mameDriver(req, "n64", "cart", nil, false)
}

// nesMapper returns the mapper number to check against a mapper table.
// check is false for files the tables do not cover: disk images and UNIF
// boards, which are named rather than numbered.
func nesMapper(req *Request) (mapper int, check bool, rej *Rejection) {
	md := req.Metadata
	if md.MediaType == metadata.MediaFloppy || req.ROM.Extension() == "fds" {
		return 0, false, nil
	}
	switch md.Attributes.Text(metadata.KeyHeaderFormat) {
	case nes.FormatINES, nes.FormatNES20:
		if mapper, ok := md.Attributes.Int(metadata.KeyMapperNumber); ok {
			return mapper, true, nil
		}
	case nes.FormatUNIF:
		return 0, false, nil
	}
	return 0, false, &Rejection{Kind: RejectUnsupportedMapper, Reason: "mapper is not detected"}
}

func mameNES(_ context.Context, req *Request) Result {
	md := req.Metadata
	if md.MediaType == metadata.MediaFloppy || req.ROM.Extension() == "fds" {
		// Disk System software is Japanese only, the Famicom covers it.
		return mameDriver(req, "fds", "flop", nil, false)
	}

	mapper, check, rej := nesMapper(req)
	if rej != nil {
		return rejected(rej)
	}
	if check && mameNESUnsupported.has(mapper) {
		return Reject(RejectUnsupportedMapper, "unsupported mapper: %d", mapper)
	}

	driver := "nes"
	if isPAL(md) {
		driver = "nespal"
	}
	keyboard := false
	var opts []slotOption
	switch nes.Peripheral(md.Attributes.Text(metadata.KeyPeripheral)) {
	case nes.PeripheralZapper:
		opts = append(opts, slotOption{"ctrl2", "zapper"})
	case nes.PeripheralArkanoidPaddle:
		opts = append(opts, slotOption{"ctrl2", "vaus"})
	case nes.PeripheralFamicomKeyboard:
		driver = "famicom"
		opts = append(opts, slotOption{"exp", "fc_keyboard"})
		keyboard = true
	case nes.PeripheralSuborKeyboard:
		driver = "sb486"
		keyboard = true
	case nes.PeripheralPiano:
		opts = append(opts, slotOption{"ctrl1", "miracle_piano"})
	case nes.PeripheralPowerPad:
		opts = append(opts, slotOption{"ctrl2", "powerpad"})
	}
	return mameDriver(req, driver, "cart", opts, keyboard)
}

func mameOdyssey2(_ context.Context, req *Request) Result {
	driver := "odyssey2"
	if isPAL(req.Metadata) {
		driver = "videopac"
	}
	return mameDriver(req, driver, "cart", nil, false)
}

func mamePCEngine(_ context.Context, req *Request) Result {
	// tg16 runs Japanese games too, USA games need it specifically.
	driver := "tg16"
	if req.ROM.Extension() == "sgx" {
		driver = "sgx"
	}
	return mameDriver(req, driver, "cart", nil, false)
}

func mameSaturn(_ context.Context, req *Request) Result {
	driver := saturnRegion(req.Metadata, "saturn", "saturnjp", "saturneu")
	return mameDriver(req, driver, "cdrom", nil, false)
}

func mameSG1000(_ context.Context, req *Request) Result {
	ext := req.ROM.Extension()
	switch {
	case req.Metadata.MediaType == metadata.MediaFloppy:
		return mameDriver(req, "sf7000", "flop", nil, true)
	case ext == "sc":
		return mameDriver(req, "sc3000", "cart", nil, true)
	case ext == "bin" || ext == "sg":
		return mameDriver(req, "sg1000", "cart", []slotOption{{"sgexp", "fm"}}, false)
	default:
		return Reject(RejectMediaTypeMismatch, "media type %s unsupported", req.Metadata.MediaType)
	}
}

// snesBootlegSlots are copy protection boards that are not detected when
// a cart is loaded outside of the software list.
var mameSNESBootlegSlots = []string{"_poke", "_sbld", "_tekken2", "_20col"}

func hasAnySuffix(s string, suffixes []string) bool {
	return slices.ContainsFunc(suffixes, func(suffix string) bool {
		return strings.HasSuffix(s, suffix)
	})
}

// snesAddonCart runs a Sufami Turbo or BS-X cart through its base cart,
// taken from the software list if present or else from a BIOS path.
func snesAddonCart(ctx context.Context, req *Request, software, biosPath, name string) Result {
	if req.hasSoftware(ctx, "snes", software) {
		return mameDriver(req, "snes", "cart2", []slotOption{{"cart", software}}, false)
	}
	if biosPath == "" {
		return Reject(RejectMissingDependency, "%s BIOS not set up", name)
	}
	return mameDriver(req, "snes", "cart2", []slotOption{{"cart", biosPath}}, false)
}

func mameSNES(ctx context.Context, req *Request) Result {
	switch req.ROM.Extension() {
	case "st":
		// Sufami Turbo and BS-X were Japan only, no TV check needed.
		return snesAddonCart(ctx, req, "sufami", req.System.SufamiTurboBIOSPath, "Sufami Turbo")
	case "bs":
		return snesAddonCart(ctx, req, "bsxsore", req.System.BSXBIOSPath, "BS-X/Satellaview")
	}

	attrs := req.attrs()
	if chip := attrs.Text(metadata.KeyExpansionChip); chip == "ST018" {
		return Reject(RejectUnsupportedHardware, "%s not supported", chip)
	}
	if slot := attrs.Text(metadata.KeySlot); hasAnySuffix(slot, mameSNESBootlegSlots) {
		return Reject(RejectUnsupportedMapper, "%s mapper not supported", slot)
	}
	driver := "snes"
	if isPAL(req.Metadata) {
		driver = "snespal"
	}
	return mameDriver(req, driver, "cart", nil, false)
}

func mameSuperCassetteVision(_ context.Context, req *Request) Result {
	if req.attrs().Bool(metadata.KeyHasExtraRAM) {
		return Reject(RejectUnsupportedHardware, "cartridge RAM only works from the software list")
	}
	driver := "scv"
	if isPAL(req.Metadata) {
		driver = "scv_pal"
	}
	return mameDriver(req, driver, "cart", nil, false)
}

func mameVIC20(_ context.Context, req *Request) Result {
	if size := req.ROM.Size(); size > 8*1024+2 {
		return Reject(RejectUnsupportedHardware, "single-part >8K cart not supported: %d", size)
	}
	driver := "vic20"
	if isPAL(req.Metadata) {
		driver = "vic20p"
	}
	return mameDriver(req, driver, "cart", []slotOption{{"iec8", ""}}, true)
}

func mameZXSpectrum(_ context.Context, req *Request) Result {
	md := req.Metadata
	var opts []slotOption

	driver := "spec128"
	switch zxspectrum.Machine(md.Attributes.Text(metadata.KeyMachine)) {
	case zxspectrum.Machine48k:
		driver = "spectrum"
	case zxspectrum.Machine16k:
		driver = "spectrum"
		opts = append(opts, slotOption{"ramsize", "16K"})
	case zxspectrum.MachinePlus2:
		driver = "specpls2"
	case zxspectrum.MachinePlus2A:
		driver = "specpl2a"
	case zxspectrum.MachinePlus3:
		driver = "specpls3"
	}

	var slot string
	switch md.MediaType {
	case metadata.MediaFloppy:
		driver = "specpls3"
		slot = "flop1"
	case metadata.MediaSnapshot:
		slot = "dump"
		// The +2A and +3 expansion port takes none of these.
		if driver != "specpl2a" && driver != "specpls3" {
			switch zxspectrum.Joystick(md.Attributes.Text(metadata.KeyJoystickType)) {
			case zxspectrum.JoystickKempton:
				opts = append(opts, slotOption{"exp", "kempjoy"})
			case zxspectrum.JoystickSinclairLeft, zxspectrum.JoystickSinclairRight:
				opts = append(opts, slotOption{"exp", "intf2"})
			case zxspectrum.JoystickCursor:
				opts = append(opts, slotOption{"exp", "protek"})
			}
		}
	case metadata.MediaCartridge:
		if size := req.ROM.Size(); size != 0x4000 {
			return Reject(RejectUnsupportedHardware, "only 16KB Interface 2 carts are supported, got %d", size)
		}
		slot = "cart"
		opts = append(opts, slotOption{"exp", "intf2"})
	case metadata.MediaExecutable:
		slot = "quik"
	default:
		return Reject(RejectMediaTypeMismatch, "media type %s unsupported", md.MediaType)
	}
	return mameDriver(req, driver, slot, opts, true)
}
