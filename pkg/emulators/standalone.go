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
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/gameboy"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
)

var (
	bsnesGBMappers = gbMappers{
		supported: []string{"ROM only", "MBC1", "MBC2", "MBC3", "MBC5", "HuC1", "HuC3"},
	}
	gambatteGBMappers = gbMappers{
		supported: []string{"ROM only", "MBC1", "MBC2", "MBC3", "HuC1", "MBC5"},
		detected:  []string{"MBC1 Multicart"},
	}
	gbePlusGBMappers = gbMappers{
		supported: []string{"ROM only", "MBC1", "MBC2", "MBC3", "MBC5", "MBC6", "MBC7", "Pocket Camera", "HuC1"},
		detected:  []string{"MBC1 Multicart"},
	}
	mgbaGBMappers = gbMappers{
		supported: []string{
			"ROM only", "MBC1", "MBC2", "MBC3", "HuC1", "MBC5", "HuC3", "MBC6",
			"MBC7", "Pocket Camera", "Bandai TAMA5",
		},
		detected: []string{"MBC1 Multicart", "MMM01", "Wisdom Tree"},
	}
	// Copy protection boards neither bsnes nor Snes9x detect.
	snesBootlegSlots = []string{"_bugs", "_pija", "_poke", "_sbld", "_tekken2", "_20col"}
	cxnesMappers     = newIntSet([]int{
		0, 1, 2, 3, 4, 5, 7, 9, 10, 11, 13, 14, 15, 16, 18, 19, 21, 22, 23, 24,
		25, 26, 28, 29, 30, 31, 32, 33, 34, 36, 37, 38, 39, 41, 44, 46, 47, 48,
		49, 58, 60, 61, 62, 64, 65, 66, 67, 68, 69, 70, 71, 73, 74, 75, 76, 77,
		78, 79, 80, 82, 85, 86, 87, 88, 89, 90, 91, 93, 94, 95, 97, 99, 105, 107,
		112, 113, 115, 118, 119, 133, 137, 138, 139, 140, 141, 143, 144, 158,
		159, 166, 167, 178, 180, 182, 184, 185, 189, 192, 193, 200, 201, 202,
		203, 205, 206, 207, 209, 210, 211, 218, 225, 226, 228, 230, 231, 232,
		234, 240, 241, 245, 246,
	}, span(145, 155))
	kegaFusionUnsupported = []string{
		"aqlian", "rom_sf002", "rom_sf004", "rom_smw64", "rom_topf", "rom_kof99",
		"rom_cjmjclub", "rom_pokestad", "rom_soulb", "rom_chinf3",
	}
	// Wii title types that boot from the system menu.
	dolphinBootableTitles = []string{"Channel", "GameWithChannel", "SystemChannel", "HiddenChannel"}
)

func single(req *Request, exe string, args ...string) Result {
	return Accept(launch.Single(req.exe(exe), args...))
}

func isGameBoyPlatform(platform string) bool {
	return platform == systems.SystemGameboy || platform == systems.SystemGameboyColor
}

func a7800(ctx context.Context, req *Request) Result {
	if !req.attrs().Bool(metadata.KeyHeadered) {
		return Reject(RejectHeaderMalformed, "no header, only runs from the software list")
	}
	driver := "a7800"
	if isPAL(req.Metadata) {
		driver = "a7800p"
	}
	// The hiscore cart image comes from MAME's software list, A7800 reads
	// the same ROM set.
	if req.attrs().Bool(metadata.KeyUsesHiscoreCart) && req.hasSoftware(ctx, "a7800", "hiscore") {
		return single(req, "a7800", driver, "-cart1", "hiscore", "-cart2", launch.PathPlaceholder)
	}
	return single(req, "a7800", driver, "-cart", launch.PathPlaceholder)
}

func bsnesGameBoy(req *Request) Result {
	attrs := req.attrs()
	bios := req.System.SuperGameBoyBIOSPath
	if bios == "" {
		return Reject(RejectMissingDependency, "Super Game Boy BIOS not set up")
	}
	colour := attrs.Text(metadata.KeyIsColour)
	if colour == string(gameboy.ColourRequired) {
		return Reject(RejectUnsupportedHardware, "Super Game Boy is not compatible with GBC-only games")
	}
	if colour == string(gameboy.ColourYes) && req.Emulator.SGBIncompatibleWithGBC {
		return Reject(RejectUnsupportedHardware, "Super Game Boy is not compatible with GBC games")
	}
	if req.Emulator.SGBEnhancedOnly && !attrs.Bool(metadata.KeySGBEnhanced) {
		return Reject(RejectUnsupportedHardware, "not SGB enhanced")
	}
	if rej := bsnesGBMappers.verify(attrs); rej != nil {
		return rejected(rej)
	}
	return single(req, "bsnes", "--fullscreen", bios, launch.PathPlaceholder)
}

func bsnes(_ context.Context, req *Request) Result {
	if isGameBoyPlatform(req.platform()) {
		return bsnesGameBoy(req)
	}
	if req.ROM.Extension() == "st" {
		bios := req.System.SufamiTurboBIOSPath
		if bios == "" {
			return Reject(RejectMissingDependency, "Sufami Turbo BIOS not set up")
		}
		// The second slot is empty, the same cart is inserted twice.
		return single(req, "bsnes", "--fullscreen", bios, launch.PathPlaceholder, launch.PathPlaceholder)
	}
	if slot := req.attrs().Text(metadata.KeySlot); hasAnySuffix(slot, snesBootlegSlots) {
		return Reject(RejectUnsupportedMapper, "%s mapper not supported", slot)
	}
	return single(req, "bsnes", "--fullscreen", launch.PathPlaceholder)
}

func citra(_ context.Context, req *Request) Result {
	if req.ROM.Extension() != "3dsx" {
		attrs := req.attrs()
		if !metadata.GetOr(attrs, metadata.KeyDecrypted, true) {
			return Reject(RejectUnsupported, "ROM is encrypted")
		}
		if !metadata.GetOr(attrs, metadata.KeyIsCXI, true) {
			return Reject(RejectUnsupported, "not CXI")
		}
		if !attrs.Bool(metadata.KeyHasSMDH) {
			return Reject(RejectUnsupported, "no icon (SMDH), probably an applet")
		}
		// Update data is installed into the emulator, not booted.
		if code := attrs.Text(metadata.KeyProductCode); len(code) >= 6 && code[3:6] == "-U-" {
			return Reject(RejectNotARom, "update data, not actual game")
		}
	}
	return single(req, "citra-qt", launch.PathPlaceholder)
}

func cxnes(_ context.Context, req *Request) Result {
	mapper, check, rej := nesMapper(req)
	if rej != nil {
		return rejected(rej)
	}
	if check && !cxnesMappers.has(mapper) {
		return Reject(RejectUnsupportedMapper, "unsupported mapper: %d (%s)",
			mapper, req.attrs().Text(metadata.KeyMapper))
	}
	return single(req, "cxnes", "-f", launch.PathPlaceholder)
}

func dolphin(_ context.Context, req *Request) Result {
	attrs := req.attrs()
	if attrs.Bool(metadata.KeyNoDiscMagic) {
		return Reject(RejectUnsupported, "no disc magic")
	}
	if title := attrs.Text(metadata.KeyTitleType); title != "" && !slices.Contains(dolphinBootableTitles, title) {
		return Reject(RejectNotARom, "cannot boot a %s", title)
	}
	return single(req, "dolphin-emu", "-b", "-e", launch.PathPlaceholder)
}

func openGLEnv(req *Request) map[string]string {
	if !req.Emulator.ForceOpenGLVersion {
		return nil
	}
	return map[string]string{"MESA_GL_VERSION_OVERRIDE": "4.3"}
}

func flycast(_ context.Context, req *Request) Result {
	spec := launch.Single(req.exe("flycast"), "-config", "x11:fullscreen=1", launch.PathPlaceholder)
	return Accept(spec.WithEnv(openGLEnv(req)))
}

func gbMapperEmulator(mappers gbMappers, exe string, args ...string) Builder {
	return func(_ context.Context, req *Request) Result {
		if rej := mappers.verify(req.attrs()); rej != nil {
			return rejected(rej)
		}
		return single(req, exe, slices.Clone(args)...)
	}
}

func kegaFusion(_ context.Context, req *Request) Result {
	if mapper := req.attrs().Text(metadata.KeyMapper); slices.Contains(kegaFusionUnsupported, mapper) {
		return Reject(RejectUnsupportedMapper, "%s not supported", mapper)
	}
	return single(req, "kega-fusion", "-fullscreen", launch.PathPlaceholder)
}

func mgbaArgs(req *Request) []string {
	args := []string{"-f"}
	if !metadata.GetOr(req.attrs(), metadata.KeyNintendoLogoValid, true) {
		args = append(args, "-C", "useBios=0")
	}
	return append(args, launch.PathPlaceholder)
}

func rejectDSi(req *Request) *Rejection {
	if req.Metadata.Platform == systems.PlatformDSi {
		return &Rejection{Kind: RejectUnsupported, Reason: "DSi exclusive software not supported"}
	}
	return nil
}

func medusa(_ context.Context, req *Request) Result {
	if rej := rejectDSi(req); rej != nil {
		return rejected(rej)
	}
	if req.attrs().Bool(metadata.KeyIsIQue) {
		return Reject(RejectUnsupported, "iQue ROMs not supported")
	}
	platform := req.platform()
	if isGameBoyPlatform(platform) {
		if rej := mgbaGBMappers.verify(req.attrs()); rej != nil {
			return rejected(rej)
		}
	}
	args := []string{"-f"}
	if platform != systems.SystemNDS && !metadata.GetOr(req.attrs(), metadata.KeyNintendoLogoValid, true) {
		args = append(args, "-C", "useBios=0")
	}
	args = append(args, launch.PathPlaceholder)
	return single(req, "medusa-emu-qt", args...)
}

func melonDS(_ context.Context, req *Request) Result {
	if rej := rejectDSi(req); rej != nil {
		return rejected(rej)
	}
	if req.attrs().Bool(metadata.KeyIsIQue) {
		return Reject(RejectUnsupported, "iQue ROMs not supported")
	}
	return single(req, "melonDS", launch.PathPlaceholder)
}

func mgba(_ context.Context, req *Request) Result {
	if isGameBoyPlatform(req.platform()) {
		if rej := mgbaGBMappers.verify(req.attrs()); rej != nil {
			return rejected(rej)
		}
	}
	return single(req, "mgba-qt", mgbaArgs(req)...)
}

// Input-SDL plugin numbers for the first controller.
const (
	n64NoPak         = 1
	n64ControllerPak = 2
	n64TransferPak   = 4
	n64RumblePak     = 5
)

func mupen64plus(_ context.Context, req *Request) Result {
	attrs := req.attrs()
	if attrs.Text(metadata.KeyROMFormat) == "Unknown" {
		return Reject(RejectHeaderMalformed, "undetectable ROM format")
	}

	controllerPak := attrs.Bool(metadata.KeyUsesControllerPak)
	rumble := attrs.Bool(metadata.KeyForceFeedback)

	plugin := n64NoPak
	switch {
	case controllerPak && rumble:
		plugin = n64RumblePak
		if req.System.PreferControllerPak {
			plugin = n64ControllerPak
		}
	case controllerPak:
		plugin = n64ControllerPak
	case rumble:
		plugin = n64RumblePak
	case attrs.Bool(metadata.KeyUsesTransferPak):
		plugin = n64TransferPak
	}

	args := []string{"--nosaveoptions", "--fullscreen"}
	if plugin != n64NoPak {
		args = append(args, "--set", fmt.Sprintf("Input-SDL-Control1[plugin]=%d", plugin))
	}
	args = append(args, launch.PathPlaceholder)
	return single(req, "mupen64plus", args...)
}

// pokeminiWrapper runs PokeMini from its config folder, because it
// writes its config and saves to the working directory.
func pokeminiWrapper(_ context.Context, req *Request) Result {
	home := req.HomeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return Reject(RejectMissingDependency, "home folder not found: %v", err)
		}
	}
	dir := filepath.Join(home, ".config", "PokeMini")
	run := launch.NewCommand(req.exe("PokeMini"), "-fullscreen", launch.PathPlaceholder)
	run.Dir = dir
	return Accept(&launch.Spec{Commands: []launch.Command{
		launch.NewCommand("mkdir", "-p", dir),
		run,
	}})
}

func ppsspp(_ context.Context, req *Request) Result {
	if req.attrs().Bool(metadata.KeyIsUMDVideo) {
		return Reject(RejectUnsupported, "UMD video discs not supported")
	}
	return single(req, "ppsspp-qt", launch.PathPlaceholder)
}

func prboomPlus(_ context.Context, req *Request) Result {
	if req.attrs().Bool(metadata.KeyIsPWAD) {
		return Reject(RejectNotARom, "is PWAD and not IWAD")
	}
	var args []string
	if req.System.SaveDir != "" {
		args = append(args, "-save", req.System.SaveDir)
	}
	args = append(args, "-iwad", launch.PathPlaceholder)
	return single(req, "prboom-plus", args...)
}

func reicast(_ context.Context, req *Request) Result {
	if req.attrs().Bool(metadata.KeyUsesWindowsCE) {
		return Reject(RejectUnsupportedHardware, "Windows CE based games not supported")
	}
	args := []string{"-config", "x11:fullscreen=1"}
	// The cable setting is written back to the config, so it is always
	// set. 2 is RGB component for games without VGA support.
	if metadata.GetOr(req.attrs(), metadata.KeySupportsVGA, true) {
		args = append(args, "-config", "config:Dreamcast.Cable=0")
	} else {
		args = append(args, "-config", "config:Dreamcast.Cable=2")
	}
	args = append(args, launch.PathPlaceholder)
	return Accept(launch.Single(req.exe("reicast"), args...).WithEnv(openGLEnv(req)))
}

func snes9x(_ context.Context, req *Request) Result {
	attrs := req.attrs()
	if slot := attrs.Text(metadata.KeySlot); hasAnySuffix(slot, snesBootlegSlots) {
		return Reject(RejectUnsupportedMapper, "%s mapper not supported", slot)
	}
	switch chip := attrs.Text(metadata.KeyExpansionChip); chip {
	case "ST018", "DSP-3":
		return Reject(RejectUnsupportedHardware, "%s not supported", chip)
	}
	return single(req, "snes9x-gtk", launch.PathPlaceholder)
}
