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
	"testing"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/gameboy"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/n64"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/nes"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMupen64PlusPlugins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		expected      []string
		controllerPak bool
		rumble        bool
		transferPak   bool
		preferPak     bool
	}{
		{
			name:     "no pak",
			expected: []string{"--nosaveoptions", "--fullscreen", launch.PathPlaceholder},
		},
		{
			name:          "controller pak",
			controllerPak: true,
			expected: []string{
				"--nosaveoptions", "--fullscreen", "--set", "Input-SDL-Control1[plugin]=2", launch.PathPlaceholder,
			},
		},
		{
			name:          "both prefers rumble",
			controllerPak: true,
			rumble:        true,
			expected: []string{
				"--nosaveoptions", "--fullscreen", "--set", "Input-SDL-Control1[plugin]=5", launch.PathPlaceholder,
			},
		},
		{
			name:          "both prefers controller pak",
			controllerPak: true,
			rumble:        true,
			preferPak:     true,
			expected: []string{
				"--nosaveoptions", "--fullscreen", "--set", "Input-SDL-Control1[plugin]=2", launch.PathPlaceholder,
			},
		},
		{
			name:        "transfer pak",
			transferPak: true,
			expected: []string{
				"--nosaveoptions", "--fullscreen", "--set", "Input-SDL-Control1[plugin]=4", launch.PathPlaceholder,
			},
		},
		{
			name:        "rumble beats transfer pak",
			rumble:      true,
			transferPak: true,
			expected: []string{
				"--nosaveoptions", "--fullscreen", "--set", "Input-SDL-Control1[plugin]=5", launch.PathPlaceholder,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := newRequest(systems.SystemNintendo64, "game.z64", 0x1000, metadata.MediaCartridge)
			req.Metadata.Attributes.Set(metadata.KeyUsesControllerPak, tt.controllerPak)
			req.Metadata.Attributes.Set(metadata.KeyForceFeedback, tt.rumble)
			req.Metadata.Attributes.Set(metadata.KeyUsesTransferPak, tt.transferPak)
			req.System.PreferControllerPak = tt.preferPak
			spec := mustResolve(t, "Mupen64Plus", req)
			assert.Equal(t, "mupen64plus", spec.Commands[0].Exe)
			assert.Equal(t, tt.expected, spec.Commands[0].Args)
		})
	}

	unknown := newRequest(systems.SystemNintendo64, "game.n64", 0x1000, metadata.MediaCartridge)
	unknown.Metadata.Attributes.Set(metadata.KeyROMFormat, n64.FormatUnknown)
	mustReject(t, "Mupen64Plus", unknown, RejectHeaderMalformed)
}

func TestBsnesSuperGameBoy(t *testing.T) {
	t.Parallel()

	newGB := func(colour gameboy.ColourSupport, sgb bool) *Request {
		req := newRequest(systems.SystemGameboy, "game.gb", 0x8000, metadata.MediaCartridge)
		req.Metadata.Attributes.Set(metadata.KeyMapper, "MBC5")
		req.Metadata.Attributes.Set(metadata.KeyIsColour, colour)
		req.Metadata.Attributes.Set(metadata.KeySGBEnhanced, sgb)
		req.System.SuperGameBoyBIOSPath = "/bios/sgb.sfc"
		return req
	}

	spec := mustResolve(t, "bsnes", newGB(gameboy.ColourNo, true))
	assert.Equal(t, []string{"--fullscreen", "/bios/sgb.sfc", launch.PathPlaceholder}, spec.Commands[0].Args)

	noBIOS := newGB(gameboy.ColourNo, true)
	noBIOS.System.SuperGameBoyBIOSPath = ""
	mustReject(t, "bsnes", noBIOS, RejectMissingDependency)

	mustReject(t, "bsnes", newGB(gameboy.ColourRequired, true), RejectUnsupportedHardware)
	mustReject(t, "bsnes", newGB(gameboy.ColourYes, true), RejectUnsupportedHardware)

	dual := newGB(gameboy.ColourYes, true)
	dual.Emulator.SGBIncompatibleWithGBC = false
	mustResolve(t, "bsnes", dual)

	enhancedOnly := newGB(gameboy.ColourNo, false)
	enhancedOnly.Emulator.SGBEnhancedOnly = true
	mustReject(t, "bsnes", enhancedOnly, RejectUnsupportedHardware)

	mbc7 := newGB(gameboy.ColourNo, false)
	mbc7.Metadata.Attributes.Set(metadata.KeyMapper, "MBC7")
	mustReject(t, "bsnes", mbc7, RejectUnsupportedMapper)
}

func TestBsnesSNES(t *testing.T) {
	t.Parallel()

	st := newRequest(systems.SystemSNES, "game.st", 0x80000, metadata.MediaCartridge)
	mustReject(t, "bsnes", st, RejectMissingDependency)

	st.System.SufamiTurboBIOSPath = "/bios/st.sfc"
	spec := mustResolve(t, "bsnes", st)
	assert.Equal(t, []string{
		"--fullscreen", "/bios/st.sfc", launch.PathPlaceholder, launch.PathPlaceholder,
	}, spec.Commands[0].Args)

	bugs := newRequest(systems.SystemSNES, "game.sfc", 0x80000, metadata.MediaCartridge)
	bugs.Metadata.Attributes.Set(metadata.KeySlot, "lorom_bugs")
	mustReject(t, "bsnes", bugs, RejectUnsupportedMapper)
	mustReject(t, "Snes9x", bugs, RejectUnsupportedMapper)

	dsp3 := newRequest(systems.SystemSNES, "game.sfc", 0x80000, metadata.MediaCartridge)
	dsp3.Metadata.Attributes.Set(metadata.KeyExpansionChip, "DSP-3")
	mustReject(t, "Snes9x", dsp3, RejectUnsupportedHardware)
	mustResolve(t, "bsnes", dsp3)
}

func TestCitra(t *testing.T) {
	t.Parallel()

	newCCI := func() *Request {
		req := newRequest(systems.System3DS, "game.3ds", 0x1000, metadata.MediaCartridge)
		req.Metadata.Attributes.Set(metadata.KeyHasSMDH, true)
		req.Metadata.Attributes.Set(metadata.KeyProductCode, "CTR-P-ABCE")
		return req
	}
	mustResolve(t, "Citra", newCCI())

	enc := newCCI()
	enc.Metadata.Attributes.Set(metadata.KeyDecrypted, false)
	mustReject(t, "Citra", enc, RejectUnsupported)

	applet := newCCI()
	applet.Metadata.Attributes.Set(metadata.KeyHasSMDH, false)
	mustReject(t, "Citra", applet, RejectUnsupported)

	update := newCCI()
	update.Metadata.Attributes.Set(metadata.KeyProductCode, "CTR-U-ABCE")
	mustReject(t, "Citra", update, RejectNotARom)

	homebrew := newRequest(systems.System3DS, "game.3dsx", 0x1000, metadata.MediaExecutable)
	mustResolve(t, "Citra", homebrew)
}

func TestCxNESAllowList(t *testing.T) {
	t.Parallel()

	req := newRequest(systems.SystemNES, "game.nes", 0x8010, metadata.MediaCartridge)
	req.Metadata.Attributes.Set(metadata.KeyHeaderFormat, nes.FormatINES)
	req.Metadata.Attributes.Set(metadata.KeyMapperNumber, 150)
	spec := mustResolve(t, "cxNES", req)
	assert.Equal(t, []string{"-f", launch.PathPlaceholder}, spec.Commands[0].Args)

	req.Metadata.Attributes.Set(metadata.KeyMapperNumber, 6)
	mustReject(t, "cxNES", req, RejectUnsupportedMapper)
}

func TestDolphinTitleTypes(t *testing.T) {
	t.Parallel()

	req := newRequest(systems.SystemWii, "game.wad", 0x1000, metadata.MediaDigital)
	req.Metadata.Attributes.Set(metadata.KeyTitleType, "Channel")
	spec := mustResolve(t, "Dolphin", req)
	assert.Equal(t, []string{"-b", "-e", launch.PathPlaceholder}, spec.Commands[0].Args)

	req.Metadata.Attributes.Set(metadata.KeyTitleType, "System")
	mustReject(t, "Dolphin", req, RejectNotARom)

	disc := newRequest(systems.SystemGameCube, "game.iso", 0x1000, metadata.MediaOpticalDisc)
	disc.Metadata.Attributes.Set(metadata.KeyNoDiscMagic, true)
	mustReject(t, "Dolphin", disc, RejectUnsupported)
}

func TestDreamcastEmulators(t *testing.T) {
	t.Parallel()

	req := newRequest(systems.SystemDreamcast, "game.gdi", 0x1000, metadata.MediaOpticalDisc)
	req.Emulator.ForceOpenGLVersion = true
	req.Metadata.Attributes.Set(metadata.KeySupportsVGA, false)

	spec := mustResolve(t, "Reicast", req)
	assert.Equal(t, []string{
		"-config", "x11:fullscreen=1", "-config", "config:Dreamcast.Cable=2", launch.PathPlaceholder,
	}, spec.Commands[0].Args)
	assert.Equal(t, map[string]string{"MESA_GL_VERSION_OVERRIDE": "4.3"}, spec.Commands[0].Env)

	spec = mustResolve(t, "Flycast", req)
	assert.Equal(t, "4.3", spec.Commands[0].Env["MESA_GL_VERSION_OVERRIDE"])

	vga := newRequest(systems.SystemDreamcast, "game.gdi", 0x1000, metadata.MediaOpticalDisc)
	spec = mustResolve(t, "Reicast", vga)
	assert.Contains(t, spec.Commands[0].Args, "config:Dreamcast.Cable=0")
	assert.Nil(t, spec.Commands[0].Env)

	wince := newRequest(systems.SystemDreamcast, "game.gdi", 0x1000, metadata.MediaOpticalDisc)
	wince.Metadata.Attributes.Set(metadata.KeyUsesWindowsCE, true)
	mustReject(t, "Reicast", wince, RejectUnsupportedHardware)
}

func TestGameBoyMapperEmulators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		emulator string
		mapper   string
		accepted bool
	}{
		{emulator: "Gambatte", mapper: "MBC5", accepted: true},
		{emulator: "Gambatte", mapper: "MBC1 Multicart", accepted: true},
		{emulator: "Gambatte", mapper: "MBC7"},
		{emulator: "GBE+", mapper: "Pocket Camera", accepted: true},
		{emulator: "GBE+", mapper: "HuC3"},
		{emulator: "mGBA", mapper: "Bandai TAMA5", accepted: true},
		{emulator: "mGBA", mapper: "Sintax"},
		{emulator: "Mednafen (Game Boy)", mapper: "HuC3", accepted: true},
		{emulator: "Mednafen (Game Boy)", mapper: "MBC6"},
	}

	for _, tt := range tests {
		t.Run(tt.emulator+" "+tt.mapper, func(t *testing.T) {
			t.Parallel()
			req := newRequest(systems.SystemGameboy, "game.gb", 0x8000, metadata.MediaCartridge)
			req.Metadata.Attributes.Set(metadata.KeyMapper, tt.mapper)
			if tt.accepted {
				mustResolve(t, tt.emulator, req)
			} else {
				mustReject(t, tt.emulator, req, RejectUnsupportedMapper)
			}
		})
	}
}

func TestMGBALogo(t *testing.T) {
	t.Parallel()

	req := newRequest(systems.SystemGBA, "game.gba", 0x1000, metadata.MediaCartridge)
	req.Metadata.Attributes.Set(metadata.KeyNintendoLogoValid, false)
	spec := mustResolve(t, "mGBA", req)
	assert.Equal(t, []string{"-f", "-C", "useBios=0", launch.PathPlaceholder}, spec.Commands[0].Args)

	// GBA files skip the Game Boy mapper check.
	assert.False(t, req.Metadata.Attributes.Has(metadata.KeyMapper))

	nds := newRequest(systems.SystemNDS, "game.nds", 0x1000, metadata.MediaCartridge)
	nds.Metadata.Attributes.Set(metadata.KeyNintendoLogoValid, false)
	spec = mustResolve(t, "Medusa", nds)
	assert.Equal(t, []string{"-f", launch.PathPlaceholder}, spec.Commands[0].Args)

	nds.Metadata.Attributes.Set(metadata.KeyIsIQue, true)
	mustReject(t, "Medusa", nds, RejectUnsupported)
	mustReject(t, "melonDS", nds, RejectUnsupported)
}

func TestDSiExclusiveRejected(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Medusa", "melonDS"} {
		req := newRequest(systems.SystemNDS, "game.dsi", 0x1000, metadata.MediaCartridge)
		req.Metadata.Platform = systems.PlatformDSi
		rej := mustReject(t, name, req, RejectUnsupported)
		assert.Contains(t, rej.Reason, "DSi")

		nds := newRequest(systems.SystemNDS, "game.nds", 0x1000, metadata.MediaCartridge)
		mustResolve(t, name, nds)
	}
}

func TestPokeMiniWrapper(t *testing.T) {
	t.Parallel()

	req := newRequest(systems.SystemPokemonMini, "game.min", 0x1000, metadata.MediaCartridge)
	req.HomeDir = "/home/player"
	spec := mustResolve(t, "PokeMini (wrapper)", req)

	require.Len(t, spec.Commands, 2)
	assert.True(t, spec.IsSequence())
	assert.Equal(t, launch.NewCommand("mkdir", "-p", "/home/player/.config/PokeMini"), spec.Commands[0])
	assert.Equal(t, "PokeMini", spec.Main().Exe)
	assert.Equal(t, "/home/player/.config/PokeMini", spec.Main().Dir)
	assert.Equal(t, []string{"-fullscreen", launch.PathPlaceholder}, spec.Main().Args)
	for _, c := range spec.Commands {
		assert.NotEqual(t, "cd", c.Exe)
	}
}

func TestPokeMiniWrapperRunsInConfigDir(t *testing.T) {
	t.Parallel()

	req := newRequest(systems.SystemPokemonMini, "game.min", 0x1000, metadata.MediaCartridge)
	req.HomeDir = "/home/player"
	spec := mustResolve(t, "PokeMini (wrapper)", req).ReplacePath("/roms/game.min")

	exec := &mocks.MockCommandExecutor{}
	exec.On("Run", mock.Anything, command.Options{},
		"mkdir", []string{"-p", "/home/player/.config/PokeMini"}).Return(nil).Once()
	exec.On("Run", mock.Anything, command.Options{Dir: "/home/player/.config/PokeMini"},
		"PokeMini", []string{"-fullscreen", "/roms/game.min"}).Return(nil).Once()

	require.NoError(t, launch.Run(context.Background(), exec, spec))
	exec.AssertExpectations(t)
}

func TestPrBoomPlus(t *testing.T) {
	t.Parallel()

	req := newRequest(systems.SystemDoom, "doom.wad", 0x1000, metadata.MediaDigital)
	req.System.SaveDir = "/saves/doom"
	spec := mustResolve(t, "PrBoom+", req)
	assert.Equal(t, []string{"-save", "/saves/doom", "-iwad", launch.PathPlaceholder}, spec.Commands[0].Args)

	req.Metadata.Attributes.Set(metadata.KeyIsPWAD, true)
	mustReject(t, "PrBoom+", req, RejectNotARom)
}

func TestA7800UsesSoftwareList(t *testing.T) {
	t.Parallel()

	req := newRequest(systems.SystemAtari7800, "game.a78", 128, metadata.MediaCartridge)
	req.Metadata.Attributes.Set(metadata.KeyHeadered, true)
	req.Metadata.Attributes.Set(metadata.KeyUsesHiscoreCart, true)
	req.Metadata.TVSystem = metadata.TVPAL
	req.Oracle = mocks.NewMockOracle([2]string{"a7800", "hiscore"})
	spec := mustResolve(t, "A7800", req)
	assert.Equal(t, []string{"a7800p", "-cart1", "hiscore", "-cart2", launch.PathPlaceholder}, spec.Commands[0].Args)
}

func TestSimpleRejections(t *testing.T) {
	t.Parallel()

	umd := newRequest(systems.SystemPSP, "movie.iso", 0x1000, metadata.MediaOpticalDisc)
	umd.Metadata.Attributes.Set(metadata.KeyIsUMDVideo, true)
	mustReject(t, "PPSSPP", umd, RejectUnsupported)

	kega := newRequest(systems.SystemGenesis, "game.md", 0x1000, metadata.MediaCartridge)
	kega.Metadata.Attributes.Set(metadata.KeyMapper, "aqlian")
	mustReject(t, "Kega Fusion", kega, RejectUnsupportedMapper)
}
