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

package launch

import (
	"testing"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestReplacePath(t *testing.T) {
	t.Parallel()

	spec := Single("mednafen", "-video.fs", "1", "-force_module", "nes", PathPlaceholder)
	out := spec.ReplacePath("/roms/Super Mario Bros.nes")

	assert.Equal(t, []string{"-video.fs", "1", "-force_module", "nes", "/roms/Super Mario Bros.nes"},
		out.Commands[0].Args)
	assert.Equal(t, PathPlaceholder, spec.Commands[0].Args[4], "original is untouched")
}

func TestReplacePathEmbedded(t *testing.T) {
	t.Parallel()

	spec := Single("tool", "--rom="+PathPlaceholder)
	assert.Equal(t, []string{"--rom=/a.bin"}, spec.ReplacePath("/a.bin").Commands[0].Args)
}

func TestPrependAppend(t *testing.T) {
	t.Parallel()

	spec := Single("PokeMini", "-fullscreen", PathPlaceholder)
	out := spec.Prepend(NewCommand("mkdir", "-p", "/home/me/.config/PokeMini")).
		Append(NewCommand("true"))

	require.Len(t, out.Commands, 3)
	assert.True(t, out.IsSequence())
	assert.False(t, spec.IsSequence())
	assert.Equal(t, "mkdir", out.Commands[0].Exe)
	assert.Equal(t, "PokeMini", out.Main().Exe)
	assert.Equal(t, "true", out.Commands[2].Exe)
}

func TestWithEnv(t *testing.T) {
	t.Parallel()

	spec := Single("flycast", PathPlaceholder)
	out := spec.WithEnv(map[string]string{"MESA_GL_VERSION_OVERRIDE": "4.3"})
	assert.Equal(t, "4.3", out.Commands[0].Env["MESA_GL_VERSION_OVERRIDE"])
	assert.Nil(t, spec.Commands[0].Env)
}

func TestCommandLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		spec     *Spec
		expected string
	}{
		{
			name:     "plain",
			spec:     Single("mame", "-skip_gameinfo", "nes", "-cart", "/roms/game.nes"),
			expected: "mame -skip_gameinfo nes -cart /roms/game.nes",
		},
		{
			name:     "quoting",
			spec:     Single("mame", "nes", "-exp", "", "/roms/Bob's Game.nes"),
			expected: `mame nes -exp '' '/roms/Bob'"'"'s Game.nes'`,
		},
		{
			name: "env",
			spec: Single("flycast", "/roms/a.gdi").WithEnv(map[string]string{
				"MESA_GL_VERSION_OVERRIDE": "4.3",
				"A":                        "b c",
			}),
			expected: "env 'A=b c' MESA_GL_VERSION_OVERRIDE=4.3 flycast /roms/a.gdi",
		},
		{
			name: "sequence",
			spec: Single("PokeMini", "-fullscreen", "/roms/a.min").
				Prepend(NewCommand("mkdir", "-p", "/home/me/.config/PokeMini")),
			expected: `sh -c 'mkdir -p /home/me/.config/PokeMini && PokeMini -fullscreen /roms/a.min'`,
		},
		{
			name: "working directory",
			spec: &Spec{Commands: []Command{{Exe: "PokeMini", Dir: "/home/me", Args: []string{"a.min"}}}},
			expected: `sh -c 'cd /home/me && PokeMini a.min'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.spec.CommandLine())
		})
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "''", Quote(""))
	assert.Equal(t, "abc-1.2/x", Quote("abc-1.2/x"))
	assert.Equal(t, "'$<path>'", Quote(PathPlaceholder))
	assert.Equal(t, `'it'"'"'s'`, Quote("it's"))
}

func TestMaterializeUncompressed(t *testing.T) {
	t.Parallel()

	rom := romfile.NewMemory("/roms/game.nes", nil)
	out := Materialize(Single("mednafen", PathPlaceholder), rom, []string{"zip", "gz"})
	require.Len(t, out.Commands, 1)
	assert.Equal(t, []string{"/roms/game.nes"}, out.Commands[0].Args)
}

type archivedROM struct {
	*romfile.File
	outer string
	inner string
}

func (r archivedROM) IsCompressed() bool  { return true }
func (r archivedROM) OuterFormat() string { return r.outer }
func (r archivedROM) InnerPath() string   { return r.inner }

func TestMaterializeSupportedCompression(t *testing.T) {
	t.Parallel()

	rom := archivedROM{File: romfile.NewMemory("/roms/game.zip", nil), outer: "zip", inner: "game.nes"}
	out := Materialize(Single("mednafen", PathPlaceholder), rom, []string{"zip", "gz"})
	require.Len(t, out.Commands, 1)
	assert.Equal(t, []string{"/roms/game.zip"}, out.Commands[0].Args)
}

func TestMaterializeUnsupportedCompressionWraps(t *testing.T) {
	t.Parallel()

	rom := archivedROM{File: romfile.NewMemory("/roms/game.zip", nil), outer: "zip", inner: "game.nes"}
	m := Materializer{TempDir: "/tmp", newID: func() string { return "run1" }}
	out := m.Materialize(Single("cxnes", "-f", PathPlaceholder), rom, nil)

	require.Len(t, out.Commands, 3)
	assert.True(t, out.KeepGoing)
	assert.Equal(t, NewCommand("7z", "x", "-o/tmp/emuresolve-run1", "/roms/game.zip", "game.nes"), out.Commands[0])
	assert.Equal(t, []string{"-f", "/tmp/emuresolve-run1/game.nes"}, out.Commands[1].Args)
	assert.NotContains(t, out.Commands[1].Args, "/roms/game.zip")
	assert.Equal(t, NewCommand("rm", "-rf", "/tmp/emuresolve-run1"), out.Commands[2])
	assert.Equal(t,
		`sh -c '7z x -o/tmp/emuresolve-run1 /roms/game.zip game.nes; cxnes -f /tmp/emuresolve-run1/game.nes; rm -rf /tmp/emuresolve-run1'`,
		out.CommandLine())
}

func TestMaterializeFreshFolders(t *testing.T) {
	t.Parallel()

	rom := archivedROM{File: romfile.NewMemory("/roms/game.7z", nil), outer: "7z", inner: "game.md"}
	a := Materialize(Single("kega-fusion", PathPlaceholder), rom, []string{"zip"})
	b := Materialize(Single("kega-fusion", PathPlaceholder), rom, []string{"zip"})
	assert.NotEqual(t, a.Commands[2].Args, b.Commands[2].Args)
}

func TestReplacePathRemovesPlaceholder(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		args := rapid.SliceOf(rapid.SampledFrom([]string{"-a", PathPlaceholder, "x" + PathPlaceholder, "b"})).
			Draw(t, "args")
		p := rapid.StringMatching(`/[a-z]{1,8}\.nes`).Draw(t, "path")
		out := Single("emu", args...).ReplacePath(p)
		if out.Main().HasPlaceholder() {
			t.Fatalf("placeholder left in %v", out.Commands[0].Args)
		}
		if len(out.Commands[0].Args) != len(args) {
			t.Fatalf("argument count changed")
		}
	})
}
