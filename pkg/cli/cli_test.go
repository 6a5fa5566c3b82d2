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

package cli

import (
	"context"
	"testing"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/config"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/resolver"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/testing/helpers"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/testing/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testConfig = `config_schema = 1

[paths]
temp_dir = "/scratch"

[[systems.system]]
id = "VirtualBoy"
emulators = ["MAME (Virtual Boy)"]

[[emulators.emulator]]
name = "MAME (Virtual Boy)"
exe_path = "/usr/games/mame"
`

func TestNewEngineUsesConfig(t *testing.T) {
	t.Setenv(config.CfgEnv, "/etc/emuresolve/config.toml")

	h := helpers.NewMemoryFS()
	require.NoError(t, h.WriteConfig("/etc/emuresolve/config.toml", testConfig))
	require.NoError(t, h.WriteFile("/roms/vb/game.vb", make([]byte, 16)))
	fs := h.Fs

	cfg, err := config.NewConfig(fs, "/unused", config.BaseDefaults)
	require.NoError(t, err)

	exec := &mocks.MockCommandExecutor{}
	engine := NewEngine(cfg, exec, fs, "run-1", 1, true)

	out := engine.Resolve(context.Background(), resolver.Input{
		Path:     "/roms/vb/game.vb",
		Platform: systems.SystemVirtualBoy,
	})
	require.NoError(t, out.Err)
	assert.Equal(t, "MAME (Virtual Boy)", out.Emulator)
	require.Len(t, out.Spec.Commands, 1)
	assert.Equal(t, "/usr/games/mame", out.Spec.Commands[0].Exe)
	assert.Contains(t, out.Spec.Commands[0].Args, "vboy")
	assert.Contains(t, out.Spec.Commands[0].Args, "/roms/vb/game.vb")
	assert.Empty(t, exec.Calls)
}

func TestNewEngineWithoutOracle(t *testing.T) {
	t.Setenv(config.CfgEnv, "/etc/emuresolve/config.toml")

	fs := afero.NewMemMapFs()
	cfg, err := config.NewConfig(fs, "/unused", config.BaseDefaults)
	require.NoError(t, err)

	engine := NewEngine(cfg, &mocks.MockCommandExecutor{}, fs, "run-1", 2, false)
	outcomes, err := engine.ResolveBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestConfigDir(t *testing.T) {
	t.Parallel()
	assert.Contains(t, ConfigDir(), config.AppName)
}

func TestLaunchSingle(t *testing.T) {
	t.Parallel()

	exec := &mocks.MockCommandExecutor{}
	exec.On("Run", mock.Anything, command.Options{}, "mednafen", mock.Anything).Return(nil).Once()

	ok := resolver.Outcome{
		Path:     "/roms/vb/game.vb",
		Emulator: "Mednafen (Virtual Boy)",
		Spec:     launch.Single("mednafen", "-force_module", "vb", "/roms/vb/game.vb"),
	}
	require.NoError(t, LaunchSingle(context.Background(), exec, []resolver.Outcome{ok}))
	exec.AssertExpectations(t)

	err := LaunchSingle(context.Background(), exec, []resolver.Outcome{ok, ok})
	require.ErrorIs(t, err, ErrLaunchNeedsOneFile)

	failed := resolver.Outcome{Err: resolver.ErrNoCandidate}
	err = LaunchSingle(context.Background(), exec, []resolver.Outcome{failed})
	require.ErrorIs(t, err, resolver.ErrNoCandidate)
}
