//go:build !windows

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

package command

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Executor = (*RealExecutor)(nil)

func TestRealExecutorOutput(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	t.Run("returns_stdout", func(t *testing.T) {
		t.Parallel()

		out, err := executor.Output(context.Background(), "echo", "romset", "a7800:hiscore")
		require.NoError(t, err)
		assert.Equal(t, "romset a7800:hiscore\n", string(out))
	})

	t.Run("returns_output_of_failed_command", func(t *testing.T) {
		t.Parallel()

		out, err := executor.Output(context.Background(), "sh", "-c", "echo partial; exit 2")
		require.Error(t, err)
		assert.Equal(t, "partial\n", string(out))
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		_, err := executor.Output(context.Background(), "nonexistent_command_that_should_not_exist_12345")
		require.Error(t, err)
	})
}

func TestRealExecutorRun(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	t.Run("applies_dir_and_env", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		err := executor.Run(context.Background(), Options{
			Dir: dir,
			Env: map[string]string{"EMURESOLVE_TEST": "value"},
		}, "sh", "-c", `printf %s "$EMURESOLVE_TEST" > out.txt`)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
		require.NoError(t, err)
		assert.Equal(t, "value", strings.TrimSpace(string(data)))
	})

	t.Run("returns_error_for_failed_command", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, executor.Run(context.Background(), Options{}, "false"))
	})

	t.Run("hide_window_is_ignored", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, executor.Run(context.Background(), Options{HideWindow: true}, "true"))
	})
}
