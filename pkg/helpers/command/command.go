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

// Package command wraps exec.Command so external tools can be mocked in
// tests.
package command

import (
	"context"
	"maps"
	"os"
	"os/exec"
	"slices"
)

// Options configures how a command is run.
type Options struct {
	// Env is added to the environment of the current process.
	Env map[string]string
	// Dir is the working directory, the current one if empty.
	Dir string
	// HideWindow prevents a console window from appearing (Windows-only).
	HideWindow bool
}

// Executor runs external commands.
type Executor interface {
	// Output runs a command and returns its standard output. Output is
	// returned even when the command exits non-zero.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Run executes a command with options and waits for it to complete.
	Run(ctx context.Context, opts Options, name string, args ...string) error
}

// RealExecutor runs commands with os/exec.
type RealExecutor struct{}

func newCmd(ctx context.Context, opts Options, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = os.Environ()
		for _, k := range slices.Sorted(maps.Keys(opts.Env)) {
			cmd.Env = append(cmd.Env, k+"="+opts.Env[k])
		}
	}
	configure(cmd, opts)
	return cmd
}

//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return newCmd(ctx, Options{}, name, args...).Output()
}

//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealExecutor) Run(ctx context.Context, opts Options, name string, args ...string) error {
	cmd := newCmd(ctx, opts, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
