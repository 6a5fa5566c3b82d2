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

// Package cli holds the command line plumbing of emuresolve: flags,
// environment setup, folder scanning and output rendering.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ZaparooProject/zaparoo-emuresolve/internal/telemetry"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/config"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/atari2600"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/n64"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/oracle"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/resolver"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var ErrLaunchNeedsOneFile = errors.New("launch needs exactly one file")

type Flags struct {
	System   *string
	Format   *string
	Workers  *int
	Version  *bool
	Debug    *bool
	List     *bool
	NoOracle *bool
	Launch   *bool
}

// SetupFlags defines the emuresolve flags on the default flag set.
func SetupFlags() *Flags {
	return &Flags{
		System: flag.String(
			"system",
			"",
			"platform of every given file, default is the platform named by the parent folder",
		),
		Format: flag.String(
			"format",
			FormatShell,
			"output format: shell, json or yaml",
		),
		Workers: flag.Int(
			"workers",
			runtime.NumCPU(),
			"number of files resolved at once",
		),
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
		Debug: flag.Bool(
			"debug",
			false,
			"log every rejected emulator",
		),
		List: flag.Bool(
			"list",
			false,
			"print the known platforms and emulators and exit",
		),
		NoOracle: flag.Bool(
			"no-oracle",
			false,
			"do not ask MAME which software list items are installed",
		),
		Launch: flag.Bool(
			"launch",
			false,
			"run the resolved command of a single file instead of printing it",
		),
	}
}

// Pre parses flags and handles the ones that exit before any setup.
func (f *Flags) Pre(out io.Writer) {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Fprintf(out, "emuresolve v%s\n", config.AppVersion)
		os.Exit(0)
	}

	if *f.List {
		if err := WriteTable(out); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if !isFormat(*f.Format) {
		_, _ = fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", *f.Format)
		os.Exit(1)
	}
}

// ConfigDir is the folder holding config.toml when EMURESOLVE_CFG is unset.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+config.AppName)
	}
	return filepath.Join(dir, config.AppName)
}

// Setup initializes the user config and logging. Returns a user config object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(defaultConfig config.Values, writers []io.Writer, debug bool) (*config.Instance, error) {
	err := helpers.InitLogging("", writers)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.NewConfig(afero.NewOsFs(), ConfigDir(), defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if logDir := cfg.LogDir(); logDir != "" {
		err = helpers.InitLogging(logDir, writers)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logging: %w", err)
		}
	}

	if debug || cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return cfg, nil
}

// LaunchSingle runs the resolved command of the only outcome.
func LaunchSingle(ctx context.Context, exec command.Executor, outcomes []resolver.Outcome) error {
	if len(outcomes) != 1 {
		return fmt.Errorf("%w: got %d files", ErrLaunchNeedsOneFile, len(outcomes))
	}
	o := outcomes[0]
	if !o.OK() {
		return o.Err
	}
	log.Info().Str("path", o.Path).Str("emulator", o.Emulator).Msg("launching")
	return launch.Run(ctx, exec, o.Spec) //nolint:wrapcheck // already names the failing command
}

// InitTelemetry enables error reporting if the config opts in.
func InitTelemetry(cfg *config.Instance, runID string) {
	reporting, dsn := cfg.ErrorReporting()
	if err := telemetry.Init(reporting, dsn, config.AppVersion, runID); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}
}

// NewEngine builds a resolver from the user config. The N64 database is
// optional, the engine runs without it if none is found. Without the
// oracle no external program is queried, stella included.
func NewEngine(
	cfg *config.Instance,
	exec command.Executor,
	fs afero.Fs,
	runID string,
	workers int,
	useOracle bool,
) *resolver.Engine {
	opts := []resolver.Option{
		resolver.WithSettings(cfg),
		resolver.WithRunID(runID),
		resolver.WithFs(fs),
		resolver.WithWorkers(workers),
		resolver.WithTempDir(cfg.TempDir()),
		resolver.WithMaxEntrySize(cfg.MaxArchiveEntrySize()),
	}

	var dbPaths []string
	if p := cfg.Mupen64PlusDB(); p != "" {
		dbPaths = append(dbPaths, p)
	}
	db, err := n64.LoadDatabase(fs, dbPaths...)
	switch {
	case err == nil:
		opts = append(opts, resolver.WithN64Database(db))
	case errors.Is(err, n64.ErrDatabaseNotFound):
		log.Info().Msg("no mupen64plus database, N64 files are resolved from headers only")
	default:
		log.Warn().Err(err).Msg("failed to load mupen64plus database")
	}

	if useOracle {
		opts = append(opts,
			resolver.WithStella(atari2600.NewStella(exec, cfg.StellaExe())),
			resolver.WithOracle(oracle.NewCache(oracle.NewMAMESoftwareLists(exec, cfg.MAMEExe()))),
			resolver.WithDrivers(oracle.NewDrivers(oracle.NewMAMEDrivers(exec, cfg.MAMEExe()))),
		)
	}

	return resolver.New(opts...)
}
