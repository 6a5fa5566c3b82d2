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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZaparooProject/zaparoo-emuresolve/internal/telemetry"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/cli"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/config"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers/command"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		telemetry.Flush()
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags()
	flags.Pre(os.Stdout)

	cfg, err := cli.Setup(
		config.BaseDefaults,
		[]io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}},
		*flags.Debug,
	)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	cli.InitTelemetry(cfg, runID)
	defer telemetry.Close()

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	paths := flag.Args()
	if len(paths) == 0 {
		return errors.New("no files or folders given")
	}

	inputs, err := cli.Collect(paths, *flags.System)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exec := &command.RealExecutor{}
	engine := cli.NewEngine(
		cfg, exec, afero.NewOsFs(),
		runID, *flags.Workers, !*flags.NoOracle,
	)
	outcomes, err := engine.ResolveBatch(ctx, inputs)
	if err != nil {
		return fmt.Errorf("failed to resolve files: %w", err)
	}

	if *flags.Launch {
		return cli.LaunchSingle(ctx, exec, outcomes)
	}

	records := make([]cli.Record, len(outcomes))
	for i, o := range outcomes {
		records[i] = cli.NewRecord(runID, o)
	}
	return cli.Write(os.Stdout, *flags.Format, records)
}
