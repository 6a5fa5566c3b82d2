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

// Package resolver ties the header parsers and the emulator table together:
// for one file it produces the metadata and the launch spec of the first
// configured emulator that accepts it.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"runtime"
	"time"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/emulators"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/atari2600"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/n64"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

var ErrNoCandidate = errors.New("no emulator can run this file")

// Settings is the user configuration read by the engine. A nil or empty
// result means the platform or emulator default.
type Settings interface {
	Emulators(platform string) []string
	SystemOptions(platform string) map[string]any
	EmulatorOptions(name string) map[string]any
	EmulatorPath(name string) string
}

type defaultSettings struct{}

func (defaultSettings) Emulators(string) []string { return nil }
func (defaultSettings) SystemOptions(string) map[string]any { return nil }
func (defaultSettings) EmulatorOptions(string) map[string]any { return nil }
func (defaultSettings) EmulatorPath(string) string { return "" }

// Input is one file to resolve. Either ROM or Path must be set.
type Input struct {
	ROM      romfile.ROM
	Path     string
	Platform string
}

// Outcome is the result of resolving one file. Err is set when no launch
// spec could be produced. When every candidate rejected the file it wraps
// ErrNoCandidate and the last rejection.
type Outcome struct {
	Metadata  *metadata.Metadata
	Spec      *launch.Spec
	Rejection *emulators.Rejection
	Err       error
	Path      string
	Platform  string
	Emulator  string
}

func (o Outcome) OK() bool {
	return o.Err == nil && o.Spec != nil
}

type Engine struct {
	settings     Settings
	oracle       emulators.Oracle
	drivers      emulators.DriverFinder
	fs           afero.Fs
	n64db        *n64.Database
	stella       *atari2600.Stella
	lookup       func(name string) (*emulators.Candidate, error)
	materializer launch.Materializer
	homeDir      string
	runID        string
	workers      int
	maxEntrySize int64
}

type Option func(*Engine)

func WithSettings(s Settings) Option {
	return func(e *Engine) {
		e.settings = s
	}
}

// WithOracle sets the availability oracle shared by all resolutions.
func WithOracle(o emulators.Oracle) Option {
	return func(e *Engine) {
		e.oracle = o
	}
}

// WithDrivers sets the MAME driver discovery shared by all resolutions.
func WithDrivers(d emulators.DriverFinder) Option {
	return func(e *Engine) {
		e.drivers = d
	}
}

func WithFs(fs afero.Fs) Option {
	return func(e *Engine) {
		e.fs = fs
	}
}

func WithN64Database(db *n64.Database) Option {
	return func(e *Engine) {
		e.n64db = db
	}
}

// WithStella sets where the Atari 2600 database is loaded from.
func WithStella(s *atari2600.Stella) Option {
	return func(e *Engine) {
		e.stella = s
	}
}

// WithTempDir sets where archives are extracted for emulators that cannot
// read them.
func WithTempDir(dir string) Option {
	return func(e *Engine) {
		e.materializer.TempDir = dir
	}
}

func WithHomeDir(dir string) Option {
	return func(e *Engine) {
		e.homeDir = dir
	}
}

// WithWorkers bounds the number of files resolved at once by ResolveBatch.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithMaxEntrySize bounds how much of a zip or gzip entry is read into
// memory, romfile.DefaultMaxEntrySize if n is zero.
func WithMaxEntrySize(n int64) Option {
	return func(e *Engine) {
		e.maxEntrySize = n
	}
}

// WithRunID tags batch logs with id, a new id per batch if unset.
func WithRunID(id string) Option {
	return func(e *Engine) {
		e.runID = id
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		settings: defaultSettings{},
		fs:       afero.NewOsFs(),
		lookup:   emulators.Lookup,
		workers:  runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) open(in Input) (romfile.ROM, error) {
	if in.ROM != nil {
		return in.ROM, nil
	}
	rom, err := romfile.Open(e.fs, in.Path, romfile.WithMaxEntrySize(e.maxEntrySize))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", in.Path, err)
	}
	return rom, nil
}

func (e *Engine) systemOptions(system *systems.System) map[string]any {
	opts := system.DefaultOptions()
	maps.Copy(opts, e.settings.SystemOptions(system.ID))
	return opts
}

func (e *Engine) candidates(system *systems.System) []string {
	if names := e.settings.Emulators(system.ID); len(names) > 0 {
		return names
	}
	return system.Emulators
}

// Resolve extracts the metadata of one file and tries the configured
// emulators of its platform in order. The first one that accepts wins and
// its spec is returned with the game path filled in.
func (e *Engine) Resolve(ctx context.Context, in Input) Outcome {
	out := Outcome{Path: in.Path, Platform: in.Platform}

	system, err := systems.GetSystem(in.Platform)
	if err != nil {
		out.Err = fmt.Errorf("failed to resolve %s: %w", in.Path, err)
		return out
	}

	rom, err := e.open(in)
	if err != nil {
		out.Err = err
		return out
	}
	out.Path = rom.Path()

	media, _ := system.MediaType(rom.Extension())
	md := metadata.New(system.ID, media)
	out.Metadata = md

	rawOpts := e.systemOptions(system)
	if err := headers.Parse(ctx, system.ID, rom, md, headers.Options{
		N64Database: e.n64db,
		Stella:      e.stella,
		System:      rawOpts,
	}); err != nil {
		out.Err = err
		return out
	}

	sysOpts, err := emulators.DecodeSystemOptions(rawOpts)
	if err != nil {
		out.Err = fmt.Errorf("invalid options for %s: %w", system.ID, err)
		return out
	}

	var last *emulators.Rejection
	for _, name := range e.candidates(system) {
		if err := ctx.Err(); err != nil {
			out.Err = err
			return out
		}

		candidate, err := e.lookup(name)
		if err != nil {
			log.Warn().Err(err).Str("platform", system.ID).Msg("skipping emulator")
			continue
		}

		if !candidate.SupportsExtension(rom.Extension()) {
			last = &emulators.Rejection{
				Kind:   emulators.RejectUnsupportedExtension,
				Reason: fmt.Sprintf("%s does not support .%s files", name, rom.Extension()),
			}
			log.Debug().Str("emulator", name).Str("path", rom.Path()).
				Msg("extension not supported")
			continue
		}

		emuOpts, err := emulators.DecodeEmulatorOptions(e.settings.EmulatorOptions(name))
		if err != nil {
			out.Err = fmt.Errorf("invalid options for %s: %w", name, err)
			return out
		}

		res := candidate.Resolve(ctx, &emulators.Request{
			ROM:      rom,
			Metadata: md,
			Oracle:   e.oracle,
			Drivers:  e.drivers,
			Platform: system.ID,
			ExePath:  e.settings.EmulatorPath(name),
			HomeDir:  e.homeDir,
			System:   sysOpts,
			Emulator: emuOpts,
		})
		if !res.Accepted() {
			last = res.Rejection
			log.Debug().
				Str("emulator", name).
				Str("path", rom.Path()).
				Stringer("kind", last.Kind).
				Str("reason", last.Reason).
				Msg("emulator rejected file")
			continue
		}

		out.Emulator = name
		out.Spec = e.materializer.Materialize(res.Spec, rom, candidate.Compression)
		return out
	}

	out.Rejection = last
	if last != nil {
		out.Err = fmt.Errorf("%w: %w", ErrNoCandidate, last)
	} else {
		out.Err = ErrNoCandidate
	}
	log.Info().Str("platform", system.ID).Str("path", rom.Path()).
		Err(out.Err).Msg("no emulator found")
	return out
}

// ResolveBatch resolves inputs concurrently. Outcomes are returned in input
// order. Only cancellation of ctx is returned as an error, per-file failures
// are reported in the outcomes.
func (e *Engine) ResolveBatch(ctx context.Context, inputs []Input) ([]Outcome, error) {
	run := e.runID
	if run == "" {
		run = uuid.NewString()
	}
	start := time.Now()
	outcomes := make([]Outcome, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err //nolint:wrapcheck // context errors are returned as is
			}
			outcomes[i] = e.Resolve(gctx, in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s interrupted: %w", run, err)
	}

	resolved := 0
	for i := range outcomes {
		if outcomes[i].OK() {
			resolved++
		}
	}
	log.Info().
		Str("run", run).
		Int("files", len(inputs)).
		Int("resolved", resolved).
		Dur("took", time.Since(start)).
		Msg("batch resolved")
	return outcomes, nil
}
