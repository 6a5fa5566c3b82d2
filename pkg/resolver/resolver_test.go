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

package resolver

import (
	"context"
	"crypto/md5" //nolint:gosec // md5 is the key Stella uses
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/emulators"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/atari2600"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/oracle"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/testing/helpers"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/testing/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testSettings struct {
	emulators map[string][]string
	system    map[string]map[string]any
	emulator  map[string]map[string]any
	paths     map[string]string
}

func (s testSettings) Emulators(platform string) []string {
	return s.emulators[platform]
}

func (s testSettings) SystemOptions(platform string) map[string]any {
	return s.system[platform]
}

func (s testSettings) EmulatorOptions(name string) map[string]any {
	return s.emulator[name]
}

func (s testSettings) EmulatorPath(name string) string {
	return s.paths[name]
}

// recorder builds fake candidates and remembers which ones were asked.
type recorder struct {
	candidates map[string]*emulators.Candidate
	called     []string
	mu         sync.Mutex
}

func newRecorder() *recorder {
	return &recorder{candidates: make(map[string]*emulators.Candidate)}
}

func (r *recorder) add(name string, accept bool, exts ...string) {
	r.candidates[name] = &emulators.Candidate{
		Name:       name,
		Extensions: exts,
		Command: emulators.Builder(func(_ context.Context, _ *emulators.Request) emulators.Result {
			r.mu.Lock()
			r.called = append(r.called, name)
			r.mu.Unlock()
			if accept {
				return emulators.Accept(launch.Single(strings.ToLower(name), launch.PathPlaceholder))
			}
			return emulators.Reject(emulators.RejectUnsupportedHardware, "%s says no", name)
		}),
	}
}

func (r *recorder) lookup(name string) (*emulators.Candidate, error) {
	c, ok := r.candidates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", emulators.ErrUnknownEmulator, name)
	}
	return c, nil
}

func newTestEngine(r *recorder, order []string, opts ...Option) *Engine {
	opts = append([]Option{WithSettings(testSettings{
		emulators: map[string][]string{systems.SystemVirtualBoy: order},
	})}, opts...)
	e := New(opts...)
	e.lookup = r.lookup
	return e
}

func vbInput(name string) Input {
	return Input{
		ROM:      romfile.NewMemory(name, make([]byte, 64)),
		Platform: systems.SystemVirtualBoy,
	}
}

func TestResolveFirstAcceptWins(t *testing.T) {
	t.Parallel()

	r := newRecorder()
	r.add("A", false, "vb")
	r.add("B", true, "vb")
	r.add("C", true, "vb")

	out := newTestEngine(r, []string{"A", "B", "C"}).Resolve(context.Background(), vbInput("/roms/game.vb"))
	require.NoError(t, out.Err)
	assert.True(t, out.OK())
	assert.Equal(t, "B", out.Emulator)
	assert.Equal(t, []string{"A", "B"}, r.called)
	require.Len(t, out.Spec.Commands, 1)
	assert.Equal(t, "b", out.Spec.Commands[0].Exe)
	assert.Equal(t, []string{"/roms/game.vb"}, out.Spec.Commands[0].Args)
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	r := newRecorder()
	r.add("A", false, "vb")
	r.add("B", false, "vb")
	r.add("C", true, "vb")
	r.add("D", true, "vb")
	e := newTestEngine(r, []string{"A", "B", "C"})

	for range 20 {
		r.mu.Lock()
		r.called = nil
		r.mu.Unlock()

		out := e.Resolve(context.Background(), vbInput("/roms/game.vb"))
		require.NoError(t, out.Err)
		assert.Equal(t, "C", out.Emulator)
		assert.Equal(t, []string{"A", "B", "C"}, r.called)
	}
}

type fixedDrivers map[string]string

func (f fixedDrivers) First(_ context.Context, group string, _ []string) (string, bool) {
	driver, ok := f[group]
	return driver, ok
}

func TestResolvePassesDriversToCandidates(t *testing.T) {
	t.Parallel()

	e := New(
		WithSettings(testSettings{
			emulators: map[string][]string{systems.SystemMSX: {"MAME (MSX1)"}},
		}),
		WithDrivers(fixedDrivers{"msx1": "hx10"}),
	)
	out := e.Resolve(context.Background(), Input{
		ROM:      romfile.NewMemory("/roms/msx/game.rom", make([]byte, 0x8000)),
		Platform: systems.SystemMSX,
	})
	require.NoError(t, out.Err)
	assert.Equal(t, "MAME (MSX1)", out.Emulator)
	require.Len(t, out.Spec.Commands, 1)
	assert.Contains(t, out.Spec.Commands[0].Args, "hx10")
}

func TestResolveEnrichesAtari2600FromStella(t *testing.T) {
	t.Parallel()

	image := make([]byte, 0x1000)
	sum := md5.Sum(image) //nolint:gosec // md5 is the key Stella uses
	exec := &mocks.MockCommandExecutor{}
	exec.On("Output", mock.Anything, atari2600.DefaultStellaExe, []string{"-listrominfo"}).
		Return([]byte("Cart_MD5|Cart_Name|Controller_Left|Display_Format\n"+
			hex.EncodeToString(sum[:])+"|Paddle Game|PADDLES|PAL\n"), nil).Once()

	e := New(
		WithSettings(testSettings{
			emulators: map[string][]string{systems.SystemAtari2600: {"MAME (Atari 2600)"}},
		}),
		WithStella(atari2600.NewStella(exec, "")),
	)
	out := e.Resolve(context.Background(), Input{
		ROM:      romfile.NewMemory("/roms/a2600/game.a26", image),
		Platform: systems.SystemAtari2600,
	})
	require.NoError(t, out.Err)
	assert.Equal(t, metadata.TVPAL, out.Metadata.TVSystem)
	assert.Equal(t, "Paddle Game", out.Metadata.Attributes.String(metadata.KeyInternalTitle))
	require.Len(t, out.Spec.Commands, 1)
	args := out.Spec.Commands[0].Args
	assert.Contains(t, args, "a2600p")
	assert.Contains(t, args, "pad")
	exec.AssertExpectations(t)
}

func TestResolveNoCandidateKeepsLastRejection(t *testing.T) {
	t.Parallel()

	r := newRecorder()
	r.add("A", false, "vb")
	r.add("B", false, "vb")

	out := newTestEngine(r, []string{"A", "B"}).Resolve(context.Background(), vbInput("/roms/game.vb"))
	require.ErrorIs(t, out.Err, ErrNoCandidate)
	assert.False(t, out.OK())
	assert.Nil(t, out.Spec)
	require.NotNil(t, out.Rejection)
	assert.Equal(t, "B says no", out.Rejection.Reason)

	var rej *emulators.Rejection
	require.ErrorAs(t, out.Err, &rej)
	assert.Equal(t, emulators.RejectUnsupportedHardware, rej.Kind)
}

func TestResolveSkipsUnsupportedExtension(t *testing.T) {
	t.Parallel()

	r := newRecorder()
	r.add("A", true, "bin")
	r.add("B", true, "vb")

	out := newTestEngine(r, []string{"A", "B"}).Resolve(context.Background(), vbInput("/roms/game.vb"))
	require.NoError(t, out.Err)
	assert.Equal(t, "B", out.Emulator)
	assert.Equal(t, []string{"B"}, r.called)
}

func TestResolveOnlyUnsupportedExtensions(t *testing.T) {
	t.Parallel()

	r := newRecorder()
	r.add("A", true, "bin")

	out := newTestEngine(r, []string{"A"}).Resolve(context.Background(), vbInput("/roms/game.vb"))
	require.ErrorIs(t, out.Err, ErrNoCandidate)
	require.NotNil(t, out.Rejection)
	assert.Equal(t, emulators.RejectUnsupportedExtension, out.Rejection.Kind)
	assert.Empty(t, r.called)
}

func TestResolveEmptyCandidateList(t *testing.T) {
	t.Parallel()

	r := newRecorder()
	e := New(WithSettings(testSettings{
		emulators: map[string][]string{systems.SystemVirtualBoy: {"missing"}},
	}))
	e.lookup = r.lookup

	out := e.Resolve(context.Background(), vbInput("/roms/game.vb"))
	require.ErrorIs(t, out.Err, ErrNoCandidate)
	assert.Nil(t, out.Rejection)
}

func TestResolveUnknownPlatform(t *testing.T) {
	t.Parallel()

	out := New().Resolve(context.Background(), Input{
		ROM:      romfile.NewMemory("game.xyz", nil),
		Platform: "NotAPlatform",
	})
	require.ErrorIs(t, out.Err, systems.ErrUnknownSystem)
}

func TestResolveCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := New().Resolve(ctx, vbInput("/roms/game.vb"))
	require.ErrorIs(t, out.Err, context.Canceled)
}

func TestResolveDefaultTable(t *testing.T) {
	t.Parallel()

	out := New().Resolve(context.Background(), vbInput("/roms/game.vb"))
	require.NoError(t, out.Err)
	assert.Equal(t, "Mednafen (Virtual Boy)", out.Emulator)
	assert.Equal(t, []launch.Command{{
		Exe:  "mednafen",
		Args: []string{"-video.fs", "1", "-force_module", "vb", "/roms/game.vb"},
	}}, out.Spec.Commands)
	assert.Equal(t, systems.SystemVirtualBoy, out.Metadata.Platform)
}

func TestResolveExePathOverride(t *testing.T) {
	t.Parallel()

	e := New(WithSettings(testSettings{
		paths: map[string]string{"Mednafen (Virtual Boy)": "/opt/mednafen/bin/mednafen"},
	}))
	out := e.Resolve(context.Background(), vbInput("/roms/game.vb"))
	require.NoError(t, out.Err)
	assert.Equal(t, "/opt/mednafen/bin/mednafen", out.Spec.Commands[0].Exe)
}

func TestResolveInvalidEmulatorOptions(t *testing.T) {
	t.Parallel()

	e := New(WithSettings(testSettings{
		emulator: map[string]map[string]any{"Mednafen (Virtual Boy)": {"not_an_option": true}},
	}))
	out := e.Resolve(context.Background(), vbInput("/roms/game.vb"))
	require.Error(t, out.Err)
	assert.NotErrorIs(t, out.Err, ErrNoCandidate)
	assert.Contains(t, out.Err.Error(), "Mednafen (Virtual Boy)")
}

func TestResolveExtractsUnsupportedArchive(t *testing.T) {
	t.Parallel()

	e := New(WithFs(afero.NewMemMapFs()), WithTempDir("/scratch"))
	out := e.Resolve(context.Background(), Input{
		Path:     "/roms/game.7z/game.vb",
		Platform: systems.SystemVirtualBoy,
	})
	require.NoError(t, out.Err)
	require.Len(t, out.Spec.Commands, 3)
	assert.True(t, out.Spec.KeepGoing)

	extract := out.Spec.Commands[0]
	assert.Equal(t, launch.ExtractExe, extract.Exe)
	require.Len(t, extract.Args, 4)
	dir := strings.TrimPrefix(extract.Args[1], "-o")
	assert.True(t, strings.HasPrefix(dir, "/scratch/emuresolve-"))

	run := out.Spec.Commands[1]
	assert.Equal(t, dir+"/game.vb", run.Args[len(run.Args)-1])

	cleanup := out.Spec.Commands[2]
	assert.Equal(t, []string{"-rf", dir}, cleanup.Args)
}

func TestResolveOpenFailure(t *testing.T) {
	t.Parallel()

	e := New(WithFs(afero.NewMemMapFs()))
	out := e.Resolve(context.Background(), Input{
		Path:     "/roms/missing.vb",
		Platform: systems.SystemVirtualBoy,
	})
	require.Error(t, out.Err)
	assert.Equal(t, "/roms/missing.vb", out.Path)
}

type countingQuerier struct {
	calls atomic.Int32
}

func (q *countingQuerier) Query(_ context.Context, _, _ string) (bool, error) {
	q.calls.Add(1)
	return true, nil
}

func TestResolveBatchSharesOracle(t *testing.T) {
	t.Parallel()

	q := &countingQuerier{}
	cache := oracle.NewCache(q)

	var asked atomic.Int32
	r := newRecorder()
	r.candidates["Addon"] = &emulators.Candidate{
		Name:       "Addon",
		Extensions: []string{"vb"},
		Command: emulators.Builder(func(ctx context.Context, req *emulators.Request) emulators.Result {
			asked.Add(1)
			if !req.Oracle.HasItem(ctx, "vboy", "addon") {
				return emulators.Reject(emulators.RejectMissingDependency, "no addon")
			}
			return emulators.Accept(launch.Single("addon", launch.PathPlaceholder))
		}),
	}

	e := newTestEngine(r, []string{"Addon"}, WithOracle(cache), WithWorkers(2))
	outcomes, err := e.ResolveBatch(context.Background(), []Input{
		vbInput("/roms/one.vb"),
		vbInput("/roms/two.vb"),
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "/roms/one.vb", outcomes[0].Spec.Commands[0].Args[0])
	assert.Equal(t, "/roms/two.vb", outcomes[1].Spec.Commands[0].Args[0])
	assert.Equal(t, int32(2), asked.Load())
	assert.Equal(t, int32(1), q.calls.Load())
}

func TestResolveBatchReportsPerFileFailures(t *testing.T) {
	t.Parallel()

	outcomes, err := New().ResolveBatch(context.Background(), []Input{
		vbInput("/roms/game.vb"),
		{ROM: romfile.NewMemory("game.xyz", nil), Platform: "NotAPlatform"},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].OK())
	assert.False(t, outcomes[1].OK())
}

func TestResolveBatchCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().ResolveBatch(ctx, []Input{vbInput("/roms/game.vb")})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrNoCandidate))
}

func TestResolveSupportedArchiveUsesArchivePath(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.WriteZip("/roms/vb/game.zip", map[string][]byte{"game.vb": make([]byte, 32)}))

	out := New(WithFs(h.Fs)).Resolve(context.Background(), Input{
		Path:     "/roms/vb/game.zip",
		Platform: systems.SystemVirtualBoy,
	})
	require.NoError(t, out.Err)
	require.Len(t, out.Spec.Commands, 1)
	assert.Equal(t, "/roms/vb/game.zip", out.Spec.Commands[0].Args[len(out.Spec.Commands[0].Args)-1])
}

func TestResolveOversizedArchiveEntry(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.WriteZip("/roms/vb/game.zip", map[string][]byte{"game.vb": make([]byte, 4096)}))

	out := New(WithFs(h.Fs), WithMaxEntrySize(1024)).Resolve(context.Background(), Input{
		Path:     "/roms/vb/game.zip",
		Platform: systems.SystemVirtualBoy,
	})
	require.ErrorIs(t, out.Err, romfile.ErrEntryTooLarge)
	assert.Nil(t, out.Spec)
}
