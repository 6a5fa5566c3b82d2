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

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(platform, name string, size int, media metadata.MediaType) *Request {
	return &Request{
		ROM:      romfile.NewMemory(name, make([]byte, size)),
		Metadata: metadata.New(platform, media),
		Platform: platform,
		Emulator: DefaultEmulatorOptions(),
	}
}

func mustResolve(t *testing.T, name string, req *Request) *launch.Spec {
	t.Helper()
	cand, err := Lookup(name)
	require.NoError(t, err)
	res := cand.Resolve(context.Background(), req)
	require.Nil(t, res.Rejection, "unexpected rejection")
	require.NotNil(t, res.Spec)
	return res.Spec
}

func mustReject(t *testing.T, name string, req *Request, kind RejectionKind) *Rejection {
	t.Helper()
	cand, err := Lookup(name)
	require.NoError(t, err)
	res := cand.Resolve(context.Background(), req)
	require.NotNil(t, res.Rejection, "expected a rejection")
	assert.Nil(t, res.Spec)
	assert.Equal(t, kind, res.Rejection.Kind, res.Rejection.Reason)
	return res.Rejection
}

func TestSystemEmulatorsAreRegistered(t *testing.T) {
	t.Parallel()

	for id, system := range systems.Systems {
		for _, name := range system.Emulators {
			_, err := Lookup(name)
			assert.NoError(t, err, "%s lists %s", id, name)
		}
	}
}

func TestCandidatesHaveValidProperties(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		c := Candidates[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, name, c.Name)
			assert.NotNil(t, c.Command)
			assert.NotEmpty(t, c.Extensions)
			for _, format := range c.Compression {
				assert.True(t, romfile.IsCompressedExtension(format), format)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	_, err := Lookup("Nestopia")
	require.ErrorIs(t, err, ErrUnknownEmulator)
	assert.Contains(t, err.Error(), "Nestopia")
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	names := Names()
	assert.IsNonDecreasing(t, names)
	assert.Len(t, names, len(Candidates))
}

func TestSupportsExtensionIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	c, err := Lookup("Snes9x")
	require.NoError(t, err)
	assert.True(t, c.SupportsExtension("SFC"))
	assert.False(t, c.SupportsExtension("nes"))
	assert.True(t, c.SupportsCompression("GZ"))
	assert.False(t, c.SupportsCompression("7z"))
}

func TestStaticArgsDoNotShareSlices(t *testing.T) {
	t.Parallel()

	req := newRequest(systems.SystemAtari2600, "game.a26", 0x1000, metadata.MediaCartridge)
	first := mustResolve(t, "Stella", req)
	first.Commands[0].Args[0] = "changed"

	second := mustResolve(t, "Stella", req)
	assert.Equal(t, []string{"-fullscreen", "1", launch.PathPlaceholder}, second.Commands[0].Args)
}

func TestExePathOverride(t *testing.T) {
	t.Parallel()

	req := newRequest(systems.SystemPSP, "game.iso", 16, metadata.MediaOpticalDisc)
	req.ExePath = "/opt/ppsspp/PPSSPPSDL"
	spec := mustResolve(t, "PPSSPP", req)
	assert.Equal(t, "/opt/ppsspp/PPSSPPSDL", spec.Commands[0].Exe)
}

func TestResolveFillsMissingMetadata(t *testing.T) {
	t.Parallel()

	req := &Request{ROM: romfile.NewMemory("game.z64", nil), Platform: systems.SystemNintendo64}
	spec := mustResolve(t, "Mupen64Plus", req)
	require.NotNil(t, req.Metadata)
	assert.Equal(t, systems.SystemNintendo64, req.Metadata.Platform)
	assert.Equal(t, []string{"--nosaveoptions", "--fullscreen", launch.PathPlaceholder}, spec.Commands[0].Args)
}

func TestResolveEmptyBuilder(t *testing.T) {
	t.Parallel()

	c := &Candidate{
		Name: "Broken",
		Command: Builder(func(context.Context, *Request) Result {
			return Result{}
		}),
	}
	res := c.Resolve(context.Background(), newRequest("NES", "a.nes", 16, metadata.MediaCartridge))
	require.NotNil(t, res.Rejection)
	assert.False(t, res.Accepted())
	assert.Equal(t, RejectUnsupported, res.Rejection.Kind)
}

func TestRejectionError(t *testing.T) {
	t.Parallel()

	res := Reject(RejectUnsupportedMapper, "unsupported mapper: %d", 29)
	assert.EqualError(t, res.Rejection, "unsupported mapper: unsupported mapper: 29")
	assert.Equal(t, "RejectionKind(99)", RejectionKind(99).String())
}
