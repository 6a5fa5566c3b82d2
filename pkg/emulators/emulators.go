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

// Package emulators is the table of emulators a file can be launched with.
// Every candidate decides for itself, from the file's metadata and the
// user's options, whether it can run a file and with which command line.
package emulators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
)

var ErrUnknownEmulator = errors.New("unknown emulator")

// RejectionKind classifies why a candidate cannot run a file.
type RejectionKind int

const (
	RejectUnsupported RejectionKind = iota
	RejectUnsupportedMapper
	RejectUnsupportedHardware
	RejectMediaTypeMismatch
	RejectMissingDependency
	RejectHeaderMalformed
	RejectUnsupportedExtension
	// RejectNotARom means the file is not a game at all, e.g. update data.
	RejectNotARom
)

var rejectionNames = map[RejectionKind]string{
	RejectUnsupported:          "unsupported",
	RejectUnsupportedMapper:    "unsupported mapper",
	RejectUnsupportedHardware:  "unsupported hardware",
	RejectMediaTypeMismatch:    "media type mismatch",
	RejectMissingDependency:    "missing dependency",
	RejectHeaderMalformed:      "header malformed",
	RejectUnsupportedExtension: "unsupported extension",
	RejectNotARom:              "not a rom",
}

func (k RejectionKind) String() string {
	if name, ok := rejectionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("RejectionKind(%d)", int(k))
}

// Rejection is the expected outcome of a candidate that cannot run a file.
// It is an error so the last one can be wrapped into the final result.
type Rejection struct {
	Reason string
	Kind   RejectionKind
}

func (r *Rejection) Error() string {
	return r.Kind.String() + ": " + r.Reason
}

// Result is either an accepted launch spec or a rejection, never both.
type Result struct {
	Spec      *launch.Spec
	Rejection *Rejection
}

func Accept(spec *launch.Spec) Result {
	return Result{Spec: spec}
}

func Reject(kind RejectionKind, format string, args ...any) Result {
	return Result{Rejection: &Rejection{
		Kind:   kind,
		Reason: fmt.Sprintf(format, args...),
	}}
}

func (r Result) Accepted() bool {
	return r.Rejection == nil && r.Spec != nil
}

// Oracle answers whether auxiliary software is installed, for example a
// MAME software list entry.
type Oracle interface {
	HasItem(ctx context.Context, list, item string) bool
}

// DriverFinder picks the first usable MAME driver from a preference list,
// remembering the choice under group.
type DriverFinder interface {
	First(ctx context.Context, group string, drivers []string) (string, bool)
}

// Request is everything a candidate may look at while deciding.
type Request struct {
	ROM      romfile.ROM
	Metadata *metadata.Metadata
	// Oracle may be nil, in which case no auxiliary software is available.
	Oracle Oracle
	// Drivers may be nil, in which case the first listed driver is used.
	Drivers DriverFinder
	// Platform is the system ID the file was scanned under.
	Platform string
	// ExePath overrides the candidate's default executable.
	ExePath string
	// HomeDir is used for emulators that keep their files in the user's
	// home, os.UserHomeDir() if empty.
	HomeDir  string
	System   SystemOptions
	Emulator EmulatorOptions
}

func (r *Request) exe(fallback string) string {
	if r.ExePath != "" {
		return r.ExePath
	}
	return fallback
}

func (r *Request) attrs() metadata.Attributes {
	return r.Metadata.Attributes
}

func (r *Request) platform() string {
	if r.Platform != "" {
		return r.Platform
	}
	return r.Metadata.Platform
}

func (r *Request) hasSoftware(ctx context.Context, list, item string) bool {
	if r.Oracle == nil {
		return false
	}
	return r.Oracle.HasItem(ctx, list, item)
}

func (r *Request) firstDriver(ctx context.Context, group string, drivers []string) (string, bool) {
	if r.Drivers == nil {
		if len(drivers) == 0 {
			return "", false
		}
		return drivers[0], true
	}
	return r.Drivers.First(ctx, group, drivers)
}

// CommandSource produces the launch spec of a candidate. It is either
// StaticArgs, which always accepts, or a Builder.
type CommandSource interface {
	build(ctx context.Context, req *Request) Result
}

// StaticArgs is a fixed command line.
type StaticArgs struct {
	Env  map[string]string
	Exe  string
	Args []string
}

func (s StaticArgs) build(_ context.Context, req *Request) Result {
	spec := launch.Single(req.exe(s.Exe), slices.Clone(s.Args)...)
	return Accept(spec.WithEnv(s.Env))
}

// Builder inspects the request and either builds a command or rejects.
type Builder func(ctx context.Context, req *Request) Result

func (b Builder) build(ctx context.Context, req *Request) Result {
	return b(ctx, req)
}

// Candidate is one emulator that can be configured for a platform.
type Candidate struct {
	Command     CommandSource
	Name        string
	Extensions  []string
	Compression []string
}

func (c *Candidate) SupportsExtension(ext string) bool {
	return slices.Contains(c.Extensions, strings.ToLower(ext))
}

func (c *Candidate) SupportsCompression(format string) bool {
	return slices.Contains(c.Compression, strings.ToLower(format))
}

// Resolve decides whether the candidate can run the requested file. The
// returned spec still holds the path placeholder.
func (c *Candidate) Resolve(ctx context.Context, req *Request) Result {
	if req.Metadata == nil {
		req.Metadata = metadata.New(req.Platform, metadata.MediaUnknown)
	}
	res := c.Command.build(ctx, req)
	if res.Rejection == nil && res.Spec == nil {
		return Reject(RejectUnsupported, "%s produced no command", c.Name)
	}
	return res
}
