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
	"context"
	"errors"
	"fmt"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers/command"
	"github.com/rs/zerolog/log"
)

var ErrPlaceholder = errors.New("launch spec still holds the path placeholder")

// Run executes the commands of a materialized spec in order. A sequence
// stops at the first failing command unless KeepGoing is set, in which
// case every command runs and the first error is returned. If ctx is
// cancelled the remaining steps are skipped, except that a KeepGoing
// sequence still runs its last step so temporary files are removed.
func Run(ctx context.Context, exec command.Executor, spec *Spec) error {
	for _, c := range spec.Commands {
		if c.HasPlaceholder() {
			return ErrPlaceholder
		}
	}

	var first error
	for i, c := range spec.Commands {
		if err := ctx.Err(); err != nil {
			if spec.KeepGoing {
				teardown(ctx, exec, spec.Commands[len(spec.Commands)-1])
			}
			return err //nolint:wrapcheck // context errors are returned as is
		}

		log.Debug().Str("exe", c.Exe).Strs("args", c.Args).Int("step", i).Msg("running command")
		err := exec.Run(ctx, command.Options{Env: c.Env, Dir: c.Dir}, c.Exe, c.Args...)
		if err == nil {
			continue
		}

		err = fmt.Errorf("%s failed: %w", c.Exe, err)
		if !spec.KeepGoing {
			return err
		}
		log.Warn().Err(err).Int("step", i).Msg("command failed, continuing")
		if first == nil {
			first = err
		}
	}
	return first
}

func teardown(ctx context.Context, exec command.Executor, c Command) {
	log.Debug().Str("exe", c.Exe).Strs("args", c.Args).Msg("running teardown after cancellation")
	err := exec.Run(context.WithoutCancel(ctx), command.Options{Env: c.Env, Dir: c.Dir}, c.Exe, c.Args...)
	if err != nil {
		log.Warn().Err(err).Str("exe", c.Exe).Msg("teardown failed")
	}
}
