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

package oracle

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// DriverChecker reports whether the ROMs of a MAME driver are present.
type DriverChecker interface {
	Available(ctx context.Context, driver string) (bool, error)
}

// MAMEDrivers checks drivers with mame -verifyroms.
type MAMEDrivers struct {
	exec command.Executor
	exe  string
}

func NewMAMEDrivers(exec command.Executor, exe string) *MAMEDrivers {
	if exe == "" {
		exe = DefaultMAMEExe
	}
	return &MAMEDrivers{exec: exec, exe: exe}
}

// Available is true when mame -verifyroms exits zero for driver.
func (m *MAMEDrivers) Available(ctx context.Context, driver string) (bool, error) {
	_, err := m.exec.Output(ctx, m.exe, "-verifyroms", driver)
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, fmt.Errorf("failed to verify roms of %s: %w", driver, err)
}

// Drivers remembers, per group, the first driver of a preference list
// whose ROMs are present. A group with no usable driver is remembered as
// empty.
type Drivers struct {
	checker DriverChecker
	chosen  map[string]string
	group   singleflight.Group
	mu      syncutil.RWMutex
}

func NewDrivers(checker DriverChecker) *Drivers {
	return &Drivers{
		checker: checker,
		chosen:  make(map[string]string),
	}
}

func (d *Drivers) lookup(group string) (driver string, ok bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	driver, ok = d.chosen[group]
	return driver, ok
}

// First returns the first of drivers that is available. The answer is
// remembered under group, so the list is only checked once per Drivers.
// A lookup cut short by ctx is not remembered.
func (d *Drivers) First(ctx context.Context, group string, drivers []string) (string, bool) {
	if driver, ok := d.lookup(group); ok {
		return driver, driver != ""
	}

	v, _, _ := d.group.Do(group, func() (any, error) {
		if driver, ok := d.lookup(group); ok {
			return driver, nil
		}

		chosen := ""
		for _, driver := range drivers {
			ok, err := d.checker.Available(ctx, driver)
			if ctx.Err() != nil {
				return "", nil
			}
			if err != nil {
				log.Warn().Err(err).Str("driver", driver).Msg("driver check failed")
				continue
			}
			if ok {
				chosen = driver
				break
			}
		}
		log.Debug().Str("group", group).Str("driver", chosen).Msg("driver discovery")

		d.mu.Lock()
		d.chosen[group] = chosen
		d.mu.Unlock()
		return chosen, nil
	})
	driver, _ := v.(string)
	return driver, driver != ""
}

// Len returns the number of groups with a remembered answer.
func (d *Drivers) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.chosen)
}
