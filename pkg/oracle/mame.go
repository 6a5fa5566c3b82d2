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
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers/command"
)

const DefaultMAMEExe = "mame"

// MAMESoftwareLists queries MAME for verified software list entries.
type MAMESoftwareLists struct {
	exec command.Executor
	exe  string
}

func NewMAMESoftwareLists(exec command.Executor, exe string) *MAMESoftwareLists {
	if exe == "" {
		exe = DefaultMAMEExe
	}
	return &MAMESoftwareLists{exec: exec, exe: exe}
}

// Query runs mame -verifysoftlist for list and looks for item among the
// entries MAME reports as usable.
func (m *MAMESoftwareLists) Query(ctx context.Context, list, item string) (bool, error) {
	out, err := m.exec.Output(ctx, m.exe, "-verifysoftlist", list)
	// MAME exits non-zero when any entry of the list is missing, which is
	// the usual case, so the output is still parsed.
	if len(out) == 0 && err != nil {
		return false, fmt.Errorf("failed to verify software list %s: %w", list, err)
	}
	for _, name := range parseVerified(out) {
		if name == item {
			return true, nil
		}
	}
	return false, nil
}

// parseVerified returns the entry names of lines such as
// "romset a7800:hiscore is good".
func parseVerified(out []byte) []string {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasSuffix(line, " is good") && !strings.HasSuffix(line, " is best available") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		_, name, ok := strings.Cut(fields[1], ":")
		if !ok || name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
