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
	"maps"
	"slices"
	"strings"
)

func shellSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("@%+=:,./-_", r)
}

// Quote quotes s for a POSIX shell. Strings made only of safe characters
// are returned unchanged.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsFunc(s, func(r rune) bool { return !shellSafe(r) }) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// CommandLine renders c as a shell command. Environment variables are
// set through env(1).
func (c Command) CommandLine() string {
	parts := make([]string, 0, len(c.Args)+len(c.Env)+2)
	if len(c.Env) > 0 {
		parts = append(parts, "env")
		for _, k := range slices.Sorted(maps.Keys(c.Env)) {
			parts = append(parts, Quote(k+"="+c.Env[k]))
		}
	}
	if c.Exe != "" {
		parts = append(parts, Quote(c.Exe))
	}
	for _, arg := range c.Args {
		parts = append(parts, Quote(arg))
	}
	line := strings.Join(parts, " ")
	if c.Dir != "" {
		line = "cd " + Quote(c.Dir) + " && " + line
	}
	return line
}

// CommandLine renders s as a single shell command. Sequences are wrapped
// in sh -c.
func (s *Spec) CommandLine() string {
	if len(s.Commands) == 1 && s.Commands[0].Dir == "" {
		return s.Commands[0].CommandLine()
	}
	sep := " && "
	if s.KeepGoing {
		sep = "; "
	}
	lines := make([]string, len(s.Commands))
	for i, c := range s.Commands {
		lines[i] = c.CommandLine()
	}
	return "sh -c " + Quote(strings.Join(lines, sep))
}
