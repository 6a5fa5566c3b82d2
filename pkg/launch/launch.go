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

// Package launch describes how to start an emulator: a single command or a
// sequence of commands run in order, with a path placeholder that is only
// filled in once the winning emulator is known.
package launch

import (
	"maps"
	"slices"
	"strings"
)

// PathPlaceholder marks the argument that receives the game path.
const PathPlaceholder = "$<path>"

type Command struct {
	Env  map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	Exe  string            `json:"exe" yaml:"exe"`
	Dir  string            `json:"dir,omitempty" yaml:"dir,omitempty"`
	Args []string          `json:"args,omitempty" yaml:"args,omitempty"`
}

// NewCommand returns a command without environment or working directory.
func NewCommand(exe string, args ...string) Command {
	return Command{Exe: exe, Args: args}
}

func (c Command) clone() Command {
	out := c
	out.Args = slices.Clone(c.Args)
	out.Env = maps.Clone(c.Env)
	return out
}

// HasPlaceholder reports whether any argument contains the placeholder.
func (c Command) HasPlaceholder() bool {
	for _, arg := range c.Args {
		if strings.Contains(arg, PathPlaceholder) {
			return true
		}
	}
	return false
}

// Spec is a launch specification. A Spec with one command is a plain
// command, more than one is a sequence.
type Spec struct {
	Commands []Command `json:"commands" yaml:"commands"`
	// KeepGoing joins sequence steps so that later steps run even when an
	// earlier one fails, used when the last step tears down a temporary
	// resource.
	KeepGoing bool `json:"keep_going,omitempty" yaml:"keep_going,omitempty"`
}

// Single returns a spec holding one command.
func Single(exe string, args ...string) *Spec {
	return &Spec{Commands: []Command{NewCommand(exe, args...)}}
}

// WithEnv returns a copy of s with env merged into its last command.
func (s *Spec) WithEnv(env map[string]string) *Spec {
	out := s.Clone()
	if len(out.Commands) == 0 || len(env) == 0 {
		return out
	}
	last := &out.Commands[len(out.Commands)-1]
	if last.Env == nil {
		last.Env = make(map[string]string, len(env))
	}
	maps.Copy(last.Env, env)
	return out
}

func (s *Spec) Clone() *Spec {
	out := &Spec{
		Commands:  make([]Command, len(s.Commands)),
		KeepGoing: s.KeepGoing,
	}
	for i, c := range s.Commands {
		out.Commands[i] = c.clone()
	}
	return out
}

func (s *Spec) IsSequence() bool {
	return len(s.Commands) > 1
}

// Main is the command that runs the game: the one holding the placeholder,
// or the last command if none does.
func (s *Spec) Main() *Command {
	for i := range s.Commands {
		if s.Commands[i].HasPlaceholder() {
			return &s.Commands[i]
		}
	}
	if len(s.Commands) == 0 {
		return nil
	}
	return &s.Commands[len(s.Commands)-1]
}

// ReplacePath returns a copy of s with every placeholder replaced by path.
func (s *Spec) ReplacePath(path string) *Spec {
	out := s.Clone()
	for i := range out.Commands {
		for j, arg := range out.Commands[i].Args {
			out.Commands[i].Args[j] = strings.ReplaceAll(arg, PathPlaceholder, path)
		}
	}
	return out
}

// Prepend returns a copy of s with cmds run before the existing commands.
func (s *Spec) Prepend(cmds ...Command) *Spec {
	out := s.Clone()
	out.Commands = append(slices.Clone(cmds), out.Commands...)
	return out
}

// Append returns a copy of s with cmds run after the existing commands.
func (s *Spec) Append(cmds ...Command) *Spec {
	out := s.Clone()
	out.Commands = append(out.Commands, cmds...)
	return out
}
