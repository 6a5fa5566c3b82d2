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

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/emulators"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/resolver"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
	"gopkg.in/yaml.v3"
)

const (
	FormatShell = "shell"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

func isFormat(s string) bool {
	return slices.Contains([]string{FormatShell, FormatJSON, FormatYAML}, s)
}

// Record is the printable result of one file.
type Record struct {
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Launch   *launch.Spec      `json:"launch,omitempty" yaml:"launch,omitempty"`
	Run      string            `json:"run" yaml:"run"`
	Path     string            `json:"path" yaml:"path"`
	Platform string            `json:"platform" yaml:"platform"`
	Emulator string            `json:"emulator,omitempty" yaml:"emulator,omitempty"`
	Command  string            `json:"command,omitempty" yaml:"command,omitempty"`
	Error    string            `json:"error,omitempty" yaml:"error,omitempty"`
}

func NewRecord(run string, o resolver.Outcome) Record {
	r := Record{
		Run:      run,
		Path:     o.Path,
		Platform: o.Platform,
		Emulator: o.Emulator,
		Launch:   o.Spec,
	}
	if o.Metadata != nil {
		r.Metadata = o.Metadata.Fields()
		r.Platform = o.Metadata.Platform
	}
	if o.Spec != nil {
		r.Command = o.Spec.CommandLine()
	}
	if o.Err != nil {
		r.Error = o.Err.Error()
	}
	return r
}

// Write renders records in format. Shell output is one commented block
// per file, failures are written as comments only.
func Write(w io.Writer, format string, records []Record) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return nil
	case FormatShell:
		var sb strings.Builder
		for _, r := range records {
			fmt.Fprintf(&sb, "# %s [%s]\n", r.Path, r.Platform)
			if r.Error != "" {
				fmt.Fprintf(&sb, "# %s\n\n", r.Error)
				continue
			}
			fmt.Fprintf(&sb, "# %s\n%s\n\n", r.Emulator, r.Command)
		}
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteTable prints every platform with its default emulator order.
func WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PLATFORM\tEMULATORS")
	for _, system := range systems.AllSystems() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", system.ID, strings.Join(system.Emulators, ", "))
	}
	_, _ = fmt.Fprintf(tw, "\n%d emulators known\n", len(emulators.Names()))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
