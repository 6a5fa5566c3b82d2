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
	"os"
	"path"
	"slices"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
	"github.com/google/uuid"
)

// ExtractExe is the archiver used to unpack containers an emulator cannot
// read itself.
const ExtractExe = "7z"

// Materializer turns a spec with a placeholder into a runnable one.
type Materializer struct {
	// TempDir is the parent of extraction folders, os.TempDir() if empty.
	TempDir string
	newID   func() string
}

func (m Materializer) tempDir() string {
	if m.TempDir != "" {
		return m.TempDir
	}
	return os.TempDir()
}

func (m Materializer) id() string {
	if m.newID != nil {
		return m.newID()
	}
	return uuid.NewString()
}

// Materialize fills the placeholder of spec with the path of rom.
//
// When rom sits in a container that is not listed in compression, the
// command is wrapped into three steps: extract to a fresh folder, run
// with the placeholder pointing at the extracted entry, remove the folder.
// Nothing is run or written here.
func (m Materializer) Materialize(spec *Spec, rom romfile.ROM, compression []string) *Spec {
	if !rom.IsCompressed() || slices.Contains(compression, rom.OuterFormat()) {
		return spec.ReplacePath(rom.Path())
	}

	dir := path.Join(m.tempDir(), "emuresolve-"+m.id())
	extracted := path.Join(dir, rom.InnerPath())

	run := spec.ReplacePath(extracted)
	extract := NewCommand(ExtractExe, "x", "-o"+dir, rom.Path(), rom.InnerPath())
	cleanup := NewCommand("rm", "-rf", dir)

	out := run.Prepend(extract).Append(cleanup)
	out.KeepGoing = true
	return out
}

// Materialize uses a default Materializer.
func Materialize(spec *Spec, rom romfile.ROM, compression []string) *Spec {
	return Materializer{}.Materialize(spec, rom, compression)
}
