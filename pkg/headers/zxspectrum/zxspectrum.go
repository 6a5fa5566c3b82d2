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

// Package zxspectrum reads machine and joystick information from .z80
// snapshots and from the machine tags in file names.
package zxspectrum

import (
	"fmt"
	"regexp"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/headers/internal/bytewin"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
)

const HeaderSize = 86

type Joystick string

const (
	JoystickCursor        Joystick = "Cursor"
	JoystickKempton       Joystick = "Kempton"
	JoystickSinclairLeft  Joystick = "SinclairLeft"
	JoystickSinclairRight Joystick = "SinclairRight"
)

var joysticks = [4]Joystick{
	JoystickCursor, JoystickKempton, JoystickSinclairLeft, JoystickSinclairRight,
}

type Machine string

const (
	Machine16k               Machine = "16k"
	Machine48k               Machine = "48k"
	Machine128k              Machine = "128k"
	MachinePlus2             Machine = "+2"
	MachinePlus2A            Machine = "+2A"
	MachinePlus3             Machine = "+3"
	MachinePentagon          Machine = "Pentagon"
	MachineScorpion          Machine = "Scorpion"
	MachineDidaktikKompakt   Machine = "DidaktikKompakt"
	MachineTimexComputer2048 Machine = "TC2048"
	MachineTimexComputer2068 Machine = "TC2068"
	MachineTimexSinclair2068 Machine = "TS2068"
)

type Expansion string

const (
	ExpansionInterface1 Expansion = "Interface1"
	ExpansionInterface2 Expansion = "Interface2"
	ExpansionMGT        Expansion = "MGT"
	ExpansionSamRam     Expansion = "SamRam"
	ExpansionMultiface  Expansion = "Multiface"
	ExpansionKempton    Expansion = "Kempton"
	ExpansionOpus       Expansion = "Opus"
	ExpansionProtek     Expansion = "Protek"
	ExpansionTRBeta     Expansion = "TRBeta"
)

type hardware struct {
	machine   Machine
	expansion Expansion
}

// Hardware mode byte of v2/v3 snapshots. Modes 3 and 4 mean something
// else in v2, see Parse.
var hardwareModes = map[byte]hardware{
	0:  {machine: Machine48k},
	1:  {machine: Machine48k, expansion: ExpansionInterface1},
	2:  {machine: Machine48k, expansion: ExpansionSamRam},
	3:  {machine: Machine48k, expansion: ExpansionMGT},
	4:  {machine: Machine128k},
	5:  {machine: Machine128k, expansion: ExpansionInterface1},
	6:  {machine: Machine128k, expansion: ExpansionMGT},
	7:  {machine: MachinePlus3},
	9:  {machine: MachinePentagon},
	10: {machine: MachineScorpion},
	11: {machine: MachineDidaktikKompakt},
	12: {machine: MachinePlus2},
	13: {machine: MachinePlus2A},
	14: {machine: MachineTimexComputer2048},
	15: {machine: MachineTimexComputer2068},
	16: {machine: MachineTimexSinclair2068},
}

// modified is the machine a set modifier bit turns m into.
func modified(m Machine) Machine {
	switch m {
	case Machine48k:
		return Machine16k
	case Machine128k:
		return MachinePlus2
	case MachinePlus3:
		return MachinePlus2A
	default:
		return m
	}
}

// ParseZ80 fills md from the first 86 bytes of a .z80 snapshot.
func ParseZ80(header []byte, md *metadata.Metadata) {
	attrs := md.Attributes

	if flags, ok := bytewin.Byte(header, 29); ok {
		attrs.Set(metadata.KeyJoystickType, joysticks[(flags&0xC0)>>6])
	}

	pc, ok := bytewin.Uint16LE(header, 6)
	if !ok {
		return
	}

	hw := hardware{machine: Machine48k}
	version := 1
	if pc == 0 {
		length, _ := bytewin.Uint16LE(header, 30)
		version = 3
		if length == 23 {
			version = 2
		}

		mode, _ := bytewin.Byte(header, 34)
		hwFlags, _ := bytewin.Byte(header, 37)

		switch {
		case version == 2 && mode == 3:
			hw = hardware{machine: Machine128k}
		case version == 2 && mode == 4:
			hw = hardware{machine: Machine128k, expansion: ExpansionInterface1}
		default:
			if known, found := hardwareModes[mode]; found {
				hw = known
			}
		}

		if hwFlags&0x80 != 0 {
			hw.machine = modified(hw.machine)
		}
	}

	attrs.Set(metadata.KeyMachine, hw.machine)
	if hw.expansion != "" {
		attrs.Set(metadata.KeyExpansion, hw.expansion)
	}
	attrs.Set(metadata.KeyROMFormat, fmt.Sprintf("Z80 v%d", version))
}

var nameTag = regexp.MustCompile(`\((16K|48K|48K-128K|128K)\)`)

// MachineFromName returns the machine a No-Intro/TOSEC style tag in the
// file name asks for.
func MachineFromName(name string) (Machine, bool) {
	m := nameTag.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	switch m[1] {
	case "16K":
		return Machine16k, true
	case "48K":
		return Machine48k, true
	default:
		return Machine128k, true
	}
}

// ParseROM reads the snapshot header of .z80 files and falls back to the
// file name tags when the machine is still unknown.
func ParseROM(rom romfile.ROM, md *metadata.Metadata) error {
	if rom.Extension() == "z80" {
		header, err := rom.Read(0, HeaderSize)
		if err != nil {
			return fmt.Errorf("reading z80 header: %w", err)
		}
		ParseZ80(header, md)
	}
	if !md.Attributes.Has(metadata.KeyMachine) {
		if machine, ok := MachineFromName(rom.Name()); ok {
			md.Attributes.Set(metadata.KeyMachine, machine)
		}
	}
	return nil
}
