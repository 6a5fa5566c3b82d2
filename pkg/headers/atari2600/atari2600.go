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

// Package atari2600 enriches Atari 2600 ROMs from the Stella properties
// database. The cartridge has no header, so everything is looked up by
// the MD5 of the whole image.
package atari2600

import (
	"bytes"
	"context"
	"crypto/md5" //nolint:gosec // md5 is the key Stella uses
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers/syncutil"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/romfile"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

const DefaultStellaExe = "stella"

var ErrEmptyDatabase = errors.New("stella database is empty")

// Controller is what is plugged into a joystick port.
type Controller string

const (
	ControllerNothing            Controller = "Nothing"
	ControllerJoystick           Controller = "Joystick"
	ControllerPaddle             Controller = "Paddle"
	ControllerMouse              Controller = "Mouse"
	ControllerTrackball          Controller = "Trackball"
	ControllerKeyboardController Controller = "KeyboardController"
	ControllerCompumate          Controller = "Compumate"
	ControllerMegadriveGamepad   Controller = "MegadriveGamepad"
	ControllerBoostergrip        Controller = "Boostergrip"
	ControllerDrivingController  Controller = "DrivingController"
	ControllerMindlink           Controller = "Mindlink"
	ControllerLightGun           Controller = "LightGun"
	ControllerAtariVox           Controller = "AtariVox"
	ControllerSaveKey            Controller = "SaveKey"
	ControllerKidVid             Controller = "KidVid"
	ControllerOther              Controller = "Other"
)

var stellaControllers = map[string]Controller{
	"JOYSTICK":      ControllerJoystick,
	"AUTO":          ControllerJoystick,
	"PADDLES":       ControllerPaddle,
	"PADDLES_IAXIS": ControllerPaddle,
	"PADDLES_IAXDR": ControllerPaddle,
	"AMIGAMOUSE":    ControllerMouse,
	"ATARIMOUSE":    ControllerMouse,
	"TRAKBALL":      ControllerTrackball,
	"KEYBOARD":      ControllerKeyboardController,
	"COMPUMATE":     ControllerCompumate,
	"GENESIS":       ControllerMegadriveGamepad,
	"BOOSTERGRIP":   ControllerBoostergrip,
	"DRIVING":       ControllerDrivingController,
	"MINDLINK":      ControllerMindlink,
	"ATARIVOX":      ControllerAtariVox,
	"SAVEKEY":       ControllerSaveKey,
	"KIDVID":        ControllerKidVid,
}

func controllerFromStella(name string) (Controller, bool) {
	if name == "" {
		return "", false
	}
	if c, ok := stellaControllers[name]; ok {
		return c, true
	}
	return ControllerOther, true
}

type ports struct {
	left, right Controller
	swap        bool
}

// Notes that describe the controllers better than the controller columns.
var notePorts = map[string]ports{
	"Uses Joystick (left) and Keypad (right) Controllers": {left: ControllerJoystick, right: ControllerKeyboardController},
	"Uses Mindlink Controller (left only)":                {left: ControllerMindlink, right: ControllerNothing},
	"Uses the Keypad Controllers (left only)":             {left: ControllerKeyboardController, right: ControllerNothing},
	"Uses Keypad Controller":                              {left: ControllerKeyboardController, right: ControllerNothing},
	"Uses the Paddle Controllers (left only)":             {left: ControllerPaddle, right: ControllerNothing},
	"Uses the Light Gun Controller (left only)":           {left: ControllerLightGun, right: ControllerNothing},
	"Uses right joystick controller":                      {left: ControllerNothing, right: ControllerJoystick},
	"Uses the KidVid Controller":                          {left: ControllerJoystick, right: ControllerKidVid},
	"Uses the Kid Vid Controller":                         {left: ControllerJoystick, right: ControllerKidVid},
	"Uses the Driving Controllers":                        {left: ControllerDrivingController, right: ControllerDrivingController},
	"Uses the Keypad Controllers":                         {left: ControllerKeyboardController, right: ControllerKeyboardController},
	"Uses Keypad Controllers":                             {left: ControllerKeyboardController, right: ControllerKeyboardController},
	"Uses the paddle controllers":                         {left: ControllerPaddle, right: ControllerPaddle},
	"Uses the Paddle Controllers":                         {left: ControllerPaddle, right: ControllerPaddle},
	"Uses the Joystick Controllers (swapped)":             {left: ControllerJoystick, right: ControllerJoystick, swap: true},
	"Uses the Paddle Controllers (swapped)":               {left: ControllerPaddle, right: ControllerPaddle, swap: true},
}

// Entry is one row of stella -listrominfo. Older Stella versions prefix
// the cartridge columns with Cartridge_ instead of Cart_, ParseDatabase
// accepts both.
type Entry struct {
	MD5             string `csv:"Cart_MD5"`
	Name            string `csv:"Cart_Name"`
	Manufacturer    string `csv:"Cart_Manufacturer"`
	ModelNo         string `csv:"Cart_ModelNo"`
	Note            string `csv:"Cart_Note"`
	Rarity          string `csv:"Cart_Rarity"`
	Type            string `csv:"Cart_Type"`
	LeftController  string `csv:"Controller_Left"`
	RightController string `csv:"Controller_Right"`
	SwapPorts       string `csv:"Controller_SwapPorts"`
	SwapPaddles     string `csv:"Controller_SwapPaddles"`
	DisplayFormat   string `csv:"Display_Format"`
}

// Database is the Stella properties database keyed by lowercase MD5.
type Database struct {
	entries map[string]Entry
}

// ParseDatabase parses the pipe separated output of stella -listrominfo.
// The first line names the columns.
func ParseDatabase(data []byte) (*Database, error) {
	header, rest, _ := bytes.Cut(data, []byte("\n"))
	header = bytes.ReplaceAll(header, []byte("Cartridge_"), []byte("Cart_"))
	if len(bytes.TrimSpace(header)) == 0 {
		return nil, ErrEmptyDatabase
	}

	r := csv.NewReader(bytes.NewReader(append(append(header, '\n'), rest...)))
	r.Comma = '|'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	rows := make([]Entry, 0)
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, fmt.Errorf("parsing stella database: %w", err)
	}

	entries := make(map[string]Entry, len(rows))
	for _, row := range rows {
		if row.MD5 == "" {
			continue
		}
		entries[strings.ToLower(row.MD5)] = row
	}
	return &Database{entries: entries}, nil
}

func (db *Database) Lookup(md5 string) (Entry, bool) {
	e, ok := db.entries[strings.ToLower(md5)]
	return e, ok
}

func (db *Database) Len() int {
	return len(db.entries)
}

// Stella loads the database from the stella executable on first use.
// Running stella is slow, so a failed load is remembered too.
type Stella struct {
	exec   command.Executor
	db     *Database
	exe    string
	mu     syncutil.Mutex
	loaded bool
}

func NewStella(exec command.Executor, exe string) *Stella {
	if exe == "" {
		exe = DefaultStellaExe
	}
	return &Stella{exec: exec, exe: exe}
}

// Database returns the loaded database, or nil if stella could not
// provide one. A load cut short by ctx is retried on the next call.
func (s *Stella) Database(ctx context.Context) *Database {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.db
	}

	out, err := s.exec.Output(ctx, s.exe, "-listrominfo")
	if ctx.Err() != nil {
		return nil
	}
	s.loaded = true
	if err != nil {
		log.Info().Err(err).Str("exe", s.exe).Msg("no stella database, Atari 2600 files are resolved without it")
		return nil
	}
	db, err := ParseDatabase(out)
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse stella database")
		return nil
	}
	log.Info().Int("entries", db.Len()).Msg("loaded stella database")
	s.db = db
	return db
}

func applyNote(attrs metadata.Attributes, note string) {
	if name, ok := strings.CutPrefix(note, "AKA "); ok {
		attrs.Set(metadata.KeyAlternateName, name)
		return
	}
	if note == "Console ports are swapped" {
		attrs.Set(metadata.KeySwapPorts, true)
		return
	}
	p, ok := notePorts[note]
	if !ok {
		attrs.Set(metadata.KeyNotes, note)
		return
	}
	attrs.Set(metadata.KeyLeftPeripheral, p.left)
	attrs.Set(metadata.KeyRightPeripheral, p.right)
	if p.swap {
		attrs.Set(metadata.KeySwapPorts, true)
	}
}

// ApplyEntry copies what Stella knows about the ROM into md.
func ApplyEntry(md *metadata.Metadata, e Entry) {
	attrs := md.Attributes
	if e.Name != "" {
		attrs.Set(metadata.KeyInternalTitle, e.Name)
	}
	if e.Manufacturer != "" {
		publisher, developer, ok := strings.Cut(e.Manufacturer, ", ")
		attrs.Set(metadata.KeyPublisher, publisher)
		if ok {
			attrs.Set(metadata.KeyDeveloper, developer)
		}
	}
	if e.ModelNo != "" {
		attrs.Set(metadata.KeyProductCode, e.ModelNo)
	}

	// PAL60 and friends run at 60Hz, which is what matters to emulators.
	switch e.DisplayFormat {
	case "NTSC", "PAL60", "SECAM60":
		md.TVSystem = metadata.TVNTSC
	case "PAL", "SECAM", "NTSC50":
		md.TVSystem = metadata.TVPAL
	}

	if c, ok := controllerFromStella(e.LeftController); ok {
		attrs.Set(metadata.KeyLeftPeripheral, c)
	}
	if c, ok := controllerFromStella(e.RightController); ok {
		attrs.Set(metadata.KeyRightPeripheral, c)
	}
	if e.SwapPorts == "YES" || e.SwapPaddles == "YES" {
		attrs.Set(metadata.KeySwapPorts, true)
	}
	// AR is the Supercharger bankswitching scheme.
	attrs.Set(metadata.KeyUsesSupercharger, e.Type == "AR")

	if e.Note != "" {
		applyNote(attrs, e.Note)
	}
}

func applyPeripherals(attrs metadata.Attributes) {
	right, _ := metadata.Get[Controller](attrs, metadata.KeyRightPeripheral)
	switch right {
	case ControllerAtariVox, ControllerSaveKey:
		attrs.Set(metadata.KeySaveType, metadata.SaveMemoryCard)
		attrs.Set(metadata.KeyUsesSaveKey, true)
	case ControllerKidVid:
		attrs.Set(metadata.KeySaveType, metadata.SaveNothing)
		attrs.Set(metadata.KeyUsesKidVid, true)
	default:
		attrs.Set(metadata.KeySaveType, metadata.SaveNothing)
	}
}

// ParseROM looks rom up in the Stella database. Without stella, or for
// a ROM Stella does not know, md is left untouched.
func ParseROM(ctx context.Context, rom romfile.ROM, md *metadata.Metadata, stella *Stella) error {
	if stella == nil {
		return nil
	}
	db := stella.Database(ctx)
	if db == nil {
		return nil
	}

	data, err := rom.Read(0, -1)
	if err != nil {
		return fmt.Errorf("failed to read cartridge: %w", err)
	}
	sum := md5.Sum(data) //nolint:gosec // md5 is the key Stella uses
	entry, ok := db.Lookup(hex.EncodeToString(sum[:]))
	if !ok {
		return nil
	}
	ApplyEntry(md, entry)
	applyPeripherals(md.Attributes)
	return nil
}
