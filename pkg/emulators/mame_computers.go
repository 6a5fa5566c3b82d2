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

package emulators

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
)

// Preference order of MSX drivers. English machines come first, the
// first one whose ROMs are present is used.
var (
	mameMSX1Drivers     = []string{"svi738", "hb75p", "hb501p", "cf3300", "fs4000", "hx10"}
	mameMSX2Drivers     = []string{"fsa1wsx", "hbf1xdj", "fsa1fx", "hbf700p", "nms8250"}
	mameMSX2PlusDrivers = []string{"fsa1wsx", "hbf1xv", "fsa1fx", "phc70fd2"}
)

// appleIIMachines maps Machine values to drivers, in preference order.
// The base Apple II does not autoboot and the Apple III and IIgs are not
// compatible, so they are absent.
var appleIIMachines = []struct {
	machine string
	driver  string
}{
	{"Apple IIe", "apple2e"},
	{"Apple IIc", "apple2c"},
	{"Apple IIc Plus", "apple2cp"},
	{"Enhanced Apple IIe", "apple2ee"},
	{"Apple II Plus", "apple2p"},
}

func mameMSX(group string, drivers []string) Builder {
	return func(ctx context.Context, req *Request) Result {
		var opts []slotOption
		var slot string
		switch req.Metadata.MediaType {
		case metadata.MediaFloppy:
			// 720KB disks need the double density drive.
			opts = []slotOption{{"fdc:0", "35dd"}}
			slot = "flop1"
		case metadata.MediaCartridge:
			slot = "cart1"
		default:
			return Reject(RejectNotARom, "media type %s unsupported", req.Metadata.MediaType)
		}

		driver, ok := req.firstDriver(ctx, group, drivers)
		if !ok {
			return Reject(RejectMissingDependency, "no %s driver available", strings.ToUpper(group))
		}
		return mameDriver(req, driver, slot, opts, true)
	}
}

func mameAmigaCD32(_ context.Context, req *Request) Result {
	driver := "cd32"
	if req.Metadata.TVSystem == metadata.TVNTSC {
		driver = "cd32n"
	}
	return mameDriver(req, driver, "cdrom", nil, false)
}

func mameAmstradPCW(_ context.Context, req *Request) Result {
	if req.attrs().Bool(metadata.KeyRequiresCPM) {
		return Reject(RejectMissingDependency, "requires CP/M")
	}
	return mameDriver(req, "pcw10", "flop", nil, true)
}

func mameAppleII(_ context.Context, req *Request) Result {
	opts := []slotOption{{"gameio", "joy"}}
	if req.attrs().Bool(metadata.KeyUsesMouse) {
		opts = append(opts, slotOption{"sl4", "mouse"})
	}

	driver := "apple2e"
	if machines := req.attrs().Strings(metadata.KeyMachine); len(machines) > 0 {
		driver = ""
		for _, m := range appleIIMachines {
			if slices.Contains(machines, m.machine) {
				driver = m.driver
				break
			}
		}
		if driver == "" {
			return Reject(RejectUnsupportedHardware, "no supported machine in %s", strings.Join(machines, ", "))
		}
	}
	return mameDriver(req, driver, "flop1", opts, true)
}

func mameAtariJaguar(_ context.Context, req *Request) Result {
	switch req.Metadata.MediaType {
	case metadata.MediaCartridge:
		return mameDriver(req, "jaguar", "cart", nil, false)
	case metadata.MediaExecutable:
		return mameDriver(req, "jaguar", "quik", nil, false)
	default:
		return Reject(RejectNotARom, "media type %s unsupported", req.Metadata.MediaType)
	}
}

func mameColecoAdam(_ context.Context, req *Request) Result {
	switch req.Metadata.MediaType {
	case metadata.MediaFloppy:
		return mameDriver(req, "adam", "flop1", nil, true)
	case metadata.MediaTape:
		return mameDriver(req, "adam", "cass1", []slotOption{{"net4", ""}, {"net5", ""}}, true)
	default:
		return Reject(RejectNotARom, "media type %s unsupported", req.Metadata.MediaType)
	}
}

func mameFMTowns(driver, ramSize string) Builder {
	return func(_ context.Context, req *Request) Result {
		opts := []slotOption{{"ramsize", ramSize}}
		switch req.Metadata.MediaType {
		case metadata.MediaFloppy:
			return mameDriver(req, driver, "flop1", opts, false)
		case metadata.MediaOpticalDisc:
			return mameDriver(req, driver, "cdrom", opts, false)
		default:
			return Reject(RejectNotARom, "media type %s unsupported", req.Metadata.MediaType)
		}
	}
}

func mameIBMPCjr(_ context.Context, req *Request) Result {
	switch req.Metadata.MediaType {
	case metadata.MediaCartridge:
		return mameDriver(req, "ibmpcjr", "cart1", nil, true)
	case metadata.MediaFloppy:
		return mameDriver(req, "ibmpcjr", "flop", nil, true)
	default:
		return Reject(RejectNotARom, "media type %s unsupported", req.Metadata.MediaType)
	}
}

func mameMicrobee(_ context.Context, req *Request) Result {
	switch req.Metadata.MediaType {
	case metadata.MediaExecutable:
		return mameDriver(req, "mbeepc", "quik1", nil, true)
	case metadata.MediaFloppy:
		// mbee128 is the floppy model that boots reliably.
		return mameDriver(req, "mbee128", "flop1", nil, true)
	default:
		return Reject(RejectUnsupported, "media type %s unsupported", req.Metadata.MediaType)
	}
}

func mameSegaPico(_ context.Context, req *Request) Result {
	driver := regionVariant{
		usa: "picou", japan: "picoj", europe: "pico", unknown: "picoj",
		fallback: "picoj", pal: "pico",
	}.pick(req.Metadata)
	return mameDriver(req, driver, "cart", nil, false)
}

func mameSordM5(_ context.Context, req *Request) Result {
	driver := "m5"
	if isPAL(req.Metadata) {
		driver = "m5p"
	}
	return mameDriver(req, driver, "cart1", nil, true)
}

// m3uEntries returns the non-comment lines of an m3u playlist, relative
// entries resolved against the playlist's directory.
func m3uEntries(req *Request) ([]string, error) {
	data, err := req.ROM.Read(0, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to read playlist: %w", err)
	}
	dir := filepath.Dir(req.ROM.Path())
	var entries []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(dir, line)
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playlist: %w", err)
	}
	return entries, nil
}

func mameSharpX68000(_ context.Context, req *Request) Result {
	if req.ROM.Extension() != "m3u" {
		return mameDriver(req, "x68000", "flop1", nil, true)
	}
	disks, err := m3uEntries(req)
	if err != nil {
		return Reject(RejectHeaderMalformed, "%v", err)
	}
	if len(disks) == 0 {
		return Reject(RejectNotARom, "playlist has no entries")
	}
	opts := make([]slotOption, 0, len(disks))
	for i, disk := range disks {
		opts = append(opts, slotOption{fmt.Sprintf("flop%d", i+1), disk})
	}
	return mameDriver(req, "x68000", "", opts, true)
}
