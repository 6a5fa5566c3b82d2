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
	"context"
	"strconv"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/launch"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/metadata"
)

// viceC64Carts are the CRT hardware types VICE knows about.
var viceC64Carts = newIntSet([]int{
	0, 1, 50, 35, 30, 9, 15, 34, 21, 24, 25, 26, 52, 17, 32, 10, 44, 13, 3,
	29, 45, 46, 7, 42, 39, 2, 51, 19, 14, 28, 38, 5, 43, 27, 12, 36, 23, 4,
	47, 31, 22, 48, 8, 40, 20, 16, 11, 18, 41, 49, 37, 6,
})

// viceTV picks ntsc or pal by TV system. Other TV systems leave VICE on
// its configured default.
func viceTV(md *metadata.Metadata, ntsc, pal []string) []string {
	switch md.TVSystem {
	case metadata.TVNTSC:
		return ntsc
	case metadata.TVPAL:
		return pal
	default:
		return nil
	}
}

func viceModel(md *metadata.Metadata, ntsc, pal string) []string {
	return viceTV(md, []string{"-model", ntsc}, []string{"-model", pal})
}

func viceC64(exe string) Builder {
	return func(_ context.Context, req *Request) Result {
		attrs := req.attrs()
		if req.Metadata.MediaType == metadata.MediaCartridge {
			cartType, ok := attrs.Int(metadata.KeyMapperNumber)
			if ok && cartType != 0 && !viceC64Carts.has(cartType) {
				return Reject(RejectUnsupportedMapper, "%s cart not supported", attrs.Text(metadata.KeyMapper))
			}
		}
		args := append([]string{"-VICIIfull"}, viceModel(req.Metadata, "ntsc", "pal")...)
		args = append(args, launch.PathPlaceholder)
		return Accept(launch.Single(req.exe(exe), args...))
	}
}

func viceC128(_ context.Context, req *Request) Result {
	args := append([]string{"-VDCfull"}, viceModel(req.Metadata, "ntsc", "pal")...)
	args = append(args, launch.PathPlaceholder)
	return Accept(launch.Single(req.exe("x128"), args...))
}

func vicePET(_ context.Context, req *Request) Result {
	attrs := req.attrs()
	args := append([]string{"-CRTCfull"}, viceTV(req.Metadata, []string{"-ntsc"}, []string{"-pal"})...)
	if machine := attrs.Text(metadata.KeyMachine); machine != "" {
		args = append(args, "-model", machine)
	}
	if ram, ok := attrs.Int(metadata.KeyMinimumRAM); ok {
		args = append(args, "-ramsize", strconv.Itoa(ram))
	}
	args = append(args, launch.PathPlaceholder)
	return Accept(launch.Single(req.exe("xpet"), args...))
}

func vicePlus4(_ context.Context, req *Request) Result {
	args := append([]string{"-TEDfull"}, viceModel(req.Metadata, "plus4ntsc", "plus4pal")...)
	args = append(args, launch.PathPlaceholder)
	return Accept(launch.Single(req.exe("xplus4"), args...))
}

func viceVIC20(_ context.Context, req *Request) Result {
	md := req.Metadata
	args := append([]string{"-VICfull"}, viceModel(md, "vic20ntsc", "vic20pal")...)
	if md.MediaType == metadata.MediaCartridge {
		if size := req.ROM.Size(); size > 8*1024+2 {
			return Reject(RejectUnsupportedHardware, "single-part >8K cart not supported: %d", size)
		}
		args = append(args, "-cartgeneric")
	}
	if md.Attributes.Text(metadata.KeyPeripheral) == "Paddle" {
		args = append(args, "-controlport1device", "2")
	}
	args = append(args, launch.PathPlaceholder)
	return Accept(launch.Single(req.exe("xvic"), args...))
}
