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

// Package telemetry provides opt-in error reporting via Sentry. Usernames
// and ROM file names are stripped before transmission, the emulator and
// platform of a failed resolution are sent as tags.
package telemetry

import (
	"fmt"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/systems"
	"github.com/getsentry/sentry-go"
	sentryzerolog "github.com/getsentry/sentry-go/zerolog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const flushTimeout = 2 * time.Second

var (
	enabled      bool
	sentryWriter *sentryzerolog.Writer
	closeOnce    sync.Once

	homePathRe    = regexp.MustCompile(`(?i)/home/[^/]+/`)
	usersPathRe   = regexp.MustCompile(`(?i)/Users/[^/]+/`)
	windowsUserRe = regexp.MustCompile(`(?i)[a-zA-Z]:\\Users\\[^\\]+\\`)
)

// Init initializes Sentry error reporting with zerolog integration.
// Telemetry stays disabled unless reporting is enabled and a DSN is set.
func Init(reportingEnabled bool, dsn, appVersion, runID string) error {
	if !reportingEnabled || dsn == "" {
		log.Debug().Msg("error reporting disabled")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          "emuresolve@" + appVersion,
		AttachStacktrace: true,
		// Privacy: explicitly disable PII collection
		SendDefaultPII: false,
		ServerName:     "",
		MaxBreadcrumbs: 0,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return sanitizeEvent(event)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize sentry: %w", err)
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("run", runID)
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
	})

	sentryWriter, err = sentryzerolog.NewWithHub(sentry.CurrentHub(), sentryzerolog.Options{
		Levels:          []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel},
		FlushTimeout:    flushTimeout,
		WithBreadcrumbs: false,
	})
	if err != nil {
		return fmt.Errorf("failed to create sentry zerolog writer: %w", err)
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(
		helpers.LogWriter(),
		sentryWriter,
	)).With().Timestamp().Caller().Logger()

	enabled = true
	log.Info().Msg("error reporting enabled")
	return nil
}

// Close flushes pending events and shuts down Sentry.
// Safe to call multiple times.
func Close() {
	if !enabled {
		return
	}
	closeOnce.Do(func() {
		_ = sentryWriter.Close()
		sentry.Flush(flushTimeout)
	})
}

// Flush ensures all pending events are sent to Sentry.
// Call this before os.Exit to ensure error events are transmitted.
func Flush() {
	if !enabled {
		return
	}
	sentry.Flush(flushTimeout)
}

func Enabled() bool {
	return enabled
}

// Log fields that name what was being resolved. They are moved to tags so
// events group by emulator and platform.
var tagFields = []string{"emulator", "platform", "system", "kind"}

var romNameRe = sync.OnceValue(func() *regexp.Regexp {
	exts := []string{"zip", "7z", "gz"}
	for _, system := range systems.Systems {
		for _, list := range system.FileTypes {
			exts = append(exts, list...)
		}
	}
	slices.Sort(exts)
	exts = slices.Compact(exts)
	for i, ext := range exts {
		exts[i] = regexp.QuoteMeta(ext)
	}
	return regexp.MustCompile(`(?i)([/\\])[^/\\]*?\.(` + strings.Join(exts, "|") + `)\b`)
})

// sanitizeEvent strips usernames and ROM file names before an event
// leaves the machine. Stack frames only hold source paths, so they keep
// their file names.
func sanitizeEvent(event *sentry.Event) *sentry.Event {
	// SDK may populate the hostname despite ServerName: ""
	event.ServerName = ""

	for i := range event.Exception {
		ex := &event.Exception[i]
		ex.Value = scrub(ex.Value)
		if ex.Stacktrace == nil {
			continue
		}
		for j := range ex.Stacktrace.Frames {
			frame := &ex.Stacktrace.Frames[j]
			frame.AbsPath = scrubUser(frame.AbsPath)
			frame.Filename = scrubUser(frame.Filename)
		}
	}

	event.Message = scrub(event.Message)

	for k, v := range event.Extra {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if slices.Contains(tagFields, k) {
			if event.Tags == nil {
				event.Tags = make(map[string]string)
			}
			event.Tags[k] = s
			delete(event.Extra, k)
			continue
		}
		event.Extra[k] = scrub(s)
	}

	return event
}

func scrub(s string) string {
	return scrubROMNames(scrubUser(s))
}

// scrubUser removes usernames from file paths.
func scrubUser(path string) string {
	if path == "" {
		return path
	}

	result := homePathRe.ReplaceAllString(path, "/home/<user>/")
	result = usersPathRe.ReplaceAllString(result, "/Users/<user>/")
	result = windowsUserRe.ReplaceAllString(result, "C:\\Users\\<user>\\")

	return result
}

// scrubROMNames replaces the name of every ROM or archive file in s with
// <rom>, keeping the directory and extension.
func scrubROMNames(s string) string {
	if s == "" {
		return s
	}
	return romNameRe().ReplaceAllString(s, "${1}<rom>.${2}")
}
