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

// Package romfile provides random access to the logical bytes of a game
// file, including files stored inside zip and gzip containers.
package romfile

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	FormatZip      = "zip"
	FormatSevenZip = "7z"
	FormatGzip     = "gz"
)

// DefaultMaxEntrySize bounds how much of a zip or gzip entry is
// decompressed into memory.
const DefaultMaxEntrySize int64 = 512 << 20

var (
	ErrUnsupportedArchive = errors.New("archive format cannot be read directly")
	ErrEmptyArchive       = errors.New("archive contains no files")
	ErrEntryTooLarge      = errors.New("archive entry is larger than the allowed size")
)

type openConfig struct {
	maxEntrySize int64
}

type OpenOption func(*openConfig)

// WithMaxEntrySize sets the largest archive entry Open decompresses. Zero
// or less keeps the default.
func WithMaxEntrySize(n int64) OpenOption {
	return func(c *openConfig) {
		if n > 0 {
			c.maxEntrySize = n
		}
	}
}

// readLimited reads r to the end, failing once more than limit bytes
// come out of it.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by callers
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrEntryTooLarge, limit)
	}
	return data, nil
}

// ROM is the read-only view of a file used by header parsers and command
// builders. Implementations are immutable for the duration of a resolution.
type ROM interface {
	// Read returns up to length bytes starting at offset. Reads past the
	// end are clamped to the available bytes, a negative length reads to
	// the end of the file.
	Read(offset int64, length int) ([]byte, error)
	Size() int64
	// Extension is the lowercase extension of the logical file, without
	// the dot. For archives this is the extension of the inner entry.
	Extension() string
	IsCompressed() bool
	// OuterFormat is the container format (zip, 7z, gz) or empty.
	OuterFormat() string
	// Path is the path of the file on disk, the archive for compressed files.
	Path() string
	// InnerPath is the entry name inside the archive, empty when not compressed.
	InnerPath() string
	// Name is the logical file name without directory or extension.
	Name() string
}

// File is the afero backed ROM implementation.
type File struct {
	fs    afero.Fs
	path  string
	inner string
	outer string
	ext   string
	data  []byte
	size  int64
	// loaded is set once data holds the full logical contents.
	loaded bool
}

// IsCompressedExtension reports whether ext (without dot) is a container
// format this package recognises.
func IsCompressedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case FormatZip, FormatSevenZip, FormatGzip:
		return true
	default:
		return false
	}
}

func extensionOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// splitArchivePath splits paths of the form "games/foo.zip/foo.nes" into
// the archive path and inner entry name.
func splitArchivePath(path string) (archive, inner string) {
	lower := strings.ToLower(filepath.ToSlash(path))
	for _, format := range []string{FormatZip, FormatSevenZip, FormatGzip} {
		marker := "." + format + "/"
		if idx := strings.Index(lower, marker); idx >= 0 {
			cut := idx + len(marker) - 1
			return path[:cut], path[cut+1:]
		}
	}
	return path, ""
}

// Open opens a game file on fs. Archive paths may name an inner entry
// explicitly ("foo.zip/foo.nes"); otherwise the first file entry of the
// archive is used.
func Open(fs afero.Fs, path string, opts ...OpenOption) (*File, error) {
	cfg := openConfig{maxEntrySize: DefaultMaxEntrySize}
	for _, opt := range opts {
		opt(&cfg)
	}

	archive, inner := splitArchivePath(path)
	outerExt := extensionOf(archive)

	f := &File{
		fs:   fs,
		path: archive,
	}

	if !IsCompressedExtension(outerExt) {
		info, err := fs.Stat(archive)
		if err != nil {
			return nil, fmt.Errorf("failed to stat rom: %w", err)
		}
		f.ext = outerExt
		f.size = info.Size()
		return f, nil
	}

	f.outer = outerExt
	f.inner = inner

	switch outerExt {
	case FormatZip:
		if err := f.openZip(cfg.maxEntrySize); err != nil {
			return nil, err
		}
	case FormatGzip:
		if err := f.openGzip(cfg.maxEntrySize); err != nil {
			return nil, err
		}
	case FormatSevenZip:
		if f.inner == "" {
			return nil, fmt.Errorf("%w: %s needs an explicit inner path", ErrUnsupportedArchive, archive)
		}
		f.size = -1
	}

	f.ext = extensionOf(f.inner)
	return f, nil
}

func (f *File) openZip(limit int64) error {
	file, err := f.fs.Open(f.path)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close archive")
		}
	}()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat archive: %w", err)
	}

	zr, err := zip.NewReader(file, info.Size())
	if err != nil {
		return fmt.Errorf("failed to read zip archive: %w", err)
	}

	var entry *zip.File
	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		if f.inner != "" {
			if zf.Name == f.inner {
				entry = zf
				break
			}
			continue
		}
		if entry != nil {
			log.Debug().Str("archive", f.path).
				Msg("archive has more than one file, using the first")
			break
		}
		entry = zf
	}
	if entry == nil {
		if f.inner != "" {
			return fmt.Errorf("entry %s not found in %s", f.inner, f.path)
		}
		return fmt.Errorf("%w: %s", ErrEmptyArchive, f.path)
	}

	if entry.UncompressedSize64 > uint64(limit) {
		return fmt.Errorf("%w: %s is %d bytes", ErrEntryTooLarge, entry.Name, entry.UncompressedSize64)
	}

	rc, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open zip entry: %w", err)
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close zip entry")
		}
	}()

	data, err := readLimited(rc, limit)
	if err != nil {
		return fmt.Errorf("failed to read zip entry %s: %w", entry.Name, err)
	}

	f.inner = entry.Name
	f.data = data
	f.size = int64(len(data))
	f.loaded = true
	return nil
}

func (f *File) openGzip(limit int64) error {
	file, err := f.fs.Open(f.path)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close archive")
		}
	}()

	zr, err := gzip.NewReader(file)
	if err != nil {
		return fmt.Errorf("failed to read gzip archive: %w", err)
	}
	data, err := readLimited(zr, limit)
	if err != nil {
		return fmt.Errorf("failed to decompress gzip archive: %w", err)
	}

	if f.inner == "" {
		f.inner = zr.Name
	}
	if f.inner == "" {
		f.inner = strings.TrimSuffix(filepath.Base(f.path), filepath.Ext(f.path))
	}
	f.data = data
	f.size = int64(len(data))
	f.loaded = true
	return nil
}

// NewMemory wraps an in-memory file. The name's extension decides the
// logical extension.
func NewMemory(name string, data []byte) *File {
	return &File{
		path:   name,
		ext:    extensionOf(name),
		data:   data,
		size:   int64(len(data)),
		loaded: true,
	}
}

func (f *File) Read(offset int64, length int) ([]byte, error) {
	if offset < 0 {
		return nil, fmt.Errorf("negative offset: %d", offset)
	}

	if f.loaded {
		return clampSlice(f.data, offset, length), nil
	}

	if f.outer == FormatSevenZip {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArchive, f.path)
	}

	if offset >= f.size {
		return []byte{}, nil
	}
	if length < 0 || offset+int64(length) > f.size {
		length = int(f.size - offset)
	}

	file, err := f.fs.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rom: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close rom")
		}
	}()

	buf := make([]byte, length)
	n, err := file.ReadAt(buf, offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read rom: %w", err)
	}
	return buf[:n], nil
}

func clampSlice(data []byte, offset int64, length int) []byte {
	size := int64(len(data))
	if offset >= size {
		return []byte{}
	}
	end := size
	if length >= 0 && offset+int64(length) < size {
		end = offset + int64(length)
	}
	return bytes.Clone(data[offset:end])
}

// ReadAll returns the whole logical file.
func (f *File) ReadAll() ([]byte, error) {
	return f.Read(0, -1)
}

func (f *File) Size() int64 {
	return f.size
}

func (f *File) Extension() string {
	return f.ext
}

func (f *File) IsCompressed() bool {
	return f.outer != ""
}

func (f *File) OuterFormat() string {
	return f.outer
}

func (f *File) Path() string {
	return f.path
}

func (f *File) InnerPath() string {
	return f.inner
}

func (f *File) Name() string {
	base := filepath.Base(f.path)
	if f.inner != "" {
		base = filepath.Base(f.inner)
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
