// Copyright (c) 2026 The Zaparoo Project.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-n64conf.
//
// go-n64conf is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-n64conf is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-n64conf.  If not, see <https://www.gnu.org/licenses/>.

// Package n64conf identifies Nintendo 64 ROM images and derives the
// hardware configuration an emulation core needs to boot them: timing
// standard, CIC revision, save type and controller peripherals.
//
// An image streams through the engine exactly once. Its byte ordering
// is normalized to big-endian on the fly, MD5 digests of the header and
// the full file are accumulated during the same pass, and the digests
// key a line-oriented settings database. Titles absent from every
// database fall back to a heuristic classifier driven by the cartridge
// ID, region code, revision and bootcode checksum, so unknown and
// homebrew titles still boot with sensible settings.
package n64conf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/go-n64conf/archive"
)

// LoadFile opens the image at path and runs it through LoadROM. The
// path may name a raw image, an image inside a ZIP/7z/RAR container
// (the first N64 payload is used), or a gzip/tar.gz/xz/zstd compressed
// image.
func (e *Engine) LoadFile(path string) (*LoadResult, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case archive.IsContainerExtension(ext):
		arc, err := archive.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open archive: %w", err)
		}
		defer func() { _ = arc.Close() }()

		entry, err := archive.FindROM(arc, path)
		if err != nil {
			return nil, err
		}

		reader, size, err := arc.Open(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("open ROM in archive: %w", err)
		}
		defer func() { _ = reader.Close() }()

		return e.LoadROM(reader, size)

	case archive.IsCompressedPath(path):
		data, _, err := archive.ReadCompressed(path)
		if err != nil {
			return nil, err
		}
		return e.LoadROM(bytes.NewReader(data), int64(len(data)))
	}

	file, err := os.Open(path) //nolint:gosec // Path from user input is expected
	if err != nil {
		return nil, fmt.Errorf("open ROM image: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat ROM image: %w", err)
	}

	return e.LoadROM(file, stat.Size())
}
