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

// Package archive provides access to ROM images stored in ZIP, 7z and
// RAR containers and in gzip, tar.gz, xz and zstd compressed files.
package archive

import (
	"io"
	"path/filepath"
	"strings"
)

// FileInfo contains information about a file in a container.
type FileInfo struct {
	Name string // Full path within the container
	Size int64  // Uncompressed size
}

// Archive provides read access to files within a container.
type Archive interface {
	// List returns all files in the container.
	List() ([]FileInfo, error)

	// Open opens a file within the container for sequential reading.
	// Returns the reader and the uncompressed size.
	Open(internalPath string) (io.ReadCloser, int64, error)

	// Close closes the container.
	Close() error
}

// Open opens a container file based on its extension.
// Supported formats: .zip, .7z, .rar
func Open(path string) (Archive, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".zip":
		return OpenZIP(path)
	case ".7z":
		return OpenSevenZip(path)
	case ".rar":
		return OpenRAR(path)
	default:
		return nil, FormatError{Format: ext}
	}
}

// IsContainerExtension checks if an extension is a supported container
// format.
func IsContainerExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".zip", ".7z", ".rar":
		return true
	default:
		return false
	}
}
