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

package archive

import (
	"fmt"
	"path/filepath"
	"strings"
)

// romExtensions are the N64 image extensions recognized inside a
// container, covering all three byte orderings plus 64DD images.
var romExtensions = map[string]bool{
	".z64": true,
	".v64": true,
	".n64": true,
	".ndd": true,
}

// IsROMFile checks if a filename has a recognized N64 image extension.
func IsROMFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return romExtensions[ext]
}

// FindROM finds the first N64 image in a container. It scans the file
// list and returns the first entry with a recognized extension. path
// only labels the error on a miss.
func FindROM(arc Archive, path string) (FileInfo, error) {
	files, err := arc.List()
	if err != nil {
		return FileInfo{}, fmt.Errorf("list archive files: %w", err)
	}

	for _, file := range files {
		if IsROMFile(file.Name) {
			return file, nil
		}
	}

	return FileInfo{}, NoROMError{Archive: path}
}
