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

package n64conf

import "fmt"

// ImageTooSmallError indicates an image below the minimum loadable
// size. This is the only fatal error in the pipeline: it aborts the
// transfer before any hashing begins.
type ImageTooSmallError struct {
	Size int64
}

func (e ImageTooSmallError) Error() string {
	return fmt.Sprintf("ROM image is %d bytes, must be at least %d", e.Size, ChunkSize)
}

// UnknownCICError indicates the bootcode checksum matched no known CIC.
// The transfer still completes; the core runs without authentication
// emulation and the caller should surface the condition to the user.
type UnknownCICError struct {
	Checksum uint64
}

func (e UnknownCICError) Error() string {
	return fmt.Sprintf("unknown CIC type: %016X", e.Checksum)
}

// UnknownCartridgeError indicates the cartridge ID matched no table
// entry and no exception, leaving the save type undetermined.
type UnknownCartridgeError struct {
	ID string
}

func (e UnknownCartridgeError) Error() string {
	return fmt.Sprintf("unknown cart ID: %s", e.ID)
}
