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

// Package binary provides byte-slice helpers for ROM header fields.
package binary

import (
	"encoding/binary"
	"strings"
)

// CleanString converts bytes to a string, trimming at the first null
// byte and stripping surrounding whitespace.
func CleanString(b []byte) string {
	end := len(b)
	for i, c := range b {
		if c == 0 {
			end = i
			break
		}
	}
	return strings.TrimSpace(string(b[:end]))
}

// SumUint32LE sums b as consecutive little-endian uint32 words into a
// uint64, wrapping on overflow. Any trailing bytes short of a full word
// are ignored. The wraparound semantics are part of the bootcode
// checksum format and must not be widened or saturated.
func SumUint32LE(b []byte) uint64 {
	var sum uint64
	for i := 0; i+4 <= len(b); i += 4 {
		sum += uint64(binary.LittleEndian.Uint32(b[i:]))
	}
	return sum
}
