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

import "encoding/binary"

// RomFormat is the physical byte ordering of a ROM image as delivered.
// It is detected once from the image's first word and drives the
// per-chunk normalization for the rest of the transfer.
type RomFormat int

// Known ROM image orderings.
const (
	FormatUnknown RomFormat = iota
	FormatBigEndian           // .z64, the canonical layout
	FormatByteSwapped         // .v64, 16-bit lanes swapped
	FormatLittleEndian        // .n64, 32-bit lanes reversed
)

func (f RomFormat) String() string {
	switch f {
	case FormatBigEndian:
		return "big-endian"
	case FormatByteSwapped:
		return "byte-swapped"
	case FormatLittleEndian:
		return "little-endian"
	}
	return "unknown"
}

// First-word magic values, read as a little-endian uint32. For each
// ordering the first value is a regular cartridge image, the second a
// 64DD system image.
const (
	magicBigEndian      = 0x40123780
	magicBigEndian64DD  = 0x40072780
	magicByteSwapped    = 0x12408037
	magicByteSwapped64DD = 0x07408027
	magicLittleEndian    = 0x80371240
	magicLittleEndian64DD = 0x80270740
)

// DetectFormat classifies the byte ordering of a ROM image from its
// first 4 bytes. The caller must hand it at least one aligned word of
// image data; the transfer loop guarantees a full first chunk.
func DetectFormat(data []byte) RomFormat {
	if len(data) < 4 {
		return FormatUnknown
	}

	switch binary.LittleEndian.Uint32(data) {
	case magicBigEndian, magicBigEndian64DD:
		return FormatBigEndian
	case magicByteSwapped, magicByteSwapped64DD:
		return FormatByteSwapped
	case magicLittleEndian, magicLittleEndian64DD:
		return FormatLittleEndian
	}

	return FormatUnknown
}

// Normalize transforms data in place from the given ordering to the
// canonical big-endian layout. It may be called once per chunk across a
// chunked stream provided every chunk boundary falls on a multiple of 4
// bytes; the fixed transfer chunk size guarantees this. Big-endian and
// unknown data are left untouched.
func Normalize(data []byte, format RomFormat) {
	switch format {
	case FormatByteSwapped:
		for i := 0; i+1 < len(data); i += 2 {
			data[i], data[i+1] = data[i+1], data[i]
		}
	case FormatLittleEndian:
		for i := 0; i+3 < len(data); i += 4 {
			data[i], data[i+1], data[i+2], data[i+3] = data[i+3], data[i+2], data[i+1], data[i]
		}
	}
}
