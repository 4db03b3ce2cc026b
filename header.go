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

import (
	"github.com/ZaparooProject/go-n64conf/internal/binary"
)

// ROM header offsets, valid on a normalized (big-endian) image.
const (
	internalNameOffset = 0x20
	internalNameSize   = 20 // 0x20-0x34
	cartIDOffset       = 0x3b
	cartIDSize         = 3
	regionCodeOffset   = 0x3e
	revisionOffset     = 0x3f

	bootcodeStart = 0x40
	bootcodeEnd   = 0x1000
)

// ChunkSize is the fixed transfer chunk size. The first chunk covers
// the full header plus bootcode, so identity extraction and the
// bootcode checksum only ever need chunk zero.
const ChunkSize = 4096

// CartridgeIdentity is the 3-character product code, region code and
// revision read from fixed header offsets. It keys the heuristic
// classifier when no database has the image.
type CartridgeIdentity struct {
	ID         string
	RegionCode byte
	Revision   uint8
}

// parseIdentity extracts the cartridge identity from a normalized first
// chunk.
func parseIdentity(chunk []byte) CartridgeIdentity {
	return CartridgeIdentity{
		ID:         string(chunk[cartIDOffset : cartIDOffset+cartIDSize]),
		RegionCode: chunk[regionCodeOffset],
		Revision:   chunk[revisionOffset],
	}
}

// internalName extracts the 20-byte title embedded in the header.
func internalName(chunk []byte) string {
	return binary.CleanString(chunk[internalNameOffset : internalNameOffset+internalNameSize])
}

// bootcodeChecksum computes the running word sum over the IPL3 bootcode
// region (0x40-0x1000) of a normalized first chunk. The words are read
// little-endian to match the checksum table, which was built from reads
// on a little-endian host.
func bootcodeChecksum(chunk []byte) uint64 {
	return binary.SumUint32LE(chunk[bootcodeStart:bootcodeEnd])
}
