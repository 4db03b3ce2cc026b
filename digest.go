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
	"crypto/md5" //nolint:gosec // MD5 is the database key format, not a security boundary
	"encoding/hex"
	"hash"
)

// Digest accumulates an MD5 content hash over normalized image bytes as
// they stream through the transfer. It can produce an intermediate
// digest of everything fed so far without disturbing the running state,
// which is how the header digest is taken after the first chunk.
type Digest struct {
	h hash.Hash
}

// NewDigest returns an empty accumulator.
func NewDigest() *Digest {
	return &Digest{h: md5.New()} //nolint:gosec // see package import note
}

// Update feeds a chunk of normalized bytes into the running hash.
func (d *Digest) Update(p []byte) {
	// hash.Hash.Write never returns an error.
	_, _ = d.h.Write(p)
}

// SnapshotHex returns the lowercase hex digest of everything fed so
// far. Sum operates on a copy of the internal state, so the running
// accumulation is not perturbed and Update may continue afterwards.
func (d *Digest) SnapshotHex() string {
	return hex.EncodeToString(d.h.Sum(nil))
}

// FinishHex returns the lowercase hex digest of the complete stream.
// The accumulator is done once this is called; feeding further bytes is
// a caller bug.
func (d *Digest) FinishHex() string {
	return hex.EncodeToString(d.h.Sum(nil))
}
