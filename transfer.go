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
	"errors"
	"fmt"
	"io"
	"sync"
)

// TransferSink receives normalized image chunks in order, bracketed by
// Start and Stop. There is no backpressure signal; a chunk write error
// aborts the transfer.
type TransferSink interface {
	Start()
	Chunk(p []byte) error
	Stop()
}

// Options configures an Engine. All fields are optional: with no
// Status the derived settings are reported but not published, with no
// Sink the normalized data is discarded after hashing.
type Options struct {
	// HomeDir is the directory holding the database files.
	HomeDir string

	// DatabaseFiles overrides the default database file names,
	// consulted in the given order.
	DatabaseFiles []string

	// Status is the core's configuration surface.
	Status StatusRegister

	// Sink receives the normalized image during the transfer.
	Sink TransferSink

	// Progress is called after each chunk with bytes sent and total.
	Progress func(sent, total int64)

	// Logf receives diagnostic messages. Defaults to discarding them.
	Logf func(format string, args ...any)
}

// Engine identifies ROM images and derives core settings for them. At
// most one transfer is in flight at a time; concurrent calls serialize.
type Engine struct {
	mu   sync.Mutex
	opts Options
	logf func(format string, args ...any)
}

// New returns an engine with the given options.
func New(opts Options) *Engine {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Engine{opts: opts, logf: logf}
}

// ConfigSource records which detection path produced the settings.
type ConfigSource int

// Detection paths, strictly ordered fallbacks. The database and
// heuristic paths are never merged field-by-field.
const (
	SourceNone ConfigSource = iota
	SourceDatabase
	SourceHeuristic
)

func (s ConfigSource) String() string {
	switch s {
	case SourceDatabase:
		return "database"
	case SourceHeuristic:
		return "heuristic"
	}
	return "none"
}

// LoadResult reports the outcome of one ROM transfer.
type LoadResult struct {
	Format       RomFormat
	HeaderMD5    string
	FileMD5      string
	InternalName string
	Identity     CartridgeIdentity

	// Settings and Source describe the derived configuration. With
	// SourceNone the settings are all defaults.
	Settings Settings
	Source   ConfigSource

	// Applied reports whether the settings were written to the status
	// register (auto-detect enabled and a register configured).
	Applied bool

	// Diagnostic carries a recoverable heuristic miss: an
	// UnknownCICError or UnknownCartridgeError. The transfer itself
	// still completed.
	Diagnostic error

	// PublishErr carries a status-register write failure. The image
	// had already reached the sink, so the transfer still completed.
	PublishErr error
}

// LoadROM streams a raw image of the given size through the pipeline:
// format detection on the first chunk, per-chunk normalization and
// hashing, database lookup by header digest then by full-file digest,
// heuristic classification as the last resort, and finally publication
// of whichever result succeeded first.
//
// The image must be at least one chunk long; smaller images are
// rejected before any hashing begins.
func (e *Engine) LoadROM(r io.Reader, size int64) (*LoadResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if size < ChunkSize {
		return nil, ImageTooSmallError{Size: size}
	}

	res := &LoadResult{Settings: DefaultSettings()}

	if e.opts.Sink != nil {
		e.opts.Sink.Start()
		defer e.opts.Sink.Stop()
	}
	e.progress(0, size)

	var (
		digest   = NewDigest()
		buf      = make([]byte, ChunkSize)
		sent     int64
		found    bool
		checksum uint64
	)

	for sent < size {
		n := ChunkSize
		if rem := size - sent; rem < ChunkSize {
			n = int(rem)
		}
		chunk := buf[:n]

		if _, err := io.ReadFull(r, chunk); err != nil {
			return nil, fmt.Errorf("read ROM image: %w", err)
		}

		if sent == 0 {
			res.Format = DetectFormat(chunk)
		}

		Normalize(chunk, res.Format)
		digest.Update(chunk)

		if sent == 0 {
			res.HeaderMD5 = digest.SnapshotHex()
			e.logf("header MD5: %s", res.HeaderMD5)

			res.Identity = parseIdentity(chunk)
			res.InternalName = internalName(chunk)
			checksum = bootcodeChecksum(chunk)

			if s, ok := e.lookupDatabases(res.HeaderMD5); ok {
				res.Settings, res.Source = s, SourceDatabase
				found = true
			} else {
				e.logf("no ROM information found for header hash: %s", res.HeaderMD5)
			}
		}

		if e.opts.Sink != nil {
			if err := e.opts.Sink.Chunk(chunk); err != nil {
				return nil, fmt.Errorf("forward chunk to sink: %w", err)
			}
		}

		sent += int64(n)
		e.progress(sent, size)
	}

	res.FileMD5 = digest.FinishHex()
	e.logf("file MD5: %s", res.FileMD5)

	if !found {
		if s, ok := e.lookupDatabases(res.FileMD5); ok {
			res.Settings, res.Source = s, SourceDatabase
			found = true
		} else {
			e.logf("no ROM information found for file hash: %s", res.FileMD5)
		}
	}

	if !found {
		s, err := Classify(res.Identity, checksum)
		res.Settings = s
		res.Diagnostic = err
		if err == nil {
			res.Source = SourceHeuristic
		} else {
			e.logf("%v", err)
		}
	}

	e.publish(res)
	return res, nil
}

// publish commits the derived settings to the status register,
// respecting the auto-detect toggle. A heuristic run that resolved the
// CIC but not the cartridge still publishes the timing and CIC, which
// matches what the core can make use of.
func (e *Engine) publish(res *LoadResult) {
	if e.opts.Status == nil {
		return
	}

	pub := NewPublisher(e.opts.Status, e.logf)

	switch {
	case res.Source == SourceDatabase || res.Source == SourceHeuristic:
		applied, err := pub.Publish(res.Settings)
		res.Applied, res.PublishErr = applied, err
	default:
		var unknownCart UnknownCartridgeError
		if !errors.As(res.Diagnostic, &unknownCart) {
			return
		}
		// Timing and CIC were still resolved; publish just those.
		on, err := pub.Enabled()
		if err != nil {
			res.PublishErr = err
			return
		}
		if !on {
			e.logf("auto-detect is off, not updating core settings")
			return
		}
		res.Applied = true
		res.PublishErr = pub.publishSystem(res.Settings)
	}
}

func (e *Engine) progress(sent, total int64) {
	if e.opts.Progress != nil {
		e.opts.Progress(sent, total)
	}
}
