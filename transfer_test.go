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
	"bytes"
	"crypto/md5" //nolint:gosec // Matching the digest under test
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newTestImage builds a canonical big-endian image of two chunks: a
// valid header chunk for the given identity and bootcode checksum,
// followed by a chunk of patterned payload.
func newTestImage(cartID string, region byte, revision uint8, checksum uint64) []byte {
	img := make([]byte, 2*ChunkSize)
	copy(img, newHeaderChunk("TEST IMAGE", cartID, region, revision))
	setBootcodeChecksum(img, checksum)
	for i := ChunkSize; i < len(img); i++ {
		img[i] = byte(i * 13)
	}
	return img
}

// asFormat converts a canonical image to the given delivery ordering.
// Both conversions are their own inverse, so Normalize doubles as the
// encoder.
func asFormat(canonical []byte, format RomFormat) []byte {
	out := append([]byte(nil), canonical...)
	Normalize(out, format)
	return out
}

func md5Hex(data []byte) string {
	sum := md5.Sum(data) //nolint:gosec // see import note
	return hex.EncodeToString(sum[:])
}

// recordSink captures everything forwarded during a transfer.
type recordSink struct {
	started bool
	stopped bool
	data    []byte
}

func (s *recordSink) Start()               { s.started = true }
func (s *recordSink) Chunk(p []byte) error { s.data = append(s.data, p...); return nil }
func (s *recordSink) Stop()                { s.stopped = true }

func TestLoadROMHeuristic(t *testing.T) {
	t.Parallel()

	canonical := newTestImage("NFX", 'E', 0, 0x000000a9229d7c45)

	tests := []struct {
		name   string
		format RomFormat
	}{
		{name: "big-endian input", format: FormatBigEndian},
		{name: "byte-swapped input", format: FormatByteSwapped},
		{name: "little-endian input", format: FormatLittleEndian},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			image := asFormat(canonical, tt.format)
			sink := &recordSink{}
			var lastSent, total int64

			e := New(Options{
				HomeDir: t.TempDir(),
				Sink:    sink,
				Progress: func(sent, tot int64) {
					lastSent, total = sent, tot
				},
			})

			res, err := e.LoadROM(bytes.NewReader(image), int64(len(image)))
			if err != nil {
				t.Fatalf("LoadROM() error = %v", err)
			}

			if res.Format != tt.format {
				t.Errorf("Format = %v, want %v", res.Format, tt.format)
			}
			if res.Source != SourceHeuristic {
				t.Errorf("Source = %v, want %v", res.Source, SourceHeuristic)
			}
			if res.Diagnostic != nil {
				t.Errorf("Diagnostic = %v, want nil", res.Diagnostic)
			}

			// Hashes are taken over the normalized bytes regardless of
			// the delivery ordering.
			if want := md5Hex(canonical[:ChunkSize]); res.HeaderMD5 != want {
				t.Errorf("HeaderMD5 = %s, want %s", res.HeaderMD5, want)
			}
			if want := md5Hex(canonical); res.FileMD5 != want {
				t.Errorf("FileMD5 = %s, want %s", res.FileMD5, want)
			}

			if res.InternalName != "TEST IMAGE" {
				t.Errorf("InternalName = %q, want %q", res.InternalName, "TEST IMAGE")
			}
			wantIdentity := CartridgeIdentity{ID: "NFX", RegionCode: 'E', Revision: 0}
			if res.Identity != wantIdentity {
				t.Errorf("Identity = %+v, want %+v", res.Identity, wantIdentity)
			}

			wantSettings := Settings{
				Save:        SaveEeprom512,
				System:      SystemNTSC,
				CIC:         CIC6103,
				Peripherals: PeripheralSet{RumblePak: true},
			}
			if res.Settings != wantSettings {
				t.Errorf("Settings = %+v, want %+v", res.Settings, wantSettings)
			}

			// The sink always receives the canonical layout.
			if !sink.started || !sink.stopped {
				t.Error("sink was not bracketed by Start and Stop")
			}
			if !bytes.Equal(sink.data, canonical) {
				t.Error("sink data differs from the normalized image")
			}

			if lastSent != int64(len(image)) || total != int64(len(image)) {
				t.Errorf("progress ended at %d/%d, want %d/%d",
					lastSent, total, len(image), len(image))
			}
		})
	}
}

// A single-chunk image is the minimum accepted size; everything the
// pipeline needs lives in chunk zero.
func TestLoadROMSingleChunk(t *testing.T) {
	t.Parallel()

	canonical := newTestImage("NFX", 'E', 0, 0x000000a9229d7c45)[:ChunkSize]
	image := asFormat(canonical, FormatLittleEndian)

	e := New(Options{HomeDir: t.TempDir()})
	res, err := e.LoadROM(bytes.NewReader(image), ChunkSize)
	if err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}

	if res.Format != FormatLittleEndian {
		t.Errorf("Format = %v, want %v", res.Format, FormatLittleEndian)
	}
	if res.HeaderMD5 != res.FileMD5 {
		t.Errorf("HeaderMD5 %s != FileMD5 %s for a one-chunk image", res.HeaderMD5, res.FileMD5)
	}
	if res.Source != SourceHeuristic {
		t.Errorf("Source = %v, want %v", res.Source, SourceHeuristic)
	}
}

func TestLoadROMTooSmall(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	_, err := e.LoadROM(bytes.NewReader(make([]byte, 100)), 100)

	var tooSmall ImageTooSmallError
	if !errors.As(err, &tooSmall) {
		t.Fatalf("LoadROM() error = %v, want ImageTooSmallError", err)
	}
	if tooSmall.Size != 100 {
		t.Errorf("ImageTooSmallError.Size = %d, want 100", tooSmall.Size)
	}
}

func TestLoadROMDatabaseHeaderHit(t *testing.T) {
	t.Parallel()

	// The bootcode checksum is garbage, so any heuristic run would
	// report a diagnostic; a database hit must prevent that.
	canonical := newTestImage("ZZZ", 'E', 0, 0x1234)

	tmpDir := t.TempDir()
	entry := md5Hex(canonical[:ChunkSize]) + " sram96k|pal|cic7103|cpak\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "N64-database.txt"), []byte(entry), 0o600); err != nil {
		t.Fatalf("Failed to write database file: %v", err)
	}

	e := New(Options{HomeDir: tmpDir})
	res, err := e.LoadROM(bytes.NewReader(canonical), int64(len(canonical)))
	if err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}

	if res.Source != SourceDatabase {
		t.Errorf("Source = %v, want %v", res.Source, SourceDatabase)
	}
	if res.Diagnostic != nil {
		t.Errorf("Diagnostic = %v, want nil", res.Diagnostic)
	}

	want := Settings{
		Save:        SaveSRAM96K,
		System:      SystemPAL,
		CIC:         CIC7103,
		Peripherals: PeripheralSet{ControllerPak: true},
	}
	if res.Settings != want {
		t.Errorf("Settings = %+v, want %+v", res.Settings, want)
	}
}

func TestLoadROMDatabaseFileHit(t *testing.T) {
	t.Parallel()

	canonical := newTestImage("ZZZ", 'E', 0, 0x1234)

	// Only the full-file digest is in the database.
	tmpDir := t.TempDir()
	entry := md5Hex(canonical) + " eeprom2k|ntsc\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "N64-database.txt"), []byte(entry), 0o600); err != nil {
		t.Fatalf("Failed to write database file: %v", err)
	}

	e := New(Options{HomeDir: tmpDir})
	res, err := e.LoadROM(bytes.NewReader(canonical), int64(len(canonical)))
	if err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}

	if res.Source != SourceDatabase {
		t.Errorf("Source = %v, want %v", res.Source, SourceDatabase)
	}
	if res.Settings.Save != SaveEeprom2K {
		t.Errorf("Save = %v, want %v", res.Settings.Save, SaveEeprom2K)
	}
}

func TestLoadROMPublishes(t *testing.T) {
	t.Parallel()

	canonical := newTestImage("NFX", 'E', 0, 0x000000a9229d7c45)
	reg := newFakeRegister()

	e := New(Options{HomeDir: t.TempDir(), Status: reg})
	res, err := e.LoadROM(bytes.NewReader(canonical), int64(len(canonical)))
	if err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}

	if !res.Applied {
		t.Fatal("Applied = false, want true")
	}
	if res.PublishErr != nil {
		t.Fatalf("PublishErr = %v", res.PublishErr)
	}

	if got := reg.values[SlotCIC]; got != uint32(CIC6103) {
		t.Errorf("CIC slot = %d, want %d", got, uint32(CIC6103))
	}
	if got := reg.values[SlotSaveType]; got != uint32(SaveEeprom512) {
		t.Errorf("save type slot = %d, want %d", got, uint32(SaveEeprom512))
	}
	if got := reg.values[SlotRumblePak]; got != 1 {
		t.Errorf("rumble pak slot = %d, want 1", got)
	}
}

func TestLoadROMAutoDetectOff(t *testing.T) {
	t.Parallel()

	canonical := newTestImage("NFX", 'E', 0, 0x000000a9229d7c45)
	reg := newFakeRegister()
	reg.values[SlotAutoDetect] = 1

	e := New(Options{HomeDir: t.TempDir(), Status: reg})
	res, err := e.LoadROM(bytes.NewReader(canonical), int64(len(canonical)))
	if err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}

	// Detection still ran; only the register stayed untouched.
	if res.Source != SourceHeuristic {
		t.Errorf("Source = %v, want %v", res.Source, SourceHeuristic)
	}
	if res.Applied {
		t.Error("Applied = true with auto-detect off")
	}
	delete(reg.values, SlotAutoDetect)
	if len(reg.values) != 0 {
		t.Errorf("register written with auto-detect off: %v", reg.values)
	}
}

// An unknown cartridge still resolves timing and CIC; those two fields
// are published on their own.
func TestLoadROMUnknownCartridgePartialPublish(t *testing.T) {
	t.Parallel()

	canonical := newTestImage("ZZZ", 'P', 0, checksum6102)
	reg := newFakeRegister()

	e := New(Options{HomeDir: t.TempDir(), Status: reg})
	res, err := e.LoadROM(bytes.NewReader(canonical), int64(len(canonical)))
	if err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}

	var unknownCart UnknownCartridgeError
	if !errors.As(res.Diagnostic, &unknownCart) {
		t.Fatalf("Diagnostic = %v, want UnknownCartridgeError", res.Diagnostic)
	}
	if res.Source != SourceNone {
		t.Errorf("Source = %v, want %v", res.Source, SourceNone)
	}
	if !res.Applied {
		t.Error("Applied = false, want true for the partial publish")
	}

	if got := reg.values[SlotSystemType]; got != uint32(SystemPAL) {
		t.Errorf("system type slot = %d, want %d", got, uint32(SystemPAL))
	}
	if got := reg.values[SlotCIC]; got != uint32(CIC7101) {
		t.Errorf("CIC slot = %d, want %d", got, uint32(CIC7101))
	}
	if _, ok := reg.values[SlotSaveType]; ok {
		t.Error("save type slot written on a cartridge miss")
	}
}

// An unknown CIC leaves the register alone entirely.
func TestLoadROMUnknownCICNoPublish(t *testing.T) {
	t.Parallel()

	canonical := newTestImage("NFX", 'E', 0, 0x1234)
	reg := newFakeRegister()

	e := New(Options{HomeDir: t.TempDir(), Status: reg})
	res, err := e.LoadROM(bytes.NewReader(canonical), int64(len(canonical)))
	if err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}

	var unknownCIC UnknownCICError
	if !errors.As(res.Diagnostic, &unknownCIC) {
		t.Fatalf("Diagnostic = %v, want UnknownCICError", res.Diagnostic)
	}
	if res.Applied {
		t.Error("Applied = true on a CIC miss")
	}
	if len(reg.values) != 0 {
		t.Errorf("register written on a CIC miss: %v", reg.values)
	}
}

func TestLoadROMSinkError(t *testing.T) {
	t.Parallel()

	canonical := newTestImage("NFX", 'E', 0, checksum6102)

	e := New(Options{HomeDir: t.TempDir(), Sink: failSink{}})
	if _, err := e.LoadROM(bytes.NewReader(canonical), int64(len(canonical))); err == nil {
		t.Error("LoadROM() error = nil, want sink failure")
	}
}

type failSink struct{}

func (failSink) Start()             {}
func (failSink) Chunk([]byte) error { return errors.New("sink full") }
func (failSink) Stop()              {}

func TestLoadROMShortRead(t *testing.T) {
	t.Parallel()

	// Size claims two chunks but the reader only has one.
	e := New(Options{HomeDir: t.TempDir()})
	if _, err := e.LoadROM(bytes.NewReader(make([]byte, ChunkSize)), 2*ChunkSize); err == nil {
		t.Error("LoadROM() error = nil, want read failure")
	}
}
