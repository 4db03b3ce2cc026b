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
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// writeTestZip creates a ZIP with the given entries and returns its
// path.
func writeTestZip(t *testing.T, entries map[string][]byte) string {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to create zip entry: %v", err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("Failed to write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.zip")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("Failed to write zip file: %v", err)
	}
	return path
}

func TestZIPArchive(t *testing.T) {
	t.Parallel()

	rom := []byte("rom payload")
	path := writeTestZip(t, map[string][]byte{
		"readme.txt": []byte("docs"),
		"game.z64":   rom,
	})

	arc, err := OpenZIP(path)
	if err != nil {
		t.Fatalf("OpenZIP() error = %v", err)
	}
	t.Cleanup(func() { _ = arc.Close() })

	files, err := arc.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("List() returned %d files, want 2", len(files))
	}

	reader, size, err := arc.Open("game.z64")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = reader.Close() }()

	if size != int64(len(rom)) {
		t.Errorf("Open() size = %d, want %d", size, len(rom))
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read entry: %v", err)
	}
	if !bytes.Equal(data, rom) {
		t.Errorf("entry data = %q, want %q", data, rom)
	}
}

func TestZIPArchiveFileNotFound(t *testing.T) {
	t.Parallel()

	path := writeTestZip(t, map[string][]byte{"game.z64": []byte("rom")})

	arc, err := OpenZIP(path)
	if err != nil {
		t.Fatalf("OpenZIP() error = %v", err)
	}
	t.Cleanup(func() { _ = arc.Close() })

	_, _, err = arc.Open("missing.z64")

	var notFound FileNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Open() error = %v, want FileNotFoundError", err)
	}
	if notFound.InternalPath != "missing.z64" {
		t.Errorf("FileNotFoundError.InternalPath = %q, want %q", notFound.InternalPath, "missing.z64")
	}
}

func TestOpenDispatch(t *testing.T) {
	t.Parallel()

	path := writeTestZip(t, map[string][]byte{"game.z64": []byte("rom")})

	arc, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := arc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestOpenUnsupported(t *testing.T) {
	t.Parallel()

	_, err := Open("image.tar")

	var formatErr FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("Open() error = %v, want FormatError", err)
	}
	if formatErr.Format != ".tar" {
		t.Errorf("FormatError.Format = %q, want %q", formatErr.Format, ".tar")
	}
}
