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
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// maxDecompressedSize bounds how far a compressed image may expand.
// The largest retail cartridge is 64 MiB; 256 MiB leaves headroom for
// oversized repros and homebrew.
const maxDecompressedSize = 256 << 20

// IsCompressedPath checks if a path names a supported single-image
// compressed file.
func IsCompressedPath(path string) bool {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		return true
	}
	switch filepath.Ext(lower) {
	case ".gz", ".xz", ".zst":
		return true
	default:
		return false
	}
}

// ReadCompressed decompresses the image at path into memory and
// returns the data together with the inner file name. Compressed
// streams carry no uncompressed-size field the engine could trust, so
// the whole image is expanded up front, bounded by
// maxDecompressedSize.
func ReadCompressed(path string) ([]byte, string, error) {
	file, err := os.Open(path) //nolint:gosec // User-provided path is expected
	if err != nil {
		return nil, "", fmt.Errorf("open compressed image: %w", err)
	}
	defer func() { _ = file.Close() }()

	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz"):
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, "", fmt.Errorf("create gzip reader: %w", err)
		}
		defer func() { _ = gz.Close() }()
		return extractFromTar(gz, path)

	case strings.HasSuffix(lower, ".gz"):
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, "", fmt.Errorf("create gzip reader: %w", err)
		}
		defer func() { _ = gz.Close() }()

		data, err := limitedRead(gz, path)
		if err != nil {
			return nil, "", err
		}
		return data, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), nil

	case strings.HasSuffix(lower, ".xz"):
		xzr, err := xz.NewReader(file)
		if err != nil {
			return nil, "", fmt.Errorf("create xz reader: %w", err)
		}

		data, err := limitedRead(xzr, path)
		if err != nil {
			return nil, "", err
		}
		return data, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), nil

	case strings.HasSuffix(lower, ".zst"):
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, "", fmt.Errorf("create zstd reader: %w", err)
		}
		defer zr.Close()

		data, err := limitedRead(zr, path)
		if err != nil {
			return nil, "", err
		}
		return data, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), nil
	}

	return nil, "", FormatError{Format: filepath.Ext(path)}
}

// extractFromTar returns the first N64 image in a tar stream.
func extractFromTar(r io.Reader, path string) ([]byte, string, error) {
	tr := tar.NewReader(r)

	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("read tar entry: %w", err)
		}

		if header.Typeflag != tar.TypeReg || !IsROMFile(header.Name) {
			continue
		}

		data, err := limitedRead(tr, path)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(header.Name), nil
	}

	return nil, "", NoROMError{Archive: path}
}

// limitedRead reads r fully, failing once maxDecompressedSize is
// exceeded.
func limitedRead(r io.Reader, path string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("decompress image: %w", err)
	}
	if len(data) > maxDecompressedSize {
		return nil, TooLargeError{Path: path, Limit: maxDecompressedSize}
	}
	return data, nil
}
