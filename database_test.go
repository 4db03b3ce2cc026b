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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testHash = "0e2ef2f6f6b12c25a1ed42ab3d5e9984"

func discardLogf(string, ...any) {}

//nolint:funlen // Table-driven test with many test cases
func TestScanDatabase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		db        string
		hash      string
		want      Settings
		wantFound bool
	}{
		{
			name: "full tag list",
			db:   testHash + " sram32k|rpak|ntsc|cic6102 Some Game (U)\n",
			hash: testHash,
			want: Settings{
				Save:        SaveSRAM32K,
				System:      SystemNTSC,
				CIC:         CIC6102,
				Peripherals: PeripheralSet{RumblePak: true},
			},
			wantFound: true,
		},
		{
			name: "PAL entry with flash and RTC",
			db:   testHash + " flash128k|rtc|pal|cic7101\n",
			hash: testHash,
			want: Settings{
				Save:        SaveFlash128K,
				System:      SystemPAL,
				CIC:         CIC7101,
				Peripherals: PeripheralSet{RTC: true},
			},
			wantFound: true,
		},
		{
			name: "64DD US entry",
			db:   testHash + " cicddus|ntsc\n",
			hash: testHash,
			want: Settings{
				System: SystemNTSC,
				CIC:    CICDDUS,
			},
			wantFound: true,
		},
		{
			name: "tags are case-folded",
			db:   testHash + " EEPROM512|RPak|NTSC\n",
			hash: testHash,
			want: Settings{
				Save:        SaveEeprom512,
				System:      SystemNTSC,
				CIC:         CIC6102,
				Peripherals: PeripheralSet{RumblePak: true},
			},
			wantFound: true,
		},
		{
			name: "unknown tag skipped, rest applied",
			db:   testHash + " bogus|tpak|cpak\n",
			hash: testHash,
			want: Settings{
				System: SystemNTSC,
				CIC:    CIC6102,
				Peripherals: PeripheralSet{
					ControllerPak: true,
					TransferPak:   true,
				},
			},
			wantFound: true,
		},
		{
			name: "match after other lines",
			db: "# N64 database\n" +
				"11111111111111111111111111111111 eeprom2k\n" +
				testHash + " sram96k|rtc\n",
			hash: testHash,
			want: Settings{
				Save:        SaveSRAM96K,
				System:      SystemNTSC,
				CIC:         CIC6102,
				Peripherals: PeripheralSet{RTC: true},
			},
			wantFound: true,
		},
		{
			name:      "no matching line",
			db:        "11111111111111111111111111111111 eeprom2k\n",
			hash:      testHash,
			wantFound: false,
		},
		{
			name:      "hash comparison is case-sensitive",
			db:        strings.ToUpper(testHash) + " eeprom2k\n",
			hash:      testHash,
			wantFound: false,
		},
		{
			name:      "line with hash but no tags",
			db:        testHash + "\n",
			hash:      testHash,
			wantFound: false,
		},
		{
			name:      "empty database",
			db:        "",
			hash:      testHash,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, found := scanDatabase(strings.NewReader(tt.db), tt.hash, discardLogf)
			if found != tt.wantFound {
				t.Fatalf("scanDatabase() found = %v, want %v", found, tt.wantFound)
			}
			if found && got != tt.want {
				t.Errorf("scanDatabase() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLookupDatabases(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeDB := func(name, content string) {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("Failed to write database file: %v", err)
		}
	}

	// Shipped database misses, the user override hits.
	writeDB("N64-database.txt", "11111111111111111111111111111111 eeprom2k\n")
	writeDB("N64-database_user.txt", testHash+" flash128k|pal\n")

	e := New(Options{HomeDir: tmpDir})
	got, found := e.lookupDatabases(testHash)
	if !found {
		t.Fatal("lookupDatabases() found = false, want true")
	}
	if got.Save != SaveFlash128K || got.System != SystemPAL {
		t.Errorf("lookupDatabases() = %+v, want flash128k PAL", got)
	}
}

func TestLookupDatabasesPriority(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Both files match; the shipped database wins.
	shipped := testHash + " eeprom512|ntsc\n"
	user := testHash + " sram32k|pal\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "N64-database.txt"), []byte(shipped), 0o600); err != nil {
		t.Fatalf("Failed to write database file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "N64-database_user.txt"), []byte(user), 0o600); err != nil {
		t.Fatalf("Failed to write database file: %v", err)
	}

	e := New(Options{HomeDir: tmpDir})
	got, found := e.lookupDatabases(testHash)
	if !found {
		t.Fatal("lookupDatabases() found = false, want true")
	}
	if got.Save != SaveEeprom512 || got.System != SystemNTSC {
		t.Errorf("lookupDatabases() = %+v, want the shipped entry", got)
	}
}

// A home directory with no database files yields no match, not an
// error.
func TestLookupDatabasesMissingFiles(t *testing.T) {
	t.Parallel()

	e := New(Options{HomeDir: t.TempDir()})
	if _, found := e.lookupDatabases(testHash); found {
		t.Error("lookupDatabases() found = true with no database files")
	}
}

func TestLookupDatabasesOverrideNames(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "custom.txt"), []byte(testHash+" tpak\n"), 0o600); err != nil {
		t.Fatalf("Failed to write database file: %v", err)
	}

	e := New(Options{HomeDir: tmpDir, DatabaseFiles: []string{"custom.txt"}})
	got, found := e.lookupDatabases(testHash)
	if !found {
		t.Fatal("lookupDatabases() found = false, want true")
	}
	if !got.Peripherals.TransferPak {
		t.Errorf("lookupDatabases() = %+v, want transfer pak set", got)
	}
}
