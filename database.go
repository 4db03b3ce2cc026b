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
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Database file names consulted in priority order: the shipped database
// first, then the user's override file. Both resolve relative to the
// configured home directory.
var defaultDatabaseFiles = []string{
	"N64-database.txt",
	"N64-database_user.txt",
}

// hashHexLen is the length of a lookup key: an MD5 digest in hex.
const hashHexLen = 32

// lookupDatabases tries each database source in order and returns the
// settings of the first line matching hash. A source that cannot be
// opened counts as empty, not as an error.
func (e *Engine) lookupDatabases(hash string) (Settings, bool) {
	for _, name := range e.databaseFiles() {
		path := filepath.Join(e.opts.HomeDir, name)

		f, err := os.Open(path) //nolint:gosec // Database path comes from caller config
		if err != nil {
			e.logf("failed to open N64 data file %s", path)
			continue
		}

		settings, found := scanDatabase(f, hash, e.logf)
		_ = f.Close()
		if found {
			return settings, true
		}
	}
	return Settings{}, false
}

func (e *Engine) databaseFiles() []string {
	if len(e.opts.DatabaseFiles) > 0 {
		return e.opts.DatabaseFiles
	}
	return defaultDatabaseFiles
}

// scanDatabase reads lines from r until one starts with the 32-char
// hash. The comparison is case-sensitive; digests are stored lowercase.
// The first match wins and scanning stops.
func scanDatabase(r io.Reader, hash string, logf func(format string, args ...any)) (Settings, bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < hashHexLen || line[:hashHexLen] != hash {
			continue
		}

		fields := strings.Fields(line[hashHexLen:])
		if len(fields) == 0 {
			logf("no tags found")
			continue
		}

		logf("found ROM entry: %s", line)
		return parseTagList(fields[0], logf), true
	}
	return Settings{}, false
}

// parseTagList maps a pipe-delimited tag list onto settings. Tags are
// case-folded before matching; an unrecognized tag is reported and
// skipped, it does not abort the match.
func parseTagList(tags string, logf func(format string, args ...any)) Settings {
	settings := DefaultSettings()
	for _, tag := range strings.Split(tags, "|") {
		if tag == "" {
			continue
		}
		logf("tag: %s", tag)
		if !applyTag(&settings, strings.ToLower(tag)) {
			logf("unknown tag: %s", tag)
		}
	}
	return settings
}

// applyTag updates settings for a single lowercase tag, reporting
// whether the tag was recognized.
func applyTag(s *Settings, tag string) bool {
	switch tag {
	case "eeprom512":
		s.Save = SaveEeprom512
	case "eeprom2k":
		s.Save = SaveEeprom2K
	case "sram32k":
		s.Save = SaveSRAM32K
	case "sram96k":
		s.Save = SaveSRAM96K
	case "flash128k":
		s.Save = SaveFlash128K
	case "ntsc":
		s.System = SystemNTSC
	case "pal":
		s.System = SystemPAL
	case "cpak":
		s.Peripherals.ControllerPak = true
	case "rpak":
		s.Peripherals.RumblePak = true
	case "tpak":
		s.Peripherals.TransferPak = true
	case "rtc":
		s.Peripherals.RTC = true
	case "cic6101":
		s.CIC = CIC6101
	case "cic6102":
		s.CIC = CIC6102
	case "cic6103":
		s.CIC = CIC6103
	case "cic6105":
		s.CIC = CIC6105
	case "cic6106":
		s.CIC = CIC6106
	case "cic7101":
		s.CIC = CIC7101
	case "cic7102":
		s.CIC = CIC7102
	case "cic7103":
		s.CIC = CIC7103
	case "cic7105":
		s.CIC = CIC7105
	case "cic7106":
		s.CIC = CIC7106
	case "cic8303":
		s.CIC = CIC8303
	case "cic8401":
		s.CIC = CIC8401
	case "cic5167":
		s.CIC = CIC5167
	case "cicddus":
		s.CIC = CICDDUS
	default:
		return false
	}
	return true
}
