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

// SaveType is the persistent save medium carried on the cartridge.
// Exactly one save type is active per title. The numeric values match
// the encoding expected by the core's save-type status slot.
type SaveType uint32

// Known save types.
const (
	SaveNone SaveType = iota
	SaveEeprom512
	SaveEeprom2K
	SaveSRAM32K
	SaveSRAM96K
	SaveFlash128K
)

func (s SaveType) String() string {
	switch s {
	case SaveNone:
		return "none"
	case SaveEeprom512:
		return "eeprom512"
	case SaveEeprom2K:
		return "eeprom2k"
	case SaveSRAM32K:
		return "sram32k"
	case SaveSRAM96K:
		return "sram96k"
	case SaveFlash128K:
		return "flash128k"
	}
	return "unknown"
}

// CIC is the cartridge's boot-authentication chip revision. It affects
// boot timing and validation, not gameplay. The numeric values match the
// encoding expected by the core's CIC status slot.
type CIC uint32

// Known CIC revisions.
const (
	CIC6101 CIC = iota
	CIC6102
	CIC7101
	CIC7102
	CIC6103
	CIC7103
	CIC6105
	CIC7105
	CIC6106
	CIC7106
	CIC8303
	CIC8401
	CIC5167
	CICDDUS
)

func (c CIC) String() string {
	switch c {
	case CIC6101:
		return "CIC-NUS-6101"
	case CIC6102:
		return "CIC-NUS-6102"
	case CIC7101:
		return "CIC-NUS-7101"
	case CIC7102:
		return "CIC-NUS-7102"
	case CIC6103:
		return "CIC-NUS-6103"
	case CIC7103:
		return "CIC-NUS-7103"
	case CIC6105:
		return "CIC-NUS-6105"
	case CIC7105:
		return "CIC-NUS-7105"
	case CIC6106:
		return "CIC-NUS-6106"
	case CIC7106:
		return "CIC-NUS-7106"
	case CIC8303:
		return "CIC-NUS-8303"
	case CIC8401:
		return "CIC-NUS-8401"
	case CIC5167:
		return "CIC-NUS-5167"
	case CICDDUS:
		return "CIC-NUS-DDUS"
	}
	return "unknown"
}

// SystemType is the console's regional timing standard.
type SystemType uint32

// Known system types.
const (
	SystemNTSC SystemType = iota
	SystemPAL
)

func (s SystemType) String() string {
	if s == SystemPAL {
		return "PAL"
	}
	return "NTSC"
}

// PeripheralSet records which controller accessories a title is known to
// use. The flags are independent; any subset may be set.
type PeripheralSet struct {
	ControllerPak bool
	RumblePak     bool
	TransferPak   bool
	RTC           bool
}

// Settings is the derived hardware configuration for one title. It is
// created fresh per ROM transfer and committed to the core through a
// Publisher; nothing here is persisted.
type Settings struct {
	Save        SaveType
	System      SystemType
	CIC         CIC
	Peripherals PeripheralSet
}

// DefaultSettings returns the settings assumed before any detection has
// run: no save memory, NTSC timing, CIC-NUS-6102.
func DefaultSettings() Settings {
	return Settings{
		Save:   SaveNone,
		System: SystemNTSC,
		CIC:    CIC6102,
	}
}
