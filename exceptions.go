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

// cartExceptions holds the titles whose settings depend on region or
// revision and cannot be expressed as a plain table row. They are
// consulted before cartProfiles.
var cartExceptions = map[string]func(CartridgeIdentity, *Settings){
	"N3H": trackAndField,
	"ND3": castlevania,
	"ND4": castlevaniaLegacy,
	"NSM": superMario64,
	"NWR": waveRace64,
	"NK4": kirby64,
	"NDK": darkRift,
	"NWT": wetrix,
}

// trackAndField: the Japanese release (Ganbare! Nippon! Olympics 2000)
// saves to SRAM; International Track & Field 2000 elsewhere has no
// cartridge save and uses the controller paks instead.
func trackAndField(id CartridgeIdentity, s *Settings) {
	if id.RegionCode == 'J' {
		s.Save = SaveSRAM32K
		return
	}
	s.Peripherals.ControllerPak = true
	s.Peripherals.RumblePak = true
}

// castlevania: Akumajou Dracula Mokushiroku (J) saves to EEPROM and
// rumbles; Castlevania elsewhere saves to Controller Pak.
func castlevania(id CartridgeIdentity, s *Settings) {
	if id.RegionCode == 'J' {
		s.Save = SaveEeprom2K
		s.Peripherals.RumblePak = true
		return
	}
	s.Peripherals.ControllerPak = true
}

// castlevaniaLegacy: same split for Legend of Cornell (J) versus
// Castlevania - Legacy of Darkness.
func castlevaniaLegacy(id CartridgeIdentity, s *Settings) {
	if id.RegionCode == 'J' {
		s.Peripherals.RumblePak = true
		return
	}
	s.Peripherals.ControllerPak = true
}

// superMario64: the Shindou Edition (J, revision 3) added Rumble Pak
// support.
func superMario64(id CartridgeIdentity, s *Settings) {
	if id.RegionCode == 'J' && id.Revision == 3 {
		s.Peripherals.RumblePak = true
	}
	s.Save = SaveEeprom512
}

// waveRace64: the Shindou Edition (J, revision 2) added Rumble Pak
// support.
func waveRace64(id CartridgeIdentity, s *Settings) {
	if id.RegionCode == 'J' && id.Revision == 2 {
		s.Peripherals.RumblePak = true
	}
	s.Save = SaveEeprom512
	s.Peripherals.ControllerPak = true
}

// kirby64: early Japanese revisions of Hoshi no Kirby 64 save to SRAM,
// later revisions and all other regions to EEPROM.
func kirby64(id CartridgeIdentity, s *Settings) {
	if id.RegionCode == 'J' && id.Revision < 2 {
		s.Save = SaveSRAM32K
	} else {
		s.Save = SaveEeprom2K
	}
	s.Peripherals.RumblePak = true
}

// darkRift: only Space Dynamites (J) carries save memory.
func darkRift(id CartridgeIdentity, s *Settings) {
	if id.RegionCode == 'J' {
		s.Save = SaveEeprom512
	}
}

// wetrix: the Japanese release saves to EEPROM, others to Controller
// Pak.
func wetrix(id CartridgeIdentity, s *Settings) {
	if id.RegionCode == 'J' {
		s.Save = SaveEeprom512
		return
	}
	s.Peripherals.ControllerPak = true
}
