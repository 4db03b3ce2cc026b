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

// Classify derives settings for a title absent from every database,
// using only the cartridge identity and the bootcode checksum from the
// normalized header.
//
// Two decisions run in order. First the checksum selects the CIC, with
// the timing standard defaulting from the region code; several checksum
// values are shared between an NTSC and a PAL chip and resolve on the
// derived timing. Second the cartridge ID selects save type and
// peripherals, after consulting the per-title exceptions.
//
// Both misses are recoverable: on UnknownCICError only the timing in
// the returned settings is meaningful, on UnknownCartridgeError the
// timing and CIC are meaningful and the cartridge fields stay at their
// defaults.
func Classify(identity CartridgeIdentity, checksum uint64) (Settings, error) {
	settings := DefaultSettings()
	settings.System = systemForRegion(identity.RegionCode)

	entry, ok := cicChecksums[checksum]
	if !ok {
		return settings, UnknownCICError{Checksum: checksum}
	}
	switch entry.force {
	case forcePAL:
		settings.System = SystemPAL
	case forceNTSC:
		settings.System = SystemNTSC
	}
	settings.CIC = entry.resolve(settings.System)

	if exc, ok := cartExceptions[identity.ID]; ok {
		exc(identity, &settings)
		return settings, nil
	}

	profile, ok := cartProfiles[identity.ID]
	if !ok {
		return settings, UnknownCartridgeError{ID: identity.ID}
	}
	settings.Save = profile.save
	settings.Peripherals = PeripheralSet{
		ControllerPak: profile.cpak,
		RumblePak:     profile.rpak,
		TransferPak:   profile.tpak,
		RTC:           profile.rtc,
	}
	return settings, nil
}

// systemForRegion maps a header region code to a timing standard.
// Codes not in the PAL set default to NTSC.
func systemForRegion(code byte) SystemType {
	switch code {
	case 'D', // Germany
		'F', // France
		'H', // Netherlands
		'I', // Italy
		'L', // Gateway 64
		'P', // Europe
		'S', // Spain
		'U', // Australia
		'W', // Scandinavia
		'X', // Europe
		'Y': // Europe
		return SystemPAL
	}
	return SystemNTSC
}

// Timing overrides carried by individual checksum rows.
const (
	forceNone = iota
	forcePAL
	forceNTSC
)

// cicEntry is one row of the bootcode checksum table. Rows where ntsc
// and pal differ are genuine collisions in the source data: distinct
// chips sharing a bootcode checksum, told apart only by region.
type cicEntry struct {
	ntsc  CIC
	pal   CIC
	force int
}

func (e cicEntry) resolve(system SystemType) CIC {
	if system == SystemPAL {
		return e.pal
	}
	return e.ntsc
}

// cicChecksums maps a bootcode word sum to its CIC row.
var cicChecksums = map[uint64]cicEntry{
	0x000000a316adc55a: {ntsc: CIC6102, pal: CIC7101},
	0x000000039c981107: {ntsc: CIC6102, pal: CIC7101}, // hcs64's CIC-6102 IPL3 replacement
	0x000000a30dacd530: {ntsc: CIC6102, pal: CIC7101}, // unknown, seen in SM64 hacks
	0x000000d2828281b0: {ntsc: CIC6102, pal: CIC7101}, // unknown, seen in some homebrew
	0x0000009acc31e644: {ntsc: CIC6102, pal: CIC7101}, // unknown, seen in betas and homebrew
	0x000000a405397b05: {ntsc: CIC7102, pal: CIC7102, force: forcePAL},
	0x000000a0f26f62fe: {ntsc: CIC6101, pal: CIC6101, force: forceNTSC},
	0x000000a9229d7c45: {ntsc: CIC6103, pal: CIC7103},
	0x000000f8b860ed00: {ntsc: CIC6105, pal: CIC7105},
	0x000000ba5ba4b8cd: {ntsc: CIC6106, pal: CIC7106},
	0x0000012daafc8aab: {ntsc: CIC5167, pal: CIC5167},
	0x000000a9df4b39e1: {ntsc: CIC8303, pal: CIC8303},
	0x000000aa764e39e1: {ntsc: CIC8401, pal: CIC8401},
	0x000000abb0b739e1: {ntsc: CICDDUS, pal: CICDDUS},
}

// cartProfile is the save type and peripheral capabilities keyed by a
// 3-character cartridge ID.
type cartProfile struct {
	save SaveType
	cpak bool
	rpak bool
	tpak bool
	rtc  bool
}

// cartProfiles is pure data: one row per title with unconditional
// settings. Titles needing region- or revision-dependent logic live in
// cartExceptions instead.
var cartProfiles = map[string]cartProfile{
	// 512B EEPROM
	"NTW": {save: SaveEeprom512, cpak: true},             // 64 de Hakken!! Tamagotchi
	"NHF": {save: SaveEeprom512},                         // 64 Hanafuda: Tenshi no Yakusoku
	"NOS": {save: SaveEeprom512, cpak: true, rpak: true}, // 64 Oozumou
	"NTC": {save: SaveEeprom512, rpak: true},             // 64 Trump Collection
	"NER": {save: SaveEeprom512, rpak: true},             // Aero Fighters Assault
	"NAG": {save: SaveEeprom512, cpak: true},             // AeroGauge
	"NAB": {save: SaveEeprom512, cpak: true, rpak: true}, // Air Boarder 64
	"NS3": {save: SaveEeprom512, cpak: true},             // AI Shougi 3
	"NTN": {save: SaveEeprom512},                         // All Star Tennis '99
	"NBN": {save: SaveEeprom512, cpak: true},             // Bakuretsu Muteki Bangaioh
	"NBK": {save: SaveEeprom512, rpak: true},             // Banjo-Kazooie
	"NFH": {save: SaveEeprom512, rpak: true},             // In-Fisherman Bass Hunter 64
	"NMU": {save: SaveEeprom512, cpak: true, rpak: true}, // Big Mountain 2000
	"NBC": {save: SaveEeprom512, cpak: true},             // Blast Corps
	"NBH": {save: SaveEeprom512, rpak: true},             // Body Harvest
	"NHA": {save: SaveEeprom512, cpak: true},             // Bomberman 64: Arcade Edition (J)
	"NBM": {save: SaveEeprom512, cpak: true},             // Bomberman 64
	"NBV": {save: SaveEeprom512, cpak: true, rpak: true}, // Bomberman 64: The Second Attack!
	"NBD": {save: SaveEeprom512, rpak: true},             // Bomberman Hero
	"NCT": {save: SaveEeprom512, rpak: true},             // Chameleon Twist
	"NCH": {save: SaveEeprom512, rpak: true},             // Chopper Attack
	"NCG": {save: SaveEeprom512, cpak: true, rpak: true, tpak: true}, // Choro Q 64 II (J)
	"NP2": {save: SaveEeprom512, cpak: true, rpak: true},             // Chou Kuukan Night Pro Yakyuu King 2 (J)
	"NXO": {save: SaveEeprom512, rpak: true},             // Cruis'n Exotica
	"NCU": {save: SaveEeprom512, cpak: true},             // Cruis'n USA
	"NCX": {save: SaveEeprom512},                         // Custom Robo
	"NDY": {save: SaveEeprom512, cpak: true, rpak: true}, // Diddy Kong Racing
	"NDQ": {save: SaveEeprom512, cpak: true},             // Disney's Donald Duck - Goin' Quackers
	"NDR": {save: SaveEeprom512},                         // Doraemon: Nobita to 3tsu no Seireiseki
	"NN6": {save: SaveEeprom512},                         // Dr. Mario 64
	"NDU": {save: SaveEeprom512, rpak: true},             // Duck Dodgers starring Daffy Duck
	"NJM": {save: SaveEeprom512},                         // Earthworm Jim 3D
	"NFW": {save: SaveEeprom512, rpak: true},             // F-1 World Grand Prix
	"NF2": {save: SaveEeprom512, rpak: true},             // F-1 World Grand Prix II
	"NKA": {save: SaveEeprom512, cpak: true, rpak: true}, // Fighters Destiny
	"NFG": {save: SaveEeprom512, cpak: true, rpak: true}, // Fighter Destiny 2
	"NGL": {save: SaveEeprom512, cpak: true, rpak: true}, // Getter Love!!
	"NGV": {save: SaveEeprom512},                         // Glover
	"NGE": {save: SaveEeprom512, rpak: true},             // GoldenEye 007
	"NHP": {save: SaveEeprom512},                         // Heiwa Pachinko World 64
	"NPG": {save: SaveEeprom512, rpak: true},             // Hey You, Pikachu!
	"NIJ": {save: SaveEeprom512, rpak: true},             // Indiana Jones and the Infernal Machine
	"NIC": {save: SaveEeprom512, rpak: true},             // Indy Racing 2000
	"NFY": {save: SaveEeprom512, cpak: true, rpak: true}, // Kakutou Denshou: F-Cup Maniax
	"NKI": {save: SaveEeprom512, cpak: true},             // Killer Instinct Gold
	"NLL": {save: SaveEeprom512, rpak: true},             // Last Legion UX
	"NLR": {save: SaveEeprom512, rpak: true},             // Lode Runner 3-D
	"NKT": {save: SaveEeprom512, cpak: true},             // Mario Kart 64
	"CLB": {save: SaveEeprom512, rpak: true},             // Mario Party (NTSC)
	"NLB": {save: SaveEeprom512, rpak: true},             // Mario Party (PAL)
	"NMW": {save: SaveEeprom512, rpak: true},             // Mario Party 2
	"NML": {save: SaveEeprom512, rpak: true, tpak: true}, // Mickey's Speedway USA
	"NTM": {save: SaveEeprom512},                         // Mischief Makers
	"NMI": {save: SaveEeprom512, rpak: true},             // Mission: Impossible
	"NMG": {save: SaveEeprom512, cpak: true, rpak: true}, // Monaco Grand Prix
	"NMO": {save: SaveEeprom512},                         // Monopoly
	"NMS": {save: SaveEeprom512, cpak: true},             // Morita Shougi 64
	"NMR": {save: SaveEeprom512, cpak: true, rpak: true}, // Multi-Racing Championship
	"NCR": {save: SaveEeprom512, cpak: true},             // Penny Racers
	"NEA": {save: SaveEeprom512},                         // PGA European Tour
	"NPW": {save: SaveEeprom512},                         // Pilotwings 64
	"NPY": {save: SaveEeprom512, rpak: true},             // Puyo Puyo Sun 64
	"NPT": {save: SaveEeprom512, rpak: true, tpak: true}, // Puyo Puyon Party
	"NRA": {save: SaveEeprom512, cpak: true, rpak: true}, // Rally '99 (J)
	"NWQ": {save: SaveEeprom512, cpak: true, rpak: true}, // Rally Challenge 2000
	"NSU": {save: SaveEeprom512, rpak: true},             // Rocket: Robot on Wheels
	"NSN": {save: SaveEeprom512, cpak: true, rpak: true}, // Snow Speeder (J)
	"NK2": {save: SaveEeprom512, rpak: true},             // Snowboard Kids 2
	"NSV": {save: SaveEeprom512, rpak: true},             // Space Station Silicon Valley
	"NFX": {save: SaveEeprom512, rpak: true},             // Star Fox 64
	"NS6": {save: SaveEeprom512, rpak: true},             // Star Soldier: Vanishing Earth
	"NNA": {save: SaveEeprom512, rpak: true},             // Star Wars Episode I: Battle for Naboo
	"NRS": {save: SaveEeprom512, rpak: true},             // Star Wars: Rogue Squadron
	"NSW": {save: SaveEeprom512},                         // Star Wars: Shadows of the Empire
	"NSC": {save: SaveEeprom512},                         // Starshot: Space Circus Fever
	"NSA": {save: SaveEeprom512, rpak: true},             // Sonic Wings Assault (J)
	"NB6": {save: SaveEeprom512, cpak: true, tpak: true}, // Super B-Daman: Battle Phoenix 64
	"NSS": {save: SaveEeprom512, rpak: true},             // Super Robot Spirits
	"NTX": {save: SaveEeprom512, rpak: true},             // Taz Express
	"NT6": {save: SaveEeprom512},                         // Tetris 64
	"NTP": {save: SaveEeprom512},                         // Tetrisphere
	"NTJ": {save: SaveEeprom512, rpak: true},             // Tom & Jerry in Fists of Fury
	"NRC": {save: SaveEeprom512, rpak: true},             // Top Gear Overdrive
	"NTR": {save: SaveEeprom512, cpak: true, rpak: true}, // Top Gear Rally (J + E)
	"NTB": {save: SaveEeprom512, rpak: true},             // Transformers: Beast Wars Metals 64 (J)
	"NGU": {save: SaveEeprom512, rpak: true},             // Tsumi to Batsu: Hoshi no Keishousha
	"NIR": {save: SaveEeprom512, rpak: true},             // Utchan Nanchan no Hono no Challenger
	"NVL": {save: SaveEeprom512, rpak: true},             // V-Rally Edition '99
	"NVY": {save: SaveEeprom512, rpak: true},             // V-Rally Edition '99 (J)
	"NWC": {save: SaveEeprom512, rpak: true},             // Wild Choppers
	"NAD": {save: SaveEeprom512},                         // Worms Armageddon (U)
	"NWU": {save: SaveEeprom512},                         // Worms Armageddon (E)
	"NYK": {save: SaveEeprom512, rpak: true},             // Yakouchuu II: Satsujin Kouro
	"NMZ": {save: SaveEeprom512},                         // Zool - Majou Tsukai Densetsu (J)

	// 2KB EEPROM
	"NB7": {save: SaveEeprom2K, rpak: true},             // Banjo-Tooie
	"NGT": {save: SaveEeprom2K, cpak: true, rpak: true}, // City Tour GrandPrix
	"NFU": {save: SaveEeprom2K, rpak: true},             // Conker's Bad Fur Day
	"NCW": {save: SaveEeprom2K, rpak: true},             // Cruis'n World
	"NCZ": {save: SaveEeprom2K, rpak: true},             // Custom Robo V2
	"ND6": {save: SaveEeprom2K, rpak: true},             // Densha de Go! 64
	"NDO": {save: SaveEeprom2K, rpak: true},             // Donkey Kong 64
	"ND2": {save: SaveEeprom2K, rpak: true},             // Doraemon 2: Nobita to Hikari no Shinden
	"N3D": {save: SaveEeprom2K, rpak: true},             // Doraemon 3: Nobita no Machi SOS!
	"NMX": {save: SaveEeprom2K, cpak: true, rpak: true}, // Excitebike 64
	"NGC": {save: SaveEeprom2K, cpak: true, rpak: true}, // GT 64: Championship Edition
	"NIM": {save: SaveEeprom2K},                         // Ide Yosuke no Mahjong Juku
	"NNB": {save: SaveEeprom2K, cpak: true, rpak: true}, // Kobe Bryant in NBA Courtside
	"NMV": {save: SaveEeprom2K, rpak: true},             // Mario Party 3
	"NM8": {save: SaveEeprom2K, rpak: true, tpak: true}, // Mario Tennis
	"NEV": {save: SaveEeprom2K, rpak: true},             // Neon Genesis Evangelion
	"NPP": {save: SaveEeprom2K, cpak: true},             // Parlor! Pro 64
	"NUB": {save: SaveEeprom2K, cpak: true, tpak: true}, // PD Ultraman Battle Collection 64
	"NPD": {save: SaveEeprom2K, cpak: true, rpak: true, tpak: true}, // Perfect Dark
	"NRZ": {save: SaveEeprom2K, rpak: true},             // Ridge Racer 64
	"NR7": {save: SaveEeprom2K, tpak: true},             // Robot Poncots 64
	"NEP": {save: SaveEeprom2K, rpak: true},             // Star Wars Episode I: Racer
	"NYS": {save: SaveEeprom2K, rpak: true},             // Yoshi's Story

	// 32KB SRAM
	"NTE": {save: SaveSRAM32K, rpak: true},             // 1080 Snowboarding
	"NVB": {save: SaveSRAM32K, rpak: true},             // Bass Rush (J)
	"NB5": {save: SaveSRAM32K, rpak: true},             // Biohazard 2 (J)
	"CFZ": {save: SaveSRAM32K, rpak: true},             // F-Zero X (J)
	"NFZ": {save: SaveSRAM32K, rpak: true},             // F-Zero X (U + E)
	"NSI": {save: SaveSRAM32K, cpak: true},             // Fushigi no Dungeon: Fuurai no Shiren 2
	"NG6": {save: SaveSRAM32K, rpak: true},             // Ganmare Goemon: Dero Dero Douchuu
	"NGP": {save: SaveSRAM32K, cpak: true},             // Goemon: Mononoke Sugoroku
	"NYW": {save: SaveSRAM32K, cpak: true},             // Harvest Moon 64
	"NHY": {save: SaveSRAM32K, cpak: true, rpak: true}, // Hybrid Heaven (J)
	"NIB": {save: SaveSRAM32K, rpak: true},             // Itoi Shigesato no Bass Tsuri No. 1
	"NPS": {save: SaveSRAM32K, cpak: true, rpak: true}, // Jikkyou J.League 1999: Perfect Striker 2
	"NPA": {save: SaveSRAM32K, cpak: true, tpak: true}, // Jikkyou Powerful Pro Yakyuu 2000
	"NP4": {save: SaveSRAM32K, cpak: true},             // Jikkyou Powerful Pro Yakyuu 4
	"NJ5": {save: SaveSRAM32K, cpak: true},             // Jikkyou Powerful Pro Yakyuu 5
	"NP6": {save: SaveSRAM32K, cpak: true, tpak: true}, // Jikkyou Powerful Pro Yakyuu 6
	"NPE": {save: SaveSRAM32K, cpak: true},             // Jikkyou Powerful Pro Yakyuu Basic Ban 2001
	"NJG": {save: SaveSRAM32K, rpak: true},             // Jinsei Game 64
	"CZL": {save: SaveSRAM32K, rpak: true},             // Legend of Zelda: Ocarina of Time (J + U)
	"NZL": {save: SaveSRAM32K, rpak: true},             // Legend of Zelda: Ocarina of Time (E)
	"NKG": {save: SaveSRAM32K, cpak: true, rpak: true}, // Major League Baseball ft. Ken Griffey Jr.
	"NMF": {save: SaveSRAM32K, rpak: true, tpak: true}, // Mario Golf 64
	"NRI": {save: SaveSRAM32K, cpak: true},             // The New Tetris
	"NUT": {save: SaveSRAM32K, cpak: true, rpak: true, tpak: true}, // Nushi Zuri 64
	"NUM": {save: SaveSRAM32K, rpak: true, tpak: true},             // Nushi Zuri 64: Shiokaze ni Notte
	"NOB": {save: SaveSRAM32K},                         // Ogre Battle 64
	"CPS": {save: SaveSRAM32K, tpak: true},             // Pocket Monsters Stadium (J)
	"NPM": {save: SaveSRAM32K, cpak: true},             // Premier Manager 64
	"NRE": {save: SaveSRAM32K, rpak: true},             // Resident Evil 2
	"NAL": {save: SaveSRAM32K, rpak: true},             // Super Smash Bros.
	"NT3": {save: SaveSRAM32K, cpak: true},             // Shin Nihon Pro Wrestling - Toukon Road 2 (J)
	"NS4": {save: SaveSRAM32K, cpak: true, tpak: true}, // Super Robot Taisen 64
	"NA2": {save: SaveSRAM32K, cpak: true, rpak: true}, // Virtual Pro Wrestling 2
	"NVP": {save: SaveSRAM32K, cpak: true, rpak: true}, // Virtual Pro Wrestling 64
	"NWL": {save: SaveSRAM32K, rpak: true},             // Waialae Country Club
	"NW2": {save: SaveSRAM32K, rpak: true},             // WCW-nWo Revenge
	"NWX": {save: SaveSRAM32K, cpak: true, rpak: true}, // WWF WrestleMania 2000

	// 96KB SRAM
	"CDZ": {save: SaveSRAM96K, rpak: true}, // Dezaemon 3D

	// 128KB Flash
	"NCC": {save: SaveFlash128K, rpak: true},            // Command & Conquer
	"NDA": {save: SaveFlash128K, cpak: true},            // Derby Stallion 64
	"NAF": {save: SaveFlash128K, cpak: true, rtc: true}, // Doubutsu no Mori
	"NJF": {save: SaveFlash128K, rpak: true},            // Jet Force Gemini
	"NKJ": {save: SaveFlash128K, rpak: true},            // Ken Griffey Jr.'s Slugfest
	"NZS": {save: SaveFlash128K, rpak: true},            // Legend of Zelda: Majora's Mask
	"NM6": {save: SaveFlash128K, rpak: true},            // Mega Man 64
	"NCK": {save: SaveFlash128K, rpak: true},            // NBA Courtside 2 featuring Kobe Bryant
	"NMQ": {save: SaveFlash128K, rpak: true},            // Paper Mario
	"NPN": {save: SaveFlash128K},                        // Pokemon Puzzle League
	"NPF": {save: SaveFlash128K},                        // Pokemon Snap
	"NPO": {save: SaveFlash128K, tpak: true},            // Pokemon Stadium
	"CP2": {save: SaveFlash128K, tpak: true},            // Pocket Monsters Stadium 2 (J)
	"NP3": {save: SaveFlash128K, tpak: true},            // Pokemon Stadium 2
	"NRH": {save: SaveFlash128K, rpak: true},            // Rockman Dash (J)
	"NSQ": {save: SaveFlash128K, rpak: true},            // StarCraft 64
	"NT9": {save: SaveFlash128K},                        // Tigger's Honey Hunt
	"NW4": {save: SaveFlash128K, cpak: true, rpak: true}, // WWF No Mercy
	"NDP": {save: SaveFlash128K},                        // Dinosaur Planet (unlicensed)

	// Controller Pak
	"NO7": {cpak: true, rpak: true}, // The World Is Not Enough
	"NAY": {cpak: true},             // Aidyn Chronicles - The First Mage
	"NBS": {cpak: true, rpak: true}, // All-Star Baseball '99
	"NBE": {cpak: true, rpak: true}, // All-Star Baseball 2000
	"NAS": {cpak: true, rpak: true}, // All-Star Baseball 2001
	"NAR": {cpak: true, rpak: true}, // Armorines - Project S.W.A.R.M.
	"NAC": {cpak: true, rpak: true}, // Army Men - Air Combat
	"NAM": {cpak: true, rpak: true}, // Army Men - Sarge's Heroes
	"N32": {cpak: true, rpak: true}, // Army Men - Sarge's Heroes 2
	"NAH": {cpak: true, rpak: true}, // Asteroids Hyper 64
	"NLC": {cpak: true, rpak: true}, // Automobili Lamborghini
	"NBJ": {cpak: true},             // Bakushou Jinsei 64
	"NB4": {cpak: true, rpak: true}, // Bass Masters 2000
	"NBX": {cpak: true, rpak: true}, // Battletanx
	"NBQ": {cpak: true, rpak: true}, // Battletanx - Global Assault
	"NZO": {cpak: true, rpak: true}, // Battlezone - Rise of the Black Dogs
	"NNS": {cpak: true, rpak: true}, // Beetle Adventure Racing
	"NB8": {cpak: true, rpak: true}, // Beetle Adventure Racing (J)
	"NBF": {cpak: true, rpak: true}, // Bio F.R.E.A.K.S.
	"NBP": {cpak: true, rpak: true}, // Blues Brothers 2000
	"NBO": {cpak: true},             // Bottom of the 9th
	"NOW": {cpak: true},             // Brunswick Circuit Pro Bowling
	"NBL": {cpak: true, rpak: true}, // Buck Bumble
	"NBY": {cpak: true, rpak: true}, // A Bug's Life
	"NB3": {cpak: true, rpak: true}, // Bust-A-Move '99
	"NBU": {cpak: true},             // Bust-A-Move 2 - Arcade Edition
	"NCL": {cpak: true, rpak: true}, // California Speed
	"NCD": {cpak: true, rpak: true}, // Carmageddon 64
	"NTS": {cpak: true},             // Centre Court Tennis
	"NV2": {cpak: true, rpak: true}, // Chameleon Twist 2
	"NPK": {cpak: true},             // Chou Kuukan Night Pro Yakyuu King (J)
	"NT4": {cpak: true, rpak: true}, // CyberTiger
	"NDW": {cpak: true, rpak: true}, // John Romero's Daikatana
	"NGA": {cpak: true, rpak: true}, // Deadly Arts
	"NDE": {cpak: true, rpak: true}, // Destruction Derby 64
	"NTA": {cpak: true, rpak: true}, // Disney's Tarzan
	"NDM": {cpak: true},             // Doom 64
	"NDH": {cpak: true},             // Duel Heroes
	"NDN": {cpak: true, rpak: true}, // Duke Nukem 64
	"NDZ": {cpak: true, rpak: true}, // Duke Nukem - Zero Hour
	"NWI": {cpak: true, rpak: true}, // ECW Hardcore Revolution
	"NST": {cpak: true},             // Eikou no Saint Andrews
	"NET": {cpak: true},             // Quest 64
	"NEG": {cpak: true, rpak: true}, // Extreme-G
	"NG2": {cpak: true, rpak: true}, // Extreme-G XG2
	"NHG": {cpak: true},             // F-1 Pole Position 64
	"NFR": {cpak: true, rpak: true}, // F-1 Racing Championship
	"N8I": {cpak: true},             // FIFA - Road to World Cup 98
	"N9F": {cpak: true},             // FIFA 99
	"N7I": {cpak: true},             // FIFA Soccer 64
	"NFS": {cpak: true},             // Famista 64
	"NFF": {cpak: true, rpak: true}, // Fighting Force 64
	"NFD": {cpak: true, rpak: true}, // Flying Dragon
	"NFO": {cpak: true, rpak: true}, // Forsaken 64
	"NF9": {cpak: true},             // Fox Sports College Hoops '99
	"NG5": {cpak: true, rpak: true}, // Ganbare Goemon - Neo Momoyama Bakufu no Odori
	"NGX": {cpak: true, rpak: true}, // Gauntlet Legends
	"NGD": {cpak: true, rpak: true}, // Gauntlet Legends (J)
	"NX3": {cpak: true, rpak: true}, // Gex 3 - Deep Cover Gecko
	"NX2": {cpak: true},             // Gex 64 - Enter the Gecko
	"NGM": {cpak: true, rpak: true}, // Goemon's Great Adventure
	"NGN": {cpak: true},             // Golden Nugget 64
	"NHS": {cpak: true},             // Hamster Monogatari 64
	"NM9": {cpak: true},             // Harukanaru Augusta Masters 98
	"NHC": {cpak: true, rpak: true}, // Hercules - The Legendary Journeys
	"NHX": {cpak: true},             // Hexen
	"NHK": {cpak: true, rpak: true}, // Hiryuu no Ken Twin
	"NHW": {cpak: true, rpak: true}, // Hot Wheels Turbo Racing
	"NHV": {cpak: true, rpak: true}, // Hybrid Heaven (U + E)
	"NHT": {cpak: true, rpak: true}, // Hydro Thunder
	"NWB": {cpak: true, rpak: true}, // Iggy's Reckin' Balls
	"NWS": {cpak: true},             // International Superstar Soccer '98
	"NIS": {cpak: true, rpak: true}, // International Superstar Soccer 2000
	"NJP": {cpak: true},             // International Superstar Soccer 64
	"NDS": {cpak: true},             // J.League Dynamite Soccer 64
	"NJE": {cpak: true},             // J.League Eleven Beat 1997
	"NJL": {cpak: true},             // J.League Live 64
	"NMA": {cpak: true},             // Jangou Simulation Mahjong Do 64
	"NCO": {cpak: true, rpak: true}, // Jeremy McGrath Supercross 2000
	"NGS": {cpak: true},             // Jikkyou G1 Stable
	"NJ3": {cpak: true},             // Jikkyou World Soccer 3
	"N64": {cpak: true, rpak: true}, // Kira to Kaiketsu! 64 Tanteidan
	"NKK": {cpak: true, rpak: true}, // Knockout Kings 2000
	"NLG": {cpak: true, rpak: true}, // LEGO Racers
	"N8M": {cpak: true, rpak: true}, // Madden Football 64
	"NMD": {cpak: true, rpak: true}, // Madden Football 2000
	"NFL": {cpak: true, rpak: true}, // Madden Football 2001
	"N2M": {cpak: true, rpak: true}, // Madden Football 2002
	"N9M": {cpak: true, rpak: true}, // Madden Football '99
	"NMJ": {cpak: true},             // Mahjong 64
	"NMM": {cpak: true},             // Mahjong Master
	"NHM": {cpak: true, rpak: true}, // Mia Hamm Soccer 64
	"NWK": {cpak: true, rpak: true}, // Michael Owens WLS 2000
	"NV3": {cpak: true, rpak: true}, // Micro Machines 64 Turbo
	"NAI": {cpak: true},             // Midway's Greatest Arcade Hits Volume 1
	"NMB": {cpak: true, rpak: true}, // Mike Piazza's Strike Zone
	"NBR": {cpak: true, rpak: true}, // Milo's Astro Lanes
	"NM4": {cpak: true, rpak: true}, // Mortal Kombat 4
	"NMY": {cpak: true, rpak: true}, // Mortal Kombat Mythologies - Sub-Zero
	"NP9": {cpak: true, rpak: true}, // Ms. Pac-Man - Maze Madness
	"NH5": {cpak: true},             // Nagano Winter Olympics '98
	"NNM": {cpak: true},             // Namco Museum 64
	"N9C": {cpak: true, rpak: true}, // Nascar '99
	"NN2": {cpak: true, rpak: true}, // Nascar 2000
	"NXG": {cpak: true},             // NBA Hangtime
	"NBA": {cpak: true, rpak: true}, // NBA In the Zone '98
	"NB2": {cpak: true, rpak: true}, // NBA In the Zone '99
	"NWZ": {cpak: true, rpak: true}, // NBA In the Zone 2000
	"NB9": {cpak: true},             // NBA Jam '99
	"NJA": {cpak: true, rpak: true}, // NBA Jam 2000
	"N9B": {cpak: true, rpak: true}, // NBA Live '99
	"NNL": {cpak: true, rpak: true}, // NBA Live 2000
	"NSO": {cpak: true},             // NBA Showtime - NBA on NBC
	"NBZ": {cpak: true, rpak: true}, // NFL Blitz
	"NSZ": {cpak: true, rpak: true}, // NFL Blitz - Special Edition
	"NBI": {cpak: true, rpak: true}, // NFL Blitz 2000
	"NFB": {cpak: true, rpak: true}, // NFL Blitz 2001
	"NQ8": {cpak: true, rpak: true}, // NFL Quarterback Club '98
	"NQ9": {cpak: true, rpak: true}, // NFL Quarterback Club '99
	"NQB": {cpak: true, rpak: true}, // NFL Quarterback Club 2000
	"NQC": {cpak: true, rpak: true}, // NFL Quarterback Club 2001
	"N9H": {cpak: true, rpak: true}, // NHL '99
	"NHO": {cpak: true, rpak: true}, // NHL Blades of Steel '99
	"NHL": {cpak: true, rpak: true}, // NHL Breakaway '98
	"NH9": {cpak: true, rpak: true}, // NHL Breakaway '99
	"NNC": {cpak: true, rpak: true}, // Nightmare Creatures
	"NCE": {cpak: true, rpak: true}, // Nuclear Strike 64
	"NOF": {cpak: true, rpak: true}, // Offroad Challenge
	"NHN": {cpak: true},             // Olympic Hockey Nagano '98
	"NOM": {cpak: true},             // Onegai Monsters
	"NPC": {cpak: true},             // Pachinko 365 Nichi (J)
	"NYP": {cpak: true, rpak: true}, // Paperboy
	"NPX": {cpak: true, rpak: true}, // Polaris SnoCross
	"NPL": {cpak: true},             // Power League 64 (J)
	"NPU": {cpak: true},             // Power Rangers - Lightspeed Rescue
	"NKM": {cpak: true},             // Pro Mahjong Kiwame 64 (J)
	"NNR": {cpak: true},             // Pro Mahjong Tsuwamono 64 (J)
	"NPB": {cpak: true, rpak: true}, // Puzzle Bobble 64 (J)
	"NQK": {cpak: true, rpak: true}, // Quake 64
	"NQ2": {cpak: true, rpak: true}, // Quake 2
	"NKR": {cpak: true},             // Rakuga Kids (E)
	"NRP": {cpak: true, rpak: true}, // Rampage - World Tour
	"NRT": {cpak: true},             // Rat Attack
	"NRX": {cpak: true},             // Robotron 64
	"NY2": {cpak: true},             // Rayman 2 - The Great Escape
	"NFQ": {cpak: true, rpak: true}, // Razor Freestyle Scooter
	"NRV": {cpak: true, rpak: true}, // Re-Volt
	"NRD": {cpak: true, rpak: true}, // Ready 2 Rumble Boxing
	"N22": {cpak: true, rpak: true}, // Ready 2 Rumble Boxing - Round 2
	"NRO": {cpak: true, rpak: true}, // Road Rash 64
	"NRR": {cpak: true, rpak: true}, // Roadster's Trophy
	"NRK": {cpak: true},             // Rugrats in Paris - The Movie
	"NR2": {cpak: true, rpak: true}, // Rush 2 - Extreme Racing USA
	"NCS": {cpak: true, rpak: true}, // S.C.A.R.S.
	"NDC": {cpak: true, rpak: true}, // SD Hiryuu no Ken Densetsu (J)
	"NSH": {cpak: true},             // Saikyou Habu Shougi (J)
	"NSF": {cpak: true, rpak: true}, // San Francisco Rush - Extreme Racing
	"NRU": {cpak: true, rpak: true}, // San Francisco Rush 2049
	"NSY": {cpak: true},             // Scooby-Doo! - Classic Creep Capers
	"NSD": {cpak: true, rpak: true}, // Shadow Man
	"NSG": {cpak: true},             // Shadowgate 64
	"NTO": {cpak: true},             // Shin Nihon Pro Wrestling - Toukon Road (J)
	"NS2": {cpak: true},             // Simcity 2000
	"NSK": {cpak: true, rpak: true}, // Snowboard Kids
	"NDT": {cpak: true, rpak: true}, // South Park
	"NPR": {cpak: true, rpak: true}, // South Park Rally
	"NIV": {cpak: true, rpak: true}, // Space Invaders
	"NSL": {cpak: true, rpak: true}, // Spider-Man
	"NR3": {cpak: true, rpak: true}, // Stunt Racer 64
	"NBW": {cpak: true, rpak: true}, // Super Bowling
	"NSX": {cpak: true, rpak: true}, // Supercross 2000
	"NSP": {cpak: true, rpak: true}, // Superman
	"NPZ": {cpak: true, rpak: true}, // Susume! Taisen Puzzle Dama Toukon! (J)
	"NL2": {cpak: true, rpak: true}, // Top Gear Rally 2
	"NR6": {cpak: true, rpak: true}, // Tom Clancy's Rainbow Six
	"NTT": {cpak: true},             // Tonic Trouble
	"NTF": {cpak: true, rpak: true}, // Tony Hawk's Pro Skater
	"NTQ": {cpak: true, rpak: true}, // Tony Hawk's Pro Skater 2
	"N3T": {cpak: true, rpak: true}, // Tony Hawk's Pro Skater 3
	"NGB": {cpak: true, rpak: true}, // Top Gear Hyper Bike
	"NGR": {cpak: true, rpak: true}, // Top Gear Rally (U)
	"NTH": {cpak: true, rpak: true}, // Toy Story 2
	"N3P": {cpak: true, rpak: true}, // Triple Play 2000
	"NTU": {cpak: true},             // Turok: Dinosaur Hunter
	"NRW": {cpak: true, rpak: true}, // Turok: Rage Wars
	"NT2": {cpak: true, rpak: true}, // Turok 2 - Seeds of Evil
	"NTK": {cpak: true, rpak: true}, // Turok 3 - Shadow of Oblivion
	"NSB": {cpak: true, rpak: true}, // Twisted Edge - Extreme Snowboarding
	"NV8": {cpak: true, rpak: true}, // Vigilante 8
	"NVG": {cpak: true, rpak: true}, // Vigilante 8 - Second Offense
	"NVC": {cpak: true},             // Virtual Chess 64
	"NVR": {cpak: true},             // Virtual Pool 64
	"NWV": {cpak: true, rpak: true}, // WCW: Backstage Assault
	"NWM": {cpak: true, rpak: true}, // WCW: Mayhem
	"NW3": {cpak: true, rpak: true}, // WCW: Nitro
	"NWN": {cpak: true, rpak: true}, // WCW vs. nWo - World Tour
	"NWW": {cpak: true, rpak: true}, // WWF: War Zone
	"NTI": {cpak: true, rpak: true}, // WWF: Attitude
	"NWG": {cpak: true},             // Wayne Gretzky's 3D Hockey
	"NW8": {cpak: true},             // Wayne Gretzky's 3D Hockey '98
	"NWD": {cpak: true, rpak: true}, // Winback - Covert Operations
	"NWP": {cpak: true, rpak: true}, // Wipeout 64
	"NJ2": {cpak: true},             // Wonder Project J2 (J)
	"N8W": {cpak: true},             // World Cup '98
	"NWO": {cpak: true, rpak: true}, // World Driver Championship
	"NXF": {cpak: true, rpak: true}, // Xena Warrior Princess

	// Rumble Pak
	"NJQ": {rpak: true},             // Batman Beyond - Return of the Joker
	"NCB": {rpak: true},             // Charlie Blast's Territory
	"NDF": {rpak: true},             // Dance Dance Revolution - Disney Dancing Museum
	"NKE": {rpak: true},             // Knife Edge - Nose Gunner
	"NMT": {rpak: true},             // Magical Tetris Challenge
	"NM3": {rpak: true},             // Monster Truck Madness 64
	"NRG": {rpak: true},             // Rugrats - Scavenger Hunt
	"NOH": {rpak: true, tpak: true}, // Transformers Beast Wars - Transmetals
	"NWF": {rpak: true},             // Wheel of Fortune
}
