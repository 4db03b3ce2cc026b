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

import "fmt"

// StatusRegister is the core's configuration surface: a bit-field
// register addressed by symbolic ranges. The bit-level encoding lives
// on the other side of this interface.
type StatusRegister interface {
	Get(slot string) (uint32, error)
	Set(slot string, value uint32) error
}

// Status register slots written by the publisher.
const (
	SlotAutoDetect    = "[64]"    // read-only here: 0 = auto-detect enabled
	SlotSystemType    = "[80:79]" // 1 bit used
	SlotCIC           = "[68:65]"
	SlotControllerPak = "[71]"
	SlotRumblePak     = "[72]"
	SlotTransferPak   = "[73]"
	SlotRTC           = "[74]"
	SlotSaveType      = "[77:75]"
)

// autoDetectOn is the SlotAutoDetect value meaning detection results
// should be applied.
const autoDetectOn = 0

// Publisher commits derived settings to a status register. Each field
// is an independent write; the register provides no transactional
// guarantee, so a failed write can leave earlier fields applied. That
// partial state stays visible rather than being rolled back.
type Publisher struct {
	reg  StatusRegister
	logf func(format string, args ...any)
}

// NewPublisher returns a publisher writing to reg. logf may be nil.
func NewPublisher(reg StatusRegister, logf func(format string, args ...any)) *Publisher {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Publisher{reg: reg, logf: logf}
}

// Enabled reads the auto-detect toggle. When it reports false the
// publisher will not touch any other slot.
func (p *Publisher) Enabled() (bool, error) {
	v, err := p.reg.Get(SlotAutoDetect)
	if err != nil {
		return false, fmt.Errorf("read auto-detect toggle: %w", err)
	}
	return v == autoDetectOn, nil
}

// Publish writes every field of the settings to the register, reading
// the auto-detect toggle first. It returns false without writing
// anything when auto-detect is off.
func (p *Publisher) Publish(s Settings) (bool, error) {
	on, err := p.Enabled()
	if err != nil {
		return false, err
	}
	if !on {
		p.logf("auto-detect is off, not updating core settings")
		return false, nil
	}

	p.logf("auto-detect is on, updating core settings")
	if err := p.publishSystem(s); err != nil {
		return true, err
	}
	return true, p.publishCartridge(s)
}

// publishSystem writes the timing standard and CIC revision.
func (p *Publisher) publishSystem(s Settings) error {
	if err := p.reg.Set(SlotSystemType, uint32(s.System)); err != nil {
		return fmt.Errorf("write system type: %w", err)
	}
	if err := p.reg.Set(SlotCIC, uint32(s.CIC)); err != nil {
		return fmt.Errorf("write CIC: %w", err)
	}
	return nil
}

// publishCartridge writes the peripheral flags and save type.
func (p *Publisher) publishCartridge(s Settings) error {
	writes := []struct {
		slot  string
		value uint32
	}{
		{SlotControllerPak, boolBit(s.Peripherals.ControllerPak)},
		{SlotRumblePak, boolBit(s.Peripherals.RumblePak)},
		{SlotTransferPak, boolBit(s.Peripherals.TransferPak)},
		{SlotRTC, boolBit(s.Peripherals.RTC)},
		{SlotSaveType, uint32(s.Save)},
	}
	for _, w := range writes {
		if err := p.reg.Set(w.slot, w.value); err != nil {
			return fmt.Errorf("write %s: %w", w.slot, err)
		}
	}
	return nil
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
