// This file is part of Gopherusart.
//
// Gopherusart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherusart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherusart.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences collates the preference values used by the gopherusart
// command. Values are stored in the global preferences file (see the prefs
// and paths packages).
package preferences

import (
	"github.com/jetsetilly/gopherusart/curated"
	"github.com/jetsetilly/gopherusart/hardware/usart"
	"github.com/jetsetilly/gopherusart/paths"
	"github.com/jetsetilly/gopherusart/prefs"
)

// List of curated error patterns.
const (
	BadFrequency     = "preferences: peripheral clock must be greater than zero (%d)"
	BadBaud          = "preferences: baud rate must be greater than zero (%d)"
	BadSamplesPerBit = "preferences: samples per bit must be at least 2 (%d)"
)

// default values.
const (
	defaultBaud          = 9600
	defaultSamplesPerBit = 8
)

// Preferences for the gopherusart command.
type Preferences struct {
	dsk *prefs.Disk

	// peripheral clock in Hz
	Frequency prefs.Int

	// line configuration programmed by the driver
	Baud  prefs.Int
	Over8 prefs.Bool

	// resolution of line captures
	SamplesPerBit prefs.Int

	// echo log entries to the terminal as they are added
	LogEcho prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the global preferences file, which
// is created if it does not exist.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func positive(pattern string, min int) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if v.(int) < min {
			return curated.Errorf(pattern, v.(int))
		}
		return nil
	}
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Frequency.SetHookPre(positive(BadFrequency, 1))
	p.Baud.SetHookPre(positive(BadBaud, 1))
	p.SamplesPerBit.SetHookPre(positive(BadSamplesPerBit, 2))

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("usart.frequency", &p.Frequency)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("usart.baud", &p.Baud)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("usart.over8", &p.Over8)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("capture.samplesPerBit", &p.SamplesPerBit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("log.echo", &p.LogEcho)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Frequency.Set(usart.DefaultFrequency)
	_ = p.Baud.Set(defaultBaud)
	_ = p.Over8.Set(false)
	_ = p.SamplesPerBit.Set(defaultSamplesPerBit)
	_ = p.LogEcho.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
