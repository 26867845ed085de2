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

package framing

import (
	"github.com/jetsetilly/gopherusart/hardware/usart"
)

// Decoder recovers characters from line levels.
type Decoder struct {
	cfg usart.LineConfig

	// sample offsets, from the falling edge of the start bit, at which the
	// line is sampled. the last offset is in the stop period
	centres []int

	// the level of the previous sample. used to detect the falling edge of
	// the start bit
	prev bool

	inFrame bool
	pos     int
	idx     int
	levels  []bool

	// number of frames discarded because of a bad stop bit or a parity
	// mismatch
	Rejected int
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder(cfg usart.LineConfig, samplesPerBit int) *Decoder {
	d := &Decoder{
		cfg:  cfg,
		prev: true,
	}

	n := frameBits(cfg.Parity)
	for i := 0; i < n; i++ {
		d.centres = append(d.centres, i*samplesPerBit+samplesPerBit/2)
	}
	d.centres = append(d.centres, n*samplesPerBit+stopLength(cfg.StopBits, samplesPerBit)/2)
	d.levels = make([]bool, 0, len(d.centres))

	return d
}

// Sample adds the next line level to the decoder. Returns a character and true
// if the sample completed a valid frame.
func (d *Decoder) Sample(level bool) (byte, bool) {
	if !d.inFrame {
		if d.prev && !level {
			d.inFrame = true
			d.pos = 0
			d.idx = 0
			d.levels = d.levels[:0]
		}
	}
	d.prev = level

	if !d.inFrame {
		return 0, false
	}

	if d.pos == d.centres[d.idx] {
		// a start bit that is no longer low at its centre was a glitch
		if d.idx == 0 && level {
			d.inFrame = false
			return 0, false
		}

		d.levels = append(d.levels, level)
		d.idx++

		if d.idx == len(d.centres) {
			d.inFrame = false
			return d.complete()
		}
	}
	d.pos++

	return 0, false
}

func (d *Decoder) complete() (byte, bool) {
	// stop period must be high
	if !d.levels[len(d.levels)-1] {
		d.Rejected++
		return 0, false
	}

	var ch byte
	for i := 0; i < DataBits; i++ {
		if d.levels[1+i] {
			ch |= 1 << i
		}
	}

	if p, ok := ParityBit(ch, d.cfg.Parity); ok {
		if d.levels[1+DataBits] != p {
			d.Rejected++
			return 0, false
		}
	}

	return ch, true
}

// Decode is a convenience function that runs all levels through a new Decoder
// and returns the characters found.
func Decode(levels []bool, cfg usart.LineConfig, samplesPerBit int) []byte {
	d := NewDecoder(cfg, samplesPerBit)
	var data []byte
	for _, l := range levels {
		if ch, ok := d.Sample(l); ok {
			data = append(data, ch)
		}
	}
	return data
}
