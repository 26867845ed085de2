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

// Package framing converts characters to and from the levels of an
// asynchronous serial line. It is used to render the output of a USART as a
// line recording and to recover characters from such a recording.
//
// A frame is a low start bit, eight data bits (least significant bit first),
// an optional parity bit and a high stop period. The line idles high.
//
// Line levels are sampled at a fixed number of samples per bit. The Encode()
// function returns the levels for a single frame. The Decoder type consumes
// levels one sample at a time and reports characters as they are completed.
package framing

import (
	"math/bits"

	"github.com/jetsetilly/gopherusart/hardware/usart"
)

// DataBits is the number of data bits in a frame.
const DataBits = 8

// ParityBit returns the level of the parity bit for the character. The second
// return value is false if the configuration has no parity bit.
func ParityBit(ch byte, parity usart.Parity) (bool, bool) {
	ones := bits.OnesCount8(ch)
	switch parity {
	case usart.ParityEven:
		// the total number of ones including the parity bit is even
		return ones%2 == 1, true
	case usart.ParityOdd:
		return ones%2 == 0, true
	}
	return false, false
}

// frameBits is the number of whole bit periods before the stop period.
func frameBits(parity usart.Parity) int {
	if parity == usart.ParityNone {
		return 1 + DataBits
	}
	return 1 + DataBits + 1
}

// FrameLength returns the number of samples in a frame.
func FrameLength(cfg usart.LineConfig, samplesPerBit int) int {
	return frameBits(cfg.Parity)*samplesPerBit + stopLength(cfg.StopBits, samplesPerBit)
}

// stopLength is the number of samples in the stop period. it is never less
// than one sample.
func stopLength(stop usart.StopBits, samplesPerBit int) int {
	n := stop.HalfBits() * samplesPerBit / 2
	if n < 1 {
		n = 1
	}
	return n
}

// Encode returns the line levels of a single frame. A true value is a high
// level.
func Encode(ch byte, cfg usart.LineConfig, samplesPerBit int) []bool {
	levels := make([]bool, 0, FrameLength(cfg, samplesPerBit))

	bit := func(level bool) {
		for i := 0; i < samplesPerBit; i++ {
			levels = append(levels, level)
		}
	}

	// start bit
	bit(false)

	for i := 0; i < DataBits; i++ {
		bit(ch&(1<<i) != 0)
	}

	if p, ok := ParityBit(ch, cfg.Parity); ok {
		bit(p)
	}

	for i := stopLength(cfg.StopBits, samplesPerBit); i > 0; i-- {
		levels = append(levels, true)
	}

	return levels
}

// Idle returns the line levels for a number of idle bit periods.
func Idle(periods int, samplesPerBit int) []bool {
	levels := make([]bool, periods*samplesPerBit)
	for i := range levels {
		levels[i] = true
	}
	return levels
}
