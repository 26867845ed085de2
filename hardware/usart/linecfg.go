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

package usart

import (
	"fmt"

	"github.com/jetsetilly/gopherusart/curated"
)

// Parity of the serial line.
type Parity int

// List of valid Parity values.
const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "none"
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	}
	return fmt.Sprintf("unknown parity (%d)", int(p))
}

// StopBits is the length of the stop period of a frame.
type StopBits int

// List of valid StopBits values.
const (
	StopBitsHalf StopBits = iota
	StopBitsOne
	StopBitsOneAndAHalf
	StopBitsTwo
)

func (s StopBits) String() string {
	switch s {
	case StopBitsHalf:
		return "0.5"
	case StopBitsOne:
		return "1"
	case StopBitsOneAndAHalf:
		return "1.5"
	case StopBitsTwo:
		return "2"
	}
	return fmt.Sprintf("unknown stop bits (%d)", int(s))
}

// HalfBits returns the length of the stop period in half bit periods.
func (s StopBits) HalfBits() int {
	switch s {
	case StopBitsHalf:
		return 1
	case StopBitsOne:
		return 2
	case StopBitsOneAndAHalf:
		return 3
	case StopBitsTwo:
		return 4
	}
	panic(curated.Errorf(InvalidStopBits, int(s)))
}

// Encoding returns the value of the CR2 STOP field that selects the stop
// bits. It is the inverse of DecodeStopBits().
func (s StopBits) Encoding() uint32 {
	switch s {
	case StopBitsOne:
		return 0b00
	case StopBitsHalf:
		return 0b01
	case StopBitsTwo:
		return 0b10
	case StopBitsOneAndAHalf:
		return 0b11
	}
	panic(curated.Errorf(InvalidStopBits, int(s)))
}

// LineConfig is the electrical configuration of the serial line as derived
// from the register contents.
type LineConfig struct {
	BaudRate uint32
	Parity   Parity
	StopBits StopBits
}

func (cfg LineConfig) String() string {
	return fmt.Sprintf("%d baud, parity %s, %s stop bits", cfg.BaudRate, cfg.Parity, cfg.StopBits)
}

// InvalidStopBits is the curated error pattern used when a stop bits value
// is outside its domain. It indicates a decoding error and is raised with
// panic().
const InvalidStopBits = "usart: invalid stop bits value (%d)"

// CalculateBaudRate returns the baud rate for the peripheral clock frequency
// and the fields of the BRR register. When over8 is true only the lower three
// bits of the fraction are used.
//
// The divisor is 16 * (mantissa + fraction/16) when oversampling by 16 and
// 8 * (mantissa + fraction/16) when oversampling by 8. A divisor of zero gives
// a baud rate of zero.
func CalculateBaudRate(frequency uint32, mantissa uint32, fraction uint32, over8 bool) uint32 {
	// the divisor in sixteenths is (16 * mantissa) + fraction. multiplying the
	// frequency instead of dividing the divisor keeps the calculation exact
	// for the by8 case
	mult := uint64(1)
	if over8 {
		fraction &= 0b111
		mult = 2
	} else {
		fraction &= 0b1111
	}

	sixteenths := uint64(mantissa&0xfff)*16 + uint64(fraction)
	if sixteenths == 0 {
		return 0
	}

	return uint32(uint64(frequency) * mult / sixteenths)
}

// DecodeStopBits returns the StopBits for the value of the CR2 STOP field.
// Panics if the value is not a two bit value.
func DecodeStopBits(v uint32) StopBits {
	switch v {
	case 0b00:
		return StopBitsOne
	case 0b01:
		return StopBitsHalf
	case 0b10:
		return StopBitsTwo
	case 0b11:
		return StopBitsOneAndAHalf
	}
	panic(curated.Errorf(InvalidStopBits, v))
}

// DecodeParity returns the Parity for the PCE and PS bits of CR1.
func DecodeParity(parityControlEnabled bool, paritySelection bool) Parity {
	if !parityControlEnabled {
		return ParityNone
	}
	if paritySelection {
		return ParityOdd
	}
	return ParityEven
}

// BaudRate returns the current baud rate of the USART.
func (u *USART) BaudRate() uint32 {
	return CalculateBaudRate(u.frequency, u.dividerMantissa.Value(), u.dividerFraction.Value(), u.oversamplingMode.Flag())
}

// StopBits returns the current stop bits setting of the USART.
func (u *USART) StopBits() StopBits {
	return DecodeStopBits(u.stopBits.Value())
}

// Parity returns the current parity setting of the USART.
func (u *USART) Parity() Parity {
	return DecodeParity(u.parityControlEnabled.Flag(), u.paritySelection.Flag())
}

// LineConfig returns the current line configuration of the USART.
func (u *USART) LineConfig() LineConfig {
	return LineConfig{
		BaudRate: u.BaudRate(),
		Parity:   u.Parity(),
		StopBits: u.StopBits(),
	}
}
