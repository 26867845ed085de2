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

package usart_test

import (
	"testing"

	"github.com/jetsetilly/gopherusart/hardware/usart"
	"github.com/jetsetilly/gopherusart/test"
)

const frequency = 8000000

func TestBaudRateBy16(t *testing.T) {
	for m := uint32(0); m <= 4095; m++ {
		for f := uint32(0); f <= 15; f++ {
			b := usart.CalculateBaudRate(frequency, m, f, false)
			if m == 0 && f == 0 {
				if b != 0 {
					t.Fatalf("baud rate for zero divisor should be zero (%d)", b)
				}
				continue
			}
			expected := uint32(float64(frequency) / (16 * (float64(m) + float64(f)/16.0)))
			if b != expected {
				t.Fatalf("baud rate for mantissa %d and fraction %d is %d (expected %d)", m, f, b, expected)
			}
		}
	}
}

func TestBaudRateBy8(t *testing.T) {
	for m := uint32(0); m <= 4095; m++ {
		for f := uint32(0); f <= 7; f++ {
			b := usart.CalculateBaudRate(frequency, m, f, true)

			// bit 3 of the fraction is ignored when oversampling by 8
			if b != usart.CalculateBaudRate(frequency, m, f|0b1000, true) {
				t.Fatalf("bit 3 of fraction changes by8 baud rate (mantissa %d, fraction %d)", m, f)
			}

			if m == 0 && f == 0 {
				test.ExpectEquality(t, b, uint32(0))
				continue
			}
			expected := uint32(float64(frequency) / (8 * (float64(m) + float64(f)/16.0)))
			if b != expected {
				t.Fatalf("by8 baud rate for mantissa %d and fraction %d is %d (expected %d)", m, f, b, expected)
			}
		}
	}
}

func TestNominalBaudRate(t *testing.T) {
	// divisor of 16 * (52 + 1/16) = 833. 8000000 / 833 is 9603.84, which is
	// the closest the divider gets to 9600 baud
	test.ExpectEquality(t, usart.CalculateBaudRate(frequency, 52, 1, false), uint32(9603))

	// the same divisor when oversampling by 8 is 8 * (104 + 2/16) = 833
	test.ExpectEquality(t, usart.CalculateBaudRate(frequency, 104, 2, true), uint32(9603))

	// a fraction of 8 on its own is a zero divisor when oversampling by 8
	test.ExpectEquality(t, usart.CalculateBaudRate(frequency, 0, 8, true), uint32(0))
	test.ExpectEquality(t, usart.CalculateBaudRate(frequency, 0, 8, false), uint32(16000000))
}

func TestDecodeStopBits(t *testing.T) {
	test.ExpectEquality(t, usart.DecodeStopBits(0), usart.StopBitsOne)
	test.ExpectEquality(t, usart.DecodeStopBits(1), usart.StopBitsHalf)
	test.ExpectEquality(t, usart.DecodeStopBits(2), usart.StopBitsTwo)
	test.ExpectEquality(t, usart.DecodeStopBits(3), usart.StopBitsOneAndAHalf)
	test.ExpectPanic(t, func() { usart.DecodeStopBits(4) })

	// encoding is the inverse of decoding
	for v := uint32(0); v <= 3; v++ {
		test.ExpectEquality(t, usart.DecodeStopBits(v).Encoding(), v)
	}
}

func TestDecodeParity(t *testing.T) {
	test.ExpectEquality(t, usart.DecodeParity(false, false), usart.ParityNone)
	test.ExpectEquality(t, usart.DecodeParity(false, true), usart.ParityNone)
	test.ExpectEquality(t, usart.DecodeParity(true, false), usart.ParityEven)
	test.ExpectEquality(t, usart.DecodeParity(true, true), usart.ParityOdd)
}

func TestLineConfigString(t *testing.T) {
	cfg := usart.LineConfig{BaudRate: 9600, Parity: usart.ParityEven, StopBits: usart.StopBitsOneAndAHalf}
	test.ExpectEquality(t, cfg.String(), "9600 baud, parity even, 1.5 stop bits")
}
