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

package wavwriter_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherusart/curated"
	"github.com/jetsetilly/gopherusart/hardware/serial/framing"
	"github.com/jetsetilly/gopherusart/hardware/usart"
	"github.com/jetsetilly/gopherusart/test"
	"github.com/jetsetilly/gopherusart/wavwriter"
)

type fixedLine usart.LineConfig

func (l *fixedLine) LineConfig() usart.LineConfig {
	return usart.LineConfig(*l)
}

func TestSamplesPerBit(t *testing.T) {
	line := &fixedLine{BaudRate: 9600}
	_, err := wavwriter.New("test.wav", line, 1)
	test.ExpectSuccess(t, curated.Is(err, wavwriter.SamplesPerBit))
	_, err = wavwriter.New("test.wav", line, 2)
	test.ExpectSuccess(t, err)
}

func TestCapture(t *testing.T) {
	line := &fixedLine{BaudRate: 9600, StopBits: usart.StopBitsOne}
	aw, err := wavwriter.New("test.wav", line, 4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, aw.SampleRate(), 0)

	// nothing to write yet
	test.ExpectSuccess(t, curated.Is(aw.Write(&bytes.Buffer{}), wavwriter.NothingCaptured))

	aw.TransmitCharacter('a')
	test.ExpectEquality(t, aw.SampleRate(), 9600*4)

	// leading idle line and one frame
	test.ExpectEquality(t, aw.Len(), 2*4+framing.FrameLength(usart.LineConfig(*line), 4))

	var b bytes.Buffer
	test.ExpectSuccess(t, aw.Write(&b))
	test.ExpectEquality(t, string(b.Bytes()[:4]), "RIFF")

	aw.Reset()
	test.ExpectEquality(t, aw.Len(), 0)
	test.ExpectEquality(t, aw.SampleRate(), 0)
}

func TestZeroBaud(t *testing.T) {
	line := &fixedLine{BaudRate: 0}
	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "test.wav"), line, 4)
	test.ExpectSuccess(t, err)

	aw.TransmitCharacter('a')
	test.ExpectEquality(t, aw.Len(), 0)
	test.ExpectSuccess(t, curated.Is(aw.EndCapture(), wavwriter.NothingCaptured))
}

func TestBaudChange(t *testing.T) {
	line := &fixedLine{BaudRate: 9600, StopBits: usart.StopBitsOne}
	aw, err := wavwriter.New("test.wav", line, 4)
	test.ExpectSuccess(t, err)

	aw.TransmitCharacter('a')
	n := aw.Len()

	// twice as fast leaves two samples per bit
	line.BaudRate = 19200
	aw.TransmitCharacter('a')
	test.ExpectEquality(t, aw.Len()-n, framing.FrameLength(usart.LineConfig(*line), 2))

	// too fast for the sample rate so the character is dropped
	n = aw.Len()
	line.BaudRate = 9600 * 5
	aw.TransmitCharacter('a')
	test.ExpectEquality(t, aw.Len(), n)
}
