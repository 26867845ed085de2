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

// Package wavwriter renders the characters transmitted by the USART as the
// logic levels of the serial line and writes them to disk as a WAV file.
//
// Note that the line levels are buffered in memory in their entirity, and
// written to disk when the capture is ended. It is therefore only suitable for
// short captures.
//
// The sample rate of the WAV file is fixed by the baud rate of the line when
// the first character is transmitted. A WAV file can be replayed into the
// receiver with the lineload package.
package wavwriter

import (
	"io"
	"os"

	"github.com/jetsetilly/gopherusart/curated"
	"github.com/jetsetilly/gopherusart/hardware/serial/framing"
	"github.com/jetsetilly/gopherusart/hardware/usart"
	"github.com/jetsetilly/gopherusart/logger"
	"github.com/youpy/go-wav"
)

const logTag = "wavwriter"

// amplitude of the mark (high) and space (low) levels in the WAV file.
const amplitude = 0x6000

// the number of bit periods of idle line at the start and end of the capture.
const idlePeriods = 2

// List of curated error patterns.
const (
	SamplesPerBit   = "wavwriter: samples per bit must be at least 2 (%d)"
	NothingCaptured = "wavwriter: nothing to write to %s"
)

// LineConfigurer is implemented by types that can report the configuration
// of the serial line. The usart.USART type implements this interface.
type LineConfigurer interface {
	LineConfig() usart.LineConfig
}

// WavWriter implements the serial.Sink interface.
type WavWriter struct {
	filename      string
	line          LineConfigurer
	samplesPerBit int

	// sample rate is zero until the first character is captured
	sampleRate int

	buffer []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, line LineConfigurer, samplesPerBit int) (*WavWriter, error) {
	if samplesPerBit < 2 {
		return nil, curated.Errorf(SamplesPerBit, samplesPerBit)
	}

	aw := &WavWriter{
		filename:      filename,
		line:          line,
		samplesPerBit: samplesPerBit,
		buffer:        make([]wav.Sample, 0),
	}

	return aw, nil
}

func (aw *WavWriter) appendLevels(levels []bool) {
	for _, l := range levels {
		w := wav.Sample{}
		if l {
			w.Values[0] = amplitude
		} else {
			w.Values[0] = -amplitude
		}
		aw.buffer = append(aw.buffer, w)
	}
}

// TransmitCharacter implements the serial.Sink interface.
func (aw *WavWriter) TransmitCharacter(ch byte) {
	cfg := aw.line.LineConfig()
	if cfg.BaudRate == 0 {
		logger.Logf(logger.Allow, logTag, "cannot capture %#02x: baud rate is zero", ch)
		return
	}

	if aw.sampleRate == 0 {
		aw.sampleRate = int(cfg.BaudRate) * aw.samplesPerBit
		logger.Logf(logger.Allow, logTag, "sample rate: %dHz", aw.sampleRate)
		aw.appendLevels(framing.Idle(idlePeriods, aw.samplesPerBit))
	}

	// the baud rate may have changed since the start of the capture
	spb := aw.sampleRate / int(cfg.BaudRate)
	if spb < 1 {
		logger.Logf(logger.Allow, logTag, "cannot capture %#02x: %d baud is too fast for the capture", ch, cfg.BaudRate)
		return
	}

	aw.appendLevels(framing.Encode(ch, cfg, spb))
}

// SampleRate returns the sample rate of the capture. Returns zero if no
// character has been captured.
func (aw *WavWriter) SampleRate() int {
	return aw.sampleRate
}

// Len returns the number of samples captured.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Write the capture as a WAV file to the io.Writer.
func (aw *WavWriter) Write(w io.Writer) error {
	if aw.sampleRate == 0 {
		return curated.Errorf(NothingCaptured, aw.filename)
	}

	samples := aw.buffer
	idle := make([]wav.Sample, idlePeriods*aw.samplesPerBit)
	for i := range idle {
		idle[i].Values[0] = amplitude
	}
	samples = append(samples, idle...)

	enc := wav.NewWriter(w, uint32(len(samples)), 1, uint32(aw.sampleRate), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	err := enc.WriteSamples(samples)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// EndCapture writes the capture to the file named when the WavWriter was
// created.
func (aw *WavWriter) EndCapture() (rerr error) {
	if aw.sampleRate == 0 {
		return curated.Errorf(NothingCaptured, aw.filename)
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	logger.Logf(logger.Allow, logTag, "writing line capture to %s", aw.filename)

	return aw.Write(f)
}

// Reset discards the capture.
func (aw *WavWriter) Reset() {
	aw.sampleRate = 0
	aw.buffer = aw.buffer[:0]
}
