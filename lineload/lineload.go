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

package lineload

import (
	"github.com/jetsetilly/gopherusart/curated"
	"github.com/jetsetilly/gopherusart/hardware/serial/framing"
	"github.com/jetsetilly/gopherusart/hardware/usart"
	"github.com/jetsetilly/gopherusart/logger"
)

// List of curated error patterns.
const (
	UnsupportedFile = "lineload: unsupported file type (%s)"
	NoLineData      = "lineload: no line data in %s"
	SampleRate      = "lineload: sample rate of %dHz is too low for %d baud"
)

// Load decodes the characters recorded in the named file. The line
// configuration should be the configuration of the line at the time of the
// recording. The file type is decided by the filename extension.
func Load(filename string, cfg usart.LineConfig) ([]byte, error) {
	p, err := getPCM(filename)
	if err != nil {
		return nil, err
	}

	if len(p.data) == 0 {
		return nil, curated.Errorf(NoLineData, filename)
	}

	if cfg.BaudRate == 0 {
		return nil, curated.Errorf(SampleRate, p.sampleRate, cfg.BaudRate)
	}

	// rounded to the nearest whole sample
	spb := (p.sampleRate + int(cfg.BaudRate)/2) / int(cfg.BaudRate)
	if spb < 2 {
		return nil, curated.Errorf(SampleRate, p.sampleRate, cfg.BaudRate)
	}

	dec := framing.NewDecoder(cfg, spb)
	var data []byte
	for _, l := range p.levels() {
		if ch, ok := dec.Sample(l); ok {
			data = append(data, ch)
		}
	}

	if dec.Rejected > 0 {
		logger.Logf(logger.Allow, logTag, "%d frames rejected", dec.Rejected)
	}
	logger.Logf(logger.Allow, logTag, "%d characters decoded", len(data))

	return data, nil
}

// Receiver is implemented by types that can accept received characters. The
// usart.USART type implements this interface.
type Receiver interface {
	WriteChar(ch byte) bool
}

// Replay writes the characters to the receiver. Returns the number of
// characters accepted by the receiver.
func Replay(rcv Receiver, data []byte) int {
	n := 0
	for _, ch := range data {
		if rcv.WriteChar(ch) {
			n++
		}
	}
	return n
}
