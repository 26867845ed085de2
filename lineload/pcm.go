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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopherusart/curated"
	"github.com/jetsetilly/gopherusart/logger"
)

const logTag = "lineload"

// pcmData is mono data. it is taken from the left channel in the case of
// stereo source files.
type pcmData struct {
	sampleRate int
	data       []int
}

// firstChannel copies the first channel of an interleaved buffer.
func firstChannel(buf *audio.IntBuffer) []int {
	numChans := 1
	if buf.Format != nil && buf.Format.NumChannels > 0 {
		numChans = buf.Format.NumChannels
	}

	data := make([]int, 0, len(buf.Data)/numChans)
	for i := 0; i < len(buf.Data); i += numChans {
		data = append(data, buf.Data[i])
	}
	return data
}

func loadWAV(f io.ReadSeeker) (pcmData, error) {
	var p pcmData

	dec := wav.NewDecoder(f)
	if dec == nil {
		return p, curated.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return p, curated.Errorf("wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return p, curated.Errorf("wav: %v", err)
	}

	p.data = firstChannel(buf)
	p.sampleRate = int(dec.SampleRate)

	return p, nil
}

func loadMP3(f io.Reader) (pcmData, error) {
	var p pcmData

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return p, curated.Errorf("mp3: %v", err)
	}

	// the stream is always 16 bit little endian with two channels, even if
	// the source is a single channel MP3. a sample is therefore four bytes
	chunk := make([]byte, 4096)
	for err != io.EOF {
		var chunkLen int
		chunkLen, err = dec.Read(chunk)
		if err != nil && err != io.EOF {
			return p, curated.Errorf("mp3: %v", err)
		}

		// chunk lengths are always a multiple of four
		for i := 0; i+1 < chunkLen; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			p.data = append(p.data, int(v))
		}
	}

	p.sampleRate = dec.SampleRate()

	return p, nil
}

func getPCM(filename string) (pcmData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return pcmData{}, curated.Errorf("lineload: %v", err)
	}
	defer f.Close()

	var p pcmData

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		logger.Logf(logger.Allow, logTag, "loading from wav file: %s", filename)
		p, err = loadWAV(f)
	case ".mp3":
		logger.Logf(logger.Allow, logTag, "loading from mp3 file: %s", filename)
		p, err = loadMP3(f)
	default:
		return p, curated.Errorf(UnsupportedFile, filepath.Ext(filename))
	}

	if err != nil {
		return p, curated.Errorf("lineload: %v", err)
	}

	logger.Logf(logger.Allow, logTag, "sample rate: %dHz", p.sampleRate)
	if p.sampleRate > 0 {
		logger.Logf(logger.Allow, logTag, "total time: %.02fs", float64(len(p.data))/float64(p.sampleRate))
	}

	return p, nil
}

// levels converts the PCM data to line levels.
func (p pcmData) levels() []bool {
	if len(p.data) == 0 {
		return nil
	}

	lo := p.data[0]
	hi := p.data[0]
	for _, v := range p.data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	mid := lo + (hi-lo)/2

	l := make([]bool, len(p.data))
	for i, v := range p.data {
		l[i] = v > mid
	}
	return l
}
