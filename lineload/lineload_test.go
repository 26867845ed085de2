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

package lineload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherusart/curated"
	"github.com/jetsetilly/gopherusart/driver"
	"github.com/jetsetilly/gopherusart/hardware/usart"
	"github.com/jetsetilly/gopherusart/lineload"
	"github.com/jetsetilly/gopherusart/test"
	"github.com/jetsetilly/gopherusart/wavwriter"
)

// capture transmits the message through a USART configured with cfg and
// writes the line to a WAV file in a temporary directory.
func capture(t *testing.T, cfg driver.Config, message string) (string, usart.LineConfig) {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "capture.wav")

	u := usart.NewUSART(usart.DefaultFrequency, nil)
	aw, err := wavwriter.New(filename, u, 8)
	test.ExpectSuccess(t, err)
	u.SetSink(aw)

	drv := driver.NewDriver(u, usart.DefaultFrequency)
	test.ExpectSuccess(t, drv.Configure(cfg))
	test.ExpectEquality(t, drv.TransmitString(message), len(message))
	test.ExpectSuccess(t, aw.EndCapture())

	return filename, u.LineConfig()
}

func TestRoundTrip(t *testing.T) {
	configs := []driver.Config{
		{Baud: 9600, Parity: usart.ParityNone, StopBits: usart.StopBitsOne},
		{Baud: 19200, Parity: usart.ParityEven, StopBits: usart.StopBitsTwo},
		{Baud: 4800, Parity: usart.ParityOdd, StopBits: usart.StopBitsOneAndAHalf},
	}

	for _, cfg := range configs {
		filename, line := capture(t, cfg, "hello world")
		data, err := lineload.Load(filename, line)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, string(data), "hello world")
	}
}

func TestParityMismatch(t *testing.T) {
	filename, line := capture(t, driver.Config{Baud: 9600, Parity: usart.ParityEven, StopBits: usart.StopBitsOne}, "abc")

	// the parity bit is sampled as the stop bit. frames with a low parity bit
	// are rejected
	line.Parity = usart.ParityNone
	data, err := lineload.Load(filename, line)
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, string(data), "abc")
}

func TestErrors(t *testing.T) {
	line := usart.LineConfig{BaudRate: 9600, StopBits: usart.StopBitsOne}

	_, err := lineload.Load(filepath.Join(t.TempDir(), "missing.wav"), line)
	test.ExpectFailure(t, err)

	txt := filepath.Join(t.TempDir(), "line.txt")
	test.ExpectSuccess(t, os.WriteFile(txt, []byte("not audio"), 0o600))
	_, err = lineload.Load(txt, line)
	test.ExpectSuccess(t, curated.Is(err, lineload.UnsupportedFile))

	bad := filepath.Join(t.TempDir(), "bad.wav")
	test.ExpectSuccess(t, os.WriteFile(bad, []byte("not audio"), 0o600))
	_, err = lineload.Load(bad, line)
	test.ExpectFailure(t, err)

	// the capture is at eight samples per bit so a baud rate ten times higher
	// leaves too few samples for each bit
	filename, captured := capture(t, driver.Config{Baud: 9600, StopBits: usart.StopBitsOne}, "x")
	captured.BaudRate *= 10
	_, err = lineload.Load(filename, captured)
	test.ExpectSuccess(t, curated.Is(err, lineload.SampleRate))

	captured.BaudRate = 0
	_, err = lineload.Load(filename, captured)
	test.ExpectSuccess(t, curated.Is(err, lineload.SampleRate))
}

func TestReplay(t *testing.T) {
	u := usart.NewUSART(usart.DefaultFrequency, nil)

	// receiver is disabled after reset
	test.ExpectEquality(t, lineload.Replay(u, []byte("abc")), 0)
	test.ExpectEquality(t, u.Count(), 0)

	drv := driver.NewDriver(u, usart.DefaultFrequency)
	test.ExpectSuccess(t, drv.Configure(driver.Config{Baud: 9600, StopBits: usart.StopBitsOne}))
	test.ExpectEquality(t, lineload.Replay(u, []byte("abc")), 3)
	test.ExpectEquality(t, string(drv.ReceiveAll()), "abc")
}
