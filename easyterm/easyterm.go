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

// Package easyterm is a wrapper for "github.com/pkg/term". It puts the
// controlling terminal into raw mode, so that every key press is delivered as
// a single byte, and restores it when the program ends.
//
// A Terminal is an io.ReadWriteCloser and can be used as the port of a
// serial bridge.
package easyterm

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/jetsetilly/gopherusart/curated"
	"github.com/pkg/term"
)

// DefaultDevice is the controlling terminal of the process.
const DefaultDevice = "/dev/tty"

// Terminal is a terminal device in raw mode.
type Terminal struct {
	t *term.Term
}

// Open the terminal device and put it into raw mode.
func Open(device string) (*Terminal, error) {
	t, err := term.Open(device)
	if err != nil {
		return nil, curated.Errorf("easyterm: %v", err)
	}

	err = t.SetRaw()
	if err != nil {
		_ = t.Close()
		return nil, curated.Errorf("easyterm: %v", err)
	}

	return &Terminal{t: t}, nil
}

// Read implements the io.Reader interface.
func (et *Terminal) Read(p []byte) (int, error) {
	return et.t.Read(p)
}

// Write implements the io.Writer interface. Bytes are written unchanged.
func (et *Terminal) Write(p []byte) (int, error) {
	return et.t.Write(p)
}

// Print writes the formatted string to the terminal. Newlines are expanded to
// carriage-return and newline because the terminal is in raw mode.
func (et *Terminal) Print(s string, a ...interface{}) {
	s = fmt.Sprintf(s, a...)
	_, _ = et.t.Write([]byte(strings.ReplaceAll(s, "\n", "\r\n")))
}

// Close restores the terminal to the mode it was in when it was opened and
// closes the device.
func (et *Terminal) Close() error {
	err := et.t.Restore()
	if err != nil {
		_ = et.t.Close()
		return curated.Errorf("easyterm: %v", err)
	}
	err = et.t.Close()
	if err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// SuspendProcess manually suspends the current process. This is useful if
// the terminal is in raw mode and the terminal is given the suspend key.
func SuspendProcess() {
	p, err := os.FindProcess(os.Getppid())
	if err != nil {
		panic("gopherusart doesn't seem to have a parent process")
	}

	// send TSTP signal to parent process
	_ = p.Signal(syscall.SIGTSTP)
}
