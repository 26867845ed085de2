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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherusart/curated"
	"github.com/jetsetilly/gopherusart/hardware/usart"
	"github.com/jetsetilly/gopherusart/test"
)

func TestParseLineFlags(t *testing.T) {
	p, err := parseParity("EVEN")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, usart.ParityEven)
	_, err = parseParity("mark")
	test.ExpectFailure(t, err)

	s, err := parseStopBits("1.5")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, usart.StopBitsOneAndAHalf)
	_, err = parseStopBits("3")
	test.ExpectFailure(t, err)
}

// chdir to a temporary directory so that the preferences file is not created
// in the source tree.
func chdir(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	test.ExpectSuccess(t, err)
	dir := t.TempDir()
	test.ExpectSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
	return dir
}

func TestCaptureAndReplay(t *testing.T) {
	dir := chdir(t)
	wav := filepath.Join(dir, "hello.wav")
	state := make(chan stateRequest)

	w := &test.CompareWriter{}
	err := run(state, []string{"-prefs", "usart.baud::19200", "CAPTURE", "-wav", wav, "-parity", "odd", "hello", "world"}, w)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "captured 11 characters at 19184 baud, parity odd, 1 stop bits"))

	w.Clear()
	err = run(state, []string{"-prefs", "usart.baud::19200", "REPLAY", "-parity", "odd", wav}, w)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "replayed 11 characters at 19184 baud, parity odd, 1 stop bits\n\"hello world\"\n")

	// missing arguments
	test.ExpectFailure(t, run(state, []string{"CAPTURE"}, w))
	test.ExpectFailure(t, run(state, []string{"REPLAY"}, w))
	test.ExpectFailure(t, run(state, []string{"REPLAY", "-stop", "3", wav}, w))
}

func TestFrequencyRange(t *testing.T) {
	chdir(t)
	state := make(chan stateRequest)
	w := &test.CompareWriter{}

	err := run(state, []string{"-freq", "5000000000", "INFO"}, w)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, badFrequency))
	test.ExpectEquality(t, w.String(), "")

	err = run(state, []string{"-freq", "4294967295", "INFO"}, w)
	test.ExpectSuccess(t, err)
}

func TestInfo(t *testing.T) {
	dir := chdir(t)
	dot := filepath.Join(dir, "usart.dot")
	state := make(chan stateRequest)

	w := &test.CompareWriter{}
	err := run(state, []string{"INFO", "-brr", "0x341", "-cr2", "0x2000", "-cr1", "0x240c", "-memviz", dot}, w)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.HasLine("9603 baud, parity even, 2 stop bits"))
	test.ExpectSuccess(t, w.HasLine(fmt.Sprintf("object graph written to %s", dot)))

	info, err := os.Stat(dot)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.Size() > 0)
}

func TestHelp(t *testing.T) {
	chdir(t)
	state := make(chan stateRequest)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, run(state, []string{"-help"}, w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "available sub-modes: ECHO, CAPTURE, REPLAY, INFO, VERSION"))
}

func TestVersion(t *testing.T) {
	state := make(chan stateRequest)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, run(state, []string{"VERSION"}, w))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Gopherusart "))
}
