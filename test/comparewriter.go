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

package test

import "strings"

// CompareWriter is an io.Writer that collects everything written to it so
// that the output of a command or a terminal session can be checked.
type CompareWriter struct {
	buffer []byte
}

func (cw *CompareWriter) Write(p []byte) (n int, err error) {
	cw.buffer = append(cw.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (cw *CompareWriter) Clear() {
	cw.buffer = cw.buffer[:0]
}

// Compare returns true if the buffer matches s exactly.
func (cw *CompareWriter) Compare(s string) bool {
	return s == string(cw.buffer)
}

func (cw *CompareWriter) String() string {
	return string(cw.buffer)
}

// Lines returns the buffer split into lines. Line endings may be LF or CR LF
// and a trailing line ending does not produce an empty final line.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(string(cw.buffer), "\n")
	if s == "" {
		return []string{}
	}
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

// HasLine returns true if one of the lines in the buffer is exactly s.
func (cw *CompareWriter) HasLine(s string) bool {
	for _, l := range cw.Lines() {
		if l == s {
			return true
		}
	}
	return false
}
