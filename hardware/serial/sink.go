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

package serial

// Sink receives characters transmitted by a serial peripheral.
type Sink interface {
	TransmitCharacter(ch byte)
}

// SinkFunc allows a plain function to be used as a Sink.
type SinkFunc func(ch byte)

// TransmitCharacter implements the Sink interface.
func (f SinkFunc) TransmitCharacter(ch byte) {
	f(ch)
}

// Discard is a Sink that drops every character.
var Discard Sink = SinkFunc(func(_ byte) {})

// Recorder is a Sink that keeps every transmitted character.
type Recorder struct {
	data []byte
}

// TransmitCharacter implements the Sink interface.
func (r *Recorder) TransmitCharacter(ch byte) {
	r.data = append(r.data, ch)
}

// Bytes returns a copy of the characters recorded so far.
func (r *Recorder) Bytes() []byte {
	c := make([]byte, len(r.data))
	copy(c, r.data)
	return c
}

// Reset forgets all recorded characters.
func (r *Recorder) Reset() {
	r.data = r.data[:0]
}

func (r *Recorder) String() string {
	return string(r.data)
}
