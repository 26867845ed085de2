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

package usart

// BufferState of the receive path.
type BufferState int

// List of valid BufferState values.
const (
	Empty BufferState = iota
	Ready
)

func (s BufferState) String() string {
	if s == Ready {
		return "ready"
	}
	return "empty"
}

// BufferState returns the current state of the receive buffer.
func (u *USART) BufferState() BufferState {
	return u.bufferState
}

// AddBufferStateObserver registers a function that is called whenever the
// buffer state changes. Observers are called synchronously in the order they
// were added, after the status bits and output lines have been updated.
func (u *USART) AddBufferStateObserver(f func(BufferState)) {
	u.observers = append(u.observers, f)
}

func (u *USART) setBufferState(s BufferState) {
	if u.bufferState == s {
		return
	}
	u.bufferState = s

	u.rdrNotEmpty.SetFlag(s == Ready)
	u.updateInterrupt()
	u.updateDMARequest()

	for _, f := range u.observers {
		f(s)
	}
}

// queueListener connects the receive queue to the buffer state machine.
type queueListener struct {
	u *USART
}

func (l queueListener) CharWritten() {
	l.u.setBufferState(Ready)
}

func (l queueListener) QueueEmptied() {
	l.u.setBufferState(Empty)
}
