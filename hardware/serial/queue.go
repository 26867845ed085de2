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

import (
	"github.com/jetsetilly/gopherusart/logger"
)

// QueueListener is notified when the Queue changes between empty and
// non-empty.
type QueueListener interface {
	// a character has been written to the queue
	CharWritten()

	// the last character in the queue has been taken
	QueueEmptied()
}

// Queue is the receive buffer of a serial peripheral. Characters arrive with
// WriteChar() and are consumed by the peripheral with TryDequeue().
type Queue struct {
	data []byte

	listener QueueListener

	// characters written to the queue when receiveEnabled() returns false are
	// dropped. a nil function means the receiver is always enabled
	receiveEnabled func() bool

	// logging permission of the owning peripheral
	perm logger.Permission
	tag  string
}

// NewQueue is the preferred method of initialisation for the Queue type. The
// listener and the receiveEnabled function can be nil.
func NewQueue(listener QueueListener, receiveEnabled func() bool, perm logger.Permission, tag string) *Queue {
	if perm == nil {
		perm = logger.Allow
	}
	return &Queue{
		data:           make([]byte, 0, 16),
		listener:       listener,
		receiveEnabled: receiveEnabled,
		perm:           perm,
		tag:            tag,
	}
}

// WriteChar adds a character to the end of the queue. Returns false if the
// character was dropped because the receiver is disabled.
func (q *Queue) WriteChar(ch byte) bool {
	if q.receiveEnabled != nil && !q.receiveEnabled() {
		logger.Logf(q.perm, q.tag, "character %#02x received while receiver is disabled. dropping", ch)
		return false
	}

	q.data = append(q.data, ch)
	if q.listener != nil {
		q.listener.CharWritten()
	}
	return true
}

// TryDequeue takes the character at the front of the queue. The second return
// value is false if the queue was empty.
func (q *Queue) TryDequeue() (byte, bool) {
	if len(q.data) == 0 {
		return 0, false
	}

	ch := q.data[0]
	q.data = q.data[1:]

	if len(q.data) == 0 {
		q.data = q.data[:0]
		if q.listener != nil {
			q.listener.QueueEmptied()
		}
	}

	return ch, true
}

// Count returns the number of characters waiting in the queue.
func (q *Queue) Count() int {
	return len(q.data)
}

// Clear empties the queue. The listener is notified if the queue contained
// any characters.
func (q *Queue) Clear() {
	if len(q.data) == 0 {
		return
	}
	q.data = q.data[:0]
	if q.listener != nil {
		q.listener.QueueEmptied()
	}
}
