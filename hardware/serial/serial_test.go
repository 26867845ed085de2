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

package serial_test

import (
	"testing"

	"github.com/jetsetilly/gopherusart/hardware/serial"
	"github.com/jetsetilly/gopherusart/test"
)

type listener struct {
	written int
	emptied int
}

func (l *listener) CharWritten() {
	l.written++
}

func (l *listener) QueueEmptied() {
	l.emptied++
}

func TestQueue(t *testing.T) {
	l := &listener{}
	q := serial.NewQueue(l, nil, nil, "test")

	_, ok := q.TryDequeue()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, l.emptied, 0)

	test.ExpectSuccess(t, q.WriteChar('a'))
	test.ExpectSuccess(t, q.WriteChar('b'))
	test.ExpectEquality(t, q.Count(), 2)
	test.ExpectEquality(t, l.written, 2)

	ch, ok := q.TryDequeue()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ch, byte('a'))
	test.ExpectEquality(t, l.emptied, 0)

	ch, ok = q.TryDequeue()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ch, byte('b'))
	test.ExpectEquality(t, l.emptied, 1)
	test.ExpectEquality(t, q.Count(), 0)

	// queue is still usable after draining
	test.ExpectSuccess(t, q.WriteChar('c'))
	ch, _ = q.TryDequeue()
	test.ExpectEquality(t, ch, byte('c'))
	test.ExpectEquality(t, l.emptied, 2)
}

func TestQueueReceiveDisabled(t *testing.T) {
	l := &listener{}
	enabled := false
	q := serial.NewQueue(l, func() bool { return enabled }, nil, "test")

	test.ExpectFailure(t, q.WriteChar('a'))
	test.ExpectEquality(t, q.Count(), 0)
	test.ExpectEquality(t, l.written, 0)

	enabled = true
	test.ExpectSuccess(t, q.WriteChar('a'))
	test.ExpectEquality(t, q.Count(), 1)
}

func TestQueueClear(t *testing.T) {
	l := &listener{}
	q := serial.NewQueue(l, nil, nil, "test")

	// clearing an empty queue does not notify
	q.Clear()
	test.ExpectEquality(t, l.emptied, 0)

	q.WriteChar('a')
	q.Clear()
	test.ExpectEquality(t, l.emptied, 1)
	test.ExpectEquality(t, q.Count(), 0)
}

func TestLine(t *testing.T) {
	ln := serial.NewLine("IRQ")
	changes := 0
	ln.OnChange(func(_ bool) { changes++ })

	test.ExpectFailure(t, ln.IsSet())
	ln.Set(true)
	test.ExpectSuccess(t, ln.IsSet())
	test.ExpectEquality(t, ln.String(), "IRQ=1")

	// setting to the same level is not a change
	ln.Set(true)
	test.ExpectEquality(t, changes, 1)

	ln.Unset()
	test.ExpectFailure(t, ln.IsSet())
	test.ExpectEquality(t, changes, 2)
}

func TestSinks(t *testing.T) {
	test.ExpectImplements(t, &serial.Recorder{}, (*serial.Sink)(nil))
	test.ExpectImplements(t, serial.Discard, (*serial.Sink)(nil))

	r := &serial.Recorder{}
	r.TransmitCharacter('h')
	r.TransmitCharacter('i')
	test.ExpectEquality(t, r.String(), "hi")
	r.Reset()
	test.ExpectEquality(t, len(r.Bytes()), 0)

	var got byte
	f := serial.SinkFunc(func(ch byte) { got = ch })
	f.TransmitCharacter('x')
	test.ExpectEquality(t, got, byte('x'))
}
