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

// Package bridge connects the USART to a byte stream outside the program,
// usually a terminal or a serial device.
//
// Bytes arriving on the port are read on a separate goroutine and delivered
// on the channel returned by Input(). The USART is not safe for concurrent
// use so the host must drain the channel on the goroutine that drives the
// USART and write each byte with USART.WriteChar().
//
// The Bridge implements the serial.Sink interface. Transmitted characters
// are written to the port immediately.
package bridge

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/jetsetilly/gopherusart/curated"
	"github.com/jetsetilly/gopherusart/logger"
	"github.com/pkg/term"
)

const logTag = "bridge"

// size of the input channel. bytes are not lost if the host falls behind,
// the read goroutine simply waits
const inputQueueSize = 256

// Port is the external end of the bridge.
type Port interface {
	io.ReadWriteCloser
}

// Bridge between a Port and the USART.
type Bridge struct {
	port  Port
	input chan byte

	closeOnce sync.Once
	closed    chan bool
}

// NewBridge is the preferred method of initialisation for the Bridge type.
// Reading from the port starts immediately.
func NewBridge(port Port) *Bridge {
	b := &Bridge{
		port:   port,
		input:  make(chan byte, inputQueueSize),
		closed: make(chan bool),
	}
	go b.read()
	return b
}

// termPort restores the device settings before closing.
type termPort struct {
	*term.Term
}

func (p termPort) Close() error {
	err := p.Term.Restore()
	if err != nil {
		_ = p.Term.Close()
		return err
	}
	return p.Term.Close()
}

// Open a serial device in raw mode at the baud rate and create a Bridge for
// it.
func Open(device string, baud uint32) (*Bridge, error) {
	t, err := term.Open(device, term.Speed(int(baud)), term.RawMode)
	if err != nil {
		return nil, curated.Errorf("bridge: %v", err)
	}
	logger.Logf(logger.Allow, logTag, "opened %s at %d baud", device, baud)
	return NewBridge(termPort{Term: t}), nil
}

func (b *Bridge) read() {
	defer close(b.input)

	buf := make([]byte, 64)
	for {
		n, err := b.port.Read(buf)
		for _, ch := range buf[:n] {
			select {
			case b.input <- ch:
			case <-b.closed:
				return
			}
		}

		if err != nil {
			select {
			case <-b.closed:
				// errors caused by closing the port are expected
			default:
				if !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
					logger.Logf(logger.Allow, logTag, "read: %v", err)
				}
			}
			return
		}
	}
}

// Input returns the channel on which bytes read from the port are delivered.
// The channel is closed when the port reaches the end of its input or is
// closed.
func (b *Bridge) Input() <-chan byte {
	return b.input
}

// TransmitCharacter implements the serial.Sink interface.
func (b *Bridge) TransmitCharacter(ch byte) {
	_, err := b.port.Write([]byte{ch})
	if err != nil {
		logger.Logf(logger.Allow, logTag, "transmit %#02x: %v", ch, err)
	}
}

// Close the port. The input channel is closed once the read goroutine notices
// that the port has been closed. It is safe to call Close() more than once.
func (b *Bridge) Close() error {
	var err error
	b.closeOnce.Do(func() {
		close(b.closed)
		err = b.port.Close()
	})
	if err != nil {
		return curated.Errorf("bridge: %v", err)
	}
	return nil
}
