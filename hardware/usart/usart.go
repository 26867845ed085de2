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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherusart/hardware/serial"
	"github.com/jetsetilly/gopherusart/hardware/usart/registers"
	"github.com/jetsetilly/gopherusart/logger"
)

const logTag = "usart"

// DefaultFrequency of the peripheral clock in Hz.
const DefaultFrequency = 8000000

// USART is the register model of the peripheral.
type USART struct {
	frequency uint32

	sink  serial.Sink
	queue *serial.Queue

	// output lines
	IRQ               *serial.Line
	ReceiveDMARequest *serial.Line

	// register map indexed by slot. the GTPR slot is nil
	regs [registers.NumRegisters]*registers.Register

	// status
	rdrNotEmpty          *registers.Field
	transmissionComplete *registers.Field

	// baud rate
	dividerFraction *registers.Field
	dividerMantissa *registers.Field

	// control 1
	receiverEnabled                           *registers.Field
	transmitterEnabled                        *registers.Field
	receiverNotEmptyInterruptEnabled          *registers.Field
	transmissionCompleteInterruptEnabled      *registers.Field
	transmitDataRegisterEmptyInterruptEnabled *registers.Field
	paritySelection                           *registers.Field
	parityControlEnabled                      *registers.Field
	usartEnabled                              *registers.Field
	oversamplingMode                          *registers.Field

	// control 2
	stopBits *registers.Field

	// control 3
	receiveDMAEnabled *registers.Field

	bufferState BufferState
	observers   []func(BufferState)

	logging bool
}

// NewUSART is the preferred method of initialisation for the USART type. The
// frequency is the peripheral clock in Hz. If sink is nil then transmitted
// characters are discarded.
//
// The USART is reset before it is returned.
func NewUSART(frequency uint32, sink serial.Sink) *USART {
	if sink == nil {
		sink = serial.Discard
	}

	u := &USART{
		frequency:         frequency,
		sink:              sink,
		IRQ:               serial.NewLine("IRQ"),
		ReceiveDMARequest: serial.NewLine("DMA"),
		logging:           true,
	}

	u.queue = serial.NewQueue(queueListener{u: u}, u.isReceiveEnabled, u, logTag)
	u.buildRegisterMap()
	u.Reset()

	return u
}

// AllowLogging implements the logger.Permission interface.
func (u *USART) AllowLogging() bool {
	return u.logging
}

// SetLogging turns logging of operational anomalies on or off.
func (u *USART) SetLogging(on bool) {
	u.logging = on
}

// SetSink changes where transmitted characters are sent. A nil sink discards
// transmitted characters.
func (u *USART) SetSink(sink serial.Sink) {
	if sink == nil {
		sink = serial.Discard
	}
	u.sink = sink
}

// Frequency returns the peripheral clock frequency in Hz.
func (u *USART) Frequency() uint32 {
	return u.frequency
}

// Reset the USART to its power-on state. The receive queue is emptied and both
// output lines are released.
func (u *USART) Reset() {
	for _, r := range u.regs {
		if r != nil {
			r.Reset()
		}
	}

	// clearing the queue moves the buffer state to Empty through the queue
	// listener, if the queue was not already empty
	u.queue.Clear()
	u.bufferState = Empty
	u.rdrNotEmpty.SetFlag(false)

	u.IRQ.Unset()
	u.ReceiveDMARequest.Unset()
}

// WriteChar delivers a character to the receiver. The character is dropped if
// the receiver or the USART is disabled. Returns false if the character was
// dropped.
func (u *USART) WriteChar(ch byte) bool {
	return u.queue.WriteChar(ch)
}

// Count returns the number of characters waiting to be read from the data
// register.
func (u *USART) Count() int {
	return u.queue.Count()
}

func (u *USART) isReceiveEnabled() bool {
	return u.receiverEnabled.Flag() && u.usartEnabled.Flag()
}

// register returns the register at the offset or nil if the offset does not
// address an implemented register.
func (u *USART) register(offset uint32) *registers.Register {
	s, ok := registers.Slot(offset)
	if !ok {
		return nil
	}
	return u.regs[s]
}

// Read returns the value of the register at offset, truncated to the width of
// the access. Reads from offsets that are not implemented return zero.
//
// Panics if the width is not one of registers.Byte, registers.Word or
// registers.DoubleWord.
func (u *USART) Read(offset uint32, width registers.Width) uint32 {
	mask := width.Mask()

	r := u.register(offset)
	if r == nil {
		logger.Logf(u, logTag, "%s read from unimplemented register %s", width, registers.Name(offset))
		return 0
	}

	return r.Read() & mask
}

// Write value to the register at offset. Accesses narrower than 32 bits change
// only the lower bits of the register. Writes to offsets that are not
// implemented are ignored.
//
// Panics if the width is not one of registers.Byte, registers.Word or
// registers.DoubleWord.
func (u *USART) Write(offset uint32, width registers.Width, value uint32) {
	mask := width.Mask()

	r := u.register(offset)
	if r == nil {
		logger.Logf(u, logTag, "%s write of %#x to unimplemented register %s", width, value, registers.Name(offset))
		return
	}

	// merge narrow access with the stored value of the register. peeking
	// rather than reading means the data register is not dequeued
	value = (r.Peek() &^ mask) | (value & mask)

	for _, name := range r.Write(value) {
		logger.Logf(u, logTag, "write to unhandled field %s.%s", r.Name, name)
	}
}

// ReadByte performs an 8 bit read of the register at offset.
func (u *USART) ReadByte(offset uint32) uint8 {
	return uint8(u.Read(offset, registers.Byte))
}

// ReadWord performs a 16 bit read of the register at offset.
func (u *USART) ReadWord(offset uint32) uint16 {
	return uint16(u.Read(offset, registers.Word))
}

// ReadDoubleWord performs a 32 bit read of the register at offset.
func (u *USART) ReadDoubleWord(offset uint32) uint32 {
	return u.Read(offset, registers.DoubleWord)
}

// WriteByte performs an 8 bit write to the register at offset.
func (u *USART) WriteByte(offset uint32, value uint8) {
	u.Write(offset, registers.Byte, uint32(value))
}

// WriteWord performs a 16 bit write to the register at offset.
func (u *USART) WriteWord(offset uint32, value uint16) {
	u.Write(offset, registers.Word, uint32(value))
}

// WriteDoubleWord performs a 32 bit write to the register at offset.
func (u *USART) WriteDoubleWord(offset uint32, value uint32) {
	u.Write(offset, registers.DoubleWord, value)
}

// Register returns the register at the offset, or nil if the offset does not
// address an implemented register. The register should not be written to
// directly; it is provided for inspection.
func (u *USART) Register(offset uint32) *registers.Register {
	return u.register(offset)
}

// String summarises the register contents and the output lines. It has no
// side effects.
func (u *USART) String() string {
	s := strings.Builder{}
	for _, r := range u.regs {
		if r != nil {
			s.WriteString(r.String())
			s.WriteString("\n")
		}
	}
	s.WriteString(fmt.Sprintf("%s %s %s queue=%d\n", u.bufferState, u.IRQ, u.ReceiveDMARequest, u.queue.Count()))
	s.WriteString(u.LineConfig().String())
	return s.String()
}
