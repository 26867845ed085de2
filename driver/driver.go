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

// Package driver is a minimal polled-mode driver for the USART. It talks to
// the peripheral only through 32 bit bus accesses, in the same way as
// firmware running on the simulated CPU would.
//
// The driver is used by the gopherusart command to exercise the peripheral
// and by tests that want to check the peripheral from the firmware's point of
// view.
package driver

import (
	"github.com/jetsetilly/gopherusart/curated"
	"github.com/jetsetilly/gopherusart/hardware/usart"
	"github.com/jetsetilly/gopherusart/hardware/usart/registers"
)

// Bus is the firmware's view of the peripheral.
type Bus interface {
	ReadDoubleWord(offset uint32) uint32
	WriteDoubleWord(offset uint32, value uint32)
}

// Config is the line configuration requested by the firmware.
type Config struct {
	Baud     uint32
	Parity   usart.Parity
	StopBits usart.StopBits
	Over8    bool
}

// UnreachableBaud is the curated error pattern returned by Configure() when
// the requested baud rate cannot be produced from the peripheral clock.
const UnreachableBaud = "driver: baud rate of %d is not reachable with a clock of %dHz"

// Driver for the USART.
type Driver struct {
	bus       Bus
	frequency uint32
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The frequency is the peripheral clock in Hz.
func NewDriver(bus Bus, frequency uint32) *Driver {
	return &Driver{
		bus:       bus,
		frequency: frequency,
	}
}

// Divisor returns the mantissa and fraction of the BRR register for the baud
// rate. When oversampling by 8 the fraction is limited to three bits and the
// divisor is rounded to the nearest value that can be represented.
func Divisor(frequency uint32, baud uint32, over8 bool) (mantissa uint32, fraction uint32) {
	if baud == 0 {
		return 0, 0
	}

	// the divisor in sixteenths of the oversampling period, rounded
	mult := uint64(1)
	if over8 {
		mult = 2
	}
	d := (uint64(frequency)*mult + uint64(baud)/2) / uint64(baud)

	mantissa = uint32(d >> 4)
	fraction = uint32(d & 0x0f)

	if over8 && fraction > 0b111 {
		if fraction >= 0b1100 {
			mantissa++
			fraction = 0
		} else {
			fraction = 0b111
		}
	}

	return mantissa, fraction
}

// Configure disables the USART, programs the line configuration and enables
// the USART with the receiver and transmitter on. Interrupt enable bits are
// cleared.
func (drv *Driver) Configure(cfg Config) error {
	mantissa, fraction := Divisor(drv.frequency, cfg.Baud, cfg.Over8)
	if mantissa == 0 || mantissa > 0xfff {
		return curated.Errorf(UnreachableBaud, cfg.Baud, drv.frequency)
	}

	drv.bus.WriteDoubleWord(registers.CR1, 0)
	drv.bus.WriteDoubleWord(registers.BRR, mantissa<<registers.BRRMantissaShift|fraction)
	drv.bus.WriteDoubleWord(registers.CR2, cfg.StopBits.Encoding()<<registers.CR2STOPShift)

	cr1 := registers.CR1UE | registers.CR1TE | registers.CR1RE
	switch cfg.Parity {
	case usart.ParityEven:
		cr1 |= registers.CR1PCE
	case usart.ParityOdd:
		cr1 |= registers.CR1PCE | registers.CR1PS
	}
	if cfg.Over8 {
		cr1 |= registers.CR1OVER8
	}
	drv.bus.WriteDoubleWord(registers.CR1, cr1)

	return nil
}

// modify changes the bits in mask of the register at offset. reading CR1 and
// CR3 has no side effects.
func (drv *Driver) modify(offset uint32, mask uint32, on bool) {
	v := drv.bus.ReadDoubleWord(offset)
	if on {
		v |= mask
	} else {
		v &^= mask
	}
	drv.bus.WriteDoubleWord(offset, v)
}

// EnableInterrupts sets or clears the interrupt enable bits in CR1.
func (drv *Driver) EnableInterrupts(rxne bool, tc bool, txe bool) {
	drv.modify(registers.CR1, registers.CR1RXNEIE, rxne)
	drv.modify(registers.CR1, registers.CR1TCIE, tc)
	drv.modify(registers.CR1, registers.CR1TXEIE, txe)
}

// EnableReceiveDMA sets or clears the DMA enable bit in CR3.
func (drv *Driver) EnableReceiveDMA(on bool) {
	drv.modify(registers.CR3, registers.CR3DMAT, on)
}

// Transmit waits for the transmit data register to be empty and then writes
// the character to the data register. Returns false if the transmit data
// register did not become empty.
func (drv *Driver) Transmit(ch byte) bool {
	// TXE is never clear in this model but a real driver must check it
	for i := 0; i < 1000; i++ {
		if drv.bus.ReadDoubleWord(registers.SR)&registers.StatusTXE == registers.StatusTXE {
			drv.bus.WriteDoubleWord(registers.DR, uint32(ch))
			return true
		}
	}
	return false
}

// TransmitString transmits every byte in s. Returns the number of bytes
// transmitted.
func (drv *Driver) TransmitString(s string) int {
	for i := 0; i < len(s); i++ {
		if !drv.Transmit(s[i]) {
			return i
		}
	}
	return len(s)
}

// Receive reads a character from the data register if RXNE is set. The second
// return value is false if there was no character to read.
func (drv *Driver) Receive() (byte, bool) {
	if drv.bus.ReadDoubleWord(registers.SR)&registers.StatusRXNE == 0 {
		return 0, false
	}
	return byte(drv.bus.ReadDoubleWord(registers.DR)), true
}

// ReceiveAll reads characters until RXNE is clear.
func (drv *Driver) ReceiveAll() []byte {
	var data []byte
	for {
		ch, ok := drv.Receive()
		if !ok {
			return data
		}
		data = append(data, ch)
	}
}
