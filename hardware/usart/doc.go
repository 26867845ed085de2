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

// Package usart is a register-level model of an STM32 style USART. Firmware
// interacts with it only by reading and writing the registers listed in the
// registers package, with accesses of 8, 16 or 32 bits.
//
// The model reproduces the status bits and the two output lines of the real
// device:
//
//	RXNE  the receive queue is not empty
//	TXE   always set. transmission is instantaneous
//	TC    set when a character is transmitted
//	ORE   always clear. overruns are not modelled
//
//	IRQ                TXEIE || (TC && TCIE) || (RXNE && RXNEIE)
//	ReceiveDMARequest  RXNE && CR3 bit 7
//
// The line configuration (baud rate, parity and stop bits) is derived from
// the register contents whenever it is asked for with LineConfig().
//
// Characters arriving at the receiver are written with WriteChar().
// Transmitted characters are sent to the serial.Sink given to NewUSART().
//
// The USART is not safe for concurrent use. All accesses, including
// WriteChar(), must come from the same goroutine.
package usart
