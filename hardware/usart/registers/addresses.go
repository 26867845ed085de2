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

package registers

import "fmt"

// Register offsets from the base address of the peripheral.
const (
	SR   uint32 = 0x00 // status
	DR   uint32 = 0x04 // data
	BRR  uint32 = 0x08 // baud rate divisor
	CR1  uint32 = 0x0c // control 1
	CR2  uint32 = 0x10 // control 2
	CR3  uint32 = 0x14 // control 3
	GTPR uint32 = 0x18 // guard time and prescaler. not implemented
)

// NumRegisters is the number of register slots in the address space of the
// peripheral, including the unimplemented GTPR.
const NumRegisters = 7

// Names of the registers indexed by slot (offset divided by four).
var Names = [NumRegisters]string{"SR", "DR", "BRR", "CR1", "CR2", "CR3", "GTPR"}

// Slot returns the index of the register at the offset. The second return
// value is false if the offset does not address the start of a register.
func Slot(offset uint32) (int, bool) {
	if offset&0x03 != 0 || offset >= NumRegisters*4 {
		return 0, false
	}
	return int(offset >> 2), true
}

// Name returns the name of the register at the offset or a hex representation
// of the offset if it does not address a register.
func Name(offset uint32) string {
	if s, ok := Slot(offset); ok {
		return Names[s]
	}
	return fmt.Sprintf("%#02x", offset)
}

// Status register bits.
const (
	StatusORE  uint32 = 1 << 3
	StatusRXNE uint32 = 1 << 5
	StatusTC   uint32 = 1 << 6
	StatusTXE  uint32 = 1 << 7

	// the value of the status register after a reset
	StatusReset uint32 = StatusTC | StatusTXE
)

// Data register.
const (
	DataWidth = 9
	DataMask  = uint32(1<<DataWidth) - 1
)

// Baud rate register fields.
const (
	BRRFractionShift = 0
	BRRFractionWidth = 4
	BRRFractionMask  = uint32(0x000f)
	BRRMantissaShift = 4
	BRRMantissaWidth = 12
	BRRMantissaMask  = uint32(0xfff0)
)

// Control 1 register bits.
const (
	CR1RE     uint32 = 1 << 2
	CR1TE     uint32 = 1 << 3
	CR1RXNEIE uint32 = 1 << 5
	CR1TCIE   uint32 = 1 << 6
	CR1TXEIE  uint32 = 1 << 7
	CR1PS     uint32 = 1 << 9
	CR1PCE    uint32 = 1 << 10
	CR1UE     uint32 = 1 << 13
	CR1OVER8  uint32 = 1 << 15

	// all read/write fields in CR1
	CR1Mask = CR1RE | CR1TE | CR1RXNEIE | CR1TCIE | CR1TXEIE | CR1PS | CR1PCE | CR1UE | CR1OVER8
)

// Control 2 register fields.
const (
	CR2STOPShift = 12
	CR2STOPWidth = 2
	CR2STOPMask  = uint32(0x3000)
)

// Control 3 register bits.
const (
	// bit 7 is documented as DMAT but gates the receive DMA request
	CR3DMAT uint32 = 1 << 7
)
