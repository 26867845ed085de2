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
	"github.com/jetsetilly/gopherusart/hardware/usart/registers"
)

// buildRegisterMap creates the registers and fields of the USART. It is called
// once by NewUSART(). The map is never changed afterwards.
func (u *USART) buildRegisterMap() {
	sr := registers.NewRegister("SR", registers.SR)
	sr.AddTagged("PE", 0, 1)
	sr.AddTagged("FE", 1, 1)
	sr.AddTagged("NF", 2, 1)
	ore := sr.AddFlag("ORE", 3, registers.ReadOnly)
	ore.Provider = func() uint32 {
		// overruns are never reported
		return 0
	}
	sr.AddTagged("IDLE", 4, 1)
	u.rdrNotEmpty = sr.AddFlag("RXNE", 5, registers.ReadOnly)
	u.rdrNotEmpty.Provider = func() uint32 {
		if u.queue.Count() != 0 {
			return 1
		}
		return 0
	}
	u.transmissionComplete = sr.AddFlag("TC", 6, registers.ReadOnly)
	u.transmissionComplete.ResetValue = 1
	txe := sr.AddFlag("TXE", 7, registers.ReadOnly)
	txe.ResetValue = 1
	txe.Provider = func() uint32 {
		// the transmit data register is always empty
		return 1
	}
	sr.AddTagged("LBD", 8, 1)
	sr.AddTagged("CTS", 9, 1)
	sr.AddReserved(10, 22)

	dr := registers.NewRegister("DR", registers.DR)
	data := dr.AddField("DR", 0, registers.DataWidth, registers.WriteTrigger)
	data.Provider = u.handleReceiveData
	data.OnWrite = u.handleTransmitData
	dr.AddReserved(registers.DataWidth, 32-registers.DataWidth)

	brr := registers.NewRegister("BRR", registers.BRR)
	u.dividerFraction = brr.AddField("DIV_Fraction", registers.BRRFractionShift, registers.BRRFractionWidth, registers.ReadWrite)
	u.dividerMantissa = brr.AddField("DIV_Mantissa", registers.BRRMantissaShift, registers.BRRMantissaWidth, registers.ReadWrite)
	brr.AddReserved(16, 16)

	cr1 := registers.NewRegister("CR1", registers.CR1)
	cr1.AddTagged("SBK", 0, 1)
	cr1.AddTagged("RWU", 1, 1)
	u.receiverEnabled = cr1.AddFlag("RE", 2, registers.ReadWrite)
	u.transmitterEnabled = cr1.AddFlag("TE", 3, registers.ReadWrite)
	cr1.AddTagged("IDLEIE", 4, 1)
	u.receiverNotEmptyInterruptEnabled = cr1.AddFlag("RXNEIE", 5, registers.ReadWrite)
	u.transmissionCompleteInterruptEnabled = cr1.AddFlag("TCIE", 6, registers.ReadWrite)
	u.transmitDataRegisterEmptyInterruptEnabled = cr1.AddFlag("TXEIE", 7, registers.ReadWrite)
	cr1.AddTagged("PEIE", 8, 1)
	u.paritySelection = cr1.AddFlag("PS", 9, registers.ReadWrite)
	u.parityControlEnabled = cr1.AddFlag("PCE", 10, registers.ReadWrite)
	cr1.AddTagged("WAKE", 11, 1)
	cr1.AddTagged("M", 12, 1)
	u.usartEnabled = cr1.AddFlag("UE", 13, registers.ReadWrite)
	cr1.AddReserved(14, 1)
	u.oversamplingMode = cr1.AddFlag("OVER8", 15, registers.ReadWrite)
	cr1.AddReserved(16, 16)
	cr1.OnWrite(u.updateInterrupt)

	cr2 := registers.NewRegister("CR2", registers.CR2)
	cr2.AddTagged("ADD", 0, 4)
	cr2.AddReserved(4, 2)
	cr2.AddTagged("LBDIE", 6, 1)
	cr2.AddReserved(7, 1)
	cr2.AddTagged("LBCL", 8, 1)
	cr2.AddTagged("CPHA", 9, 1)
	cr2.AddTagged("CPOL", 10, 1)
	cr2.AddTagged("CLKEN", 11, 1)
	u.stopBits = cr2.AddField("STOP", registers.CR2STOPShift, registers.CR2STOPWidth, registers.ReadWrite)
	cr2.AddTagged("LINEN", 14, 1)
	cr2.AddReserved(15, 17)

	cr3 := registers.NewRegister("CR3", registers.CR3)
	cr3.AddTagged("EIE", 0, 1)
	cr3.AddTagged("IREN", 1, 1)
	cr3.AddTagged("IRLP", 2, 1)
	cr3.AddTagged("HDSEL", 3, 1)
	cr3.AddTagged("NACK", 4, 1)
	cr3.AddTagged("SCEN", 5, 1)
	cr3.AddTagged("DMAR", 6, 1)

	// the receive DMA request is gated by bit 7, which the reference manual
	// names DMAT. the wiring is preserved as found
	u.receiveDMAEnabled = cr3.AddFlag("DMAT", 7, registers.ReadWrite)
	cr3.OnWrite(u.updateDMARequest)
	cr3.AddTagged("RTSE", 8, 1)
	cr3.AddTagged("CTSE", 9, 1)
	cr3.AddTagged("CTSIE", 10, 1)
	cr3.AddTagged("ONEBIT", 11, 1)
	cr3.AddReserved(12, 20)

	for _, r := range []*registers.Register{sr, dr, brr, cr1, cr2, cr3} {
		s, _ := registers.Slot(r.Offset)
		u.regs[s] = r
	}
}
