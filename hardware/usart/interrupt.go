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

// updateInterrupt recalculates the IRQ line from the interrupt enable bits
// and the status they enable.
func (u *USART) updateInterrupt() {
	// the transmit data register is always empty so TXEIE alone is enough
	txe := u.transmitDataRegisterEmptyInterruptEnabled.Flag()
	tc := u.transmissionComplete.Flag() && u.transmissionCompleteInterruptEnabled.Flag()
	rxne := u.queue.Count() != 0 && u.receiverNotEmptyInterruptEnabled.Flag()

	u.IRQ.Set(txe || tc || rxne)
}

// updateDMARequest drives the receive DMA request line. The request is active
// while received data is waiting and receive DMA is enabled.
func (u *USART) updateDMARequest() {
	u.ReceiveDMARequest.Set(u.bufferState == Ready && u.receiveDMAEnabled.Flag())
}
