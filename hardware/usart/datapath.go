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
	"github.com/jetsetilly/gopherusart/logger"
)

// handleTransmitData is called when the data register is written.
func (u *USART) handleTransmitData(value uint32) {
	if !(u.transmitterEnabled.Flag() && u.usartEnabled.Flag()) {
		logger.Logf(u, logTag, "character %#02x to be sent but the transmitter (or the USART) is not enabled. ignoring", uint8(value))
		return
	}

	u.sink.TransmitCharacter(uint8(value))
	u.transmissionComplete.SetFlag(true)
	u.updateInterrupt()
}

// handleReceiveData is called when the data register is read.
func (u *USART) handleReceiveData() uint32 {
	ch, ok := u.queue.TryDequeue()
	if !ok {
		logger.Log(u, logTag, "no characters in queue")
		return 0
	}
	return uint32(ch)
}
