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

// Package hardware is the base package for the peripheral models. It contains
// no code of its own.
//
// The usart sub-package is the register-level model of the USART. The serial
// sub-package contains the collaborators of the USART: the receive queue, the
// transmit sink and the output lines. The serial/framing package converts
// characters to and from the levels of an asynchronous serial line.
package hardware
