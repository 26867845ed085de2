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

// Package registers contains the address map of the USART and the field
// storage that the USART register model is built from.
//
// A Register is a 32 bit value made up of Fields. Each Field occupies a fixed
// range of bits and has an access Mode. A Field can store its value, or it
// can provide its value on demand (the RXNE status bit is an example of the
// latter). Fields can have a callback that is run when the field is written
// and a Register can have a callback that is run after all fields have been
// committed.
//
// The constants in this package describe the bit layout seen by firmware and
// must not change.
package registers
