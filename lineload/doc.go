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

// Package lineload reads a recording of a serial line from a WAV or MP3 file
// and decodes the characters in it. The characters can then be written to the
// receive queue of the USART.
//
// The recording must be of the line as produced by a UART: idle high, start
// bit low, data bits least significant first, optional parity bit and a high
// stop period. The wavwriter package produces compatible WAV files.
//
// The level of the line is decided by comparing each sample to the midpoint
// of the smallest and largest sample in the recording.
package lineload
