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

// Package serial contains the collaborators of a serial peripheral that are
// not part of the peripheral's register model: output lines, the sink for
// transmitted characters and the queue of received characters.
//
// None of the types in this package are safe for concurrent use. Access must
// be serialised by the host in the same way as access to the peripheral.
package serial
