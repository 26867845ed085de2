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

import (
	"fmt"

	"github.com/jetsetilly/gopherusart/curated"
)

// Width of a bus access in bits.
type Width int

// List of valid Width values.
const (
	Byte       Width = 8
	Word       Width = 16
	DoubleWord Width = 32
)

// InvalidWidth is the curated error pattern used when a bus access is made
// with a width other than Byte, Word or DoubleWord.
const InvalidWidth = "registers: invalid access width (%d)"

// Mask returns the mask for the lower bits of a value covered by the width.
// Panics if the width is not valid.
func (w Width) Mask() uint32 {
	switch w {
	case Byte:
		return 0x000000ff
	case Word:
		return 0x0000ffff
	case DoubleWord:
		return 0xffffffff
	}
	panic(curated.Errorf(InvalidWidth, int(w)))
}

func (w Width) String() string {
	return fmt.Sprintf("%dbit", int(w))
}
