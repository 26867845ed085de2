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

// Mode describes how a Field responds to bus accesses.
type Mode int

// List of valid Mode values.
const (
	// stored value that can be read and written
	ReadWrite Mode = iota

	// value is read from storage or from a provider. writes are ignored
	ReadOnly

	// nothing is stored. writes are passed to the field's write callback and
	// reads come from the field's provider
	WriteTrigger

	// a named field of the real device that is not modelled. reads as zero
	Tagged

	// bits with no function. reads as zero
	Reserved
)

func (m Mode) String() string {
	switch m {
	case ReadWrite:
		return "RW"
	case ReadOnly:
		return "R"
	case WriteTrigger:
		return "W"
	case Tagged:
		return "tag"
	case Reserved:
		return "reserved"
	}
	return fmt.Sprintf("unknown mode (%d)", int(m))
}

// Field is a range of bits in a Register.
type Field struct {
	Name  string
	Shift int
	Width int
	Mode  Mode

	// the value the field takes on reset
	ResetValue uint32

	// Provider, if not nil, supplies the value of the field when the register
	// is read. The stored value is ignored for reads.
	Provider func() uint32

	// OnWrite, if not nil, is called after a write has been committed to the
	// field. For WriteTrigger fields it is the only effect of a write.
	OnWrite func(value uint32)

	value uint32
}

// mask of the field's bits, not shifted into position.
func (f *Field) mask() uint32 {
	return uint32((uint64(1) << f.Width) - 1)
}

// Value returns the stored value of the field.
func (f *Field) Value() uint32 {
	return f.value
}

// SetValue changes the stored value of the field directly. It is for the
// peripheral's own use and bypasses the access mode.
func (f *Field) SetValue(v uint32) {
	f.value = v & f.mask()
}

// Flag returns the stored value of a one bit field as a bool.
func (f *Field) Flag() bool {
	return f.value != 0
}

// SetFlag sets the stored value of a one bit field from a bool.
func (f *Field) SetFlag(v bool) {
	if v {
		f.value = 1
	} else {
		f.value = 0
	}
}

// read returns the value of the field as seen by the bus.
func (f *Field) read() uint32 {
	switch f.Mode {
	case Tagged, Reserved:
		return 0
	case WriteTrigger:
		if f.Provider != nil {
			return f.Provider() & f.mask()
		}
		return 0
	}

	if f.Provider != nil {
		return f.Provider() & f.mask()
	}
	return f.value
}

// peek returns the stored value without calling the provider.
func (f *Field) peek() uint32 {
	switch f.Mode {
	case ReadWrite, ReadOnly:
		return f.value
	}
	return 0
}

func (f *Field) String() string {
	if f.Width == 1 {
		return fmt.Sprintf("%s[%d]", f.Name, f.Shift)
	}
	return fmt.Sprintf("%s[%d:%d]", f.Name, f.Shift+f.Width-1, f.Shift)
}
