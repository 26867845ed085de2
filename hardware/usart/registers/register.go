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
	"strings"
)

// Register is a 32 bit register made up of non-overlapping Fields. Bits not
// covered by a field read as zero and ignore writes.
type Register struct {
	Name   string
	Offset uint32

	fields []*Field

	// bits already claimed by a field
	claimed uint32

	// called after every write once all fields have been committed
	onWrite func()
}

// NewRegister is the preferred method of initialisation for the Register type.
func NewRegister(name string, offset uint32) *Register {
	return &Register{
		Name:   name,
		Offset: offset,
	}
}

// add field to the register. panics if the field overlaps with an existing
// field or if it does not fit in 32 bits. these are errors in the register
// map and never the result of a bus access.
func (r *Register) add(f *Field) *Field {
	if f.Width < 1 || f.Shift < 0 || f.Shift+f.Width > 32 {
		panic(fmt.Sprintf("registers: field %s does not fit in %s", f, r.Name))
	}

	m := f.mask() << f.Shift
	if r.claimed&m != 0 {
		panic(fmt.Sprintf("registers: field %s overlaps existing field in %s", f, r.Name))
	}
	r.claimed |= m

	f.value = f.ResetValue & f.mask()
	r.fields = append(r.fields, f)
	return f
}

// AddField adds a multi-bit field to the register.
func (r *Register) AddField(name string, shift int, width int, mode Mode) *Field {
	return r.add(&Field{Name: name, Shift: shift, Width: width, Mode: mode})
}

// AddFlag adds a single bit field to the register.
func (r *Register) AddFlag(name string, bit int, mode Mode) *Field {
	return r.add(&Field{Name: name, Shift: bit, Width: 1, Mode: mode})
}

// AddTagged adds a field that exists on the real device but which is not
// modelled.
func (r *Register) AddTagged(name string, shift int, width int) *Field {
	return r.add(&Field{Name: name, Shift: shift, Width: width, Mode: Tagged})
}

// AddReserved adds a field of reserved bits.
func (r *Register) AddReserved(shift int, width int) *Field {
	return r.add(&Field{Name: "reserved", Shift: shift, Width: width, Mode: Reserved})
}

// OnWrite sets the function to be called after every write to the register.
func (r *Register) OnWrite(f func()) {
	r.onWrite = f
}

// Fields returns the fields of the register in the order they were added.
func (r *Register) Fields() []*Field {
	return r.fields
}

// Field returns the named field or nil if there is no field with that name.
func (r *Register) Field(name string) *Field {
	for _, f := range r.fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Read returns the value of the register as seen by the bus. Reading may have
// side effects if a field's provider has side effects.
func (r *Register) Read() uint32 {
	var v uint32
	for _, f := range r.fields {
		v |= f.read() << f.Shift
	}
	return v
}

// Peek returns the stored value of the register without calling any
// providers.
func (r *Register) Peek() uint32 {
	var v uint32
	for _, f := range r.fields {
		v |= f.peek() << f.Shift
	}
	return v
}

// Write commits value to the register. Returns the names of any tagged fields
// that were written with a non-zero value.
func (r *Register) Write(value uint32) []string {
	var unhandled []string

	for _, f := range r.fields {
		v := (value >> f.Shift) & f.mask()

		switch f.Mode {
		case ReadWrite:
			f.value = v
			if f.OnWrite != nil {
				f.OnWrite(v)
			}
		case WriteTrigger:
			if f.OnWrite != nil {
				f.OnWrite(v)
			}
		case Tagged:
			if v != 0 {
				unhandled = append(unhandled, f.Name)
			}
		}
	}

	if r.onWrite != nil {
		r.onWrite()
	}

	return unhandled
}

// Reset all fields to their reset value.
func (r *Register) Reset() {
	for _, f := range r.fields {
		f.value = f.ResetValue & f.mask()
	}
}

// String lists the stored values of the register's modelled fields. It does
// not call any field providers.
func (r *Register) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s=%#08x", r.Name, r.Peek()))
	for _, f := range r.fields {
		switch f.Mode {
		case ReadWrite, ReadOnly:
			s.WriteString(fmt.Sprintf(" %s=%d", f.Name, f.value))
		}
	}
	return s.String()
}
