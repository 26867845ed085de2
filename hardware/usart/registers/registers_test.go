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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopherusart/hardware/usart/registers"
	"github.com/jetsetilly/gopherusart/test"
)

func TestFieldStorage(t *testing.T) {
	r := registers.NewRegister("TEST", 0x00)
	lo := r.AddField("LO", 0, 4, registers.ReadWrite)
	hi := r.AddField("HI", 4, 12, registers.ReadWrite)
	r.AddReserved(16, 16)

	r.Write(0xffff1234)
	test.ExpectEquality(t, lo.Value(), uint32(0x4))
	test.ExpectEquality(t, hi.Value(), uint32(0x123))

	// reserved bits read as zero
	test.ExpectEquality(t, r.Read(), uint32(0x1234))
	test.ExpectEquality(t, r.Peek(), uint32(0x1234))
}

func TestModes(t *testing.T) {
	r := registers.NewRegister("TEST", 0x00)
	ro := r.AddFlag("RO", 0, registers.ReadOnly)
	ro.ResetValue = 1
	r.AddTagged("TAG", 1, 2)
	provided := r.AddFlag("PROV", 3, registers.ReadOnly)
	provided.Provider = func() uint32 { return 1 }

	var triggered []uint32
	trigger := r.AddField("TRIG", 4, 4, registers.WriteTrigger)
	trigger.OnWrite = func(v uint32) { triggered = append(triggered, v) }
	trigger.Provider = func() uint32 { return 0x5 }

	r.Reset()
	test.ExpectEquality(t, r.Read(), uint32(0b0101_1001))

	// peek ignores providers and non-stored fields
	test.ExpectEquality(t, r.Peek(), uint32(0b0000_0001))

	unhandled := r.Write(0b1010_0110)
	test.ExpectEquality(t, len(unhandled), 1)
	test.ExpectEquality(t, unhandled[0], "TAG")
	test.ExpectEquality(t, len(triggered), 1)
	test.ExpectEquality(t, triggered[0], uint32(0b1010))

	// read only field is unchanged by the write
	test.ExpectEquality(t, ro.Value(), uint32(1))

	// zero writes to tagged fields are not reported
	unhandled = r.Write(0)
	test.ExpectEquality(t, len(unhandled), 0)
}

func TestRegisterWriteCallback(t *testing.T) {
	r := registers.NewRegister("TEST", 0x00)
	f := r.AddFlag("F", 0, registers.ReadWrite)

	// the register callback must see the committed field value
	var seen bool
	r.OnWrite(func() { seen = f.Flag() })
	r.Write(1)
	test.ExpectSuccess(t, seen)
}

func TestOverlap(t *testing.T) {
	r := registers.NewRegister("TEST", 0x00)
	r.AddField("A", 0, 4, registers.ReadWrite)
	test.ExpectPanic(t, func() { r.AddFlag("B", 3, registers.ReadWrite) })
	test.ExpectPanic(t, func() { r.AddField("C", 30, 4, registers.ReadWrite) })
}

func TestFieldLookup(t *testing.T) {
	r := registers.NewRegister("TEST", 0x00)
	r.AddFlag("A", 0, registers.ReadWrite)
	test.ExpectInequality(t, r.Field("A"), nil)
	test.ExpectEquality(t, r.Field("B"), nil)
}

func TestSlots(t *testing.T) {
	s, ok := registers.Slot(registers.CR3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, 5)

	_, ok = registers.Slot(0x0d)
	test.ExpectFailure(t, ok)
	_, ok = registers.Slot(0x1c)
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, registers.Name(registers.GTPR), "GTPR")
	test.ExpectEquality(t, registers.Name(0x40), "0x40")
}

func TestWidth(t *testing.T) {
	test.ExpectEquality(t, registers.Byte.Mask(), uint32(0xff))
	test.ExpectEquality(t, registers.Word.Mask(), uint32(0xffff))
	test.ExpectEquality(t, registers.DoubleWord.Mask(), uint32(0xffffffff))
	test.ExpectPanic(t, func() { registers.Width(24).Mask() })
}
