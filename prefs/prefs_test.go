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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherusart/curated"
	"github.com/jetsetilly/gopherusart/prefs"
	"github.com/jetsetilly/gopherusart/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gopherusart_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(1))
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("0x63"))

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some
	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	err = v.Set(1.0)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotSet))
	test.ExpectEquality(t, v.Get().(int), 10)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var baud prefs.Int
	var over8 prefs.Bool
	test.ExpectSuccess(t, dsk.Add("usart.baud", &baud))
	test.ExpectSuccess(t, dsk.Add("usart.over8", &over8))

	// no file yet
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// create file on first use
	test.ExpectSuccess(t, baud.Set(9600))
	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "usart.baud :: 9600\nusart.over8 :: false\n")

	test.ExpectSuccess(t, baud.Set(115200))
	test.ExpectSuccess(t, over8.Set(true))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, baud.Get().(int), 9600)
	test.ExpectEquality(t, over8.Get().(bool), false)

	// command line values take precedence and are consumed
	prefs.PushCommandLineStack("usart.baud::19200")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, baud.Get().(int), 19200)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, dsk.String(), "usart.baud :: 19200\nusart.over8 :: false\n")

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, baud.Get().(int), 0)
}

func TestKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.ExpectSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, curated.Is(dsk.Add("", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a key", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a::key", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, dsk.Add("key", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("key", &v), prefs.DuplicateKey))
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook prevents the value being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string infomration reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestCommandLineNotSaved(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var baud prefs.Int
	test.ExpectSuccess(t, dsk.Add("usart.baud", &baud))
	test.ExpectSuccess(t, baud.Set(9600))

	prefs.PushCommandLineStack("usart.baud::19200")
	defer prefs.PopCommandLineStack()

	test.ExpectSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, baud.Get().(int), 19200)
	cmpTmpFile(t, fn, "usart.baud :: 9600\n")
}
