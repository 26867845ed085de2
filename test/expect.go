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

package test

import (
	"testing"
)

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
func ExpectInequality[T comparable](t *testing.T, value T, unexpectedValue T) bool {
	t.Helper()
	if value == unexpectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", value, value, unexpectedValue)
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Currently supported types:
//
//	bool -> bool == false
//	error -> error != nil
//
// If type is nil then the test will fail.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("failure test of type %T failed: %T does not equal false", v, v)
			return false
		}

	case error:
		if v == nil {
			t.Errorf("failure test of type %T failed: %T equals nil", v, v)
			return false
		}

	case nil:
		t.Errorf("failure test of type %T failed: %T is not expected", v, v)
		return false

	default:
		t.Fatalf("unsupported type %T for ExpectFailure()", v)
		return false
	}

	return true
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Currently supported types:
//
//	bool -> bool == true
//	error -> error == nil
//
// If type is nil then the test will succeed.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("success test of type %T failed: %T does not equal true", v, v)
			return false
		}

	case error:
		if v != nil {
			t.Errorf("success test of type %T failed: %v", v, v)
			return false
		}

	case nil:
		return true

	default:
		t.Fatalf("unsupported type (%T) for ExpectSuccess()", v)
		return false
	}

	return true
}

// ExpectImplements tests whether an instance implements the specified type.
// The implements argument should be a pointer to an interface, for example:
//
//	test.ExpectImplements(t, capture, (*serial.Sink)(nil))
func ExpectImplements[T any](t *testing.T, instance interface{}, implements *T) bool {
	t.Helper()
	if _, ok := instance.(T); !ok {
		t.Errorf("implementation test failed: %T does not implement %T", instance, implements)
		return false
	}
	return true
}

// ExpectPanic tests that the function panics.
func ExpectPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("panic test failed: function did not panic")
		}
	}()
	f()
}
