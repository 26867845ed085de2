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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions are the most useful
// and compare values of the same comparable type. ExpectSuccess() and
// ExpectFailure() test bool and error values:
//
//	test.ExpectSuccess(t, err)
//	test.ExpectFailure(t, usart.StatusTXE == 0)
//
// The CompareWriter type is an io.Writer that remembers everything written to
// it. It is useful for testing output that would ordinarily go to a terminal
// or a log.
package test
