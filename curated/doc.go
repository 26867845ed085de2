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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a formatting pattern and the
// values for the placeholders in that pattern, exactly like fmt.Errorf().
//
// The pattern is remembered and is what distinguishes one curated error from
// another. Packages that raise curated errors export their patterns as
// constants so that callers can test for them:
//
//	const NoLineData = "lineload: no line data in %s"
//
//	err := curated.Errorf(NoLineData, filename)
//
//	if curated.Is(err, NoLineData) {
//		...
//	}
//
// Has() checks whether the pattern appears anywhere in the chain of wrapped
// curated errors. Is() only checks the outermost error.
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts of the chain are printed once. This means a function can
// wrap an error with its own prefix without worrying whether the callee has
// already done so:
//
//	curated.Errorf("bridge: %v", curated.Errorf("bridge: %v", err))
//
// prints as "bridge: <err>".
package curated
