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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("ECHO", "CAPTURE", "REPLAY", "INFO")
//	freq := md.AddUint("freq", 8000000, "peripheral clock in Hz")
//	_, _ = md.Parse()
//
// Parse() processes flags in the normal way but then checks to see if the
// first argument after the flags is one of the sub-modes. If it is, then
// RemainingArgs() will return all the arguments after the flags AND the mode
// selector. If it is not then the first sub-mode in the list is selected.
// Sub-mode comparisons are case insensitive.
//
//	switch md.Mode() {
//	case "CAPTURE":
//		md.NewMode()
//		wav := md.AddString("wav", "", "filename of capture")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		return capture(*wav, md.RemainingArgs())
//	}
//
// Modes can be chained as deep as required. Path() returns the modes that have
// been selected so far, separated by a slash.
package modalflag
