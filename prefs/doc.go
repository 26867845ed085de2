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

// Package prefs facilitates the storage of preferences to disk.
//
// Preference values are represented by the Bool, Int and String types. Each
// value is added to a Disk with a key:
//
//	var baud prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("usart.baud", &baud)
//	_ = dsk.Load(true)
//
// The preferences file is a text file with one "key :: value" entry per line,
// preceded by a WarningBoilerPlate line.
//
// Values can also be specified on the command line with
// PushCommandLineStack(). These take precedence over the values on disk the
// next time Disk.Load() is called.
package prefs
