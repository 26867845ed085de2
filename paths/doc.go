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

// Package paths contains functions to prepare paths to gopherusart resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	d, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// For development builds the base path is ".gopherusart" in the program's
// current directory. For release builds (build tag "release") the base path
// is a "gopherusart" directory in the user's config directory, as returned by
// os.UserConfigDir().
//
// In the example above, for a release build on a modern Linux system, the
// path returned will be:
//
//	/home/user/.config/gopherusart/preferences
//
// Directories are created as required.
package paths
