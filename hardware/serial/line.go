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

package serial

import "fmt"

// Line is a digital output line driven by a peripheral. For example, an
// interrupt request or a DMA request.
type Line struct {
	name  string
	level bool

	// called whenever the level of the line changes
	onChange func(level bool)
}

// NewLine is the preferred method of initialisation for the Line type.
func NewLine(name string) *Line {
	return &Line{name: name}
}

func (l *Line) String() string {
	if l.level {
		return fmt.Sprintf("%s=1", l.name)
	}
	return fmt.Sprintf("%s=0", l.name)
}

// Name of the line.
func (l *Line) Name() string {
	return l.name
}

// Set drives the line to the specified level.
func (l *Line) Set(level bool) {
	if l.level == level {
		return
	}
	l.level = level
	if l.onChange != nil {
		l.onChange(level)
	}
}

// Unset drives the line to its inactive level.
func (l *Line) Unset() {
	l.Set(false)
}

// IsSet returns the current level of the line.
func (l *Line) IsSet() bool {
	return l.level
}

// OnChange registers a function to be called whenever the level of the line
// changes. Only one function can be registered; a nil value removes it.
func (l *Line) OnChange(f func(level bool)) {
	l.onChange = f
}
