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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherusart/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in the preferences file.
const separator = " :: "

// List of curated error patterns.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	InvalidKey   = "prefs: invalid key (%s)"
	DuplicateKey = "prefs: key already added (%s)"
)

// Disk represents preference values as stored on disk. More than one Disk can
// share the same file. Values that are not added to a Disk are preserved when
// the Disk is saved.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := dsk.keys()

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to the Disk using the specified key.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n") || strings.Contains(key, "::") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		err := dsk.entries[k].Reset()
		if err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// parse the key/value lines of a prefs file. the boilerplate and lines that
// don't contain a separator are ignored.
func parse(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate {
			continue
		}

		kv := strings.SplitN(line, separator, 2)
		if len(kv) != 2 {
			continue
		}
		values[strings.TrimSpace(kv[0])] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f)
}

// Save current preference values to disk. Values in the file that have not
// been added to this Disk are preserved.
func (dsk *Disk) Save() (rerr error) {
	values, err := dsk.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf("prefs: %v", err)
		}
		values = make(map[string]string)
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, values[k])
	}

	err = w.Flush()
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack (see
// PushCommandLineStack()) take precedence over values on disk.
//
// If the prefs file does not exist and saveOnFirstUse is true then the file
// will be created with the current values. Command line values are not saved
// to the new file. If saveOnFirstUse is false then the NoPrefsFile error is
// returned.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	values, err := dsk.read()
	missing := errors.Is(err, fs.ErrNotExist)
	if err != nil && !missing {
		return curated.Errorf("prefs: %v", err)
	}

	keys := dsk.keys()

	for _, k := range keys {
		if v, ok := values[k]; ok {
			err := dsk.entries[k].Set(v)
			if err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	if missing && saveOnFirstUse {
		err := dsk.Save()
		if err != nil {
			return err
		}
	}

	for _, k := range keys {
		if ok, v := GetCommandLinePref(k); ok {
			err := dsk.entries[k].Set(v)
			if err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	if missing && !saveOnFirstUse {
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}
