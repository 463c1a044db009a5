// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lj-hsu/goba/curated"
)

// WarningBoilerPlate is written as the first line of every preferences file.
const WarningBoilerPlate = "# this file is maintained by goba - edit at your own risk"

// NoPrefsFile is the curated error pattern returned by Load when the
// preferences file does not yet exist.
const NoPrefsFile = "prefs: no prefs file"

// DefaultPrefsFile is the filename used by preference groups that don't
// specify their own.
const DefaultPrefsFile = "prefs"

// Disk collects named preference values and persists them as a single
// "key :: value" text file, sorted by key.
type Disk struct {
	filename string
	values   map[string]entry
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(filename string) (*Disk, error) {
	return &Disk{
		filename: filename,
		values:   make(map[string]entry),
	}, nil
}

// Add registers v under key. It is an error to register the same key twice.
func (d *Disk) Add(key string, v entry) error {
	if _, ok := d.values[key]; ok {
		return curated.Errorf("prefs: key already registered: %s", key)
	}
	d.values[key] = v
	return nil
}

func loadFile(filename string) (map[string]string, error) {
	m := make(map[string]string)

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return m, curated.Errorf(NoPrefsFile)
		}
		return nil, curated.Errorf("prefs: %v", err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		if i == 0 && line == WarningBoilerPlate {
			continue
		}
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " :: ", 2)
		if len(parts) != 2 {
			continue
		}
		m[parts[0]] = parts[1]
	}

	return m, nil
}

// Save writes every registered value to disk, merged with (and sorted
// alongside) any keys already present in the file that belong to a
// different Disk instance.
func (d *Disk) Save() error {
	merged, err := loadFile(d.filename)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, v := range d.values {
		merged[k] = v.String()
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(WarningBoilerPlate)
	b.WriteString("\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s :: %s\n", k, merged[k])
	}

	if err := os.WriteFile(d.filename, []byte(b.String()), 0o644); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load reads the preferences file and applies any values it finds to the
// registered entries that match by key. If ignoreMissing is true (or
// omitted), a missing prefs file is not an error.
func (d *Disk) Load(ignoreMissing ...bool) error {
	ignore := true
	if len(ignoreMissing) > 0 {
		ignore = ignoreMissing[0]
	}

	m, err := loadFile(d.filename)
	if err != nil {
		if curated.Is(err, NoPrefsFile) && ignore {
			return nil
		}
		return err
	}

	for k, v := range d.values {
		if raw, ok := m[k]; ok {
			if err := v.Set(raw); err != nil {
				return err
			}
		}
	}

	return nil
}

// String returns every registered key/value pair as they would be written
// to disk, without touching the filesystem.
func (d *Disk) String() string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s :: %s\n", k, d.values[k].String())
	}
	return b.String()
}
