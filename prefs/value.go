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
	"strconv"
	"strings"
)

// Value is the type accepted by Set() and returned by a Generic's getter. It
// stands for whatever concrete type a particular preference understands:
// bool, int, float64 or string.
type Value = interface{}

// entry is implemented by every preference type known to a Disk.
type entry interface {
	Set(Value) error
	String() string
}

// Bool is a boolean preference value.
type Bool struct {
	v bool
}

// Set accepts a bool directly, or a string which is true only for "true" or
// "1"; any other string value resolves to false.
func (b *Bool) Set(val Value) error {
	switch t := val.(type) {
	case bool:
		b.v = t
	case string:
		b.v = t == "true" || t == "1"
	default:
		return fmt.Errorf("prefs: unsupported value type for Bool: %T", val)
	}
	return nil
}

// String implements the entry interface.
func (b *Bool) String() string {
	if b.v {
		return "true"
	}
	return "false"
}

// Get returns the current value.
func (b *Bool) Get() bool { return b.v }

// Int is an integer preference value.
type Int struct {
	v int
}

// Set accepts an int directly, or a string parsed with strconv.Atoi.
func (n *Int) Set(val Value) error {
	switch t := val.(type) {
	case int:
		n.v = t
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		n.v = parsed
	default:
		return fmt.Errorf("prefs: unsupported value type for Int: %T", val)
	}
	return nil
}

// String implements the entry interface.
func (n *Int) String() string {
	return strconv.Itoa(n.v)
}

// Get returns the current value.
func (n *Int) Get() int { return n.v }

// Float is a floating point preference value.
type Float struct {
	v float64
}

// Set accepts a float64 directly, or a string parsed with
// strconv.ParseFloat.
func (f *Float) Set(val Value) error {
	switch t := val.(type) {
	case float64:
		f.v = t
	case float32:
		f.v = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		f.v = parsed
	default:
		return fmt.Errorf("prefs: unsupported value type for Float: %T", val)
	}
	return nil
}

// String implements the entry interface.
func (f *Float) String() string {
	return strconv.FormatFloat(f.v, 'g', -1, 64)
}

// Get returns the current value.
func (f *Float) Get() float64 { return f.v }

// String is a string preference value, with an optional maximum length.
type String struct {
	v      string
	maxLen int
}

// Set accepts any value; non-strings are rendered with the %v verb. The
// result is cropped to the current maximum length, if one has been set.
func (s *String) Set(val Value) error {
	switch t := val.(type) {
	case string:
		s.v = t
	default:
		s.v = fmt.Sprintf("%v", t)
	}
	s.crop()
	return nil
}

// String implements the entry interface.
func (s *String) String() string {
	return s.v
}

// SetMaxLen sets the maximum length of the string, cropping the existing
// value if necessary. A length of zero removes the limit without restoring
// any previously cropped characters.
func (s *String) SetMaxLen(n int) {
	s.maxLen = n
	s.crop()
}

func (s *String) crop() {
	if s.maxLen > 0 && len(s.v) > s.maxLen {
		s.v = s.v[:s.maxLen]
	}
}

// Generic is an escape hatch for preference values that don't fit the Bool,
// Int, Float or String moulds. The caller supplies the parse and render
// functions.
type Generic struct {
	set func(Value) error
	get func() Value
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{set: set, get: get}
}

// Set implements the entry interface.
func (g *Generic) Set(val Value) error {
	return g.set(val)
}

// String implements the entry interface.
func (g *Generic) String() string {
	return fmt.Sprintf("%v", g.get())
}
