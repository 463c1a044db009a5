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

package test

import (
	"math"
	"reflect"
	"testing"
)

// result tests whether v represents success or failure. booleans are taken
// literally; errors (including a nil error) are true on nil and false
// otherwise.
func result(v interface{}) bool {
	if v == nil {
		return true
	}

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	}

	return false
}

// ExpectSuccess fails the test if v represents failure.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !result(v) {
		t.Errorf("expected success, got %v", v)
	}
}

// ExpectFailure fails the test if v represents success.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if result(v) {
		t.Errorf("expected failure, got %v", v)
	}
}

// ExpectEquality fails the test if a and b are not equal.
func ExpectEquality(t *testing.T, a, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected equality: %v != %v", a, b)
	}
}

// ExpectInequality fails the test if a and b are equal.
func ExpectInequality(t *testing.T, a, b interface{}) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Errorf("expected inequality: %v == %v", a, b)
	}
}

// ExpectApproximate fails the test if a and b differ by more than tolerance.
func ExpectApproximate(t *testing.T, a, b float64, tolerance float64) {
	t.Helper()
	if math.Abs(a-b) > tolerance {
		t.Errorf("expected %v to be within %v of %v", a, tolerance, b)
	}
}

// Equate is a terser, order-preserved alias of ExpectEquality kept for the
// packages that were written against the older naming.
func Equate(t *testing.T, a, b interface{}) {
	t.Helper()
	ExpectEquality(t, a, b)
}
