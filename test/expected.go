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

// Package test collects small assertion helpers shared by the hardware
// packages' tests. It deliberately mirrors the shape of the standard
// testing package rather than pulling in a third-party assertion library,
// matching the rest of this module's ambient stack.
package test

import (
	"math"
	"reflect"
	"testing"
)

// ExpectFailure checks that v represents a failure: a false bool, a
// non-nil error, or a nil value where a value was expected.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if ok(v) {
		t.Errorf("expected failure, got success (%v)", v)
	}
}

// ExpectSuccess checks that v represents a success: a true bool, a nil
// error, or any other non-nil/non-false value.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !ok(v) {
		t.Errorf("expected success, got failure (%v)", v)
	}
}

func ok(v interface{}) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case bool:
		return x
	case error:
		return x == nil
	default:
		return true
	}
}

// ExpectEquality fails the test if want and got are not deeply equal.
func ExpectEquality(t *testing.T, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected equality: %v != %v", want, got)
	}
}

// Equate is ExpectEquality under a shorter name, used where the teacher's
// tests favour brevity.
func Equate(t *testing.T, want, got interface{}) {
	t.Helper()
	ExpectEquality(t, want, got)
}

// ExpectInequality fails the test if want and got are deeply equal.
func ExpectInequality(t *testing.T, want, got interface{}) {
	t.Helper()
	if reflect.DeepEqual(want, got) {
		t.Errorf("expected inequality: %v == %v", want, got)
	}
}

// ExpectApproximate fails the test if want and got differ by more than
// tolerance.
func ExpectApproximate(t *testing.T, want, got, tolerance float64) {
	t.Helper()
	if math.Abs(want-got) > tolerance {
		t.Errorf("expected %v to be within %v of %v", got, tolerance, want)
	}
}
