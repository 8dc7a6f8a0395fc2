// Package rowtest provides assertions for code that builds or reads rows.
package rowtest

import (
	"reflect"
	"testing"

	"github.com/leengari/rowkit/row"
)

// AssertArity checks that r has the expected number of cells
func AssertArity(t testing.TB, r row.Row, expected int, context string) {
	t.Helper()
	if r.Arity() != expected {
		t.Errorf("%s: expected arity %d, got %d", context, expected, r.Arity())
	}
	if n := len(r.Cells()); n != r.Arity() {
		t.Errorf("%s: Cells() returned %d values for arity %d", context, n, r.Arity())
	}
}

// AssertCells checks the cell values of r in position order
func AssertCells(t testing.TB, r row.Row, context string, expected ...any) {
	t.Helper()
	cells := r.Cells()
	if len(cells) != len(expected) {
		t.Errorf("%s: expected %d cells, got %d (%v)", context, len(expected), len(cells), r)
		return
	}
	for i := range cells {
		if !reflect.DeepEqual(cells[i], expected[i]) {
			t.Errorf("%s: cell %d: expected %#v, got %#v", context, i+1, expected[i], cells[i])
		}
	}
}

// AssertFound checks that label resolves to the expected value
func AssertFound(t testing.TB, r row.Row, label string, expected any, context string) {
	t.Helper()
	col, ok := r.Cell(label)
	if !ok {
		t.Errorf("%s: expected cell '%s' to exist in %v", context, label, r)
		return
	}
	if !reflect.DeepEqual(col.Value, expected) {
		t.Errorf("%s: cell '%s': expected %#v, got %#v", context, label, expected, col.Value)
	}
}

// AssertNotFound checks that label does not resolve to any cell
func AssertNotFound(t testing.TB, r row.Row, label string, context string) {
	t.Helper()
	if col, ok := r.Cell(label); ok {
		t.Errorf("%s: did not expect cell '%s' to exist, got %#v", context, label, col.Value)
	}
}

// AssertRowsEqual checks that two rows are equal and hash alike
func AssertRowsEqual(t testing.TB, actual, expected row.Row, context string) {
	t.Helper()
	if !row.Equal(actual, expected) {
		t.Errorf("%s: expected %v (names %v), got %v (names %v)",
			context, expected, expected.Names(), actual, actual.Names())
		return
	}
	if actual.Hash() != expected.Hash() {
		t.Errorf("%s: equal rows hash differently: %d != %d", context, actual.Hash(), expected.Hash())
	}
}
