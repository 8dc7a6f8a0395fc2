// Package row models an immutable, fixed-arity row of heterogeneous values
// in which every cell may carry a name. Rows stand in for one record of a
// database result set inside test doubles.
//
// Row1 through Row4 are generated from one template by cmd/rowgen. Each
// holds its cells by value, so a row can be copied and shared freely;
// SetK returns a new row and leaves the receiver untouched. Cell values are
// shared between a row and the rows derived from it: mutating a value that
// is itself a pointer, slice or map is visible through all of them.
package row

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// Row is implemented by every arity-specialized row type of this package.
type Row interface {
	// Arity returns the fixed number of cells.
	Arity() int

	// Cells returns the cell values in position order.
	// The slice is fresh on every call and always has Arity() elements.
	Cells() []any

	// Names returns the cell names in position order.
	Names() []Name

	// Cell returns the value of the cell named label.
	// When several cells share the name the highest position wins.
	Cell(label string) (Column[any], bool)

	// Lookup is Cell for an optional label; an absent label is never found.
	Lookup(label Name) (Column[any], bool)

	// ByName returns the name to value mapping, built in position order.
	ByName() map[string]any

	// Hash returns a hash consistent with Equal.
	Hash() uint64

	fmt.Stringer

	// cellAt returns the value and name at 1-based position i.
	cellAt(i int) (any, Name)
}

// Column holds a value found by name lookup.
type Column[T any] struct {
	Value T
}

// Equal reports whether both columns hold deeply equal values.
// NaN equals NaN and -0 equals +0, as in Equal for rows.
func (c Column[T]) Equal(o Column[T]) bool {
	return valuesEqual(c.Value, o.Value)
}

// cell is one positional slot: a value and its optional name, always
// read and written together.
type cell[T any] struct {
	value T
	name  Name
}

func (c cell[T]) equal(o cell[T]) bool {
	return c.name == o.name && valuesEqual(c.value, o.value)
}

// Equal reports whether a and b have the same arity and pairwise equal
// (value, name) cells. Values compare like reflect.DeepEqual, except that
// NaN equals NaN and -0 equals +0.
func Equal(a, b Row) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Arity() != b.Arity() {
		return false
	}
	for i := 1; i <= a.Arity(); i++ {
		av, an := a.cellAt(i)
		bv, bn := b.cellAt(i)
		if an != bn || !valuesEqual(av, bv) {
			return false
		}
	}
	return true
}

// All yields the 1-based position and value of every cell of r.
func All(r Row) iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i := 1; i <= r.Arity(); i++ {
			v, _ := r.cellAt(i)
			if !yield(i, v) {
				return
			}
		}
	}
}

// lookup scans from the last position so duplicate names resolve the same
// way an insert-ordered map would.
func lookup(r Row, label Name) (Column[any], bool) {
	if !label.IsSet() {
		return Column[any]{}, false
	}
	for i := r.Arity(); i >= 1; i-- {
		v, n := r.cellAt(i)
		if n == label {
			return Column[any]{Value: v}, true
		}
	}
	return Column[any]{}, false
}

func byName(r Row) map[string]any {
	m := make(map[string]any, r.Arity())
	for i := 1; i <= r.Arity(); i++ {
		v, n := r.cellAt(i)
		if s, ok := n.Value(); ok {
			m[s] = v
		}
	}
	return m
}

func cellValues(r Row) []any {
	out := make([]any, r.Arity())
	for i := range out {
		out[i], _ = r.cellAt(i + 1)
	}
	return out
}

func cellNames(r Row) []Name {
	out := make([]Name, r.Arity())
	for i := range out {
		_, out[i] = r.cellAt(i + 1)
	}
	return out
}

// format renders values only, e.g. Row2(1, 2).
func format(r Row) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Row%d(", r.Arity())
	for i := 1; i <= r.Arity(); i++ {
		if i > 1 {
			sb.WriteString(", ")
		}
		v, _ := r.cellAt(i)
		sb.WriteString(formatValue(v))
	}
	sb.WriteByte(')')
	return sb.String()
}

func formatValue(v any) string {
	if isNil(v) {
		return "null"
	}
	return fmt.Sprint(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
