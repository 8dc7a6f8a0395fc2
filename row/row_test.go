package row_test

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/leengari/rowkit/row"
	"github.com/leengari/rowkit/row/rowtest"
)

var (
	n = row.Named
	x = row.NoName

	cmpNames = cmp.Comparer(func(a, b row.Name) bool { return a == b })
)

func TestCellsLengthMatchesArity(t *testing.T) {
	rows := []struct {
		r     row.Row
		arity int
	}{
		{row.NewRow1("a", n("a")), 1},
		{row.EmptyRow1[int](), 1},
		{row.NewRow2(1, n("a"), 2, x), 2},
		{row.EmptyRow2[any, any](), 2},
		{row.NewRow3(1, x, "b", x, 3.5, x), 3},
		{row.Row3[int, int, int]{}, 3},
		{row.NewRow4(1, x, 2, x, 3, x, 4, x), 4},
	}
	for _, tt := range rows {
		rowtest.AssertArity(t, tt.r, tt.arity, tt.r.String())
		assert.Equal(t, len(tt.r.Names()), tt.arity)
	}
}

func TestTypedAccessors(t *testing.T) {
	r := row.NewRow3(7, n("id"), "alice", n("name"), true, x)

	assert.Equal(t, r.Value1(), 7)
	assert.Equal(t, r.Value2(), "alice")
	assert.Equal(t, r.Value3(), true)
	assert.Equal(t, r.Name1(), n("id"))
	assert.Equal(t, r.Name2(), n("name"))
	assert.Equal(t, r.Name3(), x)
	assert.DeepEqual(t, r.Names(), []row.Name{n("id"), n("name"), x}, cmpNames)
	rowtest.AssertCells(t, r, "typed row", 7, "alice", true)
}

func TestSetReturnsNewRow(t *testing.T) {
	orig := row.NewRow3(1, n("a"), "two", n("b"), 3.0, n("c"))

	r1 := orig.Set1(10, n("z"))
	rowtest.AssertCells(t, r1, "set1", 10, "two", 3.0)
	assert.DeepEqual(t, r1.Names(), []row.Name{n("z"), n("b"), n("c")}, cmpNames)

	r2 := orig.Set2("deux", x)
	rowtest.AssertCells(t, r2, "set2", 1, "deux", 3.0)
	assert.DeepEqual(t, r2.Names(), []row.Name{n("a"), x, n("c")}, cmpNames)

	r3 := orig.Set3(30.5, n("c"))
	rowtest.AssertCells(t, r3, "set3", 1, "two", 30.5)
	assert.DeepEqual(t, r3.Names(), []row.Name{n("a"), n("b"), n("c")}, cmpNames)

	// receiver untouched
	rowtest.AssertCells(t, orig, "original", 1, "two", 3.0)
	assert.DeepEqual(t, orig.Names(), []row.Name{n("a"), n("b"), n("c")}, cmpNames)
	rowtest.AssertFound(t, orig, "a", 1, "original after set")
	rowtest.AssertNotFound(t, orig, "z", "original after set")
}

func TestSetOnEveryArity(t *testing.T) {
	r1 := row.EmptyRow1[string]().Set1("v", n("only"))
	rowtest.AssertCells(t, r1, "row1", "v")
	rowtest.AssertFound(t, r1, "only", "v", "row1")

	r4 := row.EmptyRow4[int, int, int, int]().Set4(4, n("d")).Set2(2, n("b"))
	rowtest.AssertCells(t, r4, "row4", 0, 2, 0, 4)
	rowtest.AssertFound(t, r4, "d", 4, "row4")
	rowtest.AssertFound(t, r4, "b", 2, "row4")
	rowtest.AssertNotFound(t, r4, "a", "row4")
}

func TestCellNotFound(t *testing.T) {
	r := row.NewRow2(1, n("a"), 2, x)

	rowtest.AssertNotFound(t, r, "b", "unknown label")
	rowtest.AssertNotFound(t, r, "A", "lookup is case sensitive")
	rowtest.AssertNotFound(t, r, " a", "lookup does not trim")
	rowtest.AssertNotFound(t, r, "", "unnamed cell is invisible by name")

	_, ok := r.Lookup(row.NoName)
	assert.Check(t, !ok, "absent label must not be found")
}

func TestDuplicateNamesLastWins(t *testing.T) {
	r := row.NewRow3(1, n("x"), 2, n("y"), 3, n("x"))

	rowtest.AssertFound(t, r, "x", 3, "duplicate name")
	rowtest.AssertFound(t, r, "y", 2, "unique name")
	assert.DeepEqual(t, r.ByName(), map[string]any{"x": 3, "y": 2})

	r = row.NewRow3(1, n("x"), 2, n("x"), 3, x)
	rowtest.AssertFound(t, r, "x", 2, "last named position wins")
}

func TestEmptyStringIsAName(t *testing.T) {
	r := row.NewRow2("blank", n(""), "none", x)

	rowtest.AssertFound(t, r, "", "blank", "empty-string name")
	col, ok := r.Lookup(n(""))
	assert.Check(t, ok)
	assert.Equal(t, col.Value, "blank")
}

func TestNullValueIsDistinctFromNotFound(t *testing.T) {
	r := row.NewRow2[any, *int](nil, n("v"), nil, n("p"))

	col, ok := r.Cell("v")
	assert.Check(t, ok, "a stored nil must be found")
	assert.Check(t, is.Nil(col.Value))

	col, ok = r.Cell("p")
	assert.Check(t, ok)
	assert.Check(t, col.Value.(*int) == nil)

	_, ok = r.Cell("missing")
	assert.Check(t, !ok)
}

func TestEmptyRow(t *testing.T) {
	r := row.EmptyRow3[any, any, any]()

	rowtest.AssertCells(t, r, "empty row", nil, nil, nil)
	assert.DeepEqual(t, r.Names(), []row.Name{x, x, x}, cmpNames)
	for _, label := range []string{"", "a", "_1"} {
		rowtest.AssertNotFound(t, r, label, "empty row")
	}
	assert.Equal(t, len(r.ByName()), 0)
	assert.Check(t, r.Equal(row.Row3[any, any, any]{}), "EmptyRow3 is the zero value")
}

func TestEqualAcrossConstructionPaths(t *testing.T) {
	full := row.NewRow2(1, n("a"), 2, n("b"))
	built := row.EmptyRow2[int, int]().Set1(1, n("a")).Set2(2, n("b"))
	reversed := row.EmptyRow2[int, int]().Set2(2, n("b")).Set1(1, n("a"))

	assert.Check(t, full.Equal(built))
	assert.Check(t, built.Equal(reversed))
	rowtest.AssertRowsEqual(t, built, full, "construction paths")
	rowtest.AssertRowsEqual(t, reversed, full, "construction paths")
}

func TestEqualityComparesNamesAndValues(t *testing.T) {
	base := row.NewRow2(1, n("a"), 2, n("b"))

	assert.Check(t, !base.Equal(base.Set2(3, n("b"))), "value differs")
	assert.Check(t, !base.Equal(base.Set2(2, n("c"))), "name differs")
	assert.Check(t, !base.Equal(base.Set2(2, x)), "name absent")
	assert.Check(t, !base.Equal(base.Set2(2, n(""))), "empty name is not absent")
}

func TestEqualityProperties(t *testing.T) {
	a := row.NewRow2(1, n("a"), []int{1, 2}, n("b"))
	b := row.EmptyRow2[int, []int]().Set1(1, n("a")).Set2([]int{1, 2}, n("b"))
	c := row.NewRow2(1, n("a"), []int{1, 2}, n("b"))

	assert.Check(t, row.Equal(a, a), "reflexive")
	assert.Check(t, row.Equal(a, b) && row.Equal(b, a), "symmetric")
	assert.Check(t, row.Equal(a, b) && row.Equal(b, c) && row.Equal(a, c), "transitive")
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, b.Hash(), c.Hash())
}

func TestNaNCellsEqualThemselves(t *testing.T) {
	type reading struct {
		Sensor string
		Value  float64
	}

	r := row.NewRow2(math.NaN(), n("x"), reading{"t1", math.NaN()}, n("r"))
	assert.Check(t, row.Equal(r, r))
	assert.Check(t, r.Equal(r))
	assert.Equal(t, r.Hash(), r.Hash())

	other := row.NewRow2(math.NaN(), n("x"), reading{"t1", math.NaN()}, n("r"))
	rowtest.AssertRowsEqual(t, r, other, "separately built NaN rows")

	assert.Check(t, !row.Equal(r, row.NewRow2(1.0, n("x"), reading{"t1", math.NaN()}, n("r"))))
}

func TestCyclicValues(t *testing.T) {
	type node struct {
		ID   int
		Next *node
	}
	ring := func(id int) *node {
		nd := &node{ID: id}
		nd.Next = nd
		return nd
	}

	r := row.NewRow1(ring(1), n("head"))
	assert.Check(t, row.Equal(r, r))
	assert.Equal(t, r.Hash(), r.Hash())
	rowtest.AssertRowsEqual(t, r, row.NewRow1(ring(1), n("head")), "separately built rings")
	assert.Check(t, !row.Equal(r, row.NewRow1(ring(2), n("head"))))

	m := map[string]any{}
	m["self"] = m
	mr := row.NewRow1[any](m, x)
	assert.Check(t, row.Equal(mr, mr))
	assert.Equal(t, mr.Hash(), mr.Hash())
}

func TestEqualRequiresSameArity(t *testing.T) {
	r1 := row.NewRow1[any](nil, x)
	r2 := row.EmptyRow2[any, any]()
	r3 := row.NewRow3(1, n("a"), 2, n("b"), 3, n("c"))
	r2b := row.NewRow2(1, n("a"), 2, n("b"))

	assert.Check(t, !row.Equal(r1, r2))
	assert.Check(t, !row.Equal(r2b, r3))
	assert.Check(t, !row.Equal(r3, r2b))
	assert.Check(t, !row.Equal(r1, nil))
	assert.Check(t, row.Equal(nil, nil))
}

func TestHashConsistency(t *testing.T) {
	type point struct{ X, Y int }
	v1, v2 := 5, 5

	pairs := []struct {
		a, b row.Row
	}{
		{row.NewRow1("x", n("s")), row.EmptyRow1[string]().Set1("x", n("s"))},
		{row.NewRow1(&v1, x), row.NewRow1(&v2, x)},
		{row.NewRow2(point{1, 2}, n("p"), map[string]int{"a": 1, "b": 2}, n("m")),
			row.NewRow2(point{1, 2}, n("p"), map[string]int{"b": 2, "a": 1}, n("m"))},
		{row.EmptyRow3[any, any, any](), row.Row3[any, any, any]{}},
		{row.NewRow4[any, any, any, any](1, x, "b", x, nil, x, 2.5, n("d")),
			row.NewRow4[any, any, any, any](1, x, "b", x, nil, x, 2.5, n("d"))},
		{row.NewRow1(0.0, x), row.NewRow1(math.Copysign(0, -1), x)},
		{row.NewRow1(float32(0), x), row.NewRow1(float32(math.Copysign(0, -1)), x)},
		{row.NewRow1(complex(0, 0), x), row.NewRow1(complex(math.Copysign(0, -1), math.Copysign(0, -1)), x)},
		{row.NewRow1([]float64{0}, x), row.NewRow1([]float64{math.Copysign(0, -1)}, x)},
		{row.NewRow1(math.NaN(), n("f")), row.NewRow1(math.NaN(), n("f"))},
	}
	for _, p := range pairs {
		rowtest.AssertRowsEqual(t, p.a, p.b, p.a.String())
	}
}

func TestHashDistinguishesTypicalRows(t *testing.T) {
	base := row.NewRow2(1, n("a"), 2, n("b"))

	assert.Check(t, base.Hash() != base.Set1(2, n("a")).Hash())
	assert.Check(t, base.Hash() != base.Set1(1, n("z")).Hash())
	assert.Check(t, base.Hash() != row.NewRow2(2, n("b"), 1, n("a")).Hash(), "order sensitive")
	assert.Check(t, row.EmptyRow1[any]().Hash() != row.EmptyRow2[any, any]().Hash())
}

func TestString(t *testing.T) {
	var nilPtr *int
	tests := []struct {
		r    row.Row
		want string
	}{
		{row.NewRow2(1, n("a"), 2, n("b")), "Row2(1, 2)"},
		{row.NewRow2(1, x, 2, x), "Row2(1, 2)"},
		{row.NewRow1("x", x), "Row1(x)"},
		{row.NewRow1[any](nil, x), "Row1(null)"},
		{row.NewRow1(nilPtr, n("p")), "Row1(null)"},
		{row.EmptyRow3[any, string, int](), "Row3(null, , 0)"},
		{row.NewRow4(1.5, x, true, x, "s", x, []int{1}, x), "Row4(1.5, true, s, [1])"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.r.String(), tt.want)
	}
}

func TestAllIteratesInPositionOrder(t *testing.T) {
	r := row.NewRow3("a", x, "b", x, "c", x)

	var positions []int
	var values []any
	for i, v := range row.All(r) {
		positions = append(positions, i)
		values = append(values, v)
	}
	assert.DeepEqual(t, positions, []int{1, 2, 3})
	assert.DeepEqual(t, values, []any{"a", "b", "c"})

	count := 0
	for range row.All(r) {
		count++
		break
	}
	assert.Equal(t, count, 1)
}

func TestCellsIsACopy(t *testing.T) {
	r := row.NewRow2(1, n("a"), 2, n("b"))

	cells := r.Cells()
	cells[0] = 99
	rowtest.AssertCells(t, r, "after mutating Cells() result", 1, 2)

	m := r.ByName()
	m["a"] = 99
	rowtest.AssertFound(t, r, "a", 1, "after mutating ByName() result")
}

func TestDerivedRowsShareCellValues(t *testing.T) {
	shared := []string{"x"}
	orig := row.NewRow2(shared, n("s"), 1, n("i"))
	derived := orig.Set2(2, n("i"))

	shared[0] = "y"
	assert.Equal(t, orig.Value1()[0], "y")
	assert.Equal(t, derived.Value1()[0], "y")
}

func TestConcurrentReadsAndDerivations(t *testing.T) {
	base := row.NewRow3(1, n("a"), "b", n("b"), 3.0, n("c"))

	var wg sync.WaitGroup
	results := make([]row.Row3[int, string, float64], 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = base.Cell("b")
			_ = base.Cells()
			_ = base.Hash()
			results[i] = base.Set1(i, n("a"))
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		rowtest.AssertFound(t, r, "a", i, "derived concurrently")
	}
	rowtest.AssertFound(t, base, "a", 1, "base after concurrent derivations")
}

func TestColumnEqual(t *testing.T) {
	assert.Check(t, row.Column[any]{Value: []int{1}}.Equal(row.Column[any]{Value: []int{1}}))
	assert.Check(t, !row.Column[int]{Value: 1}.Equal(row.Column[int]{Value: 2}))
	assert.Check(t, row.Column[any]{}.Equal(row.Column[any]{Value: nil}))
	assert.Check(t, row.Column[float64]{Value: math.NaN()}.Equal(row.Column[float64]{Value: math.NaN()}))
	assert.Check(t, row.Column[float64]{Value: 0}.Equal(row.Column[float64]{Value: math.Copysign(0, -1)}))
}
