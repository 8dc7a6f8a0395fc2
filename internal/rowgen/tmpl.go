package rowgen

import (
	"strconv"
	"strings"
	"text/template"
)

// Arity is the data every row template is executed with.
type Arity struct {
	N     int
	Cells []Cell
}

// Cell is one position of an Arity.
type Cell struct {
	I int    // 1-based position
	T string // type parameter name
}

// NewArity returns the template data for rows of n cells.
func NewArity(n int) Arity {
	a := Arity{N: n, Cells: make([]Cell, n)}
	for i := range a.Cells {
		a.Cells[i] = Cell{I: i + 1, T: "T" + strconv.Itoa(i+1)}
	}
	return a
}

// TypeParams returns "T1, T2, ..." for use in instantiations.
func (a Arity) TypeParams() string {
	names := make([]string, len(a.Cells))
	for i, c := range a.Cells {
		names[i] = c.T
	}
	return strings.Join(names, ", ")
}

// TypeDecl returns "T1, T2, ... any" for use in declarations.
func (a Arity) TypeDecl() string {
	return a.TypeParams() + " any"
}

// AnyParams returns "any, any, ..." for interface assertions.
func (a Arity) AnyParams() string {
	return strings.TrimSuffix(strings.Repeat("any, ", a.N), ", ")
}

// Type returns the instantiated row type, e.g. "Row2[T1, T2]".
func (a Arity) Type() string {
	return "Row" + strconv.Itoa(a.N) + "[" + a.TypeParams() + "]"
}

// Plural returns "s" for arities above one.
func (a Arity) Plural() string {
	if a.N == 1 {
		return ""
	}
	return "s"
}

// File is the data the file template is executed with.
type File struct {
	Package string
	Arities []Arity
}

var headerTmpl = template.Must(template.New("header").Parse(`// Code generated by rowgen. DO NOT EDIT.

package {{.Package}}
`))

var rowTmpl = template.Must(template.New("row").Parse(`
// Row{{.N}} is an immutable row of {{.N}} cell{{.Plural}}.
// The zero value is the empty row.
type Row{{.N}}[{{.TypeDecl}}] struct {
{{- range .Cells}}
	c{{.I}} cell[{{.T}}]
{{- end}}
}

// NewRow{{.N}} returns a row holding the given values and names in position order.
func NewRow{{.N}}[{{.TypeDecl}}]({{range $i, $c := .Cells}}{{if $i}}, {{end}}v{{.I}} {{.T}}, n{{.I}} Name{{end}}) {{.Type}} {
	return {{.Type}}{
{{- range .Cells}}
		c{{.I}}: cell[{{.T}}]{value: v{{.I}}, name: n{{.I}}},
{{- end}}
	}
}

// EmptyRow{{.N}} returns a row of {{.N}} cell{{.Plural}} with zero values and no names.
func EmptyRow{{.N}}[{{.TypeDecl}}]() {{.Type}} {
	return {{.Type}}{}
}

func (r {{.Type}}) Arity() int { return {{.N}} }

func (r {{.Type}}) Cells() []any { return cellValues(r) }

func (r {{.Type}}) Names() []Name { return cellNames(r) }

func (r {{.Type}}) Cell(label string) (Column[any], bool) {
	return lookup(r, Named(label))
}

func (r {{.Type}}) Lookup(label Name) (Column[any], bool) {
	return lookup(r, label)
}

func (r {{.Type}}) ByName() map[string]any { return byName(r) }

func (r {{.Type}}) Hash() uint64 { return hashRow(r) }

func (r {{.Type}}) String() string { return format(r) }

// Equal reports whether every (value, name) pair of r and o is equal.
func (r {{.Type}}) Equal(o {{.Type}}) bool {
	return {{range $i, $c := .Cells}}{{if $i}} &&
		{{end}}r.c{{.I}}.equal(o.c{{.I}}){{end}}
}
{{- $t := .Type}}
{{range .Cells}}
// Value{{.I}} returns the value of cell {{.I}}.
func (r {{$t}}) Value{{.I}}() {{.T}} { return r.c{{.I}}.value }

// Name{{.I}} returns the name of cell {{.I}}.
func (r {{$t}}) Name{{.I}}() Name { return r.c{{.I}}.name }

// Set{{.I}} returns a copy of r with cell {{.I}} replaced.
func (r {{$t}}) Set{{.I}}(value {{.T}}, name Name) {{$t}} {
	r.c{{.I}} = cell[{{.T}}]{value: value, name: name}
	return r
}
{{end}}
func (r {{.Type}}) MarshalJSON() ([]byte, error) { return marshalCells(r) }

// UnmarshalJSON decodes exactly {{.N}} cell{{.Plural}} into r.
// A JSON null leaves r unchanged.
func (r *{{.Type}}) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalCells(data, {{.N}})
	if err != nil || raw == nil {
		return err
	}
	var next {{.Type}}
{{- range $i, $c := .Cells}}
	if err := decodeCell(raw[{{$i}}], {{.I}}, &next.c{{.I}}); err != nil {
		return err
	}
{{- end}}
	*r = next
	return nil
}

func (r {{.Type}}) cellAt(i int) (any, Name) {
	switch i {
{{- range .Cells}}
	case {{.I}}:
		return r.c{{.I}}.value, r.c{{.I}}.name
{{- end}}
	}
	return nil, NoName
}
`))

var footerTmpl = template.Must(template.New("footer").Parse(`
var (
{{- range .Arities}}
	_ Row = Row{{.N}}[{{.AnyParams}}]{}
{{- end}}
)
`))
