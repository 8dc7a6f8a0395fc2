// Package rowgen renders the arity-specialized row types of package row
// from a single template.
package rowgen

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"golang.org/x/tools/imports"
)

// Generator holds the state of the generator.
// It is primarily used to buffer the output.
type Generator struct {
	Config Config       // The configuration information
	RunID  string       // Attached to every emitted event
	Buf    bytes.Buffer // The accumulated output

	observers []Observer
}

// NewGenerator returns a new generator with the given configuration.
func NewGenerator(cfg Config, runID string) *Generator {
	return &Generator{Config: cfg, RunID: runID}
}

// AddObserver registers an observer for generation events
func (g *Generator) AddObserver(o Observer) {
	g.observers = append(g.observers, o)
}

func (g *Generator) notify(t EventType, data interface{}) {
	ev := Event{Type: t, RunID: g.RunID, Timestamp: time.Now(), Data: data}
	for _, o := range g.observers {
		o.OnEvent(ev)
	}
}

// Generate renders every arity into [Generator.Buf] and returns the
// formatted source.
func (g *Generator) Generate() ([]byte, error) {
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}
	g.Buf.Reset()
	g.notify(EventGenerateStart, g.Config)

	file := File{Package: g.Config.Package}
	for n := 1; n <= g.Config.MaxArity; n++ {
		file.Arities = append(file.Arities, NewArity(n))
	}

	if err := g.execTmpl(headerTmpl, file); err != nil {
		return nil, err
	}
	for _, a := range file.Arities {
		if err := g.execTmpl(rowTmpl, a); err != nil {
			return nil, fmt.Errorf("rendering Row%d: %w", a.N, err)
		}
		g.notify(EventArityRendered, a.N)
	}
	if err := g.execTmpl(footerTmpl, file); err != nil {
		return nil, err
	}

	src, err := imports.Process(g.Config.Output, g.Buf.Bytes(), nil)
	if err != nil {
		g.notify(EventGenerateEnd, err)
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	g.notify(EventGenerateEnd, len(src))
	return src, nil
}

// execTmpl executes the given template with the given data and
// writes the result to [Generator.Buf].
func (g *Generator) execTmpl(t *template.Template, data any) error {
	if err := t.Execute(&g.Buf, data); err != nil {
		return fmt.Errorf("executing template %s: %w", t.Name(), err)
	}
	return nil
}
