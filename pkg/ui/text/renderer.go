// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/fsimage/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling.
// Query results print one path per line so they can be piped.
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.QueryResult:
		for _, e := range v.Paths {
			if _, err := fmt.Fprintln(r.output, e.Path); err != nil {
				return err
			}
		}
		return nil
	case *display.ModuleList:
		return r.renderModules(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderModules(list *display.ModuleList) error {
	for _, m := range list.Modules {
		if _, err := fmt.Fprintf(r.output, "%s\t%s\t%s\n", m.Name, m.Kind, m.Description); err != nil {
			return err
		}
	}
	for _, q := range list.Queries {
		if _, err := fmt.Fprintf(r.output, "%s\tquery\t%s\n", q.Name, q.Text); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
