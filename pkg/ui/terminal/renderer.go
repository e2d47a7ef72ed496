// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/style"
	"github.com/arthur-debert/fsimage/pkg/ui/display"
	"github.com/charmbracelet/lipgloss"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.QueryResult:
		return r.renderQuery(v)
	case *display.ModuleList:
		return r.renderModules(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderQuery(res *display.QueryResult) error {
	if res.Count == 0 {
		_, err := fmt.Fprintln(r.output, style.WarningStyle.Render("No paths for "+res.Query))
		return err
	}

	var b strings.Builder
	for _, e := range res.Paths {
		if e.IsDir() {
			b.WriteString(style.DirectoryStyle.Render(strings.TrimSuffix(e.Path, "/") + "/"))
		} else {
			b.WriteString(style.FileStyle.Render(e.Path))
		}
		b.WriteString("\n")
	}

	noun := "paths"
	if res.Count == 1 {
		noun = "path"
	}
	b.WriteString(style.MutedStyle.Render(fmt.Sprintf("%d %s for %s", res.Count, noun, res.Query)))
	b.WriteString("\n")

	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderModules(list *display.ModuleList) error {
	width := 0
	for _, m := range list.Modules {
		width = max(width, lipgloss.Width(m.Name))
	}
	for _, q := range list.Queries {
		width = max(width, lipgloss.Width(q.Name))
	}
	name := lipgloss.NewStyle().Width(width + 2)

	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("Modules"))
	b.WriteString("\n")
	for _, m := range list.Modules {
		b.WriteString(style.Indent(
			style.ModuleStyle.Inherit(name).Render(m.Name)+
				style.CodeStyle.Render(fmt.Sprintf("%-12s", m.Kind))+
				style.NormalStyle.Render(m.Description), 1))
		b.WriteString("\n")
	}

	if len(list.Queries) > 0 {
		b.WriteString("\n")
		b.WriteString(style.TitleStyle.Render("Queries"))
		b.WriteString("\n")
		for _, q := range list.Queries {
			b.WriteString(style.Indent(style.QueryStyle.Inherit(name).Render(q.Name)+style.NormalStyle.Render(q.Text), 1))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with its code and offending path
func (r *Renderer) RenderError(err error) error {
	var b strings.Builder
	b.WriteString(style.ErrorStyle.Render("Error: " + err.Error()))
	b.WriteString("\n")
	if path := errors.GetErrorPath(err); path != "" {
		b.WriteString(style.Indent(style.MutedStyle.Render("path: ")+style.CodeStyle.Render(path), 1))
		b.WriteString("\n")
	}
	_, werr := io.WriteString(r.output, b.String())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.NormalStyle.Render(msg))
	return err
}
