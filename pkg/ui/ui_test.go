package ui_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/ui"
	"github.com/arthur-debert/fsimage/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *display.QueryResult {
	return &display.QueryResult{
		Query: "+everything -system",
		Root:  "/",
		Paths: []display.Entry{
			{Path: "/etc/hosts", Kind: "file"},
			{Path: "/home/user", Kind: "directory"},
		},
		Count: 2,
	}
}

func sampleModules() *display.ModuleList {
	return &display.ModuleList{
		Modules: []display.ModuleInfo{
			{Name: "everything", Kind: "everything", Description: "the whole filesystem"},
			{Name: "system", Kind: "paths", Description: "2 configured paths"},
		},
		Queries: []display.QueryInfo{
			{Name: "drift", Text: "+everything -system"},
		},
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{name: "create terminal renderer", format: ui.FormatTerminal},
		{name: "create text renderer", format: ui.FormatText},
		{name: "create json renderer", format: ui.FormatJSON},
		{name: "create yaml renderer", format: ui.FormatYAML},
		{name: "create auto renderer with buffer", format: ui.FormatAuto},
		{name: "invalid format", format: ui.Format(999), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(tt.format, buf)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, renderer)
			}
		})
	}
}

func TestTextRenderer_QueryResult(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleResult()))
	assert.Equal(t, "/etc/hosts\n/home/user\n", buf.String())
}

func TestTextRenderer_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(&display.QueryResult{Query: "-x"}))
	assert.Empty(t, buf.String())
}

func TestAutoRenderer_BufferIsPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatAuto, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleResult()))
	assert.Equal(t, "/etc/hosts\n/home/user\n", buf.String())
}

func TestTextRenderer_Modules(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleModules()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "everything\teverything\tthe whole filesystem", lines[0])
	assert.Equal(t, "drift\tquery\t+everything -system", lines[2])
}

func TestTerminalRenderer_QueryResult(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleResult()))
	out := buf.String()
	assert.Contains(t, out, "/etc/hosts")
	assert.Contains(t, out, "/home/user/")
	assert.Contains(t, out, "2 paths for +everything -system")
}

func TestTerminalRenderer_EmptyResult(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(&display.QueryResult{Query: "+home -home"}))
	assert.Contains(t, buf.String(), "No paths for +home -home")
}

func TestTerminalRenderer_Modules(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleModules()))
	out := buf.String()
	assert.Contains(t, out, "Modules")
	assert.Contains(t, out, "Queries")
	assert.Contains(t, out, "system")
	assert.Contains(t, out, "2 configured paths")
	assert.Contains(t, out, "+everything -system")
}

func TestTerminalRenderer_ErrorShowsPath(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	fail := errors.New(errors.ErrNotPresentInWhole, "path is not present").
		WithDetail(errors.DetailPath, "/a/c")
	require.NoError(t, renderer.RenderError(fail))
	assert.Contains(t, buf.String(), "NOT_PRESENT_IN_WHOLE")
	assert.Contains(t, buf.String(), "/a/c")
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleResult()))

	var decoded display.QueryResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleResult(), decoded)
}

func TestJSONRenderer_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	fail := errors.New(errors.ErrDuplicateAddition, "path added twice").
		WithDetail(errors.DetailPath, "/etc")
	require.NoError(t, renderer.RenderError(fail))

	var decoded map[string]display.ErrorInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "DUPLICATE_ADDITION", decoded["error"].Code)
	assert.Equal(t, "/etc", decoded["error"].Details["path"])
}

func TestYAMLRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatYAML, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleModules()))

	var decoded display.ModuleList
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleModules(), decoded)
}

func TestRenderMessage(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{format: ui.FormatText, expected: "done\n"},
		{format: ui.FormatJSON, expected: "{\n  \"message\": \"done\"\n}\n"},
		{format: ui.FormatYAML, expected: "message: done\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(tt.format, buf)
			require.NoError(t, err)
			require.NoError(t, renderer.RenderMessage("done"))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}
