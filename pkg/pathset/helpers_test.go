package pathset

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/fsimage/pkg/fspath"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// testFS is the classification table shared by most tests
var testFS = StaticClassifier{
	"/":                  Directory,
	"/a":                 Directory,
	"/a/b":               File,
	"/a/c":               File,
	"/a/d":               Directory,
	"/a/d/e":             File,
	"/etc":               Directory,
	"/etc/hosts":         File,
	"/etc/ssh":           Directory,
	"/etc/ssh/sshd":      File,
	"/p":                 File,
	"/q":                 File,
	"/x":                 File,
	"/y":                 File,
	"/var":               Directory,
	"/var/log":           Directory,
	"/var/log/app.log":   File,
	"/var/log/sys.log":   File,
	"/home":              Directory,
	"/home/user":         Directory,
	"/home/user/.bashrc": File,
}

func mustBuild(t *testing.T, paths ...string) *Set {
	t.Helper()
	s, err := BuildStrings(testFS, paths)
	require.NoError(t, err)
	return s
}

func parseAll(t *testing.T, texts ...string) []fspath.Path {
	t.Helper()
	out := make([]fspath.Path, 0, len(texts))
	for _, text := range texts {
		p, err := fspath.Parse(text)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

// countingClassifier records every classified path
type countingClassifier struct {
	base  Classifier
	calls []string
}

func (c *countingClassifier) Classify(p fspath.Path) (Kind, error) {
	c.calls = append(c.calls, p.String())
	return c.base.Classify(p)
}

// captureLogs routes the global logger into a buffer at trace level for
// the duration of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	return &buf
}
