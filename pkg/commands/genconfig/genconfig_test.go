package genconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig(t *testing.T) {
	t.Run("effective configuration", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
		env.WriteConfig(`
[modules.system]
kind = "paths"
paths = ["/etc"]
`)

		result, err := GenConfig(GenConfigOptions{})
		require.NoError(t, err)
		assert.Contains(t, result.ConfigContent, "root = '/'")
		assert.Contains(t, result.ConfigContent, "[modules.system]")
		assert.Contains(t, result.ConfigContent, "[modules.everything]")
		assert.Empty(t, result.FileWritten)
	})

	t.Run("template to stdout", func(t *testing.T) {
		testutil.NewTestEnvironment(t, testutil.EnvIsolated)

		result, err := GenConfig(GenConfigOptions{Template: true})
		require.NoError(t, err)
		assert.Empty(t, result.FileWritten)

		// Verify that configuration values are commented out
		for _, line := range strings.Split(result.ConfigContent, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
				(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
				continue
			}
			assert.Fail(t, "Found uncommented configuration line", "Line: %s", line)
		}
		assert.Contains(t, result.ConfigContent, "[evaluate]")
	})

	t.Run("write to default location", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

		result, err := GenConfig(GenConfigOptions{Write: true})
		require.NoError(t, err)

		expected := filepath.Join(env.ConfigDir, "fsimage", "config.toml")
		assert.Equal(t, expected, result.FileWritten)
		content, err := os.ReadFile(expected)
		require.NoError(t, err)
		assert.Equal(t, result.ConfigContent, string(content))
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
		path := env.WriteConfig("root = \"/\"\n")

		_, err := GenConfig(GenConfigOptions{Write: true, Path: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "root = \"/\"\n", string(content))
	})
}
