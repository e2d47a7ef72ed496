package config

import (
	"testing"

	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Root:   "/",
		Output: OutputConfig{Format: "auto"},
		Modules: map[string]ModuleConfig{
			"everything": {Kind: "everything"},
			"etc":        {Kind: "paths", Paths: []string{"/etc"}},
		},
		Queries: map[string]string{"drift": "+everything -etc"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantKey string
	}{
		{"valid", func(c *Config) {}, ""},
		{"relative root", func(c *Config) { c.Root = "mnt/image" }, "root"},
		{"empty root", func(c *Config) { c.Root = "" }, "root"},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"module without kind", func(c *Config) { c.Modules["home"] = ModuleConfig{} }, "modules.home.kind"},
		{"unknown module kind", func(c *Config) { c.Modules["home"] = ModuleConfig{Kind: "rsync"} }, "modules.home.kind"},
		{"bad module name", func(c *Config) { c.Modules["9lives"] = ModuleConfig{Kind: "paths"} }, "modules.9lives"},
		{"bad query name", func(c *Config) { c.Queries["my query"] = "+etc" }, "queries.my query"},
		{"empty query", func(c *Config) { c.Queries["nothing"] = "" }, "queries.nothing"},
		{"query shadows module", func(c *Config) { c.Queries["etc"] = "+everything" }, "queries.etc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate(testKinds)
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
			assert.Equal(t, tt.wantKey, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestValidate_CleansRoot(t *testing.T) {
	cfg := validConfig()
	cfg.Root = "/mnt//image/./"
	require.NoError(t, cfg.Validate(nil))
	assert.Equal(t, "/mnt/image", cfg.Root)
}
