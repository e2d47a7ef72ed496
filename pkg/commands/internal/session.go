// Package internal loads the configuration and module catalog shared by the
// commands
package internal

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/fsimage/pkg/catalog"
	"github.com/arthur-debert/fsimage/pkg/config"
	"github.com/arthur-debert/fsimage/pkg/filesystem"
	"github.com/arthur-debert/fsimage/pkg/logging"
	"github.com/arthur-debert/fsimage/pkg/modules"
)

// Session is a loaded configuration with its catalog
type Session struct {
	Config  *config.Config
	Catalog *catalog.Catalog
}

// Open loads the configuration, makes it the global one and builds the
// catalog over fs. A nil fs reads the real filesystem.
func Open(configFile string, overrides map[string]interface{}, fs filesystem.FS) (*Session, error) {
	logger := logging.GetLogger("commands.session")

	cfg, err := config.Load(config.LoadOptions{
		File:      configFile,
		Overrides: overrides,
		Kinds:     modules.Kinds(),
	})
	if err != nil {
		return nil, err
	}
	config.Initialize(cfg)

	env := modules.Env{
		FS:        fs,
		Root:      cfg.Root,
		ConfigDir: configDir(cfg),
	}
	cat, err := catalog.New(cfg, env)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", cfg.Source).
		Str("root", cfg.Root).
		Msg("session opened")
	return &Session{Config: cfg, Catalog: cat}, nil
}

// configDir is where relative module files are resolved: next to the config
// file, or the working directory when there is none
func configDir(cfg *config.Config) string {
	if cfg.Source != "" {
		return filepath.Dir(cfg.Source)
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}
