package modules

import (
	"path/filepath"

	"github.com/arthur-debert/fsimage/pkg/config"
	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/filesystem"
	"github.com/arthur-debert/fsimage/pkg/fspath"
	"github.com/arthur-debert/fsimage/pkg/pathset"
	"github.com/arthur-debert/fsimage/pkg/query"
	"github.com/arthur-debert/fsimage/pkg/registry"
)

// Module is a configured backup module
type Module interface {
	query.Producer

	// Name is the name the module is configured and referenced under
	Name() string
	// Kind is the registered kind the module was built from
	Kind() string
	// Description is a one-line summary for listings
	Description() string
}

// Env is what modules need from the outside world
type Env struct {
	// FS reads module inputs and classifies image paths
	FS filesystem.FS
	// Root is the image root image paths are resolved against
	Root string
	// ConfigDir resolves relative input files, usually the config file's directory
	ConfigDir string
}

// Factory builds a module from its configuration
type Factory func(name string, cfg config.ModuleConfig, env Env) (Module, error)

var factories = registry.New[Factory]("module kind")

// Register makes a module kind available. It panics when the kind is taken.
func Register(kind string, factory Factory) {
	registry.MustRegister(factories, kind, factory)
}

// Kinds returns the registered module kinds in sorted order
func Kinds() []string {
	return factories.List()
}

// New builds the module called name from its configuration
func New(name string, cfg config.ModuleConfig, env Env) (Module, error) {
	factory, err := factories.Get(cfg.Kind)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrModuleInvalid, "module %s has unknown kind %q", name, cfg.Kind).
			WithDetail("module", name).
			WithDetail("kind", cfg.Kind)
	}
	if env.FS == nil {
		env.FS = filesystem.NewOS()
	}
	if env.Root == "" {
		env.Root = "/"
	}
	return factory(name, cfg, env)
}

// base carries the fields every module reports
type base struct {
	name        string
	kind        string
	description string
}

func (b base) Name() string        { return b.name }
func (b base) Kind() string        { return b.kind }
func (b base) Description() string { return b.description }

func newBase(name, kind string, cfg config.ModuleConfig, fallback string) base {
	desc := cfg.Description
	if desc == "" {
		desc = fallback
	}
	return base{name: name, kind: kind, description: desc}
}

// classifier looks image paths up below the image root
func (e Env) classifier() pathset.Classifier {
	return pathset.NewFSClassifier(filesystem.Rooted(e.FS, e.Root), fspath.Separator)
}

// resolve makes a module input path absolute against the config directory
func (e Env) resolve(path string) string {
	if filepath.IsAbs(path) || e.ConfigDir == "" {
		return path
	}
	return filepath.Join(e.ConfigDir, path)
}

func invalid(name, format string, args ...interface{}) *errors.FsimageError {
	return errors.Newf(errors.ErrModuleInvalid, "module %s: "+format, append([]interface{}{name}, args...)...).
		WithDetail("module", name)
}
