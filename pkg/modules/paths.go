package modules

import (
	"fmt"

	"github.com/arthur-debert/fsimage/pkg/config"
	"github.com/arthur-debert/fsimage/pkg/fspath"
	"github.com/arthur-debert/fsimage/pkg/pathset"
)

// KindPaths claims a literal list of paths from the configuration
const KindPaths = "paths"

func init() {
	Register(KindPaths, newPathsModule)
}

type pathsModule struct {
	base
	paths []fspath.Path
	env   Env
}

func newPathsModule(name string, cfg config.ModuleConfig, env Env) (Module, error) {
	if len(cfg.Paths) == 0 {
		return nil, invalid(name, "no paths configured")
	}

	paths := make([]fspath.Path, 0, len(cfg.Paths))
	for _, text := range cfg.Paths {
		p, err := fspath.Parse(text)
		if err != nil {
			return nil, invalid(name, "%v", err).WithDetail("path", text)
		}
		paths = append(paths, p)
	}

	return &pathsModule{
		base:  newBase(name, KindPaths, cfg, fmt.Sprintf("%d configured paths", len(paths))),
		paths: paths,
		env:   env,
	}, nil
}

// Produce classifies the configured paths below the image root
func (m *pathsModule) Produce() (*pathset.Set, error) {
	return pathset.Build(m.env.classifier(), m.paths)
}
