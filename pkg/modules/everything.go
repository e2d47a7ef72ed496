package modules

import (
	"github.com/arthur-debert/fsimage/pkg/config"
	"github.com/arthur-debert/fsimage/pkg/pathset"
)

// KindEverything claims the root directory and so the whole image. Removing
// a module below it is an unrepresentable difference.
const KindEverything = "everything"

func init() {
	Register(KindEverything, func(name string, cfg config.ModuleConfig, env Env) (Module, error) {
		return &everythingModule{base: newBase(name, KindEverything, cfg, "the whole filesystem")}, nil
	})
}

type everythingModule struct {
	base
}

func (m *everythingModule) Produce() (*pathset.Set, error) {
	return pathset.Everything(), nil
}
