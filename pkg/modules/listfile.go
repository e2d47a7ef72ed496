package modules

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/arthur-debert/fsimage/pkg/config"
	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/fspath"
	"github.com/arthur-debert/fsimage/pkg/logging"
	"github.com/arthur-debert/fsimage/pkg/pathset"
)

// KindListFile claims the paths listed in a text file, one per line.
// Blank lines and lines starting with # are ignored.
const KindListFile = "listfile"

func init() {
	Register(KindListFile, newListFileModule)
}

type listFileModule struct {
	base
	file string
	env  Env
}

func newListFileModule(name string, cfg config.ModuleConfig, env Env) (Module, error) {
	if cfg.File == "" {
		return nil, invalid(name, "no list file configured")
	}
	file := env.resolve(cfg.File)
	return &listFileModule{
		base: newBase(name, KindListFile, cfg, "paths listed in "+file),
		file: file,
		env:  env,
	}, nil
}

// Produce reads the list file and classifies every listed path
func (m *listFileModule) Produce() (*pathset.Set, error) {
	content, err := m.env.FS.ReadFile(m.file)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read list file %s", m.file).
			WithDetail("file", m.file)
	}

	paths, err := parseList(m.file, content)
	if err != nil {
		return nil, err
	}

	log := logging.GetLogger("modules.listfile")
	log.Debug().
		Str("module", m.name).
		Str("file", m.file).
		Int("paths", len(paths)).
		Msg("read list file")
	return pathset.Build(m.env.classifier(), paths)
}

func parseList(file string, content []byte) ([]fspath.Path, error) {
	var paths []fspath.Path
	scanner := bufio.NewScanner(bytes.NewReader(content))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := fspath.Parse(text)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidPath, "line %d is not an absolute path", line).
				WithDetail(errors.DetailPath, text).
				WithDetail("file", file).
				WithDetail("line", line)
		}
		paths = append(paths, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot scan list file %s", file).
			WithDetail("file", file)
	}
	return paths, nil
}
