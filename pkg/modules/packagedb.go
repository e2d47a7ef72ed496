package modules

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/fsimage/pkg/config"
	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/logging"
	"github.com/arthur-debert/fsimage/pkg/pathset"
	"github.com/pelletier/go-toml/v2"
)

// KindPackageDB claims the files installed by packages recorded in a
// package database:
//
//	[[packages]]
//	name = "dodot"
//	git-upstream-url = "https://github.com/arthur-debert/dodot"
//	files = ["/usr/local/bin/dodot"]
const KindPackageDB = "packagedb"

func init() {
	Register(KindPackageDB, newPackageDBModule)
}

// Package is one entry of a package database
type Package struct {
	Name           string   `toml:"name"`
	GitUpstreamURL string   `toml:"git-upstream-url"`
	Files          []string `toml:"files"`
}

// Database is the content of a package database file
type Database struct {
	Packages []Package `toml:"packages"`
}

// DefaultDatabasePath is where the package database lives when a module
// does not name one
func DefaultDatabasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "fsimage", "packages.toml")
}

// ReadDatabase parses a package database. Unknown fields and duplicate
// package names are rejected.
func ReadDatabase(content []byte) (*Database, error) {
	var db Database
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&db); err != nil {
		return nil, errors.Wrap(err, errors.ErrModuleInvalid, "invalid package database")
	}

	seen := make(map[string]bool, len(db.Packages))
	for _, pkg := range db.Packages {
		if pkg.Name == "" {
			return nil, errors.New(errors.ErrModuleInvalid, "package database has a package without a name")
		}
		if seen[pkg.Name] {
			return nil, errors.Newf(errors.ErrModuleInvalid, "package %s is recorded twice", pkg.Name).
				WithDetail("package", pkg.Name)
		}
		seen[pkg.Name] = true
	}
	return &db, nil
}

type packageDBModule struct {
	base
	database string
	packages []string
	env      Env
}

func newPackageDBModule(name string, cfg config.ModuleConfig, env Env) (Module, error) {
	database := cfg.Database
	if database == "" {
		database = DefaultDatabasePath()
	}
	database = env.resolve(database)

	fallback := "files of packages in " + database
	if len(cfg.Packages) > 0 {
		fallback = fmt.Sprintf("files of %d packages in %s", len(cfg.Packages), database)
	}
	return &packageDBModule{
		base:     newBase(name, KindPackageDB, cfg, fallback),
		database: database,
		packages: cfg.Packages,
		env:      env,
	}, nil
}

// Produce reads the database and classifies the files of the selected
// packages, or of every package when no filter is configured
func (m *packageDBModule) Produce() (*pathset.Set, error) {
	content, err := m.env.FS.ReadFile(m.database)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read package database %s", m.database).
			WithDetail("file", m.database)
	}

	db, err := ReadDatabase(content)
	if err != nil {
		return nil, err
	}

	selected, err := m.selectPackages(db)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, pkg := range selected {
		files = append(files, pkg.Files...)
	}

	log := logging.GetLogger("modules.packagedb")
	log.Debug().
		Str("module", m.name).
		Str("database", m.database).
		Int("packages", len(selected)).
		Int("files", len(files)).
		Msg("read package database")
	return pathset.BuildStrings(m.env.classifier(), files)
}

func (m *packageDBModule) selectPackages(db *Database) ([]Package, error) {
	if len(m.packages) == 0 {
		return db.Packages, nil
	}

	var selected []Package
	for _, want := range m.packages {
		idx := slices.IndexFunc(db.Packages, func(p Package) bool { return p.Name == want })
		if idx < 0 {
			return nil, invalid(m.name, "package %s is not in %s", want, m.database).
				WithDetail("package", want)
		}
		selected = append(selected, db.Packages[idx])
	}
	return selected, nil
}
