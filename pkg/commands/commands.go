// Package commands provides high-level command implementations for fsimage.
//
// Each command is implemented in its own subdirectory:
//   - query/     - RunQuery command
//   - list/      - ListModules command
//   - genconfig/ - GenConfig command
//   - internal/  - configuration and catalog loading shared by the commands
//
// This file re-exports the command functions so the CLI depends on a
// single package.
package commands

import (
	"github.com/arthur-debert/fsimage/pkg/commands/genconfig"
	"github.com/arthur-debert/fsimage/pkg/commands/list"
	"github.com/arthur-debert/fsimage/pkg/commands/query"
	"github.com/arthur-debert/fsimage/pkg/ui/display"
)

// QueryOptions defines the options for RunQuery
type QueryOptions = query.QueryOptions

// RunQuery compiles and evaluates a query against the configured modules.
func RunQuery(opts QueryOptions) (*display.QueryResult, error) {
	return query.RunQuery(opts)
}

// ListModulesOptions defines the options for ListModules
type ListModulesOptions = list.ListModulesOptions

// ListModules describes every configured module and named query.
func ListModules(opts ListModulesOptions) (*display.ModuleList, error) {
	return list.ListModules(opts)
}

// GenConfigOptions defines the options for GenConfig
type GenConfigOptions = genconfig.GenConfigOptions

// GenConfigResult holds the rendered configuration
type GenConfigResult = genconfig.GenConfigResult

// GenConfig renders the effective configuration or the config file template
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
