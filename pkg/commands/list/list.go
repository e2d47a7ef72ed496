package list

import (
	"github.com/arthur-debert/fsimage/pkg/commands/internal"
	"github.com/arthur-debert/fsimage/pkg/filesystem"
	"github.com/arthur-debert/fsimage/pkg/logging"
	"github.com/arthur-debert/fsimage/pkg/ui/display"
)

// ListModulesOptions defines the options for the ListModules command.
type ListModulesOptions struct {
	// ConfigFile is an explicit config file; empty uses the default lookup
	ConfigFile string
	// FileSystem is handed to the modules; nil reads the real filesystem
	FileSystem filesystem.FS
}

// ListModules describes every configured module and named query.
func ListModules(opts ListModulesOptions) (*display.ModuleList, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListModules").Msg("Executing command")

	session, err := internal.Open(opts.ConfigFile, nil, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	result := &display.ModuleList{
		Modules: []display.ModuleInfo{},
		Queries: []display.QueryInfo{},
	}
	for _, m := range session.Catalog.Modules() {
		result.Modules = append(result.Modules, display.ModuleInfo{
			Name:        m.Name(),
			Kind:        m.Kind(),
			Description: m.Description(),
		})
	}
	for _, q := range session.Catalog.Queries() {
		result.Queries = append(result.Queries, display.QueryInfo{Name: q.Name, Text: q.Text})
	}

	log.Info().
		Str("command", "ListModules").
		Int("moduleCount", len(result.Modules)).
		Int("queryCount", len(result.Queries)).
		Msg("Command finished")
	return result, nil
}
