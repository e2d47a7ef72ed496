package query

import (
	"strings"

	"github.com/arthur-debert/fsimage/pkg/commands/internal"
	"github.com/arthur-debert/fsimage/pkg/filesystem"
	"github.com/arthur-debert/fsimage/pkg/logging"
	evaluator "github.com/arthur-debert/fsimage/pkg/query"
	"github.com/arthur-debert/fsimage/pkg/ui/display"
)

// QueryOptions defines the options for the RunQuery command.
type QueryOptions struct {
	// Expression is the query text, e.g. "+everything -system"
	Expression string
	// ConfigFile is an explicit config file; empty uses the default lookup
	ConfigFile string
	// Root overrides the configured image root when set
	Root string
	// AllowDuplicateAddition and AllowNonpresentSubtraction relax the
	// evaluator. When false the configured value applies.
	AllowDuplicateAddition     bool
	AllowNonpresentSubtraction bool
	// FileSystem is read to classify paths; nil reads the real filesystem
	FileSystem filesystem.FS
}

// RunQuery compiles and evaluates a query against the configured modules.
func RunQuery(opts QueryOptions) (*display.QueryResult, error) {
	log := logging.GetLogger("commands.query")
	log.Debug().Str("command", "RunQuery").Str("expression", opts.Expression).Msg("Executing command")

	session, err := internal.Open(opts.ConfigFile, overrides(opts), opts.FileSystem)
	if err != nil {
		return nil, err
	}

	expr, err := session.Catalog.Compile(opts.Expression)
	if err != nil {
		return nil, err
	}

	set, err := evaluator.Evaluate(evaluator.Options{
		AllowDuplicateAddition:     session.Config.Evaluate.AllowDuplicateAddition,
		AllowNonpresentSubtraction: session.Config.Evaluate.AllowNonpresentSubtraction,
	}, expr)
	if err != nil {
		return nil, err
	}

	result := &display.QueryResult{
		Query: strings.Join(strings.Fields(opts.Expression), " "),
		Root:  session.Config.Root,
		Paths: []display.Entry{},
	}
	for _, e := range set.Entries() {
		result.Paths = append(result.Paths, display.Entry{
			Path: e.Path.String(),
			Kind: e.Kind.String(),
		})
	}
	result.Count = len(result.Paths)

	log.Info().Str("command", "RunQuery").Int("pathCount", result.Count).Msg("Command finished")
	return result, nil
}

func overrides(opts QueryOptions) map[string]interface{} {
	out := map[string]interface{}{}
	if opts.Root != "" {
		out["root"] = opts.Root
	}
	if opts.AllowDuplicateAddition {
		out["evaluate.allow_duplicate_addition"] = true
	}
	if opts.AllowNonpresentSubtraction {
		out["evaluate.allow_nonpresent_subtraction"] = true
	}
	return out
}
