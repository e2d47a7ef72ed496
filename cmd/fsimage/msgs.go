package fsimage

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Describe and combine the backup modules of a filesystem"
	MsgQueryShort      = "Evaluate a query and print the resulting paths"
	MsgModulesShort    = "List configured modules and named queries"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "Wrote config template to %s"
	MsgVersionFormat = "fsimage version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose                    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig                     = "Config file (default $XDG_CONFIG_HOME/fsimage/config.toml)"
	MsgFlagFormat                     = "Output format: auto, term, text, json or yaml (default from config)"
	MsgFlagRoot                       = "Directory image paths are resolved against"
	MsgFlagAllowDuplicateAddition     = "Allow added terms to claim paths that are already included"
	MsgFlagAllowNonpresentSubtraction = "Ignore removed paths that are not included"
	MsgFlagTemplate                   = "Print a commented-out config file template"
	MsgFlagWrite                      = "Write the template to the config file location"
	MsgFlagOutput                     = "Where --write saves the template"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/query-long.txt
	msgQueryLongRaw string
	MsgQueryLong    = strings.TrimSpace(msgQueryLongRaw)

	//go:embed msgs/query-example.txt
	msgQueryExampleRaw string
	MsgQueryExample    = strings.TrimRight(msgQueryExampleRaw, "\n")

	//go:embed msgs/modules-long.txt
	msgModulesLongRaw string
	MsgModulesLong    = strings.TrimSpace(msgModulesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
