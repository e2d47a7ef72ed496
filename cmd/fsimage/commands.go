package fsimage

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fsimage/internal/version"
	"github.com/arthur-debert/fsimage/pkg/commands"
	"github.com/arthur-debert/fsimage/pkg/config"
	"github.com/arthur-debert/fsimage/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// configFlag returns the value of the persistent --config flag
func configFlag(cmd *cobra.Command) string {
	configFile, _ := cmd.Root().PersistentFlags().GetString("config")
	return configFile
}

// outputFormat resolves --format, falling back to the configured format
func outputFormat(cmd *cobra.Command) (ui.Format, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("format")
	if name == "" {
		name = config.Get().Output.Format
	}
	return ui.ParseFormat(name)
}

func newRenderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := outputFormat(cmd)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// failed renders err on stdout when the output is machine-readable, so
// consumers of json or yaml always get a parsable document, and returns it
func failed(cmd *cobra.Command, err error) error {
	format, ferr := outputFormat(cmd)
	if ferr != nil || (format != ui.FormatJSON && format != ui.FormatYAML) {
		return err
	}
	if renderer, rerr := ui.NewRenderer(format, cmd.OutOrStdout()); rerr == nil {
		_ = renderer.RenderError(err)
	}
	return err
}

// termNamesCompletion completes module and query names, keeping the sign
// the user already typed
func termNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	result, err := commands.ListModules(commands.ListModulesOptions{
		ConfigFile: configFlag(cmd),
	})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	sign := "+"
	if strings.HasPrefix(toComplete, "-") {
		sign = "-"
	}

	var names []string
	for _, m := range result.Modules {
		names = append(names, sign+m.Name+"\t"+m.Description)
	}
	for _, q := range result.Queries {
		names = append(names, sign+q.Name+"\t"+q.Text)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newQueryCmd() *cobra.Command {
	var (
		root                       string
		allowDuplicateAddition     bool
		allowNonpresentSubtraction bool
	)

	cmd := &cobra.Command{
		Use:               "query [flags] [--] EXPRESSION...",
		Short:             MsgQueryShort,
		Long:              MsgQueryLong,
		Example:           MsgQueryExample,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: termNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			expression := strings.Join(args, " ")
			log.Info().
				Str("expression", expression).
				Bool("allow_duplicate_addition", allowDuplicateAddition).
				Bool("allow_nonpresent_subtraction", allowNonpresentSubtraction).
				Msg("Evaluating query")

			result, err := commands.RunQuery(commands.QueryOptions{
				Expression:                 expression,
				ConfigFile:                 configFlag(cmd),
				Root:                       root,
				AllowDuplicateAddition:     allowDuplicateAddition,
				AllowNonpresentSubtraction: allowNonpresentSubtraction,
			})
			if err != nil {
				return failed(cmd, err)
			}

			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	// Terms like -system must not be parsed as flags
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVar(&root, "root", "", MsgFlagRoot)
	cmd.Flags().BoolVar(&allowDuplicateAddition, "allow-duplicate-addition", false, MsgFlagAllowDuplicateAddition)
	cmd.Flags().BoolVar(&allowNonpresentSubtraction, "allow-nonpresent-subtraction", false, MsgFlagAllowNonpresentSubtraction)

	return cmd
}

func newModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "modules",
		Short:   MsgModulesShort,
		Long:    MsgModulesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.ListModules(commands.ListModulesOptions{
				ConfigFile: configFlag(cmd),
			})
			if err != nil {
				return failed(cmd, err)
			}

			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}
}

func newConfigCmd() *cobra.Command {
	var (
		template bool
		write    bool
		output   string
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GenConfig(commands.GenConfigOptions{
				ConfigFile: configFlag(cmd),
				Template:   template,
				Write:      write,
				Path:       output,
			})
			if err != nil {
				return err
			}

			if result.FileWritten != "" {
				renderer, err := newRenderer(cmd)
				if err != nil {
					return err
				}
				return renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, result.FileWritten))
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
			return err
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
