package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/simenv/internal/commands"
	"github.com/arthur-debert/simenv/internal/version"
	"github.com/arthur-debert/simenv/pkg/cobrax/topics"
	"github.com/arthur-debert/simenv/pkg/logging"
	"github.com/arthur-debert/simenv/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ExitError carries a child's exit code up to main without printing anything
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "simenv",
		Short:   commands.MsgRootShort,
		Long:    commands.MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(opts.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", commands.MsgFlagVerbose)
	flags.StringVarP(&opts.configFile, "config", "c", "", commands.MsgFlagConfig)
	flags.StringVar(&opts.home, "home", "", commands.MsgFlagHome)
	flags.StringVarP(&opts.profile, "profile", "p", "", commands.MsgFlagProfile)
	flags.StringVar(&opts.envFile, "env-file", "", commands.MsgFlagEnvFile)
	flags.BoolVar(&opts.clean, "clean", false, commands.MsgFlagClean)

	rootCmd.AddCommand(newScriptCmd(opts))
	rootCmd.AddCommand(newEnvCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newExecCmd(opts))
	rootCmd.AddCommand(newDoctorCmd(opts))
	rootCmd.AddCommand(newProfilesCmd(opts))
	rootCmd.AddCommand(newHookCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	topicOpts := topics.Options{Extensions: []string{".txt", ".md"}}
	if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
		topicOpts.Renderer = topics.NewGlamourRenderer()
	}
	if _, err := topics.Install(rootCmd, commands.Topics, topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: commands.MsgVersionShort,
		Long:  commands.MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, commands.MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, commands.MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, commands.MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(simenv completion bash)

Zsh:
  $ simenv completion zsh > "${fpath[1]}/_simenv"

Fish:
  $ simenv completion fish | source

PowerShell:
  PS> simenv completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
