package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/simenv/internal/commands"
	"github.com/arthur-debert/simenv/pkg/config"
	"github.com/arthur-debert/simenv/pkg/doctor"
	serrors "github.com/arthur-debert/simenv/pkg/errors"
	"github.com/arthur-debert/simenv/pkg/logging"
	"github.com/arthur-debert/simenv/pkg/paths"
	"github.com/arthur-debert/simenv/pkg/runner"
	"github.com/arthur-debert/simenv/pkg/shell"
	"github.com/arthur-debert/simenv/pkg/ui"
	"github.com/spf13/cobra"
)

// dialectFlag resolves --shell, defaulting to $SHELL
func dialectFlag(name string) (shell.Dialect, error) {
	if name == "" {
		return shell.DetectDialect(os.Getenv("SHELL")), nil
	}
	return shell.ParseDialect(name)
}

// formatFlag parses --format and resolves auto against w
func formatFlag(name string, w io.Writer) (ui.Format, error) {
	f, err := ui.ParseFormat(name)
	if err != nil {
		return f, serrors.Wrap(err, serrors.ErrInvalidInput, "invalid --format")
	}
	if file, ok := w.(*os.File); ok {
		return ui.Resolve(f, file), nil
	}
	if f == ui.FormatAuto {
		return ui.FormatText, nil
	}
	return f, nil
}

func newScriptCmd(opts *globalOptions) *cobra.Command {
	var shellName string

	cmd := &cobra.Command{
		Use:     "script",
		Short:   commands.MsgScriptShort,
		Long:    commands.MsgScriptLong,
		Example: commands.MsgScriptExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dialectFlag(shellName)
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			p, err := cfg.ActiveProfile()
			if err != nil {
				return err
			}

			// only an explicit home is baked in; otherwise the shell expands $HOME
			home := ""
			if cfg.Home != "" {
				home = paths.ExpandHome(cfg.Home)
			}

			logger := logging.GetLogger("cli.script")
			logger.Debug().
				Str("profile", p.Name).
				Str("shell", string(d)).
				Msg("Rendering script")

			_, err = io.WriteString(cmd.OutOrStdout(), shell.Script(p, home, d))
			return err
		},
	}

	cmd.Flags().StringVarP(&shellName, "shell", "s", "", commands.MsgFlagShell)
	return cmd
}

func newEnvCmd(opts *globalOptions) *cobra.Command {
	var (
		shellName string
		format    string
	)

	cmd := &cobra.Command{
		Use:     "env",
		Short:   commands.MsgEnvShort,
		Long:    commands.MsgEnvLong,
		Example: commands.MsgEnvExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession()
			if err != nil {
				return err
			}

			if format != "" {
				f, err := formatFlag(format, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				return ui.RenderChanges(cmd.OutOrStdout(), f, s.view())
			}

			d, err := dialectFlag(shellName)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), shell.Exports(s.changes(), d))
			return err
		},
	}

	cmd.Flags().StringVarP(&shellName, "shell", "s", "", commands.MsgFlagShell)
	cmd.Flags().StringVarP(&format, "format", "f", "", commands.MsgFlagFormat)
	return cmd
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: commands.MsgShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession()
			if err != nil {
				return err
			}
			f, err := formatFlag(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return ui.RenderChanges(cmd.OutOrStdout(), f, s.view())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", commands.MsgFlagFormat)
	return cmd
}

func newExecCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exec -- COMMAND [ARGS...]",
		Short:   commands.MsgExecShort,
		Long:    commands.MsgExecLong,
		Example: commands.MsgExecExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession()
			if err != nil {
				return err
			}

			code, err := runner.Run(cmd.Context(), s.composed(), s.profile.Sep(), args, runner.Streams{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			if code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	// everything after the command name belongs to the child
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newDoctorCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: commands.MsgDoctorShort,
		Long:  commands.MsgDoctorLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession()
			if err != nil {
				return err
			}
			f, err := formatFlag(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			done := logging.LogOperationStart(logging.GetLogger("cli.doctor"), "inspect")
			report := doctor.Inspect(s.profile, s.home, s.base)
			done()

			return ui.RenderReport(cmd.OutOrStdout(), f, report)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", commands.MsgFlagFormat)
	return cmd
}

func newProfilesCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: commands.MsgProfilesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			f, err := formatFlag(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var summaries []ui.ProfileSummary
			for _, name := range cfg.ProfileNames() {
				p, err := cfg.BuildProfile(name)
				if err != nil {
					return err
				}
				summaries = append(summaries, ui.ProfileSummary{
					Name:        name,
					Description: p.Description,
					Active:      name == cfg.Profile,
					Variables:   p.Targets(),
				})
			}
			return ui.RenderProfiles(cmd.OutOrStdout(), f, summaries)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", commands.MsgFlagFormat)
	return cmd
}

func newHookCmd() *cobra.Command {
	var shellName string

	cmd := &cobra.Command{
		Use:   "hook",
		Short: commands.MsgHookShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dialectFlag(shellName)
			if err != nil {
				return err
			}
			binary := filepath.Base(os.Args[0])
			if binary == "" || binary == "." {
				binary = "simenv"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), shell.InitSnippet(binary, d))
			return err
		},
	}

	cmd.Flags().StringVarP(&shellName, "shell", "s", "", commands.MsgFlagShell)
	return cmd
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: commands.MsgConfigShort,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: commands.MsgConfigShowSh,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			data, err := config.Dump(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: commands.MsgConfigPathSh,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configFile
			if path == "" {
				path = paths.ConfigFile()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), paths.ExpandHome(path))
			return err
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: commands.MsgConfigInitSh,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configFile
			if path == "" {
				path = paths.ConfigFile()
			}
			path = paths.ExpandHome(path)
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.ErrOrStderr(), commands.MsgConfigWritten, path)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, commands.MsgFlagForce)
	cmd.AddCommand(initCmd)

	return cmd
}
