package pipecolor

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pipecolor/internal/version"
	"github.com/arthur-debert/pipecolor/pkg/config"
	"github.com/arthur-debert/pipecolor/pkg/engine"
	"github.com/arthur-debert/pipecolor/pkg/errors"
	"github.com/arthur-debert/pipecolor/pkg/logging"
	"github.com/arthur-debert/pipecolor/pkg/rules"
	"github.com/arthur-debert/pipecolor/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		mode       string
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "pipecolor [FILE ...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, args, mode, configPath)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVarP(&mode, "mode", "m", "auto", MsgFlagMode)
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd(rootCmd))

	return rootCmd
}

// runFilter is the whole program: load rules, decide on color, stream
// every input through one engine
func runFilter(cmd *cobra.Command, args []string, mode, configPath string) error {
	m, err := ui.ParseMode(mode)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, configPath)
	if err != nil {
		return err
	}

	rs, err := rules.Compile(cfg)
	if err != nil {
		return err
	}

	useColor := m.UseColor(os.Stdout)
	log.Debug().
		Str("mode", m.String()).
		Bool("useColor", useColor).
		Int("files", len(args)).
		Msg("Starting stream")

	eng := engine.New(rs)
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		return stream(eng, cmd.InOrStdin(), out, useColor)
	}

	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to open '%s'", path)
		}

		// Each file starts fresh: the active format does not leak
		// across file boundaries
		eng.Reset()
		err = stream(eng, f, out, useColor)
		_ = f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func loadConfig(cmd *cobra.Command, configPath string) (config.Config, error) {
	path, found := config.FindConfigFile(configPath)
	if !found {
		log.Debug().Msg("No config file found, using built-in defaults")
		return config.Default(), nil
	}

	verbose, _ := cmd.Flags().GetCount("verbose")
	if verbose > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgReadConfig, path)
	}

	return config.Load(path)
}

func stream(eng *engine.Engine, r io.Reader, w io.Writer, useColor bool) error {
	if !useColor {
		if _, err := io.Copy(w, r); err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "failed to copy input")
		}
		return nil
	}
	return eng.Run(r, w)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pipecolor version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     MsgCompletionShort,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
