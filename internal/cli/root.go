package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/ddbg/internal/version"
	"github.com/arthur-debert/ddbg/pkg/config"
	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/arthur-debert/ddbg/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// options are the values of the root command's flags.
type options struct {
	verbosity  int
	format     string
	configPath string
	scripts    []string
	batch      bool
}

// NewRootCmd creates and returns the root command. Files are read from
// fsys.
func NewRootCmd(fsys afero.Fs) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var opts options

	rootCmd := &cobra.Command{
		Use:     "ddbg [program]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLoggerWithWriter(cmd.ErrOrStderr(), opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, args, fsys)
			if err != nil {
				return err
			}
			if cfg.Logging.Verbosity > opts.verbosity {
				logging.SetupLoggerWithWriter(cmd.ErrOrStderr(), cfg.Logging.Verbosity)
			}

			session, err := NewSession(cfg, Streams{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
				Err: cmd.ErrOrStderr(),
			}, fsys)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			session.Start(ctx, cfg)
			session.RunScripts(ctx, opts.scripts)
			if opts.batch {
				return nil
			}
			return session.Run(ctx)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.Flags().StringVar(&opts.format, "format", "", MsgFlagFormat)
	rootCmd.Flags().StringArrayVarP(&opts.scripts, "command", "x", nil, MsgFlagCommand)
	rootCmd.Flags().BoolVar(&opts.batch, "batch", false, MsgFlagBatch)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd(&opts, fsys))

	return rootCmd
}

// loadConfig layers the flags over the configuration sources.
func loadConfig(cmd *cobra.Command, opts options, args []string, fsys afero.Fs) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["ui.format"] = opts.format
	}
	if len(args) > 0 {
		overrides["target.program"] = args[0]
	}
	return config.Load(config.LoadOptions{
		Path:      opts.configPath,
		Overrides: overrides,
		Fs:        fsys,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(w, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(w, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newGenConfigCmd(opts *options, fsys afero.Fs) *cobra.Command {
	var (
		write     bool
		effective bool
	)

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := []byte(config.GenerateTemplate())
			if effective {
				cfg, err := config.Load(config.LoadOptions{Path: opts.configPath, Fs: fsys})
				if err != nil {
					return err
				}
				if content, err = config.Generate(cfg); err != nil {
					return err
				}
			}

			if !write {
				_, err := cmd.OutOrStdout().Write(content)
				return err
			}

			path := config.UserConfigPath()
			if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", filepath.Dir(path))
			}
			if err := afero.WriteFile(fsys, path, content, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWrote, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)

	return cmd
}

// Execute runs the ddbg command line and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd(afero.NewOsFs())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(errors.UserMessage(err)))
		return 1
	}
	return 0
}
