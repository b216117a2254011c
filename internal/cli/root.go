// Package cli implements bloxctl, the command-line front end to the
// embed engine.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"blox/internal/config"
	"blox/internal/usecases"
	"blox/pkg/log"
	"blox/pkg/log/transporters"
)

// Version is set at build time via ldflags.
var Version = "dev"

type options struct {
	configPath string
	logLevel   string
	logFormat  string
}

// session is what every subcommand gets once the root has loaded
// configuration.
type session struct {
	cfg       *config.Config
	logger    *log.Logger
	platforms *usecases.ListPlatformsUseCase
}

// newRoot builds the command tree and the session its commands share.
func newRoot() (*cobra.Command, *session) {
	opts := &options{}
	s := &session{platforms: usecases.NewListPlatformsUseCase()}

	root := &cobra.Command{
		Use:           "bloxctl",
		Short:         "Turn social media links into embed markup",
		Long:          "bloxctl detects the platform of a social media URL and prints the\nHTML that embeds it, or serves the editor over HTTP.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $BLOX_CONFIG or "+config.DefaultPath+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug | info | warn | error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: json | console")

	root.AddCommand(
		newPlatformsCmd(s),
		newDetectCmd(s),
		newEmbedCmd(s),
		newServeCmd(s),
	)
	return root, s
}

// close flushes the logger. Cobra skips post-run hooks on error, so
// callers defer this instead.
func (s *session) close() {
	if s.logger != nil {
		s.logger.Close()
	}
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	root, s := newRoot()
	defer s.close()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), newStyles(root.ErrOrStderr()).errorLine.Render("Error: "+err.Error()))
		return err
	}
	return nil
}

// load merges defaults < config file < environment < flags. Command
// output owns stdout, so logs go to stderr, and only errors are logged
// unless --log-level asks for more.
func (s *session) load(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := log.Error
	if opts.logLevel != "" {
		if level, err = log.ParseLevel(opts.logLevel); err != nil {
			return fmt.Errorf("--log-level %q: %w", opts.logLevel, err)
		}
		cfg.LogLevel = level
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	s.cfg = cfg
	s.logger = newCLILogger(cmd.ErrOrStderr(), level, cfg.LogFormat).With("command", cmd.Name())
	log.SetDefault(s.logger)
	return nil
}

func newCLILogger(w io.Writer, level log.Level, format string) *log.Logger {
	var t log.Transporter = transporters.NewConsoleWithWriter(w)
	if format == "json" {
		t = transporters.NewJSONWithWriter(w)
	}
	return log.New(level, t).Named("cli")
}
