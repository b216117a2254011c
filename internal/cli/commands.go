package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"blox/internal/app"
	"blox/internal/domain"
	"blox/internal/embed"
	"blox/internal/usecases"
	"blox/pkg/log"
)

type platformJSON struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Placeholder string `json:"placeholder"`
}

func newPlatformsCmd(s *session) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := s.platforms.Execute()
			out := cmd.OutOrStdout()

			if asJSON {
				list := make([]platformJSON, len(rules))
				for i, r := range rules {
					list[i] = platformJSON{Key: r.Key(), Name: r.DisplayName, Placeholder: r.Placeholder}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}

			st := newStyles(out)
			fmt.Fprintln(out, st.header.Render("Supported platforms"))
			for _, r := range rules {
				fmt.Fprintln(out, st.key.Render(r.Key())+st.name.Render(r.DisplayName)+st.faint.Render(r.Placeholder))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newDetectCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <url>",
		Short: "Print the platform a URL belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, ok := s.platforms.Detect(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", domain.ErrUnrecognizedPlatform, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", rule.Key(), rule.DisplayName)
			return nil
		},
	}
}

func newEmbedCmd(s *session) *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "embed <url>",
		Short: "Print embed markup for a URL",
		Long:  "Print embed markup for a URL. The platform is detected unless --platform names one.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint := domain.PlatformNone
			if platform != "" && platform != "auto" {
				p, ok := domain.ParsePlatform(platform)
				if !ok {
					return fmt.Errorf("%w: unknown --platform %q", domain.ErrUnrecognizedPlatform, platform)
				}
				hint = p
			}

			uc := usecases.NewInsertEmbedUseCase(embed.NewGenerator(app.GeneratorOptions(s.cfg)...))
			notifier := NewTerminalNotifier(cmd.ErrOrStderr())
			res := uc.Execute(cmd.Context(), domain.EmbedRequest{URL: args[0], PlatformHint: hint}, notifier)
			if !res.OK {
				return res.Err()
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.HTML)
			return nil
		},
	}
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "platform key (instagram, twitter, youtube, tiktok, vimeo, facebook, linkedin)")
	return cmd
}

func newServeCmd(s *session) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the editor web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				s.cfg.Port = port
				if err := s.cfg.Validate(); err != nil {
					return fmt.Errorf("invalid configuration: %w", err)
				}
			}

			// The server logs at the configured level to stdout.
			logger := app.NewLogger(s.cfg)
			defer logger.Close()
			log.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a := app.New(s.cfg)
			defer a.Close()
			return a.Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "P", "", "listen port (overrides config)")
	return cmd
}
