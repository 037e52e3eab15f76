package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SRombauts/HtmlBuilder/pkg/server"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port  int
		host  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Serve rendered descriptions over HTTP.

With --watch the server polls the source directory and reloads connected
browsers when a description changes. Invalid descriptions are shown in an
overlay until they are fixed.

Examples:
  htmlbuilder serve
  htmlbuilder serve --port=8080 --watch
  htmlbuilder serve --host=0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("port") {
				cfg.Serve.Port = port
			}
			if host != "" {
				cfg.Serve.Host = host
			}
			if cmd.Flags().Changed("watch") {
				cfg.Serve.Watch = watch
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.ErrOrStderr()
			success(out, "Serving %s", cfg.SourcePath())
			info(out, "Local: %s", cfg.URL())
			if cfg.Serve.Watch {
				info(out, "Watching for changes every %s", cfg.PollDuration())
			}

			srv := server.New(cfg, server.WithLogger(slog.Default()))
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from htmlbuilder.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from htmlbuilder.json)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload browsers when descriptions change")

	return cmd
}
