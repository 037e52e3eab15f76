package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/SRombauts/HtmlBuilder/internal/config"
	"github.com/SRombauts/HtmlBuilder/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	noColor    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "htmlbuilder",
		Short: "Build HTML documents from a typed element tree",
		Long: `HtmlBuilder builds HTML5 documents from YAML or JSON descriptions.

Descriptions are validated against the element catalog (a table only
holds rows, a row only holds cells, the head only holds metadata) and
rendered as indented markup.

Examples:
  htmlbuilder init handbook
  htmlbuilder render docs/index.yaml -o index.html
  htmlbuilder build
  htmlbuilder serve --watch
  htmlbuilder publish --bucket my-site`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to htmlbuilder.json (default: searched from the working directory)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (default from config)")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		initCmd(),
		renderCmd(flags),
		buildCmd(flags),
		serveCmd(flags),
		publishCmd(flags),
		exampleCmd(),
		versionCmd(),
	)

	return rootCmd
}

// setup configures colors and the default logger before any command runs.
func setup(cmd *cobra.Command, flags *globalFlags) error {
	w := os.Stderr
	if flags.noColor || !isatty.IsTerminal(w.Fd()) {
		errors.DisableColors()
	}

	name := flags.logLevel
	if name == "" {
		name = config.DefaultLogLevel
	}
	level, err := config.ParseLevel(name)
	if err != nil {
		return err
	}
	setLogger(w, level)
	return nil
}

func setLogger(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    color.NoColor,
		}),
	))
}

// loadConfig loads the project configuration and applies the log level from
// it unless --log-level was given.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel == "" {
		setLogger(os.Stderr, cfg.LogLevel())
	}
	slog.Debug("configuration loaded", "path", cfg.Path())
	return cfg, nil
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", yellow("⚠"), fmt.Sprintf(format, args...))
}
