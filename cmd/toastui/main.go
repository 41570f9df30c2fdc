package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/toastui/internal/config"
	"github.com/vango-dev/toastui/internal/errors"
	"github.com/vango-dev/toastui/internal/gallery"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	dir       string
	logLevel  string
	logFormat string
	noColor   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "toastui",
		Short: "Render, preview and publish toast components",
		Long: `toastui renders the toast component family to HTML.

  • render one toast or the whole gallery to stdout or a file
  • serve a live preview with swipe and close wiring over WebSocket
  • publish the gallery to S3 or an S3 compatible store`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.noColor {
				errors.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&g.dir, "dir", "C", ".", "Directory containing "+config.ConfigFileName)
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		renderCmd(g),
		serveCmd(g),
		publishCmd(g),
		configCmd(g),
		versionCmd(),
	)

	return rootCmd
}

// load reads toastui.json (or defaults), applies the log flags and returns
// a logger writing to w.
func (g *globals) load(w io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadOrDefault(g.dir)
	if err != nil {
		return nil, nil, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := cfg.Log.NewLogger(w)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// loadFixture loads the override path when set, otherwise the configured one.
func loadFixture(cfg *config.Config, override string) (*gallery.Fixture, error) {
	if override != "" {
		return gallery.Load(override)
	}
	return gallery.Load(cfg.Gallery.Fixture)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
