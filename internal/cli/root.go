// Package cli implements logoctl, the operator CLI for the logo catalog.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/logodir/internal/adapters/highlight"
	"github.com/jsamuelsen/logodir/internal/adapters/metrics"
	"github.com/jsamuelsen/logodir/internal/bootstrap"
	"github.com/jsamuelsen/logodir/internal/platform/config"
	"github.com/jsamuelsen/logodir/internal/platform/logging"
	"github.com/jsamuelsen/logodir/internal/ports"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// globals holds the persistent flags and the catalog built from them.
type globals struct {
	configDir string
	profile   string
	format    string
	logLevel  string
	color     bool

	logger      *slog.Logger
	catalog     *bootstrap.Catalog
	highlighter ports.Highlighter
}

// NewRootCmd builds the logoctl command tree.
func NewRootCmd(version string) *cobra.Command {
	g := &globals{highlighter: highlight.New()}

	root := &cobra.Command{
		Use:   "logoctl",
		Short: "Inspect and maintain the logo catalog",
		Long: `logoctl searches the logo catalog, prints code snippets for a logo,
adds records for new assets and audits that every vector logo has a
readable asset.

Configuration is read the same way as the service: configs/base.yaml,
configs/<profile>.yaml and APP_* environment variables.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd, version)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if g.catalog == nil {
				return nil
			}

			return g.catalog.Close()
		},
	}

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.configDir, "config-dir", config.DefaultConfigDir, "directory holding base.yaml and profile files")
	flags.StringVarP(&g.profile, "profile", "p", profile, "configuration profile")
	flags.StringVarP(&g.format, "format", "f", FormatText, "output format: text or json")
	flags.StringVar(&g.logLevel, "log-level", "warn", "log level: trace, debug, info, warn or error")
	flags.BoolVar(&g.color, "color", true, "highlight code and style text output")

	root.AddCommand(
		newSearchCmd(g),
		newShowCmd(g),
		newSyncCmd(g),
		newAuditCmd(g),
	)

	return root
}

// Execute runs logoctl and exits non-zero on failure.
func Execute(version string) {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		if errors.Is(err, ErrAuditFailed) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}

func (g *globals) setup(cmd *cobra.Command, version string) error {
	switch g.format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q: use text or json", g.format)
	}

	cfg, err := config.LoadDir(g.configDir, g.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	g.logger = logging.NewWithWriter(&logging.Config{
		Level:   g.logLevel,
		Format:  "pretty",
		Service: "logoctl",
		Version: version,
	}, cmd.ErrOrStderr())

	watch := false

	g.catalog, err = bootstrap.NewCatalog(bootstrap.Options{
		Config:  cfg,
		Logger:  g.logger,
		Metrics: metrics.NewNoopRecorder(),
		Watch:   &watch,
	})
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	return nil
}

// emit writes o in the selected format.
func (g *globals) emit(w io.Writer, o Outputter) error {
	return Write(w, o, g.format, g.styles())
}

func (g *globals) styles() Styles {
	if !g.color {
		return PlainStyles()
	}

	return DefaultStyles()
}
