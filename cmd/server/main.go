package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/internal/config"
	"virtual-team-planner/backend/internal/logging"
	"virtual-team-planner/backend/internal/observability"
	"virtual-team-planner/backend/internal/repository"
	"virtual-team-planner/backend/internal/server"
	"virtual-team-planner/backend/internal/terminal"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type app struct {
	cfgFile string
	out     io.Writer
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Long:  `Serves the site, the JSON API and the MCP endpoint under the configured base path.`,
		Args:  cobra.NoArgs,
		RunE:  a.serve,
	}

	root := &cobra.Command{
		Use:           "vtp",
		Short:         "Virtual Team Planner",
		Long:          `A site describing a virtual delivery team: its agents, lifecycle phases, example workflows and artifacts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		// Serving is the default when no subcommand is given.
		RunE: a.serve,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Path to configuration file (default ./config.yaml or ./config/config.yaml)")

	root.AddCommand(serveCmd, a.validateCommand(), a.renderCommand(), a.exportCommand(), a.versionCommand())
	return root
}

func (a *app) setup() (*config.Config, *logging.Logger, error) {
	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewLogger(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	src, err := repository.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return repository.LoadCatalog(ctx, src)
}

func (a *app) serve(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := a.setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := loadCatalog(ctx, cfg)
	if err != nil {
		logger.Error("Failed to load catalog", "driver", cfg.Storage.Driver, "error", err)
		return err
	}
	logger.Info("Catalog loaded",
		"driver", cfg.Storage.Driver,
		"agents", len(c.Agents()),
		"phases", len(c.Phases()),
		"workflows", len(c.Workflows()),
	)

	metrics, err := observability.NewMetrics(nil)
	if err != nil {
		return err
	}
	srv, err := server.New(server.Options{
		Config:  cfg,
		Catalog: c,
		Logger:  logger,
		Metrics: metrics,
		Version: version,
	})
	if err != nil {
		logger.Error("Failed to build server", "error", err)
		return err
	}
	if err := srv.Run(ctx); err != nil {
		logger.Error("Server error", "error", err)
		return err
	}
	return nil
}

func (a *app) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the configured catalog and check it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := a.setup()
			if err != nil {
				return err
			}
			c, err := loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "catalog ok (%s): %d agents, %d phases, %d workflows, %d glossary terms, %d FAQ entries\n",
				cfg.Storage.Driver, len(c.Agents()), len(c.Phases()), len(c.Workflows()),
				len(c.GlossaryTerms()), len(c.FAQItems()))
			return nil
		},
	}
}

func (a *app) renderCommand() *cobra.Command {
	var opts terminal.Options
	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Render a site page in the terminal",
		Example: `  vtp render /agents/product-owner
  vtp render "/resources/glossary?q=gate"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.setup()
			if err != nil {
				return err
			}
			c, err := loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			opts.SiteTitle = cfg.Site.Title
			r, err := terminal.New(c, opts)
			if err != nil {
				return err
			}
			_, err = r.Render(a.out, args[0])
			return err
		},
	}
	cmd.Flags().IntVar(&opts.Width, "width", 80, "Wrap output at this many columns")
	cmd.Flags().StringVar(&opts.Style, "style", "auto", "Glamour style: auto, dark, light or notty")
	return cmd
}

func (a *app) exportCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded catalog tables to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unknown format %q: use json or yaml", format)
			}
			cfg, _, err := a.setup()
			if err != nil {
				return err
			}
			c, err := loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return writeTables(a.out, format, c.Snapshot())
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: json or yaml")
	return cmd
}

func writeTables(w io.Writer, format string, t catalog.Tables) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "Virtual Team Planner\n")
			fmt.Fprintf(a.out, "  Version:    %s\n", version)
			fmt.Fprintf(a.out, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(a.out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
