package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/internal/config"
	"virtual-team-planner/backend/internal/logging"
	"virtual-team-planner/backend/internal/repository"
)

func main() {
	if err := newSeedCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type seedOptions struct {
	cfgFile string
	driver  string
	from    string
	force   bool
}

func newSeedCommand() *cobra.Command {
	var opts seedOptions
	cmd := &cobra.Command{
		Use:   "vtp-seed",
		Short: "Write the catalog into the configured database",
		Long: `Creates the catalog table if needed and stores the builtin catalog, or the
tables read from --from (a file written by "vtp export"), in the database
selected by storage.driver.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(opts.cfgFile)
			if err != nil {
				return err
			}
			if opts.driver != "" {
				cfg.Storage.Driver = strings.ToLower(opts.driver)
			}
			logger, err := logging.NewLogger(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
			if err != nil {
				return err
			}
			defer logger.Sync()

			tables := catalog.Default().Snapshot()
			if opts.from != "" {
				if tables, err = readTables(opts.from); err != nil {
					return err
				}
			}
			return seed(cmd.Context(), cfg, tables, opts.force, logger)
		},
	}
	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "Path to configuration file")
	cmd.Flags().StringVar(&opts.driver, "driver", "", "Override storage.driver (postgres or sqlite)")
	cmd.Flags().StringVar(&opts.from, "from", "", "Seed from a JSON or YAML tables file instead of the builtin catalog")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Replace a catalog that is already stored")
	return cmd
}

// readTables decodes a tables file; the extension picks the format.
func readTables(path string) (catalog.Tables, error) {
	var t catalog.Tables
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tables: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &t)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &t)
	default:
		return t, fmt.Errorf("read tables: unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return t, fmt.Errorf("decode %s: %w", path, err)
	}
	return t, nil
}

func seed(ctx context.Context, cfg *config.Config, tables catalog.Tables, force bool, logger *logging.Logger) error {
	// Reject bad input before touching the database.
	if err := catalog.Validate(tables); err != nil {
		return err
	}

	store, err := repository.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	existing, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if n := len(existing.Agents); n > 0 && !force {
		logger.Info("Skipping seed: catalog already stored", "driver", cfg.Storage.Driver, "agents", n)
		return nil
	}

	if err := store.Save(ctx, tables); err != nil {
		return err
	}
	logger.Info("Seeding complete",
		"driver", cfg.Storage.Driver,
		"agents", len(tables.Agents),
		"phases", len(tables.Phases),
		"workflows", len(tables.Workflows),
		"artifacts", len(tables.Artifacts),
	)
	return nil
}
