package repository

import (
	"context"
	"errors"
	"fmt"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/internal/config"
)

var (
	// ErrUnknownDriver is returned when storage.driver names no known source.
	ErrUnknownDriver = errors.New("unknown storage driver")
	// ErrReadOnlySource is returned when a writable store is requested for
	// a driver that cannot be written to.
	ErrReadOnlySource = errors.New("storage driver is read-only")
)

// Source supplies the raw catalog tables.
type Source interface {
	// Load reads every table. The result has not been validated.
	Load(ctx context.Context) (catalog.Tables, error)
	// Close releases any connection held by the source.
	Close() error
}

// Store is a Source that can also be (re)written.
type Store interface {
	Source
	// Migrate creates the backing table if it does not exist.
	Migrate(ctx context.Context) error
	// Save replaces the stored catalog with t in one transaction.
	Save(ctx context.Context, t catalog.Tables) error
}

// Open returns the source selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config) (Source, error) {
	if cfg.Storage.Driver == config.DriverStatic || cfg.Storage.Driver == "" {
		return StaticSource{}, nil
	}
	s, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// OpenStore returns the writable store selected by cfg.Storage.Driver.
func OpenStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		s, err := OpenPostgres(ctx, cfg.Storage.DB.ConnString())
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverSQLite:
		s, err := OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverStatic, "":
		return nil, fmt.Errorf("%w: %s", ErrReadOnlySource, config.DriverStatic)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
	}
}

// LoadCatalog reads src and builds a validated catalog from it.
func LoadCatalog(ctx context.Context, src Source) (*catalog.Catalog, error) {
	tables, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	c, err := catalog.New(tables)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return c, nil
}

// StaticSource serves the compiled-in tables.
type StaticSource struct{}

// Load returns a fresh copy of the builtin tables.
func (StaticSource) Load(context.Context) (catalog.Tables, error) {
	return catalog.Builtin(), nil
}

// Close is a no-op.
func (StaticSource) Close() error { return nil }
