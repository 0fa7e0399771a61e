package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/internal/config"
)

func newSQLiteStore(t *testing.T) *SQLiteCatalogStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "vtp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestSQLiteCatalogStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	want := catalog.Default().Snapshot()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	c, err := LoadCatalog(ctx, store)
	require.NoError(t, err)
	next, ok := c.NextPhase("discovery")
	require.True(t, ok)
	assert.Equal(t, "design", next.ID)
}

func TestSQLiteCatalogStoreRejectsInvalidContent(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	broken := catalog.Default().Snapshot()
	broken.Phases[0].ParticipatingAgents = []string{"ghost"}
	require.NoError(t, store.Save(ctx, broken))

	_, err := LoadCatalog(ctx, store)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestSQLiteCatalogStoreEmpty(t *testing.T) {
	got, err := newSQLiteStore(t).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Agents)
}

func TestOpenSQLiteError(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })
	openDB = func(string, string) (*sql.DB, error) { return nil, errors.New("boom") }

	_, err := OpenSQLite(filepath.Join(t.TempDir(), "x.db"))
	assert.ErrorContains(t, err, "boom")
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := decodeTables([]Document{{Kind: "widget", ID: "w", Body: []byte(`{}`)}})
	assert.ErrorContains(t, err, `unknown document kind "widget"`)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("static", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Storage.Driver = config.DriverStatic
		src, err := Open(ctx, cfg)
		require.NoError(t, err)
		c, err := LoadCatalog(ctx, src)
		require.NoError(t, err)
		assert.Len(t, c.Agents(), 12)

		_, err = OpenStore(ctx, cfg)
		assert.ErrorIs(t, err, ErrReadOnlySource)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Storage.Driver = config.DriverSQLite
		cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "vtp.db")
		src, err := Open(ctx, cfg)
		require.NoError(t, err)
		assert.IsType(t, &SQLiteCatalogStore{}, src)
		assert.NoError(t, src.Close())
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Storage.Driver = "mongo"
		_, err := Open(ctx, cfg)
		assert.ErrorIs(t, err, ErrUnknownDriver)
	})
}
