package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"lintang/bearmaps/pkg/datastructure"
	"lintang/bearmaps/pkg/kv"
	"lintang/bearmaps/pkg/streetmap"

	"github.com/cockroachdb/pebble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireDBReleased pebble lock di dbDir harus sudah dilepas, kalau belum Open kedua gagal.
func requireDBReleased(t *testing.T, dbDir string) {
	db, err := pebble.Open(dbDir, &pebble.Options{})
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestRunClosesDBOnStartupFailure(t *testing.T) {
	t.Run("map file missing", func(t *testing.T) {
		dir := t.TempDir()
		cfg := serverConfig{
			listenAddr:    "127.0.0.1:0",
			mapFile:       filepath.Join(dir, "nope.osm.pbf"),
			dbDir:         filepath.Join(dir, "db"),
			searchTimeout: time.Second,
		}

		err := run(context.Background(), cfg)
		assert.ErrorContains(t, err, "load street graph")
		requireDBReleased(t, cfg.dbDir)
	})

	t.Run("snapshot without edges", func(t *testing.T) {
		dir := t.TempDir()
		cfg := serverConfig{
			listenAddr:    "127.0.0.1:0",
			mapFile:       filepath.Join(dir, "nope.osm.pbf"),
			dbDir:         filepath.Join(dir, "db"),
			searchTimeout: time.Second,
		}

		db, err := pebble.Open(cfg.dbDir, &pebble.Options{})
		require.NoError(t, err)
		kvDB := kv.NewKVDB(db)
		g := streetmap.NewGraph()
		g.AddNode(datastructure.StreetNode{ID: 1, Lat: 37.87, Lon: -122.26})
		require.NoError(t, kvDB.SaveGraph(g))
		require.NoError(t, kvDB.Close())

		err = run(context.Background(), cfg)
		assert.ErrorContains(t, err, "build augmented street graph")
		requireDBReleased(t, cfg.dbDir)
	})
}
