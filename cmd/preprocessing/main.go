package main

import (
	"context"
	"flag"
	"fmt"

	"lintang/bearmaps/pkg/kv"
	"lintang/bearmaps/pkg/osmparser"

	"github.com/cockroachdb/pebble"
	"k8s.io/klog/v2"
)

var (
	mapFile = flag.String("f", "berkeley.osm.pbf", "openstreeetmap file buat road network graphnya (.osm.pbf atau .osm)")
	dbDir   = flag.String("db", "bearmapsDB", "directory pebble db buat snapshot street graph")
)

// preprocessing parse file openstreetmap & simpan snapshot street graph, tanpa menjalankan server.
func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if err := run(context.Background(), *mapFile, *dbDir); err != nil {
		klog.ErrorS(err, "preprocessing", "file", *mapFile, "dir", *dbDir)
		klog.FlushAndExit(klog.ExitFlushTimeout, 1)
	}
}

func run(ctx context.Context, mapFile, dbDir string) error {
	g, err := osmparser.NewOSMParser().Parse(ctx, mapFile)
	if err != nil {
		return fmt.Errorf("parse openstreetmap file: %w", err)
	}

	db, err := pebble.Open(dbDir, &pebble.Options{})
	if err != nil {
		return fmt.Errorf("open pebble db: %w", err)
	}
	kvDB := kv.NewKVDB(db)
	defer kvDB.Close()

	if err := kvDB.SaveGraph(g); err != nil {
		return fmt.Errorf("save street graph snapshot: %w", err)
	}
	klog.InfoS("street graph snapshot ready", "dir", dbDir, "nodes", g.NumNodes(), "edges", g.NumEdges())
	return nil
}
