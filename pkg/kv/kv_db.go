package kv

import (
	"errors"
	"fmt"
	"runtime"

	"lintang/bearmaps/pkg/concurrent"
	"lintang/bearmaps/pkg/streetmap"
	"lintang/bearmaps/pkg/util"

	"github.com/cockroachdb/pebble"
	"k8s.io/klog/v2"
)

const (
	defaultChunkSize = 10000
	metaKey          = "meta/snapshot"
)

var ErrNoSnapshot = errors.New("street graph snapshot not found")

func nodeChunkKey(i int) string {
	return fmt.Sprintf("nodes/%06d", i)
}

func edgeChunkKey(i int) string {
	return fmt.Sprintf("edges/%06d", i)
}

// KVDB snapshot street graph di pebble, biar server tidak perlu parse ulang file osm setiap start.
type KVDB struct {
	db        *pebble.DB
	chunkSize int
	workers   int

	writeChunk func(concurrent.SnapshotChunkJobItem) error
}

func NewKVDB(db *pebble.DB) *KVDB {
	k := &KVDB{db: db, chunkSize: defaultChunkSize, workers: runtime.NumCPU()}
	k.writeChunk = k.saveChunk
	return k
}

// SaveGraph simpan semua node & edge g. meta snapshot lama dihapus sebelum chunk pertama ditimpa,
// chunk di-compress & ditulis di worker pool, meta baru ditulis paling akhir.
// jadi snapshot yang setengah jadi (campuran chunk lama & baru) tidak akan pernah di-load.
func (k *KVDB) SaveGraph(g *streetmap.Graph) error {
	if err := k.DeleteSnapshot(); err != nil {
		return fmt.Errorf("invalidate old snapshot: %w", err)
	}

	nodes := g.Nodes()
	edges := g.Edges()

	jobs := []concurrent.SnapshotChunkJobItem{}
	meta := snapshotMeta{}
	for start := 0; start < len(nodes); start += k.chunkSize {
		end := min(start+k.chunkSize, len(nodes))
		jobs = append(jobs, concurrent.SnapshotChunkJobItem{Key: nodeChunkKey(meta.NodeChunks), Nodes: nodes[start:end]})
		meta.NodeChunks++
	}
	for start := 0; start < len(edges); start += k.chunkSize {
		end := min(start+k.chunkSize, len(edges))
		jobs = append(jobs, concurrent.SnapshotChunkJobItem{Key: edgeChunkKey(meta.EdgeChunks), Edges: edges[start:end]})
		meta.EdgeChunks++
	}

	bar := util.NewProgressBar(len(jobs), "[cyan][3/3][reset] saving street graph snapshot to pebble db...")

	workers := concurrent.NewWorkerPool[concurrent.SnapshotChunkJobItem, error](k.workers, len(jobs))
	for _, job := range jobs {
		workers.AddJob(job)
	}
	workers.Close()

	workers.Start(k.writeChunk)
	workers.Wait()

	var errs []error
	for err := range workers.CollectResults() {
		if err != nil {
			errs = append(errs, err)
		}
		bar.Add(1)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	bb, err := Encode(meta)
	if err != nil {
		return fmt.Errorf("encode snapshot meta: %w", err)
	}
	if err := k.db.Set([]byte(metaKey), bb, pebble.Sync); err != nil {
		return fmt.Errorf("save snapshot meta: %w", err)
	}

	klog.InfoS("street graph snapshot saved", "nodes", len(nodes), "edges", len(edges),
		"nodeChunks", meta.NodeChunks, "edgeChunks", meta.EdgeChunks)
	return nil
}

func (k *KVDB) saveChunk(item concurrent.SnapshotChunkJobItem) error {
	val, err := compressChunk(graphChunk{Nodes: item.Nodes, Edges: item.Edges})
	if err != nil {
		return fmt.Errorf("%s: %w", item.Key, err)
	}
	if err := k.db.Set([]byte(item.Key), val, pebble.Sync); err != nil {
		return fmt.Errorf("%s: %w", item.Key, err)
	}
	return nil
}

// HasSnapshot true kalau SaveGraph pernah selesai di db ini.
func (k *KVDB) HasSnapshot() bool {
	_, err := k.getMeta()
	return err == nil
}

func (k *KVDB) getMeta() (snapshotMeta, error) {
	var meta snapshotMeta
	val, closer, err := k.db.Get([]byte(metaKey))
	if errors.Is(err, pebble.ErrNotFound) {
		return meta, ErrNoSnapshot
	}
	if err != nil {
		return meta, err
	}
	defer closer.Close()

	if err := Decode(val, &meta); err != nil {
		return meta, fmt.Errorf("decode snapshot meta: %w", err)
	}
	return meta, nil
}

func (k *KVDB) getChunk(key string) (graphChunk, error) {
	val, closer, err := k.db.Get([]byte(key))
	if err != nil {
		return graphChunk{}, fmt.Errorf("%s: %w", key, err)
	}
	defer closer.Close()

	c, err := decompressChunk(val)
	if err != nil {
		return graphChunk{}, fmt.Errorf("%s: %w", key, err)
	}
	return c, nil
}

// LoadGraph bangun ulang street graph dari snapshot. Weight edge dipakai apa adanya.
func (k *KVDB) LoadGraph() (*streetmap.Graph, error) {
	meta, err := k.getMeta()
	if err != nil {
		return nil, err
	}

	g := streetmap.NewGraph()
	for i := 0; i < meta.NodeChunks; i++ {
		c, err := k.getChunk(nodeChunkKey(i))
		if err != nil {
			return nil, err
		}
		for _, n := range c.Nodes {
			g.AddNode(n)
		}
	}

	for i := 0; i < meta.EdgeChunks; i++ {
		c, err := k.getChunk(edgeChunkKey(i))
		if err != nil {
			return nil, err
		}
		for _, e := range c.Edges {
			if err := g.AddStreetEdge(e); err != nil {
				return nil, fmt.Errorf("%s: %w", edgeChunkKey(i), err)
			}
		}
	}

	klog.InfoS("street graph snapshot loaded", "nodes", g.NumNodes(), "edges", g.NumEdges())
	return g, nil
}

// DeleteSnapshot hapus meta, chunk lama akan ditimpa SaveGraph berikutnya.
// Delete key yang tidak ada bukan error di pebble.
func (k *KVDB) DeleteSnapshot() error {
	return k.db.Delete([]byte(metaKey), pebble.Sync)
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
