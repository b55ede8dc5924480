package concurrent

import "lintang/bearmaps/pkg/datastructure"

// SnapshotChunkJobItem satu chunk graph yang disimpan ke satu key pebble.
type SnapshotChunkJobItem struct {
	Key   string
	Nodes []datastructure.StreetNode
	Edges []datastructure.StreetEdge
}

// JobI []int64 = pasangan {source, destination} buat query many to many.
type JobI interface {
	[]int64 | SnapshotChunkJobItem
}

type Job[T JobI] struct {
	ID      int
	JobItem T
}
type JobFunc[T JobI, G any] func(job T) G
