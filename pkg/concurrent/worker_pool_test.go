package concurrent_test

import (
	"sort"
	"testing"

	"lintang/bearmaps/pkg/concurrent"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	pairs := [][]int64{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}}
	workers := concurrent.NewWorkerPool[[]int64, int64](3, len(pairs))
	for _, p := range pairs {
		workers.AddJob(p)
	}
	workers.Close()

	workers.Start(func(job []int64) int64 {
		return job[0] + job[1]
	})
	workers.Wait()

	sums := []int64{}
	for s := range workers.CollectResults() {
		sums = append(sums, s)
	}
	sort.Slice(sums, func(i, j int) bool { return sums[i] < sums[j] })
	assert.Equal(t, []int64{3, 7, 11, 15, 19}, sums)
}

func TestWorkerPoolAtLeastOneWorker(t *testing.T) {
	workers := concurrent.NewWorkerPool[concurrent.SnapshotChunkJobItem, string](0, 1)
	workers.AddJob(concurrent.SnapshotChunkJobItem{Key: "nodes/000000"})
	workers.Close()
	workers.Start(func(job concurrent.SnapshotChunkJobItem) string { return job.Key })
	workers.Wait()

	got := []string{}
	for k := range workers.CollectResults() {
		got = append(got, k)
	}
	assert.Equal(t, []string{"nodes/000000"}, got)
}
