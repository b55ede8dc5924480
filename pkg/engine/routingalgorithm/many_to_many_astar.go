package routingalgorithm

import (
	"runtime"
	"time"

	"lintang/bearmaps/pkg/concurrent"
)

// RouteAlgorithm A* query di atas street graph. graph harus read-only selama dipakai,
// setiap query punya heap & map sendiri jadi aman dipanggil concurrent.
type RouteAlgorithm struct {
	g       Graph[int64]
	timeout time.Duration
	workers int
}

func NewRouteAlgorithm(g Graph[int64], timeout time.Duration) *RouteAlgorithm {
	return &RouteAlgorithm{g: g, timeout: timeout, workers: runtime.NumCPU()}
}

type SPSingleResult struct {
	Source int64
	Dest   int64
	SolverResult[int64]
}

func (rt *RouteAlgorithm) ShortestPath(from, to int64) SolverResult[int64] {
	return AStar(rt.g, from, to, rt.timeout)
}

func (rt *RouteAlgorithm) callAStar(spPair []int64) SPSingleResult {
	return SPSingleResult{
		Source:       spPair[0],
		Dest:         spPair[1],
		SolverResult: rt.ShortestPath(spPair[0], spPair[1]),
	}
}

// ShortestPathManyToMany A* untuk setiap pasangan (from[i], to[j]), dijalankan di worker pool.
func (rt *RouteAlgorithm) ShortestPathManyToMany(from []int64, to []int64) map[int64]map[int64]SPSingleResult {
	spPair := [][]int64{}
	for i := 0; i < len(from); i++ {
		for j := 0; j < len(to); j++ {
			spPair = append(spPair, []int64{from[i], to[j]})
		}
	}

	spMap := make(map[int64]map[int64]SPSingleResult)
	if len(spPair) == 0 {
		return spMap
	}

	workers := concurrent.NewWorkerPool[[]int64, SPSingleResult](rt.workers, len(spPair))
	for i := 0; i < len(spPair); i++ {
		workers.AddJob(spPair[i])
	}
	workers.Close()

	workers.Start(rt.callAStar)
	workers.Wait()

	for i := 0; i < len(spPair); i++ {
		spMap[spPair[i][0]] = make(map[int64]SPSingleResult)
	}
	for curr := range workers.CollectResults() {
		spMap[curr.Source][curr.Dest] = curr
	}
	return spMap
}
