package routingalgorithm_test

import (
	"testing"
	"time"

	"lintang/bearmaps/pkg/datastructure"
	"lintang/bearmaps/pkg/engine/routingalgorithm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineGraph 0 - 1 - 2 - ... - n-1, bobot 1, dua arah. node >= n tidak punya edge.
type lineGraph struct {
	n int64
}

func (g lineGraph) Neighbors(v int64) []datastructure.WeightedEdge[int64] {
	edges := []datastructure.WeightedEdge[int64]{}
	if v >= g.n {
		return edges
	}
	if v > 0 {
		edges = append(edges, datastructure.NewWeightedEdge(v, v-1, 1))
	}
	if v < g.n-1 {
		edges = append(edges, datastructure.NewWeightedEdge(v, v+1, 1))
	}
	return edges
}

func (g lineGraph) EstimatedDistanceToGoal(v, goal int64) float64 {
	if v >= g.n || goal >= g.n {
		return 0
	}
	d := float64(v - goal)
	if d < 0 {
		d = -d
	}
	return d
}

func TestShortestPathManyToMany(t *testing.T) {
	rt := routingalgorithm.NewRouteAlgorithm(lineGraph{n: 50}, time.Minute)

	sources := []int64{0, 10, 49}
	targets := []int64{5, 25, 100}
	res := rt.ShortestPathManyToMany(sources, targets)

	require.Len(t, res, len(sources))
	for _, s := range sources {
		require.Len(t, res[s], len(targets))
		for _, d := range targets {
			sp := res[s][d]
			assert.Equal(t, s, sp.Source)
			assert.Equal(t, d, sp.Dest)
			if d == 100 {
				assert.Equal(t, routingalgorithm.Unreachable, sp.Outcome)
				continue
			}
			require.Equal(t, routingalgorithm.Solved, sp.Outcome)
			assert.Equal(t, lineGraph{n: 50}.EstimatedDistanceToGoal(s, d), sp.TotalCost)
		}
	}

	assert.Empty(t, rt.ShortestPathManyToMany(nil, targets))
}

func TestShortestPath(t *testing.T) {
	rt := routingalgorithm.NewRouteAlgorithm(lineGraph{n: 10}, time.Minute)
	res := rt.ShortestPath(2, 6)
	assert.Equal(t, routingalgorithm.Solved, res.Outcome)
	assert.Equal(t, []int64{2, 3, 4, 5, 6}, res.Path)
	assert.Equal(t, 4.0, res.TotalCost)
	assert.Equal(t, 4, res.StatesExplored)
}
