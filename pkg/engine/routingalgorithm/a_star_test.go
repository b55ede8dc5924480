package routingalgorithm

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"lintang/bearmaps/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testGraph struct {
	adj       map[string][]datastructure.WeightedEdge[string]
	heuristic func(v, goal string) float64
	expanded  map[string]int
}

func newTestGraph() *testGraph {
	return &testGraph{
		adj:       make(map[string][]datastructure.WeightedEdge[string]),
		heuristic: func(_, _ string) float64 { return 0 },
		expanded:  make(map[string]int),
	}
}

func (g *testGraph) addEdge(from, to string, w float64) {
	g.adj[from] = append(g.adj[from], datastructure.NewWeightedEdge(from, to, w))
}

func (g *testGraph) Neighbors(v string) []datastructure.WeightedEdge[string] {
	g.expanded[v]++
	return g.adj[v]
}

func (g *testGraph) EstimatedDistanceToGoal(v, goal string) float64 {
	return g.heuristic(v, goal)
}

func TestAStar(t *testing.T) {
	t.Run("unit weights and zero heuristic behave like bfs", func(t *testing.T) {
		g := newTestGraph()
		g.addEdge("A", "B", 1)
		g.addEdge("B", "D", 1)
		g.addEdge("A", "C", 1)
		g.addEdge("C", "D", 1)

		res := AStar[string](g, "A", "D", time.Minute)
		assert.Equal(t, Solved, res.Outcome)
		assert.Equal(t, 2.0, res.TotalCost)
		require.Len(t, res.Path, 3)
		assert.Equal(t, "A", res.Path[0])
		assert.Equal(t, "D", res.Path[2])
		assert.GreaterOrEqual(t, res.StatesExplored, 1)
	})

	t.Run("goal unreachable", func(t *testing.T) {
		g := newTestGraph()
		g.addEdge("A", "B", 1)
		g.addEdge("B", "A", 1)
		g.addEdge("X", "Y", 1)

		res := AStar[string](g, "A", "Y", time.Minute)
		assert.Equal(t, Unreachable, res.Outcome)
		assert.Empty(t, res.Path)
		assert.Equal(t, 0.0, res.TotalCost)
		assert.Equal(t, 2, res.StatesExplored)
	})

	t.Run("zero timeout", func(t *testing.T) {
		g := newTestGraph()
		g.addEdge("A", "B", 1)
		g.addEdge("B", "C", 1)
		g.addEdge("C", "D", 1)

		res := AStar[string](g, "A", "D", 0)
		assert.Equal(t, TimedOut, res.Outcome)
		assert.Empty(t, res.Path)
		assert.Equal(t, 0.0, res.TotalCost)
		assert.Equal(t, 1, res.StatesExplored)
	})

	t.Run("start equals goal", func(t *testing.T) {
		g := newTestGraph()
		g.addEdge("A", "B", 1)

		res := AStar[string](g, "A", "A", 0)
		assert.Equal(t, Solved, res.Outcome)
		assert.Equal(t, []string{"A"}, res.Path)
		assert.Equal(t, 0.0, res.TotalCost)
		assert.Equal(t, 0, res.StatesExplored)
	})

	t.Run("cheaper route found later decreases the key", func(t *testing.T) {
		// S->G langsung mahal, S->A->B->G lebih murah tapi ditemukan belakangan
		g := newTestGraph()
		g.addEdge("S", "G", 10)
		g.addEdge("S", "A", 1)
		g.addEdge("A", "B", 1)
		g.addEdge("B", "G", 1)
		g.addEdge("S", "B", 5)

		res := AStar[string](g, "S", "G", time.Minute)
		assert.Equal(t, Solved, res.Outcome)
		assert.Equal(t, []string{"S", "A", "B", "G"}, res.Path)
		assert.Equal(t, 3.0, res.TotalCost)
		for v, n := range g.expanded {
			assert.Equal(t, 1, n, "vertex %s expanded more than once", v)
		}
	})

	t.Run("admissible heuristic prunes exploration", func(t *testing.T) {
		// intel astar example: https://upload.wikimedia.org/wikipedia/commons/9/98/AstarExampleEn.gif
		g := newTestGraph()
		g.addEdge("start", "a", 1.5)
		g.addEdge("a", "b", 2)
		g.addEdge("b", "c", 3)
		g.addEdge("c", "goal", 4)
		g.addEdge("start", "d", 2)
		g.addEdge("d", "e", 3)
		g.addEdge("e", "goal", 2)
		h := map[string]float64{"a": 4, "b": 2, "c": 4, "d": 4.5, "e": 2}
		g.heuristic = func(v, _ string) float64 { return h[v] }

		res := AStar[string](g, "start", "goal", time.Minute)
		assert.Equal(t, Solved, res.Outcome)
		assert.Equal(t, []string{"start", "d", "e", "goal"}, res.Path)
		assert.Equal(t, 7.0, res.TotalCost)
		assert.Equal(t, 0, g.expanded["c"])
	})

	t.Run("outcome names", func(t *testing.T) {
		assert.Equal(t, "SOLVED", Solved.String())
		assert.Equal(t, "UNREACHABLE", Unreachable.String())
		assert.Equal(t, "TIMED_OUT", TimedOut.String())
	})
}

type gridGraph struct {
	w, h    int
	weights map[[2]int]float64
}

func (g *gridGraph) Neighbors(v [2]int) []datastructure.WeightedEdge[[2]int] {
	edges := []datastructure.WeightedEdge[[2]int]{}
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		n := [2]int{v[0] + d[0], v[1] + d[1]}
		if n[0] < 0 || n[1] < 0 || n[0] >= g.w || n[1] >= g.h {
			continue
		}
		w, ok := g.weights[n]
		if !ok {
			continue
		}
		edges = append(edges, datastructure.NewWeightedEdge(v, n, w))
	}
	return edges
}

// manhattan, admissible karena bobot minimal 1
func (g *gridGraph) EstimatedDistanceToGoal(v, goal [2]int) float64 {
	return math.Abs(float64(v[0]-goal[0])) + math.Abs(float64(v[1]-goal[1]))
}

type zeroHeuristic struct {
	*gridGraph
}

func (zeroHeuristic) EstimatedDistanceToGoal(_, _ [2]int) float64 {
	return 0
}

func TestAStarMatchesDijkstraOnGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for round := 0; round < 20; round++ {
		g := &gridGraph{w: 25, h: 25, weights: map[[2]int]float64{}}
		for x := 0; x < g.w; x++ {
			for y := 0; y < g.h; y++ {
				if rng.Intn(5) == 0 {
					continue // tembok
				}
				g.weights[[2]int{x, y}] = float64(1 + rng.Intn(9))
			}
		}
		start, goal := [2]int{0, 0}, [2]int{g.w - 1, g.h - 1}
		g.weights[start] = 1
		g.weights[goal] = 1

		t.Run(fmt.Sprintf("grid %d", round), func(t *testing.T) {
			astar := AStar[[2]int](g, start, goal, time.Minute)
			dijkstra := AStar[[2]int](zeroHeuristic{g}, start, goal, time.Minute)

			require.Equal(t, dijkstra.Outcome, astar.Outcome)
			if astar.Outcome != Solved {
				assert.Empty(t, astar.Path)
				return
			}
			assert.InDelta(t, dijkstra.TotalCost, astar.TotalCost, 1e-9)

			// cost path harus sama dengan TotalCost
			cost := 0.0
			for i := 1; i < len(astar.Path); i++ {
				cost += g.weights[astar.Path[i]]
			}
			assert.InDelta(t, astar.TotalCost, cost, 1e-9)
			assert.Equal(t, start, astar.Path[0])
			assert.Equal(t, goal, astar.Path[len(astar.Path)-1])
		})
	}
}

func TestResolvePathBrokenChainPanics(t *testing.T) {
	cameFrom := map[string]string{"C": "B", "B": "C"}
	assert.Panics(t, func() {
		resolvePath(cameFrom, "A", "C")
	})
	assert.Panics(t, func() {
		resolvePath(map[string]string{}, "A", "C")
	})
	assert.Equal(t, []string{"A", "B", "C"}, resolvePath(map[string]string{"C": "B", "B": "A"}, "A", "C"))
}
