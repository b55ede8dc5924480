package streetmap_test

import (
	"math/rand"
	"testing"
	"time"

	"lintang/bearmaps/pkg/datastructure"
	"lintang/bearmaps/pkg/engine/routingalgorithm"
	"lintang/bearmaps/pkg/streetmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBerkeleyGraph potongan kecil grid jalan di berkeley.
//
//	1 --- 2 --- 3
//	|           |
//	4 --- 5 --- 6      7 (isolated, named)
func newBerkeleyGraph(t *testing.T) *streetmap.Graph {
	g := streetmap.NewGraph()
	g.AddNode(datastructure.StreetNode{ID: 1, Lat: 37.8700, Lon: -122.2700})
	g.AddNode(datastructure.StreetNode{ID: 2, Lat: 37.8700, Lon: -122.2650, Name: "Top Dog"})
	g.AddNode(datastructure.StreetNode{ID: 3, Lat: 37.8700, Lon: -122.2600})
	g.AddNode(datastructure.StreetNode{ID: 4, Lat: 37.8650, Lon: -122.2700})
	g.AddNode(datastructure.StreetNode{ID: 5, Lat: 37.8650, Lon: -122.2650, Name: "Top Dog"})
	g.AddNode(datastructure.StreetNode{ID: 6, Lat: 37.8650, Lon: -122.2600, Name: "Topper's Café"})
	g.AddNode(datastructure.StreetNode{ID: 7, Lat: 37.8750, Lon: -122.2550, Name: "Tilden Park"})

	require.NoError(t, g.AddWay([]int64{1, 2, 3}, "Hearst Avenue"))
	require.NoError(t, g.AddWay([]int64{4, 5, 6}, "Bancroft Way"))
	require.NoError(t, g.AddWay([]int64{1, 4}, "Oxford Street"))
	require.NoError(t, g.AddWay([]int64{3, 6}, "Piedmont Avenue"))
	return g
}

func TestGraph(t *testing.T) {
	g := newBerkeleyGraph(t)

	t.Run("ways are undirected", func(t *testing.T) {
		assert.Equal(t, 6, g.NumEdges())
		assert.Len(t, g.Neighbors(1), 2)
		assert.Len(t, g.Neighbors(2), 2)
		assert.Empty(t, g.Neighbors(7))
		for _, e := range g.Neighbors(5) {
			assert.Equal(t, int64(5), e.From)
			assert.Greater(t, e.Weight, 0.0)
		}
	})

	t.Run("unknown node", func(t *testing.T) {
		err := g.AddEdge(1, 99, "nowhere")
		assert.ErrorIs(t, err, streetmap.ErrNodeNotFound)
		err = g.AddStreetEdge(datastructure.StreetEdge{From: 99, To: 1, Weight: 1})
		assert.ErrorIs(t, err, streetmap.ErrNodeNotFound)
	})

	t.Run("heuristic never overestimates", func(t *testing.T) {
		for _, n := range g.Nodes() {
			for _, e := range g.Neighbors(n.ID) {
				assert.LessOrEqual(t, g.EstimatedDistanceToGoal(e.From, e.To), e.Weight+1e-12)
			}
		}
		assert.Equal(t, 0.0, g.EstimatedDistanceToGoal(3, 3))
	})

	t.Run("great circle distance", func(t *testing.T) {
		// 0.01 derajat latitude ~ 1.11 km
		assert.InDelta(t, 1.112, streetmap.GreatCircleDistance(37.86, -122.26, 37.87, -122.26), 0.005)
	})

	t.Run("astar on street graph", func(t *testing.T) {
		res := routingalgorithm.AStar[int64](g, 1, 6, time.Second)
		require.Equal(t, routingalgorithm.Solved, res.Outcome)
		require.Len(t, res.Path, 4)
		assert.Equal(t, int64(1), res.Path[0])
		assert.Equal(t, int64(6), res.Path[3])

		res = routingalgorithm.AStar[int64](g, 1, 7, time.Second)
		assert.Equal(t, routingalgorithm.Unreachable, res.Outcome)
	})
}

func TestAugmentedGraph(t *testing.T) {
	ag, err := streetmap.NewAugmentedGraph(newBerkeleyGraph(t))
	require.NoError(t, err)

	t.Run("closest only returns routable nodes", func(t *testing.T) {
		id, err := ag.Closest(-122.2649, 37.8701)
		require.NoError(t, err)
		assert.Equal(t, int64(2), id)

		// 7 tidak punya neighbor
		id, err = ag.Closest(-122.2550, 37.8750)
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("closest matches brute force", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 100; i++ {
			lon := -122.28 + rng.Float64()*0.03
			lat := 37.86 + rng.Float64()*0.02
			id, err := ag.Closest(lon, lat)
			require.NoError(t, err)

			best, bestDist := int64(0), 1e18
			for _, n := range ag.Nodes() {
				if len(ag.Neighbors(n.ID)) == 0 {
					continue
				}
				d := (n.Lon-lon)*(n.Lon-lon) + (n.Lat-lat)*(n.Lat-lat)
				if d < bestDist {
					best, bestDist = n.ID, d
				}
			}
			assert.Equal(t, best, id)
		}
	})

	t.Run("locations by prefix", func(t *testing.T) {
		assert.Equal(t, []string{"Top Dog", "Topper's Café"}, ag.LocationsByPrefix("to"))
		assert.Equal(t, []string{"Top Dog"}, ag.LocationsByPrefix("TOP D"))
		assert.Equal(t, []string{"Tilden Park"}, ag.LocationsByPrefix("t!i"))
		assert.Empty(t, ag.LocationsByPrefix("zzz"))
	})

	t.Run("locations by name", func(t *testing.T) {
		locs := ag.Locations("top dog")
		require.Len(t, locs, 2)
		assert.Equal(t, int64(2), locs[0].ID)
		assert.Equal(t, int64(5), locs[1].ID)
		assert.Empty(t, ag.Locations("nowhere"))
	})

	t.Run("graph without edges", func(t *testing.T) {
		g := streetmap.NewGraph()
		g.AddNode(datastructure.StreetNode{ID: 1, Lat: 1, Lon: 1})
		_, err := streetmap.NewAugmentedGraph(g)
		assert.Error(t, err)
	})
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "toppers caf", streetmap.CleanString("Topper's Café"))
	assert.Equal(t, "top dog", streetmap.CleanString("Top Dog!!"))
}
