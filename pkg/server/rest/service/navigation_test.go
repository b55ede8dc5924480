package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lintang/bearmaps/pkg/datastructure"
	"lintang/bearmaps/pkg/engine/routingalgorithm"
	"lintang/bearmaps/pkg/raster"
	"lintang/bearmaps/pkg/server"
	"lintang/bearmaps/pkg/server/rest/service"
	"lintang/bearmaps/pkg/streetmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1 - 2 - 3 terhubung, 10 - 11 pulau terpisah, 7 isolated & bernama.
func newTestService(t *testing.T, timeout time.Duration) *service.NavigationService {
	g := streetmap.NewGraph()
	g.AddNode(datastructure.StreetNode{ID: 1, Lat: 37.8700, Lon: -122.2700})
	g.AddNode(datastructure.StreetNode{ID: 2, Lat: 37.8700, Lon: -122.2650, Name: "Top Dog"})
	g.AddNode(datastructure.StreetNode{ID: 3, Lat: 37.8650, Lon: -122.2650})
	g.AddNode(datastructure.StreetNode{ID: 7, Lat: 37.8750, Lon: -122.2550, Name: "Tilden Park"})
	g.AddNode(datastructure.StreetNode{ID: 10, Lat: 37.8300, Lon: -122.2200})
	g.AddNode(datastructure.StreetNode{ID: 11, Lat: 37.8300, Lon: -122.2150})
	require.NoError(t, g.AddWay([]int64{1, 2, 3}, "Hearst Avenue"))
	require.NoError(t, g.AddWay([]int64{10, 11}, "Claremont Avenue"))

	ag, err := streetmap.NewAugmentedGraph(g)
	require.NoError(t, err)
	return service.NewNavigationService(ag, routingalgorithm.NewRouteAlgorithm(ag, timeout), raster.NewBerkeleyRasterer())
}

func TestShortestPath(t *testing.T) {
	svc := newTestService(t, time.Minute)
	ctx := context.Background()

	t.Run("solved", func(t *testing.T) {
		res, err := svc.ShortestPath(ctx, 37.8701, -122.2701, 37.8649, -122.2651)
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, "SOLVED", res.Outcome)
		assert.Equal(t, []int64{1, 2, 3}, res.NodeIDs)
		require.Len(t, res.Route, 3)
		assert.Equal(t, datastructure.NewCoordinate(37.87, -122.265), res.Route[1])
		assert.NotEmpty(t, res.Path)
		assert.InDelta(t, 0.44+0.56, res.Dist, 0.05)
		assert.Equal(t, 2, res.StatesExplored)
	})

	t.Run("unreachable", func(t *testing.T) {
		res, err := svc.ShortestPath(ctx, 37.8701, -122.2701, 37.8300, -122.2200)
		require.Error(t, err)
		var srvErr *server.Error
		require.True(t, errors.As(err, &srvErr))
		assert.Equal(t, server.ErrNotFound, srvErr.Code())
		assert.False(t, res.Found)
		assert.Equal(t, "UNREACHABLE", res.Outcome)
		assert.Empty(t, res.NodeIDs)
	})

	t.Run("timed out", func(t *testing.T) {
		res, err := newTestService(t, 0).ShortestPath(ctx, 37.8701, -122.2701, 37.8649, -122.2651)
		require.Error(t, err)
		assert.Equal(t, "TIMED_OUT", res.Outcome)
		assert.Equal(t, 1, res.StatesExplored)
	})
}

func TestNearest(t *testing.T) {
	svc := newTestService(t, time.Minute)

	n, err := svc.Nearest(context.Background(), 37.8751, -122.2551)
	require.NoError(t, err)
	// 7 tidak routable
	assert.Equal(t, int64(2), n.ID)
}

func TestLocations(t *testing.T) {
	svc := newTestService(t, time.Minute)
	ctx := context.Background()

	names, err := svc.LocationsByPrefix(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tilden Park", "Top Dog"}, names)

	locs, err := svc.Locations(ctx, "TILDEN park")
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, int64(7), locs[0].ID)

	_, err = svc.Locations(ctx, "nowhere")
	assert.Error(t, err)
}

func TestManyToMany(t *testing.T) {
	svc := newTestService(t, time.Minute)

	sources := []datastructure.Coordinate{{Lat: 37.8701, Lon: -122.2701}, {Lat: 37.8301, Lon: -122.2201}}
	targets := []datastructure.Coordinate{{Lat: 37.8649, Lon: -122.2651}}
	res, err := svc.ManyToMany(context.Background(), sources, targets)
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, sources[0], res[0].Source)
	assert.True(t, res[0].Found)
	assert.Greater(t, res[0].Dist, 0.0)

	assert.Equal(t, sources[1], res[1].Source)
	assert.False(t, res[1].Found)
	assert.Equal(t, "UNREACHABLE", res[1].Outcome)
}

func TestRaster(t *testing.T) {
	svc := newTestService(t, time.Minute)
	res, err := svc.Raster(context.Background(), raster.RasterRequest{
		Bounds: raster.Bounds{ULLat: 0, ULLon: 0, LRLat: -1, LRLon: 1},
		Width:  100, Height: 100,
	})
	require.NoError(t, err)
	assert.False(t, res.QuerySuccess)
}
