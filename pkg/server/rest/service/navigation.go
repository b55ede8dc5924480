package service

import (
	"context"
	"errors"

	"lintang/bearmaps/pkg/datastructure"
	"lintang/bearmaps/pkg/engine/routingalgorithm"
	"lintang/bearmaps/pkg/raster"
	"lintang/bearmaps/pkg/server"
	"lintang/bearmaps/pkg/util"

	"k8s.io/klog/v2"
)

type StreetGraph interface {
	Closest(lon, lat float64) (int64, error)
	Node(id int64) (datastructure.StreetNode, bool)
	LocationsByPrefix(prefix string) []string
	Locations(locationName string) []datastructure.StreetNode
}

type RoutingAlgorithm interface {
	ShortestPath(from, to int64) routingalgorithm.SolverResult[int64]
	ShortestPathManyToMany(from []int64, to []int64) map[int64]map[int64]routingalgorithm.SPSingleResult
}

type Rasterer interface {
	GetMapRaster(req raster.RasterRequest) raster.RasterResult
}

type NavigationService struct {
	graph    StreetGraph
	routing  RoutingAlgorithm
	rasterer Rasterer
}

func NewNavigationService(graph StreetGraph, routing RoutingAlgorithm, rasterer Rasterer) *NavigationService {
	return &NavigationService{graph: graph, routing: routing, rasterer: rasterer}
}

type ShortestPathResult struct {
	Path           string
	Dist           float64
	Found          bool
	Outcome        string
	StatesExplored int
	ElapsedSeconds float64
	Route          []datastructure.Coordinate
	NodeIDs        []int64
}

const messageNotCovered = "sorry!! the location you entered is not covered on my map :(, please use diferrent openstreetmap file"

// ShortestPath snap src & dst ke street node terdekat lalu A*. Kalau rute tidak ketemu (unreachable / timeout)
// result tetap dikembalikan bareng error ErrNotFound.
func (uc *NavigationService) ShortestPath(ctx context.Context, srcLat, srcLon float64,
	dstLat float64, dstLon float64) (ShortestPathResult, error) {
	from, err := uc.graph.Closest(srcLon, srcLat)
	if err != nil {
		return ShortestPathResult{}, server.WrapErrorf(err, server.ErrNotFound, messageNotCovered)
	}
	to, err := uc.graph.Closest(dstLon, dstLat)
	if err != nil {
		return ShortestPathResult{}, server.WrapErrorf(err, server.ErrNotFound, messageNotCovered)
	}

	res := uc.routing.ShortestPath(from, to)
	klog.V(2).InfoS("shortest path query", "from", from, "to", to, "outcome", res.Outcome,
		"statesExplored", res.StatesExplored, "elapsed", res.Elapsed)

	spRes := ShortestPathResult{
		Outcome:        res.Outcome.String(),
		StatesExplored: res.StatesExplored,
		ElapsedSeconds: res.ElapsedSeconds(),
		Route:          []datastructure.Coordinate{},
		NodeIDs:        []int64{},
	}
	if res.Outcome != routingalgorithm.Solved {
		return spRes, server.WrapErrorf(errors.New(spRes.Outcome), server.ErrNotFound,
			"no route found between the two locations (%s)", spRes.Outcome)
	}

	for _, id := range res.Path {
		n, _ := uc.graph.Node(id)
		spRes.Route = append(spRes.Route, datastructure.NewCoordinate(n.Lat, n.Lon))
	}
	spRes.Found = true
	spRes.NodeIDs = res.Path
	spRes.Dist = util.RoundFloat(res.TotalCost, 2)
	spRes.Path = datastructure.RenderPath(spRes.Route)
	return spRes, nil
}

// Nearest street node routable paling dekat dengan lat, lon.
func (uc *NavigationService) Nearest(ctx context.Context, lat, lon float64) (datastructure.StreetNode, error) {
	id, err := uc.graph.Closest(lon, lat)
	if err != nil {
		return datastructure.StreetNode{}, server.WrapErrorf(err, server.ErrNotFound, messageNotCovered)
	}
	n, _ := uc.graph.Node(id)
	return n, nil
}

func (uc *NavigationService) LocationsByPrefix(ctx context.Context, prefix string) ([]string, error) {
	return uc.graph.LocationsByPrefix(prefix), nil
}

func (uc *NavigationService) Locations(ctx context.Context, locationName string) ([]datastructure.StreetNode, error) {
	locs := uc.graph.Locations(locationName)
	if len(locs) == 0 {
		return locs, server.WrapErrorf(nil, server.ErrNotFound, "location %q not found", locationName)
	}
	return locs, nil
}

func (uc *NavigationService) Raster(ctx context.Context, req raster.RasterRequest) (raster.RasterResult, error) {
	res := uc.rasterer.GetMapRaster(req)
	if !res.QuerySuccess {
		klog.V(2).InfoS("raster query outside map", "ullat", req.ULLat, "ullon", req.ULLon, "lrlat", req.LRLat, "lrlon", req.LRLon)
	}
	return res, nil
}

type TargetResult struct {
	Source  datastructure.Coordinate
	Target  datastructure.Coordinate
	Dist    float64
	Found   bool
	Outcome string
}

// ManyToMany shortest path dari setiap source ke setiap target. Urutan result = urutan source lalu target.
func (uc *NavigationService) ManyToMany(ctx context.Context, sources, targets []datastructure.Coordinate) ([]TargetResult, error) {
	snap := func(coords []datastructure.Coordinate) ([]int64, error) {
		ids := make([]int64, 0, len(coords))
		for _, c := range coords {
			id, err := uc.graph.Closest(c.Lon, c.Lat)
			if err != nil {
				return nil, server.WrapErrorf(err, server.ErrNotFound, messageNotCovered)
			}
			ids = append(ids, id)
		}
		return ids, nil
	}

	sourceIDs, err := snap(sources)
	if err != nil {
		return nil, err
	}
	targetIDs, err := snap(targets)
	if err != nil {
		return nil, err
	}

	spMap := uc.routing.ShortestPathManyToMany(sourceIDs, targetIDs)

	results := make([]TargetResult, 0, len(sources)*len(targets))
	for i, s := range sourceIDs {
		for j, t := range targetIDs {
			sp := spMap[s][t]
			results = append(results, TargetResult{
				Source:  sources[i],
				Target:  targets[j],
				Dist:    util.RoundFloat(sp.TotalCost, 2),
				Found:   sp.Outcome == routingalgorithm.Solved,
				Outcome: sp.Outcome.String(),
			})
		}
	}
	return results, nil
}
