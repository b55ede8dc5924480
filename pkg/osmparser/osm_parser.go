package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"lintang/bearmaps/pkg/datastructure"
	"lintang/bearmaps/pkg/streetmap"
	"lintang/bearmaps/pkg/util"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"k8s.io/klog/v2"
)

var ValidRoadType = map[string]bool{
	"motorway":       true,
	"trunk":          true,
	"primary":        true,
	"secondary":      true,
	"tertiary":       true,
	"unclassified":   true,
	"residential":    true,
	"motorway_link":  true,
	"trunk_link":     true,
	"primary_link":   true,
	"secondary_link": true,
	"tertiary_link":  true,
	"living_street":  true,
	"road":           true,
	"service":        true,
	"track":          true,
}

type osmScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

type OSMParser struct {
	procs int
}

func NewOSMParser() *OSMParser {
	return &OSMParser{procs: runtime.GOMAXPROCS(-1)}
}

func (p *OSMParser) newScanner(ctx context.Context, mapFile string, r io.Reader) osmScanner {
	if strings.HasSuffix(mapFile, ".pbf") {
		return osmpbf.New(ctx, r, p.procs)
	}
	return osmxml.New(ctx, r)
}

// Parse baca file openstreetmap (.osm.pbf atau .osm xml) jadi street graph. Scan 2 kali:
// pertama ambil way yang bisa dilewati mobil, kedua ambil node yang dipakai way tsb + node yang punya nama.
func (p *OSMParser) Parse(ctx context.Context, mapFile string) (*streetmap.Graph, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, fmt.Errorf("open map file: %w", err)
	}
	defer f.Close()

	bar := util.NewProgressBar(-1, fmt.Sprintf("[cyan][1/3][reset] memproses openstreetmap way %s...", filepath.Base(mapFile)))
	ways := []*osm.Way{}
	wayNodes := make(map[osm.NodeID]struct{})

	scanner := p.newScanner(ctx, mapFile, f)
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if !IsRoutableWay(way.TagMap()) {
			continue
		}
		ways = append(ways, way)
		for _, n := range way.Nodes {
			wayNodes[n.ID] = struct{}{}
		}
		bar.Add(1)
	}
	err = scanner.Err()
	scanner.Close()
	if err != nil {
		return nil, fmt.Errorf("scan ways: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	bar = util.NewProgressBar(-1, "[cyan][2/3][reset] memproses openstreetmap node...")
	nodes := make(map[osm.NodeID]*osm.Node)
	scanner = p.newScanner(ctx, mapFile, f)
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		_, used := wayNodes[node.ID]
		if used || node.Tags.Find("name") != "" {
			nodes[node.ID] = node
			bar.Add(1)
		}
	}
	err = scanner.Err()
	scanner.Close()
	if err != nil {
		return nil, fmt.Errorf("scan nodes: %w", err)
	}
	fmt.Println("")

	klog.InfoS("openstreetmap file scanned", "file", mapFile, "ways", len(ways), "nodes", len(nodes))
	return BuildGraph(nodes, ways)
}

// BuildGraph semua node masuk graph, way disambung per node berurutan. Kalau ada node way yang
// tidak ada di nodes (terpotong di batas extract), way dipecah di node itu.
func BuildGraph(nodes map[osm.NodeID]*osm.Node, ways []*osm.Way) (*streetmap.Graph, error) {
	g := streetmap.NewGraph()
	for _, n := range nodes {
		g.AddNode(datastructure.StreetNode{
			ID:   int64(n.ID),
			Lat:  n.Lat,
			Lon:  n.Lon,
			Name: n.Tags.Find("name"),
		})
	}

	for _, way := range ways {
		name := way.Tags.Find("name")
		segment := []int64{}
		for _, wn := range way.Nodes {
			if _, ok := nodes[wn.ID]; !ok {
				if err := g.AddWay(segment, name); err != nil {
					return nil, fmt.Errorf("way %d: %w", way.ID, err)
				}
				segment = segment[:0]
				continue
			}
			segment = append(segment, int64(wn.ID))
		}
		if err := g.AddWay(segment, name); err != nil {
			return nil, fmt.Errorf("way %d: %w", way.ID, err)
		}
	}

	klog.InfoS("street graph built", "nodes", g.NumNodes(), "edges", g.NumEdges())
	return g, nil
}

// IsRoutableWay way yang dipakai buat routing: road type valid & bisa dilewati mobil.
func IsRoutableWay(tagMap map[string]string) bool {
	return ValidRoadType[tagMap["highway"]] && isOsmWayUsedByCars(tagMap)
}

// https://github.com/RoutingKit/RoutingKit/blob/master/src/osm_profile.cpp  [is_osm_way_used_by_cars()]
func isOsmWayUsedByCars(tagMap map[string]string) bool {
	_, ok := tagMap["junction"]
	if ok {
		return true
	}

	route, ok := tagMap["route"]
	if ok && route == "ferry" {
		return true
	}

	ferry, ok := tagMap["ferry"]
	if ok && ferry == "yes" {
		return true
	}

	highway, okHW := tagMap["highway"]
	if !okHW {
		return false
	}

	motorcar, ok := tagMap["motorcar"]
	if ok && motorcar == "no" {
		return false
	}

	motorVehicle, ok := tagMap["motor_vehicle"]
	if ok && motorVehicle == "no" {
		return false
	}

	access, ok := tagMap["access"]
	if ok {
		if !(access == "yes" || access == "permissive" || access == "designated" || access == "delivery" || access == "destination") {
			return false
		}
	}

	switch highway {
	case "motorway", "trunk", "primary", "secondary", "tertiary", "unclassified",
		"residential", "living_street", "service", "motorway_link", "trunk_link",
		"primary_link", "secondary_link", "tertiary_link":
		return true
	case "bicycle_road":
		return tagMap["motorcar"] == "yes"
	case "construction", "path", "footway", "cycleway", "bridleway", "pedestrian",
		"bus_guideway", "raceway", "escape", "steps", "proposed", "conveying":
		return false
	}

	oneway, ok := tagMap["oneway"]
	if ok {
		if oneway == "reversible" || oneway == "alternating" {
			return false
		}
	}

	_, ok = tagMap["maxspeed"]
	return ok
}
