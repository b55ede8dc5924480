package streetmap

import (
	"errors"
	"fmt"
	"sort"

	"lintang/bearmaps/pkg/datastructure"

	"github.com/golang/geo/s2"
)

const earthRadiusKM = 6371.0

var ErrNodeNotFound = errors.New("street node not found")

// GreatCircleDistance jarak (km) antara 2 titik di permukaan bumi.
func GreatCircleDistance(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * earthRadiusKM
}

// Graph road network. edge weight = great circle distance antar node (km), jadi heuristic
// great circle distance ke goal admissible & consistent.
type Graph struct {
	nodes map[int64]datastructure.StreetNode
	adj   map[int64][]datastructure.WeightedEdge[int64]
	edges []datastructure.StreetEdge
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int64]datastructure.StreetNode),
		adj:   make(map[int64][]datastructure.WeightedEdge[int64]),
	}
}

// AddNode tambah/replace node.
func (g *Graph) AddNode(n datastructure.StreetNode) {
	g.nodes[n.ID] = n
}

// AddEdge road segment dua arah antara from & to.
func (g *Graph) AddEdge(from, to int64, name string) error {
	fromNode, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("edge %d -> %d: %w: %d", from, to, ErrNodeNotFound, from)
	}
	toNode, ok := g.nodes[to]
	if !ok {
		return fmt.Errorf("edge %d -> %d: %w: %d", from, to, ErrNodeNotFound, to)
	}
	dist := GreatCircleDistance(fromNode.Lat, fromNode.Lon, toNode.Lat, toNode.Lon)
	g.addStreetEdge(datastructure.StreetEdge{From: from, To: to, Weight: dist, Name: name})
	return nil
}

// AddStreetEdge pakai weight yang sudah ada (misal dari snapshot).
func (g *Graph) AddStreetEdge(e datastructure.StreetEdge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("edge %d -> %d: %w: %d", e.From, e.To, ErrNodeNotFound, e.From)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("edge %d -> %d: %w: %d", e.From, e.To, ErrNodeNotFound, e.To)
	}
	if e.Weight < 0 {
		return fmt.Errorf("edge %d -> %d: negative weight %f", e.From, e.To, e.Weight)
	}
	g.addStreetEdge(e)
	return nil
}

func (g *Graph) addStreetEdge(e datastructure.StreetEdge) {
	g.edges = append(g.edges, e)
	g.adj[e.From] = append(g.adj[e.From], datastructure.NewWeightedEdge(e.From, e.To, e.Weight))
	g.adj[e.To] = append(g.adj[e.To], datastructure.NewWeightedEdge(e.To, e.From, e.Weight))
}

// AddWay sambungkan node-node way secara berurutan.
func (g *Graph) AddWay(nodeIDs []int64, name string) error {
	for i := 0; i+1 < len(nodeIDs); i++ {
		if nodeIDs[i] == nodeIDs[i+1] {
			continue
		}
		if err := g.AddEdge(nodeIDs[i], nodeIDs[i+1], name); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) Neighbors(v int64) []datastructure.WeightedEdge[int64] {
	return g.adj[v]
}

func (g *Graph) EstimatedDistanceToGoal(v, goal int64) float64 {
	from, ok := g.nodes[v]
	if !ok {
		return 0
	}
	to, ok := g.nodes[goal]
	if !ok {
		return 0
	}
	return GreatCircleDistance(from.Lat, from.Lon, to.Lat, to.Lon)
}

func (g *Graph) Node(id int64) (datastructure.StreetNode, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) Lat(id int64) float64 {
	return g.nodes[id].Lat
}

func (g *Graph) Lon(id int64) float64 {
	return g.nodes[id].Lon
}

// Nodes semua node, sorted by ID.
func (g *Graph) Nodes() []datastructure.StreetNode {
	nodes := make([]datastructure.StreetNode, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID < nodes[j].ID
	})
	return nodes
}

// Edges semua road segment sesuai urutan insert.
func (g *Graph) Edges() []datastructure.StreetEdge {
	return g.edges
}

func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

func (g *Graph) NumEdges() int {
	return len(g.edges)
}
