package datastructure

import (
	"github.com/twpayne/go-polyline"
)

// WeightedEdge directed edge From -> To. Weight must be >= 0.
type WeightedEdge[V comparable] struct {
	From   V
	To     V
	Weight float64
}

func NewWeightedEdge[V comparable](from, to V, weight float64) WeightedEdge[V] {
	return WeightedEdge[V]{From: from, To: to, Weight: weight}
}

// StreetNode vertex of the street map. Name kosong kalau node tidak punya tag name.
type StreetNode struct {
	ID   int64
	Lat  float64
	Lon  float64
	Name string
}

// StreetEdge undirected road segment, disimpan sekali dan dipakai dua arah.
type StreetEdge struct {
	From   int64
	To     int64
	Weight float64
	Name   string
}

// RenderPath encode route jadi google polyline string.
func RenderPath(path []Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
