package streetmap

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"lintang/bearmaps/pkg/datastructure"
	"lintang/bearmaps/pkg/kdtree"
	"lintang/bearmaps/pkg/trie"

	"k8s.io/klog/v2"
)

var nonLetter = regexp.MustCompile(`[^a-zA-Z ]`)

// CleanString buang semua karakter selain huruf & spasi, lalu lowercase.
func CleanString(s string) string {
	return strings.ToLower(nonLetter.ReplaceAllString(s, ""))
}

// AugmentedGraph street graph + kdtree buat snapping koordinat ke node terdekat + index nama lokasi.
// Read-only setelah dibuat, aman dipakai concurrent.
type AugmentedGraph struct {
	*Graph
	tree      *kdtree.KDTree
	pointToID map[kdtree.Point]int64

	names        *trie.Trie
	cleanToFull  map[string]map[string]struct{}
	cleanToNodes map[string][]int64
}

// NewAugmentedGraph cuma node yang punya neighbor yang masuk kdtree (point = lon, lat),
// node bernama masuk index nama.
func NewAugmentedGraph(g *Graph) (*AugmentedGraph, error) {
	ag := &AugmentedGraph{
		Graph:        g,
		pointToID:    make(map[kdtree.Point]int64),
		names:        trie.NewTrie(),
		cleanToFull:  make(map[string]map[string]struct{}),
		cleanToNodes: make(map[string][]int64),
	}

	points := []kdtree.Point{}
	for _, n := range g.Nodes() {
		if len(g.Neighbors(n.ID)) > 0 {
			p := kdtree.NewPoint(n.Lon, n.Lat)
			ag.pointToID[p] = n.ID
			points = append(points, p)
		}

		if n.Name == "" {
			continue
		}
		clean := CleanString(n.Name)
		full, ok := ag.cleanToFull[clean]
		if !ok {
			full = make(map[string]struct{})
			ag.cleanToFull[clean] = full
		}
		full[n.Name] = struct{}{}
		ag.cleanToNodes[clean] = append(ag.cleanToNodes[clean], n.ID)
		ag.names.Add(clean)
	}

	tree, err := kdtree.NewKDTree(points)
	if err != nil {
		return nil, fmt.Errorf("building street kdtree: %w", err)
	}
	ag.tree = tree

	klog.InfoS("augmented street graph ready", "nodes", g.NumNodes(), "intersections", tree.Len(), "names", ag.names.Len())
	return ag, nil
}

// Closest id node routable yang paling dekat dengan lon, lat.
func (ag *AugmentedGraph) Closest(lon, lat float64) (int64, error) {
	p, err := ag.tree.Nearest(lon, lat)
	if err != nil {
		return 0, err
	}
	return ag.pointToID[p], nil
}

// LocationsByPrefix nama lengkap lokasi yang cleaned name nya diawali cleaned prefix.
func (ag *AugmentedGraph) LocationsByPrefix(prefix string) []string {
	locations := []string{}
	for _, clean := range ag.names.KeysWithPrefix(CleanString(prefix)) {
		full := make([]string, 0, len(ag.cleanToFull[clean]))
		for name := range ag.cleanToFull[clean] {
			full = append(full, name)
		}
		sort.Strings(full)
		locations = append(locations, full...)
	}
	return locations
}

// Locations semua node yang cleaned name nya sama dengan cleaned locationName.
func (ag *AugmentedGraph) Locations(locationName string) []datastructure.StreetNode {
	ids := ag.cleanToNodes[CleanString(locationName)]
	locations := make([]datastructure.StreetNode, 0, len(ids))
	for _, id := range ids {
		n, _ := ag.Node(id)
		locations = append(locations, n)
	}
	return locations
}
