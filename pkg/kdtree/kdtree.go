package kdtree

import (
	"errors"
	"math"
)

var ErrEmptyIndex = errors.New("kdtree: index has no points")

// Axis splitting axis sebuah node.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) complement() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

type side uint8

const (
	near side = iota
	far
)

const nilIdx int32 = -1

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) coord(a Axis) float64 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// squaredDistance. semua perbandingan jarak di tree ini pakai squared euclidean distance.
func squaredDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance euclidean distance antara 2 point.
func Distance(a, b Point) float64 {
	return math.Sqrt(squaredDistance(a, b))
}

type node struct {
	point  Point
	axis   Axis
	left   int32
	right  int32
	parent int32
}

// KDTree 2d tree, nodes disimpan di arena (slice) dan link antar node pakai index.
// Tree is built incrementally, so its balance depends on insertion order.
// Safe for concurrent Nearest calls once no more points are inserted.
type KDTree struct {
	nodes []node
}

// NewKDTree build tree dari points. point pertama jadi root dengan axis X, sisanya di insert satu per satu.
func NewKDTree(points []Point) (*KDTree, error) {
	if len(points) == 0 {
		return nil, ErrEmptyIndex
	}
	t := &KDTree{
		nodes: make([]node, 0, len(points)),
	}
	t.nodes = append(t.nodes, node{
		point:  points[0],
		axis:   AxisX,
		left:   nilIdx,
		right:  nilIdx,
		parent: nilIdx,
	})
	for _, p := range points[1:] {
		t.Insert(p)
	}
	return t, nil
}

// Len jumlah node di tree.
func (t *KDTree) Len() int {
	return len(t.nodes)
}

// Insert point ke tree. Point yang sama dengan point node yang sudah ada tidak membuat node baru,
// payload node itu di replace. Coordinate <= node goes left, > goes right.
func (t *KDTree) Insert(p Point) {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node{point: p, axis: AxisX, left: nilIdx, right: nilIdx, parent: nilIdx})
		return
	}

	curr := int32(0)
	for {
		n := &t.nodes[curr]
		if n.point == p {
			n.point = p
			return
		}

		goLeft := p.coord(n.axis) <= n.point.coord(n.axis)
		next := n.right
		if goLeft {
			next = n.left
		}
		if next != nilIdx {
			curr = next
			continue
		}

		leaf := int32(len(t.nodes))
		if goLeft {
			n.left = leaf
		} else {
			n.right = leaf
		}
		// n invalid setelah append (arena bisa realloc)
		t.nodes = append(t.nodes, node{
			point:  p,
			axis:   n.axis.complement(),
			left:   nilIdx,
			right:  nilIdx,
			parent: curr,
		})
		return
	}
}

// Nearest point di tree yang paling dekat (euclidean) dengan (x, y).
func (t *KDTree) Nearest(x, y float64) (Point, error) {
	if len(t.nodes) == 0 {
		return Point{}, ErrEmptyIndex
	}
	target := NewPoint(x, y)
	best := 0
	bestDist := squaredDistance(t.nodes[0].point, target)
	t.nearest(0, target, &best, &bestDist)
	return t.nodes[best].point, nil
}

func (t *KDTree) nearest(idx int32, target Point, best *int, bestDist *float64) {
	if idx == nilIdx {
		return
	}
	n := &t.nodes[idx]

	dist := squaredDistance(n.point, target)
	if dist < *bestDist {
		*bestDist = dist
		*best = int(idx)
	}

	t.nearest(n.child(target, near), target, best, bestDist)

	// axis gap di-square juga biar satu metric dengan bestDist
	gap := target.coord(n.axis) - n.point.coord(n.axis)
	if gap*gap < *bestDist {
		t.nearest(n.child(target, far), target, best, bestDist)
	}
}

// child near = subtree di sisi target dari splitting line, far = sisi sebaliknya.
func (n *node) child(target Point, s side) int32 {
	targetLeft := target.coord(n.axis) <= n.point.coord(n.axis)
	if (s == near) == targetLeft {
		return n.left
	}
	return n.right
}

// Points semua point di tree, urut sesuai urutan insert.
func (t *KDTree) Points() []Point {
	points := make([]Point, len(t.nodes))
	for i, n := range t.nodes {
		points[i] = n.point
	}
	return points
}
