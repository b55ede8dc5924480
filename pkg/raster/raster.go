package raster

import (
	"fmt"
	"math"
)

// root bounds tile set berkeley (d0_x0_y0.png).
const (
	RootULLat = 37.892195547244356
	RootULLon = -122.2998046875
	RootLRLat = 37.82280243352756
	RootLRLon = -122.2119140625

	TileSize = 256
	MaxDepth = 7

	boundaryEps = 1e-9
)

// Bounds bounding box, UL = upper left, LR = lower right.
type Bounds struct {
	ULLat float64
	ULLon float64
	LRLat float64
	LRLon float64
}

type RasterRequest struct {
	Bounds
	// Width & Height ukuran viewport user dalam pixel.
	Width  float64
	Height float64
}

type RasterResult struct {
	RenderGrid   [][]string
	RasterULLon  float64
	RasterULLat  float64
	RasterLRLon  float64
	RasterLRLat  float64
	Depth        int
	QuerySuccess bool
}

type Rasterer struct {
	root     Bounds
	tileSize float64
	maxDepth int
}

func NewRasterer(root Bounds, tileSize int, maxDepth int) *Rasterer {
	return &Rasterer{root: root, tileSize: float64(tileSize), maxDepth: maxDepth}
}

func NewBerkeleyRasterer() *Rasterer {
	return NewRasterer(Bounds{ULLat: RootULLat, ULLon: RootULLon, LRLat: RootLRLat, LRLon: RootLRLon}, TileSize, MaxDepth)
}

// lonDPP longitudinal distance per pixel tile di depth.
func (r *Rasterer) lonDPP(depth int) float64 {
	return (r.root.LRLon - r.root.ULLon) / (r.tileSize * math.Pow(2, float64(depth)))
}

// Depth depth paling kecil yang lonDPP nya <= lonDPP query, maksimal maxDepth.
func (r *Rasterer) Depth(queryLonDPP float64) int {
	for d := 0; d < r.maxDepth; d++ {
		if r.lonDPP(d) <= queryLonDPP {
			return d
		}
	}
	return r.maxDepth
}

func (r *Rasterer) insideRoot(b Bounds) bool {
	if b.LRLon <= b.ULLon || b.LRLat >= b.ULLat {
		return false
	}
	return b.ULLon < r.root.LRLon && b.LRLon > r.root.ULLon &&
		b.ULLat > r.root.LRLat && b.LRLat < r.root.ULLat
}

// GetMapRaster grid tile yang menutupi query box dengan resolusi yang cukup untuk viewport user.
func (r *Rasterer) GetMapRaster(req RasterRequest) RasterResult {
	if req.Width <= 0 || !r.insideRoot(req.Bounds) {
		return RasterResult{QuerySuccess: false}
	}

	depth := r.Depth((req.LRLon - req.ULLon) / req.Width)

	b := Bounds{
		ULLat: math.Min(req.ULLat, r.root.ULLat),
		ULLon: math.Max(req.ULLon, r.root.ULLon),
		LRLat: math.Max(req.LRLat, r.root.LRLat),
		LRLon: math.Min(req.LRLon, r.root.LRLon),
	}

	n := int(math.Pow(2, float64(depth)))
	tileW := (r.root.LRLon - r.root.ULLon) / float64(n)
	tileH := (r.root.ULLat - r.root.LRLat) / float64(n)

	xStart := tileIndex((b.ULLon-r.root.ULLon)/tileW, n)
	xEnd := max(lastTileIndex((b.LRLon-r.root.ULLon)/tileW, n), xStart)
	yStart := tileIndex((r.root.ULLat-b.ULLat)/tileH, n)
	yEnd := max(lastTileIndex((r.root.ULLat-b.LRLat)/tileH, n), yStart)

	grid := make([][]string, 0, yEnd-yStart+1)
	for y := yStart; y <= yEnd; y++ {
		row := make([]string, 0, xEnd-xStart+1)
		for x := xStart; x <= xEnd; x++ {
			row = append(row, TileName(depth, x, y))
		}
		grid = append(grid, row)
	}

	return RasterResult{
		RenderGrid:   grid,
		RasterULLon:  r.root.ULLon + float64(xStart)*tileW,
		RasterULLat:  r.root.ULLat - float64(yStart)*tileH,
		RasterLRLon:  r.root.ULLon + float64(xEnd+1)*tileW,
		RasterLRLat:  r.root.ULLat - float64(yEnd+1)*tileH,
		Depth:        depth,
		QuerySuccess: true,
	}
}

func tileIndex(f float64, n int) int {
	i := int(math.Floor(f))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// lastTileIndex tile terakhir yang masih kena query. edge LR yang pas di batas tile tidak ikut tile sebelahnya.
func lastTileIndex(f float64, n int) int {
	return tileIndex(math.Ceil(f-boundaryEps)-1, n)
}

func TileName(depth, x, y int) string {
	return fmt.Sprintf("d%d_x%d_y%d.png", depth, x, y)
}
