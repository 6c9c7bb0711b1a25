package worlddata

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/automoto/lumina/gamemath"
)

// Pixel classification thresholds.
const (
	minOpaqueAlpha = 128
	maxGraySpread  = 24  // largest allowed difference between two channels
	minGrayLevel   = 48  // darker pixels are background
	maxGrayLevel   = 208 // lighter pixels are background (or spawn)
	minSpawnLevel  = 240 // every channel at least this bright
)

// IsPlatformPixel reports whether c is a mid-gray, mostly opaque pixel.
func IsPlatformPixel(c color.Color) bool {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < minOpaqueAlpha {
		return false
	}
	lo, hi := minMax(n.R, n.G, n.B)
	if int(hi)-int(lo) > maxGraySpread {
		return false
	}
	avg := (int(n.R) + int(n.G) + int(n.B)) / 3
	return avg >= minGrayLevel && avg <= maxGrayLevel
}

// IsSpawnPixel reports whether c is near-white and mostly opaque.
func IsSpawnPixel(c color.Color) bool {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.A >= minOpaqueAlpha && n.R >= minSpawnLevel && n.G >= minSpawnLevel && n.B >= minSpawnLevel
}

func minMax(vs ...uint8) (lo, hi uint8) {
	lo, hi = 255, 0
	for _, v := range vs {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// ScanRuns classifies every pixel and returns the maximal horizontal runs of
// platform pixels per row, in pixel units. The first spawn pixel in row-major
// order is returned as well, if any.
func ScanRuns(img image.Image) (runs []gamemath.Rect, spawn *image.Point) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		runStart := -1
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if spawn == nil && IsSpawnPixel(c) {
				spawn = &image.Point{X: x - b.Min.X, Y: y - b.Min.Y}
			}
			if IsPlatformPixel(c) {
				if runStart < 0 {
					runStart = x
				}
				continue
			}
			if runStart >= 0 {
				runs = append(runs, pixelRun(runStart, x, y, b.Min))
				runStart = -1
			}
		}
		if runStart >= 0 {
			runs = append(runs, pixelRun(runStart, b.Max.X, y, b.Min))
		}
	}
	return runs, spawn
}

func pixelRun(x0, x1, y int, origin image.Point) gamemath.Rect {
	return gamemath.Rect{
		X: float64(x0 - origin.X),
		Y: float64(y - origin.Y),
		W: float64(x1 - x0),
		H: 1,
	}
}

// MergeRects joins rectangles that share a full edge: first vertically
// (same X and W, one's bottom on the other's top), then horizontally (same Y
// and H, one's right on the other's left), repeating until stable. Total area
// is preserved and only exactly adjacent, equal-sized edges are joined.
func MergeRects(rects []gamemath.Rect) []gamemath.Rect {
	out := append([]gamemath.Rect(nil), rects...)
	for {
		n := len(out)
		out = mergeVertical(out)
		out = mergeHorizontal(out)
		if len(out) == n {
			return out
		}
	}
}

type columnKey struct{ x, w float64 }
type rowKey struct{ y, h float64 }

func mergeVertical(rects []gamemath.Rect) []gamemath.Rect {
	groups := make(map[columnKey][]gamemath.Rect)
	var keys []columnKey
	for _, r := range rects {
		k := columnKey{r.X, r.W}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], r)
	}

	out := make([]gamemath.Rect, 0, len(rects))
	for _, k := range keys {
		g := groups[k]
		sort.Slice(g, func(i, j int) bool { return g[i].Y < g[j].Y })
		cur := g[0]
		for _, r := range g[1:] {
			if r.Y == cur.Bottom() {
				cur.H += r.H
				continue
			}
			out = append(out, cur)
			cur = r
		}
		out = append(out, cur)
	}
	return out
}

func mergeHorizontal(rects []gamemath.Rect) []gamemath.Rect {
	groups := make(map[rowKey][]gamemath.Rect)
	var keys []rowKey
	for _, r := range rects {
		k := rowKey{r.Y, r.H}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], r)
	}

	out := make([]gamemath.Rect, 0, len(rects))
	for _, k := range keys {
		g := groups[k]
		sort.Slice(g, func(i, j int) bool { return g[i].X < g[j].X })
		cur := g[0]
		for _, r := range g[1:] {
			if r.X == cur.Right() {
				cur.W += r.W
				continue
			}
			out = append(out, cur)
			cur = r
		}
		out = append(out, cur)
	}
	return out
}

// FromBitmap builds a layout from an image. Each pixel covers scale world
// units. The spawn defaults to above the first platform when the image has
// no spawn pixel.
func FromBitmap(name string, img image.Image, scale float64) (*Layout, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("bitmap %s: scale must be positive, got %v", name, scale)
	}

	runs, spawnPx := ScanRuns(img)
	if len(runs) == 0 {
		return nil, fmt.Errorf("bitmap %s: %w", name, ErrNoPlatforms)
	}

	merged := MergeRects(runs)
	platforms := make([]gamemath.Rect, len(merged))
	for i, r := range merged {
		platforms[i] = gamemath.Rect{X: r.X * scale, Y: r.Y * scale, W: r.W * scale, H: r.H * scale}
	}
	// Keep a stable top-to-bottom, left-to-right order for rendering and tests.
	sort.Slice(platforms, func(i, j int) bool {
		if platforms[i].Y != platforms[j].Y {
			return platforms[i].Y < platforms[j].Y
		}
		return platforms[i].X < platforms[j].X
	})

	size := img.Bounds().Size()
	layout := &Layout{
		Name:      name,
		Platforms: platforms,
		Bounds:    Bounds{Width: float64(size.X) * scale, Height: float64(size.Y) * scale},
	}

	if spawnPx != nil {
		layout.Spawn = Point{
			X: (float64(spawnPx.X) + 0.5) * scale,
			Y: (float64(spawnPx.Y) + 0.5) * scale,
		}
	} else {
		first := platforms[0]
		layout.Spawn = Point{X: first.X + first.W/2, Y: first.Y - scale}
	}
	return layout, nil
}
