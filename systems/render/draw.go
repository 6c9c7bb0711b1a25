package render

import (
	"image/color"
	"math"

	"github.com/automoto/lumina/assets/shaders"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whitePixel *ebiten.Image
	glowOp     = &ebiten.DrawRectShaderOptions{}
)

// fade returns c with its alpha scaled by alpha (clamped to [0, 1]).
func fade(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}

// scaleRGB brightens c by factor, capping each channel at 255.
func scaleRGB(c color.RGBA, factor float64) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(math.Min(255, math.Floor(float64(v)*factor)))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

func fillCircle(dst *ebiten.Image, x, y, r float64, clr color.Color) {
	vector.FillCircle(dst, float32(x), float32(y), float32(r), clr, true)
}

func strokeCircle(dst *ebiten.Image, x, y, r, width float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(x), float32(y), float32(r), float32(width), clr, true)
}

func strokeLine(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// fillHexagon draws a flat-sided hexagon with its first corner on the +x axis.
func fillHexagon(dst *ebiten.Image, x, y, size float64, clr color.NRGBA) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}

	path := vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi * 2 * float64(i) / 6
		px := float32(x + math.Cos(angle)*size)
		py := float32(y + math.Sin(angle)*size)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = r
		vertices[i].ColorG = g
		vertices[i].ColorB = b
		vertices[i].ColorA = a
	}
	dst.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawGlow paints a radial halo of clr fading to nothing at radius. It uses
// the glow shader when it compiled and stacked translucent circles otherwise.
func drawGlow(dst *ebiten.Image, x, y, radius float64, clr color.RGBA, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	if shaders.Glow != nil {
		a := float32(alpha) * float32(clr.A) / 255
		glowOp.GeoM.Reset()
		glowOp.GeoM.Translate(x-radius, y-radius)
		glowOp.Uniforms = map[string]any{
			"Center": []float32{float32(x), float32(y)},
			"Radius": float32(radius),
			// Premultiplied
			"Color": []float32{float32(clr.R) / 255 * a, float32(clr.G) / 255 * a, float32(clr.B) / 255 * a, a},
		}
		size := int(math.Ceil(radius * 2))
		dst.DrawRectShader(size, size, shaders.Glow, glowOp)
		return
	}

	const rings = 6
	for i := 0; i < rings; i++ {
		t := float64(i) / rings
		fillCircle(dst, x, y, radius*(1-t), fade(clr, alpha/rings))
	}
}
