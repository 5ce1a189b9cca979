// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"
	"math"
)

// drawQuad rasterizes the parallelogram spanned by origin (o), the edge to
// x (the quad's vertex 1) and the edge to y (the quad's vertex 3).
//
// For each destination pixel center the inverse mapping gives (u, v) in
// the unit square; pixels with u or v outside [0, 1) are not covered, so
// quads sharing an edge never touch the same pixel twice.
func (s *ImageSurface) drawQuad(o, x, y Vertex, tex *Texture) {
	ex := x.Position.Sub(o.Position)
	ey := y.Position.Sub(o.Position)

	det := cross(ex, ey)
	if math.Abs(det) < 1e-12 {
		return
	}

	tu := x.TexCoords.Sub(o.TexCoords)
	tv := y.TexCoords.Sub(o.TexCoords)
	tint := o.Color
	if tint.A == 0 {
		return
	}

	far := o.Position.Add(ex).Add(ey)
	minX := math.Min(math.Min(o.Position.X, x.Position.X), math.Min(y.Position.X, far.X))
	maxX := math.Max(math.Max(o.Position.X, x.Position.X), math.Max(y.Position.X, far.X))
	minY := math.Min(math.Min(o.Position.Y, x.Position.Y), math.Min(y.Position.Y, far.Y))
	maxY := math.Max(math.Max(o.Position.Y, x.Position.Y), math.Max(y.Position.Y, far.Y))

	x0 := clampInt(int(math.Floor(minX)), 0, s.width)
	x1 := clampInt(int(math.Ceil(maxX)), 0, s.width)
	y0 := clampInt(int(math.Floor(minY)), 0, s.height)
	y1 := clampInt(int(math.Ceil(maxY)), 0, s.height)

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d := Pt(float64(px)+0.5, float64(py)+0.5).Sub(o.Position)
			u := cross(d, ey) / det
			v := cross(ex, d) / det
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				continue
			}

			t := o.TexCoords.Add(tu.Mul(u)).Add(tv.Mul(v))
			texel := tex.At(int(math.Floor(t.X)), int(math.Floor(t.Y)))
			s.blendPixel(px, py, modulate(texel, tint))
		}
	}
}

// modulate multiplies a texel by a color, channel by channel.
func modulate(texel, c color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: mul255(texel.R, c.R),
		G: mul255(texel.G, c.G),
		B: mul255(texel.B, c.B),
		A: mul255(texel.A, c.A),
	}
}

// blendPixel composites src over the pixel at (x, y) (straight alpha).
func (s *ImageSurface) blendPixel(x, y int, src color.NRGBA) {
	if src.A == 0 {
		return
	}

	i := s.img.PixOffset(x, y)
	pix := s.img.Pix[i : i+4 : i+4]

	if src.A == 255 || pix[3] == 0 {
		pix[0] = src.R
		pix[1] = src.G
		pix[2] = src.B
		pix[3] = src.A
		return
	}

	// Porter-Duff "source over" formula
	// out_a = src_a + dst_a * (1 - src_a)
	// out_c = (src_c * src_a + dst_c * dst_a * (1 - src_a)) / out_a
	srcA := float64(src.A) / 255
	dstA := float64(pix[3]) / 255
	outA := srcA + dstA*(1-srcA)

	pix[0] = uint8(math.Round((float64(src.R)*srcA + float64(pix[0])*dstA*(1-srcA)) / outA))
	pix[1] = uint8(math.Round((float64(src.G)*srcA + float64(pix[1])*dstA*(1-srcA)) / outA))
	pix[2] = uint8(math.Round((float64(src.B)*srcA + float64(pix[2])*dstA*(1-srcA)) / outA))
	pix[3] = uint8(math.Round(outA * 255))
}

func cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// mul255 returns round(a*b/255).
func mul255(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + t>>8) >> 8)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
