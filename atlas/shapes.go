package atlas

import (
	"image"
	"image/color"
)

var opaque = color.NRGBA{255, 255, 255, 255}

// arms gives the line weight (0 none, 1 single, 2 double) of a box drawing
// glyph towards up, down, left and right.
type arms struct {
	up, down, left, right uint8
}

var boxGlyphs = map[uint8]arms{
	179: {1, 1, 0, 0}, // │
	180: {1, 1, 1, 0}, // ┤
	181: {1, 1, 2, 0}, // ╡
	182: {2, 2, 1, 0}, // ╢
	183: {0, 2, 1, 0}, // ╖
	184: {0, 1, 2, 0}, // ╕
	185: {2, 2, 2, 0}, // ╣
	186: {2, 2, 0, 0}, // ║
	187: {0, 2, 2, 0}, // ╗
	188: {2, 0, 2, 0}, // ╝
	189: {2, 0, 1, 0}, // ╜
	190: {1, 0, 2, 0}, // ╛
	191: {0, 1, 1, 0}, // ┐
	192: {1, 0, 0, 1}, // └
	193: {1, 0, 1, 1}, // ┴
	194: {0, 1, 1, 1}, // ┬
	195: {1, 1, 0, 1}, // ├
	196: {0, 0, 1, 1}, // ─
	197: {1, 1, 1, 1}, // ┼
	198: {1, 1, 0, 2}, // ╞
	199: {2, 2, 0, 1}, // ╟
	200: {2, 0, 0, 2}, // ╚
	201: {0, 2, 0, 2}, // ╔
	202: {2, 0, 2, 2}, // ╩
	203: {0, 2, 2, 2}, // ╦
	204: {2, 2, 0, 2}, // ╠
	205: {0, 0, 2, 2}, // ═
	206: {2, 2, 2, 2}, // ╬
	207: {1, 0, 2, 2}, // ╧
	208: {2, 0, 1, 1}, // ╨
	209: {0, 1, 2, 2}, // ╤
	210: {0, 2, 1, 1}, // ╥
	211: {2, 0, 0, 1}, // ╙
	212: {1, 0, 0, 2}, // ╘
	213: {0, 1, 0, 2}, // ╒
	214: {0, 2, 0, 1}, // ╓
	215: {2, 2, 1, 1}, // ╫
	216: {1, 1, 2, 2}, // ╪
	217: {1, 0, 1, 0}, // ┘
	218: {0, 1, 0, 1}, // ┌
}

// offsets returns the line offsets from the cell center for a weight.
func offsets(weight uint8) []int {
	switch weight {
	case 1:
		return []int{0}
	case 2:
		return []int{-1, 1}
	}
	return nil
}

// drawShape draws the geometric glyphs. It reports whether g is one.
func drawShape(dst *image.NRGBA, cell image.Rectangle, g uint8) bool {
	if a, ok := boxGlyphs[g]; ok {
		drawBox(dst, cell, a)
		return true
	}

	w, h := cell.Dx(), cell.Dy()
	switch g {
	case 176: // ░
		fillPattern(dst, cell, func(x, y int) bool { return x%2 == 0 && y%2 == 0 })
	case 177: // ▒
		fillPattern(dst, cell, func(x, y int) bool { return (x+y)%2 == 0 })
	case 178: // ▓
		fillPattern(dst, cell, func(x, y int) bool { return x%2 != 0 || y%2 != 0 })
	case 219: // █
		fillRect(dst, cell)
	case 220: // ▄
		fillRect(dst, image.Rect(0, h/2, w, h).Add(cell.Min))
	case 221: // ▌
		fillRect(dst, image.Rect(0, 0, w/2, h).Add(cell.Min))
	case 222: // ▐
		fillRect(dst, image.Rect(w/2, 0, w, h).Add(cell.Min))
	case 223: // ▀
		fillRect(dst, image.Rect(0, 0, w, h/2).Add(cell.Min))
	case 254: // ■
		fillRect(dst, image.Rect(w/4, h*3/8, w-w/4, h-h*3/8).Add(cell.Min))
	default:
		return false
	}
	return true
}

// drawBox draws each arm from the cell edge to just past the center, so
// that arms of neighboring cells meet and the arms of one cell join.
func drawBox(dst *image.NRGBA, cell image.Rectangle, a arms) {
	cx := cell.Min.X + cell.Dx()/2
	cy := cell.Min.Y + cell.Dy()/2

	line := func(r image.Rectangle) {
		fillRect(dst, r.Intersect(cell))
	}
	for _, off := range offsets(a.up) {
		line(image.Rect(cx+off, cell.Min.Y, cx+off+1, cy+2))
	}
	for _, off := range offsets(a.down) {
		line(image.Rect(cx+off, cy-1, cx+off+1, cell.Max.Y))
	}
	for _, off := range offsets(a.left) {
		line(image.Rect(cell.Min.X, cy+off, cx+2, cy+off+1))
	}
	for _, off := range offsets(a.right) {
		line(image.Rect(cx-1, cy+off, cell.Max.X, cy+off+1))
	}
}

func fillRect(dst *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(dst.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetNRGBA(x, y, opaque)
		}
	}
}

// fillPattern sets the pixels of cell for which set(x, y) is true, with
// x and y relative to the cell.
func fillPattern(dst *image.NRGBA, cell image.Rectangle, set func(x, y int) bool) {
	for y := 0; y < cell.Dy(); y++ {
		for x := 0; x < cell.Dx(); x++ {
			if set(x, y) {
				dst.SetNRGBA(cell.Min.X+x, cell.Min.Y+y, opaque)
			}
		}
	}
}
