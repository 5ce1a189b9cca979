package glyphterm

// Box drawing glyphs, CP437.
const (
	glyphHLine       uint8 = 196
	glyphVLine       uint8 = 179
	glyphTopLeft     uint8 = 218
	glyphTopRight    uint8 = 191
	glyphBottomLeft  uint8 = 192
	glyphBottomRight uint8 = 217

	glyphDoubleHLine       uint8 = 205
	glyphDoubleVLine       uint8 = 186
	glyphDoubleTopLeft     uint8 = 201
	glyphDoubleTopRight    uint8 = 187
	glyphDoubleBottomLeft  uint8 = 200
	glyphDoubleBottomRight uint8 = 188
)

// Print writes text left to right starting at cell (x, y), one cell per
// rune. Text is converted to CP437; runes without a code print as '?'.
// Text does not wrap: it continues into the following row, and writes past
// the end of the buffer are dropped.
func (d *Dense) Print(x, y int, text string, fg, bg Color) {
	idx := d.At(x, y)
	for _, g := range EncodeCP437(text) {
		d.SetChar(idx, Cell{Glyph: g, Foreground: fg, Background: bg})
		idx++
	}
}

// PrintCenter prints text on row y, centered horizontally.
func (d *Dense) PrintCenter(y int, text string, fg, bg Color) {
	n := len(EncodeCP437(text))
	d.Print(d.width/2-n/2, y, text, fg, bg)
}

// Box draws a rectangle outline whose corners are (x, y) and (x+w, y+h),
// with single or double lines. The inside is left untouched.
func (d *Dense) Box(x, y, w, h int, fg, bg Color, double bool) {
	hl, vl := glyphHLine, glyphVLine
	tl, tr, bl, br := glyphTopLeft, glyphTopRight, glyphBottomLeft, glyphBottomRight
	if double {
		hl, vl = glyphDoubleHLine, glyphDoubleVLine
		tl, tr, bl, br = glyphDoubleTopLeft, glyphDoubleTopRight, glyphDoubleBottomLeft, glyphDoubleBottomRight
	}
	cell := func(g uint8) Cell {
		return Cell{Glyph: g, Foreground: fg, Background: bg}
	}

	for i := 1; i < w; i++ {
		d.SetCharAt(x+i, y, cell(hl))
		d.SetCharAt(x+i, y+h, cell(hl))
	}
	for i := 1; i < h; i++ {
		d.SetCharAt(x, y+i, cell(vl))
		d.SetCharAt(x+w, y+i, cell(vl))
	}

	d.SetCharAt(x, y, cell(tl))
	d.SetCharAt(x+w, y, cell(tr))
	d.SetCharAt(x, y+h, cell(bl))
	d.SetCharAt(x+w, y+h, cell(br))
}

// Fill sets every cell in [left, right) × [top, bottom).
func (d *Dense) Fill(left, top, right, bottom int, glyph uint8, fg, bg Color) {
	c := Cell{Glyph: glyph, Foreground: fg, Background: bg}
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			d.SetCharAt(x, y, c)
		}
	}
}

// DrawSprite copies sprite onto the terminal with its top-left tile at
// cell (x, y). Layers are drawn in ascending order; tiles that are missing
// or transparent leave the terminal cell as it is.
func (d *Dense) DrawSprite(x, y int, sprite Sprite) {
	w, h := sprite.Width(), sprite.Height()
	for layer := 0; layer < sprite.Layers(); layer++ {
		for sy := 0; sy < h; sy++ {
			for sx := 0; sx < w; sx++ {
				c, ok := sprite.Tile(layer, sx, sy)
				if !ok || sprite.Transparent(c) {
					continue
				}
				d.SetCharAt(x+sx, y+sy, c)
			}
		}
	}
}
