package glyphterm

import "golang.org/x/text/encoding/charmap"

// controlGlyphs are the pictures the IBM PC font shows for codes below 32.
// charmap decodes those codes to control characters instead.
var controlGlyphs = [32]rune{
	' ', '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
}

const houseGlyph = '⌂' // code 127

var pictureCodes = func() map[rune]uint8 {
	m := make(map[rune]uint8, len(controlGlyphs))
	for i, r := range controlGlyphs[1:] {
		m[r] = uint8(i + 1)
	}
	m[houseGlyph] = 127
	return m
}()

// EncodeCP437 converts UTF-8 text to one glyph code per rune. Runes with
// no CP437 code become '?'.
func EncodeCP437(s string) []uint8 {
	out := make([]uint8, 0, len(s))
	for _, r := range s {
		out = append(out, encodeRune(r))
	}
	return out
}

func encodeRune(r rune) uint8 {
	if g, ok := pictureCodes[r]; ok {
		return g
	}
	if g, ok := charmap.CodePage437.EncodeRune(r); ok {
		return g
	}
	return '?'
}

// GlyphRune returns the Unicode character drawn for glyph g, using the
// picture forms for codes 0-31 and 127.
func GlyphRune(g uint8) rune {
	switch {
	case g < 32:
		return controlGlyphs[g]
	case g == 127:
		return houseGlyph
	}
	return charmap.CodePage437.DecodeByte(g)
}
