package glyphterm

import "testing"

func TestEncodeCP437(t *testing.T) {
	tests := []struct {
		in   string
		want []uint8
	}{
		{"", []uint8{}},
		{"Hi!", []uint8{'H', 'i', '!'}},
		{"é", []uint8{130}},
		{"☺♥", []uint8{1, 3}},
		{"─│┌", []uint8{196, 179, 218}},
		{"█⌂", []uint8{219, 127}},
		{"日本", []uint8{'?', '?'}},
		{"\t", []uint8{9}},
	}
	for _, tt := range tests {
		got := EncodeCP437(tt.in)
		if string(got) != string(tt.want) {
			t.Errorf("EncodeCP437(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGlyphRune(t *testing.T) {
	tests := []struct {
		g    uint8
		want rune
	}{
		{0, ' '},
		{1, '☺'},
		{31, '▼'},
		{'A', 'A'},
		{127, '⌂'},
		{176, '░'},
		{219, '█'},
		{255, '\u00a0'},
	}
	for _, tt := range tests {
		if got := GlyphRune(tt.g); got != tt.want {
			t.Errorf("GlyphRune(%d) = %q, want %q", tt.g, got, tt.want)
		}
	}
}

func TestGlyphRuneRoundTrip(t *testing.T) {
	for g := 1; g < 256; g++ {
		r := GlyphRune(uint8(g))
		if got := EncodeCP437(string(r)); len(got) != 1 || got[0] != uint8(g) {
			t.Errorf("EncodeCP437(GlyphRune(%d) = %q) = %v", g, r, got)
		}
	}
}
