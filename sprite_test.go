package glyphterm

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"testing"
)

type xpTile struct {
	glyph  uint32
	fg, bg Color
}

// encodeXP builds REXPaint data; layers[l][x][y] is column-major.
func encodeXP(t *testing.T, layers [][][]xpTile) []byte {
	t.Helper()
	var raw bytes.Buffer
	put := func(v any) {
		if err := binary.Write(&raw, binary.LittleEndian, v); err != nil {
			t.Fatal(err)
		}
	}

	put(int32(-1))
	put(int32(len(layers)))
	for _, l := range layers {
		put(int32(len(l)))
		put(int32(len(l[0])))
		for _, col := range l {
			for _, c := range col {
				put(c.glyph)
				put([3]uint8{c.fg.R, c.fg.G, c.fg.B})
				put([3]uint8{c.bg.R, c.bg.G, c.bg.B})
			}
		}
	}

	var out bytes.Buffer
	zw := gzip.NewWriter(&out)
	if _, err := zw.Write(raw.Bytes()); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return out.Bytes()
}

func TestLayeredSprite(t *testing.T) {
	s := NewLayeredSprite(3, 2, 1)
	if s.Width() != 3 || s.Height() != 2 || s.Layers() != 1 {
		t.Fatalf("size = %dx%dx%d, want 3x2x1", s.Width(), s.Height(), s.Layers())
	}

	c, ok := s.Tile(0, 2, 1)
	if !ok || !s.Transparent(c) {
		t.Errorf("new tile = %+v, %v; want transparent", c, ok)
	}

	want := Cell{Glyph: '@', Foreground: Yellow, Background: Black}
	s.SetTile(0, 2, 1, want)
	if got, _ := s.Tile(0, 2, 1); got != want {
		t.Errorf("Tile() = %+v, want %+v", got, want)
	}

	for _, p := range [][3]int{{1, 0, 0}, {0, 3, 0}, {0, 0, -1}, {-1, 0, 0}} {
		if _, ok := s.Tile(p[0], p[1], p[2]); ok {
			t.Errorf("Tile(%d, %d, %d) ok = true, want false", p[0], p[1], p[2])
		}
		s.SetTile(p[0], p[1], p[2], want) // ignored
	}

	if l := s.AddLayer(); l != 1 || s.Layers() != 2 {
		t.Errorf("AddLayer() = %d, Layers() = %d; want 1, 2", l, s.Layers())
	}
}

func TestReadXP(t *testing.T) {
	see := TransparentBackground
	data := encodeXP(t, [][][]xpTile{
		{ // layer 0, 2 columns of 1 row
			{{'a', Red, Blue}},
			{{'b', Green, Black}},
		},
		{
			{{'c', White, Black}},
			{{'d', White, see}},
		},
	})

	s, err := ReadXP(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadXP() = %v", err)
	}
	if s.Width() != 2 || s.Height() != 1 || s.Layers() != 2 {
		t.Fatalf("size = %dx%dx%d, want 2x1x2", s.Width(), s.Height(), s.Layers())
	}
	if got, _ := s.Tile(0, 1, 0); got != (Cell{Glyph: 'b', Foreground: Green, Background: Black}) {
		t.Errorf("Tile(0, 1, 0) = %+v", got)
	}

	d := newTestDense(t, 3, 1)
	d.DrawSprite(1, 0, s)
	if got, _ := d.Cell(1); got.Glyph != 'c' {
		t.Errorf("cell 1 glyph = %q, want 'c' from layer 1", got.Glyph)
	}
	if got, _ := d.Cell(2); got.Glyph != 'b' {
		t.Errorf("cell 2 glyph = %q, want 'b' under transparent layer 1", got.Glyph)
	}
}

func TestReadXPInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not gzip", []byte("hello")},
		{"glyph out of range", encodeXP(t, [][][]xpTile{{{{300, White, Black}}}})},
		{"mismatched layers", encodeXP(t, [][][]xpTile{
			{{{'a', White, Black}}},
			{{{'a', White, Black}}, {{'b', White, Black}}},
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadXP(bytes.NewReader(tt.data)); !errors.Is(err, ErrInvalidSprite) {
				t.Errorf("ReadXP() = %v, want ErrInvalidSprite", err)
			}
		})
	}

	// Truncated data.
	full := encodeXP(t, [][][]xpTile{{{{'a', White, Black}}}})
	var raw bytes.Buffer
	zr, err := gzip.NewReader(bytes.NewReader(full))
	if err != nil {
		t.Fatal(err)
	}
	_, _ = raw.ReadFrom(zr)
	var short bytes.Buffer
	zw := gzip.NewWriter(&short)
	_, _ = zw.Write(raw.Bytes()[:raw.Len()-3])
	_ = zw.Close()
	if _, err := ReadXP(&short); !errors.Is(err, ErrInvalidSprite) {
		t.Errorf("ReadXP(truncated) = %v, want ErrInvalidSprite", err)
	}
}
