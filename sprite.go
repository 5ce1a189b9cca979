package glyphterm

import (
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Sprite is a multi-layer block of cells that can be stamped onto a Dense
// terminal with DrawSprite.
type Sprite interface {
	Width() int
	Height() int
	Layers() int

	// Tile returns the cell at (x, y) of layer, or false if there is none.
	Tile(layer, x, y int) (Cell, bool)

	// Transparent reports whether c should be skipped when drawing.
	Transparent(c Cell) bool
}

// TransparentBackground marks a tile as transparent in a LayeredSprite.
// It is the convention of the REXPaint editor.
var TransparentBackground = RGB(255, 0, 255)

// ErrInvalidSprite is returned when REXPaint data cannot be decoded.
var ErrInvalidSprite = errors.New("glyphterm: invalid sprite")

// LayeredSprite is an in-memory Sprite. New tiles are transparent.
type LayeredSprite struct {
	width, height int
	layers        [][]Cell
}

// NewLayeredSprite creates a w×h sprite with the given number of
// transparent layers.
func NewLayeredSprite(w, h, layers int) *LayeredSprite {
	s := &LayeredSprite{width: max(w, 0), height: max(h, 0)}
	for range max(layers, 0) {
		s.AddLayer()
	}
	return s
}

// AddLayer appends a transparent layer and returns its index.
func (s *LayeredSprite) AddLayer() int {
	l := make([]Cell, s.width*s.height)
	for i := range l {
		l[i] = Cell{Glyph: ' ', Background: TransparentBackground}
	}
	s.layers = append(s.layers, l)
	return len(s.layers) - 1
}

// Width implements Sprite.
func (s *LayeredSprite) Width() int { return s.width }

// Height implements Sprite.
func (s *LayeredSprite) Height() int { return s.height }

// Layers implements Sprite.
func (s *LayeredSprite) Layers() int { return len(s.layers) }

// Tile implements Sprite.
func (s *LayeredSprite) Tile(layer, x, y int) (Cell, bool) {
	i, ok := s.index(layer, x, y)
	if !ok {
		return Cell{}, false
	}
	return s.layers[layer][i], true
}

// SetTile sets the cell at (x, y) of layer. Out of range writes are ignored.
func (s *LayeredSprite) SetTile(layer, x, y int, c Cell) {
	if i, ok := s.index(layer, x, y); ok {
		s.layers[layer][i] = c
	}
}

// Transparent implements Sprite.
func (s *LayeredSprite) Transparent(c Cell) bool {
	return c.Background == TransparentBackground
}

func (s *LayeredSprite) index(layer, x, y int) (int, bool) {
	if layer < 0 || layer >= len(s.layers) || x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// ReadXP decodes a REXPaint .xp image: gzip-compressed little-endian data
// holding a version, a layer count, and per layer its size followed by
// column-major cells of a 32-bit glyph code and foreground and background
// RGB triples. Glyph codes above 255 are rejected.
func ReadXP(r io.Reader) (*LayeredSprite, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSprite, err)
	}
	defer func() {
		_ = zr.Close()
	}()

	var header struct {
		Version int32
		Layers  int32
	}
	if err := binary.Read(zr, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrInvalidSprite, err)
	}
	if header.Layers <= 0 || header.Layers > 64 {
		return nil, fmt.Errorf("%w: %d layers", ErrInvalidSprite, header.Layers)
	}

	type xpCell struct {
		Glyph  uint32
		FG, BG [3]uint8
	}

	var s *LayeredSprite
	for layer := range int(header.Layers) {
		var size struct{ W, H int32 }
		if err := binary.Read(zr, binary.LittleEndian, &size); err != nil {
			return nil, fmt.Errorf("%w: layer %d size: %w", ErrInvalidSprite, layer, err)
		}
		if size.W <= 0 || size.H <= 0 || size.W > 4096 || size.H > 4096 {
			return nil, fmt.Errorf("%w: layer %d is %dx%d", ErrInvalidSprite, layer, size.W, size.H)
		}
		if s == nil {
			s = &LayeredSprite{width: int(size.W), height: int(size.H)}
		} else if int(size.W) != s.width || int(size.H) != s.height {
			return nil, fmt.Errorf("%w: layer %d is %dx%d, want %dx%d",
				ErrInvalidSprite, layer, size.W, size.H, s.width, s.height)
		}
		s.AddLayer()

		for x := 0; x < s.width; x++ {
			for y := 0; y < s.height; y++ {
				var c xpCell
				if err := binary.Read(zr, binary.LittleEndian, &c); err != nil {
					return nil, fmt.Errorf("%w: layer %d cell %d,%d: %w", ErrInvalidSprite, layer, x, y, err)
				}
				if c.Glyph > 255 {
					return nil, fmt.Errorf("%w: glyph %d at %d,%d", ErrInvalidSprite, c.Glyph, x, y)
				}
				s.SetTile(layer, x, y, Cell{
					Glyph:      uint8(c.Glyph),
					Foreground: RGB(c.FG[0], c.FG[1], c.FG[2]),
					Background: RGB(c.BG[0], c.BG[1], c.BG[2]),
				})
			}
		}
	}
	return s, nil
}
