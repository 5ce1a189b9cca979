package glyphterm

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGB(255, 128, 0).RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%d, %d, %d, %d), want (65535, 32896, 0, 65535)", r, g, b, a)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff8000", RGB(255, 128, 0)},
		{"00FF7f", RGB(0, 255, 127)},
		{"#f80", RGB(255, 136, 0)},
		{"", Black},
		{"#12345", Black},
		{"zz0000", RGB(0, 0, 0)},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"opaque", color.RGBA{10, 20, 30, 255}, RGB(10, 20, 30)},
		{"premultiplied half", color.RGBA{50, 0, 0, 128}, RGB(99, 0, 0)},
		{"gray", color.Gray{200}, RGB(200, 200, 200)},
		{"self", Orange, Orange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		t    float64
		want Color
	}{
		{-1, Black},
		{0, Black},
		{0.5, RGB(128, 128, 128)},
		{1, White},
		{2, White},
	}
	for _, tt := range tests {
		if got := Lerp(Black, White, tt.t); got != tt.want {
			t.Errorf("Lerp(Black, White, %v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestColorWithAlpha(t *testing.T) {
	if got := Magenta.WithAlpha(7); got != (color.NRGBA{255, 0, 255, 7}) {
		t.Errorf("WithAlpha(7) = %v", got)
	}
	if !Black.IsBlack() || RGB(0, 0, 1).IsBlack() {
		t.Error("IsBlack() mismatch")
	}
}
