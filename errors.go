package glyphterm

import "errors"

var (
	// ErrFontNotLoaded is matched by *FontNotLoadedError.
	ErrFontNotLoaded = errors.New("glyphterm: font not loaded")

	// ErrTextureNotLoaded is matched by *TextureNotLoadedError.
	ErrTextureNotLoaded = errors.New("glyphterm: texture not loaded")

	// ErrInvalidFont is returned when a font has a non-positive cell size
	// or no texture tag.
	ErrInvalidFont = errors.New("glyphterm: invalid font")

	// ErrNilImage is returned when a nil image is loaded as a texture.
	ErrNilImage = errors.New("glyphterm: nil image")
)

// FontNotLoadedError is returned when a terminal's font tag cannot be
// resolved in its font registry.
type FontNotLoadedError struct {
	Tag string
}

func (e *FontNotLoadedError) Error() string {
	return "glyphterm: font not loaded: " + e.Tag
}

// Is reports whether target is ErrFontNotLoaded.
func (e *FontNotLoadedError) Is(target error) bool {
	return target == ErrFontNotLoaded
}

// TextureNotLoadedError is returned when the atlas texture named by a
// font cannot be resolved in the texture registry.
type TextureNotLoadedError struct {
	Tag string
}

func (e *TextureNotLoadedError) Error() string {
	return "glyphterm: texture not loaded: " + e.Tag
}

// Is reports whether target is ErrTextureNotLoaded.
func (e *TextureNotLoadedError) Is(target error) bool {
	return target == ErrTextureNotLoaded
}
