package glyphterm

import "github.com/gogpu/glyphterm/surface"

// Option configures a terminal during creation.
// Use functional options to customize terminal behavior.
//
// Example:
//
//	// Terminal on the default resources and best available surface backend
//	term := glyphterm.NewDense("8x16", 80, 25)
//
//	// Foreground-only layer with its own registry
//	overlay := glyphterm.NewDense("8x16", 80, 25,
//	    glyphterm.WithBackground(false),
//	    glyphterm.WithResources(res))
type Option func(*options)

// options holds optional configuration for terminal creation.
type options struct {
	background   bool
	fonts        FontRegistry
	textures     TextureRegistry
	factory      surface.SurfaceFactory
	presentation Presentation
}

// defaultOptions returns the default terminal options.
func defaultOptions() options {
	return options{
		background:   true,
		fonts:        DefaultResources(),
		textures:     DefaultResources(),
		factory:      nil, // best available backend from the surface registry
		presentation: DefaultPresentation(),
	}
}

// WithBackground sets whether a Dense terminal draws cell backgrounds.
// It is fixed for the terminal's lifetime. Sparse terminals ignore it;
// each FreeCell decides for itself.
func WithBackground(enabled bool) Option {
	return func(o *options) {
		o.background = enabled
	}
}

// WithFonts sets the registry the font tag is resolved in.
func WithFonts(r FontRegistry) Option {
	return func(o *options) {
		if r != nil {
			o.fonts = r
		}
	}
}

// WithTextures sets the registry atlas textures are resolved in.
func WithTextures(r TextureRegistry) Option {
	return func(o *options) {
		if r != nil {
			o.textures = r
		}
	}
}

// WithResources uses r for both fonts and textures.
func WithResources(r *Resources) Option {
	return func(o *options) {
		if r != nil {
			o.fonts = r
			o.textures = r
		}
	}
}

// WithSurfaceFactory sets how the offscreen surface is created. By default
// the highest priority available backend of the surface registry is used.
//
// Example:
//
//	term := glyphterm.NewDense("8x16", 80, 25,
//	    glyphterm.WithSurfaceFactory(func(o surface.Options) (surface.Surface, error) {
//	        return surface.NewImageSurface(o.Width, o.Height), nil
//	    }))
func WithSurfaceFactory(f surface.SurfaceFactory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// WithPresentation sets the initial presentation.
func WithPresentation(p Presentation) Option {
	return func(o *options) {
		o.presentation = p
	}
}
