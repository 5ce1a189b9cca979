// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

// SurfaceFactory creates a new Surface with the given options.
// Terminals call it every time they are resized.
type SurfaceFactory func(opts Options) (Surface, error)

// Backend describes a registered surface backend.
type Backend struct {
	// Name is the unique identifier of the backend.
	Name string

	// Priority orders automatic selection, highest first. Backends with
	// equal priority are ordered by name.
	Priority int

	// Factory creates surfaces.
	Factory SurfaceFactory

	// Available reports whether the backend can be used on this system.
	// It is evaluated on every lookup.
	Available func() bool
}

func (b *Backend) available() bool {
	return b.Available == nil || b.Available()
}

// Registry is a named set of surface backends.
//
//	func init() {
//	    surface.Register("recording", 1, recordingFactory, nil)
//	}
//
//	s, err := surface.NewSurfaceByName("image", 640, 400)
//	s, err := surface.NewSurface(640, 400) // best available
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry creates an empty registry. Most code uses the package level
// registry through Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

var defaultRegistry = NewRegistry()

// Register adds a backend to the package registry, replacing any backend
// of the same name. A nil available means always available.
func Register(name string, priority int, factory SurfaceFactory, available func() bool) {
	defaultRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the package registry.
func Unregister(name string) {
	defaultRegistry.Unregister(name)
}

// List returns the names of all backends in the package registry in
// selection order.
func List() []string {
	return defaultRegistry.List()
}

// Available is like List but skips unavailable backends.
func Available() []string {
	return defaultRegistry.Available()
}

// Get returns a copy of the named backend of the package registry.
func Get(name string) (Backend, bool) {
	return defaultRegistry.Get(name)
}

// NewSurface creates a width×height surface with the best available backend.
func NewSurface(width, height int) (Surface, error) {
	return defaultRegistry.NewSurface(DefaultOptions(width, height))
}

// NewSurfaceWithOptions is like NewSurface with full options.
func NewSurfaceWithOptions(opts Options) (Surface, error) {
	return defaultRegistry.NewSurface(opts)
}

// NewSurfaceByName creates a width×height surface with the named backend.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return defaultRegistry.NewSurfaceByName(name, DefaultOptions(width, height))
}

// Register adds a backend, replacing any backend of the same name.
func (r *Registry) Register(name string, priority int, factory SurfaceFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backends == nil {
		r.backends = make(map[string]Backend)
	}
	r.backends[name] = Backend{Name: name, Priority: priority, Factory: factory, Available: available}
}

// Unregister removes a backend.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.backends, name)
}

// List returns all backend names in selection order.
func (r *Registry) List() []string {
	return names(r.ordered(false))
}

// Available returns the names of available backends in selection order.
func (r *Registry) Available() []string {
	return names(r.ordered(true))
}

// Get returns a copy of the named backend.
func (r *Registry) Get(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.backends[name]
	return b, ok
}

// NewSurface tries the available backends in selection order and returns
// the first surface created. If every factory fails, the last error is
// returned.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	candidates := r.ordered(true)
	if len(candidates) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, b := range candidates {
		s, err := b.Factory(opts)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewSurfaceByName creates a surface with the named backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	b, ok := r.Get(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return b.Factory(opts)
}

// ordered returns a snapshot of the backends sorted for selection.
func (r *Registry) ordered(onlyAvailable bool) []Backend {
	r.mu.RLock()
	all := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		all = append(all, b)
	}
	r.mu.RUnlock()

	if onlyAvailable {
		all = slices.DeleteFunc(all, func(b Backend) bool { return !b.available() })
	}
	slices.SortFunc(all, func(a, b Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return all
}

func names(backends []Backend) []string {
	if len(backends) == 0 {
		return nil
	}
	out := make([]string, len(backends))
	for i, b := range backends {
		out[i] = b.Name
	}
	return out
}

var (
	// ErrNoBackendAvailable is returned when no surface backend is
	// registered or available.
	ErrNoBackendAvailable = errors.New("surface: no backend available")

	// ErrSurfaceClosed is returned by operations on a closed surface.
	ErrSurfaceClosed = errors.New("surface: surface is closed")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)
	Register("recording", 1, func(opts Options) (Surface, error) {
		return NewRecorder(opts.Width, opts.Height), nil
	}, nil)
}
