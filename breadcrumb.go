package breadcrumb

import (
	"encoding/json"
	"fmt"
	"sync"
)

type itemMeta struct {
	text     string
	textFunc func() string
	order    int
}

// Breadcrumb builds breadcrumb trees from the routes enumerated by a
// RouteSource. The route list is loaded once and cached for the lifetime of
// the value; call ResetRoutes after mutating the host router's table.
type Breadcrumb struct {
	source   RouteSource
	rootText string
	meta     map[string]itemMeta

	mu     sync.Mutex
	routes []Route
	loaded bool
}

// New creates a Breadcrumb extension reading routes from source.
func New(source RouteSource, options ...func(*Breadcrumb)) *Breadcrumb {
	b := &Breadcrumb{
		source:   source,
		rootText: "Home",
		meta:     make(map[string]itemMeta),
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// WithRootText overrides the label of the synthesized root node.
func WithRootText(text string) func(*Breadcrumb) {
	return func(b *Breadcrumb) {
		b.rootText = text
	}
}

// Set registers the display text and sort order for a route. The key is
// either the route's endpoint identifier or its URL; when both are
// registered, the endpoint entry wins.
func (b *Breadcrumb) Set(key, text string, order int) {
	b.meta[key] = itemMeta{text: text, order: order}
}

// SetFunc registers a text function for a route, evaluated each time the
// tree is serialized or rendered.
func (b *Breadcrumb) SetFunc(key string, text func() string, order int) {
	b.meta[key] = itemMeta{textFunc: text, order: order}
}

// ResetRoutes drops the cached route list. The next tree build re-reads the
// RouteSource.
func (b *Breadcrumb) ResetRoutes() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes = nil
	b.loaded = false
}

// cachedRoutes returns the normalized route list, reading the source on
// first use.
func (b *Breadcrumb) cachedRoutes() ([]Route, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.loaded {
		return b.routes, nil
	}
	routes, err := b.source.Routes()
	if err != nil {
		return nil, fmt.Errorf("breadcrumb: reading routes: %w", err)
	}
	normalized := make([]Route, 0, len(routes))
	for _, rt := range routes {
		if rt.URL == "" {
			continue
		}
		rt.URL = normalizeURL(rt.URL)
		normalized = append(normalized, rt)
	}
	b.routes = normalized
	b.loaded = true
	return b.routes, nil
}

// lookupMeta resolves registered metadata for a route, trying the endpoint
// identifier first, then the normalized URL.
func (b *Breadcrumb) lookupMeta(rt Route) (itemMeta, bool) {
	if m, ok := b.meta[rt.Endpoint]; ok {
		return m, true
	}
	if m, ok := b.meta[rt.URL]; ok {
		return m, true
	}
	return itemMeta{}, false
}

// JSON returns the breadcrumb tree for path as an indented JSON document.
// It returns "{}" when no routes are registered.
func (b *Breadcrumb) JSON(path string) (string, error) {
	tree, err := b.Tree(path)
	if err != nil {
		return "", err
	}
	if tree == nil {
		return "{}", nil
	}
	buf, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return "", fmt.Errorf("breadcrumb: encoding tree: %w", err)
	}
	return string(buf), nil
}
