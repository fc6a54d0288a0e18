// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package compositor maps logical editor layout into scene geometry.
//
// Elements are placed with a Position (an absolute pixel or an anchor on a
// window edge) and sized in pixels. The compositor resolves them against
// the current WindowDimensions into normalized device coordinates and
// accumulates them into a scene.Scene, layer by layer. Layers are painted
// in order, elements within a layer in insertion order.
package compositor

import (
	"fmt"
	"sync"

	"github.com/gogpu/editor/scene"
)

// Element is a single shape placed by an anchor position.
type Element struct {
	Shape  scene.ShapeKind
	Anchor Position

	// Width and Height are in pixels. Squares use Width only.
	Width  float32
	Height float32

	Color scene.Color
}

// Resolve maps the element into an NDC shape for the given dimensions.
func (e Element) Resolve(dims WindowDimensions) (scene.Shape, error) {
	center, err := ToVertex(e.Anchor, dims)
	if err != nil {
		return scene.Shape{}, fmt.Errorf("resolve %s at %s: %w", e.Shape, e.Anchor, err)
	}
	height := e.Height
	if e.Shape == scene.KindSquare {
		height = e.Width
	}
	// A pixel square is only square in NDC when the window is, so both
	// kinds are emitted as rectangles with per-axis extents.
	w, h := Extent(e.Width, height, dims)
	return scene.Rectangle(center.X(), center.Y(), h, w).WithColor(e.Color), nil
}

// Layer is a named, ordered group of elements.
type Layer struct {
	Name     string
	Elements []Element
}

// Compositor holds the editor's layers. It is safe for concurrent use:
// layer scenes may be built from several goroutines while the layout is
// being edited.
type Compositor struct {
	mu     sync.RWMutex
	layers []Layer
	pool   *scene.Pool
}

// New creates a compositor with the given layers.
func New(layers ...Layer) *Compositor {
	return &Compositor{
		layers: layers,
		pool:   scene.NewPool(),
	}
}

// AddLayer appends a layer painted above all existing layers and returns
// its index.
func (c *Compositor) AddLayer(l Layer) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layers = append(c.layers, l)
	return len(c.layers) - 1
}

// Add appends an element to layer i.
func (c *Compositor) Add(i int, e Element) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.layers) {
		return fmt.Errorf("compositor: layer %d out of range [0,%d)", i, len(c.layers))
	}
	c.layers[i].Elements = append(c.layers[i].Elements, e)
	return nil
}

// SetLayers replaces every layer. Scenes already built from the old
// layout stay valid until released.
func (c *Compositor) SetLayers(layers ...Layer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layers = layers
}

// Layers returns the number of layers.
func (c *Compositor) Layers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.layers)
}

// LayerName returns the name of layer i.
func (c *Compositor) LayerName(i int) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i < 0 || i >= len(c.layers) {
		return ""
	}
	return c.layers[i].Name
}

// LayerScene builds the geometry of layer i. The returned scene comes from
// an internal pool; pass it to Release when it is no longer needed.
func (c *Compositor) LayerScene(i int, dims WindowDimensions) (*scene.Scene, error) {
	c.mu.RLock()
	if i < 0 || i >= len(c.layers) {
		n := len(c.layers)
		c.mu.RUnlock()
		return nil, fmt.Errorf("compositor: layer %d out of range [0,%d)", i, n)
	}
	elements := c.layers[i].Elements
	name := c.layers[i].Name
	c.mu.RUnlock()

	s := c.pool.Get()
	for j, e := range elements {
		shape, err := e.Resolve(dims)
		if err != nil {
			c.pool.Put(s)
			return nil, fmt.Errorf("layer %q element %d: %w", name, j, err)
		}
		s.Add(shape)
	}
	return s, nil
}

// Scene builds all layers, in order, into a single scene.
func (c *Compositor) Scene(dims WindowDimensions) (*scene.Scene, error) {
	out := scene.New()
	for i := 0; i < c.Layers(); i++ {
		ls, err := c.LayerScene(i, dims)
		if err != nil {
			return nil, err
		}
		out.Merge(ls)
		c.Release(ls)
	}
	return out, nil
}

// Release returns a scene obtained from LayerScene to the pool.
func (c *Compositor) Release(s *scene.Scene) {
	c.pool.Put(s)
}
