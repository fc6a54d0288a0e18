// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene accumulates shapes into draw-ready geometry.
//
// A Scene holds one contiguous vertex list and one index list whose entries
// are rebased so that every index resolves against the shared vertex list.
// Insertion order is paint order: there is no depth test, so later shapes
// cover earlier ones.
//
//	s := scene.New()
//	s.Add(scene.Rectangle(0, 0, 0.5, 1))
//	s.Add(scene.Square(0.5, 0.5, 0.2).WithColor(green))
//	upload(s.Data(), s.Indices())
package scene

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange reports an index that does not resolve against the
// scene's vertex list. It indicates a programming error.
var ErrIndexOutOfRange = errors.New("scene: index out of range")

// Scene is an append-only collection of triangulated shapes.
// Scene is not safe for concurrent use.
type Scene struct {
	vertices []Vertex
	indices  []uint32
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends a shape's vertices and its indices rebased by the number of
// vertices already in the scene.
func (s *Scene) Add(shape Shape) {
	vertices, indices := Extract(shape)
	s.append(vertices, indices)
}

// AddAll adds shapes in order.
func (s *Scene) AddAll(shapes ...Shape) {
	for _, shape := range shapes {
		s.Add(shape)
	}
}

// Merge appends another scene's geometry after this scene's geometry.
func (s *Scene) Merge(other *Scene) {
	if other == nil {
		return
	}
	s.append(other.vertices, other.indices)
}

func (s *Scene) append(vertices []Vertex, indices []uint32) {
	base := uint32(len(s.vertices)) //nolint:gosec // vertex count fits uint32
	s.vertices = append(s.vertices, vertices...)
	for _, i := range indices {
		s.indices = append(s.indices, i+base)
	}
}

// Data returns the vertex list. The slice must not be modified.
func (s *Scene) Data() []Vertex {
	return s.vertices
}

// Indices returns the rebased index list. The slice must not be modified.
func (s *Scene) Indices() []uint32 {
	return s.indices
}

// Len returns the number of vertices.
func (s *Scene) Len() int {
	return len(s.vertices)
}

// IsEmpty reports whether the scene has no geometry.
func (s *Scene) IsEmpty() bool {
	return len(s.vertices) == 0
}

// Reset clears the scene for reuse without deallocating memory.
func (s *Scene) Reset() {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}

// Validate checks that every index is smaller than the vertex count.
func (s *Scene) Validate() error {
	n := uint32(len(s.vertices)) //nolint:gosec // vertex count fits uint32
	for pos, i := range s.indices {
		if i >= n {
			return fmt.Errorf("%w: indices[%d]=%d, vertices=%d", ErrIndexOutOfRange, pos, i, n)
		}
	}
	return nil
}

// VertexBytes encodes the vertex list into the device layout.
func (s *Scene) VertexBytes() []byte {
	return EncodeVertices(s.vertices)
}
