// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"encoding/binary"
	"math"
)

// VertexStride is the byte size of one encoded vertex.
// Layout per vertex:
//
//	position (vec3<f32>) = 12 bytes (location 0)
//	color    (vec3<f32>) = 12 bytes (location 1)
//
// Total = 24 bytes per vertex.
const VertexStride = 24

// Vertex is a position in normalized device coordinates plus an RGB color.
// Z is carried for the vertex layout but is not used for depth testing.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// NewVertex returns a white vertex at (x, y, 0).
func NewVertex(x, y float32) Vertex {
	return Vertex{
		Position: [3]float32{x, y, 0},
		Color:    [3]float32{1, 1, 1},
	}
}

// X returns the horizontal coordinate.
func (v Vertex) X() float32 { return v.Position[0] }

// Y returns the vertical coordinate.
func (v Vertex) Y() float32 { return v.Position[1] }

// WithColor returns a copy of v with the given color.
func (v Vertex) WithColor(c Color) Vertex {
	v.Color = [3]float32{c.R, c.G, c.B}
	return v
}

// AppendBytes appends the little-endian device encoding of v to dst.
func (v Vertex) AppendBytes(dst []byte) []byte {
	for _, f := range v.Position {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	for _, f := range v.Color {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

// EncodeVertices encodes vertices into the device layout.
func EncodeVertices(vertices []Vertex) []byte {
	buf := make([]byte, 0, len(vertices)*VertexStride)
	for _, v := range vertices {
		buf = v.AppendBytes(buf)
	}
	return buf
}
