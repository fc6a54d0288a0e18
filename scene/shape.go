// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "fmt"

// ShapeKind identifies the variant of a Shape.
type ShapeKind uint8

const (
	// KindRectangle is an axis-aligned quad with independent width and height.
	KindRectangle ShapeKind = iota

	// KindSquare is a rectangle with equal sides.
	KindSquare
)

// String returns the kind name.
func (k ShapeKind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindSquare:
		return "square"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

// ParseShapeKind is the inverse of ShapeKind.String.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch s {
	case "rectangle", "rect":
		return KindRectangle, nil
	case "square":
		return KindSquare, nil
	}
	return 0, fmt.Errorf("scene: unknown shape kind %q", s)
}

// quadIndices triangulates a quad along the p0-p3 diagonal:
// p0-p1-p3 and p0-p3-p2.
var quadIndices = [6]uint32{0, 1, 3, 0, 3, 2}

// Shape is a closed variant over the drawable quad kinds. Coordinates are
// in the same space as Vertex positions (NDC once mapped).
type Shape struct {
	Kind   ShapeKind
	X, Y   float32 // center
	Width  float32
	Height float32
	Color  Color
}

// Rectangle returns a white rectangle centered at (x, y).
func Rectangle(x, y, height, width float32) Shape {
	return Shape{Kind: KindRectangle, X: x, Y: y, Width: width, Height: height, Color: White}
}

// Square returns a white square centered at (x, y).
func Square(x, y, side float32) Shape {
	return Shape{Kind: KindSquare, X: x, Y: y, Width: side, Height: side, Color: White}
}

// WithColor returns a copy of s painted with a uniform color.
func (s Shape) WithColor(c Color) Shape {
	s.Color = c
	return s
}

// Data returns the four corners in order bottom-left, bottom-right,
// top-left, top-right (for a y-up space).
func (s Shape) Data() []Vertex {
	v, _ := Extract(s)
	return v
}

// Indices returns the shape-local triangle list.
func (s Shape) Indices() []uint32 {
	_, idx := Extract(s)
	return idx
}

// Extract returns the vertices and local indices for a shape. Local indices
// only reference positions within the returned vertex slice.
func Extract(s Shape) ([]Vertex, []uint32) {
	w, h := s.Width, s.Height
	if s.Kind == KindSquare {
		h = w
	}
	hw, hh := w/2, h/2
	x1, x2 := s.X-hw, s.X+hw
	y1, y2 := s.Y-hh, s.Y+hh

	vertices := []Vertex{
		NewVertex(x1, y1).WithColor(s.Color),
		NewVertex(x2, y1).WithColor(s.Color),
		NewVertex(x1, y2).WithColor(s.Color),
		NewVertex(x2, y2).WithColor(s.Color),
	}
	indices := make([]uint32, len(quadIndices))
	copy(indices, quadIndices[:])
	return vertices, indices
}
