// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import (
	"errors"
	"fmt"

	"github.com/gogpu/editor/scene"
)

// ErrUnsupportedPosition is returned for anchor positions that have no
// defined mapping yet.
var ErrUnsupportedPosition = errors.New("compositor: position not supported")

// WindowDimensions is the drawable size in pixels. Both sides are at least 1.
type WindowDimensions struct {
	Width  uint32
	Height uint32
}

// NewWindowDimensions floors both sides to 1 so that every division in the
// mapper is well-defined.
func NewWindowDimensions(width, height uint32) WindowDimensions {
	return WindowDimensions{Width: max(width, 1), Height: max(height, 1)}
}

func (d WindowDimensions) floored() WindowDimensions {
	return NewWindowDimensions(d.Width, d.Height)
}

func (d WindowDimensions) mids() (midW, midH float32) {
	d = d.floored()
	return float32(d.Width) / 2, float32(d.Height) / 2
}

// PositionKind identifies the variant of a Position.
type PositionKind uint8

const (
	// PositionPixel is an absolute pixel coordinate from the top-left origin.
	PositionPixel PositionKind = iota

	// PositionStart anchors to the left edge at a pixel row.
	PositionStart

	// PositionEnd anchors to the right edge at a pixel row.
	PositionEnd

	// PositionTop anchors to the top edge at a pixel column.
	PositionTop

	// PositionBottom anchors to the bottom edge at a pixel column.
	PositionBottom
)

var positionNames = [...]string{
	PositionPixel:  "pixel",
	PositionStart:  "start",
	PositionEnd:    "end",
	PositionTop:    "top",
	PositionBottom: "bottom",
}

// String returns the variant name.
func (k PositionKind) String() string {
	if int(k) < len(positionNames) {
		return positionNames[k]
	}
	return fmt.Sprintf("PositionKind(%d)", uint8(k))
}

// ParsePositionKind is the inverse of PositionKind.String.
func ParsePositionKind(s string) (PositionKind, error) {
	for k, name := range positionNames {
		if name == s {
			return PositionKind(k), nil //nolint:gosec // bounded by positionNames
		}
	}
	return 0, fmt.Errorf("compositor: unknown position kind %q", s)
}

// Position is a logical placement resolved against the current window
// dimensions. Only the fields relevant to Kind are used.
type Position struct {
	Kind PositionKind
	X, Y uint32
}

// Pixel returns an absolute pixel position.
func Pixel(x, y uint32) Position { return Position{Kind: PositionPixel, X: x, Y: y} }

// Start returns a position on the left edge.
func Start(y uint32) Position { return Position{Kind: PositionStart, Y: y} }

// End returns a position on the right edge.
func End(y uint32) Position { return Position{Kind: PositionEnd, Y: y} }

// Top returns a position on the top edge.
func Top(x uint32) Position { return Position{Kind: PositionTop, X: x} }

// Bottom returns a position on the bottom edge.
func Bottom(x uint32) Position { return Position{Kind: PositionBottom, X: x} }

// String formats the position for logs.
func (p Position) String() string {
	switch p.Kind {
	case PositionPixel:
		return fmt.Sprintf("pixel(%d,%d)", p.X, p.Y)
	case PositionStart, PositionEnd:
		return fmt.Sprintf("%s(y=%d)", p.Kind, p.Y)
	default:
		return fmt.Sprintf("%s(x=%d)", p.Kind, p.X)
	}
}

// mapAxis maps a pixel coordinate to NDC with a two-piece linear map:
// 0 and mid both map to 0, 2*mid maps to 1.
func mapAxis(v uint32, mid float32) float32 {
	f := float32(v)
	if f < mid {
		return -f / mid
	}
	return (f - mid) / mid
}

// ToVertex resolves p against dims into an NDC vertex.
// Start, Top and Bottom return ErrUnsupportedPosition.
func ToVertex(p Position, dims WindowDimensions) (scene.Vertex, error) {
	midW, midH := dims.mids()

	switch p.Kind {
	case PositionPixel:
		return scene.NewVertex(mapAxis(p.X, midW), mapAxis(p.Y, midH)), nil
	case PositionEnd:
		return scene.NewVertex(1.0, mapAxis(p.Y, midH)), nil
	default:
		return scene.Vertex{}, fmt.Errorf("%w: %s", ErrUnsupportedPosition, p.Kind)
	}
}

// Extent converts a pixel length to an NDC length on each axis.
func Extent(width, height float32, dims WindowDimensions) (w, h float32) {
	midW, midH := dims.mids()
	return width / midW, height / midH
}
