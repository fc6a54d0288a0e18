// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned when a color name has no SVG 1.1 definition.
var ErrUnknownColor = errors.New("scene: unknown color name")

// Color is an opaque RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Common colors.
var (
	White = Color{R: 1, G: 1, B: 1}
	Black = Color{}
)

// FromColor converts a standard color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: float32(r) / 0xffff,
		G: float32(g) / 0xffff,
		B: float32(b) / 0xffff,
	}
}

// Named looks up a color by its SVG 1.1 name ("green", "steelblue").
// Lookup is case-insensitive.
func Named(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return FromColor(c), nil
}
