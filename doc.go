// Package editor renders the surface of a text editor with the GPU.
//
// # Overview
//
// The editor layout is described by a compositor.Compositor: named layers
// of elements, each a rectangle or square anchored at a pixel position or
// a window edge. Every frame the Renderer resolves the layout against the
// current window size into normalized device coordinates, uploads the
// resulting scene.Scene geometry into a fixed-capacity GPU buffer arena,
// and draws it with a single indexed draw call.
//
// # Quick Start
//
//	comp := compositor.New(compositor.Layer{
//	    Name: "cursor",
//	    Elements: []compositor.Element{{
//	        Shape:  scene.KindRectangle,
//	        Anchor: compositor.Pixel(400, 300),
//	        Width:  10, Height: 20,
//	        Color:  scene.White,
//	    }},
//	})
//
//	r, err := editor.NewRenderer(device, queue, surface, comp)
//	if err != nil {
//	    return err
//	}
//	defer r.Destroy()
//
//	_ = r.Resize(800, 600)
//	_ = r.Draw(ctx)
//
// # Frames
//
// Draw acquires a frame from the Surface, resets the arena, builds layer
// scenes concurrently and appends them in layer order, then submits one
// render pass and presents. Layers that do not fit the arena are dropped
// for that frame with a warning; the arena never grows. A lost or timed
// out surface is reconfigured and the frame skipped.
//
// # Coordinate System
//
// Pixel positions are mapped into NDC in [-1, 1] per axis, piecewise
// around the window midpoint (see compositor.ToVertex). Geometry has no
// depth, so paint order is draw order.
package editor

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
