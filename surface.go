// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import (
	"errors"

	"github.com/gogpu/editor/internal/gpu"
	"github.com/gogpu/wgpu/hal"
)

// Errors returned by the renderer and its collaborators.
var (
	// ErrSurfaceLost is returned by Surface.AcquireFrame when the surface
	// must be reconfigured before it can produce frames again.
	ErrSurfaceLost = errors.New("editor: surface lost")

	// ErrSurfaceTimeout is returned by Surface.AcquireFrame when no frame
	// became available in time.
	ErrSurfaceTimeout = errors.New("editor: surface timeout")

	// ErrNilProvider is returned when a nil device provider is passed.
	ErrNilProvider = errors.New("editor: nil device provider")

	// ErrRendererClosed is returned when drawing with a destroyed renderer.
	ErrRendererClosed = errors.New("editor: renderer is closed")

	// ErrCapacityExceeded is returned when geometry does not fit the
	// renderer's buffer arena.
	ErrCapacityExceeded = gpu.ErrCapacityExceeded
)

// Surface is the window-system side of the renderer. Implementations wrap
// the host's swapchain; the renderer never presents or configures a surface
// any other way.
type Surface interface {
	// AcquireFrame returns the texture view for the next frame. It returns
	// ErrSurfaceLost or ErrSurfaceTimeout (possibly wrapped) when the frame
	// must be skipped.
	AcquireFrame() (hal.TextureView, error)

	// Present shows the frame last acquired.
	Present() error

	// Configure resizes the swapchain.
	Configure(width, height uint32) error

	// RequestRedraw asks the host event loop for another Draw.
	RequestRedraw()
}

// isFrameSkip reports whether err means the current frame should be
// skipped rather than treated as a failure.
func isFrameSkip(err error) bool {
	return errors.Is(err, ErrSurfaceLost) || errors.Is(err, ErrSurfaceTimeout)
}
