package main

import (
	"github.com/gogpu/editor"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu"
	"github.com/gogpu/wgpu/hal"
)

// hostSurface adapts the gogpu window to editor.Surface. gogpu acquires
// and presents the swapchain texture around each OnDraw callback, so the
// adapter only hands the current view to the renderer.
type hostSurface struct {
	window gpucontext.WindowProvider
	view   hal.TextureView
}

func newHostSurface(window gpucontext.WindowProvider) *hostSurface {
	return &hostSurface{window: window}
}

// setFrame records the surface view for the current OnDraw.
func (s *hostSurface) setFrame(v any) {
	s.view = halTextureView(v)
}

func (s *hostSurface) AcquireFrame() (hal.TextureView, error) {
	view := s.view
	s.view = nil
	if view == nil {
		return nil, editor.ErrSurfaceTimeout
	}
	return view, nil
}

// Present is a no-op: gogpu presents after OnDraw returns.
func (s *hostSurface) Present() error { return nil }

// Configure is a no-op: gogpu reconfigures its swapchain on resize.
func (s *hostSurface) Configure(width, height uint32) error {
	editor.Logger().Debug("surface configured", "width", width, "height", height)
	return nil
}

func (s *hostSurface) RequestRedraw() { s.window.RequestRedraw() }

// halTextureView unwraps the view handle gogpu exposes for the surface.
func halTextureView(v any) hal.TextureView {
	switch tv := v.(type) {
	case nil:
		return nil
	case interface{ HalTextureView() hal.TextureView }:
		return tv.HalTextureView()
	case hal.TextureView:
		return tv
	case gpucontext.TextureView:
		if tv.IsNil() {
			return nil
		}
		return (*wgpu.TextureView)(tv.Pointer()).HalTextureView()
	}
	return nil
}
