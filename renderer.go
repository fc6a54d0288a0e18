// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/editor/compositor"
	"github.com/gogpu/editor/internal/gpu"
	"github.com/gogpu/editor/scene"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"golang.org/x/sync/errgroup"
)

// FrameStats describes one rendered frame.
type FrameStats struct {
	Skipped       bool
	Vertices      uint32
	Indices       uint32
	DroppedLayers []string
}

// Renderer drives the per-frame sequence for the editor surface:
// compositor layers are built into scenes, uploaded into the pipeline's
// buffer arena, and drawn in a single indexed call.
//
// Draw and Resize are meant to be called from the host's render goroutine.
// They are serialized internally so a resize callback arriving on another
// goroutine is still safe.
type Renderer struct {
	device  hal.Device
	queue   hal.Queue
	surface Surface
	comp    *compositor.Compositor
	opts    options

	mu      sync.Mutex
	dims    compositor.WindowDimensions
	session *gpu.Session
	last    FrameStats
	closed  bool
}

// NewRenderer creates a renderer on an existing device and queue.
// The renderer owns its pipeline and arena but not the device, queue or
// surface.
func NewRenderer(device hal.Device, queue hal.Queue, surface Surface, comp *compositor.Compositor, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		SetLogger(o.logger)
	}
	if comp == nil {
		comp = compositor.New()
	}

	pipeline, err := gpu.NewPipeline(device, queue, gpu.PipelineDescriptor{
		Label:  "editor",
		Format: o.format,
		SPIRV:  o.spirv,
		Arena: gpu.ArenaDescriptor{
			Label:          "editor_arena",
			VertexCapacity: o.vertexCapacity,
			IndexCapacity:  o.indexCapacity,
			CopyAlignment:  o.copyAlignment,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("editor: create pipeline: %w", err)
	}
	session, err := gpu.NewSession(device, queue, pipeline)
	if err != nil {
		pipeline.Destroy()
		return nil, fmt.Errorf("editor: create session: %w", err)
	}

	Logger().Info("renderer created",
		"vertex_capacity", o.vertexCapacity,
		"index_capacity", o.indexCapacity,
		"format", o.format)

	return &Renderer{
		device:  device,
		queue:   queue,
		surface: surface,
		comp:    comp,
		opts:    o,
		dims:    compositor.NewWindowDimensions(1, 1),
		session: session,
	}, nil
}

// NewRendererFromProvider creates a renderer on the device shared by a
// host provider. The provider must expose HalDevice() and HalQueue()
// returning hal.Device and hal.Queue. The provider's surface format is
// used unless WithTextureFormat overrides it.
func NewRendererFromProvider(provider gpucontext.DeviceProvider, surface Surface, comp *compositor.Compositor, opts ...Option) (*Renderer, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("editor: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("editor: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("editor: provider HalQueue is not hal.Queue")
	}
	if f := provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		opts = append([]Option{WithTextureFormat(f)}, opts...)
	}
	return NewRenderer(device, queue, surface, comp, opts...)
}

// Compositor returns the layout the renderer draws.
func (r *Renderer) Compositor() *compositor.Compositor {
	return r.comp
}

// Dimensions returns the current drawable size.
func (r *Renderer) Dimensions() compositor.WindowDimensions {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dims
}

// LastFrame returns statistics for the most recent Draw.
func (r *Renderer) LastFrame() FrameStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Resize records the new drawable size (floored to 1x1), reconfigures the
// surface and requests a redraw.
func (r *Renderer) Resize(width, height uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRendererClosed
	}
	r.dims = compositor.NewWindowDimensions(width, height)
	if err := r.surface.Configure(r.dims.Width, r.dims.Height); err != nil {
		return fmt.Errorf("editor: configure surface: %w", err)
	}
	Logger().Debug("resized", "width", r.dims.Width, "height", r.dims.Height)
	r.surface.RequestRedraw()
	return nil
}

// Draw renders one frame: acquire, rebuild geometry, reset and refill the
// arena, submit, present. A lost or timed-out surface is reconfigured and
// the frame is skipped without error; the next redraw retries.
func (r *Renderer) Draw(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRendererClosed
	}

	view, err := r.surface.AcquireFrame()
	if err != nil {
		if !isFrameSkip(err) {
			return fmt.Errorf("editor: acquire frame: %w", err)
		}
		Logger().Warn("frame skipped", "err", err)
		r.last = FrameStats{Skipped: true}
		if cerr := r.surface.Configure(r.dims.Width, r.dims.Height); cerr != nil {
			return fmt.Errorf("editor: reconfigure surface: %w", cerr)
		}
		r.surface.RequestRedraw()
		return nil
	}

	stats, err := r.upload(ctx)
	if err != nil {
		return err
	}
	c := r.opts.clearColor
	bg := gputypes.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: 1}
	if err := r.session.RenderFrame(view, bg); err != nil {
		return fmt.Errorf("editor: render frame: %w", err)
	}
	if err := r.surface.Present(); err != nil {
		if !isFrameSkip(err) {
			return fmt.Errorf("editor: present: %w", err)
		}
		Logger().Warn("present skipped", "err", err)
		r.surface.RequestRedraw()
	}
	r.last = stats
	return nil
}

// upload resets the arena and fills it with this frame's layers.
//
// Layer scenes are built concurrently; errgroup.Wait is the barrier after
// which they are appended in layer order so painter's order is stable.
// Only after the last append is the index cursor read to bound the draw.
func (r *Renderer) upload(ctx context.Context) (FrameStats, error) {
	arena := r.session.Pipeline().Arena()
	arena.Reset()

	n := r.comp.Layers()
	scenes := make([]*scene.Scene, n)
	buildErrs := make([]error, n)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := r.comp.LayerScene(i, r.dims)
			if err != nil {
				// A broken layer drops out of the frame; it does not fail it.
				buildErrs[i] = err
				return nil
			}
			scenes[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.releaseAll(scenes)
		return FrameStats{}, fmt.Errorf("editor: build layers: %w", err)
	}

	var stats FrameStats
	for i, s := range scenes {
		name := r.comp.LayerName(i)
		if buildErrs[i] != nil {
			Logger().Warn("layer dropped", "layer", name, "err", buildErrs[i])
			stats.DroppedLayers = append(stats.DroppedLayers, name)
			continue
		}
		if _, err := arena.AppendScene(s); err != nil {
			if !errors.Is(err, gpu.ErrCapacityExceeded) {
				r.releaseAll(scenes)
				return FrameStats{}, fmt.Errorf("editor: upload layer %q: %w", name, err)
			}
			Logger().Warn("layer dropped", "layer", name, "vertices", s.Len(), "err", err)
			stats.DroppedLayers = append(stats.DroppedLayers, name)
		}
	}
	r.releaseAll(scenes)

	stats.Vertices = arena.VertexCount()
	stats.Indices = arena.IndexCount()
	return stats, nil
}

func (r *Renderer) releaseAll(scenes []*scene.Scene) {
	for _, s := range scenes {
		if s != nil {
			r.comp.Release(s)
		}
	}
}

// Destroy waits for in-flight frames (bounded by WithDestroyTimeout) and
// releases the pipeline and arena. Safe to call multiple times.
func (r *Renderer) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.session.Destroy(r.opts.destroyTimeout)
	Logger().Info("renderer destroyed")
}
