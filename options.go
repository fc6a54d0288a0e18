// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import (
	"log/slog"
	"time"

	"github.com/gogpu/editor/scene"
	"github.com/gogpu/gputypes"
)

// Default renderer settings.
const (
	DefaultVertexCapacity = 4096
	DefaultIndexCapacity  = 6144
	DefaultDestroyTimeout = 2 * time.Second
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := editor.NewRenderer(device, queue, surface, comp,
//	    editor.WithVertexCapacity(1<<14),
//	    editor.WithClearColor(scene.Black))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	vertexCapacity uint32
	indexCapacity  uint32
	copyAlignment  uint64
	clearColor     scene.Color
	format         gputypes.TextureFormat
	spirv          bool
	destroyTimeout time.Duration
	logger         *slog.Logger
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		vertexCapacity: DefaultVertexCapacity,
		indexCapacity:  DefaultIndexCapacity,
		clearColor:     scene.Black,
		format:         gputypes.TextureFormatBGRA8Unorm,
		destroyTimeout: DefaultDestroyTimeout,
	}
}

// WithVertexCapacity sets the fixed vertex capacity of the buffer arena.
// The arena never grows; geometry beyond it is dropped for the frame.
func WithVertexCapacity(n uint32) Option {
	return func(o *options) {
		o.vertexCapacity = n
	}
}

// WithIndexCapacity sets the fixed index capacity of the buffer arena.
func WithIndexCapacity(n uint32) Option {
	return func(o *options) {
		o.indexCapacity = n
	}
}

// WithCopyAlignment sets the device's minimum buffer-copy alignment used
// to size the index region. Zero keeps the WebGPU default of 4 bytes.
func WithCopyAlignment(n uint64) Option {
	return func(o *options) {
		o.copyAlignment = n
	}
}

// WithClearColor sets the background color each frame is cleared to.
func WithClearColor(c scene.Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithTextureFormat sets the surface color format the pipeline targets.
func WithTextureFormat(f gputypes.TextureFormat) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithSPIRV compiles the scene shader to SPIR-V with naga instead of
// handing WGSL to the device.
func WithSPIRV(enabled bool) Option {
	return func(o *options) {
		o.spirv = enabled
	}
}

// WithDestroyTimeout bounds how long Destroy waits for in-flight frames.
func WithDestroyTimeout(d time.Duration) Option {
	return func(o *options) {
		o.destroyTimeout = d
	}
}

// WithLogger sets the logger for the editor (see SetLogger).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
