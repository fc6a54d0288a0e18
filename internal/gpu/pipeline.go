// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/editor/scene"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DrawEncoder is the subset of hal.RenderPassEncoder used to record scene
// draws.
type DrawEncoder interface {
	SetPipeline(pipeline hal.RenderPipeline)
	SetVertexBuffer(slot uint32, buffer hal.Buffer, offset uint64)
	SetIndexBuffer(buffer hal.Buffer, format gputypes.IndexFormat, offset uint64)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
}

// PipelineDescriptor configures a Pipeline.
type PipelineDescriptor struct {
	Label string

	// Format is the color target format. Zero means BGRA8Unorm.
	Format gputypes.TextureFormat

	// Arena sizes the pipeline's own buffer arena.
	Arena ArenaDescriptor

	// SPIRV compiles the shader to SPIR-V with naga instead of passing WGSL
	// to the device.
	SPIRV bool
}

// Pipeline renders indexed scene geometry from the Arena it owns. There is
// no depth or stencil attachment: draw order is paint order.
type Pipeline struct {
	device hal.Device
	queue  hal.Queue
	desc   PipelineDescriptor

	arena *Arena

	// GPU objects, created lazily by ensurePipeline.
	shader     hal.ShaderModule
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
}

// NewPipeline creates a pipeline and its arena. GPU pipeline objects are
// not created until the first Record or an explicit Prepare.
func NewPipeline(device hal.Device, queue hal.Queue, desc PipelineDescriptor) (*Pipeline, error) {
	if desc.Label == "" {
		desc.Label = "scene"
	}
	if desc.Format == gputypes.TextureFormatUndefined {
		desc.Format = gputypes.TextureFormatBGRA8Unorm
	}
	if desc.Arena.Label == "" {
		desc.Arena.Label = desc.Label + "_arena"
	}
	arena, err := NewArena(device, queue, desc.Arena)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		device: device,
		queue:  queue,
		desc:   desc,
		arena:  arena,
	}, nil
}

// Arena returns the arena owned by this pipeline.
func (p *Pipeline) Arena() *Arena {
	return p.arena
}

// Prepare creates the GPU pipeline objects if they don't already exist.
func (p *Pipeline) Prepare() error {
	return p.ensurePipeline()
}

// Record records one indexed draw covering everything appended to the
// arena this frame. Callers must have joined all producers before Record
// reads the index cursor. This is a no-op on an empty arena.
func (p *Pipeline) Record(rp DrawEncoder) error {
	count := p.arena.IndexCount()
	if count == 0 {
		return nil
	}
	if err := p.ensurePipeline(); err != nil {
		return err
	}
	rp.SetPipeline(p.pipeline)
	rp.SetVertexBuffer(0, p.arena.VertexBuffer(), 0)
	rp.SetIndexBuffer(p.arena.IndexBuffer(), gputypes.IndexFormatUint32, 0)
	rp.DrawIndexed(count, 1, 0, 0, 0)
	return nil
}

func (p *Pipeline) ensurePipeline() error {
	if p.pipeline != nil {
		return nil
	}
	return p.createPipeline()
}

func (p *Pipeline) createPipeline() error {
	source, err := shaderSource(p.desc.SPIRV)
	if err != nil {
		return err
	}
	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  p.desc.Label + "_shader",
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("create %s shader: %w", p.desc.Label, err)
	}
	p.shader = shader

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: p.desc.Label + "_pipe_layout",
	})
	if err != nil {
		return fmt.Errorf("create %s pipeline layout: %w", p.desc.Label, err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  p.desc.Label + "_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    sceneVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.desc.Format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create %s pipeline: %w", p.desc.Label, err)
	}
	p.pipeline = pipeline

	slogger().Debug("pipeline created", "label", p.desc.Label, "format", p.desc.Format, "spirv", p.desc.SPIRV)
	return nil
}

// Destroy releases the pipeline objects and the arena in reverse creation
// order. Safe to call multiple times.
func (p *Pipeline) Destroy() {
	p.destroyPipeline()
	p.arena.Destroy()
}

func (p *Pipeline) destroyPipeline() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// sceneVertexLayout returns the vertex buffer layout matching scene.Vertex.
func sceneVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: scene.VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // color
			},
		},
	}
}
