// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// destroyPollInterval is how often Destroy re-polls the queue while
// waiting for outstanding frames.
const destroyPollInterval = time.Millisecond

// submission is a command buffer in flight, tagged with its submission index.
type submission struct {
	cmdBuf hal.CommandBuffer
	index  uint64
}

// Session encodes and submits one render pass per frame for a Pipeline.
//
// Submission is fire-and-forget: the session never waits for the GPU while
// rendering. Command buffers of earlier frames are freed once
// Queue.PollCompleted reports their submission index done.
type Session struct {
	device   hal.Device
	queue    hal.Queue
	pipeline *Pipeline

	frames    uint64
	lastIndex uint64
	inflight  []submission
	destroyed bool
}

// NewSession creates a session rendering the given pipeline.
func NewSession(device hal.Device, queue hal.Queue, pipeline *Pipeline) (*Session, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if pipeline == nil {
		return nil, fmt.Errorf("gpu: nil pipeline")
	}
	return &Session{
		device:   device,
		queue:    queue,
		pipeline: pipeline,
	}, nil
}

// Pipeline returns the pipeline rendered by this session.
func (s *Session) Pipeline() *Pipeline {
	return s.pipeline
}

// RenderFrame clears view to clear and draws the pipeline's arena contents.
// All producers for the frame must have finished appending before the call.
func (s *Session) RenderFrame(view hal.TextureView, clear gputypes.Color) error {
	s.reclaim()

	encoder, err := s.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "editor_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("editor_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "editor_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clear,
		}},
	})
	recordErr := s.pipeline.Record(rp)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	if recordErr != nil {
		s.device.FreeCommandBuffer(cmdBuf)
		return fmt.Errorf("record draws: %w", recordErr)
	}

	index, err := s.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		s.device.FreeCommandBuffer(cmdBuf)
		return fmt.Errorf("submit: %w", err)
	}
	s.frames++
	s.lastIndex = index
	s.inflight = append(s.inflight, submission{cmdBuf: cmdBuf, index: index})

	slogger().Debug("frame submitted",
		"submission", index,
		"vertices", s.pipeline.arena.VertexCount(),
		"indices", s.pipeline.arena.IndexCount(),
		"inflight", len(s.inflight))
	return nil
}

// Frames returns the number of frames submitted.
func (s *Session) Frames() uint64 {
	return s.frames
}

// InFlight returns the number of submitted frames not yet reclaimed.
func (s *Session) InFlight() int {
	return len(s.inflight)
}

// reclaim frees command buffers whose submission has completed.
// Submission indices are monotonic, so completion is checked oldest first.
func (s *Session) reclaim() {
	if len(s.inflight) == 0 {
		return
	}
	done := s.queue.PollCompleted()
	n := 0
	for _, sub := range s.inflight {
		if sub.index > done {
			break
		}
		s.device.FreeCommandBuffer(sub.cmdBuf)
		n++
	}
	s.inflight = s.inflight[n:]
}

// Destroy waits up to timeout for outstanding frames, then releases the
// pipeline and its arena. Safe to call multiple times.
func (s *Session) Destroy(timeout time.Duration) {
	if s.destroyed {
		return
	}
	s.destroyed = true

	deadline := time.Now().Add(timeout)
	for s.queue.PollCompleted() < s.lastIndex {
		if time.Now().After(deadline) {
			slogger().Warn("session destroy: GPU did not finish", "timeout", timeout, "pending", len(s.inflight))
			break
		}
		time.Sleep(destroyPollInterval)
	}
	for _, sub := range s.inflight {
		s.device.FreeCommandBuffer(sub.cmdBuf)
	}
	s.inflight = nil
	s.pipeline.Destroy()
}
