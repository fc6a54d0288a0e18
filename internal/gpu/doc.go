// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu holds the device-resident side of the editor renderer.
//
// It is an internal package built on the gogpu/wgpu HAL:
//
//   - Arena: a fixed-capacity pair of vertex and index buffers with atomic
//     append cursors. Producers reserve disjoint ranges and upload with
//     hal.Queue.WriteBuffer; the arena is reset once per frame.
//   - Pipeline: a triangle-list render pipeline that owns exactly one Arena
//     and records a single indexed draw bounded by the arena's index cursor.
//   - Session: encodes one render pass per frame, submits without waiting
//     and frees command buffers once Queue.PollCompleted passes them.
//
// # Frame protocol
//
//	arena.Reset()
//	// producers (possibly concurrent):
//	arena.Append(vertices, indices)
//	// barrier: join all producers
//	session.RenderFrame(view, clearColor)
//
// Reading the cursors before every producer has returned is a data race on
// the frame's contents, even though the cursor loads themselves are atomic.
package gpu
