// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/editor/scene"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Arena errors.
var (
	// ErrCapacityExceeded is returned when an append would overflow a
	// fixed-capacity arena region. The cursor is left unchanged.
	ErrCapacityExceeded = errors.New("gpu: arena capacity exceeded")

	// ErrInvalidCapacity is returned when an arena is created with a zero
	// vertex or index capacity.
	ErrInvalidCapacity = errors.New("gpu: invalid arena capacity")

	// ErrArenaDestroyed is returned when appending to a destroyed arena.
	ErrArenaDestroyed = errors.New("gpu: arena has been destroyed")

	// ErrNilDevice is returned when GPU objects are created without a
	// device or queue.
	ErrNilDevice = errors.New("gpu: device is nil")
)

// IndexStride is the byte size of one index (uint32).
const IndexStride = 4

// DefaultCopyAlignment is the WebGPU copy-buffer alignment in bytes.
const DefaultCopyAlignment = 4

// cursor is a monotonic allocation counter with a fixed capacity.
// reserve is all-or-nothing: a failed reservation never moves the cursor.
type cursor struct {
	n        atomic.Uint64
	capacity uint64
}

func (c *cursor) reserve(count uint64) (uint64, error) {
	for {
		cur := c.n.Load()
		if cur+count > c.capacity {
			return 0, fmt.Errorf("%w: %d + %d > %d", ErrCapacityExceeded, cur, count, c.capacity)
		}
		if c.n.CompareAndSwap(cur, cur+count) {
			return cur, nil
		}
	}
}

// release undoes the reservation [start, start+count) if nothing was
// reserved after it. It reports whether the rollback happened.
func (c *cursor) release(start, count uint64) bool {
	return c.n.CompareAndSwap(start+count, start)
}

func (c *cursor) load() uint64 { return c.n.Load() }
func (c *cursor) reset()       { c.n.Store(0) }

// ArenaDescriptor describes the fixed capacities of an Arena.
type ArenaDescriptor struct {
	Label string

	// VertexCapacity is the number of vertices the vertex region holds.
	VertexCapacity uint32

	// IndexCapacity is the number of indices the index region holds.
	IndexCapacity uint32

	// CopyAlignment is the device's minimum buffer-copy alignment in bytes.
	// Zero means DefaultCopyAlignment.
	CopyAlignment uint64
}

// Arena is a fixed-capacity, append-only pair of device regions (vertices
// and indices) with atomic cursors. Independent producers may append
// concurrently: reservations are disjoint, so their writes need no shared
// lock. Reading VertexCount or IndexCount while an append is in flight is
// a race; callers must join all producers first.
//
// The arena never grows. Reset is called once per frame before that
// frame's appends.
type Arena struct {
	device hal.Device
	queue  hal.Queue
	label  string

	vertexBuf hal.Buffer
	indexBuf  hal.Buffer
	indexSize uint64

	vertices cursor
	indices  cursor

	mu        sync.RWMutex // guards destroyed against Destroy
	destroyed bool
}

// NewArena creates the vertex and index regions on the device.
func NewArena(device hal.Device, queue hal.Queue, desc ArenaDescriptor) (*Arena, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if desc.VertexCapacity == 0 || desc.IndexCapacity == 0 {
		return nil, fmt.Errorf("%w: vertices=%d indices=%d", ErrInvalidCapacity, desc.VertexCapacity, desc.IndexCapacity)
	}
	label := desc.Label
	if label == "" {
		label = "arena"
	}
	align := desc.CopyAlignment
	if align == 0 {
		align = DefaultCopyAlignment
	}

	vertexBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label + "_vertex",
		Size:  uint64(desc.VertexCapacity) * scene.VertexStride,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s vertex buffer: %w", label, err)
	}

	indexSize := alignSize(uint64(desc.IndexCapacity)*IndexStride, align)
	indexBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label + "_index",
		Size:  indexSize,
		Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		device.DestroyBuffer(vertexBuf)
		return nil, fmt.Errorf("create %s index buffer: %w", label, err)
	}

	a := &Arena{
		device:    device,
		queue:     queue,
		label:     label,
		vertexBuf: vertexBuf,
		indexBuf:  indexBuf,
		indexSize: indexSize,
	}
	a.vertices.capacity = uint64(desc.VertexCapacity)
	a.indices.capacity = uint64(desc.IndexCapacity)

	slogger().Debug("arena created",
		"label", label,
		"vertices", desc.VertexCapacity,
		"indices", desc.IndexCapacity,
		"index_bytes", indexSize)
	return a, nil
}

// alignSize rounds size up to a multiple of align and floors it at align.
// align must be a power of two.
func alignSize(size, align uint64) uint64 {
	mask := align - 1
	return max((size+mask)&^mask, align)
}

// Reset rewinds both cursors to zero. Call once per frame before appends.
func (a *Arena) Reset() {
	a.vertices.reset()
	a.indices.reset()
}

// Reserve reserves n vertices and returns the first reserved slot.
func (a *Arena) Reserve(n uint32) (uint32, error) {
	start, err := a.vertices.reserve(uint64(n))
	return uint32(start), err //nolint:gosec // bounded by VertexCapacity
}

// AppendVertices writes data at the current vertex cursor and returns the
// index of its first vertex. On ErrCapacityExceeded nothing is written.
func (a *Arena) AppendVertices(data []scene.Vertex) (uint32, error) {
	if err := a.checkAlive(); err != nil {
		return 0, err
	}
	defer a.mu.RUnlock()

	start, err := a.vertices.reserve(uint64(len(data)))
	if err != nil {
		return 0, err
	}
	if err := a.writeVertices(start, data); err != nil {
		return 0, err
	}
	return uint32(start), nil //nolint:gosec // bounded by VertexCapacity
}

// AppendIndices writes data at the current index cursor, adding the vertex
// cursor value observed at the time of the call to every index. Callers
// appending a shape's indices before its vertices get indices that resolve
// against those vertices.
func (a *Arena) AppendIndices(data []uint32) (uint32, error) {
	if err := a.checkAlive(); err != nil {
		return 0, err
	}
	defer a.mu.RUnlock()

	base := uint32(a.vertices.load()) //nolint:gosec // bounded by VertexCapacity
	start, err := a.indices.reserve(uint64(len(data)))
	if err != nil {
		return 0, err
	}
	if err := a.writeIndices(start, data, base); err != nil {
		return 0, err
	}
	return uint32(start), nil //nolint:gosec // bounded by IndexCapacity
}

// Append writes a vertex list and its local indices as one unit. The
// indices are rebased by the vertex reservation itself, so concurrent
// producers cannot interleave between the two reservations.
//
// When the index region is full, the vertex reservation is rolled back if
// no other producer reserved after it; otherwise it stays as an unreferenced
// hole until the next Reset.
func (a *Arena) Append(vertices []scene.Vertex, indices []uint32) (uint32, error) {
	if err := a.checkAlive(); err != nil {
		return 0, err
	}
	defer a.mu.RUnlock()

	nv := uint64(len(vertices))
	vstart, err := a.vertices.reserve(nv)
	if err != nil {
		return 0, err
	}
	istart, err := a.indices.reserve(uint64(len(indices)))
	if err != nil {
		if !a.vertices.release(vstart, nv) {
			slogger().Debug("arena vertex hole", "label", a.label, "start", vstart, "count", nv)
		}
		return 0, err
	}

	if err := a.writeVertices(vstart, vertices); err != nil {
		return 0, err
	}
	if err := a.writeIndices(istart, indices, uint32(vstart)); err != nil { //nolint:gosec // bounded by VertexCapacity
		return 0, err
	}
	return uint32(vstart), nil //nolint:gosec // bounded by VertexCapacity
}

// AppendScene appends a whole scene with Append.
func (a *Arena) AppendScene(s *scene.Scene) (uint32, error) {
	return a.Append(s.Data(), s.Indices())
}

func (a *Arena) writeVertices(start uint64, data []scene.Vertex) error {
	if len(data) == 0 {
		return nil
	}
	if err := a.queue.WriteBuffer(a.vertexBuf, start*scene.VertexStride, scene.EncodeVertices(data)); err != nil {
		return fmt.Errorf("%s: write vertices: %w", a.label, err)
	}
	return nil
}

func (a *Arena) writeIndices(start uint64, data []uint32, base uint32) error {
	if len(data) == 0 {
		return nil
	}
	buf := make([]byte, 0, len(data)*IndexStride)
	for _, i := range data {
		buf = binary.LittleEndian.AppendUint32(buf, i+base)
	}
	if err := a.queue.WriteBuffer(a.indexBuf, start*IndexStride, buf); err != nil {
		return fmt.Errorf("%s: write indices: %w", a.label, err)
	}
	return nil
}

// checkAlive read-locks the arena. On success the caller must RUnlock.
func (a *Arena) checkAlive() error {
	a.mu.RLock()
	if a.destroyed {
		a.mu.RUnlock()
		return ErrArenaDestroyed
	}
	return nil
}

// VertexCount returns the vertex cursor.
func (a *Arena) VertexCount() uint32 {
	return uint32(a.vertices.load()) //nolint:gosec // bounded by VertexCapacity
}

// IndexCount returns the index cursor.
func (a *Arena) IndexCount() uint32 {
	return uint32(a.indices.load()) //nolint:gosec // bounded by IndexCapacity
}

// VertexCapacity returns the fixed vertex capacity.
func (a *Arena) VertexCapacity() uint32 {
	return uint32(a.vertices.capacity) //nolint:gosec // set from uint32
}

// IndexCapacity returns the fixed index capacity.
func (a *Arena) IndexCapacity() uint32 {
	return uint32(a.indices.capacity) //nolint:gosec // set from uint32
}

// IndexBufferSize returns the aligned byte size of the index region.
func (a *Arena) IndexBufferSize() uint64 {
	return a.indexSize
}

// VertexBuffer returns the device vertex region.
func (a *Arena) VertexBuffer() hal.Buffer { return a.vertexBuf }

// IndexBuffer returns the device index region.
func (a *Arena) IndexBuffer() hal.Buffer { return a.indexBuf }

// Destroy releases both device regions. Safe to call multiple times.
func (a *Arena) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed {
		return
	}
	a.destroyed = true
	if a.indexBuf != nil {
		a.device.DestroyBuffer(a.indexBuf)
		a.indexBuf = nil
	}
	if a.vertexBuf != nil {
		a.device.DestroyBuffer(a.vertexBuf)
		a.vertexBuf = nil
	}
}
