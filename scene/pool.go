// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "sync"

// Pool manages reusable Scene objects for per-frame geometry.
// After warmup, allocations are minimized by reusing scene storage.
//
// Usage:
//
//	s := pool.Get()
//	defer pool.Put(s)
type Pool struct {
	pool sync.Pool
}

// NewPool creates a new scene pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return New()
			},
		},
	}
}

// Get retrieves an empty scene from the pool.
func (p *Pool) Get() *Scene {
	s := p.pool.Get().(*Scene)
	s.Reset()
	return s
}

// Put returns a scene to the pool. The scene must not be used afterwards.
func (p *Pool) Put(s *Scene) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}

// Warmup pre-allocates scenes to avoid allocation during the first frames.
func (p *Pool) Warmup(count int) {
	scenes := make([]*Scene, count)
	for i := range scenes {
		scenes[i] = p.Get()
	}
	for _, s := range scenes {
		p.Put(s)
	}
}
