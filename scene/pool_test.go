package scene

import (
	"sync"
	"testing"
)

func TestPool(t *testing.T) {
	pool := NewPool()

	s := pool.Get()
	if s == nil {
		t.Fatal("Get() returned nil")
	}
	if !s.IsEmpty() {
		t.Error("Get() should return empty scene")
	}

	s.Add(Rectangle(0, 0, 1, 1))
	pool.Put(s)

	s2 := pool.Get()
	if !s2.IsEmpty() {
		t.Error("Get() after Put() should return reset scene")
	}
}

func TestPoolNilPut(t *testing.T) {
	pool := NewPool()

	// Should not panic
	pool.Put(nil)
}

func TestPoolWarmup(t *testing.T) {
	pool := NewPool()
	pool.Warmup(10)

	s := pool.Get()
	if s == nil || !s.IsEmpty() {
		t.Fatal("Get() after Warmup() should return empty scene")
	}
}

func TestPoolConcurrent(t *testing.T) {
	pool := NewPool()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := pool.Get()
			s.Add(Square(float32(i), 0, 1))
			if err := s.Validate(); err != nil {
				t.Error(err)
			}
			pool.Put(s)
		}(i)
	}
	wg.Wait()
}
