package preprocess

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeAcquireClose(t *testing.T) {
	pool := NewBufferPool()
	scope := pool.Scope()

	a := scope.Acquire(16)
	b := scope.Acquire(8)
	require.Len(t, a, 16)
	require.Len(t, b, 8)
	assert.Equal(t, 2, scope.Live())

	scope.Close()
	assert.Equal(t, 0, scope.Live())

	// Mehrfaches Close ist erlaubt
	scope.Close()
	assert.Equal(t, 0, scope.Live())
}

func TestScopeAcquireAfterClose(t *testing.T) {
	scope := NewBufferPool().Scope()
	scope.Close()

	assert.Panics(t, func() { scope.Acquire(4) })
}

func TestScopeBuffersAreZeroed(t *testing.T) {
	pool := NewBufferPool()

	first := pool.Scope()
	buf := first.Acquire(32)
	for i := range buf {
		buf[i] = float64(i + 1)
	}
	first.Close()

	// Ein wiederverwendeter Puffer muss genullt sein
	second := pool.Scope()
	defer second.Close()
	for i, v := range second.Acquire(32) {
		require.Zerof(t, v, "Index %d", i)
	}
	for i, v := range second.Acquire(64) {
		require.Zerof(t, v, "Index %d", i)
	}
}

func TestBufferPoolConcurrent(t *testing.T) {
	pool := NewBufferPool()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				s := pool.Scope()
				buf := s.Acquire(128)
				for j := range buf {
					if buf[j] != 0 {
						t.Errorf("Puffer nicht genullt")
						s.Close()
						return
					}
					buf[j] = float64(g)
				}
				s.Close()
			}
		}()
	}
	wg.Wait()
}
