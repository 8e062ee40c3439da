package keylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockSerializesSameKey(t *testing.T) {
	kl := New()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		running int
		max     int
	)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kl.Lock("a@x.com")
			defer kl.Unlock("a@x.com")

			mu.Lock()
			running++
			if running > max {
				max = running
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, max)
}

func TestDifferentKeysIndependent(t *testing.T) {
	kl := New()

	kl.Lock("a@x.com")

	done := make(chan struct{})
	go func() {
		kl.Lock("b@x.com")
		kl.Unlock("b@x.com")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on unrelated key blocked")
	}

	kl.Unlock("a@x.com")
}

func TestEntriesReleased(t *testing.T) {
	kl := New()

	kl.Lock("a@x.com")
	kl.Unlock("a@x.com")

	kl.mu.Lock()
	defer kl.mu.Unlock()
	require.Empty(t, kl.locks)
}
