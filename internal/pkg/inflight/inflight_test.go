package inflight_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/pkg/inflight"
)

func TestTryAcquireRejectsSecondCaller(t *testing.T) {
	set := inflight.New()

	release, ok := set.TryAcquire("npc_1")
	require.True(t, ok)
	assert.True(t, set.Held("npc_1"))

	_, ok = set.TryAcquire("npc_1")
	assert.False(t, ok)

	_, ok = set.TryAcquire("npc_2")
	assert.True(t, ok)

	release()
	release()
	assert.False(t, set.Held("npc_1"))

	_, ok = set.TryAcquire("npc_1")
	assert.True(t, ok)
}

func TestTryAcquireConcurrent(t *testing.T) {
	set := inflight.New()

	var winners int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := set.TryAcquire("world_1"); ok {
				atomic.AddInt32(&winners, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners)
}
