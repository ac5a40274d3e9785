package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startLoop(t *testing.T, q *Queue) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() { stopped <- q.Loop(ctx) }()
	t.Cleanup(cancel)
	return cancel, stopped
}

func TestQueueRunsInOrder(t *testing.T) {
	q := NewQueue(16)
	startLoop(t, q)

	var got []int
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, q.Post(ctx, func() { got = append(got, i) }))
	}
	require.NoError(t, q.Call(ctx, func() {}))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestQueueConcurrentPosters(t *testing.T) {
	q := NewQueue(4)
	startLoop(t, q)

	// the counter is only touched on the loop goroutine
	count := 0
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				assert.NoError(t, q.Post(context.Background(), func() { count++ }))
			}
		}()
	}
	wg.Wait()

	var total int
	require.NoError(t, q.Call(context.Background(), func() { total = count }))
	assert.Equal(t, 800, total)
}

func TestQueueClosed(t *testing.T) {
	q := NewQueue(1)
	cancel, stopped := startLoop(t, q)
	cancel()

	select {
	case err := <-stopped:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.ErrorIs(t, q.Post(context.Background(), func() {}), ErrClosed)
	assert.ErrorIs(t, q.Call(context.Background(), func() {}), ErrClosed)
}

func TestQueuePostHonoursContext(t *testing.T) {
	q := NewQueue(1)
	require.NoError(t, q.Post(context.Background(), func() {}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, q.Post(ctx, func() {}), context.DeadlineExceeded)
}
