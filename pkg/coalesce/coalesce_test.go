package coalesce

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchOrJoinSingleCaller(t *testing.T) {
	g := NewGroup()

	result, err, joined := g.FetchOrJoin("key", func() (interface{}, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.False(t, joined)
}

func TestFetchOrJoinPropagatesError(t *testing.T) {
	g := NewGroup()
	boom := errors.New("boom")

	_, err, _ := g.FetchOrJoin("key", func() (interface{}, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestFetchOrJoinCoalescesConcurrentCalls(t *testing.T) {
	g := NewGroup()

	var calls int64
	started := make(chan struct{})
	release := make(chan struct{})

	fn := func() (interface{}, error) {
		atomic.AddInt64(&calls, 1)
		close(started)
		<-release
		return "result", nil
	}

	var wg sync.WaitGroup
	var joinedCount int64

	wg.Add(1)
	go func() {
		defer wg.Done()
		result, err, joined := g.FetchOrJoin("key", fn)
		assert.NoError(t, err)
		assert.Equal(t, "result", result)
		if joined {
			atomic.AddInt64(&joinedCount, 1)
		}
	}()

	<-started

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err, joined := g.FetchOrJoin("key", func() (interface{}, error) {
				t.Error("joined caller must not execute fetch")
				return nil, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, "result", result)
			assert.True(t, joined)
			if joined {
				atomic.AddInt64(&joinedCount, 1)
			}
		}()
	}

	// Даём присоединяющимся вызовам встать в ожидание, затем отпускаем выборку
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	assert.Equal(t, int64(5), atomic.LoadInt64(&joinedCount))
}

func TestFetchOrJoinNewCallAfterCompletion(t *testing.T) {
	g := NewGroup()

	_, _, joined := g.FetchOrJoin("key", func() (interface{}, error) { return 1, nil })
	assert.False(t, joined)

	// Завершённый вызов не кэшируется: следующий запускает выборку заново
	result, _, joined := g.FetchOrJoin("key", func() (interface{}, error) { return 2, nil })
	assert.False(t, joined)
	assert.Equal(t, 2, result)
}
