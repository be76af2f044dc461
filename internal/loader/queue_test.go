package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, q *Queue, task func()) {
	t.Helper()
	require.NoError(t, q.Post(context.Background(), task))
}

func TestQueueRunsInPostOrder(t *testing.T) {
	q := NewQueue(8)
	var got []int
	for i := 0; i < 3; i++ {
		i := i
		post(t, q, func() { got = append(got, i) })
	}

	assert.Empty(t, got, "nothing runs before Drain")
	assert.Equal(t, 3, q.Drain())
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 0, q.Drain())
}

func TestQueueDefersTasksPostedWhileDraining(t *testing.T) {
	q := NewQueue(8)
	ran := 0
	post(t, q, func() {
		ran++
		post(t, q, func() { ran++ })
	})

	assert.Equal(t, 1, q.Drain())
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, q.Drain())
	assert.Equal(t, 2, ran)
}

func TestPostGivesUpWhenFull(t *testing.T) {
	q := NewQueue(1)
	post(t, q, func() {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, q.Post(ctx, func() {}), context.Canceled)
}
