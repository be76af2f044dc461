package loader

import "context"

// Queue hands work from loader goroutines to the thread that owns the
// scenes. Tasks run in the order they were posted, only inside Drain.
type Queue struct {
	tasks chan func()
}

// NewQueue creates a queue that buffers up to size tasks before Post blocks
func NewQueue(size int) *Queue {
	return &Queue{tasks: make(chan func(), size)}
}

// Post enqueues a task, blocking while the queue is full until ctx is done.
// It is safe to call from any goroutine.
func (q *Queue) Post(ctx context.Context, task func()) error {
	select {
	case q.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain runs every task that is queued right now and returns how many ran.
// Tasks posted while draining wait for the next call.
func (q *Queue) Drain() int {
	pending := len(q.tasks)
	for i := 0; i < pending; i++ {
		task := <-q.tasks
		task()
	}
	return pending
}
