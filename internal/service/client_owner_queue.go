package service

import (
	"context"
	"sync"
)

type ownerTask struct {
	ctx  context.Context
	fn   func(ctx context.Context) error
	done chan error
}

// ownerQueue serializes every write for one owner: local mutations, their
// remote mirrors and reconciliation runs go through a single goroutine per
// owner, in submission order.
type ownerQueue struct {
	mu     sync.Mutex
	queues map[string]chan ownerTask
	closed bool

	quit chan struct{}
	wg   sync.WaitGroup
}

func newOwnerQueue() *ownerQueue {
	return &ownerQueue{
		queues: make(map[string]chan ownerTask),
		quit:   make(chan struct{}),
	}
}

// Do runs fn on the owner's goroutine and waits for it. fn must not call Do
// for the same owner. A task whose ctx is done before it starts is skipped.
func (q *ownerQueue) Do(ctx context.Context, ownerID string, fn func(ctx context.Context) error) error {
	tasks, err := q.tasks(ownerID)
	if err != nil {
		return err
	}

	task := ownerTask{ctx: ctx, fn: fn, done: make(chan error, 1)}

	select {
	case tasks <- task:
	case <-ctx.Done():
		return ctx.Err()
	case <-q.quit:
		return ErrOwnerQueueClosed
	}

	select {
	case err = <-task.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *ownerQueue) tasks(ownerID string) (chan ownerTask, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, ErrOwnerQueueClosed
	}

	tasks, ok := q.queues[ownerID]
	if !ok {
		tasks = make(chan ownerTask)
		q.queues[ownerID] = tasks

		q.wg.Add(1)
		go q.run(tasks)
	}
	return tasks, nil
}

func (q *ownerQueue) run(tasks chan ownerTask) {
	defer q.wg.Done()

	for {
		select {
		case <-q.quit:
			return
		case task := <-tasks:
			if err := task.ctx.Err(); err != nil {
				task.done <- err
				continue
			}
			task.done <- task.fn(task.ctx)
		}
	}
}

// Close stops every owner goroutine after it finishes its current task.
func (q *ownerQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.quit)
	q.mu.Unlock()

	q.wg.Wait()
}
