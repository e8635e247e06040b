package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/lacnutry/internal/logger"
)

// ErrQueueFull is returned by EnqueueTracked when every slot holds a pending
// task of another name.
var ErrQueueFull = errors.New("task queue is full")

// ErrQueueStopped is returned on a stopped queue, and delivered to tracked
// tasks discarded by Stop.
var ErrQueueStopped = errors.New("task queue is stopped")

// TaskFunc is a unit of work executed by a [Queue].
type TaskFunc func(ctx context.Context) error

type task struct {
	name    string
	fn      TaskFunc
	done    []chan error // one per tracked caller, empty for fire-and-forget
	barrier bool         // internal marker, not reported to the observer
}

// Queue runs tasks one at a time. It never retries: a failed task is logged,
// reported to the observer and forgotten.
//
// Tasks are keyed by name. A task queued while another task of the same name
// is still waiting replaces that task's function in place, so only the latest
// one runs. Callers must therefore give every task the full state for its
// name, as the profile store does with one task per storage key. Tasks of the
// same name always run in the order they were queued; tasks of different
// names may be reordered by that replacement.
type Queue struct {
	size     int
	logger   *logger.Logger
	observer TaskObserver
	wake     chan struct{}

	mu      sync.Mutex
	pending []*task
	byName  map[string]*task
	stopped bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewQueue creates an idle queue holding pending tasks for up to size
// distinct names. It does not execute anything until Run is called. A nil
// observer is allowed.
func NewQueue(size int, log *logger.Logger, observer TaskObserver) *Queue {
	if size < 1 {
		size = 1
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &Queue{
		size:     size,
		logger:   log,
		observer: observer,
		wake:     make(chan struct{}, 1),
		byName:   make(map[string]*task),
	}
}

// Run implements [Worker]. It starts the consumer goroutine; calling Run on a
// running queue is a no-op.
//
// Tasks run with a context that carries ctx's values but is never cancelled,
// so a write that already started is not torn by shutdown.
func (q *Queue) Run(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	q.cancel = cancel
	q.stopped = false
	taskCtx := context.WithoutCancel(ctx)

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			if runCtx.Err() != nil {
				return
			}
			if t := q.next(); t != nil {
				q.execute(taskCtx, t)
				continue
			}
			select {
			case <-runCtx.Done():
				return
			case <-q.wake:
			}
		}
	}()
}

// Stop implements [Worker]. It stops the consumer after the task in flight
// finishes. Tasks still pending are discarded and their tracked callers get
// ErrQueueStopped; call Drain first to flush them.
func (q *Queue) Stop() {
	q.mu.Lock()
	cancel := q.cancel
	q.cancel = nil
	q.stopped = true
	q.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	q.wg.Wait()

	q.mu.Lock()
	discarded := q.pending
	q.pending = nil
	clear(q.byName)
	q.mu.Unlock()

	for _, t := range discarded {
		if !t.barrier {
			q.drop(t.name, "queue stopped")
		}
		for _, done := range t.done {
			done <- ErrQueueStopped
		}
	}
}

// Enqueue queues fn without waiting. It returns false when the task was
// dropped because the queue is stopped or full.
func (q *Queue) Enqueue(name string, fn TaskFunc) bool {
	return q.enqueue(name, fn, nil) == nil
}

// EnqueueTracked queues fn without waiting, like Enqueue, and returns a
// channel receiving the result of the task that finally runs for name. When
// fn is replaced by a later task of the same name the channel carries that
// task's result. A dropped task yields ErrQueueFull or ErrQueueStopped and a
// nil channel.
func (q *Queue) EnqueueTracked(name string, fn TaskFunc) (<-chan error, error) {
	done := make(chan error, 1)
	if err := q.enqueue(name, fn, done); err != nil {
		return nil, err
	}
	return done, nil
}

func (q *Queue) enqueue(name string, fn TaskFunc, done chan error) error {
	err := q.push(name, fn, done)
	switch {
	case errors.Is(err, ErrQueueStopped):
		q.drop(name, "queue stopped")
	case errors.Is(err, ErrQueueFull):
		q.drop(name, "queue full")
	}
	return err
}

func (q *Queue) push(name string, fn TaskFunc, done chan error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return ErrQueueStopped
	}

	if t, ok := q.byName[name]; ok {
		t.fn = fn
		if done != nil {
			t.done = append(t.done, done)
		}
		return nil
	}

	if len(q.byName) >= q.size {
		return ErrQueueFull
	}

	t := &task{name: name, fn: fn}
	if done != nil {
		t.done = append(t.done, done)
	}
	q.pending = append(q.pending, t)
	q.byName[name] = t
	q.signal()
	return nil
}

// Drain blocks until every task queued before the call has run, or ctx ends.
func (q *Queue) Drain(ctx context.Context) error {
	done := make(chan error, 1)

	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return ErrQueueStopped
	}
	q.pending = append(q.pending, &task{
		name:    "drain",
		fn:      func(context.Context) error { return nil },
		done:    []chan error{done},
		barrier: true,
	})
	q.signal()
	q.mu.Unlock()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pending returns the number of queued tasks not yet started.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.byName)
}

// next pops the oldest pending task. Once popped a task can no longer be
// replaced, so a later task of the same name runs after it.
func (q *Queue) next() *task {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	t := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	if !t.barrier {
		delete(q.byName, t.name)
	}
	return t
}

// signal wakes the consumer; the caller holds q.mu.
func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) execute(ctx context.Context, t *task) {
	err := q.safeRun(ctx, t)
	if err != nil {
		q.logger.Err(err).Str("func", "*Queue.execute").Str("task", t.name).Msg("task failed")
	}
	if !t.barrier {
		q.observer.TaskDone(t.name, err)
	}
	for _, done := range t.done {
		done <- err
	}
}

func (q *Queue) safeRun(ctx context.Context, t *task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("task panicked")
			q.logger.Error().Str("func", "*Queue.safeRun").Str("task", t.name).Interface("panic", r).Msg("recovered from task panic")
		}
	}()
	return t.fn(ctx)
}

func (q *Queue) drop(name, reason string) {
	q.logger.Warn().Str("func", "*Queue.Enqueue").Str("task", name).Str("reason", reason).Msg("task dropped")
	q.observer.TaskDropped(name)
}
