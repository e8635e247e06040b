// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers together, and Queue, the serial fire-and-forget task queue
// used for persistence writes.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns without blocking; the worker keeps going
// until ctx is cancelled or Stop is called. Stop blocks until the worker's
// goroutines have exited and is safe to call on a worker that never ran.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc; wg sync.WaitGroup }
//
//	func (w *MyWorker) Run(ctx context.Context) { /* spawn goroutine */ }
//	func (w *MyWorker) Stop()                  { w.cancel(); w.wg.Wait() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// TaskObserver receives the outcome of every queued task. Implementations
// must be safe for concurrent use.
type TaskObserver interface {
	// TaskDone is called after a task ran; err is the task's result.
	TaskDone(name string, err error)
	// TaskDropped is called when a task could not be queued.
	TaskDropped(name string)
}

type nopObserver struct{}

func (nopObserver) TaskDone(string, error) {}
func (nopObserver) TaskDropped(string)     {}
