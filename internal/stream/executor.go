package stream

import (
	"sync"

	"github.com/robgonnella/sockchat/internal/util"
)

// Executor runs observer callbacks on an execution context chosen by the
// consumer of a stream, e.g. a UI update queue
type Executor interface {
	Dispatch(fn func())
}

// ExecutorFunc adapts a function such as tview's QueueUpdateDraw to Executor
type ExecutorFunc func(fn func())

// Dispatch calls f(fn)
func (f ExecutorFunc) Dispatch(fn func()) {
	f(fn)
}

// Inline runs callbacks directly on the stream goroutine that produced them
var Inline Executor = ExecutorFunc(func(fn func()) { fn() })

// Queue is a serial Executor. Callbacks run one at a time, in dispatch
// order, on a single goroutine owned by the queue.
type Queue struct {
	queue   *util.Queue[func()]
	done    chan struct{}
	stopped chan struct{}
	closed  bool
	mux     sync.Mutex
}

// NewQueue starts and returns a new serial Queue
func NewQueue() *Queue {
	q := &Queue{
		queue:   util.NewQueue[func()](),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go q.run()

	return q
}

// Dispatch schedules fn. Once the queue is closed fn runs on the caller.
func (q *Queue) Dispatch(fn func()) {
	q.mux.Lock()

	if q.closed {
		q.mux.Unlock()
		fn()
		return
	}

	q.queue.Push(fn)
	q.mux.Unlock()
}

// Close runs every pending callback then stops the queue goroutine
func (q *Queue) Close() {
	q.mux.Lock()

	if q.closed {
		q.mux.Unlock()
		return
	}

	q.closed = true
	q.mux.Unlock()

	close(q.done)
	<-q.stopped
}

func (q *Queue) run() {
	defer close(q.stopped)

	for {
		select {
		case <-q.done:
			for _, fn := range q.queue.Drain() {
				fn()
			}
			return
		case <-q.queue.Ready():
			for _, fn := range q.queue.Drain() {
				fn()
			}
		}
	}
}
