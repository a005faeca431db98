package internal

// MicrotaskQueue is the runtime's own deferral queue, drained to completion
// before yielding to the external scheduler. FIFO; tasks queued while
// draining run in the same drain.
type MicrotaskQueue struct {
	tasks []func()
}

func (q *MicrotaskQueue) Push(fn func()) {
	q.tasks = append(q.tasks, fn)
}

func (q *MicrotaskQueue) Empty() bool {
	return len(q.tasks) == 0
}

// Drain runs queued tasks until none remain.
func (q *MicrotaskQueue) Drain() {
	for len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks = q.tasks[1:]
		fn()
	}
}
