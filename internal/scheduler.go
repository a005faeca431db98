package internal

// Priority is the generic work-scheduler's own ordering. It is deliberately
// a distinct type from Lane: the two systems are compared only when the
// coordinator picks a priority at schedule time, never merged.
type Priority uint8

const (
	PriorityImmediate Priority = iota
	PriorityUserBlocking
	PriorityNormal
	PriorityLow
	PriorityIdle

	numPriorities
)

func (p Priority) String() string {
	switch p {
	case PriorityImmediate:
		return "immediate"
	case PriorityUserBlocking:
		return "user-blocking"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	case PriorityIdle:
		return "idle"
	}
	return "priority(?)"
}

// Priority maps a lane to the scheduler priority its deferred flush runs at.
func (l Lane) Priority() Priority {
	switch l {
	case LaneImmediate:
		return PriorityImmediate
	case LaneDiscrete, LaneContinuous:
		return PriorityUserBlocking
	case LaneDefault:
		return PriorityNormal
	}
	return PriorityIdle
}

// Handle identifies a scheduled callback for cancellation.
type Handle interface{}

// Scheduler is the external time-slicing collaborator. Callbacks run in
// the scheduler's own priority order among themselves; the core imposes no
// ordering between the scheduler and its own microtask drain beyond that.
type Scheduler interface {
	Schedule(p Priority, fn func()) Handle
	Cancel(h Handle)
}

type task struct {
	fn        func()
	cancelled bool
}

// TaskQueue is a manually pumped Scheduler: fixed FIFO buckets, one per
// priority, drained most urgent first. It stands in for a host scheduler in
// tests and single-threaded embeddings.
type TaskQueue struct {
	buckets [numPriorities][]*task
}

func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

func (q *TaskQueue) Schedule(p Priority, fn func()) Handle {
	t := &task{fn: fn}
	q.buckets[p] = append(q.buckets[p], t)
	return t
}

func (q *TaskQueue) Cancel(h Handle) {
	if t, ok := h.(*task); ok {
		t.cancelled = true
	}
}

// RunNext pops and runs the most urgent queued task. It reports whether a
// task ran; cancelled tasks are discarded without running.
func (q *TaskQueue) RunNext() bool {
	for p := range q.buckets {
		for len(q.buckets[p]) > 0 {
			t := q.buckets[p][0]
			q.buckets[p] = q.buckets[p][1:]

			if t.cancelled {
				continue
			}

			t.fn()
			return true
		}
	}

	return false
}

// RunAll drains the queue, including tasks scheduled while draining.
func (q *TaskQueue) RunAll() {
	for q.RunNext() {
	}
}

// Len returns the number of live (non-cancelled) queued tasks.
func (q *TaskQueue) Len() int {
	n := 0
	for p := range q.buckets {
		for _, t := range q.buckets[p] {
			if !t.cancelled {
				n++
			}
		}
	}
	return n
}
