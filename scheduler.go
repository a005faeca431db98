package react

import "github.com/gracelungu/react/internal"

// Priority is the external work-scheduler's own ordering, kept distinct
// from Lane on purpose: the two systems are only compared at the moment a
// flush is scheduled.
type Priority = internal.Priority

const (
	PriorityImmediate    = internal.PriorityImmediate
	PriorityUserBlocking = internal.PriorityUserBlocking
	PriorityNormal       = internal.PriorityNormal
	PriorityLow          = internal.PriorityLow
	PriorityIdle         = internal.PriorityIdle
)

// Scheduler is the generic work-scheduler collaborator.
type Scheduler = internal.Scheduler

// Handle identifies a scheduled callback for cancellation.
type Handle = internal.Handle

// TaskQueue is the built-in manually pumped Scheduler.
type TaskQueue = internal.TaskQueue

// NewTaskQueue creates an empty task queue.
func NewTaskQueue() *TaskQueue {
	return internal.NewTaskQueue()
}
