package internal

import (
	"github.com/joeycumines/logiface"
)

// Renderer is the render/commit collaborator. Commit receives the full
// batch of buffered updates and the lane the flush was evaluated against;
// it must apply every update it is handed (superseded flushes carry their
// updates forward into the superseding one).
type Renderer interface {
	Commit(updates []Update, lane Lane)
}

// Pump is implemented by schedulers the embedder can drive one task at a
// time. Settle uses it; a host-owned scheduler doesn't need it.
type Pump interface {
	RunNext() bool
}

// Runtime owns the process-wide-per-instance singleton slots: the currently
// open transaction and the currently pending flush. Exactly one of each may
// exist at a time, and all mutation goes through the dispatch/flush paths.
//
// A runtime serves a single logical dispatch goroutine; handlers never run
// in parallel. Re-entrancy is handled by the transaction depth counter, not
// locks.
type Runtime struct {
	table    *Table
	sched    Scheduler
	renderer Renderer
	log      *logiface.Logger[logiface.Event]

	tx      *Transaction
	pending *pendingFlush

	micro MicrotaskQueue
}

// NewRuntime builds a runtime. A nil table means the built-in
// classification table, a nil scheduler means an owned TaskQueue, a nil
// renderer means update closures are applied directly, a nil logger
// disables logging.
func NewRuntime(table *Table, sched Scheduler, renderer Renderer, log *logiface.Logger[logiface.Event]) *Runtime {
	if table == nil {
		table = DefaultTable()
	}
	if sched == nil {
		sched = NewTaskQueue()
	}

	return &Runtime{
		table:    table,
		sched:    sched,
		renderer: renderer,
		log:      log,
	}
}

// Table returns the runtime's classification table.
func (r *Runtime) Table() *Table {
	return r.table
}

// Scheduler returns the external work-scheduler the runtime defers to.
func (r *Runtime) Scheduler() Scheduler {
	return r.sched
}

// Batching reports whether a transaction is currently open.
func (r *Runtime) Batching() bool {
	return r.tx != nil
}

// Enqueue buffers a state update. Inside a transaction it joins the
// transaction; outside any dispatch it coalesces into a deferred flush at
// the default lane.
func (r *Runtime) Enqueue(u Update) {
	if u == nil {
		return
	}

	if r.tx != nil {
		r.tx.Enqueue(u)
		return
	}

	r.schedule([]Update{u}, LaneDefault)
}

// Batch runs fn inside a transaction at the given lane, opening one if no
// dispatch is in flight. Flush timing at close follows the lane policy.
func (r *Runtime) Batch(lane Lane, fn func()) {
	r.enter(lane)
	defer r.leave()

	fn()
}

// QueueMicrotask defers fn to the runtime's own microtask queue. Microtasks
// drain to completion before the external scheduler gets control.
func (r *Runtime) QueueMicrotask(fn func()) {
	if fn != nil {
		r.micro.Push(fn)
	}
}

// Settle pumps the host loop until quiescent: a full microtask drain, then
// scheduler tasks one at a time with a drain after each. Requires the
// scheduler to implement Pump; otherwise only microtasks are drained.
func (r *Runtime) Settle() {
	r.micro.Drain()

	pump, ok := r.sched.(Pump)
	if !ok {
		return
	}

	for pump.RunNext() {
		r.micro.Drain()
	}
}

// Reset clears both singleton slots, cancelling any scheduled flush and
// dropping queued microtasks. For teardown when the rendering root goes
// away; must not be called from inside a dispatch.
func (r *Runtime) Reset() {
	if p := r.pending; p != nil {
		r.pending = nil
		r.sched.Cancel(p.handle)
	}

	r.tx = nil
	r.micro = MicrotaskQueue{}

	r.log.Debug().Log("runtime reset")
}
