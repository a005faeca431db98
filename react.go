// Package react is the event batching and priority scheduling core of a
// UI rendering runtime. Every native or synthetic event funnels through a
// single dispatch entry point, which classifies its urgency, buffers the
// state updates its handlers enqueue, and decides when those updates are
// committed: synchronously for discrete user interactions, deferred and
// coalesced for everything else.
//
// Handlers that synchronously trigger further events (a click handler
// calling Focus, or dispatching a synthetic event) re-enter the dispatcher
// recursively; their updates join the same transaction and become visible
// in one atomic commit when the outermost dispatch returns.
package react

import (
	"github.com/joeycumines/logiface"

	"github.com/gracelungu/react/internal"
)

// Runtime owns the event transaction and flush state for one rendering
// root. Independent runtimes are fully isolated; a per-goroutine default
// instance backs the package-level functions.
type Runtime = internal.Runtime

// Update is a buffered state mutation, applied at commit time.
type Update = internal.Update

// Renderer is the render/commit collaborator handed each flushed batch.
type Renderer = internal.Renderer

type config struct {
	table    *internal.Table
	sched    internal.Scheduler
	renderer internal.Renderer
	log      *logiface.Logger[logiface.Event]
}

// Option configures NewRuntime.
type Option func(*config)

// WithTable sets the lane classification table.
func WithTable(t *Table) Option {
	return func(c *config) { c.table = t }
}

// WithScheduler sets the external work-scheduler deferred flushes go to.
func WithScheduler(s Scheduler) Option {
	return func(c *config) { c.sched = s }
}

// WithRenderer sets the render/commit collaborator.
func WithRenderer(r Renderer) Option {
	return func(c *config) { c.renderer = r }
}

// WithLogger enables structured debug logging of scheduling decisions.
func WithLogger(log *logiface.Logger[logiface.Event]) Option {
	return func(c *config) { c.log = log }
}

// NewRuntime creates an isolated runtime. Zero options give a runtime with
// the built-in table, an owned TaskQueue and no renderer.
func NewRuntime(opts ...Option) *Runtime {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return internal.NewRuntime(c.table, c.sched, c.renderer, c.log)
}

// Use rebinds the calling goroutine's default runtime, so the package
// level functions below operate on rt.
func Use(rt *Runtime) {
	internal.SetRuntime(rt)
}

// NewTarget creates an event target under parent (nil for a root) on the
// goroutine's default runtime.
func NewTarget(parent *Target) *Target {
	return internal.GetRuntime().NewTarget(parent)
}

// Batch buffers all updates enqueued by fn into one transaction, flushed
// per the default lane policy when the outermost batch closes.
func Batch(fn func()) {
	internal.GetRuntime().Batch(internal.LaneDefault, fn)
}

// FlushSync runs fn in an immediate-lane transaction: everything it
// enqueues, plus any pending deferred work, commits before it returns.
func FlushSync(fn func()) {
	internal.GetRuntime().Batch(internal.LaneImmediate, fn)
}

// EnqueueUpdate buffers a state update on the goroutine's default runtime.
func EnqueueUpdate(u Update) {
	internal.GetRuntime().Enqueue(u)
}

// QueueMicrotask defers fn to the runtime's microtask queue.
func QueueMicrotask(fn func()) {
	internal.GetRuntime().QueueMicrotask(fn)
}

// Settle pumps the default runtime's host loop until quiescent.
func Settle() {
	internal.GetRuntime().Settle()
}
