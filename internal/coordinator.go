package internal

// pendingFlush is the single "scheduled but not yet applied" slot. At most
// one exists per runtime; later work coalesces into it or supersedes it.
type pendingFlush struct {
	lane    Lane
	handle  Handle
	updates []Update
}

// closeTransaction applies the flush policy for a transaction that just
// returned to depth 0, evaluated against the highest lane it observed.
//
//	immediate, discrete  -> commit synchronously, before the dispatch
//	                        caller regains control
//	continuous, default  -> schedule (or coalesce into / promote) an
//	                        asynchronous flush
//	idle                 -> schedule at idle priority
func (r *Runtime) closeTransaction(tx *Transaction) {
	lane := tx.Lane()

	if len(tx.updates) == 0 {
		// nothing new; a discrete close still drags a pending flush
		// forward, and a more urgent close promotes it
		if r.pending == nil {
			return
		}
		if lane.Sync() {
			r.flushSync(nil, lane)
		} else if lane.HigherThan(r.pending.lane) {
			r.promote(lane)
		}
		return
	}

	if lane.Sync() {
		r.flushSync(tx.updates, lane)
		return
	}

	r.schedule(tx.updates, lane)
}

// flushSync commits now. Any pending asynchronous flush is superseded: its
// callback is cancelled and its updates are carried forward ahead of the
// new ones, so nothing applies twice and nothing is dropped.
func (r *Runtime) flushSync(updates []Update, lane Lane) {
	if p := r.pending; p != nil {
		r.pending = nil
		r.sched.Cancel(p.handle)
		updates = append(p.updates, updates...)

		r.log.Debug().
			Str("lane", lane.String()).
			Str("superseded", p.lane.String()).
			Log("pending flush superseded")
	}

	r.commit(updates, lane)
}

// schedule coalesces updates into the pending flush, creating it if the
// slot is empty and promoting it if the new lane is more urgent. The slot
// holds at most one scheduled callback at a time.
func (r *Runtime) schedule(updates []Update, lane Lane) {
	if p := r.pending; p != nil {
		p.updates = append(p.updates, updates...)
		if lane.HigherThan(p.lane) {
			r.promote(lane)
		}
		return
	}

	p := &pendingFlush{lane: lane, updates: updates}
	r.pending = p
	p.handle = r.sched.Schedule(lane.Priority(), r.runPending)

	r.log.Debug().
		Str("lane", lane.String()).
		Int("updates", len(updates)).
		Log("flush scheduled")
}

// promote re-schedules the pending flush at a higher lane. Re-evaluated,
// never duplicated: the old callback is cancelled first.
func (r *Runtime) promote(lane Lane) {
	p := r.pending

	r.sched.Cancel(p.handle)
	p.lane = lane
	p.handle = r.sched.Schedule(lane.Priority(), r.runPending)

	r.log.Debug().
		Str("lane", lane.String()).
		Log("pending flush promoted")
}

// runPending is the scheduled callback. The slot is cleared before the
// commit runs, so a flush of the same generation can't start twice.
func (r *Runtime) runPending() {
	p := r.pending
	if p == nil {
		return
	}
	r.pending = nil

	r.commit(p.updates, p.lane)
}

// commit hands the batch to the renderer as one atomic visible transition.
// Without a renderer the update closures are applied directly.
func (r *Runtime) commit(updates []Update, lane Lane) {
	r.log.Debug().
		Str("lane", lane.String()).
		Int("updates", len(updates)).
		Log("commit")

	if r.renderer != nil {
		r.renderer.Commit(updates, lane)
		return
	}

	for _, u := range updates {
		u()
	}
}
