package internal

// Dispatch is the single choke point every event funnels through, native
// and synthetic alike. It classifies the event's lane, opens or joins the
// transaction, runs listeners capture-then-bubble, and on outermost return
// hands the transaction to the flush coordinator.
//
// Dispatching from inside a listener (a handler calling focus(), click(),
// or dispatching a synthetic event) re-enters here recursively: depth goes
// up, the transaction's lane may be raised, and nothing flushes until the
// outermost call unwinds.
//
// The return value is false when a listener cancelled a cancelable event.
func (r *Runtime) Dispatch(target *Target, ev *Event) bool {
	if target == nil || ev == nil {
		return true
	}

	lane := r.table.Lane(ev.Type)

	r.enter(lane)
	defer r.leave() // depth bookkeeping survives listener panics

	ev.Target = target

	// snapshot the path and listener lists up front: add/remove during
	// the dispatch must not affect the in-flight propagation
	ancestors := target.path()
	plan := buildPlan(ancestors, target, ev)

	r.log.Debug().
		Str("type", ev.Type).
		Str("lane", lane.String()).
		Int("depth", r.tx.Depth()).
		Log("dispatch")

	for _, step := range plan {
		if ev.propagationStopped {
			break
		}

		runStep(step, ev)
	}

	ev.CurrentTarget = nil
	ev.Phase = PhaseNone

	return !ev.Cancelable || !ev.defaultPrevented
}

type dispatchStep struct {
	target  *Target
	phase   Phase
	entries []listenerEntry
}

// buildPlan captures the full capture -> target -> bubble walk before any
// listener runs.
func buildPlan(ancestors []*Target, target *Target, ev *Event) []dispatchStep {
	var plan []dispatchStep

	for _, t := range ancestors {
		plan = append(plan, dispatchStep{t, PhaseCapture, t.matching(ev.Type, PhaseCapture)})
	}

	plan = append(plan, dispatchStep{target, PhaseTarget, target.matching(ev.Type, PhaseNone)})

	if ev.Bubbles {
		for i := len(ancestors) - 1; i >= 0; i-- {
			t := ancestors[i]
			plan = append(plan, dispatchStep{t, PhaseBubble, t.matching(ev.Type, PhaseBubble)})
		}
	}

	return plan
}

func runStep(step dispatchStep, ev *Event) {
	ev.CurrentTarget = step.target
	ev.Phase = step.phase

	for _, entry := range step.entries {
		if ev.immediateStopped {
			return
		}

		if entry.once {
			step.target.RemoveListener(entry.id)
		}

		// panics propagate to the dispatch caller; bookkeeping is
		// restored by the deferred leave in Dispatch
		entry.fn(ev)
	}
}

// enter opens the transaction on the outermost call and joins it on
// re-entrant ones. Joining never changes flush timing, it only raises the
// highest-observed lane.
func (r *Runtime) enter(lane Lane) {
	if r.tx == nil {
		r.tx = newTransaction(lane)
	}

	r.tx.Enter(lane)
}

// leave unwinds one level. When depth returns to 0 the transaction is
// consumed: the slot is cleared first, then the coordinator applies the
// flush policy for the highest lane observed. Runs in a defer so a
// panicking listener still closes the transaction, and its already
// enqueued updates remain eligible to flush.
func (r *Runtime) leave() {
	if r.tx.Exit() > 0 {
		return
	}

	tx := r.tx
	r.tx = nil

	r.closeTransaction(tx)
}
