package internal

// Update is a buffered state mutation. Updates are opaque to the core;
// they are accumulated in order and handed to the renderer as one batch.
type Update func()

// Transaction is the scope spanning one outermost dispatch and all its
// re-entrant nested dispatches. Updates enqueued inside it are never
// visible while depth > 0.
type Transaction struct {
	// each nested dispatch increases the depth by 1
	// the transaction is consumed when depth returns to 0
	depth int

	// highest lane observed across all nested dispatches
	lane Lane

	updates []Update
}

func newTransaction(lane Lane) *Transaction {
	return &Transaction{lane: lane}
}

// Enter records one dispatch level, raising the transaction's lane if the
// nested event is more urgent. Nesting never changes flush timing, only
// the lane the eventual flush is evaluated against.
func (t *Transaction) Enter(lane Lane) {
	t.depth++

	if lane.HigherThan(t.lane) {
		t.lane = lane
	}
}

// Exit unwinds one dispatch level and reports the remaining depth.
func (t *Transaction) Exit() int {
	t.depth--
	return t.depth
}

// Enqueue appends a pending update. Append-only; ordering is by occurrence
// across all nested dispatches.
func (t *Transaction) Enqueue(u Update) {
	t.updates = append(t.updates, u)
}

// Lane returns the highest lane observed so far.
func (t *Transaction) Lane() Lane {
	return t.lane
}

// Depth returns the current nesting depth.
func (t *Transaction) Depth() int {
	return t.depth
}
