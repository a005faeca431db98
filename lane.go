package react

import "github.com/gracelungu/react/internal"

// Lane is a priority tier. Lanes are totally ordered, most to least
// urgent; a higher lane observed in a transaction subsumes a lower one.
type Lane = internal.Lane

const (
	LaneImmediate  = internal.LaneImmediate
	LaneDiscrete   = internal.LaneDiscrete
	LaneContinuous = internal.LaneContinuous
	LaneDefault    = internal.LaneDefault
	LaneIdle       = internal.LaneIdle
)

// Table maps event types to lanes.
type Table = internal.Table

// DefaultTable returns the built-in classification table.
func DefaultTable() *Table {
	return internal.DefaultTable()
}

// ParseTable builds a classification table from a YAML document. Types not
// listed inherit the built-in defaults.
func ParseTable(data []byte) (*Table, error) {
	return internal.ParseTable(data)
}
