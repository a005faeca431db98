package internal

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Lane is a priority tier assigned to an event. Lower values are more
// urgent; lanes are totally ordered.
type Lane uint8

const (
	// LaneImmediate is for forced synchronous flushes.
	LaneImmediate Lane = iota
	// LaneDiscrete is for direct user interactions (click, keydown, ...)
	// that must be visually synchronous.
	LaneDiscrete
	// LaneContinuous is for high-frequency interactions (drag, scroll, ...).
	LaneContinuous
	// LaneDefault is for network/timer originated work.
	LaneDefault
	// LaneIdle only runs when nothing else is pending.
	LaneIdle
)

func (l Lane) String() string {
	switch l {
	case LaneImmediate:
		return "immediate"
	case LaneDiscrete:
		return "discrete"
	case LaneContinuous:
		return "continuous"
	case LaneDefault:
		return "default"
	case LaneIdle:
		return "idle"
	}
	return fmt.Sprintf("lane(%d)", uint8(l))
}

// HigherThan reports whether l is more urgent than other.
func (l Lane) HigherThan(other Lane) bool {
	return l < other
}

// Sync reports whether a transaction closing at this lane must flush
// before returning control to the dispatch caller.
func (l Lane) Sync() bool {
	return l <= LaneDiscrete
}

// Table maps native event types to lanes. It is the single source of
// truth for classification; unknown types fall back to the configured
// fallback lane.
type Table struct {
	lanes    map[string]Lane
	fallback Lane
}

// DefaultTable returns the built-in classification table.
func DefaultTable() *Table {
	t := &Table{
		lanes:    make(map[string]Lane),
		fallback: LaneDefault,
	}

	discrete := []string{
		"click", "dblclick", "mousedown", "mouseup",
		"keydown", "keypress", "keyup",
		"focus", "blur", "focusin", "focusout",
		"input", "change", "submit", "reset",
		"touchstart", "touchend", "pointerdown", "pointerup",
		"contextmenu", "paste", "cut", "copy",
	}
	continuous := []string{
		"drag", "dragover", "dragenter", "dragleave",
		"scroll", "wheel",
		"mousemove", "mouseover", "mouseout", "mouseenter", "mouseleave",
		"pointermove", "pointerover", "pointerout",
		"touchmove",
	}
	deferred := []string{
		"load", "error", "abort", "progress", "message",
		"animationend", "transitionend",
	}

	for _, typ := range discrete {
		t.lanes[typ] = LaneDiscrete
	}
	for _, typ := range continuous {
		t.lanes[typ] = LaneContinuous
	}
	for _, typ := range deferred {
		t.lanes[typ] = LaneDefault
	}

	return t
}

// Lane classifies an event type. Total: every type maps to something.
func (t *Table) Lane(eventType string) Lane {
	if lane, ok := t.lanes[eventType]; ok {
		return lane
	}
	return t.fallback
}

// Set overrides the lane for a single event type.
func (t *Table) Set(eventType string, lane Lane) {
	t.lanes[eventType] = lane
}

// SetFallback overrides the lane used for unknown event types.
func (t *Table) SetFallback(lane Lane) {
	t.fallback = lane
}

type tableConfig struct {
	Fallback string            `yaml:"fallback"`
	Lanes    map[string]string `yaml:"lanes"`
}

// ParseTable builds a classification table from a YAML document:
//
//	fallback: default
//	lanes:
//	  click: discrete
//	  mousemove: continuous
//
// Types not listed inherit the built-in defaults.
func ParseTable(data []byte) (*Table, error) {
	var cfg tableConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse lane table: %w", err)
	}

	t := DefaultTable()

	if cfg.Fallback != "" {
		lane, err := laneFromName(cfg.Fallback)
		if err != nil {
			return nil, err
		}
		t.fallback = lane
	}

	for typ, name := range cfg.Lanes {
		lane, err := laneFromName(name)
		if err != nil {
			return nil, err
		}
		t.lanes[typ] = lane
	}

	return t, nil
}

func laneFromName(name string) (Lane, error) {
	switch name {
	case "immediate":
		return LaneImmediate, nil
	case "discrete":
		return LaneDiscrete, nil
	case "continuous":
		return LaneContinuous, nil
	case "default":
		return LaneDefault, nil
	case "idle":
		return LaneIdle, nil
	}
	return 0, fmt.Errorf("parse lane table: unknown lane %q", name)
}
