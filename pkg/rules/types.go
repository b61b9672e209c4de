// Package rules defines the time-period rule schema, loads rule lists
// from YAML config sources, and merges the system and user layers.
package rules

import (
	"github.com/whichperiod/whichperiod/pkg/dateexpr"
)

// Rule is one named entry mapping a date expression plus before/after
// day buffers to a period name. Immutable after load.
type Rule struct {
	// Key uniquely identifies the rule within a merged list and is
	// the period name reported on a match.
	Key string

	// Expr is the parsed date expression (parsed once at load time,
	// never re-parsed during matching).
	Expr dateexpr.Expression

	// RawDate is the config text Expr was parsed from.
	RawDate string

	// DaysBefore and DaysAfter widen the matching window around the
	// resolved date. Both are validated non-negative at load time.
	DaysBefore int
	DaysAfter  int

	// Comment is free-form text carried through to the match result.
	Comment string
}

// RuleList is an ordered rule sequence. Insertion order is match
// priority: the first rule whose window contains a query date wins.
type RuleList []Rule

// Keys returns the rule keys in list order.
func (l RuleList) Keys() []string {
	keys := make([]string, len(l))
	for i, r := range l {
		keys[i] = r.Key
	}
	return keys
}
