// Package match expands time-period rules into concrete date windows
// and evaluates an ordered rule list against a query date.
package match

import (
	"fmt"
	"time"

	"github.com/whichperiod/whichperiod/pkg/logging"
	"github.com/whichperiod/whichperiod/pkg/rules"
)

// Window is the concrete inclusive date range a rule covers for one
// specific year. Windows are recomputed per query and never stored.
type Window struct {
	Key   string
	Start time.Time
	End   time.Time
}

// Contains reports whether the date falls within [Start, End].
func (w Window) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

func (w Window) String() string {
	const layout = "2006-01-02"
	return fmt.Sprintf("[%s, %s]", w.Start.Format(layout), w.End.Format(layout))
}

// Match is the result of a successful rule evaluation.
type Match struct {
	Key     string
	Comment string
	Window  Window
}

// Expand resolves a rule's date expression for the given year and
// widens it by the rule's day buffers. Day arithmetic is calendar
// arithmetic: windows cross month and year boundaries and respect
// leap years. Resolution failures propagate unchanged.
func Expand(rule rules.Rule, year int) (Window, error) {
	resolved, err := rule.Expr.Resolve(year)
	if err != nil {
		return Window{}, err
	}
	return Window{
		Key:   rule.Key,
		Start: resolved.AddDate(0, 0, -rule.DaysBefore),
		End:   resolved.AddDate(0, 0, rule.DaysAfter),
	}, nil
}

// Find evaluates the rule list in order against the query date and
// returns the first rule whose window contains it. A window anchored
// near a year boundary can spill into the neighboring calendar year,
// so each rule is also expanded for the adjacent years before moving
// on. A rule that does not resolve for some year (a fifth Monday that
// does not exist, February 29 off leap years) is skipped for that
// year only. No match is a valid outcome, not an error.
func Find(list rules.RuleList, query time.Time) (*Match, bool) {
	logger := logging.GetLogger("match")
	query = midnight(query)

	for _, rule := range list {
		for _, year := range []int{query.Year(), query.Year() - 1, query.Year() + 1} {
			window, err := Expand(rule, year)
			if err != nil {
				logger.Debug().
					Str("key", rule.Key).
					Int("year", year).
					Err(err).
					Msg("Rule does not resolve for year, skipping")
				continue
			}
			if window.Contains(query) {
				logger.Debug().
					Str("key", rule.Key).
					Stringer("window", window).
					Msg("Query date matched")
				return &Match{Key: rule.Key, Comment: rule.Comment, Window: window}, true
			}
		}
	}
	return nil, false
}

// ResolveAndMatch merges the system and user rule layers and finds
// the period containing the query date. This is the single entry
// point composing the merger and the matcher.
func ResolveAndMatch(system, user rules.RuleList, query time.Time) (*Match, bool) {
	return Find(rules.Merge(system, user), query)
}

// midnight truncates a time to its calendar date in UTC, the
// normal form all resolved dates use.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
