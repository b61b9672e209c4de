// Package dateexpr parses flexible human-readable date expressions
// ("The second Sunday of May", "Easter", "February 6") and resolves
// them to concrete calendar dates for a given year.
package dateexpr

import (
	"time"

	"github.com/whichperiod/whichperiod/pkg/perioderr"
)

// Kind identifies the shape of a parsed date expression.
type Kind int

const (
	// KindNthWeekday is an ordinal weekday within a month,
	// e.g. "the second Sunday of May".
	KindNthWeekday Kind = iota + 1

	// KindMonthDay is an explicit month and day, e.g. "February 6".
	KindMonthDay

	// KindComputed is a named holiday resolved via a calendrical
	// formula or the built-in holiday table, e.g. "Easter".
	KindComputed
)

// Ordinal is a 1-based weekday ordinal within a month.
// OrdinalLast selects the final occurrence.
type Ordinal int

const OrdinalLast Ordinal = -1

// Expression is an immutable parsed date expression. Construct one
// with Parse; the zero value is not valid.
type Expression struct {
	Kind Kind

	// KindNthWeekday
	Ordinal Ordinal
	Weekday time.Weekday

	// KindNthWeekday and KindMonthDay
	Month time.Month

	// KindMonthDay
	Day int

	// KindComputed
	Holiday Holiday

	// Raw is the original text the expression was parsed from,
	// kept for error reporting.
	Raw string
}

// Resolve computes the concrete date the expression denotes in the
// given year. The returned time is midnight UTC; only the calendar
// date is meaningful.
func (e Expression) Resolve(year int) (time.Time, error) {
	switch e.Kind {
	case KindNthWeekday:
		return resolveNthWeekday(year, e.Month, e.Weekday, e.Ordinal)
	case KindMonthDay:
		return resolveMonthDay(year, e.Month, e.Day)
	case KindComputed:
		return e.Holiday.date(year)
	default:
		return time.Time{}, perioderr.Newf(perioderr.ErrExprUnresolvable,
			"cannot resolve expression %q", e.Raw)
	}
}

func resolveNthWeekday(year int, month time.Month, weekday time.Weekday, ordinal Ordinal) (time.Time, error) {
	if ordinal == OrdinalLast {
		last := lastOfMonth(year, month)
		back := (int(last.Weekday()) - int(weekday) + 7) % 7
		return last.AddDate(0, 0, -back), nil
	}

	first := date(year, month, 1)
	forward := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + forward + (int(ordinal)-1)*7
	if day > lastOfMonth(year, month).Day() {
		return time.Time{}, perioderr.Newf(perioderr.ErrExprUnresolvable,
			"%s %d has no %s %s", month, year, ordinalName(ordinal), weekday)
	}
	return date(year, month, day), nil
}

func resolveMonthDay(year int, month time.Month, day int) (time.Time, error) {
	// time.Date normalizes out-of-range days (Feb 30 becomes Mar 1 or 2),
	// so validate by round-tripping instead of clamping silently.
	d := date(year, month, day)
	if day < 1 || d.Month() != month || d.Day() != day {
		return time.Time{}, perioderr.Newf(perioderr.ErrDateInvalid,
			"%s %d does not exist in %d", month, day, year)
	}
	return d, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// lastOfMonth returns the final day of the month.
func lastOfMonth(year int, month time.Month) time.Time {
	return date(year, month+1, 1).AddDate(0, 0, -1)
}

func ordinalName(o Ordinal) string {
	switch o {
	case 1:
		return "first"
	case 2:
		return "second"
	case 3:
		return "third"
	case 4:
		return "fourth"
	case 5:
		return "fifth"
	case OrdinalLast:
		return "last"
	}
	return "nth"
}
