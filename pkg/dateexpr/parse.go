package dateexpr

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/whichperiod/whichperiod/pkg/perioderr"
)

// Parse converts a raw date expression into an Expression. It
// recognizes, case-insensitively and tolerating "the"/"of" filler:
//
//   - ordinal weekdays: "The second Sunday of May", "last monday may"
//   - named holidays:   "Easter", "Labor Day", "MLKDay"
//   - explicit dates:   "February 6", "Feb 6", "12-31"
//
// Anything matching none of these fails with EXPR_UNPARSEABLE.
// Explicit dates that can never exist (February 30) fail with
// DATE_INVALID at parse time; dates valid only in some years
// (February 29) parse fine and fail at resolve time instead.
func Parse(raw string) (Expression, error) {
	text := strings.Join(strings.Fields(raw), " ")
	if text == "" {
		return Expression{}, perioderr.New(perioderr.ErrExprUnparseable, "empty date expression")
	}

	if h, ok := lookupHoliday(text); ok {
		return Expression{Kind: KindComputed, Holiday: h, Raw: raw}, nil
	}

	if expr, ok := parseNthWeekday(text); ok {
		expr.Raw = raw
		return expr, nil
	}

	if expr, err := parseMonthDay(text); err == nil {
		expr.Raw = raw
		return expr, nil
	} else if perioderr.IsErrorCode(err, perioderr.ErrDateInvalid) {
		return Expression{}, err
	}

	return Expression{}, perioderr.Newf(perioderr.ErrExprUnparseable,
		"cannot interpret %q as a date expression", raw)
}

// MustParse is a test helper that panics on parse failure.
func MustParse(raw string) Expression {
	expr, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return expr
}

var nthWeekdayRe = regexp.MustCompile(
	`(?i)^(?:the\s+)?(first|second|third|fourth|fifth|last|1st|2nd|3rd|4th|5th)\s+([a-z]+)\s+(?:of\s+)?([a-z]+)$`)

func parseNthWeekday(text string) (Expression, bool) {
	m := nthWeekdayRe.FindStringSubmatch(text)
	if m == nil {
		return Expression{}, false
	}

	ordinal, ok := ordinals[strings.ToLower(m[1])]
	if !ok {
		return Expression{}, false
	}
	weekday, ok := weekdays[strings.ToLower(m[2])]
	if !ok {
		return Expression{}, false
	}
	month, ok := months[strings.ToLower(m[3])]
	if !ok {
		return Expression{}, false
	}

	return Expression{
		Kind:    KindNthWeekday,
		Ordinal: ordinal,
		Weekday: weekday,
		Month:   month,
	}, true
}

var (
	monthDayRe = regexp.MustCompile(`(?i)^([a-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?$`)
	numericRe  = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})$`)
)

func parseMonthDay(text string) (Expression, error) {
	var month time.Month
	var day int

	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		var ok bool
		month, ok = months[strings.ToLower(m[1])]
		if !ok {
			return Expression{}, perioderr.Newf(perioderr.ErrExprUnparseable,
				"unknown month %q", m[1])
		}
		day, _ = strconv.Atoi(m[2])
	} else if m := numericRe.FindStringSubmatch(text); m != nil {
		mm, _ := strconv.Atoi(m[1])
		if mm < 1 || mm > 12 {
			return Expression{}, perioderr.Newf(perioderr.ErrDateInvalid,
				"month %d out of range", mm)
		}
		month = time.Month(mm)
		day, _ = strconv.Atoi(m[2])
	} else {
		return Expression{}, perioderr.Newf(perioderr.ErrExprUnparseable,
			"not a month/day expression: %q", text)
	}

	// Reject days that exist in no year. February 29 stays parseable
	// and is rejected per-year at resolve time.
	if day < 1 || day > maxDaysIn(month) {
		return Expression{}, perioderr.Newf(perioderr.ErrDateInvalid,
			"%s %d is not a valid calendar date", month, day)
	}

	return Expression{Kind: KindMonthDay, Month: month, Day: day}, nil
}

// maxDaysIn returns the day count of the month in its longest year.
func maxDaysIn(month time.Month) int {
	switch month {
	case time.February:
		return 29
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

var ordinals = map[string]Ordinal{
	"first": 1, "1st": 1,
	"second": 2, "2nd": 2,
	"third": 3, "3rd": 3,
	"fourth": 4, "4th": 4,
	"fifth": 5, "5th": 5,
	"last": OrdinalLast,
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// normalizeName lowercases a holiday name and strips everything but
// letters, so punctuation and spacing variants collapse together.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
