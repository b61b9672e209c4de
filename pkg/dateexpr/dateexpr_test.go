// pkg/dateexpr/dateexpr_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test date expression parsing and per-year resolution

package dateexpr_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whichperiod/whichperiod/pkg/dateexpr"
	"github.com/whichperiod/whichperiod/pkg/perioderr"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse_NthWeekday(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		year int
		want time.Time
	}{
		{"second_sunday_of_may", "The second Sunday of May", 2025, day(2025, time.May, 11)},
		{"lowercase_no_filler", "third sunday june", 2025, day(2025, time.June, 15)},
		{"numeric_ordinal", "1st Monday of September", 2025, day(2025, time.September, 1)},
		{"abbreviated_weekday_month", "the 4th Thu of Nov", 2025, day(2025, time.November, 27)},
		{"last_monday_of_may", "last Monday of May", 2025, day(2025, time.May, 26)},
		{"last_day_is_target_weekday", "last Saturday of May", 2025, day(2025, time.May, 31)},
		{"extra_whitespace", "  the   first  Friday   of  January ", 2027, day(2027, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := dateexpr.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, dateexpr.KindNthWeekday, expr.Kind)

			got, err := expr.Resolve(tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every resolved ordinal weekday must land on the requested weekday,
// in the requested month, as the n-th of its kind.
func TestResolve_NthWeekdayProperties(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			for wd := time.Sunday; wd <= time.Saturday; wd++ {
				for n := dateexpr.Ordinal(1); n <= 5; n++ {
					expr := dateexpr.Expression{
						Kind:    dateexpr.KindNthWeekday,
						Ordinal: n,
						Weekday: wd,
						Month:   month,
					}
					got, err := expr.Resolve(year)
					if err != nil {
						require.True(t, perioderr.IsErrorCode(err, perioderr.ErrExprUnresolvable))
						// The ordinal can only be missing for n >= 4.
						require.GreaterOrEqual(t, n, dateexpr.Ordinal(4))
						continue
					}
					assert.Equal(t, wd, got.Weekday())
					assert.Equal(t, month, got.Month())
					assert.Equal(t, int(n), (got.Day()-1)/7+1)
				}
			}
		}
	}
}

func TestResolve_LastWeekdayProperties(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			for wd := time.Sunday; wd <= time.Saturday; wd++ {
				expr := dateexpr.Expression{
					Kind:    dateexpr.KindNthWeekday,
					Ordinal: dateexpr.OrdinalLast,
					Weekday: wd,
					Month:   month,
				}
				got, err := expr.Resolve(year)
				require.NoError(t, err)
				assert.Equal(t, wd, got.Weekday())
				assert.Equal(t, month, got.Month())
				// Nothing of the same weekday may follow it in the month.
				assert.NotEqual(t, month, got.AddDate(0, 0, 7).Month())
			}
		}
	}
}

func TestResolve_MissingOrdinal(t *testing.T) {
	// February 2021 has exactly four Mondays.
	expr := dateexpr.MustParse("the fifth Monday of February")
	_, err := expr.Resolve(2021)
	require.Error(t, err)
	assert.True(t, perioderr.IsErrorCode(err, perioderr.ErrExprUnresolvable))

	// March 2021 has five Mondays.
	got, err := expr2021FifthMonday(t)
	require.NoError(t, err)
	assert.Equal(t, day(2021, time.March, 29), got)
}

func expr2021FifthMonday(t *testing.T) (time.Time, error) {
	t.Helper()
	expr, err := dateexpr.Parse("fifth Monday of March")
	require.NoError(t, err)
	return expr.Resolve(2021)
}

func TestParse_MonthDay(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		year int
		want time.Time
	}{
		{"full_month_name", "February 6", 2025, day(2025, time.February, 6)},
		{"abbreviated_month", "Feb 6", 2025, day(2025, time.February, 6)},
		{"ordinal_suffix", "December 31st", 2025, day(2025, time.December, 31)},
		{"numeric_month_day", "12-31", 2025, day(2025, time.December, 31)},
		{"case_insensitive", "aUgUsT 29", 2024, day(2024, time.August, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := dateexpr.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, dateexpr.KindMonthDay, expr.Kind)

			got, err := expr.Resolve(tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_ImpossibleDates(t *testing.T) {
	for _, raw := range []string{"February 30", "April 31", "June 0", "13-01"} {
		t.Run(raw, func(t *testing.T) {
			_, err := dateexpr.Parse(raw)
			require.Error(t, err)
			assert.True(t, perioderr.IsErrorCode(err, perioderr.ErrDateInvalid),
				"want DATE_INVALID, got %v", err)
		})
	}
}

func TestResolve_LeapDay(t *testing.T) {
	expr, err := dateexpr.Parse("February 29")
	require.NoError(t, err, "Feb 29 exists in leap years and must parse")

	got, err := expr.Resolve(2024)
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.February, 29), got)

	_, err = expr.Resolve(2025)
	require.Error(t, err)
	assert.True(t, perioderr.IsErrorCode(err, perioderr.ErrDateInvalid))
}

func TestResolve_Easter(t *testing.T) {
	// Reference dates for the Gregorian computus.
	want := map[int]time.Time{
		2019: day(2019, time.April, 21),
		2020: day(2020, time.April, 12),
		2021: day(2021, time.April, 4),
		2022: day(2022, time.April, 17),
		2023: day(2023, time.April, 9),
		2024: day(2024, time.March, 31),
		2025: day(2025, time.April, 20),
		2026: day(2026, time.April, 5),
		2027: day(2027, time.March, 28),
		2028: day(2028, time.April, 16),
		2029: day(2029, time.April, 1),
		2030: day(2030, time.April, 21),
	}

	expr := dateexpr.MustParse("Easter")
	for year, expected := range want {
		got, err := expr.Resolve(year)
		require.NoError(t, err)
		assert.Equal(t, expected, got, "Easter %d", year)
	}
}

func TestParse_Holidays(t *testing.T) {
	tests := []struct {
		raw  string
		year int
		want time.Time
	}{
		{"Thanksgiving", 2025, day(2025, time.November, 27)},
		{"LaborDay", 2025, day(2025, time.September, 1)},
		{"Labor Day", 2025, day(2025, time.September, 1)},
		{"MLKDay", 2025, day(2025, time.January, 20)},
		{"Martin Luther King Day", 2025, day(2025, time.January, 20)},
		{"MemorialDay", 2025, day(2025, time.May, 26)},
		{"Good Friday", 2025, day(2025, time.April, 18)},
		{"Easter Monday", 2025, day(2025, time.April, 21)},
		{"Independence Day", 2026, day(2026, time.July, 4)},
		{"christmas", 2025, day(2025, time.December, 25)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			expr, err := dateexpr.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, dateexpr.KindComputed, expr.Kind)

			got, err := expr.Resolve(tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Unparseable(t *testing.T) {
	for _, raw := range []string{
		"",
		"not a date at all",
		"the umpteenth Sunday of May",
		"the second Sunday of Smarch",
		"Festivus",
		"second of May",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := dateexpr.Parse(raw)
			require.Error(t, err)
			assert.True(t, perioderr.IsErrorCode(err, perioderr.ErrExprUnparseable),
				"want EXPR_UNPARSEABLE, got %v", err)
		})
	}
}
