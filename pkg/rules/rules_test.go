// pkg/rules/rules_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test rule config parsing, validation, defaults, and layer merging

package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whichperiod/whichperiod/pkg/dateexpr"
	"github.com/whichperiod/whichperiod/pkg/perioderr"
	"github.com/whichperiod/whichperiod/pkg/rules"
)

func TestParse(t *testing.T) {
	t.Run("full_config", func(t *testing.T) {
		list, err := rules.Parse([]byte(`
TimePeriods:
  - MothersDay:
      Date: The second Sunday of May
      DaysBefore: 3
      DaysAfter: 1
      Comment: Mother's Day
  - FrederickBirthday:
      Date: December 31
      DaysBefore: 7
`))
		require.NoError(t, err)
		require.Len(t, list, 2)

		md := list[0]
		assert.Equal(t, "MothersDay", md.Key)
		assert.Equal(t, dateexpr.KindNthWeekday, md.Expr.Kind)
		assert.Equal(t, "The second Sunday of May", md.RawDate)
		assert.Equal(t, 3, md.DaysBefore)
		assert.Equal(t, 1, md.DaysAfter)
		assert.Equal(t, "Mother's Day", md.Comment)

		fb := list[1]
		assert.Equal(t, "FrederickBirthday", fb.Key)
		assert.Equal(t, 7, fb.DaysBefore)
		assert.Equal(t, 0, fb.DaysAfter, "DaysAfter defaults to 0")
		assert.Empty(t, fb.Comment)
	})

	t.Run("declaration_order_preserved", func(t *testing.T) {
		list, err := rules.Parse([]byte(`
TimePeriods:
  - Zeta: {Date: January 1}
  - Alpha: {Date: February 2}
  - Mid: {Date: March 3}
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, list.Keys())
	})

	t.Run("empty_document", func(t *testing.T) {
		list, err := rules.Parse([]byte(""))
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("unparseable_date_reports_key", func(t *testing.T) {
		_, err := rules.Parse([]byte(`
TimePeriods:
  - Broken:
      Date: the umpteenth Sunday of May
`))
		require.Error(t, err)
		assert.True(t, perioderr.IsErrorCode(err, perioderr.ErrExprUnparseable))
		assert.Equal(t, "Broken", perioderr.GetErrorDetails(err)["key"])
	})

	t.Run("impossible_date_is_fatal", func(t *testing.T) {
		_, err := rules.Parse([]byte(`
TimePeriods:
  - NoSuchDay:
      Date: February 30
`))
		require.Error(t, err)
		assert.True(t, perioderr.IsErrorCode(err, perioderr.ErrDateInvalid))
	})

	t.Run("negative_buffer_rejected", func(t *testing.T) {
		_, err := rules.Parse([]byte(`
TimePeriods:
  - Backwards:
      Date: January 1
      DaysBefore: -2
`))
		require.Error(t, err)
		assert.True(t, perioderr.IsErrorCode(err, perioderr.ErrConfigParse))
	})

	t.Run("malformed_yaml", func(t *testing.T) {
		_, err := rules.Parse([]byte("TimePeriods:\n\t- broken"))
		require.Error(t, err)
		assert.True(t, perioderr.IsErrorCode(err, perioderr.ErrConfigParse))
	})
}

func TestDefault(t *testing.T) {
	list := rules.Default()
	require.NotEmpty(t, list)

	// The embedded config must round-trip through the same parser
	// init uses when writing a fresh user config.
	reparsed, err := rules.Parse(rules.DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, list, reparsed)

	assert.Equal(t, "MothersDay", list[0].Key)
	for _, r := range list {
		assert.GreaterOrEqual(t, r.DaysBefore, 0)
		assert.GreaterOrEqual(t, r.DaysAfter, 0)
	}
}

func mkRule(key string, daysBefore int) rules.Rule {
	return rules.Rule{
		Key:        key,
		Expr:       dateexpr.MustParse("January 1"),
		RawDate:    "January 1",
		DaysBefore: daysBefore,
	}
}

func TestMerge(t *testing.T) {
	t.Run("disjoint_keys_concatenate", func(t *testing.T) {
		system := rules.RuleList{mkRule("A", 1), mkRule("B", 2)}
		user := rules.RuleList{mkRule("C", 3), mkRule("D", 4)}

		merged := rules.Merge(system, user)
		require.Len(t, merged, 4)
		assert.Equal(t, []string{"A", "B", "C", "D"}, merged.Keys())
		assert.Equal(t, system[0], merged[0])
		assert.Equal(t, user[1], merged[3])
	})

	t.Run("user_overrides_shared_key_in_place", func(t *testing.T) {
		system := rules.RuleList{mkRule("A", 1), mkRule("X", 3), mkRule("B", 2)}
		user := rules.RuleList{mkRule("X", 5)}

		merged := rules.Merge(system, user)
		require.Len(t, merged, 3)
		assert.Equal(t, []string{"A", "X", "B"}, merged.Keys(),
			"overridden key keeps the system entry's position")
		assert.Equal(t, 5, merged[1].DaysBefore, "user content wins")
	})

	t.Run("keys_are_case_sensitive", func(t *testing.T) {
		merged := rules.Merge(
			rules.RuleList{mkRule("easter", 1)},
			rules.RuleList{mkRule("Easter", 2)})
		assert.Equal(t, []string{"easter", "Easter"}, merged.Keys())
	})

	t.Run("duplicate_within_layer_last_writer_first_position", func(t *testing.T) {
		system := rules.RuleList{mkRule("A", 1), mkRule("B", 2), mkRule("A", 9)}
		merged := rules.Merge(system, nil)
		require.Len(t, merged, 2)
		assert.Equal(t, []string{"A", "B"}, merged.Keys())
		assert.Equal(t, 9, merged[0].DaysBefore)
	})

	t.Run("empty_layers", func(t *testing.T) {
		user := rules.RuleList{mkRule("A", 1)}
		assert.Equal(t, user, rules.Merge(nil, user))
		assert.Equal(t, user, rules.Merge(user, nil))
		assert.Empty(t, rules.Merge(nil, nil))
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := rules.Load(t.TempDir() + "/nope.yaml")
		require.Error(t, err)
		assert.True(t, perioderr.IsErrorCode(err, perioderr.ErrConfigLoad))
	})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse_ExpressionsResolve(t *testing.T) {
	// Smoke-check that loaded expressions carry through to resolution.
	list, err := rules.Parse([]byte(`
TimePeriods:
  - Turkey:
      Date: Thanksgiving
`))
	require.NoError(t, err)
	got, err := list[0].Expr.Resolve(2024)
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.November, 28), got)
}
