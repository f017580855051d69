package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func requireCode(t *testing.T, err error, code Code) {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "want *ValidationError, got %v", err)
	assert.Equal(t, code, verr.Code)
}

func TestParseValid(t *testing.T) {
	s, err := Parse(Input{RecurrenceType: "DAILY"})
	require.NoError(t, err)
	assert.Equal(t, Daily, s.Kind())

	s, err = Parse(Input{RecurrenceType: "WEEKLY", DaysOfWeek: []string{"WED", "MON", "MON"}})
	require.NoError(t, err)
	assert.Equal(t, Weekly, s.Kind())
	assert.Equal(t, []string{"MON", "WED"}, s.DaysOfWeek())

	s, err = Parse(Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(31)})
	require.NoError(t, err)
	assert.Equal(t, 31, s.DayOfMonth())

	s, err = Parse(Input{RecurrenceType: "CUSTOM", Interval: intPtr(3), Time: strPtr("09:30")})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Interval())
	at, ok := s.At()
	assert.True(t, ok)
	assert.Equal(t, "09:30", at)
}

func TestParseFailures(t *testing.T) {
	_, err := Parse(Input{RecurrenceType: "YEARLY"})
	requireCode(t, err, CodeInvalidRecurrenceType)

	_, err = Parse(Input{RecurrenceType: "WEEKLY"})
	requireCode(t, err, CodeEmptyWeeklyDays)

	_, err = Parse(Input{RecurrenceType: "WEEKLY", DaysOfWeek: []string{}})
	requireCode(t, err, CodeEmptyWeeklyDays)

	_, err = Parse(Input{RecurrenceType: "WEEKLY", DaysOfWeek: []string{"FUNDAY"}})
	requireCode(t, err, CodeEmptyWeeklyDays)

	_, err = Parse(Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(32)})
	requireCode(t, err, CodeDayOfMonthOutOfRange)

	_, err = Parse(Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(0)})
	requireCode(t, err, CodeDayOfMonthOutOfRange)

	_, err = Parse(Input{RecurrenceType: "MONTHLY"})
	requireCode(t, err, CodeDayOfMonthOutOfRange)

	_, err = Parse(Input{RecurrenceType: "CUSTOM", Interval: intPtr(0)})
	requireCode(t, err, CodeIntervalTooSmall)

	_, err = Parse(Input{RecurrenceType: "CUSTOM"})
	requireCode(t, err, CodeIntervalTooSmall)

	_, err = Parse(Input{RecurrenceType: "DAILY", Time: strPtr("25:00")})
	requireCode(t, err, CodeInvalidTimeFormat)

	_, err = Parse(Input{RecurrenceType: "DAILY", Time: strPtr("9:30")})
	requireCode(t, err, CodeInvalidTimeFormat)

	_, err = Parse(Input{RecurrenceType: "DAILY", Time: strPtr("09:60")})
	requireCode(t, err, CodeInvalidTimeFormat)
}

// The recurrence-type rule is checked before variant fields, so a bad type
// wins even when variant fields are also broken.
func TestParseRuleOrder(t *testing.T) {
	_, err := Parse(Input{RecurrenceType: "NOPE", Interval: intPtr(0), Time: strPtr("bad")})
	requireCode(t, err, CodeInvalidRecurrenceType)

	_, err = Parse(Input{RecurrenceType: "CUSTOM", Interval: intPtr(0), Time: strPtr("bad")})
	requireCode(t, err, CodeIntervalTooSmall)
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		in   Input
		want string
	}{
		{Input{RecurrenceType: "DAILY"}, "Every day"},
		{Input{RecurrenceType: "DAILY", Time: strPtr("08:00")}, "Every day at 08:00"},
		{Input{RecurrenceType: "WEEKLY", DaysOfWeek: []string{"FRI", "MON"}}, "Every Monday, Friday"},
		{Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(1)}, "Every 1st of the month"},
		{Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(2)}, "Every 2nd of the month"},
		{Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(3)}, "Every 3rd of the month"},
		{Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(4)}, "Every 4th of the month"},
		{Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(11)}, "Every 11th of the month"},
		{Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(12)}, "Every 12th of the month"},
		{Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(13)}, "Every 13th of the month"},
		{Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(21)}, "Every 21st of the month"},
		{Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(23)}, "Every 23rd of the month"},
		{Input{RecurrenceType: "MONTHLY", DayOfMonth: intPtr(31)}, "Every 31st of the month"},
		{Input{RecurrenceType: "CUSTOM", Interval: intPtr(1)}, "Every 1 day"},
		{Input{RecurrenceType: "CUSTOM", Interval: intPtr(5)}, "Every 5 days"},
		{Input{RecurrenceType: "CUSTOM", Interval: intPtr(2), Time: strPtr("21:15")}, "Every 2 days at 21:15"},
	}
	for _, tc := range cases {
		s, err := Parse(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, s.Describe())
	}
}
