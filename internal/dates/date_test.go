package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTimeUsesLocalCalendarDay(t *testing.T) {
	// 23:30 on March 1 in UTC+5 is still March 1, even though the instant
	// falls on March 2 in UTC+... and Feb 28/29 further west.
	loc := time.FixedZone("UTC+5", 5*3600)
	d := FromTime(time.Date(2025, time.March, 1, 23, 30, 0, 0, loc))
	assert.Equal(t, "2025-03-01", d.String())

	west := time.FixedZone("UTC-7", -7*3600)
	d = FromTime(time.Date(2025, time.March, 1, 0, 10, 0, 0, west))
	assert.Equal(t, "2025-03-01", d.String())
}

func TestDaysUntil(t *testing.T) {
	today := New(2025, time.June, 15)
	assert.Equal(t, 0, today.DaysUntil(today))
	assert.Equal(t, 1, today.DaysUntil(today.AddDays(1)))
	assert.Equal(t, -3, today.DaysUntil(today.AddDays(-3)))

	// Month boundary.
	assert.Equal(t, 16, today.DaysUntil(New(2025, time.July, 1)))
	// Leap day: Feb 2024 has 29 days.
	assert.Equal(t, 2, New(2024, time.February, 28).DaysUntil(New(2024, time.March, 1)))
	assert.Equal(t, 1, New(2025, time.February, 28).DaysUntil(New(2025, time.March, 1)))
	// Year boundary.
	assert.Equal(t, 1, New(2025, time.December, 31).DaysUntil(New(2026, time.January, 1)))
}

func TestAddDaysNormalizes(t *testing.T) {
	assert.Equal(t, New(2025, time.February, 1), New(2025, time.January, 31).AddDays(1))
	assert.Equal(t, New(2024, time.February, 29), New(2024, time.March, 1).AddDays(-1))
}

func TestParseAndJSON(t *testing.T) {
	d, err := Parse("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, New(2025, time.February, 28), d)

	_, err = Parse("28/02/2025")
	require.Error(t, err)

	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2025-02-28"`, string(b))

	var back Date
	require.NoError(t, back.UnmarshalJSON(b))
	assert.True(t, back.Equal(d))

	require.NoError(t, back.UnmarshalJSON([]byte("null")))
	assert.True(t, back.IsZero())
}

func TestDateIsComparable(t *testing.T) {
	set := map[Date]struct{}{}
	set[New(2025, time.May, 1)] = struct{}{}
	set[FromTime(time.Date(2025, time.May, 1, 18, 4, 2, 0, time.UTC))] = struct{}{}
	assert.Len(t, set, 1)
}

func TestFixedClock(t *testing.T) {
	d := New(2025, time.January, 2)
	assert.Equal(t, d, Fixed(d).Today())
}
