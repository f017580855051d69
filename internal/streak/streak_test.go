package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"Tracker/internal/dates"
)

var today = dates.New(2025, time.June, 15)

func done(offsets ...int) []Event {
	out := make([]Event, len(offsets))
	for i, o := range offsets {
		out[i] = Event{Done: true, Day: today.AddDays(o)}
	}
	return out
}

func TestCurrent(t *testing.T) {
	assert.Equal(t, 0, Current(nil, today))
	assert.Equal(t, 0, Current([]Event{{Done: false, Day: today}}, today))

	assert.Equal(t, 1, Current(done(0), today))
	assert.Equal(t, 3, Current(done(0, -1, -2), today))

	// Streak ending yesterday still counts.
	assert.Equal(t, 2, Current(done(-1, -2), today))

	// Gap before today/yesterday breaks it.
	assert.Equal(t, 0, Current(done(-2), today))
	assert.Equal(t, 0, Current(done(-2, -3, -4), today))

	// Gap inside the run stops the count.
	assert.Equal(t, 2, Current(done(0, -1, -3, -4), today))
}

func TestCurrentDeduplicatesDays(t *testing.T) {
	events := append(done(0, 0, 0, -1), Event{Done: false, Day: today.AddDays(-2)})
	assert.Equal(t, 2, Current(events, today))
}

func TestCurrentAcrossMonthBoundary(t *testing.T) {
	first := dates.New(2025, time.March, 1)
	events := []Event{
		{Done: true, Day: first},
		{Done: true, Day: dates.New(2025, time.February, 28)},
		{Done: true, Day: dates.New(2025, time.February, 27)},
	}
	assert.Equal(t, 3, Current(events, first))
}

func TestProductiveDays(t *testing.T) {
	assert.Equal(t, 0, ProductiveDays(nil))
	assert.Equal(t, 2, ProductiveDays(done(0, 0, -5)))

	mixed := append(done(-1), Event{Done: false, Day: today})
	assert.Equal(t, 1, ProductiveDays(mixed))
}
