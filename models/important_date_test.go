package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTimeline(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)

	cases := []struct {
		name      string
		date      time.Time
		passed    bool
		remaining int
	}{
		{"future", time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), false, 10},
		{"today", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), false, 0},
		{"yesterday", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), true, -1},
		{"past", time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), true, -10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := ImportantDate{DateValue: tc.date}
			d.ApplyTimeline(now)
			assert.Equal(t, tc.passed, d.IsPassed)
			assert.Equal(t, tc.remaining, d.DaysRemaining)
		})
	}
}

func TestApplyTimelineIgnoresTimeOfDay(t *testing.T) {
	d := ImportantDate{DateValue: time.Date(2026, 3, 11, 23, 59, 0, 0, time.UTC)}
	d.ApplyTimeline(time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC))
	assert.False(t, d.IsPassed)
	assert.Equal(t, 1, d.DaysRemaining)
}

func TestExtendKeepsFirstOriginalDate(t *testing.T) {
	first := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	third := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	d := ImportantDate{DateValue: first}
	d.Extend(second)
	d.Extend(third)

	require.NotNil(t, d.OriginalDate)
	assert.True(t, d.IsExtended)
	assert.Equal(t, first, *d.OriginalDate)
	assert.Equal(t, third, d.DateValue)
}

func TestEditionCanBeDeleted(t *testing.T) {
	assert.True(t, (&Edition{Status: EditionStatusDraft}).CanBeDeleted())
	assert.True(t, (&Edition{Status: EditionStatusArchived}).CanBeDeleted())
	assert.False(t, (&Edition{Status: EditionStatusPublished}).CanBeDeleted())
	assert.False(t, (&Edition{Status: EditionStatusDraft, IsActiveEdition: true}).CanBeDeleted())
	assert.Equal(t, "2026", SlugForYear(2026))
}
