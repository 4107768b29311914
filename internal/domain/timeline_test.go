package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPositionBar(t *testing.T) {
	windowStart := date(2025, 6, 1)
	windowEnd := date(2025, 6, 8) // 7-day window
	const cellWidth = 50

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected BarPosition
	}{
		{
			name:    "fully inside the window",
			checkIn: date(2025, 6, 2), checkOut: date(2025, 6, 5),
			expected: BarPosition{Left: 50, Width: 150, Visible: true},
		},
		{
			name:    "clipped at the window start",
			checkIn: date(2025, 5, 30), checkOut: date(2025, 6, 3),
			expected: BarPosition{Left: 0, Width: 100, Visible: true},
		},
		{
			name:    "clipped at the window end",
			checkIn: date(2025, 6, 6), checkOut: date(2025, 6, 12),
			expected: BarPosition{Left: 250, Width: 100, Visible: true},
		},
		{
			name:    "spans the whole window",
			checkIn: date(2025, 5, 1), checkOut: date(2025, 7, 1),
			expected: BarPosition{Left: 0, Width: 350, Visible: true},
		},
		{
			name:    "single visible day at the boundary still renders one cell",
			checkIn: date(2025, 5, 20), checkOut: date(2025, 6, 2),
			expected: BarPosition{Left: 0, Width: 50, Visible: true},
		},
		{
			name:    "ends exactly at window start - not visible",
			checkIn: date(2025, 5, 25), checkOut: date(2025, 6, 1),
			expected: BarPosition{Visible: false},
		},
		{
			name:    "starts exactly at window end - not visible",
			checkIn: date(2025, 6, 8), checkOut: date(2025, 6, 10),
			expected: BarPosition{Visible: false},
		},
		{
			name:    "entirely before the window",
			checkIn: date(2025, 5, 1), checkOut: date(2025, 5, 10),
			expected: BarPosition{Visible: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PositionBar(tt.checkIn, tt.checkOut, windowStart, windowEnd, cellWidth)
			assert.Equal(t, tt.expected, got)

			if got.Visible {
				assert.GreaterOrEqual(t, got.Width, cellWidth, "visible bar is never narrower than one cell")
			}
		})
	}
}

// Visibility must exactly mirror interval intersection with the window.
func TestPositionBar_VisibilityMatchesOverlap(t *testing.T) {
	windowStart := date(2025, 6, 1)
	windowEnd := date(2025, 6, 15)

	for offset := -20; offset <= 20; offset++ {
		checkIn := windowStart.AddDate(0, 0, offset)
		checkOut := checkIn.AddDate(0, 0, 3)

		got := PositionBar(checkIn, checkOut, windowStart, windowEnd, 40)
		assert.Equal(t, Overlaps(checkIn, checkOut, windowStart, windowEnd), got.Visible,
			"offset=%d", offset)
	}
}

// Positioning must ignore time-of-day on every input date.
func TestPositionBar_NormalizesTimeComponents(t *testing.T) {
	clean := PositionBar(date(2025, 6, 2), date(2025, 6, 5), date(2025, 6, 1), date(2025, 6, 8), 50)
	dirty := PositionBar(
		date(2025, 6, 2).Add(14*time.Hour),
		date(2025, 6, 5).Add(11*time.Hour+30*time.Minute),
		date(2025, 6, 1).Add(1*time.Minute),
		date(2025, 6, 8).Add(23*time.Hour),
		50,
	)
	assert.Equal(t, clean, dirty)
}

func TestOccupiesDay(t *testing.T) {
	b := &Booking{CheckIn: date(2025, 6, 10), CheckOut: date(2025, 6, 13)}

	assert.False(t, b.OccupiesDay(date(2025, 6, 9)))
	assert.True(t, b.OccupiesDay(date(2025, 6, 10)))
	assert.True(t, b.OccupiesDay(date(2025, 6, 12)))
	assert.False(t, b.OccupiesDay(date(2025, 6, 13)), "check-out day is not occupied")
}
