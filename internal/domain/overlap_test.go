package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "contained interval overlaps",
			aStart: date(2025, 6, 10), aEnd: date(2025, 6, 15),
			bStart: date(2025, 6, 12), bEnd: date(2025, 6, 14),
			expected: true,
		},
		{
			name:   "partial overlap at the end",
			aStart: date(2025, 6, 10), aEnd: date(2025, 6, 15),
			bStart: date(2025, 6, 14), bEnd: date(2025, 6, 20),
			expected: true,
		},
		{
			name:   "identical intervals overlap",
			aStart: date(2025, 6, 10), aEnd: date(2025, 6, 15),
			bStart: date(2025, 6, 10), bEnd: date(2025, 6, 15),
			expected: true,
		},
		{
			name:   "adjacent intervals do not overlap (checkout day handed back)",
			aStart: date(2025, 6, 10), aEnd: date(2025, 6, 15),
			bStart: date(2025, 6, 15), bEnd: date(2025, 6, 18),
			expected: false,
		},
		{
			name:   "adjacent intervals the other way around",
			aStart: date(2025, 6, 15), aEnd: date(2025, 6, 18),
			bStart: date(2025, 6, 10), bEnd: date(2025, 6, 15),
			expected: false,
		},
		{
			name:   "disjoint intervals",
			aStart: date(2025, 6, 1), aEnd: date(2025, 6, 5),
			bStart: date(2025, 6, 10), bEnd: date(2025, 6, 12),
			expected: false,
		},
		{
			name:   "time-of-day components are ignored",
			aStart: date(2025, 6, 10).Add(18 * time.Hour), aEnd: date(2025, 6, 15).Add(3 * time.Hour),
			bStart: date(2025, 6, 15).Add(9 * time.Hour), bEnd: date(2025, 6, 18),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))

			// Symmetry: overlaps(A, B) == overlaps(B, A)
			assert.Equal(t, tt.expected, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))

			// Definition: overlaps(A, B) == (a1 < b2 && a2 < b1)
			formula := NormalizeDate(tt.aStart).Before(NormalizeDate(tt.bEnd)) &&
				NormalizeDate(tt.bStart).Before(NormalizeDate(tt.aEnd))
			assert.Equal(t, formula, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestFindConflicts(t *testing.T) {
	existing := []*Booking{
		{ID: 1, BookingNumber: "RES-2025-0001", Status: StatusConfirmed, CheckIn: date(2025, 6, 10), CheckOut: date(2025, 6, 15)},
		{ID: 2, BookingNumber: "RES-2025-0002", Status: StatusCancelled, CheckIn: date(2025, 6, 12), CheckOut: date(2025, 6, 20)},
		{ID: 3, BookingNumber: "RES-2025-0003", Status: StatusNoShow, CheckIn: date(2025, 6, 11), CheckOut: date(2025, 6, 13)},
		{ID: 4, BookingNumber: "RES-2025-0004", Status: StatusCheckedIn, CheckIn: date(2025, 6, 20), CheckOut: date(2025, 6, 25)},
	}

	t.Run("overlapping active booking conflicts", func(t *testing.T) {
		conflicts := FindConflicts(date(2025, 6, 12), date(2025, 6, 14), existing, nil)
		require.Len(t, conflicts, 1)
		assert.Equal(t, int64(1), conflicts[0].ID)
	})

	t.Run("cancelled and no-show bookings never conflict", func(t *testing.T) {
		conflicts := FindConflicts(date(2025, 6, 16), date(2025, 6, 19), existing, nil)
		assert.Empty(t, conflicts)
	})

	t.Run("adjacent booking does not conflict", func(t *testing.T) {
		conflicts := FindConflicts(date(2025, 6, 15), date(2025, 6, 18), existing, nil)
		assert.Empty(t, conflicts)
	})

	t.Run("booking is excluded from comparison against itself", func(t *testing.T) {
		excludeID := int64(1)
		conflicts := FindConflicts(date(2025, 6, 10), date(2025, 6, 15), existing, &excludeID)
		assert.Empty(t, conflicts)
	})

	t.Run("multiple conflicts reported", func(t *testing.T) {
		conflicts := FindConflicts(date(2025, 6, 1), date(2025, 6, 30), existing, nil)
		require.Len(t, conflicts, 2)
		assert.Equal(t, int64(1), conflicts[0].ID)
		assert.Equal(t, int64(4), conflicts[1].ID)
	})
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 5, DaysBetween(date(2025, 6, 10), date(2025, 6, 15)))
	assert.Equal(t, 0, DaysBetween(date(2025, 6, 10), date(2025, 6, 10)))
	assert.Equal(t, -3, DaysBetween(date(2025, 6, 10), date(2025, 6, 7)))

	// Clock components must not shift the day count
	assert.Equal(t, 5, DaysBetween(date(2025, 6, 10).Add(23*time.Hour), date(2025, 6, 15).Add(1*time.Hour)))
}

func TestDaysBetween_AcrossOffsetChange(t *testing.T) {
	// Spring clock change: 47 hours elapse between the two midnights,
	// yet they are two calendar days apart
	cet := time.FixedZone("CET", 1*60*60)
	cest := time.FixedZone("CEST", 2*60*60)

	from := time.Date(2025, 3, 29, 0, 0, 0, 0, cet)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, cest)
	assert.Equal(t, 2, DaysBetween(from, to))

	// Autumn change: 49 hours, still two days
	from = time.Date(2025, 10, 25, 0, 0, 0, 0, cest)
	to = time.Date(2025, 10, 27, 0, 0, 0, 0, cet)
	assert.Equal(t, 2, DaysBetween(from, to))
}

func TestNormalizeDate(t *testing.T) {
	normalized := NormalizeDate(time.Date(2025, 6, 10, 17, 42, 13, 999, time.UTC))
	assert.Equal(t, date(2025, 6, 10), normalized)
}
