package domain

import "time"

// NormalizeDate strips the time-of-day component, returning midnight of the
// same calendar day in the same location. All interval math in the engine
// operates on normalized dates to avoid off-by-one errors from time or
// timezone components.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole days from `from` to `to`
// (negative if `to` is before `from`). The calendar days are compared as
// UTC midnights regardless of the inputs' locations, so DST transitions
// and mixed offsets cannot shorten or stretch a day.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// Overlaps reports whether two half-open day intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. An interval ending on day D does not overlap an
// interval starting on day D: check-out is the morning, check-in the
// afternoon of the same calendar day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = NormalizeDate(aStart), NormalizeDate(aEnd)
	bStart, bEnd = NormalizeDate(bStart), NormalizeDate(bEnd)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflicts returns the bookings whose interval overlaps the candidate
// [checkIn, checkOut) interval. Only active bookings count; cancelled and
// no-show bookings never conflict. When excludeBookingID is set, that booking
// is skipped so an update never conflicts with its own prior record.
func FindConflicts(checkIn, checkOut time.Time, bookings []*Booking, excludeBookingID *int64) []*Booking {
	conflicts := make([]*Booking, 0)

	for _, b := range bookings {
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts
}
