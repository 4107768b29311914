package domain

import "time"

// BarPosition is the pixel position of a booking bar inside a timeline
// window. Derived, never persisted.
type BarPosition struct {
	Left    int  // pixel offset from the window start
	Width   int  // pixel width, always >= one cell when visible
	Visible bool // false when the booking does not intersect the window
}

// PositionBar projects a booking interval [checkIn, checkOut) onto a visible
// window [windowStart, windowEnd) of day cells, cellWidth pixels per day.
//
// All dates are normalized to midnight first. A booking outside the window is
// not positioned. A booking partially outside is clipped to the window, and a
// visible bar always renders at least one cell wide, even when clipped down
// to a single day at a window boundary.
//
// Pure: identical inputs always produce identical output, and the result does
// not depend on the wall clock.
func PositionBar(checkIn, checkOut, windowStart, windowEnd time.Time, cellWidth int) BarPosition {
	checkIn, checkOut = NormalizeDate(checkIn), NormalizeDate(checkOut)
	windowStart, windowEnd = NormalizeDate(windowStart), NormalizeDate(windowEnd)

	// Empty intersection with the window
	if !checkOut.After(windowStart) || !checkIn.Before(windowEnd) {
		return BarPosition{Visible: false}
	}

	visibleStart := checkIn
	if visibleStart.Before(windowStart) {
		visibleStart = windowStart
	}
	visibleEnd := checkOut
	if visibleEnd.After(windowEnd) {
		visibleEnd = windowEnd
	}

	daysFromStart := DaysBetween(windowStart, visibleStart)

	durationDays := DaysBetween(visibleStart, visibleEnd)
	if durationDays < 1 {
		durationDays = 1
	}

	width := durationDays * cellWidth
	if width < cellWidth {
		width = cellWidth
	}

	return BarPosition{
		Left:    daysFromStart * cellWidth,
		Width:   width,
		Visible: true,
	}
}

// OccupiesDay reports whether the booking interval covers the given calendar
// day. Used to mark occupied cells on the timeline grid.
func (b *Booking) OccupiesDay(day time.Time) bool {
	day = NormalizeDate(day)
	return !day.Before(NormalizeDate(b.CheckIn)) && day.Before(NormalizeDate(b.CheckOut))
}
