package domain

import "time"

const (
	reasonEndBeforeStart = "end time must be after start time"
	reasonCrossDay       = "booking must start and end on the same day"
	reasonOutOfDay       = "booking must be between 00:00 and 24:00"
	reasonNotAligned     = "booking times must be on 30-minute slots"
)

// ValidateWindow checks that [start, end) is a well-formed booking window.
// Both times are evaluated in their own location, callers convert them
// to the booking time zone first.
func ValidateWindow(start, end time.Time) error {
	if !end.After(start) {
		return &WindowError{Reason: reasonEndBeforeStart}
	}

	sameDay := SameDate(start, end)
	if !sameDay && !end.Equal(NextMidnight(start)) {
		return &WindowError{Reason: reasonCrossDay}
	}

	if !validHour(start.Hour()) || !validHour(end.Hour()) {
		return &WindowError{Reason: reasonOutOfDay}
	}
	if sameDay && end.Hour() == 23 && end.Minute() > 59 {
		return &WindowError{Reason: reasonOutOfDay}
	}

	return nil
}

// ValidateSlotAlignment checks that t sits on a half-hour boundary
func ValidateSlotAlignment(t time.Time) error {
	if t.Minute()%SlotAlignmentMinutes != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return &WindowError{Reason: reasonNotAligned}
	}
	return nil
}

// Overlaps reports whether half-open intervals [aStart, aEnd) and [bStart, bEnd) intersect
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// SameDate reports whether a and b fall on the same calendar date
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight of t's date in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextMidnight returns midnight of the day following t
func NextMidnight(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

func validHour(h int) bool {
	return h >= 0 && h <= 23
}
