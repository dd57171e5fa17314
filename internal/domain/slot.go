package domain

import (
	"fmt"
	"time"
)

// DayAvailability hourly breakdown of a court's day
type DayAvailability struct {
	CourtID  int64
	Date     time.Time
	Occupied []string
	Free     []string
}

// HourSlot one hour of a day, [Start, End)
type HourSlot struct {
	Start time.Time
	End   time.Time
}

// Label returns "HH:MM-HH:MM"
func (s HourSlot) Label() string {
	return fmt.Sprintf("%s-%s", s.Start.Format(TimeFormat), s.End.Format(TimeFormat))
}

// HourSlots returns the 24 hourly slots starting at dayStart
func HourSlots(dayStart time.Time) []HourSlot {
	slots := make([]HourSlot, 0, HoursPerDay)
	for hour := 0; hour < HoursPerDay; hour++ {
		start := dayStart.Add(time.Duration(hour) * time.Hour)
		slots = append(slots, HourSlot{Start: start, End: start.Add(time.Hour)})
	}
	return slots
}

// BuildDayAvailability partitions the day's hourly slots into occupied and free.
// Only active bookings occupy a slot.
func BuildDayAvailability(courtID int64, dayStart time.Time, bookings []*Booking) *DayAvailability {
	result := &DayAvailability{
		CourtID:  courtID,
		Date:     dayStart,
		Occupied: make([]string, 0),
		Free:     make([]string, 0),
	}

	for _, slot := range HourSlots(dayStart) {
		occupied := false
		for _, b := range bookings {
			if b.IsActive() && Overlaps(b.StartTime, b.EndTime, slot.Start, slot.End) {
				occupied = true
				break
			}
		}

		if occupied {
			result.Occupied = append(result.Occupied, slot.Label())
		} else {
			result.Free = append(result.Free, slot.Label())
		}
	}

	return result
}
