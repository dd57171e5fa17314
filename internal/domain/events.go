package domain

import "time"

// Типы событий жизненного цикла бронирования
const (
	EventBookingCreated   = "booking.created"
	EventBookingBlocked   = "booking.blocked"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
	EventBookingPaid      = "booking.paid"
)

// BookingEvent событие, публикуемое после изменения бронирования
type BookingEvent struct {
	Type          string        `json:"type"`
	BookingID     int64         `json:"booking_id"`
	UserID        int64         `json:"user_id"`
	CourtID       int64         `json:"court_id"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	IsBlocked     bool          `json:"is_blocked"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

// NewBookingEvent builds an event snapshot of b
func NewBookingEvent(eventType string, b *Booking, now time.Time) BookingEvent {
	return BookingEvent{
		Type:          eventType,
		BookingID:     b.ID,
		UserID:        b.UserID,
		CourtID:       b.CourtID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		IsBlocked:     b.IsBlocked,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		OccurredAt:    now,
	}
}
