package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents the payment sub-state of a booking
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentWaived  PaymentStatus = "waived"
)

// Booking represents a reservation of a court for a half-open interval [StartTime, EndTime)
type Booking struct {
	ID            int64
	UserID        int64
	CourtID       int64
	StartTime     time.Time
	EndTime       time.Time
	Status        BookingStatus
	PaymentStatus PaymentStatus
	IsBlocked     bool
	TotalPrice    float64
	Notes         *string

	// Идентификатор checkout-сессии платежного шлюза
	CheckoutSessionID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its court
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// IsActive returns true for statuses that block the court
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal returns true for statuses with no outgoing transitions
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Staying in the same status is always allowed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// IsValid returns true for known payment statuses
func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentWaived:
		return true
	}
	return false
}

// BookingsFilter фильтр для списка бронирований
type BookingsFilter struct {
	UserID *int64         // Только бронирования пользователя (nil - все)
	Status *BookingStatus // Фильтр по статусу (опционально)
	Offset uint64
	Limit  uint64
}
