package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	updateBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model, все поля опциональны
type UpdateBookingRequest struct {
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Status    *string    `json:"status,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(actor domain.Actor, bookingID int64) *updateBooking.Request {
	return &updateBooking.Request{
		Actor:     actor,
		BookingID: bookingID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    r.Status,
		Notes:     r.Notes,
	}
}
