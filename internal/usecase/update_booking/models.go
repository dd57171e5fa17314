package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request частичное обновление бронирования
// nil означает, что поле не передано и не меняется
type Request struct {
	Actor     domain.Actor
	BookingID int64
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string
	Notes     *string
}

func (r *Request) changesTime() bool {
	return r.StartTime != nil || r.EndTime != nil
}
