package block_timeslot

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request запрос на административную блокировку слота
type Request struct {
	Actor     domain.Actor
	CourtID   int64
	StartTime time.Time
	EndTime   time.Time
	Notes     *string
}
