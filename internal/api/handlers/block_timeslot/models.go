package block_timeslot

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	blockTimeslot "github.com/m04kA/SMC-CourtBookingService/internal/usecase/block_timeslot"
)

// BlockTimeslotRequest HTTP request model
type BlockTimeslotRequest struct {
	CourtID   int64     `json:"court_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Notes     *string   `json:"notes,omitempty"` // причина блокировки (турнир, ремонт)
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BlockTimeslotRequest) ToUseCaseRequest(actor domain.Actor) *blockTimeslot.Request {
	return &blockTimeslot.Request{
		Actor:     actor,
		CourtID:   r.CourtID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Notes:     r.Notes,
	}
}
