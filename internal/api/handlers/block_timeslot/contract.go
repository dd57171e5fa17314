package block_timeslot

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	blockTimeslot "github.com/m04kA/SMC-CourtBookingService/internal/usecase/block_timeslot"
)

type BlockTimeslotUseCase interface {
	Execute(ctx context.Context, req *blockTimeslot.Request) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
