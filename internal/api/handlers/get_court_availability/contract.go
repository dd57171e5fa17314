package get_court_availability

import (
	"context"

	getAvailability "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_court_availability"
)

type GetCourtAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
