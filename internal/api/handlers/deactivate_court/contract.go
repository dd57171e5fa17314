package deactivate_court

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

type CourtService interface {
	Deactivate(ctx context.Context, id int64, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
