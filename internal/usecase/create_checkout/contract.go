package create_checkout

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/stripe"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	SetCheckoutSession(ctx context.Context, id int64, sessionID string) error
}

// PaymentGateway интерфейс клиента платежного шлюза
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req *stripe.CheckoutSessionRequest) (*stripe.CheckoutSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
