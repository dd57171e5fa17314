package payment_webhook

import (
	"context"

	processWebhook "github.com/m04kA/SMC-CourtBookingService/internal/usecase/process_payment_webhook"
)

type ProcessWebhookUseCase interface {
	Execute(ctx context.Context, req *processWebhook.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
