package payment_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	processWebhook "github.com/m04kA/SMC-CourtBookingService/internal/usecase/process_payment_webhook"
)

// HeaderSignature заголовок с подписью Stripe
const HeaderSignature = "Stripe-Signature"

// maxPayloadBytes Stripe ограничивает тело события 64KB
const maxPayloadBytes = 65536

const (
	msgInvalidPayload     = "некорректное тело webhook"
	msgPaymentsDisabled   = "онлайн-оплата отключена"
	msgWebhookUnavailable = "webhook не настроен"
	msgInvalidSignature   = "некорректная подпись webhook"
)

type Handler struct {
	useCase ProcessWebhookUseCase
	logger  Logger
}

func NewHandler(useCase ProcessWebhookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/webhook
// Подпись проверяется по сырому телу, поэтому JSON здесь не декодируется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	err = h.useCase.Execute(r.Context(), &processWebhook.Request{
		Payload:   payload,
		Signature: r.Header.Get(HeaderSignature),
	})
	if err != nil {
		switch {
		case errors.Is(err, processWebhook.ErrPaymentsDisabled):
			handlers.RespondError(w, http.StatusNotImplemented, msgPaymentsDisabled)

		case errors.Is(err, processWebhook.ErrWebhookNotConfigured):
			h.logger.Error("POST /payments/webhook - Webhook secret not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgWebhookUnavailable)

		case errors.Is(err, processWebhook.ErrInvalidSignature):
			h.logger.Warn("POST /payments/webhook - Invalid signature")
			handlers.RespondBadRequest(w, msgInvalidSignature)

		default:
			// 5xx заставляет Stripe повторить доставку
			h.logger.Error("POST /payments/webhook - Failed to process event: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
