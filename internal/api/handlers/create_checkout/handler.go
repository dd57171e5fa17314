package create_checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	createCheckout "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_checkout"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "пользователь не авторизован"
	msgPaymentsDisabled   = "онлайн-оплата отключена"
	msgGatewayUnavailable = "платежный шлюз не настроен"
	msgForbidden          = "оплатить бронирование может только его владелец"
	msgNotFound           = "бронирование не найдено"
	msgBlockedBooking     = "заблокированный слот не оплачивается"
	msgAlreadyProcessed   = "бронирование уже оплачено или обработано"
)

type Handler struct {
	useCase CreateCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/create-checkout-session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /payments/create-checkout-session - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateCheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/create-checkout-session - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createCheckout.Request{
		Actor:     actor,
		BookingID: req.BookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, createCheckout.ErrPaymentsDisabled):
			handlers.RespondError(w, http.StatusNotImplemented, msgPaymentsDisabled)

		case errors.Is(err, createCheckout.ErrGatewayNotConfigured):
			h.logger.Error("POST /payments/create-checkout-session - Gateway not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgGatewayUnavailable)

		case errors.Is(err, createCheckout.ErrAccessDenied):
			h.logger.Warn("POST /payments/create-checkout-session - Forbidden: booking_id=%d, user_id=%d",
				req.BookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createCheckout.ErrBookingNotFound):
			h.logger.Warn("POST /payments/create-checkout-session - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createCheckout.ErrBlockedBooking):
			handlers.RespondBadRequest(w, msgBlockedBooking)

		case errors.Is(err, createCheckout.ErrAlreadyProcessed):
			h.logger.Warn("POST /payments/create-checkout-session - Already processed: booking_id=%d", req.BookingID)
			handlers.RespondBadRequest(w, msgAlreadyProcessed)

		default:
			h.logger.Error("POST /payments/create-checkout-session - Failed to create session: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/create-checkout-session - Session created: booking_id=%d, user_id=%d",
		req.BookingID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
