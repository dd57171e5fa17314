package block_timeslot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	blockTimeslot "github.com/m04kA/SMC-CourtBookingService/internal/usecase/block_timeslot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "пользователь не авторизован"
	msgForbidden          = "блокировать слоты могут только администраторы и менеджеры"
	msgCourtNotFound      = "корт не найден или неактивен"
	msgSlotNotAvailable   = "корт занят в выбранное время"
	msgInvalidData        = "некорректные данные блокировки"
)

type Handler struct {
	useCase BlockTimeslotUseCase
	logger  Logger
}

func NewHandler(useCase BlockTimeslotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/block - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req BlockTimeslotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/block - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, blockTimeslot.ErrAccessDenied):
			h.logger.Warn("POST /bookings/block - Forbidden: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, blockTimeslot.ErrInvalidWindow):
			h.logger.Warn("POST /bookings/block - Invalid window: error=%v", err)
			handlers.RespondBadRequest(w, handlers.WindowReason(err))

		case errors.Is(err, blockTimeslot.ErrInvalidInput):
			h.logger.Warn("POST /bookings/block - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, blockTimeslot.ErrCourtNotFound):
			h.logger.Warn("POST /bookings/block - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, blockTimeslot.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings/block - Slot not available: court_id=%d", req.CourtID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings/block - Failed to block timeslot: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/block - Timeslot blocked: booking_id=%d, court_id=%d, by user_id=%d",
		result.ID, req.CourtID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
