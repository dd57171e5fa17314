package get_court_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_court_availability"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgMissingDate    = "параметр date обязателен"
	msgInvalidDate    = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgCourtNotFound  = "корт не найден или неактивен"
)

type Handler struct {
	useCase GetCourtAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetCourtAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /courts/{id}/availability - Missing date: court_id=%d", courtID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		CourtID: courtID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /courts/{id}/availability - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/availability - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("GET /courts/{id}/availability - Failed to get availability: court_id=%d, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/availability - Availability retrieved: court_id=%d, date=%s, occupied=%d",
		courtID, date, len(result.OccupiedHours))
	handlers.RespondJSON(w, http.StatusOK, result)
}
