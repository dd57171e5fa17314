package list_courts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

const (
	msgInvalidPagination = "некорректные параметры skip/limit"
	msgInvalidActiveOnly = "некорректный параметр active_only"
	msgInvalidQuery      = "некорректные параметры запроса"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts?skip=&limit=&active_only=
// По умолчанию возвращаются только активные корты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := handlers.ParsePagination(r)
	if err != nil {
		h.logger.Warn("GET /courts - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	activeOnly := true
	if v := r.URL.Query().Get("active_only"); v != "" {
		activeOnly, err = strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /courts - Invalid active_only: %v", err)
			handlers.RespondBadRequest(w, msgInvalidActiveOnly)
			return
		}
	}

	result, err := h.service.List(r.Context(), &models.ListCourtsRequest{
		ActiveOnly: activeOnly,
		Skip:       skip,
		Limit:      limit,
	})
	if err != nil {
		if errors.Is(err, courts.ErrInvalidInput) {
			h.logger.Warn("GET /courts - Invalid query: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courts - Courts retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
