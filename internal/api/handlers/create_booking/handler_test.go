package create_booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type useCaseStub struct {
	resp *models.BookingResponse
	err  error
	got  *createBooking.Request
}

func (s *useCaseStub) Execute(_ context.Context, req *createBooking.Request) (*models.BookingResponse, error) {
	s.got = req
	return s.resp, s.err
}

const body = `{"court_id": 1, "start_time": "2030-05-10T10:00:00Z", "end_time": "2030-05-10T11:30:00Z"}`

func serve(uc *useCaseStub, payload string, withActor bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	if withActor {
		req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 5, Role: domain.RoleUser}))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &useCaseStub{resp: &models.BookingResponse{ID: 9, Status: "pending", TotalPrice: 30}}

	rec := serve(uc, body, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_price":30`)
	assert.Equal(t, int64(5), uc.got.Actor.UserID)
	assert.Equal(t, int64(1), uc.got.CourtID)
}

func TestHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{createBooking.ErrAccessDenied, http.StatusForbidden},
		{fmt.Errorf("%w: %w", createBooking.ErrInvalidWindow, &domain.WindowError{Reason: "x"}), http.StatusBadRequest},
		{createBooking.ErrPastBooking, http.StatusBadRequest},
		{createBooking.ErrCourtNotFound, http.StatusNotFound},
		{createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := serve(&useCaseStub{err: tc.err}, body, true)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestHandler_BadRequests(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&useCaseStub{}, `{"court_id": "x"}`, true).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(&useCaseStub{}, body, false).Code)
}
