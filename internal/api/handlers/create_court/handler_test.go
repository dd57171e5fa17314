package create_court

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type serviceStub struct {
	err error
}

func (s serviceStub) Create(_ context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.CourtResponse{ID: 1, Name: req.Name, HourlyRate: req.HourlyRate, IsActive: true}, nil
}

func serve(err error, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/courts", strings.NewReader(payload))
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 1, Role: domain.RoleManager}))
	rec := httptest.NewRecorder()
	NewHandler(serviceStub{err: err}, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	const payload = `{"name": "Court 1", "hourly_rate": 20}`

	rec := serve(nil, payload)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Court 1"`)

	assert.Equal(t, http.StatusForbidden, serve(courts.ErrAccessDenied, payload).Code)
	assert.Equal(t, http.StatusBadRequest, serve(courts.ErrInvalidInput, payload).Code)
	assert.Equal(t, http.StatusBadRequest, serve(nil, `{"name": 1}`).Code)
}
