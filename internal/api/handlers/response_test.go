package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "slot taken")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusConflict, Message: "slot taken"}, body)
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		CourtID int64 `json:"court_id"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"court_id": 3}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, int64(3), dst.CourtID)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"court": 3}`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestWindowReason(t *testing.T) {
	err := domain.ValidateWindow(
		mustParse(t, "2030-05-10T11:00:00Z"),
		mustParse(t, "2030-05-10T10:00:00Z"),
	)
	assert.Equal(t, "end time must be after start time", WindowReason(err))
}

func TestParsePagination(t *testing.T) {
	skip, limit, err := ParsePagination(httptest.NewRequest(http.MethodGet, "/?skip=20&limit=10", nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(20), skip)
	assert.Equal(t, uint64(10), limit)

	_, _, err = ParsePagination(httptest.NewRequest(http.MethodGet, "/?limit=0", nil))
	assert.Error(t, err)

	_, _, err = ParsePagination(httptest.NewRequest(http.MethodGet, "/?skip=-1", nil))
	assert.Error(t, err)
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return v
}
