package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

const testSecret = "test-secret"

type usersStub map[int64]*domain.User

func (s usersStub) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if id == 500 {
		return nil, errors.New("db down")
	}
	u, ok := s[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, sub string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub": sub,
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestAuth_Middleware(t *testing.T) {
	users := usersStub{
		1: {ID: 1, Role: domain.RoleManager, IsActive: true},
		2: {ID: 2, Role: domain.RoleUser, IsActive: false},
	}
	auth := NewAuth(testSecret, users, logger.NewNop())

	var got domain.Actor
	protected := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetActor(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	future := time.Now().Add(time.Hour)
	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "1", future), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), "1", future), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "1", time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"wrong algorithm", "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), "1", future), http.StatusUnauthorized},
		{"non numeric subject", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "bob", future), http.StatusUnauthorized},
		{"unknown user", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "9", future), http.StatusUnauthorized},
		{"inactive user", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "2", future), http.StatusUnauthorized},
		{"repository failure", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), strconv.Itoa(500), future), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}

	assert.Equal(t, domain.Actor{UserID: 1, Role: domain.RoleManager}, got)
}

type httpMetricsStub struct {
	route, status string
}

func (m *httpMetricsStub) ObserveHTTPRequest(_, route, status string, _ float64) {
	m.route = route
	m.status = status
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := &httpMetricsStub{}
	router := mux.NewRouter()
	router.Use(Metrics(m))
	router.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/42", nil))

	assert.Equal(t, "/bookings/{bookingId}", m.route)
	assert.Equal(t, "404", m.status)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "abc", seen)
}

func TestRecovery(t *testing.T) {
	h := Recovery(logger.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
