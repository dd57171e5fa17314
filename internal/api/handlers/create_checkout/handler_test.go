package create_checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	createCheckout "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_checkout"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type useCaseStub struct {
	err error
}

func (s useCaseStub) Execute(context.Context, *createCheckout.Request) (*createCheckout.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &createCheckout.Response{CheckoutURL: "https://checkout.stripe.com/c/pay/cs_test"}, nil
}

func serve(err error) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/create-checkout-session",
		strings.NewReader(`{"booking_id": 12}`))
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 5, Role: domain.RoleUser}))
	rec := httptest.NewRecorder()
	NewHandler(useCaseStub{err: err}, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	rec := serve(nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"checkout_url":"https://checkout.stripe.com/c/pay/cs_test"}`, rec.Body.String())
}

func TestHandler_ErrorMapping(t *testing.T) {
	cases := map[error]int{
		createCheckout.ErrPaymentsDisabled:     http.StatusNotImplemented,
		createCheckout.ErrGatewayNotConfigured: http.StatusServiceUnavailable,
		createCheckout.ErrAccessDenied:         http.StatusForbidden,
		createCheckout.ErrBookingNotFound:      http.StatusNotFound,
		createCheckout.ErrBlockedBooking:       http.StatusBadRequest,
		createCheckout.ErrAlreadyProcessed:     http.StatusBadRequest,
		createCheckout.ErrInternal:             http.StatusInternalServerError,
	}

	for err, want := range cases {
		assert.Equal(t, want, serve(err).Code, err.Error())
	}
}
