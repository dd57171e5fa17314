package payment_webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	processWebhook "github.com/m04kA/SMC-CourtBookingService/internal/usecase/process_payment_webhook"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type useCaseStub struct {
	err error
	got *processWebhook.Request
}

func (s *useCaseStub) Execute(_ context.Context, req *processWebhook.Request) error {
	s.got = req
	return s.err
}

func serve(uc *useCaseStub) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(`{"id":"evt_1"}`))
	req.Header.Set(HeaderSignature, "t=1,v1=abc")
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler_PassesRawPayload(t *testing.T) {
	uc := &useCaseStub{}
	rec := serve(uc)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, `{"id":"evt_1"}`, string(uc.got.Payload))
	assert.Equal(t, "t=1,v1=abc", uc.got.Signature)
}

func TestHandler_ErrorMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotImplemented, serve(&useCaseStub{err: processWebhook.ErrPaymentsDisabled}).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&useCaseStub{err: processWebhook.ErrWebhookNotConfigured}).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&useCaseStub{err: processWebhook.ErrInvalidSignature}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&useCaseStub{err: processWebhook.ErrInternal}).Code)
}
