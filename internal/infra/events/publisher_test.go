package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange = exchange
	c.key = key
	c.msg = msg
	return c.err
}

func (c *fakeChannel) Close() error { return nil }

func TestPublisher_PublishBookingEvent(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, exchange: "court_booking.events"}

	now := time.Date(2030, 5, 10, 9, 0, 0, 0, time.UTC)
	booking := &domain.Booking{
		ID:            42,
		UserID:        7,
		CourtID:       3,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
		StartTime:     now.Add(time.Hour),
		EndTime:       now.Add(2 * time.Hour),
	}

	err := p.PublishBookingEvent(context.Background(), domain.NewBookingEvent(domain.EventBookingCreated, booking, now))
	require.NoError(t, err)

	assert.Equal(t, "court_booking.events", ch.exchange)
	assert.Equal(t, domain.EventBookingCreated, ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.NotEmpty(t, ch.msg.MessageId)
	assert.Equal(t, now, ch.msg.Timestamp)

	var decoded domain.BookingEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.Equal(t, int64(42), decoded.BookingID)
	assert.Equal(t, domain.StatusPending, decoded.Status)
}

func TestPublisher_PublishError(t *testing.T) {
	p := &Publisher{ch: &fakeChannel{err: errors.New("channel closed")}, exchange: "x"}

	err := p.PublishBookingEvent(context.Background(), domain.BookingEvent{Type: domain.EventBookingPaid})
	assert.ErrorIs(t, err, ErrPublish)
}
