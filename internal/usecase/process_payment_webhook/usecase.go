package process_payment_webhook

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/stripe"
)

// UseCase синхронизирует статус оплаты бронирования по событиям шлюза
type UseCase struct {
	bookingRepo BookingRepository
	parser      WebhookParser
	events      EventStore
	publisher   EventPublisher
	metrics     Metrics
	enabled     bool
	logger      Logger
	now         func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	parser WebhookParser,
	events EventStore,
	publisher EventPublisher,
	metrics Metrics,
	enabled bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		parser:      parser,
		events:      events,
		publisher:   publisher,
		metrics:     metrics,
		enabled:     enabled,
		logger:      logger,
		now:         time.Now,
	}
}

// Execute обрабатывает проверенное событие шлюза
// Успешная оплата одним UPDATE ставит payment_status = paid и подтверждает pending бронирование.
// Неизвестное бронирование, событие без booking_id и другие типы событий подтверждаются без ошибки:
// повторная доставка такого события ничего не изменит
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	if !uc.enabled {
		return ErrPaymentsDisabled
	}

	// 1. Проверка подписи
	event, err := uc.parser.ParseWebhook(req.Payload, req.Signature)
	if err != nil {
		if errors.Is(err, stripe.ErrNotConfigured) {
			uc.logger.Error("PaymentWebhook: webhook secret is not configured")
			return ErrWebhookNotConfigured
		}
		uc.logger.Warn("PaymentWebhook: rejected event: %v", err)
		uc.metrics.IncPaymentWebhook(OutcomeInvalidSignature)
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	// 2. Повторная доставка
	acquired, err := uc.events.Acquire(ctx, event.ID)
	if err != nil {
		// Без хранилища обработка остается идемпотентной за счет условия payment_status = pending
		uc.logger.Warn("PaymentWebhook: event store unavailable for event=%s: %v", event.ID, err)
		acquired = true
	}
	if !acquired {
		uc.logger.Info("PaymentWebhook: event=%s already processed", event.ID)
		uc.metrics.IncPaymentWebhook(OutcomeDuplicate)
		return nil
	}

	// 3. Интересует только завершенная checkout-сессия
	if event.Type != stripe.EventCheckoutSessionCompleted {
		uc.logger.Info("PaymentWebhook: event=%s type=%s ignored", event.ID, event.Type)
		uc.metrics.IncPaymentWebhook(OutcomeIgnored)
		return nil
	}

	rawID := event.Metadata[stripe.MetadataBookingID]
	bookingID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || bookingID <= 0 {
		uc.logger.Warn("PaymentWebhook: event=%s has no valid booking_id (%q)", event.ID, rawID)
		uc.metrics.IncPaymentWebhook(OutcomeIgnored)
		return nil
	}

	// 4. Оплата и подтверждение одним UPDATE
	booking, err := uc.bookingRepo.MarkPaid(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrPaymentNotPending) {
			uc.logger.Warn("PaymentWebhook: event=%s booking id=%d not found or already paid", event.ID, bookingID)
			uc.metrics.IncPaymentWebhook(OutcomeUnmatched)
			return nil
		}

		uc.logger.Error("PaymentWebhook: failed to mark booking id=%d paid: %v", bookingID, err)
		uc.metrics.IncPaymentWebhook(OutcomeError)
		if releaseErr := uc.events.Release(ctx, event.ID); releaseErr != nil {
			uc.logger.Warn("PaymentWebhook: failed to release event=%s: %v", event.ID, releaseErr)
		}
		return fmt.Errorf("%w: mark paid: %v", ErrInternal, err)
	}

	uc.logger.Info("PaymentWebhook: booking id=%d paid, status=%s", booking.ID, booking.Status)
	uc.metrics.IncPaymentWebhook(OutcomePaid)
	uc.metrics.IncBookingEvent(domain.EventBookingPaid)

	if err := uc.publisher.PublishBookingEvent(ctx, domain.NewBookingEvent(domain.EventBookingPaid, booking, uc.now())); err != nil {
		uc.logger.Warn("PaymentWebhook: failed to publish event for booking id=%d: %v", booking.ID, err)
	}

	return nil
}
