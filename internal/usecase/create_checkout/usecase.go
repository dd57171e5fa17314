package create_checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/stripe"
)

// UseCase use case для инициации оплаты бронирования
type UseCase struct {
	bookingRepo BookingRepository
	gateway     PaymentGateway
	enabled     bool
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// enabled - флаг payments.enabled из конфигурации
func NewUseCase(bookingRepo BookingRepository, gateway PaymentGateway, enabled bool, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		gateway:     gateway,
		enabled:     enabled,
		logger:      logger,
	}
}

// Execute создает checkout-сессию для неоплаченного бронирования владельца
// и сохраняет ID сессии в бронировании
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !uc.enabled {
		return nil, ErrPaymentsDisabled
	}

	// 1. Платят только пользователи
	if !req.Actor.Can(domain.OpInitiatePayment) {
		uc.logger.Warn("CreateCheckout: role=%s cannot pay, user=%d", req.Actor.Role, req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	// 2. Бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CreateCheckout: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CreateCheckout: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Только свое бронирование
	if !booking.IsOwnedBy(req.Actor.UserID) {
		uc.logger.Warn("CreateCheckout: user=%d is not owner of booking id=%d", req.Actor.UserID, booking.ID)
		return nil, ErrAccessDenied
	}

	// 4. Предусловия оплаты
	if booking.IsBlocked {
		uc.logger.Warn("CreateCheckout: booking id=%d is blocked", booking.ID)
		return nil, ErrBlockedBooking
	}
	if booking.PaymentStatus != domain.PaymentPending || booking.Status != domain.StatusPending {
		uc.logger.Warn("CreateCheckout: booking id=%d has status=%s, payment=%s",
			booking.ID, booking.Status, booking.PaymentStatus)
		return nil, ErrAlreadyProcessed
	}

	// 5. Сессия в платежном шлюзе
	session, err := uc.gateway.CreateCheckoutSession(ctx, &stripe.CheckoutSessionRequest{
		AmountMinor: domain.ToMinorUnits(booking.TotalPrice),
		ProductName: fmt.Sprintf("Padel court booking #%d", booking.ID),
		Metadata: map[string]string{
			stripe.MetadataBookingID: strconv.FormatInt(booking.ID, 10),
			stripe.MetadataUserID:    strconv.FormatInt(req.Actor.UserID, 10),
		},
	})
	if err != nil {
		if errors.Is(err, stripe.ErrNotConfigured) {
			uc.logger.Error("CreateCheckout: payment gateway is not configured")
			return nil, ErrGatewayNotConfigured
		}
		uc.logger.Error("CreateCheckout: failed to create session for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to create checkout session: %v", ErrInternal, err)
	}

	// 6. Сохраняем ID сессии
	if err := uc.bookingRepo.SetCheckoutSession(ctx, booking.ID, session.ID); err != nil {
		uc.logger.Error("CreateCheckout: failed to save session id for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to save checkout session: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateCheckout: session=%s created for booking id=%d, amount=%.2f",
		session.ID, booking.ID, booking.TotalPrice)

	return &Response{CheckoutURL: session.URL}, nil
}
