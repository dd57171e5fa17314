package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// UseCase use case для частичного обновления бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	availability AvailabilityChecker
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	location     *time.Location
	logger       Logger
	now          func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	availability AvailabilityChecker,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		availability: availability,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		location:     location,
		logger:       logger,
		now:          time.Now,
	}
}

// Execute применяет переданные поля к бронированию
// При изменении времени окно и доступность проверяются заново, само бронирование
// из проверки исключается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("UpdateBooking: booking=%d, user=%d", req.BookingID, req.Actor.UserID)

	// 1. Валидация входных данных
	var newStatus *domain.BookingStatus
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		newStatus = &status
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	var result *domain.Booking

	// 2. Чтение, проверки и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByIDForUpdate(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 2.1. Права: владелец, менеджер или администратор
		if !req.Actor.CanAccess(booking.UserID, domain.OpUpdateAnyBooking) {
			uc.logger.Warn("UpdateBooking: access denied for user=%d to booking id=%d", req.Actor.UserID, req.BookingID)
			return ErrAccessDenied
		}

		// 2.2. Статус меняют только менеджер и администратор
		if newStatus != nil {
			if !req.Actor.Can(domain.OpChangeBookingStatus) {
				uc.logger.Warn("UpdateBooking: user=%d cannot change status", req.Actor.UserID)
				return ErrStatusChangeDenied
			}
			if !booking.Status.CanTransitionTo(*newStatus) {
				uc.logger.Warn("UpdateBooking: transition %s -> %s is not allowed", booking.Status, *newStatus)
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, *newStatus)
			}
			booking.Status = *newStatus
		}

		if req.Notes != nil {
			booking.Notes = req.Notes
		}

		// 2.3. Новое время проверяется заново
		if req.changesTime() {
			if err := uc.applyTimeChange(txCtx, booking, req); err != nil {
				return err
			}
		}

		updated, err := uc.bookingRepo.Update(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("UpdateBooking: exclusion constraint rejected booking id=%d", req.BookingID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncBookingConflict("update")
		}
		return nil, err
	}

	uc.logger.Info("UpdateBooking: booking id=%d updated", result.ID)
	uc.metrics.IncBookingEvent(domain.EventBookingUpdated)

	if err := uc.publisher.PublishBookingEvent(ctx, domain.NewBookingEvent(domain.EventBookingUpdated, result, uc.now())); err != nil {
		uc.logger.Warn("UpdateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	return models.FromDomainBooking(result), nil
}

// applyTimeChange проверяет новое окно и доступность корта, при необходимости пересчитывает цену
func (uc *UseCase) applyTimeChange(ctx context.Context, booking *domain.Booking, req *Request) error {
	start := booking.StartTime.In(uc.location)
	end := booking.EndTime.In(uc.location)
	if req.StartTime != nil {
		start = req.StartTime.In(uc.location)
	}
	if req.EndTime != nil {
		end = req.EndTime.In(uc.location)
	}

	if err := domain.ValidateWindow(start, end); err != nil {
		uc.logger.Warn("UpdateBooking: window validation failed: %v", err)
		return fmt.Errorf("%w: %w", ErrInvalidWindow, err)
	}

	available, err := uc.availability.IsAvailable(ctx, booking.CourtID, start, end, &booking.ID)
	if err != nil {
		uc.logger.Error("UpdateBooking: availability check failed: %v", err)
		return fmt.Errorf("%w: availability check: %w", ErrInternal, err)
	}
	if !available {
		uc.logger.Warn("UpdateBooking: court id=%d is busy at %s-%s",
			booking.CourtID, start.Format(domain.TimeFormat), end.Format(domain.TimeFormat))
		return ErrSlotNotAvailable
	}

	booking.StartTime = start
	booking.EndTime = end

	// Цена неоплаченного бронирования следует за длительностью
	if !booking.IsBlocked && booking.PaymentStatus == domain.PaymentPending {
		court, err := uc.courtRepo.GetByID(ctx, booking.CourtID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get court id=%d: %v", booking.CourtID, err)
			return fmt.Errorf("%w: failed to get court: %w", ErrInternal, err)
		}
		booking.TotalPrice = domain.CalculatePrice(court.HourlyRate, start, end)
	}

	return nil
}
