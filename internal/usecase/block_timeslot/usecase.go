package block_timeslot

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// UseCase блокирует слот корта без оплаты
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

// Execute создает подтвержденное бронирование с is_blocked = true,
// payment_status = waived и нулевой ценой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("BlockTimeslot: user=%d, court=%d, start=%s, end=%s",
		req.Actor.UserID, req.CourtID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	if !req.Actor.Can(domain.OpBlockTimeslot) {
		uc.logger.Warn("BlockTimeslot: role=%s cannot block timeslots", req.Actor.Role)
		return nil, ErrAccessDenied
	}

	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	start := req.StartTime.In(uc.location)
	end := req.EndTime.In(uc.location)
	if err := domain.ValidateWindow(start, end); err != nil {
		uc.logger.Warn("BlockTimeslot: window validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidWindow, err)
	}
	for _, t := range []time.Time{start, end} {
		if err := domain.ValidateSlotAlignment(t); err != nil {
			uc.logger.Warn("BlockTimeslot: window validation failed: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidWindow, err)
		}
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		court, err := uc.courtRepo.GetByID(txCtx, req.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				uc.logger.Warn("BlockTimeslot: court id=%d not found", req.CourtID)
				return ErrCourtNotFound
			}
			uc.logger.Error("BlockTimeslot: failed to get court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: failed to get court: %w", ErrInternal, err)
		}
		if !court.IsActive {
			uc.logger.Warn("BlockTimeslot: court id=%d is inactive", req.CourtID)
			return ErrCourtNotFound
		}

		available, err := uc.availability.IsAvailable(txCtx, req.CourtID, start, end, nil)
		if err != nil {
			uc.logger.Error("BlockTimeslot: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %w", ErrInternal, err)
		}
		if !available {
			uc.logger.Warn("BlockTimeslot: court id=%d is busy at %s-%s",
				req.CourtID, start.Format(domain.TimeFormat), end.Format(domain.TimeFormat))
			return ErrSlotNotAvailable
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:        req.Actor.UserID,
			CourtID:       req.CourtID,
			StartTime:     start,
			EndTime:       end,
			Status:        domain.StatusConfirmed,
			PaymentStatus: domain.PaymentWaived,
			IsBlocked:     true,
			TotalPrice:    0,
			Notes:         req.Notes,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("BlockTimeslot: exclusion constraint rejected court id=%d", req.CourtID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("BlockTimeslot: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncBookingConflict("block")
		}
		return nil, err
	}

	uc.logger.Info("BlockTimeslot: court id=%d blocked, booking id=%d", result.CourtID, result.ID)
	uc.metrics.IncBookingEvent(domain.EventBookingBlocked)

	if err := uc.publisher.PublishBookingEvent(ctx, domain.NewBookingEvent(domain.EventBookingBlocked, result, uc.now())); err != nil {
		uc.logger.Warn("BlockTimeslot: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	return models.FromDomainBooking(result), nil
}
