package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	availability AvailabilityChecker
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс, в котором проверяются границы суток
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
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, start=%s, end=%s",
		req.Actor.UserID, req.CourtID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Администратор резервирует слоты только через блокировку
	if !req.Actor.Can(domain.OpCreateBooking) {
		uc.logger.Warn("CreateBooking: role=%s cannot create bookings", req.Actor.Role)
		return nil, ErrAccessDenied
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Проверка временного окна в часовом поясе бронирований
	start := req.StartTime.In(uc.location)
	end := req.EndTime.In(uc.location)
	if err := validateWindow(start, end); err != nil {
		uc.logger.Warn("CreateBooking: window validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 4. Проверка доступности и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Корт должен существовать и быть активным
		court, err := uc.courtRepo.GetByID(txCtx, req.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
				return ErrCourtNotFound
			}
			uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: failed to get court: %w", ErrInternal, err)
		}
		if !court.IsActive {
			uc.logger.Warn("CreateBooking: court id=%d is inactive", req.CourtID)
			return ErrCourtNotFound
		}

		// 4.2. Начало строго в будущем
		if !start.After(now) {
			uc.logger.Warn("CreateBooking: start=%s is not in the future", start.Format(time.RFC3339))
			return ErrPastBooking
		}

		// 4.3. Пересечения с активными бронированиями
		available, err := uc.availability.IsAvailable(txCtx, req.CourtID, start, end, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %w", ErrInternal, err)
		}
		if !available {
			uc.logger.Warn("CreateBooking: court id=%d is busy at %s-%s",
				req.CourtID, start.Format(domain.TimeFormat), end.Format(domain.TimeFormat))
			return ErrSlotNotAvailable
		}

		// 4.4. Сохраняем бронирование с рассчитанной ценой
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:        req.Actor.UserID,
			CourtID:       req.CourtID,
			StartTime:     start,
			EndTime:       end,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentPending,
			TotalPrice:    domain.CalculatePrice(court.HourlyRate, start, end),
			Notes:         req.Notes,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: exclusion constraint rejected court id=%d", req.CourtID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncBookingConflict("create")
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%.2f", result.ID, result.TotalPrice)
	uc.metrics.IncBookingEvent(domain.EventBookingCreated)

	if err := uc.publisher.PublishBookingEvent(ctx, domain.NewBookingEvent(domain.EventBookingCreated, result, now)); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	return models.FromDomainBooking(result), nil
}
