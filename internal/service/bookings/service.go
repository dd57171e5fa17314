package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	publisher   EventPublisher
	metrics     Metrics
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		publisher:   publisher,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, менеджер и администратор - любые
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !actor.CanAccess(booking.UserID, domain.OpReadAnyBooking) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// List получает страницу бронирований, отсортированных по start_time DESC
// Пользователь видит только свои бронирования
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = domain.DefaultPageSize
	}
	if limit > domain.MaxPageSize {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, domain.MaxPageSize)
	}

	filter := domain.BookingsFilter{
		Offset: req.Skip,
		Limit:  limit,
	}

	if !req.Actor.Can(domain.OpReadAnyBooking) {
		userID := req.Actor.UserID
		filter.UserID = &userID
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for user=%d", *req.Status, req.Actor.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel переводит бронирование в cancelled
// Повторная отмена уже отмененного бронирования не является ошибкой
// Завершенное бронирование отменить нельзя
func (s *Service) Cancel(ctx context.Context, bookingID int64, actor domain.Actor) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, actor.UserID)

	var cancelled *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByIDForUpdate(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - get booking: %w", ErrInternal, err)
		}

		if !actor.CanAccess(booking.UserID, domain.OpCancelAnyBooking) {
			return ErrAccessDenied
		}

		if !booking.Status.CanTransitionTo(domain.StatusCancelled) {
			return fmt.Errorf("%w: status=%s", ErrCannotCancel, booking.Status)
		}

		if booking.Status == domain.StatusCancelled {
			return nil
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCancelled); err != nil {
			return fmt.Errorf("%w: Cancel - update status: %w", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		cancelled = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
		case errors.Is(err, ErrAccessDenied):
			s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", actor.UserID, bookingID)
		case errors.Is(err, ErrCannotCancel):
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled: %v", bookingID, err)
		default:
			s.logger.Error("Cancel: failed to cancel booking id=%d: %v", bookingID, err)
		}
		return err
	}

	if cancelled == nil {
		s.logger.Info("Cancel: booking id=%d was already cancelled", bookingID)
		return nil
	}

	s.metrics.IncBookingEvent(domain.EventBookingCancelled)
	if err := s.publisher.PublishBookingEvent(ctx, domain.NewBookingEvent(domain.EventBookingCancelled, cancelled, s.now())); err != nil {
		s.logger.Warn("Cancel: failed to publish event for booking id=%d: %v", bookingID, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
