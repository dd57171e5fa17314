package get_court_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
)

// UseCase use case для получения почасовой занятости корта
type UseCase struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	location    *time.Location
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, courtRepo CourtRepository, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		location:    location,
		logger:      logger,
	}
}

// Execute делит сутки на 24 часовых слота "HH:MM-HH:MM" и раскладывает их
// на занятые и свободные. Занятым считается слот, пересекающийся с активным бронированием
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, uc.location)
	if err != nil {
		uc.logger.Warn("GetCourtAvailability: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetCourtAvailability: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetCourtAvailability: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}
	if !court.IsActive {
		uc.logger.Warn("GetCourtAvailability: court id=%d is inactive", req.CourtID)
		return nil, ErrCourtNotFound
	}

	dayStart := domain.StartOfDay(date)
	dayEnd := dayStart.Add(domain.HoursPerDay * time.Hour)

	bookings, err := uc.bookingRepo.FindOverlapping(ctx, req.CourtID, dayStart, dayEnd, nil)
	if err != nil {
		uc.logger.Error("GetCourtAvailability: failed to get bookings for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	day := domain.BuildDayAvailability(req.CourtID, dayStart, bookings)

	uc.logger.Info("GetCourtAvailability: court=%d, date=%s, occupied=%d, free=%d",
		req.CourtID, req.Date, len(day.Occupied), len(day.Free))

	return &Response{
		CourtID:       day.CourtID,
		Date:          day.Date.Format(domain.DateFormat),
		OccupiedHours: day.Occupied,
		FreeHours:     day.Free,
	}, nil
}
