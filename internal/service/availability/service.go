package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Checker проверяет, свободен ли корт на полуинтервале [start, end)
// Внутри транзакции пересекающиеся строки блокируются репозиторием,
// поэтому проверку и запись нужно выполнять в одной транзакции
type Checker struct {
	bookingRepo BookingRepository
}

// NewChecker создает новый экземпляр Checker
func NewChecker(bookingRepo BookingRepository) *Checker {
	return &Checker{bookingRepo: bookingRepo}
}

// IsAvailable возвращает true, если у корта нет активных бронирований,
// пересекающихся с [start, end). excludeID исключает бронирование из проверки
// (изменение времени существующего бронирования)
func (c *Checker) IsAvailable(ctx context.Context, courtID int64, start, end time.Time, excludeID *int64) (bool, error) {
	conflicts, err := c.Conflicts(ctx, courtID, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

// Conflicts возвращает активные бронирования, пересекающиеся с [start, end)
func (c *Checker) Conflicts(ctx context.Context, courtID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error) {
	bookings, err := c.bookingRepo.FindOverlapping(ctx, courtID, start, end, excludeID)
	if err != nil {
		return nil, fmt.Errorf("%w: court_id=%d: %w", ErrInternal, courtID, err)
	}

	// Те же условия, что и в запросе репозитория
	conflicts := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.IsActive() && domain.Overlaps(b.StartTime, b.EndTime, start, end) {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts, nil
}
