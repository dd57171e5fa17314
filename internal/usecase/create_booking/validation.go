package create_booking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: start_time and end_time are required", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateWindow проверяет окно и выравнивание по 30-минутным слотам
func validateWindow(start, end time.Time) error {
	if err := domain.ValidateWindow(start, end); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWindow, err)
	}

	for _, t := range []time.Time{start, end} {
		if err := domain.ValidateSlotAlignment(t); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidWindow, err)
		}
	}

	return nil
}
