package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor     domain.Actor // Текущий пользователь
	CourtID   int64        // ID корта
	StartTime time.Time    // Начало полуинтервала [start, end)
	EndTime   time.Time    // Конец полуинтервала
	Notes     *string      // Заметки (опционально)
}
