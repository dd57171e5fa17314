package block_timeslot

import "errors"

var (
	// ErrAccessDenied возвращается, когда блокировать слоты пытается обычный пользователь
	ErrAccessDenied = errors.New("block_timeslot: admin or manager role required")

	// ErrCourtNotFound возвращается, когда корт не найден или неактивен
	ErrCourtNotFound = errors.New("block_timeslot: court not found or inactive")

	// ErrInvalidWindow возвращается при некорректном временном окне
	ErrInvalidWindow = errors.New("block_timeslot: invalid booking window")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с активным бронированием
	ErrSlotNotAvailable = errors.New("block_timeslot: court is not available for the selected time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("block_timeslot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_timeslot: internal error")
)
