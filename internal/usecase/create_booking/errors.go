package create_booking

import "errors"

var (
	// ErrAccessDenied возвращается, когда роль не может создавать бронирования (администратор использует блокировку)
	ErrAccessDenied = errors.New("create_booking: admins must use block endpoint to reserve slots")

	// ErrCourtNotFound возвращается, когда корт не найден или неактивен
	ErrCourtNotFound = errors.New("create_booking: court not found or inactive")

	// ErrInvalidWindow возвращается при некорректном временном окне
	ErrInvalidWindow = errors.New("create_booking: invalid booking window")

	// ErrPastBooking возвращается, когда начало бронирования не в будущем
	ErrPastBooking = errors.New("create_booking: cannot book in the past")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: court is not available for the selected time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
