package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не может изменить бронирование
	ErrAccessDenied = errors.New("update_booking: not authorized to update this booking")

	// ErrStatusChangeDenied возвращается, когда статус меняет не менеджер и не администратор
	ErrStatusChangeDenied = errors.New("update_booking: only admins/managers can change booking status")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("update_booking: invalid status transition")

	// ErrInvalidWindow возвращается при некорректном временном окне
	ErrInvalidWindow = errors.New("update_booking: invalid booking window")

	// ErrSlotNotAvailable возвращается, когда новое время пересекается с активным бронированием
	ErrSlotNotAvailable = errors.New("update_booking: court is not available for the selected time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
