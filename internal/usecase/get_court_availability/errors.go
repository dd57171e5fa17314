package get_court_availability

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден или неактивен
	ErrCourtNotFound = errors.New("get_court_availability: court not found or inactive")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("get_court_availability: invalid date, expected YYYY-MM-DD")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_court_availability: internal error")
)
