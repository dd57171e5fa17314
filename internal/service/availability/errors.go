package availability

import "errors"

var (
	// ErrInternal возвращается при ошибке чтения бронирований
	ErrInternal = errors.New("availability: internal error")
)
