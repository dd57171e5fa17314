package create_checkout

import "errors"

var (
	// ErrPaymentsDisabled возвращается, когда оплата выключена в конфигурации
	ErrPaymentsDisabled = errors.New("create_checkout: payments are disabled")

	// ErrGatewayNotConfigured возвращается, когда не задан ключ платежного шлюза
	ErrGatewayNotConfigured = errors.New("create_checkout: payment gateway is not configured")

	// ErrAccessDenied возвращается, когда платит не владелец или не пользователь
	ErrAccessDenied = errors.New("create_checkout: not authorized to pay for this booking")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("create_checkout: booking not found")

	// ErrBlockedBooking возвращается при попытке оплатить заблокированный слот
	ErrBlockedBooking = errors.New("create_checkout: blocked slots cannot be paid")

	// ErrAlreadyProcessed возвращается, когда бронирование уже оплачено или не ожидает оплаты
	ErrAlreadyProcessed = errors.New("create_checkout: booking already processed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_checkout: internal error")
)
