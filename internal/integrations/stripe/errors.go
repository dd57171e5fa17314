package stripe

import "errors"

var (
	// ErrNotConfigured возвращается, если не задан ключ API или секрет webhook
	ErrNotConfigured = errors.New("stripe client: gateway is not configured")

	// ErrInvalidSignature возвращается, если подпись webhook не прошла проверку
	ErrInvalidSignature = errors.New("stripe client: invalid webhook signature")

	// ErrInvalidPayload возвращается, если тело события не удалось разобрать
	ErrInvalidPayload = errors.New("stripe client: invalid webhook payload")

	// ErrGateway возвращается при ошибке вызова API шлюза
	ErrGateway = errors.New("stripe client: gateway error")
)
