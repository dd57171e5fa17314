package process_payment_webhook

import "errors"

var (
	// ErrPaymentsDisabled возвращается, когда оплата выключена в конфигурации
	ErrPaymentsDisabled = errors.New("process_payment_webhook: payments are disabled")

	// ErrWebhookNotConfigured возвращается, когда не задан секрет webhook
	ErrWebhookNotConfigured = errors.New("process_payment_webhook: webhook secret is not configured")

	// ErrInvalidSignature возвращается, когда подпись или тело события не прошли проверку
	ErrInvalidSignature = errors.New("process_payment_webhook: invalid webhook signature")

	// ErrInternal возвращается при внутренних ошибках, шлюз повторит доставку
	ErrInternal = errors.New("process_payment_webhook: internal error")
)
