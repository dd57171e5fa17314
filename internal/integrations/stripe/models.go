package stripe

// Типы событий webhook, которые обрабатывает сервис
const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
)

// Ключи metadata checkout-сессии
const (
	MetadataBookingID = "booking_id"
	MetadataUserID    = "user_id"
)

// CheckoutSessionRequest параметры checkout-сессии
type CheckoutSessionRequest struct {
	AmountMinor int64 // Сумма в минимальных единицах валюты (центах)
	ProductName string
	Metadata    map[string]string
}

// CheckoutSession созданная сессия оплаты
type CheckoutSession struct {
	ID  string
	URL string
}

// WebhookEvent проверенное событие шлюза
type WebhookEvent struct {
	ID       string
	Type     string
	Metadata map[string]string // metadata объекта checkout.session, для других типов пусто
}
