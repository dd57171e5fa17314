package create_checkout

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

// Request запрос на создание checkout-сессии
type Request struct {
	Actor     domain.Actor
	BookingID int64
}

// Response ссылка на страницу оплаты
type Response struct {
	CheckoutURL string `json:"checkout_url"`
}
