package create_checkout

// CreateCheckoutRequest HTTP request model
type CreateCheckoutRequest struct {
	BookingID int64 `json:"booking_id"`
}
