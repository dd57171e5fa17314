package process_payment_webhook

// Request тело webhook и заголовок Stripe-Signature
type Request struct {
	Payload   []byte
	Signature string
}

// Исходы обработки webhook (метка метрики)
const (
	OutcomePaid             = "paid"
	OutcomeDuplicate        = "duplicate"
	OutcomeIgnored          = "ignored"
	OutcomeUnmatched        = "unmatched"
	OutcomeInvalidSignature = "invalid_signature"
	OutcomeError            = "error"
)
