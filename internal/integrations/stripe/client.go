package stripe

import (
	"context"
	"encoding/json"
	"fmt"

	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

type sessionCreator interface {
	New(params *stripeapi.CheckoutSessionParams) (*stripeapi.CheckoutSession, error)
}

// Config параметры клиента
type Config struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	SuccessURL    string
	CancelURL     string
}

// Client клиент платежного шлюза Stripe
type Client struct {
	sessions      sessionCreator
	webhookSecret string
	currency      string
	successURL    string
	cancelURL     string
	log           Logger
}

// NewClient создает клиента. Без SecretKey создание сессий возвращает ErrNotConfigured
func NewClient(cfg Config, log Logger) *Client {
	c := &Client{
		webhookSecret: cfg.WebhookSecret,
		currency:      cfg.Currency,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
		log:           log,
	}

	if cfg.SecretKey != "" {
		api := &client.API{}
		api.Init(cfg.SecretKey, nil)
		c.sessions = api.CheckoutSessions
	}

	return c
}

// CreateCheckoutSession создает одноразовую checkout-сессию на одну позицию
func (c *Client) CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSession, error) {
	if c.sessions == nil {
		return nil, ErrNotConfigured
	}

	params := &stripeapi.CheckoutSessionParams{
		Mode:               stripeapi.String(string(stripeapi.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripeapi.StringSlice([]string{"card"}),
		LineItems: []*stripeapi.CheckoutSessionLineItemParams{
			{
				Quantity: stripeapi.Int64(1),
				PriceData: &stripeapi.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripeapi.String(c.currency),
					UnitAmount: stripeapi.Int64(req.AmountMinor),
					ProductData: &stripeapi.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripeapi.String(req.ProductName),
					},
				},
			},
		},
		SuccessURL: stripeapi.String(c.successURL),
		CancelURL:  stripeapi.String(c.cancelURL),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	session, err := c.sessions.New(params)
	if err != nil {
		c.log.Error("Stripe: failed to create checkout session: %v", err)
		return nil, fmt.Errorf("%w: create checkout session: %v", ErrGateway, err)
	}

	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// ParseWebhook проверяет подпись заголовка Stripe-Signature и разбирает событие
func (c *Client) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	if c.webhookSecret == "" {
		return nil, ErrNotConfigured
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	result := &WebhookEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}

	if result.Type == EventCheckoutSessionCompleted && event.Data != nil {
		var session stripeapi.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: checkout session: %v", ErrInvalidPayload, err)
		}
		result.Metadata = session.Metadata
	}

	return result, nil
}
