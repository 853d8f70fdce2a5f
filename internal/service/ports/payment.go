package ports

import "context"

// PaymentIntent — авторизованный, но не списанный платёж у внешнего провайдера.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*PaymentIntent, error)
}
