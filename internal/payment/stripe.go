package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/wb-go/wbf/logger"

	"expertcall/internal/service/ports"
)

// StripeGateway создаёт платёжные интенты с ручным capture: полный час
// авторизуется, списание происходит после звонка.
type StripeGateway struct {
	currency string
	logger   logger.Logger
}

func NewStripeGateway(secretKey, currency string, log logger.Logger) *StripeGateway {
	if secretKey == "" {
		log.Warn("stripe secret key is empty, payment intent creation will fail")
	}
	stripe.Key = secretKey

	return &StripeGateway{
		currency: currency,
		logger:   log,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*ports.PaymentIntent, error) {
	if currency == "" {
		currency = g.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(currency),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}

	g.logger.Info("payment intent created",
		logger.String("intent_id", pi.ID),
		logger.Int64("amount_cents", amountCents),
	)

	return &ports.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}
