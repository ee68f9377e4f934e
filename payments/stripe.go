// Package payments wraps the hosted checkout provider. The service
// only creates checkout sessions; marking a booking paid is a separate
// booking operation.
package payments

import (
	"context"
	"math"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

type CheckoutRequest struct {
	ProductName string
	Price       float64 // decimal currency units
	OrderID     string
	ImageURL    string
}

// CheckoutProvider creates a hosted single-line-item checkout session
// and returns its redirect URL.
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error)
}

// MinorUnits converts a decimal price into the provider's integer
// minor-unit amount.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

type StripeProvider struct {
	successURL string
	cancelURL  string
}

func NewStripeProvider(apiKey, successURL, cancelURL string) *StripeProvider {
	stripe.Key = apiKey
	return &StripeProvider{successURL: successURL, cancelURL: cancelURL}
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(req.OrderID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(MinorUnits(req.Price)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:   stripe.String(req.ProductName),
						Images: []*string{stripe.String(req.ImageURL)},
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}
