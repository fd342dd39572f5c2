// Package mercadopago cobra a assinatura do treinador pelo Checkout Pro.
package mercadopago

import (
	"context"
	"fmt"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

const currencyBRL = "BRL"

type CheckoutItem struct {
	Title     string
	Price     float64
	Reference string
}

// Payment is the part of a Mercado Pago payment the subscription flow reads.
type Payment struct {
	ID                int
	Status            string
	ExternalReference string
}

type Gateway struct {
	preferences preference.Client
	payments    payment.Client
	publicURL   string
}

func New(accessToken, publicURL string) (*Gateway, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Gateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		publicURL:   strings.TrimRight(publicURL, "/"),
	}, nil
}

// CreateCheckout returns the URL the trainer is redirected to.
func (g *Gateway) CreateCheckout(ctx context.Context, item CheckoutItem) (string, error) {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      item.Title,
				Quantity:   1,
				UnitPrice:  item.Price,
				CurrencyID: currencyBRL,
			},
		},
		ExternalReference: item.Reference,
		NotificationURL:   g.publicURL + "/api/webhooks/mercadopago",
	}

	res, err := g.preferences.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create preference: %w", err)
	}
	return res.InitPoint, nil
}

func (g *Gateway) GetPayment(ctx context.Context, id int) (*Payment, error) {
	res, err := g.payments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment %d: %w", id, err)
	}

	return &Payment{
		ID:                res.ID,
		Status:            res.Status,
		ExternalReference: res.ExternalReference,
	}, nil
}
