package subscription

import (
	"context"

	"github.com/BruksfildServices01/trainer-manager/internal/domain/roster"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/mercadopago"
)

// Gateway is the payment provider that charges the subscription.
type Gateway interface {
	CreateCheckout(ctx context.Context, item mercadopago.CheckoutItem) (string, error)
	GetPayment(ctx context.Context, id int) (*mercadopago.Payment, error)
}

type Store interface {
	GetTrainerByID(ctx context.Context, id string) *roster.Trainer
	UpdateTrainer(ctx context.Context, t roster.Trainer) error
}

const checkoutTitle = "Assinatura mensal"

type StartCheckout struct {
	store   Store
	gateway Gateway
	price   float64
}

func NewStartCheckout(store Store, gateway Gateway, price float64) *StartCheckout {
	return &StartCheckout{
		store:   store,
		gateway: gateway,
		price:   price,
	}
}

// Execute returns the checkout URL. The trainer id travels as the external
// reference and comes back in the webhook.
func (uc *StartCheckout) Execute(ctx context.Context, trainerID string) (string, error) {
	if uc.store.GetTrainerByID(ctx, trainerID) == nil {
		return "", httperr.ErrNotFound("trainer_not_found")
	}

	return uc.gateway.CreateCheckout(ctx, mercadopago.CheckoutItem{
		Title:     checkoutTitle,
		Price:     uc.price,
		Reference: trainerID,
	})
}
