package subscription

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/domain/roster"
)

const statusApproved = "approved"

type HandleNotification struct {
	store   Store
	gateway Gateway
	audit   *audit.Dispatcher
	days    int
	now     func() time.Time
}

func NewHandleNotification(
	store Store,
	gateway Gateway,
	audit *audit.Dispatcher,
	days int,
) *HandleNotification {
	return &HandleNotification{
		store:   store,
		gateway: gateway,
		audit:   audit,
		days:    days,
		now:     time.Now,
	}
}

// Execute confirms the payment with the provider and extends the trainer's
// subscription. Anything not approved is ignored; the provider notifies
// again when the status changes.
func (uc *HandleNotification) Execute(ctx context.Context, paymentID int) error {
	p, err := uc.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return err
	}
	if p.Status != statusApproved {
		return nil
	}

	trainer := uc.store.GetTrainerByID(ctx, p.ExternalReference)
	if trainer == nil {
		log.Printf("[subscription] payment %d references unknown trainer %q", paymentID, p.ExternalReference)
		return nil
	}

	// renovação antecipada soma ao período atual
	start := uc.now().UTC()
	if trainer.SubscriptionEndDate != nil && trainer.SubscriptionEndDate.After(start) {
		start = *trainer.SubscriptionEndDate
	}
	end := start.AddDate(0, 0, uc.days)

	trainer.SubscriptionStatus = roster.SubscriptionActive
	trainer.SubscriptionEndDate = &end

	if err := uc.store.UpdateTrainer(ctx, *trainer); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		TrainerID: trainer.ID,
		Action:    "subscription_renewed",
		Entity:    "trainer",
		EntityID:  trainer.ID,
		Metadata: map[string]any{
			"payment_id": paymentID,
			"ends_at":    end,
		},
	})

	return nil
}
