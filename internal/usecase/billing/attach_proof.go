package billing

import (
	"context"
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/billing"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/filestore"
)

type AttachProofInput struct {
	TrainerID string
	StudentID string
	PaymentID string

	FileName    string
	ContentType string
	Data        []byte
}

type AttachProof struct {
	store    Store
	uploader filestore.Uploader
	audit    *audit.Dispatcher
}

func NewAttachProof(
	store Store,
	uploader filestore.Uploader,
	audit *audit.Dispatcher,
) *AttachProof {
	return &AttachProof{
		store:    store,
		uploader: uploader,
		audit:    audit,
	}
}

func (uc *AttachProof) Execute(
	ctx context.Context,
	in AttachProofInput,
) (*domain.StudentPayment, error) {

	var payment *domain.StudentPayment
	for _, p := range uc.store.GetStudentPayments(ctx, in.StudentID) {
		if p.ID == in.PaymentID && p.TrainerID == in.TrainerID {
			found := p
			payment = &found
			break
		}
	}
	if payment == nil {
		return nil, httperr.ErrNotFound("payment_not_found")
	}

	url, err := uc.uploader.Upload(ctx, "proofs/"+in.TrainerID, in.FileName, in.ContentType, in.Data)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment.ProofURL = url
	payment.ProofDate = &now

	saved, err := uc.store.RecordPayment(ctx, *payment)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TrainerID: in.TrainerID,
		Action:    "payment_proof_attached",
		Entity:    "payment",
		EntityID:  saved.ID,
	})

	return &saved, nil
}
