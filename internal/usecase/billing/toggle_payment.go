package billing

import (
	"context"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/billing"
	"github.com/BruksfildServices01/trainer-manager/internal/dto"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type TogglePaymentInput struct {
	TrainerID string
	StudentID string
	Year      int
	Month     int
}

// ======================================================
// USE CASE
// ======================================================

// TogglePayment flips a student's month between paid and pending, then
// reloads the month from storage.
type TogglePayment struct {
	store    Store
	overview *GetMonthOverview
	audit    *audit.Dispatcher
}

func NewTogglePayment(
	store Store,
	overview *GetMonthOverview,
	audit *audit.Dispatcher,
) *TogglePayment {
	return &TogglePayment{
		store:    store,
		overview: overview,
		audit:    audit,
	}
}

func (uc *TogglePayment) Execute(
	ctx context.Context,
	in TogglePaymentInput,
) (*dto.MonthOverviewDTO, error) {

	if in.Month < 1 || in.Month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	sum := uc.store.GetTrainerFinanceSummary(ctx, in.TrainerID, in.Month, in.Year)

	// --------------------------------------------------
	// 1️⃣ Aluno ativo do treinador
	// --------------------------------------------------
	var student *domain.StudentFee
	for i := range sum.Students {
		if sum.Students[i].ID == in.StudentID {
			student = &sum.Students[i]
			break
		}
	}
	if student == nil {
		return nil, httperr.ErrNotFound("student_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Registro do mês (o pago tem prioridade)
	// --------------------------------------------------
	var current *domain.StudentPayment
	for i := range sum.Payments {
		p := &sum.Payments[i]
		if p.StudentID != in.StudentID || p.Type == domain.TypeExpense {
			continue
		}
		if current == nil || (current.Status != domain.StatusPaid && p.Status == domain.StatusPaid) {
			current = p
		}
	}

	payment := domain.StudentPayment{
		StudentID: in.StudentID,
		TrainerID: in.TrainerID,
		Month:     in.Month,
		Year:      in.Year,
		Amount:    student.MonthlyFee,
		Status:    domain.StatusPaid,
		Type:      domain.TypeRevenue,
	}
	if current != nil {
		payment = *current
		if current.Status == domain.StatusPaid {
			payment.Status = domain.StatusPending
		} else {
			payment.Status = domain.StatusPaid
			payment.PaidAt = nil
		}
	}

	saved, err := uc.store.RecordPayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TrainerID: in.TrainerID,
		Action:    "payment_" + saved.Status,
		Entity:    "payment",
		EntityID:  saved.ID,
		Metadata: map[string]any{
			"student_id": saved.StudentID,
			"month":      saved.Month,
			"year":       saved.Year,
			"amount":     saved.Amount,
		},
	})

	return uc.overview.Execute(ctx, in.TrainerID, in.Year, in.Month)
}
