package billing

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/billing"
	"github.com/BruksfildServices01/trainer-manager/internal/dto"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
)

type ListPaymentsInRange struct {
	store Store
}

func NewListPaymentsInRange(store Store) *ListPaymentsInRange {
	return &ListPaymentsInRange{store: store}
}

// Execute sums paid revenue and paid expenses in [from, to]. Unpaid records
// are listed but do not count.
func (uc *ListPaymentsInRange) Execute(
	ctx context.Context,
	trainerID string,
	from time.Time,
	to time.Time,
) (*dto.RangeReportDTO, error) {

	if to.Before(from) {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	payments := uc.store.GetTrainerPaymentsByDateRange(ctx, trainerID, from, to)

	report := &dto.RangeReportDTO{
		From:     from,
		To:       to,
		Payments: payments,
	}
	for _, p := range payments {
		if p.Status != domain.StatusPaid {
			continue
		}
		if p.Type == domain.TypeExpense {
			report.Expenses += p.Amount
		} else {
			report.Revenue += p.Amount
		}
	}
	report.Balance = report.Revenue - report.Expenses

	return report, nil
}
