package billing

import (
	"context"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/billing"
	"github.com/BruksfildServices01/trainer-manager/internal/dto"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

type GetMonthOverview struct {
	store Store
	tz    string
}

func NewGetMonthOverview(store Store, tz string) *GetMonthOverview {
	return &GetMonthOverview{
		store: store,
		tz:    tz,
	}
}

func (uc *GetMonthOverview) Execute(
	ctx context.Context,
	trainerID string,
	year int,
	month int,
) (*dto.MonthOverviewDTO, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	sum := uc.store.GetTrainerFinanceSummary(ctx, trainerID, month, year)
	expected, received := domain.Totals(sum)

	pending := expected - received
	if pending < 0 {
		pending = 0
	}

	return &dto.MonthOverviewDTO{
		Year:     year,
		Month:    month,
		Expected: expected,
		Received: received,
		Pending:  pending,
		Rows:     domain.MonthRows(sum, year, month, timezone.NowIn(uc.tz)),
	}, nil
}
