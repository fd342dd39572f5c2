package student

import (
	"context"

	"github.com/BruksfildServices01/trainer-manager/internal/domain/roster"
	"github.com/BruksfildServices01/trainer-manager/internal/dto"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

type GetWeek struct {
	store Store
	tz    string
}

func NewGetWeek(store Store, tz string) *GetWeek {
	return &GetWeek{
		store: store,
		tz:    tz,
	}
}

// Execute marks the assigned and completed days of the current week.
func (uc *GetWeek) Execute(
	ctx context.Context,
	trainerID string,
	studentID string,
) (*dto.StudentWeekDTO, error) {

	st, err := loadOwned(ctx, uc.store, trainerID, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentWeekDTO{
		StudentID: st.ID,
		Days:      roster.WeekOverview(*st, timezone.NowIn(uc.tz)),
	}, nil
}
