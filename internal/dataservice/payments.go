package dataservice

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/domain/billing"
	"github.com/BruksfildServices01/trainer-manager/internal/domain/roster"
)

func paymentKey(p billing.StudentPayment) string { return p.ID }

// GetStudentPayments lists the payments of one student, newest month first.
func (s *Service) GetStudentPayments(ctx context.Context, studentID string) []billing.StudentPayment {
	return s.listPayments(ctx, "get student payments", PaymentFilter{StudentID: studentID})
}

// RecordPayment inserts the payment when it has no id and updates the stored
// record by id otherwise. Two calls without id produce two records.
//
// A paid payment without paidAt is stamped with the current time; a pending
// one has paidAt cleared.
func (s *Service) RecordPayment(ctx context.Context, p billing.StudentPayment) (billing.StudentPayment, error) {
	if p.Status == "" {
		p.Status = billing.StatusPending
	}
	if p.Type == "" {
		p.Type = billing.TypeRevenue
	}
	if err := p.Validate(); err != nil {
		return billing.StudentPayment{}, wrap("record payment", err)
	}

	switch p.Status {
	case billing.StatusPaid:
		if p.PaidAt == nil {
			now := s.now()
			p.PaidAt = &now
		}
	case billing.StatusPending:
		p.PaidAt = nil
	}

	insert := p.ID == ""
	if insert {
		p.ID = s.newID()
		if p.CreatedAt.IsZero() {
			p.CreatedAt = s.now()
		}
	}

	if !s.cloud {
		if err := upsertLocal(ctx, s, KeyPayments, p, paymentKey); err != nil {
			return billing.StudentPayment{}, wrap("record payment", err)
		}
		return p, nil
	}

	row, cols := paymentToRow(p)
	var err error
	if insert {
		err = s.remote.InsertPayment(ctx, &row, cols)
	} else {
		err = s.remote.UpdatePayment(ctx, &row, cols)
	}
	if err != nil {
		return billing.StudentPayment{}, wrap("record payment", err)
	}
	return p, nil
}

func (s *Service) DeletePayment(ctx context.Context, id string) error {
	if !s.cloud {
		return wrap("delete payment", deleteLocal(ctx, s, KeyPayments, id, paymentKey))
	}
	return wrap("delete payment", s.remote.DeletePayment(ctx, id))
}

// ======================================================
// Aggregates
// ======================================================

// GetTrainerFinanceSummary returns the payments of trainerID for month/year
// and the trainer's active students (fee fields only). Correlating the two
// and computing totals is left to the caller.
func (s *Service) GetTrainerFinanceSummary(ctx context.Context, trainerID string, month, year int) billing.FinanceSummary {
	return billing.FinanceSummary{
		Payments: s.listPayments(ctx, "get finance summary", PaymentFilter{
			TrainerID: trainerID,
			Month:     month,
			Year:      year,
		}),
		Students: s.activeStudentFees(ctx, trainerID),
	}
}

// GetTrainerPaymentsByDateRange returns the trainer's payments whose paid
// date, or the first day of their billing month when unpaid, falls within
// [from, to]. Filtering happens here, after loading every payment of the
// trainer.
func (s *Service) GetTrainerPaymentsByDateRange(ctx context.Context, trainerID string, from, to time.Time) []billing.StudentPayment {
	all := s.listPayments(ctx, "get payments by date range", PaymentFilter{TrainerID: trainerID})

	out := make([]billing.StudentPayment, 0, len(all))
	for _, p := range all {
		if p.InRange(from, to) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) listPayments(ctx context.Context, op string, f PaymentFilter) []billing.StudentPayment {
	if !s.cloud {
		all := listLocal[billing.StudentPayment](ctx, s, KeyPayments, op)
		out := make([]billing.StudentPayment, 0, len(all))
		for _, p := range all {
			if matchesPayment(p, f) {
				out = append(out, normalizePayment(p))
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Year != out[j].Year {
				return out[i].Year > out[j].Year
			}
			return out[i].Month > out[j].Month
		})
		return out
	}

	rows, err := s.remote.ListPayments(ctx, f)
	if err != nil {
		log.Printf("%s: %v", op, err)
		return []billing.StudentPayment{}
	}

	out := make([]billing.StudentPayment, 0, len(rows))
	for _, row := range rows {
		out = append(out, paymentFromRow(row))
	}
	return out
}

func matchesPayment(p billing.StudentPayment, f PaymentFilter) bool {
	if f.StudentID != "" && p.StudentID != f.StudentID {
		return false
	}
	if f.TrainerID != "" && p.TrainerID != f.TrainerID {
		return false
	}
	if f.Month != 0 && p.Month != f.Month {
		return false
	}
	if f.Year != 0 && p.Year != f.Year {
		return false
	}
	return true
}

func (s *Service) activeStudentFees(ctx context.Context, trainerID string) []billing.StudentFee {
	if !s.cloud {
		all := listLocal[roster.Student](ctx, s, KeyStudents, "get finance summary")
		out := make([]billing.StudentFee, 0, len(all))
		for _, st := range all {
			if st.IsActive && ownedBy(st.TrainerID, trainerID) {
				out = append(out, studentFee(st))
			}
		}
		return out
	}

	rows, err := s.remote.ListActiveStudentFees(ctx, trainerID)
	if err != nil {
		log.Printf("get finance summary: %v", err)
		return []billing.StudentFee{}
	}

	out := make([]billing.StudentFee, 0, len(rows))
	for _, row := range rows {
		out = append(out, studentFeeFromRow(row))
	}
	return out
}
