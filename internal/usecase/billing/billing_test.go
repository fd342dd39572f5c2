package billing

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/dataservice"
	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/billing"
	"github.com/BruksfildServices01/trainer-manager/internal/domain/roster"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/filestore"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/localstore"
)

func newTestStore(t *testing.T) *dataservice.Service {
	t.Helper()
	ctx := context.Background()

	s := dataservice.New(nil, localstore.NewMemory())
	for _, st := range []roster.Student{
		{ID: "s1", TrainerID: "t1", Name: "Ana", MonthlyFee: 100, BillingDay: 5, IsActive: true},
		{ID: "s2", TrainerID: "t1", Name: "Bruno", MonthlyFee: 150, BillingDay: 10, IsActive: true},
	} {
		if _, err := s.SaveStudent(ctx, st); err != nil {
			t.Fatalf("seed student: %v", err)
		}
	}
	return s
}

func newTestDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()

	d := audit.NewDispatcher(audit.NewMemoryStore())
	t.Cleanup(d.Close)
	return d
}

func TestToggleFlipsBetweenPaidAndPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	overview := NewGetMonthOverview(store, "UTC")
	toggle := NewTogglePayment(store, overview, newTestDispatcher(t))
	in := TogglePaymentInput{TrainerID: "t1", StudentID: "s1", Year: 2025, Month: 3}

	got, err := toggle.Execute(ctx, in)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got.Expected != 250 || got.Received != 100 || got.Pending != 150 {
		t.Fatalf("unexpected totals after paying: %+v", got)
	}

	got, err = toggle.Execute(ctx, in)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if got.Received != 0 {
		t.Fatalf("expected nothing received after unpaying, got %v", got.Received)
	}

	payments := store.GetStudentPayments(ctx, "s1")
	if len(payments) != 1 {
		t.Fatalf("expected the same record updated, got %d records", len(payments))
	}
	if payments[0].Status != domain.StatusPending || payments[0].PaidAt != nil {
		t.Fatalf("unexpected payment %+v", payments[0])
	}
}

func TestToggleUnknownStudent(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	toggle := NewTogglePayment(store, NewGetMonthOverview(store, "UTC"), newTestDispatcher(t))
	_, err := toggle.Execute(context.Background(), TogglePaymentInput{TrainerID: "t1", StudentID: "zz", Year: 2025, Month: 3})
	if !httperr.IsBusiness(err, "student_not_found") {
		t.Fatalf("expected student_not_found, got %v", err)
	}
}

func TestMonthOverviewRejectsInvalidMonth(t *testing.T) {
	t.Parallel()

	_, err := NewGetMonthOverview(newTestStore(t), "UTC").Execute(context.Background(), "t1", 2025, 0)
	if !httperr.IsBusiness(err, "invalid_month") {
		t.Fatalf("expected invalid_month, got %v", err)
	}
}

func TestListPaymentsInRangeSumsPaidOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	paidAt := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	for _, p := range []domain.StudentPayment{
		{StudentID: "s1", TrainerID: "t1", Month: 3, Year: 2025, Amount: 100, Status: domain.StatusPaid, PaidAt: &paidAt},
		{StudentID: "s2", TrainerID: "t1", Month: 3, Year: 2025, Amount: 150, Status: domain.StatusPending},
		{StudentID: "s1", TrainerID: "t1", Month: 3, Year: 2025, Amount: 30, Status: domain.StatusPaid, PaidAt: &paidAt, Type: domain.TypeExpense, Category: "aluguel"},
	} {
		if _, err := store.RecordPayment(ctx, p); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	report, err := NewListPaymentsInRange(store).Execute(ctx, "t1", from, to)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(report.Payments) != 3 {
		t.Fatalf("expected 3 payments listed, got %d", len(report.Payments))
	}
	if report.Revenue != 100 || report.Expenses != 30 || report.Balance != 70 {
		t.Fatalf("unexpected report %+v", report)
	}

	if _, err := NewListPaymentsInRange(store).Execute(ctx, "t1", to, from); !httperr.IsBusiness(err, "invalid_date_range") {
		t.Fatalf("expected invalid_date_range, got %v", err)
	}
}

func TestAttachProofUpdatesPayment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	p, err := store.RecordPayment(ctx, domain.StudentPayment{
		StudentID: "s1", TrainerID: "t1", Month: 3, Year: 2025, Amount: 100, Status: domain.StatusPaid,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	uc := NewAttachProof(store, filestore.NewInline(), newTestDispatcher(t))
	got, err := uc.Execute(ctx, AttachProofInput{
		TrainerID:   "t1",
		StudentID:   "s1",
		PaymentID:   p.ID,
		FileName:    "pix.txt",
		ContentType: "text/plain",
		Data:        []byte("ok"),
	})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if !strings.HasPrefix(got.ProofURL, "data:text/plain;base64,") || got.ProofDate == nil {
		t.Fatalf("unexpected proof fields %+v", got)
	}

	stored := store.GetStudentPayments(ctx, "s1")
	if len(stored) != 1 || stored[0].ProofURL != got.ProofURL {
		t.Fatalf("expected proof stored on the same record, got %+v", stored)
	}

	_, err = uc.Execute(ctx, AttachProofInput{TrainerID: "t2", StudentID: "s1", PaymentID: p.ID})
	if !httperr.IsBusiness(err, "payment_not_found") {
		t.Fatalf("expected payment_not_found for another trainer, got %v", err)
	}
}
