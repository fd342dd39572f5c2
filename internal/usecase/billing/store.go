package billing

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/billing"
)

// Store is the part of the data service the billing flows use.
type Store interface {
	GetTrainerFinanceSummary(ctx context.Context, trainerID string, month, year int) domain.FinanceSummary
	GetTrainerPaymentsByDateRange(ctx context.Context, trainerID string, from, to time.Time) []domain.StudentPayment
	GetStudentPayments(ctx context.Context, studentID string) []domain.StudentPayment
	RecordPayment(ctx context.Context, p domain.StudentPayment) (domain.StudentPayment, error)
}
