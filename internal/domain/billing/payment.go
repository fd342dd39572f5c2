package billing

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusLate    = "late"

	TypeRevenue = "revenue"
	TypeExpense = "expense"
)

// StudentPayment is a revenue tied to a student or a trainer expense, which
// may have no student.
type StudentPayment struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId" validate:"required_unless=Type expense"`
	TrainerID string `json:"trainerId" validate:"required"`

	Month  int     `json:"month" validate:"min=1,max=12"`
	Year   int     `json:"year" validate:"min=2000,max=2100"`
	Amount float64 `json:"amount" validate:"gte=0"`
	Status string  `json:"status" validate:"oneof=paid pending"`

	PaidAt      *time.Time `json:"paidAt,omitempty"`
	Type        string     `json:"type" validate:"omitempty,oneof=revenue expense"`
	Category    string     `json:"category"`
	Description string     `json:"description"`

	ProofURL  string     `json:"proofUrl,omitempty"`
	ProofDate *time.Time `json:"proofDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

var validate = validator.New()

// Validate checks month/year ranges, status, type and ownership ids. Only
// expenses may omit the student.
func (p StudentPayment) Validate() error {
	return validate.Struct(p)
}

// ReferenceDate is the date a payment counts on in range reports: when it
// was paid, or the first day of its billing month when unpaid.
func (p StudentPayment) ReferenceDate(loc *time.Location) time.Time {
	if p.PaidAt != nil {
		return p.PaidAt.In(loc)
	}
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
}

// InRange reports whether the reference date falls within [from, to].
func (p StudentPayment) InRange(from, to time.Time) bool {
	ref := p.ReferenceDate(from.Location())
	return !ref.Before(from) && !ref.After(to)
}
