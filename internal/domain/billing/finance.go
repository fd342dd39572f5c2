package billing

import "time"

// StudentFee is the narrow student projection used by the monthly view.
type StudentFee struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	MonthlyFee float64 `json:"monthlyFee"`
	BillingDay int     `json:"billingDay"`
}

// FinanceSummary holds the payments of one trainer/month/year and the
// trainer's active students, uncorrelated.
type FinanceSummary struct {
	Payments []StudentPayment `json:"payments"`
	Students []StudentFee     `json:"students"`
}

// Totals: expected is the sum of active fees, received the sum of paid
// payments.
func Totals(sum FinanceSummary) (expected, received float64) {
	for _, s := range sum.Students {
		expected += s.MonthlyFee
	}
	for _, p := range sum.Payments {
		if p.Status == StatusPaid {
			received += p.Amount
		}
	}
	return expected, received
}

type MonthRow struct {
	Student StudentFee      `json:"student"`
	Payment *StudentPayment `json:"payment,omitempty"`
	Status  string          `json:"status"`
}

// MonthRows correlates payments to students by studentId. A student without
// a paid record is "late" once the billing day of that month has passed
// (relative to today), otherwise "pending".
func MonthRows(sum FinanceSummary, year, month int, today time.Time) []MonthRow {
	byStudent := make(map[string]*StudentPayment, len(sum.Payments))
	for i := range sum.Payments {
		p := &sum.Payments[i]
		current, ok := byStudent[p.StudentID]
		if !ok || (current.Status != StatusPaid && p.Status == StatusPaid) {
			byStudent[p.StudentID] = p
		}
	}

	rows := make([]MonthRow, 0, len(sum.Students))
	for _, s := range sum.Students {
		row := MonthRow{Student: s, Status: StatusPending}

		if p, ok := byStudent[s.ID]; ok {
			cp := *p
			row.Payment = &cp
			if p.Status == StatusPaid {
				row.Status = StatusPaid
				rows = append(rows, row)
				continue
			}
		}

		if isOverdue(s.BillingDay, year, month, today) {
			row.Status = StatusLate
		}
		rows = append(rows, row)
	}

	return rows
}

func isOverdue(billingDay, year, month int, today time.Time) bool {
	if billingDay <= 0 {
		billingDay = 1
	}

	// dia de vencimento limitado ao último dia do mês
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, today.Location()).Day()
	if billingDay > last {
		billingDay = last
	}

	due := time.Date(year, time.Month(month), billingDay, 23, 59, 59, 0, today.Location())
	return today.After(due)
}
