package dto

import (
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/domain/billing"
)

type MonthOverviewDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	Expected float64 `json:"expected"`
	Received float64 `json:"received"`
	Pending  float64 `json:"pending"`

	Rows []billing.MonthRow `json:"rows"`
}

type RangeReportDTO struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`

	Payments []billing.StudentPayment `json:"payments"`
}
