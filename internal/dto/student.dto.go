package dto

import (
	"github.com/BruksfildServices01/trainer-manager/internal/domain/roster"
)

type StudentWeekDTO struct {
	StudentID string             `json:"studentId"`
	Days      []roster.DayStatus `json:"days"`
}

type CheckoutDTO struct {
	CheckoutURL string `json:"checkoutUrl"`
}
