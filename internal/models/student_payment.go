package models

import "time"

// Nada no banco garante unicidade de (student_id, month, year).
// Despesas podem não ter aluno: student_id fica NULL.
type StudentPayment struct {
	ID        string  `gorm:"primaryKey;size:64" json:"id"`
	StudentID *string `gorm:"size:64;index" json:"student_id"`
	TrainerID string  `gorm:"size:64;index;not null" json:"trainer_id"`

	Month  int     `gorm:"not null" json:"month"`
	Year   int     `gorm:"not null" json:"year"`
	Amount float64 `gorm:"type:numeric(12,2)" json:"amount"`
	Status string  `gorm:"size:20;default:'pending'" json:"status"`

	PaidAt      *time.Time `json:"paid_at"`
	Type        *string    `gorm:"size:20" json:"type"`
	Category    *string    `gorm:"size:50" json:"category"`
	Description *string    `gorm:"size:255" json:"description"`

	ProofURL  *string    `gorm:"column:proof_url;type:text" json:"proof_url"`
	ProofDate *time.Time `json:"proof_date"`

	CreatedAt time.Time `json:"created_at"`
}
