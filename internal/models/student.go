package models

import (
	"time"

	"gorm.io/datatypes"
)

// Aluno vinculado a um treinador. trainer_id só fica nulo em dados legados.
type Student struct {
	ID        string   `gorm:"primaryKey;size:64" json:"id"`
	TrainerID *string  `gorm:"size:64;index" json:"trainer_id"`
	Trainer   *Trainer `gorm:"foreignKey:TrainerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"trainer,omitempty"`

	Name  string  `gorm:"size:120;not null" json:"name"`
	Email *string `gorm:"size:100" json:"email"`

	Cpf       *string `gorm:"size:14" json:"cpf"`
	Phone     *string `gorm:"size:30" json:"phone"`
	Instagram *string `gorm:"size:100" json:"instagram"`
	Whatsapp  *string `gorm:"size:30" json:"whatsapp"`

	BirthDate *string  `gorm:"size:10" json:"birth_date"`
	Gender    *string  `gorm:"size:20" json:"gender"`
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`

	Program datatypes.JSON `json:"program"`
	History datatypes.JSON `json:"history"`

	BillingDay *int     `json:"billing_day"`
	MonthlyFee *float64 `gorm:"type:numeric(12,2)" json:"monthly_fee"`
	IsActive   *bool    `json:"is_active"`

	Files datatypes.JSON `json:"files"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
