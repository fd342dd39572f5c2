package models

import "time"

type Trainer struct {
	ID      string  `gorm:"primaryKey;size:64" json:"id"`
	Name    string  `gorm:"size:100;not null" json:"name"`
	Surname *string `gorm:"size:100" json:"surname"`
	Email   string  `gorm:"size:100;index" json:"email"`
	Avatar  *string `gorm:"type:text" json:"avatar"`

	Instagram *string `gorm:"size:100" json:"instagram"`
	Whatsapp  *string `gorm:"size:30" json:"whatsapp"`

	SubscriptionStatus  *string    `gorm:"size:20" json:"subscription_status"`
	SubscriptionEndDate *time.Time `json:"subscription_end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Credential guarda o login por e-mail/senha do treinador.
type Credential struct {
	TrainerID    string `gorm:"primaryKey;size:64" json:"trainer_id"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
