package models

import "time"

type LibraryExercise struct {
	ID        string  `gorm:"primaryKey;size:64" json:"id"`
	TrainerID *string `gorm:"size:64;index" json:"trainer_id"`

	Name       string  `gorm:"size:120;not null" json:"name"`
	Category   *string `gorm:"size:50" json:"category"`
	VideoURL   *string `gorm:"column:video_url;type:text" json:"video_url"`
	IsStandard bool    `gorm:"default:false" json:"is_standard"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
