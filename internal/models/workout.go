package models

import (
	"time"

	"gorm.io/datatypes"
)

type WorkoutFolder struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	TrainerID string    `gorm:"size:64;index;not null" json:"trainer_id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// folder_id é só agrupamento: apagar a pasta não apaga os modelos.
type WorkoutTemplate struct {
	ID        string  `gorm:"primaryKey;size:64" json:"id"`
	TrainerID string  `gorm:"size:64;index;not null" json:"trainer_id"`
	FolderID  *string `gorm:"size:64" json:"folder_id"`

	Name     string         `gorm:"size:120;not null" json:"name"`
	Category *string        `gorm:"size:50" json:"category"`
	Split    datatypes.JSON `json:"split"`

	Frequency          *string `gorm:"size:50" json:"frequency"`
	Goal               *string `gorm:"size:255" json:"goal"`
	Difficulty         *string `gorm:"size:30" json:"difficulty"`
	AISuggestedChanges *string `gorm:"column:ai_suggested_changes;type:text" json:"ai_suggested_changes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
