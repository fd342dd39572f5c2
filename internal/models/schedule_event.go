package models

import (
	"time"

	"gorm.io/datatypes"
)

type ScheduleEvent struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"`
	TrainerID string `gorm:"size:64;index;not null" json:"trainer_id"`

	StudentID   *string `gorm:"size:64" json:"student_id"`
	StudentName *string `gorm:"size:120" json:"student_name"`

	Title       string    `gorm:"size:150;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    *string   `gorm:"size:255" json:"location"`

	IsRecurring   *bool          `json:"is_recurring"`
	RecurringDays datatypes.JSON `json:"recurring_days"`

	Status *string `gorm:"size:20" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
