package schedule

import (
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
)

type ScheduleEvent struct {
	ID          string    `json:"id"`
	TrainerID   string    `json:"trainerId"`
	StudentID   string    `json:"studentId,omitempty"`
	StudentName string    `json:"studentName,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location"`

	IsRecurring   bool           `json:"isRecurring"`
	RecurringDays []time.Weekday `json:"recurringDays,omitempty"`

	Status string `json:"status"`
}

// ===============================
// Event Status
// ===============================

const (
	StatusPlanned   = "planned"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// NormalizeStatus aplica o status padrão.
func NormalizeStatus(status string) string {
	if status == "" {
		return StatusPlanned
	}
	return status
}

// Validate checks the fields a stored event must carry.
func Validate(ev ScheduleEvent) error {
	switch NormalizeStatus(ev.Status) {
	case StatusPlanned, StatusCompleted, StatusCancelled:
	default:
		return httperr.ErrBusiness("invalid_status")
	}

	if ev.Title == "" {
		return httperr.ErrBusiness("missing_title")
	}

	if !ev.End.IsZero() && ev.End.Before(ev.Start) {
		return httperr.ErrBusiness("invalid_time_range")
	}

	for _, d := range ev.RecurringDays {
		if d < time.Sunday || d > time.Saturday {
			return httperr.ErrBusiness("invalid_recurring_day")
		}
	}

	return nil
}

// OccursOn reports whether the event happens on day (single date or a
// recurring weekday on/after its start).
func OccursOn(ev ScheduleEvent, day time.Time) bool {
	y, m, d := day.Date()
	sy, sm, sd := ev.Start.In(day.Location()).Date()
	if y == sy && m == sm && d == sd {
		return true
	}

	if !ev.IsRecurring {
		return false
	}

	startDay := time.Date(sy, sm, sd, 0, 0, 0, 0, day.Location())
	if day.Before(startDay) {
		return false
	}

	for _, wd := range ev.RecurringDays {
		if wd == day.Weekday() {
			return true
		}
	}
	return false
}
