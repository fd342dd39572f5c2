package schedule

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
)

func TestValidate(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ev   ScheduleEvent
		code string
	}{
		{"ok default status", ScheduleEvent{Title: "Treino", Start: start, End: start.Add(time.Hour)}, ""},
		{"bad status", ScheduleEvent{Title: "Treino", Status: "done"}, "invalid_status"},
		{"missing title", ScheduleEvent{}, "missing_title"},
		{"end before start", ScheduleEvent{Title: "x", Start: start, End: start.Add(-time.Hour)}, "invalid_time_range"},
		{"bad weekday", ScheduleEvent{Title: "x", RecurringDays: []time.Weekday{9}}, "invalid_recurring_day"},
	}

	for _, tc := range cases {
		err := Validate(tc.ev)
		if tc.code == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if !httperr.IsBusiness(err, tc.code) {
			t.Fatalf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}

func TestOccursOn(t *testing.T) {
	start := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC) // segunda
	ev := ScheduleEvent{
		Title:         "Funcional",
		Start:         start,
		IsRecurring:   true,
		RecurringDays: []time.Weekday{time.Monday, time.Thursday},
	}

	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }

	if !OccursOn(ev, day(10)) {
		t.Fatalf("expected event on its start date")
	}
	if !OccursOn(ev, day(13)) || !OccursOn(ev, day(17)) {
		t.Fatalf("expected recurring occurrences on thursday and next monday")
	}
	if OccursOn(ev, day(3)) {
		t.Fatalf("recurrence must not happen before start")
	}
	if OccursOn(ev, day(11)) {
		t.Fatalf("tuesday is not a recurring day")
	}

	ev.IsRecurring = false
	if OccursOn(ev, day(13)) {
		t.Fatalf("non recurring event only happens on its start date")
	}
}

func TestNormalizeStatus(t *testing.T) {
	if NormalizeStatus("") != StatusPlanned {
		t.Fatalf("expected default planned")
	}
	if NormalizeStatus(StatusCancelled) != StatusCancelled {
		t.Fatalf("expected status kept")
	}
}
