package roster

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/domain/workout"
)

// quarta-feira, 12/03/2025
var wednesday = time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

func TestWeekDaysStartsOnSunday(t *testing.T) {
	days := WeekDays(wednesday)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Weekday() != time.Sunday || days[0].Day() != 9 {
		t.Fatalf("expected week to start on Sunday 9, got %v", days[0])
	}
	if days[6].Weekday() != time.Saturday || days[6].Day() != 15 {
		t.Fatalf("expected week to end on Saturday 15, got %v", days[6])
	}
	if days[3].Hour() != 0 {
		t.Fatalf("expected midnight, got %v", days[3])
	}
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]time.Weekday{
		"Segunda":       time.Monday,
		" terça-feira ": time.Tuesday,
		"terca":         time.Tuesday,
		"SÁBADO":        time.Saturday,
		"friday":        time.Friday,
		"dom":           time.Sunday,
	}
	for in, want := range cases {
		got, ok := ParseWeekday(in)
		if !ok || got != want {
			t.Fatalf("ParseWeekday(%q) = %v, %v; want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseWeekday("feriado"); ok {
		t.Fatalf("expected unknown day name to fail")
	}
}

func TestParseHistoryDateFormats(t *testing.T) {
	cases := []struct {
		in  string
		day int
		ok  bool
	}{
		{"2025-03-10", 10, true},
		{"10/03/2025", 10, true},
		{"2025-03-11T08:00:00Z", 11, true},
		{"2025-03-11T08:00:00.000Z", 11, true},
		{"2025-03-13T10:00:00", 13, true},
		{"03-10-2025", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseHistoryDate(tc.in, time.UTC)
		if ok != tc.ok {
			t.Fatalf("ParseHistoryDate(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if ok && (got.Day() != tc.day || got.Month() != time.March) {
			t.Fatalf("ParseHistoryDate(%q) = %v", tc.in, got)
		}
	}
}

func TestAssignedDays(t *testing.T) {
	split := workout.Split{
		{Label: "A", Day: "Segunda"},
		{Label: "B", Day: "Quarta"},
		{Label: "C", Day: "Dia livre"},
	}

	days := AssignedDays(split, wednesday)

	if len(days) != 2 {
		t.Fatalf("expected 2 assigned days, got %v", days)
	}
	if days[0].Weekday() != time.Monday || days[1].Weekday() != time.Wednesday {
		t.Fatalf("unexpected assigned days: %v", days)
	}
}

func TestCompletedDaysSkipsMalformedAndOutOfWeek(t *testing.T) {
	history := []HistoryEntry{
		{Date: "10/03/2025"},
		{Date: "2025-03-10"},
		{Date: "2025-03-14T09:00:00Z"},
		{Date: "2025-03-02"},
		{Date: "ontem"},
	}

	days := CompletedDays(history, wednesday)

	if len(days) != 2 {
		t.Fatalf("expected 2 completed days, got %v", days)
	}
	if days[0].Weekday() != time.Monday || days[1].Weekday() != time.Friday {
		t.Fatalf("unexpected completed days: %v", days)
	}
}

func TestWeekOverview(t *testing.T) {
	s := Student{
		Program: &workout.Program{Split: workout.Split{
			{Label: "Treino A", Day: "segunda"},
			{Label: "Treino B", Day: "sexta"},
		}},
		History: []HistoryEntry{{Date: "10/03/2025"}},
	}

	week := WeekOverview(s, wednesday)

	mon := week[time.Monday]
	if !mon.Assigned || !mon.Completed || len(mon.Labels) != 1 || mon.Labels[0] != "Treino A" {
		t.Fatalf("unexpected monday: %+v", mon)
	}
	fri := week[time.Friday]
	if !fri.Assigned || fri.Completed {
		t.Fatalf("unexpected friday: %+v", fri)
	}
	if !week[time.Wednesday].Today {
		t.Fatalf("expected wednesday flagged as today")
	}
	if week[time.Sunday].Assigned || week[time.Sunday].Completed {
		t.Fatalf("unexpected sunday: %+v", week[time.Sunday])
	}
}

func TestStudentUnmarshalDefaultsActive(t *testing.T) {
	var s Student
	if err := json.Unmarshal([]byte(`{"id":"s1","name":"Ana"}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !s.IsActive {
		t.Fatalf("expected missing isActive to default to true")
	}

	if err := json.Unmarshal([]byte(`{"id":"s1","isActive":false}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.IsActive {
		t.Fatalf("expected explicit false to be kept")
	}
}

func TestTrainerDisplayNameAndSubscription(t *testing.T) {
	end := wednesday.AddDate(0, 0, 5)
	tr := Trainer{Name: "Carla", SubscriptionStatus: SubscriptionActive, SubscriptionEndDate: &end}

	if tr.DisplayName() != "Carla" {
		t.Fatalf("expected trimmed display name, got %q", tr.DisplayName())
	}
	if !tr.SubscriptionValid(wednesday) {
		t.Fatalf("expected subscription valid before end date")
	}
	if tr.SubscriptionValid(end.AddDate(0, 0, 1)) {
		t.Fatalf("expected subscription invalid after end date")
	}
	tr.SubscriptionStatus = SubscriptionExpired
	if tr.SubscriptionValid(wednesday) {
		t.Fatalf("expected expired subscription invalid")
	}
}
