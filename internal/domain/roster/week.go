package roster

import (
	"log"
	"strings"
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/domain/workout"
)

var weekdayNames = map[string]time.Weekday{
	"domingo": time.Sunday, "dom": time.Sunday, "sunday": time.Sunday, "sun": time.Sunday,

	"segunda": time.Monday, "segunda-feira": time.Monday, "seg": time.Monday,
	"monday": time.Monday, "mon": time.Monday,

	"terça": time.Tuesday, "terca": time.Tuesday, "terça-feira": time.Tuesday,
	"terca-feira": time.Tuesday, "ter": time.Tuesday, "tuesday": time.Tuesday, "tue": time.Tuesday,

	"quarta": time.Wednesday, "quarta-feira": time.Wednesday, "qua": time.Wednesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,

	"quinta": time.Thursday, "quinta-feira": time.Thursday, "qui": time.Thursday,
	"thursday": time.Thursday, "thu": time.Thursday,

	"sexta": time.Friday, "sexta-feira": time.Friday, "sex": time.Friday,
	"friday": time.Friday, "fri": time.Friday,

	"sábado": time.Saturday, "sabado": time.Saturday, "sáb": time.Saturday, "sab": time.Saturday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var historyLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// ParseWeekday resolves Portuguese or English day names, with or without
// accents and the "-feira" suffix.
func ParseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// ParseHistoryDate accepts ISO dates (with or without time) and dd/mm/yyyy.
// Timestamps carrying a zone are converted to loc.
func ParseHistoryDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range historyLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		t = t.In(loc)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}

// WeekDays returns the seven midnights of now's week, Sunday first.
func WeekDays(now time.Time) []time.Time {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = start.AddDate(0, 0, -int(start.Weekday()))

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// AssignedDays returns the days of now's week that have a split entry.
// Entries with an unknown day name are ignored.
func AssignedDays(split workout.Split, now time.Time) []time.Time {
	week := WeekDays(now)

	var marked [7]bool
	for _, d := range split {
		if wd, ok := ParseWeekday(d.Day); ok {
			marked[wd] = true
		}
	}

	var out []time.Time
	for i, day := range week {
		if marked[i] {
			out = append(out, day)
		}
	}
	return out
}

// CompletedDays returns the days of now's week with at least one history
// entry. Unparseable dates are skipped with a warning.
func CompletedDays(history []HistoryEntry, now time.Time) []time.Time {
	week := WeekDays(now)
	loc := now.Location()
	first, last := week[0], week[6]

	var marked [7]bool
	for _, h := range history {
		d, ok := ParseHistoryDate(h.Date, loc)
		if !ok {
			log.Printf("warning: ignoring history entry with unrecognized date %q", h.Date)
			continue
		}
		if d.Before(first) || d.After(last) {
			continue
		}
		marked[d.Weekday()] = true
	}

	var out []time.Time
	for i, day := range week {
		if marked[i] {
			out = append(out, day)
		}
	}
	return out
}

type DayStatus struct {
	Date      time.Time `json:"date"`
	Weekday   string    `json:"weekday"`
	Labels    []string  `json:"labels,omitempty"`
	Assigned  bool      `json:"assigned"`
	Completed bool      `json:"completed"`
	Today     bool      `json:"today"`
}

// WeekOverview combines assigned and completed days for the student's
// current week.
func WeekOverview(s Student, now time.Time) []DayStatus {
	week := WeekDays(now)
	out := make([]DayStatus, len(week))

	for i, day := range week {
		out[i] = DayStatus{
			Date:    day,
			Weekday: day.Weekday().String(),
			Today:   sameDay(day, now),
		}
	}

	for _, d := range s.Split() {
		wd, ok := ParseWeekday(d.Day)
		if !ok {
			continue
		}
		out[wd].Assigned = true
		if d.Label != "" {
			out[wd].Labels = append(out[wd].Labels, d.Label)
		}
	}

	for _, day := range CompletedDays(s.History, now) {
		out[day.Weekday()].Completed = true
	}

	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
