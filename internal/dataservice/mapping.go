package dataservice

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/trainer-manager/internal/domain/billing"
	"github.com/BruksfildServices01/trainer-manager/internal/domain/roster"
	"github.com/BruksfildServices01/trainer-manager/internal/domain/schedule"
	"github.com/BruksfildServices01/trainer-manager/internal/domain/workout"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

// ======================================================
// column set
// ======================================================

// columns collects the row columns a write touches.
//
// A partial set treats empty application values as "not provided": they
// are left out and the stored value survives. A replacing set writes every
// mapped column, with NULL for empty values, so the saved object becomes
// the whole stored row.
type columns struct {
	names   []string
	replace bool
}

func partial(fixed ...string) *columns {
	return &columns{names: fixed}
}

func replacing(fixed ...string) *columns {
	return &columns{names: fixed, replace: true}
}

func (c *columns) add(name string) {
	c.names = append(c.names, name)
}

// keep adds the column when it is written and reports whether it carries
// a value (false means NULL or left out).
func (c *columns) keep(name string, empty bool) bool {
	if empty && !c.replace {
		return false
	}
	c.add(name)
	return !empty
}

func (c *columns) str(name, v string) *string {
	if !c.keep(name, v == "") {
		return nil
	}
	return &v
}

func (c *columns) required(name, v string) string {
	c.keep(name, v == "")
	return v
}

func (c *columns) num(name string, v float64) *float64 {
	if !c.keep(name, v == 0) {
		return nil
	}
	return &v
}

func (c *columns) integer(name string, v int) *int {
	if !c.keep(name, v == 0) {
		return nil
	}
	return &v
}

func (c *columns) timestamp(name string, v *time.Time) *time.Time {
	if !c.keep(name, v == nil) {
		return nil
	}
	t := *v
	return &t
}

func (c *columns) json(name string, v any, present bool) datatypes.JSON {
	if !c.keep(name, !present) {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		// coluna já entrou na lista: grava NULL
		log.Printf("warning: cannot encode %s: %v", name, err)
		return nil
	}
	return datatypes.JSON(b)
}

// ======================================================
// read helpers
// ======================================================

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func decodeJSON(raw datatypes.JSON, field string, dst any) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("warning: ignoring malformed %s column: %v", field, err)
		return false
	}
	return true
}

// ======================================================
// Student
// ======================================================

func studentFromRow(row models.Student) roster.Student {
	s := roster.Student{
		ID:        row.ID,
		TrainerID: deref(row.TrainerID),
		Name:      row.Name,
		Email:     deref(row.Email),

		Cpf:       deref(row.Cpf),
		Phone:     deref(row.Phone),
		Instagram: deref(row.Instagram),
		Whatsapp:  deref(row.Whatsapp),

		BirthDate: deref(row.BirthDate),
		Gender:    deref(row.Gender),
		Height:    deref(row.Height),
		Weight:    deref(row.Weight),

		BillingDay: deref(row.BillingDay),
		MonthlyFee: deref(row.MonthlyFee),
		IsActive:   row.IsActive == nil || *row.IsActive,

		History: []roster.HistoryEntry{},
		Files:   []roster.StudentFile{},
	}

	var program workout.Program
	if decodeJSON(row.Program, "program", &program) {
		s.Program = &program
	}
	decodeJSON(row.History, "history", &s.History)
	decodeJSON(row.Files, "files", &s.Files)

	if row.Trainer != nil && row.Trainer.ID != "" {
		t := trainerFromRow(*row.Trainer)
		s.TrainerName = t.DisplayName()
		s.TrainerAvatar = t.Avatar
		s.TrainerInstagram = t.Instagram
		s.TrainerWhatsapp = t.Whatsapp
	}

	return s
}

func studentToRow(s roster.Student) (models.Student, []string) {
	cols := replacing("id")
	active := s.IsActive

	row := models.Student{
		ID:        s.ID,
		TrainerID: cols.str("trainer_id", s.TrainerID),
		Name:      cols.required("name", s.Name),
		Email:     cols.str("email", s.Email),

		Cpf:       cols.str("cpf", s.Cpf),
		Phone:     cols.str("phone", s.Phone),
		Instagram: cols.str("instagram", s.Instagram),
		Whatsapp:  cols.str("whatsapp", s.Whatsapp),

		BirthDate: cols.str("birth_date", s.BirthDate),
		Gender:    cols.str("gender", s.Gender),
		Height:    cols.num("height", s.Height),
		Weight:    cols.num("weight", s.Weight),

		Program: cols.json("program", s.Program, s.Program != nil),
		History: cols.json("history", s.History, s.History != nil),

		BillingDay: cols.integer("billing_day", s.BillingDay),
		MonthlyFee: cols.num("monthly_fee", s.MonthlyFee),
		IsActive:   &active,

		Files: cols.json("files", s.Files, s.Files != nil),
	}
	cols.add("is_active")

	return row, cols.names
}

func studentFeeFromRow(row models.Student) billing.StudentFee {
	return billing.StudentFee{
		ID:         row.ID,
		Name:       row.Name,
		MonthlyFee: deref(row.MonthlyFee),
		BillingDay: deref(row.BillingDay),
	}
}

func studentFee(s roster.Student) billing.StudentFee {
	return billing.StudentFee{
		ID:         s.ID,
		Name:       s.Name,
		MonthlyFee: s.MonthlyFee,
		BillingDay: s.BillingDay,
	}
}

// ======================================================
// Trainer
// ======================================================

func trainerFromRow(row models.Trainer) roster.Trainer {
	return roster.Trainer{
		ID:      row.ID,
		Name:    strings.TrimSpace(row.Name),
		Surname: strings.TrimSpace(deref(row.Surname)),
		Email:   row.Email,
		Avatar:  deref(row.Avatar),

		Instagram: deref(row.Instagram),
		Whatsapp:  deref(row.Whatsapp),

		SubscriptionStatus:  deref(row.SubscriptionStatus),
		SubscriptionEndDate: row.SubscriptionEndDate,

		CreatedAt: row.CreatedAt,
	}
}

// trainerToRow is partial: UpdateTrainer only sends the fields it changes.
func trainerToRow(t roster.Trainer) (models.Trainer, []string) {
	cols := partial("id")

	row := models.Trainer{
		ID:      t.ID,
		Name:    cols.required("name", t.Name),
		Surname: cols.str("surname", t.Surname),
		Email:   cols.required("email", t.Email),
		Avatar:  cols.str("avatar", t.Avatar),

		Instagram: cols.str("instagram", t.Instagram),
		Whatsapp:  cols.str("whatsapp", t.Whatsapp),

		SubscriptionStatus:  cols.str("subscription_status", t.SubscriptionStatus),
		SubscriptionEndDate: cols.timestamp("subscription_end_date", t.SubscriptionEndDate),
	}

	return row, cols.names
}

// ======================================================
// Workouts
// ======================================================

func folderFromRow(row models.WorkoutFolder) workout.WorkoutFolder {
	return workout.WorkoutFolder{
		ID:        row.ID,
		Name:      row.Name,
		TrainerID: row.TrainerID,
		CreatedAt: row.CreatedAt,
	}
}

func folderToRow(f workout.WorkoutFolder) (models.WorkoutFolder, []string) {
	cols := replacing("id")

	row := models.WorkoutFolder{
		ID:        f.ID,
		TrainerID: cols.required("trainer_id", f.TrainerID),
		Name:      cols.required("name", f.Name),
	}
	if !f.CreatedAt.IsZero() {
		row.CreatedAt = f.CreatedAt
		cols.add("created_at")
	}

	return row, cols.names
}

func templateFromRow(row models.WorkoutTemplate) workout.WorkoutTemplate {
	t := workout.WorkoutTemplate{
		ID:                 row.ID,
		Name:               row.Name,
		Category:           deref(row.Category),
		TrainerID:          row.TrainerID,
		FolderID:           deref(row.FolderID),
		Split:              workout.Split{},
		Frequency:          deref(row.Frequency),
		Goal:               deref(row.Goal),
		Difficulty:         deref(row.Difficulty),
		AISuggestedChanges: deref(row.AISuggestedChanges),
	}
	decodeJSON(row.Split, "split", &t.Split)
	return t
}

func templateToRow(t workout.WorkoutTemplate) (models.WorkoutTemplate, []string) {
	cols := replacing("id")

	row := models.WorkoutTemplate{
		ID:        t.ID,
		TrainerID: cols.required("trainer_id", t.TrainerID),
		FolderID:  cols.str("folder_id", t.FolderID),

		Name:     cols.required("name", t.Name),
		Category: cols.str("category", t.Category),
		Split:    cols.json("split", t.Split, t.Split != nil),

		Frequency:          cols.str("frequency", t.Frequency),
		Goal:               cols.str("goal", t.Goal),
		Difficulty:         cols.str("difficulty", t.Difficulty),
		AISuggestedChanges: cols.str("ai_suggested_changes", t.AISuggestedChanges),
	}

	return row, cols.names
}

func exerciseFromRow(row models.LibraryExercise) workout.LibraryExercise {
	return workout.LibraryExercise{
		ID:         row.ID,
		Name:       row.Name,
		Category:   deref(row.Category),
		VideoURL:   deref(row.VideoURL),
		IsStandard: row.IsStandard,
	}
}

func exerciseToRow(ex workout.LibraryExercise, trainerID string) (models.LibraryExercise, []string) {
	cols := replacing("id")

	row := models.LibraryExercise{
		ID:         ex.ID,
		TrainerID:  cols.str("trainer_id", trainerID),
		Name:       cols.required("name", ex.Name),
		Category:   cols.str("category", ex.Category),
		VideoURL:   cols.str("video_url", ex.VideoURL),
		IsStandard: ex.IsStandard,
	}
	cols.add("is_standard")

	return row, cols.names
}

// ======================================================
// Schedule
// ======================================================

func eventFromRow(row models.ScheduleEvent) schedule.ScheduleEvent {
	ev := schedule.ScheduleEvent{
		ID:          row.ID,
		TrainerID:   row.TrainerID,
		StudentID:   deref(row.StudentID),
		StudentName: deref(row.StudentName),
		Title:       row.Title,
		Description: deref(row.Description),
		Start:       row.StartTime,
		End:         row.EndTime,
		Location:    deref(row.Location),
		IsRecurring: deref(row.IsRecurring),
		Status:      schedule.NormalizeStatus(deref(row.Status)),
	}
	decodeJSON(row.RecurringDays, "recurring_days", &ev.RecurringDays)
	return ev
}

func eventToRow(ev schedule.ScheduleEvent) (models.ScheduleEvent, []string) {
	cols := replacing("id", "start_time", "end_time", "is_recurring")
	recurring := ev.IsRecurring

	row := models.ScheduleEvent{
		ID:        ev.ID,
		TrainerID: cols.required("trainer_id", ev.TrainerID),

		StudentID:   cols.str("student_id", ev.StudentID),
		StudentName: cols.str("student_name", ev.StudentName),

		Title:       cols.required("title", ev.Title),
		Description: cols.str("description", ev.Description),
		StartTime:   ev.Start,
		EndTime:     ev.End,
		Location:    cols.str("location", ev.Location),

		IsRecurring:   &recurring,
		RecurringDays: cols.json("recurring_days", ev.RecurringDays, ev.RecurringDays != nil),

		Status: cols.str("status", schedule.NormalizeStatus(ev.Status)),
	}

	return row, cols.names
}

// ======================================================
// Payments
// ======================================================

func paymentFromRow(row models.StudentPayment) billing.StudentPayment {
	p := billing.StudentPayment{
		ID:        row.ID,
		StudentID: deref(row.StudentID),
		TrainerID: row.TrainerID,

		Month:  row.Month,
		Year:   row.Year,
		Amount: row.Amount,
		Status: row.Status,

		PaidAt:      row.PaidAt,
		Type:        deref(row.Type),
		Category:    deref(row.Category),
		Description: deref(row.Description),

		ProofURL:  deref(row.ProofURL),
		ProofDate: row.ProofDate,

		CreatedAt: row.CreatedAt,
	}
	return normalizePayment(p)
}

// paymentToRow always writes paid_at: a pending payment clears it.
func paymentToRow(p billing.StudentPayment) (models.StudentPayment, []string) {
	cols := replacing("id", "month", "year", "amount", "status", "paid_at")

	row := models.StudentPayment{
		ID:        p.ID,
		StudentID: cols.str("student_id", p.StudentID),
		TrainerID: cols.required("trainer_id", p.TrainerID),

		Month:  p.Month,
		Year:   p.Year,
		Amount: p.Amount,
		Status: p.Status,

		PaidAt:      p.PaidAt,
		Type:        cols.str("type", p.Type),
		Category:    cols.str("category", p.Category),
		Description: cols.str("description", p.Description),

		ProofURL:  cols.str("proof_url", p.ProofURL),
		ProofDate: cols.timestamp("proof_date", p.ProofDate),
	}
	if !p.CreatedAt.IsZero() {
		row.CreatedAt = p.CreatedAt
		cols.add("created_at")
	}

	return row, cols.names
}

func normalizePayment(p billing.StudentPayment) billing.StudentPayment {
	if p.Type == "" {
		p.Type = billing.TypeRevenue
	}
	if p.Status == "" {
		p.Status = billing.StatusPending
	}
	return p
}
