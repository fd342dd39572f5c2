package dataservice

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"

	"gorm.io/gorm/schema"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

var errNotFound = errors.New("not found")

// fakeRemote keeps rows in maps. Like the SQL repository, writes only touch
// the listed columns; the lists are also recorded for assertions.
type fakeRemote struct {
	mu sync.Mutex

	students  map[string]models.Student
	trainers  map[string]models.Trainer
	folders   map[string]models.WorkoutFolder
	templates map[string]models.WorkoutTemplate
	exercises map[string]models.LibraryExercise
	events    map[string]models.ScheduleEvent
	payments  []models.StudentPayment

	joinErr  error
	listErr  error
	getErr   error
	writeErr error

	lastColumns []string
	calls       []string
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		students:  map[string]models.Student{},
		trainers:  map[string]models.Trainer{},
		folders:   map[string]models.WorkoutFolder{},
		templates: map[string]models.WorkoutTemplate{},
		exercises: map[string]models.LibraryExercise{},
		events:    map[string]models.ScheduleEvent{},
	}
}

func (f *fakeRemote) record(call string, cols []string) {
	f.calls = append(f.calls, call)
	f.lastColumns = append([]string(nil), cols...)
}

var naming = schema.NamingStrategy{}

// mergeColumns copies the listed columns of src into dst. Fields without a
// column of their own (associations) are never copied.
func mergeColumns[T any](dst *T, src T, cols []string) {
	listed := make(map[string]bool, len(cols))
	for _, c := range cols {
		listed[c] = true
	}

	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src)
	for i := 0; i < dv.NumField(); i++ {
		field := dv.Type().Field(i)
		name := schema.ParseTagSetting(field.Tag.Get("gorm"), ";")["COLUMN"]
		if name == "" {
			name = naming.ColumnName("", field.Name)
		}
		if listed[name] {
			dv.Field(i).Set(sv.Field(i))
		}
	}
}

// upsertRow is the ON CONFLICT (id) DO UPDATE of the SQL repository: a new
// row only gets the listed columns, an existing one keeps the rest.
func upsertRow[T any](rows map[string]T, id string, row T, cols []string) {
	stored := rows[id]
	mergeColumns(&stored, row, cols)
	rows[id] = stored
}

func (f *fakeRemote) ListStudents(_ context.Context, trainerID string, withTrainer bool) ([]models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if withTrainer && f.joinErr != nil {
		return nil, f.joinErr
	}
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []models.Student
	for _, row := range f.students {
		if trainerID != "" && (row.TrainerID == nil || *row.TrainerID != trainerID) {
			continue
		}
		row.Trainer = nil
		if withTrainer && row.TrainerID != nil {
			if t, ok := f.trainers[*row.TrainerID]; ok {
				row.Trainer = &t
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRemote) GetStudent(_ context.Context, id string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	row, ok := f.students[id]
	if !ok {
		return nil, nil
	}
	row.Trainer = nil
	return &row, nil
}

func (f *fakeRemote) ListActiveStudentFees(_ context.Context, trainerID string) ([]models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Student
	for _, row := range f.students {
		if row.TrainerID == nil || *row.TrainerID != trainerID {
			continue
		}
		if row.IsActive != nil && !*row.IsActive {
			continue
		}
		out = append(out, models.Student{
			ID:         row.ID,
			Name:       row.Name,
			MonthlyFee: row.MonthlyFee,
			BillingDay: row.BillingDay,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRemote) UpsertStudent(_ context.Context, row *models.Student, cols []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("upsert student", cols)
	if f.writeErr != nil {
		return f.writeErr
	}
	upsertRow(f.students, row.ID, *row, cols)
	return nil
}

func (f *fakeRemote) DeleteStudent(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.writeErr != nil {
		return f.writeErr
	}
	delete(f.students, id)
	return nil
}

func (f *fakeRemote) GetTrainer(_ context.Context, id string) (*models.Trainer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	row, ok := f.trainers[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeRemote) UpsertTrainer(_ context.Context, row *models.Trainer, cols []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("upsert trainer", cols)
	if f.writeErr != nil {
		return f.writeErr
	}
	upsertRow(f.trainers, row.ID, *row, cols)
	return nil
}

func (f *fakeRemote) ListWorkoutFolders(_ context.Context, trainerID string) ([]models.WorkoutFolder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.WorkoutFolder
	for _, row := range f.folders {
		if trainerID == "" || row.TrainerID == trainerID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRemote) UpsertWorkoutFolder(_ context.Context, row *models.WorkoutFolder, cols []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("upsert folder", cols)
	if f.writeErr != nil {
		return f.writeErr
	}
	upsertRow(f.folders, row.ID, *row, cols)
	return nil
}

func (f *fakeRemote) DeleteWorkoutFolder(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.folders, id)
	return nil
}

func (f *fakeRemote) ListWorkoutTemplates(_ context.Context, trainerID string) ([]models.WorkoutTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.WorkoutTemplate
	for _, row := range f.templates {
		if trainerID == "" || row.TrainerID == trainerID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRemote) UpsertWorkoutTemplate(_ context.Context, row *models.WorkoutTemplate, cols []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("upsert template", cols)
	if f.writeErr != nil {
		return f.writeErr
	}
	upsertRow(f.templates, row.ID, *row, cols)
	return nil
}

func (f *fakeRemote) DeleteWorkoutTemplate(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.templates, id)
	return nil
}

func (f *fakeRemote) ListExercises(_ context.Context, trainerID string) ([]models.LibraryExercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.LibraryExercise
	for _, row := range f.exercises {
		if trainerID == "" || (row.TrainerID != nil && *row.TrainerID == trainerID) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRemote) UpsertExercise(_ context.Context, row *models.LibraryExercise, cols []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("upsert exercise", cols)
	if f.writeErr != nil {
		return f.writeErr
	}
	upsertRow(f.exercises, row.ID, *row, cols)
	return nil
}

func (f *fakeRemote) DeleteExercise(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.exercises, id)
	return nil
}

func (f *fakeRemote) ListScheduleEvents(_ context.Context, trainerID string) ([]models.ScheduleEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.ScheduleEvent
	for _, row := range f.events {
		if trainerID == "" || row.TrainerID == trainerID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRemote) UpsertScheduleEvent(_ context.Context, row *models.ScheduleEvent, cols []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("upsert event", cols)
	if f.writeErr != nil {
		return f.writeErr
	}
	upsertRow(f.events, row.ID, *row, cols)
	return nil
}

func (f *fakeRemote) DeleteScheduleEvent(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.events, id)
	return nil
}

func (f *fakeRemote) ListPayments(_ context.Context, filter PaymentFilter) ([]models.StudentPayment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.StudentPayment
	for _, row := range f.payments {
		if filter.StudentID != "" && (row.StudentID == nil || *row.StudentID != filter.StudentID) {
			continue
		}
		if filter.TrainerID != "" && row.TrainerID != filter.TrainerID {
			continue
		}
		if filter.Month != 0 && row.Month != filter.Month {
			continue
		}
		if filter.Year != 0 && row.Year != filter.Year {
			continue
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out, nil
}

func (f *fakeRemote) InsertPayment(_ context.Context, row *models.StudentPayment, cols []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("insert payment", cols)
	if f.writeErr != nil {
		return f.writeErr
	}
	var stored models.StudentPayment
	mergeColumns(&stored, *row, cols)
	f.payments = append(f.payments, stored)
	return nil
}

func (f *fakeRemote) UpdatePayment(_ context.Context, row *models.StudentPayment, cols []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("update payment", cols)
	if f.writeErr != nil {
		return f.writeErr
	}
	for i := range f.payments {
		if f.payments[i].ID == row.ID {
			mergeColumns(&f.payments[i], *row, cols)
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRemote) DeletePayment(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.payments[:0]
	for _, row := range f.payments {
		if row.ID != id {
			kept = append(kept, row)
		}
	}
	f.payments = kept
	return nil
}

var _ Remote = (*fakeRemote)(nil)
