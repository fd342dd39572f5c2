package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/trainer-manager/internal/dataservice"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

type RemoteGormRepository struct {
	db *gorm.DB
}

func NewRemoteGormRepository(db *gorm.DB) *RemoteGormRepository {
	return &RemoteGormRepository{db: db}
}

// --------------------------------------------------
// Students
// --------------------------------------------------

func (r *RemoteGormRepository) ListStudents(
	ctx context.Context,
	trainerID string,
	withTrainer bool,
) ([]models.Student, error) {

	q := r.db.WithContext(ctx).Model(&models.Student{})
	if withTrainer {
		q = q.Joins("Trainer")
	}
	if trainerID != "" {
		q = q.Where("students.trainer_id = ?", trainerID)
	}

	var rows []models.Student
	if err := q.Order("students.name ASC").Find(&rows).Error; err != nil {
		if withTrainer {
			return nil, classify("list students with trainer", err)
		}
		return nil, classify("list students", err)
	}
	return rows, nil
}

func (r *RemoteGormRepository) GetStudent(
	ctx context.Context,
	id string,
) (*models.Student, error) {

	var row models.Student
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("get student", err)
	}
	return &row, nil
}

// ListActiveStudentFees projects only what the monthly view needs. A null
// is_active counts as active.
func (r *RemoteGormRepository) ListActiveStudentFees(
	ctx context.Context,
	trainerID string,
) ([]models.Student, error) {

	var rows []models.Student
	if err := r.db.WithContext(ctx).
		Select("id", "name", "monthly_fee", "billing_day").
		Where("trainer_id = ? AND (is_active IS NULL OR is_active = ?)", trainerID, true).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, classify("list active students", err)
	}
	return rows, nil
}

func (r *RemoteGormRepository) UpsertStudent(
	ctx context.Context,
	row *models.Student,
	columns []string,
) error {
	return classify("upsert student", r.upsert(ctx, row, columns, true))
}

func (r *RemoteGormRepository) DeleteStudent(ctx context.Context, id string) error {
	return classify("delete student",
		r.db.WithContext(ctx).Delete(&models.Student{}, "id = ?", id).Error)
}

// --------------------------------------------------
// Trainers
// --------------------------------------------------

func (r *RemoteGormRepository) GetTrainer(
	ctx context.Context,
	id string,
) (*models.Trainer, error) {

	var row models.Trainer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("get trainer", err)
	}
	return &row, nil
}

func (r *RemoteGormRepository) UpsertTrainer(
	ctx context.Context,
	row *models.Trainer,
	columns []string,
) error {
	return classify("upsert trainer", r.upsert(ctx, row, columns, true))
}

// --------------------------------------------------
// Workouts
// --------------------------------------------------

func (r *RemoteGormRepository) ListWorkoutFolders(
	ctx context.Context,
	trainerID string,
) ([]models.WorkoutFolder, error) {

	var rows []models.WorkoutFolder
	if err := scoped(r.db.WithContext(ctx), trainerID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, classify("list workout folders", err)
	}
	return rows, nil
}

func (r *RemoteGormRepository) UpsertWorkoutFolder(
	ctx context.Context,
	row *models.WorkoutFolder,
	columns []string,
) error {
	return classify("upsert workout folder", r.upsert(ctx, row, columns, false))
}

func (r *RemoteGormRepository) DeleteWorkoutFolder(ctx context.Context, id string) error {
	return classify("delete workout folder",
		r.db.WithContext(ctx).Delete(&models.WorkoutFolder{}, "id = ?", id).Error)
}

func (r *RemoteGormRepository) ListWorkoutTemplates(
	ctx context.Context,
	trainerID string,
) ([]models.WorkoutTemplate, error) {

	var rows []models.WorkoutTemplate
	if err := scoped(r.db.WithContext(ctx), trainerID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, classify("list workout templates", err)
	}
	return rows, nil
}

func (r *RemoteGormRepository) UpsertWorkoutTemplate(
	ctx context.Context,
	row *models.WorkoutTemplate,
	columns []string,
) error {
	return classify("upsert workout template", r.upsert(ctx, row, columns, true))
}

func (r *RemoteGormRepository) DeleteWorkoutTemplate(ctx context.Context, id string) error {
	return classify("delete workout template",
		r.db.WithContext(ctx).Delete(&models.WorkoutTemplate{}, "id = ?", id).Error)
}

// --------------------------------------------------
// Exercise library
// --------------------------------------------------

func (r *RemoteGormRepository) ListExercises(
	ctx context.Context,
	trainerID string,
) ([]models.LibraryExercise, error) {

	var rows []models.LibraryExercise
	if err := scoped(r.db.WithContext(ctx), trainerID).
		Where("is_standard = ?", false).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, classify("list exercises", err)
	}
	return rows, nil
}

func (r *RemoteGormRepository) UpsertExercise(
	ctx context.Context,
	row *models.LibraryExercise,
	columns []string,
) error {
	return classify("upsert exercise", r.upsert(ctx, row, columns, true))
}

func (r *RemoteGormRepository) DeleteExercise(ctx context.Context, id string) error {
	return classify("delete exercise",
		r.db.WithContext(ctx).Delete(&models.LibraryExercise{}, "id = ?", id).Error)
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *RemoteGormRepository) ListScheduleEvents(
	ctx context.Context,
	trainerID string,
) ([]models.ScheduleEvent, error) {

	var rows []models.ScheduleEvent
	if err := scoped(r.db.WithContext(ctx), trainerID).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, classify("list schedule events", err)
	}
	return rows, nil
}

func (r *RemoteGormRepository) UpsertScheduleEvent(
	ctx context.Context,
	row *models.ScheduleEvent,
	columns []string,
) error {
	return classify("upsert schedule event", r.upsert(ctx, row, columns, true))
}

func (r *RemoteGormRepository) DeleteScheduleEvent(ctx context.Context, id string) error {
	return classify("delete schedule event",
		r.db.WithContext(ctx).Delete(&models.ScheduleEvent{}, "id = ?", id).Error)
}

// --------------------------------------------------
// Payments
// --------------------------------------------------

func (r *RemoteGormRepository) ListPayments(
	ctx context.Context,
	f dataservice.PaymentFilter,
) ([]models.StudentPayment, error) {

	q := r.db.WithContext(ctx).Model(&models.StudentPayment{})
	if f.StudentID != "" {
		q = q.Where("student_id = ?", f.StudentID)
	}
	if f.TrainerID != "" {
		q = q.Where("trainer_id = ?", f.TrainerID)
	}
	if f.Month != 0 {
		q = q.Where("month = ?", f.Month)
	}
	if f.Year != 0 {
		q = q.Where("year = ?", f.Year)
	}

	var rows []models.StudentPayment
	if err := q.Order("year DESC").Order("month DESC").Find(&rows).Error; err != nil {
		return nil, classify("list payments", err)
	}
	return rows, nil
}

// InsertPayment always creates a new row. Nothing stops two rows for the
// same student and month.
func (r *RemoteGormRepository) InsertPayment(
	ctx context.Context,
	row *models.StudentPayment,
	columns []string,
) error {
	return classify("insert payment",
		r.db.WithContext(ctx).
			Select(withTimestamps(columns, false)).
			Create(row).Error)
}

func (r *RemoteGormRepository) UpdatePayment(
	ctx context.Context,
	row *models.StudentPayment,
	columns []string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.StudentPayment{}).
		Where("id = ?", row.ID).
		Select(updatable(columns, false)).
		Updates(row)
	if res.Error != nil {
		return classify("update payment", res.Error)
	}
	if res.RowsAffected == 0 {
		return classify("update payment", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *RemoteGormRepository) DeletePayment(ctx context.Context, id string) error {
	return classify("delete payment",
		r.db.WithContext(ctx).Delete(&models.StudentPayment{}, "id = ?", id).Error)
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func scoped(q *gorm.DB, trainerID string) *gorm.DB {
	if trainerID == "" {
		return q
	}
	return q.Where("trainer_id = ?", trainerID)
}

// upsert inserts the row or, on id conflict, overwrites only the given
// columns. created_at is never overwritten.
func (r *RemoteGormRepository) upsert(
	ctx context.Context,
	row any,
	columns []string,
	hasUpdatedAt bool,
) error {

	return r.db.WithContext(ctx).
		Select(withTimestamps(columns, hasUpdatedAt)).
		Clauses(upsertClause(columns, hasUpdatedAt)).
		Create(row).Error
}

func upsertClause(columns []string, hasUpdatedAt bool) clause.OnConflict {
	onConflict := clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
	}
	if updates := updatable(columns, hasUpdatedAt); len(updates) > 0 {
		onConflict.DoUpdates = clause.AssignmentColumns(updates)
	} else {
		onConflict.DoNothing = true
	}
	return onConflict
}

func withTimestamps(columns []string, hasUpdatedAt bool) []string {
	out := append([]string{}, columns...)
	if !contains(out, "created_at") {
		out = append(out, "created_at")
	}
	if hasUpdatedAt {
		out = append(out, "updated_at")
	}
	return out
}

func updatable(columns []string, hasUpdatedAt bool) []string {
	out := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		if c == "id" || c == "created_at" {
			continue
		}
		out = append(out, c)
	}
	if hasUpdatedAt && len(out) > 0 {
		out = append(out, "updated_at")
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// classify adds the SQLSTATE meaning to the message so degrade logs say
// why a query was refused.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case httperr.IsPolicyDenied(err):
		return fmt.Errorf("%s: blocked by access policy: %w", op, err)
	case httperr.IsSchemaMismatch(err):
		return fmt.Errorf("%s: schema mismatch: %w", op, err)
	case httperr.IsConflict(err):
		return fmt.Errorf("%s: duplicate key: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Compile-time check
var _ dataservice.Remote = (*RemoteGormRepository)(nil)
