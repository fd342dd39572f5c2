package dataservice

import (
	"context"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

// PaymentFilter scopes a payment query. Zero values do not filter. Results
// are ordered by year and month, newest first.
type PaymentFilter struct {
	StudentID string
	TrainerID string
	Month     int
	Year      int
}

// Remote is the relational backend the facade reads from and writes to in
// cloud mode. It works on row shapes only; translation to application shapes
// happens in this package.
//
// Upsert methods receive the columns to write: columns missing from the list
// are left untouched in the stored row.
type Remote interface {
	// -------- Students --------
	ListStudents(ctx context.Context, trainerID string, withTrainer bool) ([]models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	ListActiveStudentFees(ctx context.Context, trainerID string) ([]models.Student, error)
	UpsertStudent(ctx context.Context, row *models.Student, columns []string) error
	DeleteStudent(ctx context.Context, id string) error

	// -------- Trainers --------
	GetTrainer(ctx context.Context, id string) (*models.Trainer, error)
	UpsertTrainer(ctx context.Context, row *models.Trainer, columns []string) error

	// -------- Workouts --------
	ListWorkoutFolders(ctx context.Context, trainerID string) ([]models.WorkoutFolder, error)
	UpsertWorkoutFolder(ctx context.Context, row *models.WorkoutFolder, columns []string) error
	DeleteWorkoutFolder(ctx context.Context, id string) error

	ListWorkoutTemplates(ctx context.Context, trainerID string) ([]models.WorkoutTemplate, error)
	UpsertWorkoutTemplate(ctx context.Context, row *models.WorkoutTemplate, columns []string) error
	DeleteWorkoutTemplate(ctx context.Context, id string) error

	// -------- Exercise library --------
	ListExercises(ctx context.Context, trainerID string) ([]models.LibraryExercise, error)
	UpsertExercise(ctx context.Context, row *models.LibraryExercise, columns []string) error
	DeleteExercise(ctx context.Context, id string) error

	// -------- Schedule --------
	ListScheduleEvents(ctx context.Context, trainerID string) ([]models.ScheduleEvent, error)
	UpsertScheduleEvent(ctx context.Context, row *models.ScheduleEvent, columns []string) error
	DeleteScheduleEvent(ctx context.Context, id string) error

	// -------- Payments --------
	ListPayments(ctx context.Context, filter PaymentFilter) ([]models.StudentPayment, error)
	InsertPayment(ctx context.Context, row *models.StudentPayment, columns []string) error
	UpdatePayment(ctx context.Context, row *models.StudentPayment, columns []string) error
	DeletePayment(ctx context.Context, id string) error
}
