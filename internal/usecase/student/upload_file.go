package student

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/domain/roster"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/filestore"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

// Store is the part of the data service the student flows use.
type Store interface {
	GetStudentByID(ctx context.Context, id string) *roster.Student
	SaveStudent(ctx context.Context, st roster.Student) (roster.Student, error)
}

// ======================================================
// INPUT
// ======================================================

type UploadFileInput struct {
	TrainerID string
	StudentID string

	FileName    string
	ContentType string
	Data        []byte
}

// ======================================================
// USE CASE
// ======================================================

type UploadFile struct {
	store    Store
	uploader filestore.Uploader
	audit    *audit.Dispatcher
	tz       string
}

func NewUploadFile(
	store Store,
	uploader filestore.Uploader,
	audit *audit.Dispatcher,
	tz string,
) *UploadFile {
	return &UploadFile{
		store:    store,
		uploader: uploader,
		audit:    audit,
		tz:       tz,
	}
}

// Execute uploads the file and appends it to the student's files.
func (uc *UploadFile) Execute(
	ctx context.Context,
	in UploadFileInput,
) (*roster.StudentFile, error) {

	st, err := loadOwned(ctx, uc.store, in.TrainerID, in.StudentID)
	if err != nil {
		return nil, err
	}

	url, err := uc.uploader.Upload(ctx, "students/"+st.ID, in.FileName, in.ContentType, in.Data)
	if err != nil {
		return nil, err
	}

	file := roster.StudentFile{
		ID:   uuid.NewString(),
		Name: in.FileName,
		Type: in.ContentType,
		URL:  url,
		Date: timezone.NowIn(uc.tz).Format("2006-01-02"),
	}
	st.Files = append(st.Files, file)

	if _, err := uc.store.SaveStudent(ctx, *st); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TrainerID: in.TrainerID,
		Action:    "student_file_uploaded",
		Entity:    "student",
		EntityID:  st.ID,
		Metadata:  map[string]string{"file": file.Name},
	})

	return &file, nil
}

// loadOwned hides students of other trainers behind the same error as a
// missing one.
func loadOwned(ctx context.Context, store Store, trainerID, studentID string) (*roster.Student, error) {
	st := store.GetStudentByID(ctx, studentID)
	if st == nil || (st.TrainerID != "" && st.TrainerID != trainerID) {
		return nil, httperr.ErrNotFound("student_not_found")
	}
	return st, nil
}
