package dataservice

import (
	"context"
	"log"

	"github.com/BruksfildServices01/trainer-manager/internal/domain/roster"
)

func studentKey(s roster.Student) string { return s.ID }

// studentListTier is one attempt of the student list read.
type studentListTier struct {
	name        string
	withTrainer bool
}

// Com o join bloqueado (ex.: RLS na tabela de treinadores) a lista ainda
// sai, só sem os dados do treinador.
var studentListTiers = []studentListTier{
	{name: "joined", withTrainer: true},
	{name: "unjoined", withTrainer: false},
}

// GetStudents lists the students of trainerID (all students when empty),
// ordered by name in cloud mode. Trainer display fields are filled only when
// the joined query succeeds.
func (s *Service) GetStudents(ctx context.Context, trainerID string) []roster.Student {
	if !s.cloud {
		all := listLocal[roster.Student](ctx, s, KeyStudents, "get students")
		out := make([]roster.Student, 0, len(all))
		for _, st := range all {
			if ownedBy(st.TrainerID, trainerID) {
				out = append(out, st)
			}
		}
		return out
	}

	for _, tier := range studentListTiers {
		rows, err := s.remote.ListStudents(ctx, trainerID, tier.withTrainer)
		if err != nil {
			log.Printf("get students (%s): %v", tier.name, err)
			continue
		}

		out := make([]roster.Student, 0, len(rows))
		for _, row := range rows {
			if !tier.withTrainer {
				row.Trainer = nil
			}
			out = append(out, studentFromRow(row))
		}
		return out
	}

	log.Printf("get students: all attempts failed, returning empty list")
	return []roster.Student{}
}

// GetStudentByID returns nil when the student does not exist or the read
// fails. Unlike the list it never retries and never fills trainer fields.
func (s *Service) GetStudentByID(ctx context.Context, id string) *roster.Student {
	if !s.cloud {
		return findLocal(ctx, s, KeyStudents, "get student", id, studentKey)
	}

	row, err := s.remote.GetStudent(ctx, id)
	if err != nil {
		log.Printf("get student %s: %v", id, err)
		return nil
	}
	if row == nil {
		return nil
	}

	st := studentFromRow(*row)
	return &st
}

// SaveStudent inserts or replaces the student by id and returns what was
// stored. A missing id is generated. Every mapped field is written, so an
// emptied field is cleared in both modes.
func (s *Service) SaveStudent(ctx context.Context, st roster.Student) (roster.Student, error) {
	st.ID = s.ensureID(st.ID)
	st.ClearTrainerDisplay()
	if st.History == nil {
		st.History = []roster.HistoryEntry{}
	}
	if st.Files == nil {
		st.Files = []roster.StudentFile{}
	}

	if !s.cloud {
		if err := upsertLocal(ctx, s, KeyStudents, st, studentKey); err != nil {
			return roster.Student{}, wrap("save student", err)
		}
		return st, nil
	}

	row, cols := studentToRow(st)
	if err := s.remote.UpsertStudent(ctx, &row, cols); err != nil {
		return roster.Student{}, wrap("save student", err)
	}
	return st, nil
}

func (s *Service) DeleteStudent(ctx context.Context, id string) error {
	if !s.cloud {
		return wrap("delete student", deleteLocal(ctx, s, KeyStudents, id, studentKey))
	}
	return wrap("delete student", s.remote.DeleteStudent(ctx, id))
}

// ======================================================
// Trainers
// ======================================================

func trainerKey(t roster.Trainer) string { return t.ID }

// GetTrainerByID returns nil when the trainer is unknown or the read fails.
func (s *Service) GetTrainerByID(ctx context.Context, id string) *roster.Trainer {
	if !s.cloud {
		return findLocal(ctx, s, KeyTrainers, "get trainer", id, trainerKey)
	}

	row, err := s.remote.GetTrainer(ctx, id)
	if err != nil {
		log.Printf("get trainer %s: %v", id, err)
		return nil
	}
	if row == nil {
		return nil
	}

	t := trainerFromRow(*row)
	return &t
}

// RegisterTrainer creates the trainer profile right after sign-up. New
// trainers start on a trial subscription.
func (s *Service) RegisterTrainer(ctx context.Context, t roster.Trainer) (roster.Trainer, error) {
	t.ID = s.ensureID(t.ID)
	if t.SubscriptionStatus == "" {
		t.SubscriptionStatus = roster.SubscriptionTrial
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now()
	}
	if err := s.saveTrainer(ctx, t); err != nil {
		return roster.Trainer{}, wrap("register trainer", err)
	}
	return t, nil
}

// UpdateTrainer writes the profile fields that are set. In fallback mode the
// stored record is replaced as a whole.
func (s *Service) UpdateTrainer(ctx context.Context, t roster.Trainer) error {
	if t.ID == "" {
		return wrap("update trainer", errMissingTrainerID)
	}
	return wrap("update trainer", s.saveTrainer(ctx, t))
}

func (s *Service) saveTrainer(ctx context.Context, t roster.Trainer) error {
	if !s.cloud {
		return upsertLocal(ctx, s, KeyTrainers, t, trainerKey)
	}

	row, cols := trainerToRow(t)
	if !t.CreatedAt.IsZero() {
		row.CreatedAt = t.CreatedAt
		cols = append(cols, "created_at")
	}
	return s.remote.UpsertTrainer(ctx, &row, cols)
}
