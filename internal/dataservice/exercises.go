package dataservice

import (
	"context"
	"log"

	"github.com/BruksfildServices01/trainer-manager/internal/domain/workout"
)

// customExercise is the local shape of a trainer-added exercise.
type customExercise struct {
	workout.LibraryExercise
	TrainerID string `json:"trainerId,omitempty"`
}

func exerciseKey(e customExercise) string { return e.ID }

// GetLibraryExercises returns the built-in catalog followed by the trainer's
// own exercises, deduplicated by name. A failed read still yields the
// built-in catalog.
func (s *Service) GetLibraryExercises(ctx context.Context, trainerID string) []workout.LibraryExercise {
	return workout.MergeExercises(workout.StandardExercises(), s.customExercises(ctx, trainerID))
}

func (s *Service) customExercises(ctx context.Context, trainerID string) []workout.LibraryExercise {
	if !s.cloud {
		all := listLocal[customExercise](ctx, s, KeyExercises, "get library exercises")
		out := make([]workout.LibraryExercise, 0, len(all))
		for _, e := range all {
			if ownedBy(e.TrainerID, trainerID) {
				out = append(out, e.LibraryExercise)
			}
		}
		return out
	}

	rows, err := s.remote.ListExercises(ctx, trainerID)
	if err != nil {
		log.Printf("get library exercises: %v", err)
		return nil
	}

	out := make([]workout.LibraryExercise, 0, len(rows))
	for _, row := range rows {
		out = append(out, exerciseFromRow(row))
	}
	return out
}

// SaveExercise stores a trainer exercise. Built-in entries are never written.
func (s *Service) SaveExercise(ctx context.Context, trainerID string, ex workout.LibraryExercise) (workout.LibraryExercise, error) {
	ex.ID = s.ensureID(ex.ID)
	ex.IsStandard = false

	if !s.cloud {
		item := customExercise{LibraryExercise: ex, TrainerID: trainerID}
		if err := upsertLocal(ctx, s, KeyExercises, item, exerciseKey); err != nil {
			return workout.LibraryExercise{}, wrap("save exercise", err)
		}
		return ex, nil
	}

	row, cols := exerciseToRow(ex, trainerID)
	if err := s.remote.UpsertExercise(ctx, &row, cols); err != nil {
		return workout.LibraryExercise{}, wrap("save exercise", err)
	}
	return ex, nil
}

func (s *Service) DeleteExercise(ctx context.Context, id string) error {
	if !s.cloud {
		return wrap("delete exercise", deleteLocal(ctx, s, KeyExercises, id, exerciseKey))
	}
	return wrap("delete exercise", s.remote.DeleteExercise(ctx, id))
}
