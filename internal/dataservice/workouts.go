package dataservice

import (
	"context"
	"log"

	"github.com/BruksfildServices01/trainer-manager/internal/domain/workout"
)

func folderKey(f workout.WorkoutFolder) string     { return f.ID }
func templateKey(t workout.WorkoutTemplate) string { return t.ID }

// ======================================================
// Folders
// ======================================================

func (s *Service) GetWorkoutFolders(ctx context.Context, trainerID string) []workout.WorkoutFolder {
	if !s.cloud {
		all := listLocal[workout.WorkoutFolder](ctx, s, KeyWorkoutFolders, "get workout folders")
		out := make([]workout.WorkoutFolder, 0, len(all))
		for _, f := range all {
			if ownedBy(f.TrainerID, trainerID) {
				out = append(out, f)
			}
		}
		return out
	}

	rows, err := s.remote.ListWorkoutFolders(ctx, trainerID)
	if err != nil {
		log.Printf("get workout folders: %v", err)
		return []workout.WorkoutFolder{}
	}

	out := make([]workout.WorkoutFolder, 0, len(rows))
	for _, row := range rows {
		out = append(out, folderFromRow(row))
	}
	return out
}

func (s *Service) SaveWorkoutFolder(ctx context.Context, f workout.WorkoutFolder) (workout.WorkoutFolder, error) {
	f.ID = s.ensureID(f.ID)
	if f.CreatedAt.IsZero() {
		f.CreatedAt = s.now()
	}

	if !s.cloud {
		if err := upsertLocal(ctx, s, KeyWorkoutFolders, f, folderKey); err != nil {
			return workout.WorkoutFolder{}, wrap("save workout folder", err)
		}
		return f, nil
	}

	row, cols := folderToRow(f)
	if err := s.remote.UpsertWorkoutFolder(ctx, &row, cols); err != nil {
		return workout.WorkoutFolder{}, wrap("save workout folder", err)
	}
	return f, nil
}

// DeleteWorkoutFolder removes only the folder. Its templates keep the stale
// folder id and show up as ungrouped.
func (s *Service) DeleteWorkoutFolder(ctx context.Context, id string) error {
	if !s.cloud {
		return wrap("delete workout folder", deleteLocal(ctx, s, KeyWorkoutFolders, id, folderKey))
	}
	return wrap("delete workout folder", s.remote.DeleteWorkoutFolder(ctx, id))
}

// ======================================================
// Templates
// ======================================================

func (s *Service) GetWorkoutTemplates(ctx context.Context, trainerID string) []workout.WorkoutTemplate {
	if !s.cloud {
		all := listLocal[workout.WorkoutTemplate](ctx, s, KeyWorkoutTemplates, "get workout templates")
		out := make([]workout.WorkoutTemplate, 0, len(all))
		for _, t := range all {
			if ownedBy(t.TrainerID, trainerID) {
				out = append(out, t)
			}
		}
		return out
	}

	rows, err := s.remote.ListWorkoutTemplates(ctx, trainerID)
	if err != nil {
		log.Printf("get workout templates: %v", err)
		return []workout.WorkoutTemplate{}
	}

	out := make([]workout.WorkoutTemplate, 0, len(rows))
	for _, row := range rows {
		out = append(out, templateFromRow(row))
	}
	return out
}

func (s *Service) SaveWorkoutTemplate(ctx context.Context, t workout.WorkoutTemplate) (workout.WorkoutTemplate, error) {
	t.ID = s.ensureID(t.ID)

	if !s.cloud {
		if t.Split == nil {
			t.Split = workout.Split{}
		}
		if err := upsertLocal(ctx, s, KeyWorkoutTemplates, t, templateKey); err != nil {
			return workout.WorkoutTemplate{}, wrap("save workout template", err)
		}
		return t, nil
	}

	row, cols := templateToRow(t)
	if err := s.remote.UpsertWorkoutTemplate(ctx, &row, cols); err != nil {
		return workout.WorkoutTemplate{}, wrap("save workout template", err)
	}
	return t, nil
}

func (s *Service) DeleteWorkoutTemplate(ctx context.Context, id string) error {
	if !s.cloud {
		return wrap("delete workout template", deleteLocal(ctx, s, KeyWorkoutTemplates, id, templateKey))
	}
	return wrap("delete workout template", s.remote.DeleteWorkoutTemplate(ctx, id))
}
