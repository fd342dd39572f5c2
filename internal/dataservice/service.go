// Package dataservice is the single gate for reading and writing trainer
// data. It talks to the relational backend when one is configured and to a
// local key-value store otherwise, translating between row shapes and
// application shapes on the way.
package dataservice

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/localstore"
)

// Chaves das coleções no modo local.
const (
	KeyStudents         = "pt_students"
	KeyWorkoutFolders   = "pt_workout_folders"
	KeyWorkoutTemplates = "pt_workout_templates"
	KeyExercises        = "pt_exercises"
	KeyScheduleEvents   = "pt_schedule_events"
	KeyPayments         = "pt_payments"
	KeyTrainers         = "pt_trainers"
)

var errMissingTrainerID = httperr.ErrBusiness("missing_trainer_id")

type Service struct {
	remote Remote
	local  localstore.Store
	cloud  bool

	now   func() time.Time
	newID func() string
}

// New builds the facade. A nil remote selects the local fallback for the
// whole process lifetime; a nil local store falls back to memory.
func New(remote Remote, local localstore.Store) *Service {
	if local == nil {
		local = localstore.NewMemory()
	}
	return &Service{
		remote: remote,
		local:  local,
		cloud:  remote != nil,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// IsCloudActive reports whether the remote backend is in use.
func (s *Service) IsCloudActive() bool {
	return s.cloud
}

// ======================================================
// local collection helpers
// ======================================================

func listLocal[T any](ctx context.Context, s *Service, key, op string) []T {
	items, err := localstore.LoadCollection[T](ctx, s.local, key)
	if err != nil {
		log.Printf("%s: %v", op, err)
		return []T{}
	}
	return items
}

// upsertLocal replaces the record with the same id in place, or prepends it.
func upsertLocal[T any](ctx context.Context, s *Service, key string, item T, id func(T) string) error {
	items, err := localstore.LoadCollection[T](ctx, s.local, key)
	if err != nil {
		return err
	}

	target := id(item)
	for i := range items {
		if id(items[i]) == target {
			items[i] = item
			return localstore.SaveCollection(ctx, s.local, key, items)
		}
	}

	items = append([]T{item}, items...)
	return localstore.SaveCollection(ctx, s.local, key, items)
}

func deleteLocal[T any](ctx context.Context, s *Service, key, target string, id func(T) string) error {
	items, err := localstore.LoadCollection[T](ctx, s.local, key)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, it := range items {
		if id(it) != target {
			kept = append(kept, it)
		}
	}
	return localstore.SaveCollection(ctx, s.local, key, kept)
}

func findLocal[T any](ctx context.Context, s *Service, key, op, target string, id func(T) string) *T {
	for _, it := range listLocal[T](ctx, s, key, op) {
		if id(it) == target {
			found := it
			return &found
		}
	}
	return nil
}

// ownedBy keeps records without an owner; they predate sign-in.
func ownedBy(owner, trainerID string) bool {
	return trainerID == "" || owner == "" || owner == trainerID
}

func (s *Service) ensureID(id string) string {
	if id != "" {
		return id
	}
	return s.newID()
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
