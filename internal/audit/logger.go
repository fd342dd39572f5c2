package audit

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (f Filter) offset() int {
	return (f.Page - 1) * f.Limit
}

// Store persists audit entries and lists them newest first.
type Store interface {
	Log(ctx context.Context, ev Event) error
	List(ctx context.Context, trainerID string, f Filter) ([]models.AuditLog, int64, error)
}

func toModel(ev Event, at time.Time) models.AuditLog {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return models.AuditLog{
		TrainerID: ev.TrainerID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: at,
	}
}

// ======================================================
// gorm
// ======================================================

type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (l *GormStore) Log(ctx context.Context, ev Event) error {
	entry := toModel(ev, time.Now())
	return l.db.WithContext(ctx).Create(&entry).Error
}

func (l *GormStore) List(ctx context.Context, trainerID string, f Filter) ([]models.AuditLog, int64, error) {
	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("trainer_id = ?", trainerID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// ======================================================
// memória (modo local)
// ======================================================

const memoryCapacity = 500

// MemoryStore prints every entry and keeps the latest ones for listing.
type MemoryStore struct {
	mu      sync.Mutex
	entries []models.AuditLog
	nextID  uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Log(_ context.Context, ev Event) error {
	entry := toModel(ev, time.Now())
	log.Printf("audit: trainer=%s action=%s entity=%s id=%s", ev.TrainerID, ev.Action, ev.Entity, ev.EntityID)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	entry.ID = m.nextID
	m.entries = append(m.entries, entry)
	if len(m.entries) > memoryCapacity {
		m.entries = m.entries[len(m.entries)-memoryCapacity:]
	}
	return nil
}

func (m *MemoryStore) List(_ context.Context, trainerID string, f Filter) ([]models.AuditLog, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []models.AuditLog
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		switch {
		case e.TrainerID != trainerID:
		case f.Action != "" && e.Action != f.Action:
		case f.Entity != "" && e.Entity != f.Entity:
		case f.From != nil && e.CreatedAt.Before(*f.From):
		case f.To != nil && e.CreatedAt.After(*f.To):
		default:
			matched = append(matched, e)
		}
	}

	total := int64(len(matched))
	start := f.offset()
	if start >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

var (
	_ Store = (*GormStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
