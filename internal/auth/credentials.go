package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/localstore"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

var (
	ErrEmailTaken         = httperr.ErrBusiness("email_already_registered")
	ErrInvalidCredentials = httperr.ErrBusiness("invalid_credentials")
)

// CredentialStore keeps email/password logins. FindByEmail returns nil when
// the email is unknown.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Credential, error)
	Create(ctx context.Context, cred *models.Credential) error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ======================================================
// gorm
// ======================================================

type GormCredentialStore struct {
	db *gorm.DB
}

func NewGormCredentialStore(db *gorm.DB) *GormCredentialStore {
	return &GormCredentialStore{db: db}
}

func (s *GormCredentialStore) FindByEmail(ctx context.Context, email string) (*models.Credential, error) {
	var cred models.Credential
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (s *GormCredentialStore) Create(ctx context.Context, cred *models.Credential) error {
	err := s.db.WithContext(ctx).Create(cred).Error
	if httperr.IsConflict(err) {
		return ErrEmailTaken
	}
	return err
}

// ======================================================
// local
// ======================================================

const keyCredentials = "pt_credentials"

// credentialRecord carries the hash, which models.Credential hides from JSON.
type credentialRecord struct {
	TrainerID    string `json:"trainerId"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

type LocalCredentialStore struct {
	store localstore.Store
}

func NewLocalCredentialStore(store localstore.Store) *LocalCredentialStore {
	return &LocalCredentialStore{store: store}
}

func (s *LocalCredentialStore) FindByEmail(ctx context.Context, email string) (*models.Credential, error) {
	records, err := localstore.LoadCollection[credentialRecord](ctx, s.store, keyCredentials)
	if err != nil {
		return nil, err
	}

	email = normalizeEmail(email)
	for _, r := range records {
		if r.Email == email {
			return &models.Credential{
				TrainerID:    r.TrainerID,
				Email:        r.Email,
				PasswordHash: r.PasswordHash,
			}, nil
		}
	}
	return nil, nil
}

func (s *LocalCredentialStore) Create(ctx context.Context, cred *models.Credential) error {
	records, err := localstore.LoadCollection[credentialRecord](ctx, s.store, keyCredentials)
	if err != nil {
		return err
	}

	for _, r := range records {
		if r.Email == cred.Email {
			return ErrEmailTaken
		}
	}

	records = append(records, credentialRecord{
		TrainerID:    cred.TrainerID,
		Email:        cred.Email,
		PasswordHash: cred.PasswordHash,
	})
	return localstore.SaveCollection(ctx, s.store, keyCredentials, records)
}

var (
	_ CredentialStore = (*GormCredentialStore)(nil)
	_ CredentialStore = (*LocalCredentialStore)(nil)
)
