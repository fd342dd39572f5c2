package auth

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/localstore"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewLocalCredentialStore(localstore.NewMemory()), "test-secret")
}

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestService(t)

	if err := s.Register(ctx, "t1", " Marcos@Example.com ", "segredo123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	taken, err := s.EmailTaken(ctx, "marcos@example.com")
	if err != nil || !taken {
		t.Fatalf("expected email taken, got %v %v", taken, err)
	}

	id, err := s.Authenticate(ctx, "MARCOS@example.com", "segredo123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if id != "t1" {
		t.Fatalf("expected t1, got %q", id)
	}

	if _, err := s.Authenticate(ctx, "marcos@example.com", "errada"); !httperr.IsBusiness(err, "invalid_credentials") {
		t.Fatalf("expected invalid_credentials for wrong password, got %v", err)
	}
	if _, err := s.Authenticate(ctx, "ninguem@example.com", "segredo123"); !httperr.IsBusiness(err, "invalid_credentials") {
		t.Fatalf("expected invalid_credentials for unknown email, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestService(t)

	if err := s.Register(ctx, "t1", "ana@example.com", "segredo123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := s.Register(ctx, "t2", "ana@example.com", "outra123")
	if !httperr.IsBusiness(err, "email_already_registered") {
		t.Fatalf("expected email_already_registered, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	token, err := s.IssueToken("t1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	sub, err := s.ParseToken(token)
	if err != nil || sub != "t1" {
		t.Fatalf("parse: %q %v", sub, err)
	}

	other := NewService(nil, "another-secret")
	if _, err := other.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token with wrong secret, got %v", err)
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	issued := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }
	token, err := s.IssueToken("t1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	s.now = func() time.Time { return issued.Add(25 * time.Hour) }
	if _, err := s.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected expired token rejected, got %v", err)
	}
}
