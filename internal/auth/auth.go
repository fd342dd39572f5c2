// Package auth handles trainer sign-up, sign-in and session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type Service struct {
	creds  CredentialStore
	secret []byte
	now    func() time.Time
}

func NewService(creds CredentialStore, secret string) *Service {
	return &Service{
		creds:  creds,
		secret: []byte(secret),
		now:    time.Now,
	}
}

// EmailTaken reports whether a login already uses email.
func (s *Service) EmailTaken(ctx context.Context, email string) (bool, error) {
	cred, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("find credential: %w", err)
	}
	return cred != nil, nil
}

// Register stores the login of an already chosen trainer id.
func (s *Service) Register(ctx context.Context, trainerID, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	cred := &models.Credential{
		TrainerID:    trainerID,
		Email:        normalizeEmail(email),
		PasswordHash: string(hashed),
		CreatedAt:    s.now(),
	}
	if err := s.creds.Create(ctx, cred); err != nil {
		return fmt.Errorf("create credential: %w", err)
	}
	return nil
}

// Authenticate returns the trainer id for a valid email/password pair.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	cred, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("find credential: %w", err)
	}
	if cred == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return cred.TrainerID, nil
}

// --------- JWT ---------

func (s *Service) IssueToken(trainerID string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": trainerID,
		"exp": now.Add(tokenTTL).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates the token and returns its subject.
func (s *Service) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
