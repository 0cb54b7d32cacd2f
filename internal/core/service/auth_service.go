package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockdesk/inventory-system/internal/core/domain"
	"github.com/stockdesk/inventory-system/internal/core/ports"
)

// AuthService implements registration and login against the account store.
type AuthService struct {
	repo   ports.AuthRepository
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Register validates the password against the strength policy, hashes it and
// persists the account. The raw password is never stored or logged. Returns
// the stored full name for the welcome message.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (string, error) {
	if fullName == "" || email == "" {
		return "", domain.NewValidationError("name and email are required")
	}

	if ok, reason := domain.ValidatePassword(password); !ok {
		return "", domain.NewValidationError(reason)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	account := &domain.Account{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return "", domain.ErrEmailTaken
		}
		s.logger.Error().Err(err).Msg("failed to create account")
		return "", err
	}

	s.logger.Info().Str("email", email).Msg("account registered")
	return account.FullName, nil
}

// Login verifies credentials and returns the account's full name. An unknown
// email and a wrong password produce the same error so the response does not
// reveal which part was wrong. An empty account table is reported separately.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", domain.ErrNoAccounts
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	s.logger.Info().Str("email", email).Msg("login succeeded")
	return account.FullName, nil
}
