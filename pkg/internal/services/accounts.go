package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/canarylab/chirper/pkg/internal/models"
	"github.com/canarylab/chirper/pkg/internal/stores"
)

const UsernameSearchLimit = 10

type AccountService struct {
	profiles stores.ProfileStore
}

func NewAccountService(profiles stores.ProfileStore) *AccountService {
	return &AccountService{profiles: profiles}
}

// ClaimUsername materializes the profile for a verified identity. The
// username is assigned at most once: a second claim by the same user is
// a no-op, and a claim on a name held by someone else fails with
// ErrUsernameTaken.
func (s *AccountService) ClaimUsername(ctx context.Context, userID, username string) error {
	if _, err := s.profiles.GetByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, stores.ErrNotFound) {
		return fmt.Errorf("unable to check username availability: %w", err)
	}

	if _, err := s.profiles.GetByID(ctx, userID); err == nil {
		// Profile already provisioned, the username stays as it is.
		return nil
	} else if !errors.Is(err, stores.ErrNotFound) {
		return fmt.Errorf("unable to load profile: %w", err)
	}

	return s.profiles.Create(ctx, models.Account{
		ID:       userID,
		Username: username,
	})
}

func (s *AccountService) GetByUsername(ctx context.Context, username string) (models.Account, error) {
	return s.profiles.GetByUsername(ctx, username)
}

// SearchByPrefix returns up to UsernameSearchLimit accounts whose
// username starts with the given prefix.
func (s *AccountService) SearchByPrefix(ctx context.Context, prefix string) ([]models.Account, error) {
	return s.profiles.SearchByUsernamePrefix(ctx, prefix, UsernameSearchLimit)
}
