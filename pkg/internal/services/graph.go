package services

import (
	"context"
	"fmt"

	"github.com/canarylab/chirper/pkg/internal/models"
	"github.com/canarylab/chirper/pkg/internal/stores"
	"github.com/samber/lo"
)

// GraphService maintains the denormalized follower/following lists.
// Each side of a relationship is persisted with its own write; there is
// no transaction spanning the pair, so a concurrent call racing the
// read-modify-write can lose one of the updates. That matches the
// observed behavior of the original system.
type GraphService struct {
	profiles stores.ProfileStore
}

func NewGraphService(profiles stores.ProfileStore) *GraphService {
	return &GraphService{profiles: profiles}
}

// Follow adds the actor to the target's followers and the target to the
// actor's following list. Both updates are conditional on membership,
// so repeating the call is a no-op.
func (s *GraphService) Follow(ctx context.Context, actor models.Account, targetUsername string) error {
	if actor.Username == targetUsername {
		return ErrSelfReference
	}

	target, err := s.profiles.GetByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	if !lo.Contains(target.Followers, actor.Username) {
		target.Followers = append(target.Followers, actor.Username)
		if err := s.profiles.Update(ctx, target); err != nil {
			return fmt.Errorf("unable to update followers of %s: %w", targetUsername, err)
		}
	}

	if !lo.Contains(actor.Following, targetUsername) {
		actor.Following = append(actor.Following, targetUsername)
		if err := s.profiles.Update(ctx, actor); err != nil {
			return fmt.Errorf("unable to update following of %s: %w", actor.Username, err)
		}
	}

	return nil
}

// Unfollow is the symmetric removal, again one conditional write per side.
func (s *GraphService) Unfollow(ctx context.Context, actor models.Account, targetUsername string) error {
	if actor.Username == targetUsername {
		return ErrSelfReference
	}

	target, err := s.profiles.GetByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	if lo.Contains(target.Followers, actor.Username) {
		target.Followers = lo.Without(target.Followers, actor.Username)
		if err := s.profiles.Update(ctx, target); err != nil {
			return fmt.Errorf("unable to update followers of %s: %w", targetUsername, err)
		}
	}

	if lo.Contains(actor.Following, targetUsername) {
		actor.Following = lo.Without(actor.Following, targetUsername)
		if err := s.profiles.Update(ctx, actor); err != nil {
			return fmt.Errorf("unable to update following of %s: %w", actor.Username, err)
		}
	}

	return nil
}
