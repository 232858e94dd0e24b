package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/canarylab/chirper/pkg/internal/models"
	"github.com/canarylab/chirper/pkg/internal/stores"
)

// TimelineFetchLimit caps both the per-source fetch and the merged
// result. Because every source is truncated before the merge, a very
// active followee can push another followee's qualifying posts out of
// its own window; the merged top-20 is therefore approximate by design.
const TimelineFetchLimit = 20

type TimelineService struct {
	profiles stores.ProfileStore
	posts    stores.PostStore
}

func NewTimelineService(profiles stores.ProfileStore, posts stores.PostStore) *TimelineService {
	return &TimelineService{profiles: profiles, posts: posts}
}

// Build fans out one read per followed account plus one for the actor,
// merges everything and returns the newest TimelineFetchLimit posts.
// A followee whose profile no longer resolves is skipped silently.
func (s *TimelineService) Build(ctx context.Context, actor models.Account) ([]models.Post, error) {
	var timeline []models.Post

	for _, username := range actor.Following {
		followee, err := s.profiles.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("unable to resolve followed account %s: %w", username, err)
		}

		posts, err := s.posts.ListRecent(ctx, followee.ID, TimelineFetchLimit)
		if err != nil {
			return nil, fmt.Errorf("unable to load posts of %s: %w", username, err)
		}
		timeline = append(timeline, posts...)
	}

	own, err := s.posts.ListRecent(ctx, actor.ID, TimelineFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("unable to load own posts: %w", err)
	}
	timeline = append(timeline, own...)

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Date.After(timeline[j].Date)
	})

	if len(timeline) > TimelineFetchLimit {
		timeline = timeline[:TimelineFetchLimit]
	}

	return timeline, nil
}
