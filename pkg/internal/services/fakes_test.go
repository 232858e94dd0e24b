package services

import (
	"context"
	"sort"
	"strings"

	"github.com/canarylab/chirper/pkg/internal/models"
	"github.com/canarylab/chirper/pkg/internal/stores"
)

// In-memory store fakes. Values are copied in and out so callers see
// the same read-modify-write behavior as with the real database.

type fakeProfileStore struct {
	accounts map[string]models.Account
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{accounts: map[string]models.Account{}}
}

func (s *fakeProfileStore) GetByID(_ context.Context, id string) (models.Account, error) {
	if account, ok := s.accounts[id]; ok {
		return account, nil
	}
	return models.Account{}, stores.ErrNotFound
}

func (s *fakeProfileStore) GetByUsername(_ context.Context, username string) (models.Account, error) {
	for _, account := range s.accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return models.Account{}, stores.ErrNotFound
}

func (s *fakeProfileStore) SearchByUsernamePrefix(_ context.Context, prefix string, limit int) ([]models.Account, error) {
	var found []models.Account
	for _, account := range s.accounts {
		if strings.HasPrefix(account.Username, prefix) {
			found = append(found, account)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].Username < found[j].Username
	})
	if len(found) > limit {
		found = found[:limit]
	}
	return found, nil
}

func (s *fakeProfileStore) Create(_ context.Context, account models.Account) error {
	s.accounts[account.ID] = account
	return nil
}

func (s *fakeProfileStore) Update(_ context.Context, account models.Account) error {
	s.accounts[account.ID] = account
	return nil
}

type fakePostStore struct {
	posts map[string][]models.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[string][]models.Post{}}
}

func (s *fakePostStore) ListRecent(_ context.Context, ownerID string, limit int) ([]models.Post, error) {
	recent := append([]models.Post(nil), s.posts[ownerID]...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

func (s *fakePostStore) Get(_ context.Context, ownerID, postID string) (models.Post, error) {
	for _, post := range s.posts[ownerID] {
		if post.ID == postID {
			return post, nil
		}
	}
	return models.Post{}, stores.ErrNotFound
}

func (s *fakePostStore) Create(_ context.Context, post models.Post) error {
	s.posts[post.AccountID] = append(s.posts[post.AccountID], post)
	return nil
}

func (s *fakePostStore) Update(_ context.Context, post models.Post) error {
	for idx, existing := range s.posts[post.AccountID] {
		if existing.ID == post.ID {
			s.posts[post.AccountID][idx] = post
			return nil
		}
	}
	return stores.ErrNotFound
}

func (s *fakePostStore) Delete(_ context.Context, ownerID, postID string) error {
	for idx, post := range s.posts[ownerID] {
		if post.ID == postID {
			s.posts[ownerID] = append(s.posts[ownerID][:idx], s.posts[ownerID][idx+1:]...)
			return nil
		}
	}
	return stores.ErrNotFound
}

func (s *fakePostStore) SearchByBodyPrefix(_ context.Context, prefix string) ([]models.Post, error) {
	var found []models.Post
	for _, posts := range s.posts {
		for _, post := range posts {
			if strings.HasPrefix(post.Body, prefix) {
				found = append(found, post)
			}
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Date.After(found[j].Date)
	})
	return found, nil
}
