package services

import (
	"context"
	"time"

	"github.com/canarylab/chirper/pkg/internal/models"
	"github.com/canarylab/chirper/pkg/internal/stores"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const ProfilePostLimit = 10

type PostService struct {
	posts stores.PostStore
}

func NewPostService(posts stores.PostStore) *PostService {
	return &PostService{posts: posts}
}

// Publish creates a post owned by the actor. The creation date is
// assigned here and never changes afterwards.
func (s *PostService) Publish(ctx context.Context, actor models.Account, body, imageURL string) (models.Post, error) {
	post := models.Post{
		ID:        uuid.NewString(),
		AccountID: actor.ID,
		Username:  actor.Username,
		Body:      body,
		ImageURL:  imageURL,
		Date:      time.Now(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return post, err
	}

	log.Debug().Str("post", post.ID).Str("author", actor.Username).Msg("Post published.")
	return post, nil
}

func (s *PostService) Get(ctx context.Context, ownerID, postID string) (models.Post, error) {
	return s.posts.Get(ctx, ownerID, postID)
}

func (s *PostService) ListRecent(ctx context.Context, ownerID string, limit int) ([]models.Post, error) {
	return s.posts.ListRecent(ctx, ownerID, limit)
}

// Edit replaces the body and, when a new URL is given, the image of a
// caller-owned post. An empty imageURL keeps the existing attachment.
func (s *PostService) Edit(ctx context.Context, ownerID, postID, body, imageURL string) (models.Post, error) {
	post, err := s.posts.Get(ctx, ownerID, postID)
	if err != nil {
		return post, err
	}

	post.Body = body
	if imageURL != "" {
		post.ImageURL = imageURL
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return post, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, ownerID, postID string) error {
	if _, err := s.posts.Get(ctx, ownerID, postID); err != nil {
		return err
	}
	return s.posts.Delete(ctx, ownerID, postID)
}

// Search scans post bodies across all accounts for the given prefix.
func (s *PostService) Search(ctx context.Context, words string) ([]models.Post, error) {
	return s.posts.SearchByBodyPrefix(ctx, words)
}
