// Package stores holds the persistence contracts the services are
// written against. The gorm implementations below are the only thing
// talking to the database; tests substitute in-memory fakes.
package stores

import (
	"context"
	"errors"

	"github.com/canarylab/chirper/pkg/internal/models"
)

// ErrNotFound is returned when the referenced profile or post does not
// exist. Callers that treat absence as non-fatal match against it.
var ErrNotFound = errors.New("record not found")

type ProfileStore interface {
	GetByID(ctx context.Context, id string) (models.Account, error)
	GetByUsername(ctx context.Context, username string) (models.Account, error)
	SearchByUsernamePrefix(ctx context.Context, prefix string, limit int) ([]models.Account, error)
	Create(ctx context.Context, account models.Account) error
	Update(ctx context.Context, account models.Account) error
}

type PostStore interface {
	ListRecent(ctx context.Context, ownerID string, limit int) ([]models.Post, error)
	Get(ctx context.Context, ownerID, postID string) (models.Post, error)
	Create(ctx context.Context, post models.Post) error
	Update(ctx context.Context, post models.Post) error
	Delete(ctx context.Context, ownerID, postID string) error
	SearchByBodyPrefix(ctx context.Context, prefix string) ([]models.Post, error)
}
