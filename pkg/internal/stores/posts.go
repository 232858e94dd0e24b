package stores

import (
	"context"
	"errors"

	"github.com/canarylab/chirper/pkg/internal/models"
	"gorm.io/gorm"
)

type postStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) PostStore {
	return &postStore{db: db}
}

func (s *postStore) ListRecent(ctx context.Context, ownerID string, limit int) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).
		Where("account_id = ?", ownerID).
		Order("date DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return posts, err
	}
	return posts, nil
}

func (s *postStore) Get(ctx context.Context, ownerID, postID string) (models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).
		Where("account_id = ? AND id = ?", ownerID, postID).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return post, ErrNotFound
		}
		return post, err
	}
	return post, nil
}

func (s *postStore) Create(ctx context.Context, post models.Post) error {
	return s.db.WithContext(ctx).Create(&post).Error
}

func (s *postStore) Update(ctx context.Context, post models.Post) error {
	return s.db.WithContext(ctx).Save(&post).Error
}

func (s *postStore) Delete(ctx context.Context, ownerID, postID string) error {
	res := s.db.WithContext(ctx).
		Where("account_id = ? AND id = ?", ownerID, postID).
		Delete(&models.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *postStore) SearchByBodyPrefix(ctx context.Context, prefix string) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).
		Where("name LIKE ?", prefix+"%").
		Order("date DESC").
		Find(&posts).Error; err != nil {
		return posts, err
	}
	return posts, nil
}
