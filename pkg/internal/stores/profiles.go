package stores

import (
	"context"
	"errors"

	"github.com/canarylab/chirper/pkg/internal/models"
	"gorm.io/gorm"
)

type profileStore struct {
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) ProfileStore {
	return &profileStore{db: db}
}

func (s *profileStore) GetByID(ctx context.Context, id string) (models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, ErrNotFound
		}
		return account, err
	}
	return account, nil
}

func (s *profileStore) GetByUsername(ctx context.Context, username string) (models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, ErrNotFound
		}
		return account, err
	}
	return account, nil
}

func (s *profileStore) SearchByUsernamePrefix(ctx context.Context, prefix string, limit int) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.WithContext(ctx).
		Where("username LIKE ?", prefix+"%").
		Order("username").
		Limit(limit).
		Find(&accounts).Error; err != nil {
		return accounts, err
	}
	return accounts, nil
}

func (s *profileStore) Create(ctx context.Context, account models.Account) error {
	return s.db.WithContext(ctx).Create(&account).Error
}

func (s *profileStore) Update(ctx context.Context, account models.Account) error {
	return s.db.WithContext(ctx).Save(&account).Error
}
