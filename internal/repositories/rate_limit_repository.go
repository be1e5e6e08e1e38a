package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type RateLimitRepository interface {
	GetRecord(ctx context.Context, userID string) (*db_models.RateLimitRecord, error)
	SaveRecord(ctx context.Context, record *db_models.RateLimitRecord) error
}

type rateLimitRepository struct {
	db *gorm.DB
}

func NewRateLimitRepository(db *gorm.DB) RateLimitRepository {
	return &rateLimitRepository{db: db}
}

func (r *rateLimitRepository) GetRecord(ctx context.Context, userID string) (*db_models.RateLimitRecord, error) {
	var record db_models.RateLimitRecord
	err := r.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

func (r *rateLimitRepository) SaveRecord(ctx context.Context, record *db_models.RateLimitRecord) error {
	// Save upserts on the user_id primary key.
	return r.db.WithContext(ctx).Save(record).Error
}
