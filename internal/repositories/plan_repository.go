package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type PlanRepository interface {
	// InsertPlan writes the full plan document in a single create.
	InsertPlan(ctx context.Context, plan *db_models.TravelPlan) error
	GetPlanById(ctx context.Context, planID string) (*db_models.TravelPlan, error)
	ListPlansByUserId(ctx context.Context, userID uuid.UUID) ([]db_models.TravelPlan, error)
	DeletePlan(ctx context.Context, planID string, userID uuid.UUID) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (p *planRepository) InsertPlan(ctx context.Context, plan *db_models.TravelPlan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p *planRepository) GetPlanById(ctx context.Context, planID string) (*db_models.TravelPlan, error) {
	var plan db_models.TravelPlan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *planRepository) ListPlansByUserId(ctx context.Context, userID uuid.UUID) ([]db_models.TravelPlan, error) {
	var plans []db_models.TravelPlan
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *planRepository) DeletePlan(ctx context.Context, planID string, userID uuid.UUID) error {
	return p.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		Delete(&db_models.TravelPlan{}).Error
}
