package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymdesk/internal/domain/plan"
	"gymdesk/internal/infrastructure/persistence/mappers"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/logger"
)

type planRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

// NewPlanRepository creates a GORM-backed plan repository
func NewPlanRepository(db *gorm.DB, logger logger.Interface) plan.Repository {
	return &planRepository{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *planRepository) Create(ctx context.Context, entity *plan.Plan) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map plan: %w", err)
	}
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	return entity.SetID(model.ID)
}

func (r *planRepository) GetByID(ctx context.Context, planID uint) (*plan.Plan, error) {
	var model models.PlanModel
	err := r.db.WithContext(ctx).First(&model, planID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *planRepository) GetBySID(ctx context.Context, sid string) (*plan.Plan, error) {
	var model models.PlanModel
	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *planRepository) Update(ctx context.Context, entity *plan.Plan) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map plan: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.PlanModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":            model.Name,
			"description":     model.Description,
			"price_cents":     model.PriceCents,
			"duration_months": model.DurationMonths,
			"features":        model.Features,
			"status":          model.Status,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("plan not found: %d", model.ID)
	}
	return nil
}

func (r *planRepository) Delete(ctx context.Context, planID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PlanModel{}, planID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("plan not found: %d", planID)
	}
	return nil
}

func (r *planRepository) GetAllActive(ctx context.Context) ([]*plan.Plan, error) {
	var planModels []*models.PlanModel
	err := r.db.WithContext(ctx).
		Where("status = ?", "active").
		Order("price_cents ASC").
		Find(&planModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active plans: %w", err)
	}
	return r.mapper.ToEntities(planModels)
}

func (r *planRepository) List(ctx context.Context, filter plan.Filter) ([]*plan.Plan, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PlanModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	var planModels []*models.PlanModel
	err := query.
		Order("created_at DESC").
		Offset(offsetFor(filter.Page, filter.PageSize)).
		Limit(limitFor(filter.PageSize)).
		Find(&planModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	entities, err := r.mapper.ToEntities(planModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
