package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/infrastructure/persistence/mappers"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/logger"
)

type assignmentRepository struct {
	db     *gorm.DB
	mapper mappers.AssignmentMapper
	logger logger.Interface
}

// NewAssignmentRepository creates a GORM-backed assignment repository
func NewAssignmentRepository(db *gorm.DB, logger logger.Interface) member.AssignmentRepository {
	return &assignmentRepository{
		db:     db,
		mapper: mappers.NewAssignmentMapper(),
		logger: logger,
	}
}

func (r *assignmentRepository) Create(ctx context.Context, entity *member.Assignment) error {
	model := r.mapper.ToModel(entity)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	return entity.SetID(model.ID)
}

func (r *assignmentRepository) GetByID(ctx context.Context, assignmentID uint) (*member.Assignment, error) {
	var model models.AssignmentModel
	err := r.db.WithContext(ctx).First(&model, assignmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *assignmentRepository) GetActiveByMemberID(ctx context.Context, memberID uint) (*member.Assignment, error) {
	var model models.AssignmentModel
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND active = ?", memberID, true).
		Order("end_date DESC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *assignmentRepository) GetByMemberID(ctx context.Context, memberID uint) ([]*member.Assignment, error) {
	var assignmentModels []*models.AssignmentModel
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("start_date DESC").
		Find(&assignmentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return r.mapper.ToEntities(assignmentModels)
}

func (r *assignmentRepository) Update(ctx context.Context, entity *member.Assignment) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Model(&models.AssignmentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"start_date": model.StartDate,
			"end_date":   model.EndDate,
			"active":     model.Active,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("assignment not found: %d", model.ID)
	}
	return nil
}

func (r *assignmentRepository) FindActiveEndingBetween(ctx context.Context, from, to time.Time) ([]*member.Assignment, error) {
	var assignmentModels []*models.AssignmentModel
	err := r.db.WithContext(ctx).
		Where("active = ? AND end_date >= ? AND end_date <= ?", true, from, to).
		Order("end_date ASC").
		Find(&assignmentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expiring assignments: %w", err)
	}
	return r.mapper.ToEntities(assignmentModels)
}

func (r *assignmentRepository) FindActiveExpired(ctx context.Context, now time.Time) ([]*member.Assignment, error) {
	var assignmentModels []*models.AssignmentModel
	err := r.db.WithContext(ctx).
		Where("active = ? AND end_date < ?", true, now).
		Find(&assignmentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expired assignments: %w", err)
	}
	return r.mapper.ToEntities(assignmentModels)
}

func (r *assignmentRepository) CountByPlanID(ctx context.Context, planID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.AssignmentModel{}).
		Where("plan_id = ?", planID).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return total, nil
}

func (r *assignmentRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.AssignmentModel{}).
		Where("active = ?", true).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active assignments: %w", err)
	}
	return total, nil
}
