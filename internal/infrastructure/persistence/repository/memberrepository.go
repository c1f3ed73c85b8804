package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/infrastructure/persistence/mappers"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/logger"
)

type memberRepository struct {
	db     *gorm.DB
	mapper mappers.MemberMapper
	logger logger.Interface
}

// NewMemberRepository creates a GORM-backed member repository
func NewMemberRepository(db *gorm.DB, logger logger.Interface) member.Repository {
	return &memberRepository{
		db:     db,
		mapper: mappers.NewMemberMapper(),
		logger: logger,
	}
}

func (r *memberRepository) Create(ctx context.Context, entity *member.Member) error {
	model := r.mapper.ToModel(entity)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	return entity.SetID(model.ID)
}

func (r *memberRepository) GetByID(ctx context.Context, memberID uint) (*member.Member, error) {
	var model models.MemberModel
	err := r.db.WithContext(ctx).First(&model, memberID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *memberRepository) GetBySID(ctx context.Context, sid string) (*member.Member, error) {
	var model models.MemberModel
	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*member.Member, error) {
	var model models.MemberModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member by email: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *memberRepository) Update(ctx context.Context, entity *member.Member) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Model(&models.MemberModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"first_name":        model.FirstName,
			"last_name":         model.LastName,
			"email":             model.Email,
			"phone":             model.Phone,
			"address":           model.Address,
			"emergency_contact": model.EmergencyContact,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("member not found: %d", model.ID)
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, memberID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.MemberModel{}, memberID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("member not found: %d", memberID)
	}
	return nil
}

func (r *memberRepository) List(ctx context.Context, filter member.Filter) ([]*member.Member, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.MemberModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	var memberModels []*models.MemberModel
	err := query.
		Order("last_name ASC, first_name ASC").
		Offset(offsetFor(filter.Page, filter.PageSize)).
		Limit(limitFor(filter.PageSize)).
		Find(&memberModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}

	entities, err := r.mapper.ToEntities(memberModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *memberRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.MemberModel{}).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return total, nil
}
