package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gymdesk/internal/domain/payment"
	"gymdesk/internal/infrastructure/persistence/mappers"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/logger"
)

type paymentRepository struct {
	db     *gorm.DB
	mapper mappers.PaymentMapper
	logger logger.Interface
}

// NewPaymentRepository creates a GORM-backed payment repository
func NewPaymentRepository(db *gorm.DB, logger logger.Interface) payment.Repository {
	return &paymentRepository{
		db:     db,
		mapper: mappers.NewPaymentMapper(),
		logger: logger,
	}
}

func (r *paymentRepository) Create(ctx context.Context, entity *payment.Payment) error {
	model := r.mapper.ToModel(entity)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return entity.SetID(model.ID)
}

func (r *paymentRepository) GetByID(ctx context.Context, paymentID uint) (*payment.Payment, error) {
	var model models.PaymentModel
	err := r.db.WithContext(ctx).First(&model, paymentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *paymentRepository) GetBySID(ctx context.Context, sid string) (*payment.Payment, error) {
	var model models.PaymentModel
	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *paymentRepository) ListByMemberID(ctx context.Context, memberID uint) ([]*payment.Payment, error) {
	var paymentModels []*models.PaymentModel
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("paid_at DESC").
		Find(&paymentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return r.mapper.ToEntities(paymentModels)
}

func (r *paymentRepository) List(ctx context.Context, filter payment.Filter) ([]*payment.Payment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PaymentModel{})
	if filter.MemberID != nil {
		query = query.Where("member_id = ?", *filter.MemberID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	var paymentModels []*models.PaymentModel
	err := query.
		Order("paid_at DESC").
		Offset(offsetFor(filter.Page, filter.PageSize)).
		Limit(limitFor(filter.PageSize)).
		Find(&paymentModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	entities, err := r.mapper.ToEntities(paymentModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *paymentRepository) SumCompletedSince(ctx context.Context, since time.Time) (int64, error) {
	var sum *int64
	err := r.db.WithContext(ctx).Model(&models.PaymentModel{}).
		Select("SUM(amount_cents)").
		Where("status = ? AND paid_at >= ?", string(payment.StatusCompleted), since).
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
