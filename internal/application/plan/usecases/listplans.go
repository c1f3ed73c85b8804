package usecases

import (
	"context"

	"gymdesk/internal/application/plan/dto"
	"gymdesk/internal/domain/plan"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type ListPlansQuery struct {
	Status   *string
	Page     int
	PageSize int
}

type ListPlansResult struct {
	Plans []*dto.PlanDTO
	Total int64
}

type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, query ListPlansQuery) (*ListPlansResult, error) {
	plans, total, err := uc.planRepo.List(ctx, plan.Filter{
		Status:   query.Status,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, apperrors.NewRepositoryError("failed to list plans", err)
	}

	return &ListPlansResult{
		Plans: dto.FromEntities(plans),
		Total: total,
	}, nil
}

// GetActivePlansUseCase returns the active catalog shown on the enrollment
// form.
type GetActivePlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewGetActivePlansUseCase(planRepo plan.Repository, logger logger.Interface) *GetActivePlansUseCase {
	return &GetActivePlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetActivePlansUseCase) Execute(ctx context.Context) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.GetAllActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load active plans", "error", err)
		return nil, apperrors.NewRepositoryError("failed to load active plans", err)
	}
	return dto.FromEntities(plans), nil
}
