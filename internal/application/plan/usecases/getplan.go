package usecases

import (
	"context"

	"gymdesk/internal/application/plan/dto"
	"gymdesk/internal/domain/plan"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type GetPlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewGetPlanUseCase(planRepo plan.Repository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) ExecuteBySID(ctx context.Context, sid string) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "error", err, "plan_id", sid)
		return nil, apperrors.NewRepositoryError("failed to load plan", err)
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}
	return dto.FromEntity(p), nil
}
