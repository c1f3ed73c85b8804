package usecases

import (
	"context"

	"gymdesk/internal/domain/plan"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// SetPlanStatusUseCase activates or deactivates a catalog plan. Deactivated
// plans stop appearing on the enrollment form but keep their record.
type SetPlanStatusUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewSetPlanStatusUseCase(planRepo plan.Repository, logger logger.Interface) *SetPlanStatusUseCase {
	return &SetPlanStatusUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *SetPlanStatusUseCase) Execute(ctx context.Context, sid string, active bool) error {
	p, err := uc.planRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "error", err, "plan_id", sid)
		return apperrors.NewRepositoryError("failed to load plan", err)
	}
	if p == nil {
		return apperrors.NewNotFoundError("plan not found")
	}

	if active {
		p.Activate()
	} else {
		p.Deactivate()
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update plan status", "error", err, "plan_id", sid)
		return apperrors.NewRepositoryError("failed to update plan status", err)
	}

	uc.logger.Infow("plan status updated", "plan_id", sid, "active", active)
	return nil
}
