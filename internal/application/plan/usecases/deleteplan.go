package usecases

import (
	"context"

	"gymdesk/internal/domain/plan"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// DeletePlanUseCase removes a plan from the catalog. Existing assignments
// referencing the plan are deliberately left untouched: they carry their own
// concrete start and end dates and remain valid until they lapse.
type DeletePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo plan.Repository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, sid string) error {
	p, err := uc.planRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "error", err, "plan_id", sid)
		return apperrors.NewRepositoryError("failed to load plan", err)
	}
	if p == nil {
		return apperrors.NewNotFoundError("plan not found")
	}

	if err := uc.planRepo.Delete(ctx, p.ID()); err != nil {
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", sid)
		return apperrors.NewRepositoryError("failed to delete plan", err)
	}

	uc.logger.Infow("plan deleted", "plan_id", sid, "name", p.Name())
	return nil
}
