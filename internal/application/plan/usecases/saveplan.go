package usecases

import (
	"context"

	"gymdesk/internal/application/plan/dto"
	"gymdesk/internal/domain/plan"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// SavePlanCommand carries the editor form. SID is empty for create and set
// for edit. Duration arrives as the value and unit the operator entered;
// it is canonicalized to whole months before persistence on every save.
type SavePlanCommand struct {
	SID           string
	Name          string
	Description   string
	PriceCents    int64
	DurationValue int
	DurationUnit  string
	Features      []string
}

type SavePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewSavePlanUseCase(planRepo plan.Repository, logger logger.Interface) *SavePlanUseCase {
	return &SavePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *SavePlanUseCase) Execute(ctx context.Context, cmd SavePlanCommand) (*dto.PlanDTO, error) {
	duration, err := uc.parseDuration(cmd)
	if err != nil {
		return nil, err
	}

	if cmd.SID == "" {
		return uc.create(ctx, cmd, duration)
	}
	return uc.update(ctx, cmd, duration)
}

func (uc *SavePlanUseCase) parseDuration(cmd SavePlanCommand) (plan.Duration, error) {
	unit, err := plan.ParseDurationUnit(cmd.DurationUnit)
	if err != nil {
		return plan.Duration{}, apperrors.NewValidationError("invalid duration unit", err.Error())
	}
	duration, err := plan.NewDuration(cmd.DurationValue, unit)
	if err != nil {
		return plan.Duration{}, apperrors.NewValidationError("invalid duration", err.Error())
	}
	return duration, nil
}

func (uc *SavePlanUseCase) create(ctx context.Context, cmd SavePlanCommand, duration plan.Duration) (*dto.PlanDTO, error) {
	p, err := plan.NewPlan(cmd.Name, cmd.Description, cmd.PriceCents, duration, cmd.Features)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid plan", err.Error())
	}

	if err := uc.planRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to persist plan", "error", err, "name", cmd.Name)
		return nil, apperrors.NewRepositoryError("failed to save plan", err)
	}

	uc.logger.Infow("plan created", "plan_id", p.SID(), "name", p.Name(), "duration_months", p.DurationMonths())
	return dto.FromEntity(p), nil
}

func (uc *SavePlanUseCase) update(ctx context.Context, cmd SavePlanCommand, duration plan.Duration) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "error", err, "plan_id", cmd.SID)
		return nil, apperrors.NewRepositoryError("failed to load plan", err)
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}

	if err := p.Rename(cmd.Name); err != nil {
		return nil, apperrors.NewValidationError("invalid plan name", err.Error())
	}
	p.UpdateDescription(cmd.Description)
	if err := p.UpdatePrice(cmd.PriceCents); err != nil {
		return nil, apperrors.NewValidationError("invalid plan price", err.Error())
	}
	if err := p.UpdateFeatures(cmd.Features); err != nil {
		return nil, apperrors.NewValidationError("invalid plan features", err.Error())
	}
	p.UpdateDuration(duration)

	if err := uc.planRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", cmd.SID)
		return nil, apperrors.NewRepositoryError("failed to save plan", err)
	}

	uc.logger.Infow("plan updated", "plan_id", p.SID(), "duration_months", p.DurationMonths())
	return dto.FromEntity(p), nil
}
