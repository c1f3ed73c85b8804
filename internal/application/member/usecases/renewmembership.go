package usecases

import (
	"context"
	"time"

	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/biztime"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type RenewMembershipCommand struct {
	MemberSID string
	PlanSID   string
}

// RenewMembershipUseCase replaces a member's current assignment with a new
// one. The previous assignment is deactivated first, which keeps at most
// one active assignment per member. The new term starts when the old one
// ends, or today if it already lapsed.
type RenewMembershipUseCase struct {
	memberRepo     member.Repository
	assignmentRepo member.AssignmentRepository
	planRepo       plan.Repository
	logger         logger.Interface
}

func NewRenewMembershipUseCase(
	memberRepo member.Repository,
	assignmentRepo member.AssignmentRepository,
	planRepo plan.Repository,
	logger logger.Interface,
) *RenewMembershipUseCase {
	return &RenewMembershipUseCase{
		memberRepo:     memberRepo,
		assignmentRepo: assignmentRepo,
		planRepo:       planRepo,
		logger:         logger,
	}
}

func (uc *RenewMembershipUseCase) Execute(ctx context.Context, cmd RenewMembershipCommand) (*dto.AssignmentDTO, error) {
	m, err := uc.memberRepo.GetBySID(ctx, cmd.MemberSID)
	if err != nil {
		uc.logger.Errorw("failed to load member", "error", err, "member_id", cmd.MemberSID)
		return nil, apperrors.NewRepositoryError("failed to load member", err)
	}
	if m == nil {
		return nil, apperrors.NewNotFoundError("member not found")
	}

	p, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "error", err, "plan_id", cmd.PlanSID)
		return nil, apperrors.NewRepositoryError("failed to load plan", err)
	}
	if p == nil {
		return nil, apperrors.NewValidationError("selected plan not found")
	}
	if !p.IsActive() {
		return nil, apperrors.NewValidationError("selected plan is not active")
	}

	current, err := uc.assignmentRepo.GetActiveByMemberID(ctx, m.ID())
	if err != nil {
		uc.logger.Errorw("failed to load assignment", "error", err, "member_id", cmd.MemberSID)
		return nil, apperrors.NewRepositoryError("failed to load membership", err)
	}

	startDate := biztime.Today()
	if current != nil {
		startDate = nextTermStart(current.EndDate(), startDate)
		current.Deactivate()
		if err := uc.assignmentRepo.Update(ctx, current); err != nil {
			uc.logger.Errorw("failed to deactivate assignment", "error", err, "member_id", cmd.MemberSID)
			return nil, apperrors.NewRepositoryError("failed to close current membership", err)
		}
	}

	assignment, err := member.NewAssignment(m.ID(), p, startDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid renewal", err.Error())
	}
	if err := uc.assignmentRepo.Create(ctx, assignment); err != nil {
		uc.logger.Errorw("failed to persist renewal, member left without active membership",
			"error", err, "member_id", cmd.MemberSID, "plan_id", cmd.PlanSID)
		return nil, apperrors.NewPartialFailureError(
			"previous membership was closed but the renewal was not saved", err.Error())
	}

	uc.logger.Infow("membership renewed",
		"member_id", cmd.MemberSID,
		"plan_id", cmd.PlanSID,
		"start_date", biztime.FormatDate(assignment.StartDate()),
		"end_date", biztime.FormatDate(assignment.EndDate()))

	result := dto.FromAssignment(assignment)
	result.PlanSID = p.SID()
	result.PlanName = p.Name()
	return result, nil
}

func nextTermStart(currentEnd, today time.Time) time.Time {
	if currentEnd.After(today) {
		return currentEnd
	}
	return today
}
