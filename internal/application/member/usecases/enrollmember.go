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
	"gymdesk/internal/shared/utils"
)

// EnrollMemberCommand carries the enrollment form. StartDate is optional
// and defaults to today (business timezone day start).
type EnrollMemberCommand struct {
	FirstName        string `validate:"required"`
	LastName         string `validate:"required"`
	Email            string `validate:"required,email"`
	Phone            string
	Address          string
	EmergencyContact string
	PlanSID          string `validate:"required"`
	StartDate        *time.Time
}

// EnrollMemberUseCase creates a member and their first plan assignment as a
// two-step workflow without a surrounding transaction. The steps are
// distinct failure domains:
//
//  1. field validation, which fails before any repository call
//  2. member insert; failure leaves nothing persisted
//  3. date derivation from the plan duration (pure)
//  4. assignment insert; failure leaves the member from step 2 in place;
//     there is no compensating delete, the caller gets a partial-failure
//     error alongside the created member and must reconcile manually
//
// No step is retried internally.
type EnrollMemberUseCase struct {
	memberRepo     member.Repository
	assignmentRepo member.AssignmentRepository
	planRepo       plan.Repository
	logger         logger.Interface
}

func NewEnrollMemberUseCase(
	memberRepo member.Repository,
	assignmentRepo member.AssignmentRepository,
	planRepo plan.Repository,
	logger logger.Interface,
) *EnrollMemberUseCase {
	return &EnrollMemberUseCase{
		memberRepo:     memberRepo,
		assignmentRepo: assignmentRepo,
		planRepo:       planRepo,
		logger:         logger,
	}
}

// Execute runs the enrollment workflow. On partial failure (step 4) it
// returns BOTH a non-nil EnrollmentDTO carrying the created member and a
// partial-failure error, so the interface layer can render the warning
// without losing the record that was persisted.
func (uc *EnrollMemberUseCase) Execute(ctx context.Context, cmd EnrollMemberCommand) (*dto.EnrollmentDTO, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	p, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		uc.logger.Errorw("failed to load plan for enrollment", "error", err, "plan_id", cmd.PlanSID)
		return nil, apperrors.NewRepositoryError("failed to load plan", err)
	}
	if p == nil {
		return nil, apperrors.NewValidationError("selected plan not found")
	}
	if !p.IsActive() {
		return nil, apperrors.NewValidationError("selected plan is not active")
	}

	m, err := member.NewMember(cmd.FirstName, cmd.LastName, cmd.Email,
		cmd.Phone, cmd.Address, cmd.EmergencyContact)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid member", err.Error())
	}

	if err := uc.memberRepo.Create(ctx, m); err != nil {
		uc.logger.Errorw("failed to create member", "error", err, "email", cmd.Email)
		return nil, apperrors.NewRepositoryError("failed to create member", err)
	}

	startDate := biztime.Today()
	if cmd.StartDate != nil {
		startDate = biztime.StartOfDayUTC(*cmd.StartDate)
	}

	assignment, err := member.NewAssignment(m.ID(), p, startDate)
	if err != nil {
		// Member row stays; surface the partial state.
		uc.logger.Errorw("failed to build assignment after member creation",
			"error", err, "member_id", m.SID(), "plan_id", p.SID())
		return uc.partialResult(m), apperrors.NewPartialFailureError(
			"member created but plan assignment failed", err.Error())
	}

	if err := uc.assignmentRepo.Create(ctx, assignment); err != nil {
		uc.logger.Errorw("failed to persist assignment, member left without membership",
			"error", err, "member_id", m.SID(), "plan_id", p.SID())
		return uc.partialResult(m), apperrors.NewPartialFailureError(
			"member created but plan assignment failed", err.Error())
	}

	uc.logger.Infow("member enrolled",
		"member_id", m.SID(),
		"plan_id", p.SID(),
		"start_date", biztime.FormatDate(assignment.StartDate()),
		"end_date", biztime.FormatDate(assignment.EndDate()))

	assignmentDTO := dto.FromAssignment(assignment)
	assignmentDTO.PlanSID = p.SID()
	assignmentDTO.PlanName = p.Name()

	return &dto.EnrollmentDTO{
		Member:     dto.FromMember(m, member.StatusActive),
		Assignment: assignmentDTO,
	}, nil
}

func (uc *EnrollMemberUseCase) partialResult(m *member.Member) *dto.EnrollmentDTO {
	return &dto.EnrollmentDTO{
		Member:  dto.FromMember(m, member.StatusExpired),
		Warning: "member record was created but the plan assignment was not; assign a plan manually",
	}
}
