package usecases

import (
	"context"

	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/shared/biztime"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type UpdateMemberCommand struct {
	SID              string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          string
	EmergencyContact string
}

type UpdateMemberUseCase struct {
	memberRepo     member.Repository
	assignmentRepo member.AssignmentRepository
	thresholdDays  int
	logger         logger.Interface
}

func NewUpdateMemberUseCase(
	memberRepo member.Repository,
	assignmentRepo member.AssignmentRepository,
	thresholdDays int,
	logger logger.Interface,
) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{
		memberRepo:     memberRepo,
		assignmentRepo: assignmentRepo,
		thresholdDays:  thresholdDays,
		logger:         logger,
	}
}

func (uc *UpdateMemberUseCase) Execute(ctx context.Context, cmd UpdateMemberCommand) (*dto.MemberDTO, error) {
	m, err := uc.memberRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to load member", "error", err, "member_id", cmd.SID)
		return nil, apperrors.NewRepositoryError("failed to load member", err)
	}
	if m == nil {
		return nil, apperrors.NewNotFoundError("member not found")
	}

	if err := m.Rename(cmd.FirstName, cmd.LastName); err != nil {
		return nil, apperrors.NewValidationError("invalid member name", err.Error())
	}
	if err := m.UpdateContact(cmd.Email, cmd.Phone, cmd.Address, cmd.EmergencyContact); err != nil {
		return nil, apperrors.NewValidationError("invalid contact details", err.Error())
	}

	if err := uc.memberRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to update member", "error", err, "member_id", cmd.SID)
		return nil, apperrors.NewRepositoryError("failed to update member", err)
	}

	assignment, err := uc.assignmentRepo.GetActiveByMemberID(ctx, m.ID())
	if err != nil {
		uc.logger.Errorw("failed to load assignment", "error", err, "member_id", cmd.SID)
		return nil, apperrors.NewRepositoryError("failed to load membership", err)
	}

	status := member.StatusExpired
	if assignment != nil {
		status = member.ResolveStatus(assignment.EndDate(), biztime.NowUTC(), uc.thresholdDays)
	}

	uc.logger.Infow("member updated", "member_id", cmd.SID)

	result := dto.FromMember(m, status)
	result.Membership = dto.FromAssignment(assignment)
	return result, nil
}
