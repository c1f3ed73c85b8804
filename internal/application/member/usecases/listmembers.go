package usecases

import (
	"context"

	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/shared/biztime"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type ListMembersQuery struct {
	Search   string
	Page     int
	PageSize int
}

type ListMembersResult struct {
	Members []*dto.MemberDTO
	Total   int64
}

// ListMembersUseCase lists members with status derived per row from the
// active assignment's end date.
type ListMembersUseCase struct {
	memberRepo     member.Repository
	assignmentRepo member.AssignmentRepository
	thresholdDays  int
	logger         logger.Interface
}

func NewListMembersUseCase(
	memberRepo member.Repository,
	assignmentRepo member.AssignmentRepository,
	thresholdDays int,
	logger logger.Interface,
) *ListMembersUseCase {
	return &ListMembersUseCase{
		memberRepo:     memberRepo,
		assignmentRepo: assignmentRepo,
		thresholdDays:  thresholdDays,
		logger:         logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, query ListMembersQuery) (*ListMembersResult, error) {
	members, total, err := uc.memberRepo.List(ctx, member.Filter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list members", "error", err)
		return nil, apperrors.NewRepositoryError("failed to list members", err)
	}

	now := biztime.NowUTC()
	dtos := make([]*dto.MemberDTO, 0, len(members))
	for _, m := range members {
		assignment, err := uc.assignmentRepo.GetActiveByMemberID(ctx, m.ID())
		if err != nil {
			uc.logger.Errorw("failed to load assignment", "error", err, "member_id", m.SID())
			return nil, apperrors.NewRepositoryError("failed to load membership", err)
		}

		status := member.StatusExpired
		if assignment != nil {
			status = member.ResolveStatus(assignment.EndDate(), now, uc.thresholdDays)
		}

		memberDTO := dto.FromMember(m, status)
		if assignment != nil {
			memberDTO.Membership = dto.FromAssignment(assignment)
		}
		dtos = append(dtos, memberDTO)
	}

	return &ListMembersResult{Members: dtos, Total: total}, nil
}
