package usecases

import (
	"context"

	"gymdesk/internal/domain/member"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type DeleteMemberUseCase struct {
	memberRepo member.Repository
	logger     logger.Interface
}

func NewDeleteMemberUseCase(memberRepo member.Repository, logger logger.Interface) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *DeleteMemberUseCase) Execute(ctx context.Context, sid string) error {
	m, err := uc.memberRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load member", "error", err, "member_id", sid)
		return apperrors.NewRepositoryError("failed to load member", err)
	}
	if m == nil {
		return apperrors.NewNotFoundError("member not found")
	}

	if err := uc.memberRepo.Delete(ctx, m.ID()); err != nil {
		uc.logger.Errorw("failed to delete member", "error", err, "member_id", sid)
		return apperrors.NewRepositoryError("failed to delete member", err)
	}

	uc.logger.Infow("member deleted", "member_id", sid)
	return nil
}
