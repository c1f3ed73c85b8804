package usecases

import (
	"context"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/shared/biztime"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// ExpireAssignmentsUseCase deactivates assignments whose end date has
// passed. Read paths derive status in real time; this job keeps the stored
// active flags consistent for reports. Run daily by the scheduler.
type ExpireAssignmentsUseCase struct {
	assignmentRepo member.AssignmentRepository
	logger         logger.Interface
}

func NewExpireAssignmentsUseCase(assignmentRepo member.AssignmentRepository, logger logger.Interface) *ExpireAssignmentsUseCase {
	return &ExpireAssignmentsUseCase{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// Execute returns the number of assignments it deactivated. Individual
// update failures are logged and skipped so one bad row does not wedge the
// sweep.
func (uc *ExpireAssignmentsUseCase) Execute(ctx context.Context) (int, error) {
	now := biztime.NowUTC()

	expired, err := uc.assignmentRepo.FindActiveExpired(ctx, now)
	if err != nil {
		uc.logger.Errorw("failed to find expired assignments", "error", err)
		return 0, apperrors.NewRepositoryError("failed to find expired assignments", err)
	}

	count := 0
	for _, assignment := range expired {
		assignment.Deactivate()
		if err := uc.assignmentRepo.Update(ctx, assignment); err != nil {
			uc.logger.Errorw("failed to deactivate expired assignment",
				"error", err, "assignment_id", assignment.SID())
			continue
		}
		count++
	}

	return count, nil
}
