package usecases

import (
	"context"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/biztime"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// OverviewDTO is the front-desk dashboard summary.
type OverviewDTO struct {
	TotalMembers      int64 `json:"total_members"`
	ActiveMembers     int64 `json:"active_members"`
	ExpiringMembers   int64 `json:"expiring_members"`
	ExpiredMembers    int64 `json:"expired_members"`
	ActivePlans       int64 `json:"active_plans"`
	RevenueMonthCents int64 `json:"revenue_month_cents"`
}

// GetOverviewUseCase aggregates the dashboard counters. Member status counts
// are computed from the assignment table rather than per-member resolution:
// expiring is the set of active assignments ending within the threshold
// window, active is the remaining active set, expired is everyone else.
type GetOverviewUseCase struct {
	memberRepo     member.Repository
	assignmentRepo member.AssignmentRepository
	planRepo       plan.Repository
	paymentRepo    payment.Repository
	thresholdDays  int
	logger         logger.Interface
}

func NewGetOverviewUseCase(
	memberRepo member.Repository,
	assignmentRepo member.AssignmentRepository,
	planRepo plan.Repository,
	paymentRepo payment.Repository,
	thresholdDays int,
	logger logger.Interface,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		memberRepo:     memberRepo,
		assignmentRepo: assignmentRepo,
		planRepo:       planRepo,
		paymentRepo:    paymentRepo,
		thresholdDays:  thresholdDays,
		logger:         logger,
	}
}

func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*OverviewDTO, error) {
	totalMembers, err := uc.memberRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count members", "error", err)
		return nil, apperrors.NewRepositoryError("failed to count members", err)
	}

	activeAssignments, err := uc.assignmentRepo.CountActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count active assignments", "error", err)
		return nil, apperrors.NewRepositoryError("failed to count memberships", err)
	}

	now := biztime.NowUTC()
	windowEnd := biztime.EndOfDayUTC(now.AddDate(0, 0, uc.thresholdDays))
	expiring, err := uc.assignmentRepo.FindActiveEndingBetween(ctx, now, windowEnd)
	if err != nil {
		uc.logger.Errorw("failed to load expiring assignments", "error", err)
		return nil, apperrors.NewRepositoryError("failed to load expiring memberships", err)
	}

	activePlans, err := uc.planRepo.GetAllActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load active plans", "error", err)
		return nil, apperrors.NewRepositoryError("failed to load plans", err)
	}

	revenue, err := uc.paymentRepo.SumCompletedSince(ctx, biztime.StartOfMonthUTC(now.Year(), now.Month()))
	if err != nil {
		uc.logger.Errorw("failed to sum payments", "error", err)
		return nil, apperrors.NewRepositoryError("failed to sum payments", err)
	}

	expiringCount := int64(len(expiring))
	activeCount := activeAssignments - expiringCount
	if activeCount < 0 {
		activeCount = 0
	}
	expiredCount := totalMembers - activeAssignments
	if expiredCount < 0 {
		expiredCount = 0
	}

	return &OverviewDTO{
		TotalMembers:      totalMembers,
		ActiveMembers:     activeCount,
		ExpiringMembers:   expiringCount,
		ExpiredMembers:    expiredCount,
		ActivePlans:       int64(len(activePlans)),
		RevenueMonthCents: revenue,
	}, nil
}
