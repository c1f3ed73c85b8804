package usecases

import (
	"context"

	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/biztime"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// paymentGraceDays is how long after a term starts a payment may still be
// outstanding before the member reads as overdue. Within the window an
// unpaid member is due, not overdue.
const paymentGraceDays = 7

// GetMemberUseCase loads a member with membership status and payment
// standing derived at read time.
type GetMemberUseCase struct {
	memberRepo     member.Repository
	assignmentRepo member.AssignmentRepository
	planRepo       plan.Repository
	paymentRepo    payment.Repository
	thresholdDays  int
	logger         logger.Interface
}

func NewGetMemberUseCase(
	memberRepo member.Repository,
	assignmentRepo member.AssignmentRepository,
	planRepo plan.Repository,
	paymentRepo payment.Repository,
	thresholdDays int,
	logger logger.Interface,
) *GetMemberUseCase {
	return &GetMemberUseCase{
		memberRepo:     memberRepo,
		assignmentRepo: assignmentRepo,
		planRepo:       planRepo,
		paymentRepo:    paymentRepo,
		thresholdDays:  thresholdDays,
		logger:         logger,
	}
}

func (uc *GetMemberUseCase) ExecuteBySID(ctx context.Context, sid string) (*dto.MemberDTO, error) {
	m, err := uc.memberRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load member", "error", err, "member_id", sid)
		return nil, apperrors.NewRepositoryError("failed to load member", err)
	}
	if m == nil {
		return nil, apperrors.NewNotFoundError("member not found")
	}

	assignment, err := uc.assignmentRepo.GetActiveByMemberID(ctx, m.ID())
	if err != nil {
		uc.logger.Errorw("failed to load assignment", "error", err, "member_id", sid)
		return nil, apperrors.NewRepositoryError("failed to load membership", err)
	}

	now := biztime.NowUTC()
	status := member.StatusExpired
	if assignment != nil {
		status = member.ResolveStatus(assignment.EndDate(), now, uc.thresholdDays)
	}

	result := dto.FromMember(m, status)

	if assignment != nil {
		assignmentDTO := dto.FromAssignment(assignment)
		p, err := uc.planRepo.GetByID(ctx, assignment.PlanID())
		if err != nil {
			// Degrade to an unnamed plan rather than failing the whole read,
			// but the failure still goes to the log.
			uc.logger.Errorw("failed to load plan for membership",
				"error", err, "member_id", sid, "plan_id", assignment.PlanID())
		} else if p != nil {
			assignmentDTO.PlanSID = p.SID()
			assignmentDTO.PlanName = p.Name()
		}
		result.Membership = assignmentDTO

		payments, err := uc.paymentRepo.ListByMemberID(ctx, m.ID())
		if err != nil {
			uc.logger.Errorw("failed to load payments", "error", err, "member_id", sid)
			return nil, apperrors.NewRepositoryError("failed to load payments", err)
		}
		dueDate := assignment.StartDate().AddDate(0, 0, paymentGraceDays)
		standing := member.ResolvePaymentStatus(payments,
			assignment.StartDate(), dueDate, now)
		result.PaymentStanding = string(standing)
	}

	return result, nil
}
