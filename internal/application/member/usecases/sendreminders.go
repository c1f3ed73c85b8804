package usecases

import (
	"context"
	"time"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/biztime"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// ReminderSender delivers an expiry reminder. Implemented by the SMTP
// sender; kept as a port here so the sweep is testable without a mail
// server.
type ReminderSender interface {
	SendExpiryReminder(to, memberName, planName string, endDate time.Time) error
}

// SendRemindersUseCase mails every member whose active assignment ends
// within the expiring window. Send failures are logged and skipped; the
// sweep is re-run daily so a missed member is retried the next day.
type SendRemindersUseCase struct {
	memberRepo     member.Repository
	assignmentRepo member.AssignmentRepository
	planRepo       plan.Repository
	sender         ReminderSender
	thresholdDays  int
	logger         logger.Interface
}

func NewSendRemindersUseCase(
	memberRepo member.Repository,
	assignmentRepo member.AssignmentRepository,
	planRepo plan.Repository,
	sender ReminderSender,
	thresholdDays int,
	logger logger.Interface,
) *SendRemindersUseCase {
	return &SendRemindersUseCase{
		memberRepo:     memberRepo,
		assignmentRepo: assignmentRepo,
		planRepo:       planRepo,
		sender:         sender,
		thresholdDays:  thresholdDays,
		logger:         logger,
	}
}

// Execute returns the number of reminders sent.
func (uc *SendRemindersUseCase) Execute(ctx context.Context) (int, error) {
	now := biztime.NowUTC()
	windowEnd := biztime.EndOfDayUTC(now.AddDate(0, 0, uc.thresholdDays))

	expiring, err := uc.assignmentRepo.FindActiveEndingBetween(ctx, now, windowEnd)
	if err != nil {
		uc.logger.Errorw("failed to find expiring assignments", "error", err)
		return 0, apperrors.NewRepositoryError("failed to find expiring assignments", err)
	}

	sent := 0
	for _, assignment := range expiring {
		m, err := uc.memberRepo.GetByID(ctx, assignment.MemberID())
		if err != nil || m == nil {
			uc.logger.Errorw("failed to load member for reminder",
				"error", err, "assignment_id", assignment.SID())
			continue
		}

		planName := "membership"
		if p, err := uc.planRepo.GetByID(ctx, assignment.PlanID()); err == nil && p != nil {
			planName = p.Name()
		}

		if err := uc.sender.SendExpiryReminder(m.Email(), m.FullName(), planName, assignment.EndDate()); err != nil {
			uc.logger.Errorw("failed to send expiry reminder",
				"error", err, "member_id", m.SID())
			continue
		}

		uc.logger.Infow("expiry reminder sent",
			"member_id", m.SID(),
			"end_date", biztime.FormatDate(assignment.EndDate()))
		sent++
	}

	return sent, nil
}
