package usecases

import (
	"context"
	"time"

	"gymdesk/internal/application/payment/dto"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/shared/biztime"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// RecordPaymentCommand captures a payment taken at the front desk. PaidAt is
// optional and defaults to now.
type RecordPaymentCommand struct {
	MemberSID   string
	AmountCents int64
	Method      string
	Status      string
	PaidAt      *time.Time
}

// RecordPaymentUseCase appends a payment to a member's history. Payments are
// never edited after the fact; corrections are recorded as new entries.
type RecordPaymentUseCase struct {
	paymentRepo payment.Repository
	memberRepo  member.Repository
	logger      logger.Interface
}

func NewRecordPaymentUseCase(paymentRepo payment.Repository, memberRepo member.Repository, logger logger.Interface) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		logger:      logger,
	}
}

func (uc *RecordPaymentUseCase) Execute(ctx context.Context, cmd RecordPaymentCommand) (*dto.PaymentDTO, error) {
	m, err := uc.memberRepo.GetBySID(ctx, cmd.MemberSID)
	if err != nil {
		uc.logger.Errorw("failed to load member for payment", "error", err, "member_id", cmd.MemberSID)
		return nil, apperrors.NewRepositoryError("failed to load member", err)
	}
	if m == nil {
		return nil, apperrors.NewNotFoundError("member not found")
	}

	method, err := payment.ParseMethod(cmd.Method)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid payment method", err.Error())
	}

	status := payment.StatusCompleted
	if cmd.Status != "" {
		status, err = payment.ParseStatus(cmd.Status)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid payment status", err.Error())
		}
	}

	paidAt := biztime.NowUTC()
	if cmd.PaidAt != nil {
		paidAt = *cmd.PaidAt
	}

	p, err := payment.NewPayment(m.ID(), cmd.AmountCents, method, status, paidAt)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid payment", err.Error())
	}

	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to record payment", "error", err, "member_id", cmd.MemberSID)
		return nil, apperrors.NewRepositoryError("failed to record payment", err)
	}

	uc.logger.Infow("payment recorded",
		"payment_id", p.SID(),
		"member_id", m.SID(),
		"amount_cents", p.AmountCents(),
		"method", string(p.Method()))

	result := dto.FromEntity(p)
	result.MemberSID = m.SID()
	return result, nil
}
