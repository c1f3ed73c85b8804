package usecases

import (
	"context"

	"gymdesk/internal/application/payment/dto"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// ListPaymentsQuery filters the payment ledger. MemberSID narrows to one
// member's history; empty lists across all members.
type ListPaymentsQuery struct {
	MemberSID string
	Status    string
	Page      int
	PageSize  int
}

type ListPaymentsResult struct {
	Payments []*dto.PaymentDTO
	Total    int64
}

type ListPaymentsUseCase struct {
	paymentRepo payment.Repository
	memberRepo  member.Repository
	logger      logger.Interface
}

func NewListPaymentsUseCase(paymentRepo payment.Repository, memberRepo member.Repository, logger logger.Interface) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		logger:      logger,
	}
}

func (uc *ListPaymentsUseCase) Execute(ctx context.Context, query ListPaymentsQuery) (*ListPaymentsResult, error) {
	filter := payment.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Status != "" {
		filter.Status = &query.Status
	}

	var memberSID string
	if query.MemberSID != "" {
		m, err := uc.memberRepo.GetBySID(ctx, query.MemberSID)
		if err != nil {
			uc.logger.Errorw("failed to load member for payment listing", "error", err, "member_id", query.MemberSID)
			return nil, apperrors.NewRepositoryError("failed to load member", err)
		}
		if m == nil {
			return nil, apperrors.NewNotFoundError("member not found")
		}
		memberID := m.ID()
		filter.MemberID = &memberID
		memberSID = m.SID()
	}

	payments, total, err := uc.paymentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list payments", "error", err)
		return nil, apperrors.NewRepositoryError("failed to list payments", err)
	}

	dtos := dto.FromEntities(payments)
	for _, d := range dtos {
		d.MemberSID = memberSID
	}

	return &ListPaymentsResult{
		Payments: dtos,
		Total:    total,
	}, nil
}
