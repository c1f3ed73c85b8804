package handlers

import (
	"context"

	paymentdto "gymdesk/internal/application/payment/dto"
	paymentUsecases "gymdesk/internal/application/payment/usecases"
)

// Use case interfaces for PaymentHandler

type recordPaymentUseCase interface {
	Execute(ctx context.Context, cmd paymentUsecases.RecordPaymentCommand) (*paymentdto.PaymentDTO, error)
}

type listPaymentsUseCase interface {
	Execute(ctx context.Context, query paymentUsecases.ListPaymentsQuery) (*paymentUsecases.ListPaymentsResult, error)
}
