package handlers

import (
	"github.com/gin-gonic/gin"

	paymentUsecases "gymdesk/internal/application/payment/usecases"
	"gymdesk/internal/shared/biztime"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type PaymentHandler struct {
	recordPaymentUC recordPaymentUseCase
	listPaymentsUC  listPaymentsUseCase
	logger          logger.Interface
}

func NewPaymentHandler(
	recordPaymentUC recordPaymentUseCase,
	listPaymentsUC listPaymentsUseCase,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		recordPaymentUC: recordPaymentUC,
		listPaymentsUC:  listPaymentsUC,
		logger:          logger,
	}
}

// RecordPaymentRequest records a front-desk payment. PaidAt is optional,
// formatted YYYY-MM-DD, and defaults to now.
type RecordPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,min=1"`
	Method      string `json:"method" binding:"required"`
	Status      string `json:"status"`
	PaidAt      string `json:"paid_at"`
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	memberSID := c.Param("id")

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for payment", "member_id", memberSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := paymentUsecases.RecordPaymentCommand{
		MemberSID:   memberSID,
		AmountCents: req.AmountCents,
		Method:      req.Method,
		Status:      req.Status,
	}
	if req.PaidAt != "" {
		paidAt, err := biztime.ParseDate(req.PaidAt)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid paid_at", err.Error()))
			return
		}
		cmd.PaidAt = &paidAt
	}

	result, err := h.recordPaymentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Payment recorded successfully")
}

// ListMemberPayments lists one member's payment history.
func (h *PaymentHandler) ListMemberPayments(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listPaymentsUC.Execute(c.Request.Context(), paymentUsecases.ListPaymentsQuery{
		MemberSID: c.Param("id"),
		Status:    c.Query("status"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Payments, result.Total, pagination.Page, pagination.PageSize)
}

// ListPayments lists the full payment ledger.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listPaymentsUC.Execute(c.Request.Context(), paymentUsecases.ListPaymentsQuery{
		Status:   c.Query("status"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Payments, result.Total, pagination.Page, pagination.PageSize)
}
