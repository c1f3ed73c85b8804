package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentdto "gymdesk/internal/application/payment/dto"
	paymentUsecases "gymdesk/internal/application/payment/usecases"
	"gymdesk/internal/interfaces/http/handlers/testutil"
	"gymdesk/internal/shared/errors"
)

type mockRecordPaymentUC struct {
	result  *paymentdto.PaymentDTO
	err     error
	lastCmd paymentUsecases.RecordPaymentCommand
}

func (m *mockRecordPaymentUC) Execute(ctx context.Context, cmd paymentUsecases.RecordPaymentCommand) (*paymentdto.PaymentDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockListPaymentsUC struct {
	result    *paymentUsecases.ListPaymentsResult
	err       error
	lastQuery paymentUsecases.ListPaymentsQuery
}

func (m *mockListPaymentsUC) Execute(ctx context.Context, query paymentUsecases.ListPaymentsQuery) (*paymentUsecases.ListPaymentsResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

func newTestPaymentHandler(recordUC recordPaymentUseCase, listUC listPaymentsUseCase) *PaymentHandler {
	return NewPaymentHandler(recordUC, listUC, testutil.NewMockLogger())
}

func testPaymentDTO() *paymentdto.PaymentDTO {
	return &paymentdto.PaymentDTO{
		SID:         "pay_abc123",
		MemberSID:   "mem_abc123",
		AmountCents: 4990,
		Method:      "card",
		Status:      "completed",
		PaidAt:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPaymentHandler_RecordPayment_Success(t *testing.T) {
	mockUC := &mockRecordPaymentUC{result: testPaymentDTO()}
	handler := newTestPaymentHandler(mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/members/mem_abc123/payments",
		RecordPaymentRequest{AmountCents: 4990, Method: "card"})
	testutil.SetURLParam(c, "id", "mem_abc123")

	handler.RecordPayment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "mem_abc123", mockUC.lastCmd.MemberSID)
	assert.Nil(t, mockUC.lastCmd.PaidAt)
}

func TestPaymentHandler_RecordPayment_ZeroAmount(t *testing.T) {
	handler := newTestPaymentHandler(nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/members/mem_abc123/payments",
		RecordPaymentRequest{AmountCents: 0, Method: "card"})
	testutil.SetURLParam(c, "id", "mem_abc123")

	handler.RecordPayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandler_RecordPayment_ExplicitPaidAt(t *testing.T) {
	mockUC := &mockRecordPaymentUC{result: testPaymentDTO()}
	handler := newTestPaymentHandler(mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/members/mem_abc123/payments",
		RecordPaymentRequest{AmountCents: 4990, Method: "cash", PaidAt: "2024-06-01"})
	testutil.SetURLParam(c, "id", "mem_abc123")

	handler.RecordPayment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockUC.lastCmd.PaidAt)
	assert.Equal(t, "2024-06-01", mockUC.lastCmd.PaidAt.Format("2006-01-02"))
}

func TestPaymentHandler_RecordPayment_MemberNotFound(t *testing.T) {
	mockUC := &mockRecordPaymentUC{err: errors.NewNotFoundError("member not found")}
	handler := newTestPaymentHandler(mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/members/mem_missing/payments",
		RecordPaymentRequest{AmountCents: 4990, Method: "card"})
	testutil.SetURLParam(c, "id", "mem_missing")

	handler.RecordPayment(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentHandler_ListMemberPayments_Success(t *testing.T) {
	mockUC := &mockListPaymentsUC{result: &paymentUsecases.ListPaymentsResult{
		Payments: []*paymentdto.PaymentDTO{testPaymentDTO()},
		Total:    1,
	}}
	handler := newTestPaymentHandler(nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/members/mem_abc123/payments", nil)
	testutil.SetURLParam(c, "id", "mem_abc123")

	handler.ListMemberPayments(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mem_abc123", mockUC.lastQuery.MemberSID)
}

func TestPaymentHandler_ListPayments_StatusFilter(t *testing.T) {
	mockUC := &mockListPaymentsUC{result: &paymentUsecases.ListPaymentsResult{}}
	handler := newTestPaymentHandler(nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/payments", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "refunded"})

	handler.ListPayments(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "refunded", mockUC.lastQuery.Status)
	assert.Empty(t, mockUC.lastQuery.MemberSID)
}
