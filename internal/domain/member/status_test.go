package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/domain/payment"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// =====================================================================
// TestResolveStatus_*
// =====================================================================

func TestResolveStatus(t *testing.T) {
	now := day(2024, time.June, 15)

	tests := []struct {
		name          string
		endDate       time.Time
		thresholdDays int
		want          MemberStatus
	}{
		{"well before end date", now.AddDate(0, 0, 30), 7, StatusActive},
		{"inside expiring window", now.AddDate(0, 0, 3), 7, StatusExpiring},
		{"window boundary is expiring", now.AddDate(0, 0, 7), 7, StatusExpiring},
		{"just outside window", now.AddDate(0, 0, 8), 7, StatusActive},
		{"end date is today", now, 7, StatusExpiring},
		{"past end date", now.AddDate(0, 0, -1), 7, StatusExpired},
		{"long expired", now.AddDate(0, -6, 0), 7, StatusExpired},
		{"zero threshold only flags the end day", now.AddDate(0, 0, 1), 0, StatusActive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveStatus(tc.endDate, now, tc.thresholdDays))
		})
	}
}

// =====================================================================
// TestResolvePaymentStatus_*
// =====================================================================

func completedPayment(t *testing.T, paidAt time.Time) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(1, 4999, payment.MethodCash, payment.StatusCompleted, paidAt)
	require.NoError(t, err)
	return p
}

func pendingPayment(t *testing.T, paidAt time.Time) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(1, 4999, payment.MethodCreditCard, payment.StatusPending, paidAt)
	require.NoError(t, err)
	return p
}

func TestResolvePaymentStatus_PaidWithinPeriod(t *testing.T) {
	periodStart := day(2024, time.June, 1)
	dueDate := day(2024, time.June, 10)
	now := day(2024, time.June, 15)

	payments := []*payment.Payment{completedPayment(t, day(2024, time.June, 5))}

	assert.Equal(t, StandingPaid, ResolvePaymentStatus(payments, periodStart, dueDate, now))
}

func TestResolvePaymentStatus_PaymentOnPeriodStartCounts(t *testing.T) {
	periodStart := day(2024, time.June, 1)

	payments := []*payment.Payment{completedPayment(t, periodStart)}

	assert.Equal(t, StandingPaid,
		ResolvePaymentStatus(payments, periodStart, day(2024, time.June, 10), day(2024, time.June, 20)))
}

func TestResolvePaymentStatus_OldPaymentDoesNotCount(t *testing.T) {
	periodStart := day(2024, time.June, 1)
	dueDate := day(2024, time.June, 10)

	payments := []*payment.Payment{completedPayment(t, day(2024, time.May, 5))}

	// Before the due date the member is merely due.
	assert.Equal(t, StandingDue,
		ResolvePaymentStatus(payments, periodStart, dueDate, day(2024, time.June, 5)))

	// After the due date they are overdue.
	assert.Equal(t, StandingOverdue,
		ResolvePaymentStatus(payments, periodStart, dueDate, day(2024, time.June, 11)))
}

func TestResolvePaymentStatus_PendingPaymentDoesNotCount(t *testing.T) {
	periodStart := day(2024, time.June, 1)
	dueDate := day(2024, time.June, 10)

	payments := []*payment.Payment{pendingPayment(t, day(2024, time.June, 5))}

	assert.Equal(t, StandingOverdue,
		ResolvePaymentStatus(payments, periodStart, dueDate, day(2024, time.June, 11)))
}

func TestResolvePaymentStatus_NoPayments(t *testing.T) {
	periodStart := day(2024, time.June, 1)
	dueDate := day(2024, time.June, 10)

	assert.Equal(t, StandingDue,
		ResolvePaymentStatus(nil, periodStart, dueDate, day(2024, time.June, 10)))
	assert.Equal(t, StandingOverdue,
		ResolvePaymentStatus(nil, periodStart, dueDate, day(2024, time.June, 10).Add(time.Hour)))
}
