package member

import (
	"time"

	"gymdesk/internal/domain/payment"
)

// MemberStatus is derived from the active assignment's end date. It is a
// read-side projection and is never stored.
type MemberStatus string

const (
	StatusActive   MemberStatus = "active"
	StatusExpiring MemberStatus = "expiring"
	StatusExpired  MemberStatus = "expired"
)

// PaymentStanding reports whether the member has paid for the current
// billing period.
type PaymentStanding string

const (
	StandingPaid    PaymentStanding = "paid"
	StandingDue     PaymentStanding = "due"
	StandingOverdue PaymentStanding = "overdue"
)

// ResolveStatus derives the membership status from the assignment end date.
// thresholdDays is the configured expiring window; the boundary day counts
// as expiring. Callers must pass the configured value, there is no default
// here.
func ResolveStatus(endDate, now time.Time, thresholdDays int) MemberStatus {
	if now.After(endDate) {
		return StatusExpired
	}
	if !endDate.After(now.AddDate(0, 0, thresholdDays)) {
		return StatusExpiring
	}
	return StatusActive
}

// ResolvePaymentStatus derives the payment standing for a member from their
// recorded payments. A member is paid when any completed payment falls on or
// after the current billing period start; otherwise they are overdue once
// now has passed the due date, and due until then. Pure projection: nothing
// is mutated.
func ResolvePaymentStatus(payments []*payment.Payment, periodStart, dueDate, now time.Time) PaymentStanding {
	for _, p := range payments {
		if p.Status() != payment.StatusCompleted {
			continue
		}
		if !p.PaidAt().Before(periodStart) {
			return StandingPaid
		}
	}
	if now.After(dueDate) {
		return StandingOverdue
	}
	return StandingDue
}
