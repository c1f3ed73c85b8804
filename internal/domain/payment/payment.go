package payment

import (
	"fmt"
	"strings"
	"time"

	"gymdesk/internal/shared/id"
)

// Method is how a payment was made.
type Method string

const (
	MethodCreditCard   Method = "credit_card"
	MethodDebitCard    Method = "debit_card"
	MethodBankTransfer Method = "bank_transfer"
	MethodCash         Method = "cash"
	MethodCheck        Method = "check"
)

var validMethods = map[Method]bool{
	MethodCreditCard:   true,
	MethodDebitCard:    true,
	MethodBankTransfer: true,
	MethodCash:         true,
	MethodCheck:        true,
}

// ParseMethod normalizes and validates a payment method string.
func ParseMethod(value string) (Method, error) {
	method := Method(strings.ToLower(strings.TrimSpace(value)))
	if !validMethods[method] {
		return "", fmt.Errorf("invalid payment method: %s", value)
	}
	return method, nil
}

func (m Method) String() string {
	return string(m)
}

// Status is the terminal outcome recorded with a payment. It is set at
// creation and never transitioned afterwards.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

var validStatuses = map[Status]bool{
	StatusCompleted: true,
	StatusPending:   true,
	StatusFailed:    true,
}

// ParseStatus normalizes and validates a payment status string.
func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if !validStatuses[status] {
		return "", fmt.Errorf("invalid payment status: %s", value)
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

// Payment is an append-only record of money received from a member. There
// are no mutators: payments are facts, created once and never edited or
// deleted.
type Payment struct {
	id          uint
	sid         string
	memberID    uint
	amountCents int64
	method      Method
	status      Status
	paidAt      time.Time
	createdAt   time.Time
}

func NewPayment(memberID uint, amountCents int64, method Method, status Status, paidAt time.Time) (*Payment, error) {
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	if !validMethods[method] {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid payment status: %s", status)
	}
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	return &Payment{
		sid:         id.MustGenerateWithPrefix(id.PrefixPayment, id.DefaultLength),
		memberID:    memberID,
		amountCents: amountCents,
		method:      method,
		status:      status,
		paidAt:      paidAt,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructPayment rebuilds a payment from persistence.
func ReconstructPayment(paymentID uint, sid string, memberID uint, amountCents int64,
	method Method, status Status, paidAt, createdAt time.Time) (*Payment, error) {

	if paymentID == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if !validMethods[method] {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid payment status: %s", status)
	}

	return &Payment{
		id:          paymentID,
		sid:         sid,
		memberID:    memberID,
		amountCents: amountCents,
		method:      method,
		status:      status,
		paidAt:      paidAt,
		createdAt:   createdAt,
	}, nil
}

func (p *Payment) ID() uint {
	return p.id
}

func (p *Payment) SetID(paymentID uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment ID is already set")
	}
	if paymentID == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	p.id = paymentID
	return nil
}

func (p *Payment) SID() string {
	return p.sid
}

func (p *Payment) MemberID() uint {
	return p.memberID
}

func (p *Payment) AmountCents() int64 {
	return p.amountCents
}

func (p *Payment) Method() Method {
	return p.method
}

func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}
