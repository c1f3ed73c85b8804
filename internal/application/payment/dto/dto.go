// Package dto defines the data transfer objects returned by payment use cases.
package dto

import (
	"time"

	"gymdesk/internal/domain/payment"
)

// PaymentDTO is the API-facing view of a recorded payment.
type PaymentDTO struct {
	SID         string    `json:"id"`
	MemberSID   string    `json:"member_id,omitempty"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	PaidAt      time.Time `json:"paid_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromEntity(p *payment.Payment) *PaymentDTO {
	if p == nil {
		return nil
	}
	return &PaymentDTO{
		SID:         p.SID(),
		AmountCents: p.AmountCents(),
		Method:      string(p.Method()),
		Status:      string(p.Status()),
		PaidAt:      p.PaidAt(),
		CreatedAt:   p.CreatedAt(),
	}
}

func FromEntities(payments []*payment.Payment) []*PaymentDTO {
	result := make([]*PaymentDTO, 0, len(payments))
	for _, p := range payments {
		result = append(result, FromEntity(p))
	}
	return result
}
