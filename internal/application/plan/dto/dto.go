// Package dto defines the data transfer objects returned by plan use cases.
package dto

import (
	"time"

	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/biztime"
)

// PlanDTO is the API-facing view of a plan. DurationUnit is always "month":
// the canonical stored form, regardless of the unit used at input time.
// PreviewEndDate is derived fresh from today for display and is never
// persisted.
type PlanDTO struct {
	SID            string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	PriceCents     int64     `json:"price_cents"`
	DurationMonths int       `json:"duration_months"`
	DurationUnit   string    `json:"duration_unit"`
	Features       []string  `json:"features"`
	Status         string    `json:"status"`
	PreviewEndDate string    `json:"preview_end_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FromEntity converts a plan entity to its DTO.
func FromEntity(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		SID:            p.SID(),
		Name:           p.Name(),
		Description:    p.Description(),
		PriceCents:     p.PriceCents(),
		DurationMonths: p.DurationMonths(),
		DurationUnit:   plan.UnitMonth.String(),
		Features:       p.Features(),
		Status:         string(p.Status()),
		PreviewEndDate: biztime.FormatDate(p.Duration().EndDate(biztime.Today())),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

// FromEntities converts a slice of plan entities.
func FromEntities(plans []*plan.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, FromEntity(p))
	}
	return dtos
}
