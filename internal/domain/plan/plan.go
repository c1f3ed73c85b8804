package plan

import (
	"fmt"
	"time"

	"gymdesk/internal/shared/id"
)

type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "active"
	PlanStatusInactive PlanStatus = "inactive"
)

// Plan is a purchasable membership tier with price, duration, and feature
// set. Duration is held canonically as a whole month count; day and week
// inputs are rounded up to months at save time.
type Plan struct {
	id             uint
	sid            string
	name           string
	description    string
	priceCents     int64
	durationMonths int
	features       []string
	status         PlanStatus
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPlan(name, description string, priceCents int64, duration Duration, features []string) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("plan price cannot be negative")
	}
	if len(features) == 0 {
		return nil, fmt.Errorf("at least one feature is required")
	}

	now := time.Now().UTC()
	return &Plan{
		sid:            id.MustGenerateWithPrefix(id.PrefixPlan, id.DefaultLength),
		name:           name,
		description:    description,
		priceCents:     priceCents,
		durationMonths: duration.Months(),
		features:       append([]string(nil), features...),
		status:         PlanStatusActive,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(planID uint, sid, name, description string, priceCents int64,
	durationMonths int, features []string, status string,
	createdAt, updatedAt time.Time) (*Plan, error) {

	if planID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if durationMonths < 1 {
		return nil, fmt.Errorf("plan duration must be at least one month, got %d", durationMonths)
	}

	planStatus := PlanStatus(status)
	if planStatus != PlanStatusActive && planStatus != PlanStatusInactive {
		return nil, fmt.Errorf("invalid plan status: %s", status)
	}

	return &Plan{
		id:             planID,
		sid:            sid,
		name:           name,
		description:    description,
		priceCents:     priceCents,
		durationMonths: durationMonths,
		features:       features,
		status:         planStatus,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) SetID(planID uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = planID
	return nil
}

func (p *Plan) SID() string {
	return p.sid
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) Description() string {
	return p.description
}

func (p *Plan) PriceCents() int64 {
	return p.priceCents
}

func (p *Plan) DurationMonths() int {
	return p.durationMonths
}

// Duration returns the stored duration. The unit is always month: the
// original input unit is discarded at save time.
func (p *Plan) Duration() Duration {
	return Duration{value: p.durationMonths, unit: UnitMonth}
}

func (p *Plan) Features() []string {
	return append([]string(nil), p.features...)
}

func (p *Plan) Status() PlanStatus {
	return p.status
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Plan) IsActive() bool {
	return p.status == PlanStatusActive
}

func (p *Plan) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("plan name too long (max 100 characters)")
	}
	p.name = name
	p.updatedAt = time.Now().UTC()
	return nil
}

func (p *Plan) UpdateDescription(description string) {
	p.description = description
	p.updatedAt = time.Now().UTC()
}

func (p *Plan) UpdatePrice(priceCents int64) error {
	if priceCents < 0 {
		return fmt.Errorf("plan price cannot be negative")
	}
	p.priceCents = priceCents
	p.updatedAt = time.Now().UTC()
	return nil
}

// UpdateDuration re-canonicalizes the duration from a fresh value and unit.
// Saving the stored month count unchanged is idempotent.
func (p *Plan) UpdateDuration(duration Duration) {
	p.durationMonths = duration.Months()
	p.updatedAt = time.Now().UTC()
}

func (p *Plan) UpdateFeatures(features []string) error {
	if len(features) == 0 {
		return fmt.Errorf("at least one feature is required")
	}
	p.features = append([]string(nil), features...)
	p.updatedAt = time.Now().UTC()
	return nil
}

func (p *Plan) Activate() {
	if p.status == PlanStatusActive {
		return
	}
	p.status = PlanStatusActive
	p.updatedAt = time.Now().UTC()
}

func (p *Plan) Deactivate() {
	if p.status == PlanStatusInactive {
		return
	}
	p.status = PlanStatusInactive
	p.updatedAt = time.Now().UTC()
}
