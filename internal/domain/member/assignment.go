package member

import (
	"fmt"
	"time"

	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/id"
)

// Assignment links a member to the plan they are subscribed to, with
// concrete start and end dates. The end date is always computed from the
// plan's canonical month count; it is never entered by a user.
type Assignment struct {
	id        uint
	sid       string
	memberID  uint
	planID    uint
	startDate time.Time
	endDate   time.Time
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// NewAssignment creates an assignment for the given member and plan. The
// end date is derived from the plan duration starting at startDate.
func NewAssignment(memberID uint, p *plan.Plan, startDate time.Time) (*Assignment, error) {
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if p == nil || p.ID() == 0 {
		return nil, fmt.Errorf("plan is required")
	}

	now := time.Now().UTC()
	return &Assignment{
		sid:       id.MustGenerateWithPrefix(id.PrefixAssignment, id.DefaultLength),
		memberID:  memberID,
		planID:    p.ID(),
		startDate: startDate,
		endDate:   p.Duration().EndDate(startDate),
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructAssignment rebuilds an assignment from persistence.
func ReconstructAssignment(assignmentID uint, sid string, memberID, planID uint,
	startDate, endDate time.Time, active bool, createdAt, updatedAt time.Time) (*Assignment, error) {

	if assignmentID == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must not precede start date")
	}

	return &Assignment{
		id:        assignmentID,
		sid:       sid,
		memberID:  memberID,
		planID:    planID,
		startDate: startDate,
		endDate:   endDate,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Assignment) ID() uint {
	return a.id
}

func (a *Assignment) SetID(assignmentID uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if assignmentID == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = assignmentID
	return nil
}

func (a *Assignment) SID() string {
	return a.sid
}

func (a *Assignment) MemberID() uint {
	return a.memberID
}

func (a *Assignment) PlanID() uint {
	return a.planID
}

func (a *Assignment) StartDate() time.Time {
	return a.startDate
}

func (a *Assignment) EndDate() time.Time {
	return a.endDate
}

func (a *Assignment) IsActive() bool {
	return a.active
}

func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Assignment) UpdatedAt() time.Time {
	return a.updatedAt
}

// Deactivate marks the assignment inactive, e.g. when it has expired or is
// superseded by a renewal.
func (a *Assignment) Deactivate() {
	if !a.active {
		return
	}
	a.active = false
	a.updatedAt = time.Now().UTC()
}

// IsExpiredAt reports whether the assignment's end date has passed at now.
func (a *Assignment) IsExpiredAt(now time.Time) bool {
	return now.After(a.endDate)
}
