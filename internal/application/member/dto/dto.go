// Package dto defines the data transfer objects returned by member use cases.
package dto

import (
	"time"

	"gymdesk/internal/domain/member"
)

// AssignmentDTO is the API-facing view of a membership assignment.
type AssignmentDTO struct {
	SID       string    `json:"id"`
	PlanSID   string    `json:"plan_id,omitempty"`
	PlanName  string    `json:"plan_name,omitempty"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Active    bool      `json:"active"`
}

// MemberDTO is the API-facing view of a member. Status is derived at read
// time from the active assignment; members without one are reported
// expired.
type MemberDTO struct {
	SID              string         `json:"id"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone,omitempty"`
	Address          string         `json:"address,omitempty"`
	EmergencyContact string         `json:"emergency_contact,omitempty"`
	Status           string         `json:"status"`
	PaymentStanding  string         `json:"payment_standing,omitempty"`
	Membership       *AssignmentDTO `json:"membership,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// EnrollmentDTO is the result of enrolling a new member. Warning is set
// when the member was created but the plan assignment could not be
// persisted; the member record is kept and must be reconciled manually.
type EnrollmentDTO struct {
	Member     *MemberDTO     `json:"member"`
	Assignment *AssignmentDTO `json:"assignment,omitempty"`
	Warning    string         `json:"warning,omitempty"`
}

// FromMember converts a member entity without membership context.
func FromMember(m *member.Member, status member.MemberStatus) *MemberDTO {
	if m == nil {
		return nil
	}
	return &MemberDTO{
		SID:              m.SID(),
		FirstName:        m.FirstName(),
		LastName:         m.LastName(),
		Email:            m.Email(),
		Phone:            m.Phone(),
		Address:          m.Address(),
		EmergencyContact: m.EmergencyContact(),
		Status:           string(status),
		CreatedAt:        m.CreatedAt(),
	}
}

// FromAssignment converts an assignment entity. Plan naming is filled in by
// the use case when the plan is loaded.
func FromAssignment(a *member.Assignment) *AssignmentDTO {
	if a == nil {
		return nil
	}
	return &AssignmentDTO{
		SID:       a.SID(),
		StartDate: a.StartDate(),
		EndDate:   a.EndDate(),
		Active:    a.IsActive(),
	}
}
