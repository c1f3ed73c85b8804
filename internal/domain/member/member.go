package member

import (
	"fmt"
	"strings"
	"time"

	"gymdesk/internal/shared/id"
)

// Member is a gym member record. Membership status is never stored on the
// member; it is derived from the active assignment's end date at read time.
type Member struct {
	id               uint
	sid              string
	firstName        string
	lastName         string
	email            string
	phone            string
	address          string
	emergencyContact string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewMember(firstName, lastName, email, phone, address, emergencyContact string) (*Member, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if firstName == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if lastName == "" {
		return nil, fmt.Errorf("last name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}

	now := time.Now().UTC()
	return &Member{
		sid:              id.MustGenerateWithPrefix(id.PrefixMember, id.DefaultLength),
		firstName:        firstName,
		lastName:         lastName,
		email:            email,
		phone:            phone,
		address:          address,
		emergencyContact: emergencyContact,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructMember rebuilds a member from persistence.
func ReconstructMember(memberID uint, sid, firstName, lastName, email, phone,
	address, emergencyContact string, createdAt, updatedAt time.Time) (*Member, error) {

	if memberID == 0 {
		return nil, fmt.Errorf("member ID cannot be zero")
	}
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("member name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("member email is required")
	}

	return &Member{
		id:               memberID,
		sid:              sid,
		firstName:        firstName,
		lastName:         lastName,
		email:            email,
		phone:            phone,
		address:          address,
		emergencyContact: emergencyContact,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (m *Member) ID() uint {
	return m.id
}

func (m *Member) SetID(memberID uint) error {
	if m.id != 0 {
		return fmt.Errorf("member ID is already set")
	}
	if memberID == 0 {
		return fmt.Errorf("member ID cannot be zero")
	}
	m.id = memberID
	return nil
}

func (m *Member) SID() string {
	return m.sid
}

func (m *Member) FirstName() string {
	return m.firstName
}

func (m *Member) LastName() string {
	return m.lastName
}

func (m *Member) FullName() string {
	return m.firstName + " " + m.lastName
}

func (m *Member) Email() string {
	return m.email
}

func (m *Member) Phone() string {
	return m.phone
}

func (m *Member) Address() string {
	return m.address
}

func (m *Member) EmergencyContact() string {
	return m.emergencyContact
}

func (m *Member) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Member) UpdatedAt() time.Time {
	return m.updatedAt
}

// UpdateContact updates the member's contact information.
func (m *Member) UpdateContact(email, phone, address, emergencyContact string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address: %s", email)
	}
	m.email = email
	m.phone = phone
	m.address = address
	m.emergencyContact = emergencyContact
	m.updatedAt = time.Now().UTC()
	return nil
}

// Rename updates the member's name.
func (m *Member) Rename(firstName, lastName string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return fmt.Errorf("member name is required")
	}
	m.firstName = firstName
	m.lastName = lastName
	m.updatedAt = time.Now().UTC()
	return nil
}
