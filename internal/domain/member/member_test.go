package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/domain/plan"
)

// --- helpers ---

func newValidMember(t *testing.T) *Member {
	t.Helper()
	m, err := NewMember("Ada", "Lovelace", "ada@example.com", "555-0100", "12 Gym St", "Charles 555-0101")
	require.NoError(t, err)
	require.NotNil(t, m)
	return m
}

func newPersistedPlan(t *testing.T, months int) *plan.Plan {
	t.Helper()
	d, err := plan.NewDuration(months, plan.UnitMonth)
	require.NoError(t, err)
	p, err := plan.NewPlan("Gold", "desc", 49900, d, []string{"Yoga"})
	require.NoError(t, err)
	require.NoError(t, p.SetID(1))
	return p
}

// =====================================================================
// TestNewMember_*
// =====================================================================

func TestNewMember_ValidInput(t *testing.T) {
	m := newValidMember(t)

	assert.NotEmpty(t, m.SID())
	assert.Equal(t, "Ada", m.FirstName())
	assert.Equal(t, "Lovelace", m.LastName())
	assert.Equal(t, "Ada Lovelace", m.FullName())
	assert.Equal(t, "ada@example.com", m.Email())
	assert.Equal(t, "555-0100", m.Phone())
}

func TestNewMember_RequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
	}{
		{"missing first name", "", "Lovelace", "ada@example.com"},
		{"missing last name", "Ada", "", "ada@example.com"},
		{"missing email", "Ada", "Lovelace", ""},
		{"whitespace first name", "   ", "Lovelace", "ada@example.com"},
		{"malformed email", "Ada", "Lovelace", "not-an-email"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMember(tc.firstName, tc.lastName, tc.email, "", "", "")
			assert.Error(t, err)
			assert.Nil(t, m)
		})
	}
}

func TestMember_UpdateContact(t *testing.T) {
	m := newValidMember(t)

	require.NoError(t, m.UpdateContact("new@example.com", "555-0199", "", ""))
	assert.Equal(t, "new@example.com", m.Email())

	assert.Error(t, m.UpdateContact("", "", "", ""))
	assert.Error(t, m.UpdateContact("bogus", "", "", ""))
}

// =====================================================================
// TestNewAssignment_*
// =====================================================================

func TestNewAssignment_EndDateComputedFromPlan(t *testing.T) {
	p := newPersistedPlan(t, 3)
	start := day(2024, time.March, 1)

	a, err := NewAssignment(10, p, start)

	require.NoError(t, err)
	assert.Equal(t, uint(10), a.MemberID())
	assert.Equal(t, p.ID(), a.PlanID())
	assert.Equal(t, start, a.StartDate())
	assert.Equal(t, day(2024, time.June, 1), a.EndDate())
	assert.True(t, a.IsActive())
}

func TestNewAssignment_RequiresMemberAndPlan(t *testing.T) {
	p := newPersistedPlan(t, 1)

	_, err := NewAssignment(0, p, day(2024, time.March, 1))
	assert.Error(t, err)

	_, err = NewAssignment(10, nil, day(2024, time.March, 1))
	assert.Error(t, err)

	// A plan never persisted has no ID to link against.
	d, _ := plan.NewDuration(1, plan.UnitMonth)
	unsaved, err := plan.NewPlan("Draft", "", 0, d, []string{"Gym"})
	require.NoError(t, err)
	_, err = NewAssignment(10, unsaved, day(2024, time.March, 1))
	assert.Error(t, err)
}

func TestAssignment_Deactivate(t *testing.T) {
	p := newPersistedPlan(t, 1)
	a, err := NewAssignment(10, p, day(2024, time.March, 1))
	require.NoError(t, err)

	a.Deactivate()
	assert.False(t, a.IsActive())

	// Idempotent.
	a.Deactivate()
	assert.False(t, a.IsActive())
}

func TestAssignment_IsExpiredAt(t *testing.T) {
	p := newPersistedPlan(t, 1)
	a, err := NewAssignment(10, p, day(2024, time.March, 1))
	require.NoError(t, err)

	assert.False(t, a.IsExpiredAt(day(2024, time.March, 20)))
	assert.False(t, a.IsExpiredAt(a.EndDate()))
	assert.True(t, a.IsExpiredAt(a.EndDate().Add(time.Second)))
}

func TestReconstructAssignment_RejectsInvertedDates(t *testing.T) {
	now := time.Now().UTC()
	_, err := ReconstructAssignment(1, "asg_x", 10, 1,
		day(2024, time.June, 1), day(2024, time.May, 1), true, now, now)
	assert.Error(t, err)
}
