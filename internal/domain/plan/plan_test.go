package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newValidPlan(t *testing.T) *Plan {
	t.Helper()
	d, err := NewDuration(1, UnitMonth)
	require.NoError(t, err)
	p, err := NewPlan("Gold", "Full access", 49900, d, []string{"Yoga", "HIIT"})
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

// =====================================================================
// TestNewPlan_*
// =====================================================================

func TestNewPlan_ValidInput(t *testing.T) {
	p := newValidPlan(t)

	assert.NotEmpty(t, p.SID())
	assert.Equal(t, "Gold", p.Name())
	assert.Equal(t, int64(49900), p.PriceCents())
	assert.Equal(t, 1, p.DurationMonths())
	assert.Equal(t, []string{"Yoga", "HIIT"}, p.Features())
	assert.Equal(t, PlanStatusActive, p.Status())
	assert.True(t, p.IsActive())
}

func TestNewPlan_EmptyName(t *testing.T) {
	d, _ := NewDuration(1, UnitMonth)
	p, err := NewPlan("", "desc", 100, d, []string{"Gym"})

	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Contains(t, err.Error(), "plan name is required")
}

func TestNewPlan_NegativePrice(t *testing.T) {
	d, _ := NewDuration(1, UnitMonth)
	p, err := NewPlan("Basic", "desc", -1, d, []string{"Gym"})

	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestNewPlan_ZeroPriceAllowed(t *testing.T) {
	d, _ := NewDuration(1, UnitMonth)
	p, err := NewPlan("Trial", "desc", 0, d, []string{"Gym"})

	require.NoError(t, err)
	assert.Equal(t, int64(0), p.PriceCents())
}

func TestNewPlan_NoFeatures(t *testing.T) {
	d, _ := NewDuration(1, UnitMonth)
	p, err := NewPlan("Basic", "desc", 100, d, nil)

	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Contains(t, err.Error(), "at least one feature")
}

// Day input is canonicalized to months at creation: 30 days store as 1 month.
func TestNewPlan_DayDurationCanonicalized(t *testing.T) {
	d, err := NewDuration(30, UnitDay)
	require.NoError(t, err)
	p, err := NewPlan("Monthly-ish", "desc", 100, d, []string{"Gym"})

	require.NoError(t, err)
	assert.Equal(t, 1, p.DurationMonths())
	assert.Equal(t, UnitMonth, p.Duration().Unit())
}

// =====================================================================
// TestPlan_UpdateDuration_*
// =====================================================================

// Re-saving the stored canonical duration yields the same month count.
func TestPlan_UpdateDuration_Idempotent(t *testing.T) {
	d30, err := NewDuration(30, UnitDay)
	require.NoError(t, err)
	p, err := NewPlan("Monthly", "desc", 100, d30, []string{"Gym"})
	require.NoError(t, err)
	require.Equal(t, 1, p.DurationMonths())

	// The editor reloads the plan showing "1 month" and saves it unchanged.
	p.UpdateDuration(p.Duration())
	assert.Equal(t, 1, p.DurationMonths())
}

func TestPlan_UpdateDuration_Recanonicalizes(t *testing.T) {
	p := newValidPlan(t)

	d, err := NewDuration(6, UnitWeek)
	require.NoError(t, err)
	p.UpdateDuration(d)

	assert.Equal(t, 2, p.DurationMonths())
}

// =====================================================================
// TestPlan_Mutators_*
// =====================================================================

func TestPlan_Rename(t *testing.T) {
	p := newValidPlan(t)

	require.NoError(t, p.Rename("Platinum"))
	assert.Equal(t, "Platinum", p.Name())

	assert.Error(t, p.Rename(""))
}

func TestPlan_UpdatePrice(t *testing.T) {
	p := newValidPlan(t)

	require.NoError(t, p.UpdatePrice(59900))
	assert.Equal(t, int64(59900), p.PriceCents())

	assert.Error(t, p.UpdatePrice(-100))
}

func TestPlan_UpdateFeatures_PreservesOrder(t *testing.T) {
	p := newValidPlan(t)

	require.NoError(t, p.UpdateFeatures([]string{"Pool", "Sauna", "Yoga"}))
	assert.Equal(t, []string{"Pool", "Sauna", "Yoga"}, p.Features())

	assert.Error(t, p.UpdateFeatures(nil))
}

func TestPlan_ActivateDeactivate(t *testing.T) {
	p := newValidPlan(t)

	p.Deactivate()
	assert.False(t, p.IsActive())

	p.Activate()
	assert.True(t, p.IsActive())
}

// =====================================================================
// TestReconstructPlan_*
// =====================================================================

func TestReconstructPlan_Valid(t *testing.T) {
	now := time.Now().UTC()
	p, err := ReconstructPlan(7, "plan_abc123", "Gold", "desc", 49900, 3,
		[]string{"Yoga"}, "active", now, now)

	require.NoError(t, err)
	assert.Equal(t, uint(7), p.ID())
	assert.Equal(t, 3, p.DurationMonths())
}

func TestReconstructPlan_Invalid(t *testing.T) {
	now := time.Now().UTC()

	_, err := ReconstructPlan(0, "plan_abc", "Gold", "", 100, 1, nil, "active", now, now)
	assert.Error(t, err)

	_, err = ReconstructPlan(1, "plan_abc", "Gold", "", 100, 0, nil, "active", now, now)
	assert.Error(t, err)

	_, err = ReconstructPlan(1, "plan_abc", "Gold", "", 100, 1, nil, "bogus", now, now)
	assert.Error(t, err)
}

func TestPlan_SetID(t *testing.T) {
	p := newValidPlan(t)

	require.NoError(t, p.SetID(42))
	assert.Equal(t, uint(42), p.ID())

	assert.Error(t, p.SetID(43))
}
