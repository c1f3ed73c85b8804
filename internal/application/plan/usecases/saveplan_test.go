package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/domain/plan"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type stubPlanRepo struct {
	createCalls int
	createErr   error
	updateCalls int
	deleteCalls int
	plans       map[string]*plan.Plan
	nextID      uint
}

func newStubPlanRepo() *stubPlanRepo {
	return &stubPlanRepo{plans: make(map[string]*plan.Plan)}
}

func (s *stubPlanRepo) Create(_ context.Context, p *plan.Plan) error {
	s.createCalls++
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	if err := p.SetID(s.nextID); err != nil {
		return err
	}
	s.plans[p.SID()] = p
	return nil
}

func (s *stubPlanRepo) GetByID(_ context.Context, id uint) (*plan.Plan, error) {
	for _, p := range s.plans {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubPlanRepo) GetBySID(_ context.Context, sid string) (*plan.Plan, error) {
	return s.plans[sid], nil
}

func (s *stubPlanRepo) Update(_ context.Context, p *plan.Plan) error {
	s.updateCalls++
	s.plans[p.SID()] = p
	return nil
}

func (s *stubPlanRepo) Delete(_ context.Context, id uint) error {
	s.deleteCalls++
	for sid, p := range s.plans {
		if p.ID() == id {
			delete(s.plans, sid)
		}
	}
	return nil
}

func (s *stubPlanRepo) GetAllActive(_ context.Context) ([]*plan.Plan, error) {
	var out []*plan.Plan
	for _, p := range s.plans {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPlanRepo) List(_ context.Context, _ plan.Filter) ([]*plan.Plan, int64, error) {
	var out []*plan.Plan
	for _, p := range s.plans {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func goldCommand() SavePlanCommand {
	return SavePlanCommand{
		Name:          "Gold",
		Description:   "All access",
		PriceCents:    49900,
		DurationValue: 1,
		DurationUnit:  "month",
		Features:      []string{"Yoga", "HIIT"},
	}
}

func TestSavePlan_Create(t *testing.T) {
	repo := newStubPlanRepo()
	uc := NewSavePlanUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), goldCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, "Gold", result.Name)
	assert.Equal(t, int64(49900), result.PriceCents)
	assert.Equal(t, 1, result.DurationMonths)
	assert.Equal(t, "month", result.DurationUnit)
	assert.NotEmpty(t, result.SID)
}

func TestSavePlan_DayDurationCanonicalizedToMonths(t *testing.T) {
	repo := newStubPlanRepo()
	uc := NewSavePlanUseCase(repo, logger.NewLogger())

	cmd := goldCommand()
	cmd.DurationValue = 30
	cmd.DurationUnit = "day"
	result, err := uc.Execute(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.DurationMonths)
	// The entered unit is not stored; the editor reopens in months.
	assert.Equal(t, "month", result.DurationUnit)
}

func TestSavePlan_ResaveIsIdempotent(t *testing.T) {
	repo := newStubPlanRepo()
	uc := NewSavePlanUseCase(repo, logger.NewLogger())

	cmd := goldCommand()
	cmd.DurationValue = 45
	cmd.DurationUnit = "day"
	created, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	require.Equal(t, 2, created.DurationMonths)

	// Re-save what the editor displays: 2 months. The stored duration must
	// not drift.
	resave := goldCommand()
	resave.SID = created.SID
	resave.DurationValue = created.DurationMonths
	resave.DurationUnit = created.DurationUnit
	updated, err := uc.Execute(context.Background(), resave)

	require.NoError(t, err)
	assert.Equal(t, 2, updated.DurationMonths)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestSavePlan_InvalidDurationUnit(t *testing.T) {
	repo := newStubPlanRepo()
	uc := NewSavePlanUseCase(repo, logger.NewLogger())

	cmd := goldCommand()
	cmd.DurationUnit = "fortnight"
	result, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, 0, repo.createCalls)
}

func TestSavePlan_ZeroDurationRejected(t *testing.T) {
	repo := newStubPlanRepo()
	uc := NewSavePlanUseCase(repo, logger.NewLogger())

	cmd := goldCommand()
	cmd.DurationValue = 0
	_, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestSavePlan_UpdateUnknownPlan(t *testing.T) {
	repo := newStubPlanRepo()
	uc := NewSavePlanUseCase(repo, logger.NewLogger())

	cmd := goldCommand()
	cmd.SID = "plan_missing00"
	result, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSavePlan_RepositoryFailureSurfaced(t *testing.T) {
	repo := newStubPlanRepo()
	repo.createErr = errors.New("connection reset")
	uc := NewSavePlanUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), goldCommand())

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeRepository, appErr.Type)
	assert.Contains(t, appErr.Details, "connection reset")
}
