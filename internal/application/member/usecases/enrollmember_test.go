package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/plan"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// =====================================================================
// Stub repositories with call counters
// =====================================================================

type stubMemberRepo struct {
	createCalls int
	createErr   error
	members     []*member.Member
	nextID      uint
}

func (s *stubMemberRepo) Create(_ context.Context, m *member.Member) error {
	s.createCalls++
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	if err := m.SetID(s.nextID); err != nil {
		return err
	}
	s.members = append(s.members, m)
	return nil
}

func (s *stubMemberRepo) GetByID(_ context.Context, id uint) (*member.Member, error) {
	for _, m := range s.members {
		if m.ID() == id {
			return m, nil
		}
	}
	return nil, nil
}

func (s *stubMemberRepo) GetBySID(_ context.Context, sid string) (*member.Member, error) {
	for _, m := range s.members {
		if m.SID() == sid {
			return m, nil
		}
	}
	return nil, nil
}

func (s *stubMemberRepo) GetByEmail(_ context.Context, email string) (*member.Member, error) {
	for _, m := range s.members {
		if m.Email() == email {
			return m, nil
		}
	}
	return nil, nil
}

func (s *stubMemberRepo) Update(_ context.Context, _ *member.Member) error { return nil }
func (s *stubMemberRepo) Delete(_ context.Context, _ uint) error           { return nil }

func (s *stubMemberRepo) List(_ context.Context, _ member.Filter) ([]*member.Member, int64, error) {
	return s.members, int64(len(s.members)), nil
}

func (s *stubMemberRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.members)), nil
}

type stubAssignmentRepo struct {
	createCalls int
	createErr   error
	updateCalls int
	updateErr   error
	assignments []*member.Assignment
	nextID      uint
}

func (s *stubAssignmentRepo) Create(_ context.Context, a *member.Assignment) error {
	s.createCalls++
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	if err := a.SetID(s.nextID); err != nil {
		return err
	}
	s.assignments = append(s.assignments, a)
	return nil
}

func (s *stubAssignmentRepo) GetByID(_ context.Context, id uint) (*member.Assignment, error) {
	for _, a := range s.assignments {
		if a.ID() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (s *stubAssignmentRepo) GetActiveByMemberID(_ context.Context, memberID uint) (*member.Assignment, error) {
	for _, a := range s.assignments {
		if a.MemberID() == memberID && a.IsActive() {
			return a, nil
		}
	}
	return nil, nil
}

func (s *stubAssignmentRepo) GetByMemberID(_ context.Context, memberID uint) ([]*member.Assignment, error) {
	var out []*member.Assignment
	for _, a := range s.assignments {
		if a.MemberID() == memberID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAssignmentRepo) Update(_ context.Context, _ *member.Assignment) error {
	s.updateCalls++
	return s.updateErr
}

func (s *stubAssignmentRepo) FindActiveEndingBetween(_ context.Context, from, to time.Time) ([]*member.Assignment, error) {
	var out []*member.Assignment
	for _, a := range s.assignments {
		if a.IsActive() && !a.EndDate().Before(from) && !a.EndDate().After(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAssignmentRepo) FindActiveExpired(_ context.Context, now time.Time) ([]*member.Assignment, error) {
	var out []*member.Assignment
	for _, a := range s.assignments {
		if a.IsActive() && a.IsExpiredAt(now) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAssignmentRepo) CountByPlanID(_ context.Context, _ uint) (int64, error) { return 0, nil }
func (s *stubAssignmentRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, a := range s.assignments {
		if a.IsActive() {
			n++
		}
	}
	return n, nil
}

type stubPlanRepo struct {
	getCalls   int
	getByIDErr error
	plans      map[string]*plan.Plan
}

func (s *stubPlanRepo) Create(_ context.Context, _ *plan.Plan) error { return nil }
func (s *stubPlanRepo) GetByID(_ context.Context, id uint) (*plan.Plan, error) {
	if s.getByIDErr != nil {
		return nil, s.getByIDErr
	}
	for _, p := range s.plans {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubPlanRepo) GetBySID(_ context.Context, sid string) (*plan.Plan, error) {
	s.getCalls++
	return s.plans[sid], nil
}

func (s *stubPlanRepo) Update(_ context.Context, _ *plan.Plan) error { return nil }
func (s *stubPlanRepo) Delete(_ context.Context, _ uint) error       { return nil }
func (s *stubPlanRepo) GetAllActive(_ context.Context) ([]*plan.Plan, error) {
	return nil, nil
}
func (s *stubPlanRepo) List(_ context.Context, _ plan.Filter) ([]*plan.Plan, int64, error) {
	return nil, 0, nil
}

// --- helpers ---

func monthlyPlan(t *testing.T, months int) *plan.Plan {
	t.Helper()
	d, err := plan.NewDuration(months, plan.UnitMonth)
	require.NoError(t, err)
	p, err := plan.NewPlan("Gold", "desc", 49900, d, []string{"Yoga", "HIIT"})
	require.NoError(t, err)
	require.NoError(t, p.SetID(1))
	return p
}

func newEnrollFixture(t *testing.T) (*EnrollMemberUseCase, *stubMemberRepo, *stubAssignmentRepo, *stubPlanRepo, *plan.Plan) {
	t.Helper()
	p := monthlyPlan(t, 1)
	memberRepo := &stubMemberRepo{}
	assignmentRepo := &stubAssignmentRepo{}
	planRepo := &stubPlanRepo{plans: map[string]*plan.Plan{p.SID(): p}}
	uc := NewEnrollMemberUseCase(memberRepo, assignmentRepo, planRepo, logger.NewLogger())
	return uc, memberRepo, assignmentRepo, planRepo, p
}

func validCommand(planSID string) EnrollMemberCommand {
	return EnrollMemberCommand{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		PlanSID:   planSID,
	}
}

// =====================================================================
// TestEnrollMember_*
// =====================================================================

func TestEnrollMember_Success(t *testing.T) {
	uc, memberRepo, assignmentRepo, _, p := newEnrollFixture(t)

	result, err := uc.Execute(context.Background(), validCommand(p.SID()))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, memberRepo.createCalls)
	assert.Equal(t, 1, assignmentRepo.createCalls)
	assert.Equal(t, "Ada", result.Member.FirstName)
	assert.Equal(t, string(member.StatusActive), result.Member.Status)
	require.NotNil(t, result.Assignment)
	assert.Equal(t, p.SID(), result.Assignment.PlanSID)
	assert.Empty(t, result.Warning)

	// End date is start + 1 month.
	require.Len(t, assignmentRepo.assignments, 1)
	a := assignmentRepo.assignments[0]
	assert.Equal(t, a.StartDate().AddDate(0, 1, 0), a.EndDate())
}

func TestEnrollMember_MissingEmail_NoRepositoryCalls(t *testing.T) {
	uc, memberRepo, assignmentRepo, planRepo, p := newEnrollFixture(t)

	cmd := validCommand(p.SID())
	cmd.Email = ""
	result, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, 0, memberRepo.createCalls)
	assert.Equal(t, 0, assignmentRepo.createCalls)
	assert.Equal(t, 0, planRepo.getCalls)
}

func TestEnrollMember_MissingPlan_NoRepositoryCalls(t *testing.T) {
	uc, memberRepo, assignmentRepo, planRepo, _ := newEnrollFixture(t)

	cmd := validCommand("")
	result, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, 0, memberRepo.createCalls)
	assert.Equal(t, 0, assignmentRepo.createCalls)
	assert.Equal(t, 0, planRepo.getCalls)
}

func TestEnrollMember_UnknownPlan_NoMemberCreated(t *testing.T) {
	uc, memberRepo, assignmentRepo, _, _ := newEnrollFixture(t)

	result, err := uc.Execute(context.Background(), validCommand("plan_missing0"))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, 0, memberRepo.createCalls)
	assert.Equal(t, 0, assignmentRepo.createCalls)
}

func TestEnrollMember_InactivePlanRejected(t *testing.T) {
	uc, memberRepo, _, planRepo, p := newEnrollFixture(t)
	p.Deactivate()
	planRepo.plans[p.SID()] = p

	result, err := uc.Execute(context.Background(), validCommand(p.SID()))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, 0, memberRepo.createCalls)
}

func TestEnrollMember_MemberInsertFails_NothingPersisted(t *testing.T) {
	uc, memberRepo, assignmentRepo, _, p := newEnrollFixture(t)
	memberRepo.createErr = errors.New("connection reset")

	result, err := uc.Execute(context.Background(), validCommand(p.SID()))

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeRepository, appErr.Type)
	// The storage report is surfaced verbatim.
	assert.Contains(t, appErr.Details, "connection reset")
	assert.Equal(t, 0, assignmentRepo.createCalls)
	assert.Empty(t, memberRepo.members)
}

func TestEnrollMember_AssignmentInsertFails_MemberKept(t *testing.T) {
	uc, memberRepo, assignmentRepo, _, p := newEnrollFixture(t)
	assignmentRepo.createErr = errors.New("disk full")

	result, err := uc.Execute(context.Background(), validCommand(p.SID()))

	require.Error(t, err)
	assert.True(t, apperrors.IsPartialFailureError(err))

	// The member row was not rolled back: no compensating delete.
	assert.Equal(t, 1, memberRepo.createCalls)
	require.Len(t, memberRepo.members, 1)
	assert.Equal(t, "ada@example.com", memberRepo.members[0].Email())

	// The partial result still carries the created member plus a warning.
	require.NotNil(t, result)
	require.NotNil(t, result.Member)
	assert.NotEmpty(t, result.Warning)
	assert.Nil(t, result.Assignment)
}

func TestEnrollMember_ExplicitStartDate(t *testing.T) {
	uc, _, assignmentRepo, _, p := newEnrollFixture(t)

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	cmd := validCommand(p.SID())
	cmd.StartDate = &start

	_, err := uc.Execute(context.Background(), cmd)

	require.NoError(t, err)
	require.Len(t, assignmentRepo.assignments, 1)
	a := assignmentRepo.assignments[0]
	assert.Equal(t, start, a.StartDate())
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), a.EndDate())
}
