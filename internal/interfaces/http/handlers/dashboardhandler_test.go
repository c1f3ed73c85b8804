package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dashboardUsecases "gymdesk/internal/application/dashboard/usecases"
	"gymdesk/internal/interfaces/http/handlers/testutil"
	"gymdesk/internal/shared/errors"
)

type mockGetOverviewUC struct {
	result *dashboardUsecases.OverviewDTO
	err    error
}

func (m *mockGetOverviewUC) Execute(ctx context.Context) (*dashboardUsecases.OverviewDTO, error) {
	return m.result, m.err
}

func TestDashboardHandler_GetOverview_Success(t *testing.T) {
	mockUC := &mockGetOverviewUC{result: &dashboardUsecases.OverviewDTO{
		TotalMembers:      42,
		ActiveMembers:     30,
		ExpiringMembers:   5,
		ExpiredMembers:    7,
		ActivePlans:       3,
		RevenueMonthCents: 149700,
	}}
	handler := NewDashboardHandler(mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/dashboard", nil)

	handler.GetOverview(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var overview dashboardUsecases.OverviewDTO
	require.NoError(t, json.Unmarshal(resp.Data, &overview))
	assert.Equal(t, int64(42), overview.TotalMembers)
	assert.Equal(t, int64(149700), overview.RevenueMonthCents)
}

func TestDashboardHandler_GetOverview_RepositoryFailure(t *testing.T) {
	mockUC := &mockGetOverviewUC{err: errors.NewRepositoryError("failed to count members", stderrors.New("connection refused"))}
	handler := NewDashboardHandler(mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/dashboard", nil)

	handler.GetOverview(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
