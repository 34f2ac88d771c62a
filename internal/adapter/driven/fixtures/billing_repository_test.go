package fixtures

import (
	"context"
	"testing"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *BillingRepositoryImpl {
	t.Helper()
	repo, err := newBillingRepository(Dashboard())
	require.NoError(t, err)
	return repo
}

func TestFixtureSizes(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	accounts, err := repo.GetAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 5)

	services, err := repo.GetServiceBreakdown(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 13)

	trends, err := repo.GetCostTrends(ctx)
	require.NoError(t, err)
	assert.Len(t, trends, 7)

	alerts, err := repo.GetBudgetAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, 4)

	regions, err := repo.GetRegionalCosts(ctx)
	require.NoError(t, err)
	assert.Len(t, regions, 6)

	overview, err := repo.GetCostOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 899447.78, overview.TotalMonthlySpend)
	assert.Equal(t, 930000.0, overview.TotalBudget)
}

func TestGetAccount(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, want := range accounts {
		got, err := repo.GetAccount(ctx, want.ID)
		require.NoError(t, err, want.ID)
		assert.Equal(t, want, got)
	}

	for _, id := range []string{"", "acc-000", "acc-006", "ACC-001", "Production"} {
		_, err := repo.GetAccount(ctx, id)
		assert.ErrorIs(t, err, types.ErrAccountNotFound, id)
	}
}

func TestGettersReturnCopies(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.GetAccounts(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"
	first[0].Status = entity.AccountCritical

	second, err := repo.GetAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Production", second[0].Name)
	assert.Equal(t, entity.AccountWarning, second[0].Status)
	assert.Equal(t, "Production", accounts[0].Name)
}

func TestInvalidFixturesRejected(t *testing.T) {
	data := Dashboard()
	data.Accounts[1].Status = "unknown"

	_, err := newBillingRepository(data)
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)

	data = Dashboard()
	data.BudgetAlerts[0].Severity = "urgent"

	_, err = newBillingRepository(data)
	assert.ErrorIs(t, err, entity.ErrInvalidSeverity)
}
