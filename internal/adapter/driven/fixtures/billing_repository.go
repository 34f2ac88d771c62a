// Package fixtures serves the hardcoded billing data set.
package fixtures

import (
	"context"
	"fmt"
	"slices"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
)

// BillingRepositoryImpl implementa o BillingRepository sobre os dados estáticos.
// Every getter returns a copy; the fixtures are never mutated.
type BillingRepositoryImpl struct {
	data entity.Dashboard
}

// NewBillingRepository validates the fixtures and returns a repository over them.
func NewBillingRepository() (repository.BillingRepository, error) {
	return newBillingRepository(Dashboard())
}

func newBillingRepository(data entity.Dashboard) (*BillingRepositoryImpl, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid billing fixtures: %w", err)
	}
	return &BillingRepositoryImpl{data: data}, nil
}

// Dashboard returns a copy of the complete fixture set.
func Dashboard() entity.Dashboard {
	return entity.Dashboard{
		Accounts:         slices.Clone(accounts),
		CostOverview:     costOverview,
		ServiceBreakdown: slices.Clone(serviceBreakdown),
		CostTrends:       slices.Clone(costTrends),
		BudgetAlerts:     slices.Clone(budgetAlerts),
		RegionalCosts:    slices.Clone(regionalCosts),
	}
}

func (r *BillingRepositoryImpl) GetAccounts(ctx context.Context) ([]entity.Account, error) {
	return slices.Clone(r.data.Accounts), nil
}

func (r *BillingRepositoryImpl) GetAccount(ctx context.Context, id string) (entity.Account, error) {
	for _, account := range r.data.Accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return entity.Account{}, fmt.Errorf("%w: %s", types.ErrAccountNotFound, id)
}

func (r *BillingRepositoryImpl) GetCostOverview(ctx context.Context) (entity.CostOverview, error) {
	return r.data.CostOverview, nil
}

func (r *BillingRepositoryImpl) GetServiceBreakdown(ctx context.Context) ([]entity.ServiceCost, error) {
	return slices.Clone(r.data.ServiceBreakdown), nil
}

func (r *BillingRepositoryImpl) GetCostTrends(ctx context.Context) ([]entity.CostTrendPoint, error) {
	return slices.Clone(r.data.CostTrends), nil
}

func (r *BillingRepositoryImpl) GetBudgetAlerts(ctx context.Context) ([]entity.BudgetAlert, error) {
	return slices.Clone(r.data.BudgetAlerts), nil
}

func (r *BillingRepositoryImpl) GetRegionalCosts(ctx context.Context) ([]entity.RegionalCost, error) {
	return slices.Clone(r.data.RegionalCosts), nil
}
