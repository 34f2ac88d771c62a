package repository

import (
	"context"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
)

// BillingRepository defines read access to billing data.
// Implemented by the static fixtures and by the HTTP API client.
type BillingRepository interface {
	GetAccounts(ctx context.Context) ([]entity.Account, error)
	// GetAccount returns types.ErrAccountNotFound for an unknown id.
	GetAccount(ctx context.Context, id string) (entity.Account, error)
	GetCostOverview(ctx context.Context) (entity.CostOverview, error)
	GetServiceBreakdown(ctx context.Context) ([]entity.ServiceCost, error)
	GetCostTrends(ctx context.Context) ([]entity.CostTrendPoint, error)
	GetBudgetAlerts(ctx context.Context) ([]entity.BudgetAlert, error)
	GetRegionalCosts(ctx context.Context) ([]entity.RegionalCost, error)
}
