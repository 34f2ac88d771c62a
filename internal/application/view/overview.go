package view

import "github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"

// Overview holds the four summary cards.
type Overview struct {
	TotalSpend      string
	Change          string
	ChangeDirection Direction

	Budget          string
	BudgetPercent   string
	BudgetVariant   Variant
	BudgetRemaining string
	BudgetBar       float64

	Forecast string
	Savings  string
}

// NewOverview formats the cost overview cards.
func NewOverview(o entity.CostOverview) Overview {
	direction := Down
	if o.ChangePercent > 0 {
		direction = Up
	}

	return Overview{
		TotalSpend:      Currency(o.TotalMonthlySpend),
		Change:          SignedPercent(o.ChangePercent),
		ChangeDirection: direction,
		Budget:          Currency(o.TotalBudget),
		BudgetPercent:   Percent(o.PercentOfBudget),
		BudgetVariant:   BudgetVariant(o.PercentOfBudget),
		BudgetRemaining: Currency(o.TotalBudget - o.TotalMonthlySpend),
		BudgetBar:       clampPercent(o.PercentOfBudget),
		Forecast:        Currency(o.ForecastedMonthEnd),
		Savings:         Currency(o.SavingsOpportunities),
	}
}
