package entity

// CostOverview contains the aggregate spend figures shown at the top of the dashboard.
type CostOverview struct {
	TotalMonthlySpend    float64 `json:"totalMonthlySpend"`
	TotalBudget          float64 `json:"totalBudget"`
	PercentOfBudget      float64 `json:"percentOfBudget"`
	PreviousMonthSpend   float64 `json:"previousMonthSpend"`
	ChangePercent        float64 `json:"changePercent"`
	ForecastedMonthEnd   float64 `json:"forecastedMonthEnd"`
	SavingsOpportunities float64 `json:"savingsOpportunities"`
}
