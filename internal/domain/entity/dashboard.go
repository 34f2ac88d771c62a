package entity

// Dashboard é o conjunto completo de dados renderizado numa única vez pelo cliente.
type Dashboard struct {
	Accounts         []Account        `json:"accounts"`
	CostOverview     CostOverview     `json:"costOverview"`
	ServiceBreakdown []ServiceCost    `json:"serviceBreakdown"`
	CostTrends       []CostTrendPoint `json:"costTrends"`
	BudgetAlerts     []BudgetAlert    `json:"budgetAlerts"`
	RegionalCosts    []RegionalCost   `json:"regionalCosts"`
}

// Validate checks the closed-set fields of every record.
func (d Dashboard) Validate() error {
	for _, a := range d.Accounts {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	for _, alert := range d.BudgetAlerts {
		if err := alert.Validate(); err != nil {
			return err
		}
	}
	return nil
}
