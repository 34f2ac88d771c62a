package view

import (
	"math"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
)

// AccountCard is one account tile.
type AccountCard struct {
	ID            string
	Name          string
	AccountNumber string
	Status        entity.AccountStatus
	Variant       Variant
	Spend         string
	Budget        string
	Remaining     string
	Usage         string
	UsagePercent  float64
	BarPercent    float64
}

// AccountCards builds one card per account, preserving order.
func AccountCards(accounts []entity.Account) []AccountCard {
	cards := make([]AccountCard, 0, len(accounts))
	for _, a := range accounts {
		var usage float64
		if a.MonthlyBudget > 0 {
			usage = a.CurrentSpend / a.MonthlyBudget * 100
		}
		cards = append(cards, AccountCard{
			ID:            a.ID,
			Name:          a.Name,
			AccountNumber: a.AccountNumber,
			Status:        a.Status,
			Variant:       StatusVariant(a.Status),
			Spend:         Currency(a.CurrentSpend),
			Budget:        Currency(a.MonthlyBudget),
			Remaining:     Currency(math.Max(0, a.MonthlyBudget-a.CurrentSpend)),
			Usage:         FixedPercent(usage),
			UsagePercent:  usage,
			BarPercent:    clampPercent(usage),
		})
	}
	return cards
}
