package view

import (
	"testing"
	"time"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{487234.56, "£487,235"},
		{500000, "£500,000"},
		{45234.00, "£45,234"},
		{12.5, "£13"},
		{0, "£0"},
		{-69447.78, "-£69,448"},
		{-0.2, "£0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.in), "Currency(%v)", tt.in)
	}
}

func TestCompactCurrency(t *testing.T) {
	assert.Equal(t, "£756k", CompactCurrency(756234.12))
	assert.Equal(t, "£0k", CompactCurrency(0))
	assert.Equal(t, "£900k", CompactCurrency(899500))
}

func TestPercentFormatting(t *testing.T) {
	assert.Equal(t, "96.7%", Percent(96.7))
	assert.Equal(t, "+9.2%", SignedPercent(9.2))
	assert.Equal(t, "-2.1%", SignedPercent(-2.1))
	assert.Equal(t, "0%", SignedPercent(0))
	assert.Equal(t, "97.4%", FixedPercent(97.446912))
}

func TestDateFormatting(t *testing.T) {
	assert.Equal(t, "Jul 2024", MonthLabel(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Jan 5, 2025 10:30", Timestamp(time.Date(2025, time.January, 5, 10, 30, 0, 0, time.UTC)))
}

func TestVariants(t *testing.T) {
	assert.Equal(t, VariantSuccess, StatusVariant(entity.AccountHealthy))
	assert.Equal(t, VariantWarning, StatusVariant(entity.AccountWarning))
	assert.Equal(t, VariantDestructive, StatusVariant(entity.AccountCritical))

	assert.Equal(t, VariantDestructive, SeverityVariant(entity.SeverityCritical))
	assert.Equal(t, VariantWarning, SeverityVariant(entity.SeverityWarning))
	assert.Equal(t, VariantInfo, SeverityVariant(entity.SeverityInfo))

	assert.Equal(t, VariantSuccess, BudgetVariant(89.9))
	assert.Equal(t, VariantWarning, BudgetVariant(90))
	assert.Equal(t, VariantDestructive, BudgetVariant(100))
}

func TestNewOverview(t *testing.T) {
	o := NewOverview(entity.CostOverview{
		TotalMonthlySpend:    899447.78,
		TotalBudget:          930000,
		PercentOfBudget:      96.7,
		ChangePercent:        9.2,
		ForecastedMonthEnd:   945000,
		SavingsOpportunities: 45234,
	})

	assert.Equal(t, "£899,448", o.TotalSpend)
	assert.Equal(t, "+9.2%", o.Change)
	assert.Equal(t, Up, o.ChangeDirection)
	assert.Equal(t, "£930,000", o.Budget)
	assert.Equal(t, "96.7%", o.BudgetPercent)
	assert.Equal(t, VariantWarning, o.BudgetVariant)
	assert.Equal(t, "£30,552", o.BudgetRemaining)
	assert.Equal(t, 96.7, o.BudgetBar)
	assert.Equal(t, "£945,000", o.Forecast)
	assert.Equal(t, "£45,234", o.Savings)

	over := NewOverview(entity.CostOverview{PercentOfBudget: 120, ChangePercent: 0})
	assert.Equal(t, 100.0, over.BudgetBar)
	assert.Equal(t, Down, over.ChangeDirection)
}

func TestAccountCards(t *testing.T) {
	cards := AccountCards([]entity.Account{
		{ID: "acc-001", Name: "Production", MonthlyBudget: 500000, CurrentSpend: 487234.56, Status: entity.AccountWarning},
		{ID: "acc-005", Name: "Machine Learning", MonthlyBudget: 150000, CurrentSpend: 163478.91, Status: entity.AccountCritical},
		{ID: "acc-zero", Name: "Empty", Status: entity.AccountHealthy},
	})
	require.Len(t, cards, 3)

	assert.Equal(t, "97.4%", cards[0].Usage)
	assert.Equal(t, "£12,765", cards[0].Remaining)
	assert.Equal(t, VariantWarning, cards[0].Variant)

	assert.Equal(t, "109.0%", cards[1].Usage)
	assert.Equal(t, "£0", cards[1].Remaining)
	assert.Equal(t, 100.0, cards[1].BarPercent)
	assert.Equal(t, VariantDestructive, cards[1].Variant)

	assert.Equal(t, "0.0%", cards[2].Usage)
}

func TestServiceRows(t *testing.T) {
	rows := ServiceRows([]entity.ServiceCost{
		{Service: "EC2", Cost: 245678.34, Percentage: 27.3, Change: 5.2},
		{Service: "DynamoDB", Cost: 54321.09, Percentage: 6.0, Change: -1.5},
		{Service: "IAM", Cost: 5432.10, Percentage: 0.6, Change: 0},
	})
	require.Len(t, rows, 3)

	assert.Equal(t, "EC", rows[0].Icon)
	assert.Equal(t, "+5.2%", rows[0].Change)
	assert.Equal(t, Up, rows[0].Direction)
	assert.Equal(t, "DY", rows[1].Icon)
	assert.Equal(t, Down, rows[1].Direction)
	assert.Equal(t, "6%", rows[1].Share)
	assert.Equal(t, Flat, rows[2].Direction)
	assert.Equal(t, "0%", rows[2].Change)
	assert.NotEqual(t, rows[0].Color, rows[1].Color)
}

func TestRegionBars(t *testing.T) {
	bars := RegionBars([]entity.RegionalCost{
		{Region: "us-east-1", Name: "N. Virginia", Cost: 200, Percentage: 66.7},
		{Region: "us-west-2", Name: "Oregon", Cost: 100, Percentage: 33.3},
	})
	require.Len(t, bars, 2)
	assert.Equal(t, 100.0, bars[0].Width)
	assert.Equal(t, 50.0, bars[1].Width)
	assert.Equal(t, "33.3% of total", bars[1].Share)
	assert.Equal(t, "#f59e0b", bars[0].Color)

	assert.Empty(t, RegionBars(nil))
}

func TestTrendChart(t *testing.T) {
	chart := NewTrendChart([]entity.CostTrendPoint{
		{Date: entity.NewDate(2024, time.July, 1), Total: 100000, EC2: 40000},
		{Date: entity.NewDate(2024, time.August, 1), Total: 110000, EC2: 42000},
	})

	assert.Equal(t, []string{"Jul 2024", "Aug 2024"}, chart.Labels)
	require.Len(t, chart.Series, 5)
	assert.Equal(t, "Total Cost", chart.Series[0].Name)
	assert.Equal(t, []float64{100000, 110000}, chart.Series[0].Values)
	assert.Equal(t, []float64{40000, 42000}, chart.Series[1].Values)
	assert.Equal(t, []string{"", "+10.00%"}, chart.Changes)
	assert.Equal(t, 110000.0, chart.Max)
	assert.Equal(t, "£110k", chart.Ticks[len(chart.Ticks)-1])
}

func TestMonthOverMonth(t *testing.T) {
	assert.Equal(t, "0%", MonthOverMonth(0, 0))
	assert.Equal(t, "N/A", MonthOverMonth(0, 10))
	assert.Equal(t, "0%", MonthOverMonth(100, 100))
	assert.Equal(t, "-50.00%", MonthOverMonth(100, 50))
	assert.Equal(t, ">+999%", MonthOverMonth(1, 100))
}

func TestNewPageOneWidgetPerRecord(t *testing.T) {
	page := NewPage(entity.Dashboard{
		Accounts:         make([]entity.Account, 5),
		ServiceBreakdown: make([]entity.ServiceCost, 13),
		BudgetAlerts:     make([]entity.BudgetAlert, 4),
		RegionalCosts:    make([]entity.RegionalCost, 6),
		CostTrends:       make([]entity.CostTrendPoint, 7),
	})

	assert.Len(t, page.Accounts, 5)
	assert.Len(t, page.Services, 13)
	assert.Len(t, page.Alerts, 4)
	assert.Len(t, page.Regions, 6)
	assert.Len(t, page.Trends.Labels, 7)
}
