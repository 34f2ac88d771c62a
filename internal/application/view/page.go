// Package view turns dashboard entities into display-ready cards, rows and
// chart series. Every function is pure; renderers only lay the result out.
package view

import "github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"

const (
	Title          = "AWS Cost Dashboard"
	Subtitle       = "Enterprise Multi-Account View"
	LoadingMessage = "Loading AWS Cost Dashboard..."
	ErrorMessage   = "Failed to load dashboard data. Please try again later."
)

// Section headings, in render order.
const (
	SectionOverview = "Cost & Billing Overview"
	SectionAccounts = "Accounts Overview"
	SectionAlerts   = "Budget Alerts"
	SectionTrends   = "Cost Trends (Last 7 Months)"
	SectionServices = "Service Breakdown"
	SectionRegions  = "Regional Distribution"
)

// Page is the fully formatted dashboard.
type Page struct {
	Overview Overview
	Accounts []AccountCard
	Alerts   []AlertRow
	Trends   TrendChart
	Services []ServiceRow
	Regions  []RegionBar
}

// NewPage formats every widget of a loaded dashboard.
func NewPage(d entity.Dashboard) Page {
	return Page{
		Overview: NewOverview(d.CostOverview),
		Accounts: AccountCards(d.Accounts),
		Alerts:   AlertRows(d.BudgetAlerts),
		Trends:   NewTrendChart(d.CostTrends),
		Services: ServiceRows(d.ServiceBreakdown),
		Regions:  RegionBars(d.RegionalCosts),
	}
}
