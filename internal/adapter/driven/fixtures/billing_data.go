package fixtures

import (
	"time"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
)

// Dados simulados de uma empresa com várias contas AWS.

var accounts = []entity.Account{
	{ID: "acc-001", Name: "Production", AccountNumber: "123456789012", MonthlyBudget: 500000, CurrentSpend: 487234.56, Status: entity.AccountWarning},
	{ID: "acc-002", Name: "Staging", AccountNumber: "123456789013", MonthlyBudget: 50000, CurrentSpend: 32145.78, Status: entity.AccountHealthy},
	{ID: "acc-003", Name: "Development", AccountNumber: "123456789014", MonthlyBudget: 30000, CurrentSpend: 28934.21, Status: entity.AccountWarning},
	{ID: "acc-004", Name: "Data Analytics", AccountNumber: "123456789015", MonthlyBudget: 200000, CurrentSpend: 187654.32, Status: entity.AccountHealthy},
	{ID: "acc-005", Name: "Machine Learning", AccountNumber: "123456789016", MonthlyBudget: 150000, CurrentSpend: 163478.91, Status: entity.AccountCritical},
}

var costOverview = entity.CostOverview{
	TotalMonthlySpend:    899447.78,
	TotalBudget:          930000,
	PercentOfBudget:      96.7,
	PreviousMonthSpend:   823456.12,
	ChangePercent:        9.2,
	ForecastedMonthEnd:   945000,
	SavingsOpportunities: 45234.00,
}

var serviceBreakdown = []entity.ServiceCost{
	{Service: "EC2", Cost: 245678.34, Percentage: 27.3, Change: 5.2},
	{Service: "S3", Cost: 134567.89, Percentage: 15.0, Change: -2.1},
	{Service: "RDS", Cost: 123456.78, Percentage: 13.7, Change: 8.4},
	{Service: "Lambda", Cost: 87654.32, Percentage: 9.7, Change: 12.3},
	{Service: "CloudFront", Cost: 76543.21, Percentage: 8.5, Change: 3.6},
	{Service: "ECS", Cost: 65432.10, Percentage: 7.3, Change: 6.8},
	{Service: "DynamoDB", Cost: 54321.09, Percentage: 6.0, Change: -1.5},
	{Service: "ElastiCache", Cost: 43210.98, Percentage: 4.8, Change: 2.9},
	{Service: "Route53", Cost: 23456.78, Percentage: 2.6, Change: 0.4},
	{Service: "CloudWatch", Cost: 21098.76, Percentage: 2.3, Change: 4.1},
	{Service: "VPC", Cost: 12345.67, Percentage: 1.4, Change: -0.8},
	{Service: "IAM", Cost: 5432.10, Percentage: 0.6, Change: 0.0},
	{Service: "Others", Cost: 6249.76, Percentage: 0.7, Change: 1.2},
}

var costTrends = []entity.CostTrendPoint{
	{Date: entity.NewDate(2024, time.July, 1), Total: 756234.12, EC2: 198234.56, S3: 124567.89, RDS: 98765.43, Lambda: 67890.12, Others: 266776.12},
	{Date: entity.NewDate(2024, time.August, 1), Total: 789456.23, EC2: 215678.90, S3: 132456.78, RDS: 105678.90, Lambda: 72345.67, Others: 263296.98},
	{Date: entity.NewDate(2024, time.September, 1), Total: 812345.67, EC2: 223456.78, S3: 128901.23, RDS: 112345.67, Lambda: 78901.23, Others: 268740.76},
	{Date: entity.NewDate(2024, time.October, 1), Total: 823456.12, EC2: 234567.89, S3: 138567.89, RDS: 114567.89, Lambda: 81234.56, Others: 254517.89},
	{Date: entity.NewDate(2024, time.November, 1), Total: 845678.90, EC2: 238901.23, S3: 136789.01, RDS: 117890.12, Lambda: 83456.78, Others: 268641.76},
	{Date: entity.NewDate(2024, time.December, 1), Total: 867890.12, EC2: 242345.67, S3: 135678.90, RDS: 120123.45, Lambda: 85678.90, Others: 284063.20},
	{Date: entity.NewDate(2025, time.January, 1), Total: 899447.78, EC2: 245678.34, S3: 134567.89, RDS: 123456.78, Lambda: 87654.32, Others: 308090.45},
}

var budgetAlerts = []entity.BudgetAlert{
	{
		ID:        "alert-001",
		Account:   "Production",
		Severity:  entity.SeverityWarning,
		Message:   "Monthly spend at 97.4% of budget",
		Threshold: 95,
		Current:   97.4,
		Timestamp: time.Date(2025, time.January, 5, 10, 30, 0, 0, time.UTC),
	},
	{
		ID:        "alert-002",
		Account:   "Machine Learning",
		Severity:  entity.SeverityCritical,
		Message:   "Monthly spend exceeded budget by 9%",
		Threshold: 100,
		Current:   109.0,
		Timestamp: time.Date(2025, time.January, 5, 9, 15, 0, 0, time.UTC),
	},
	{
		ID:        "alert-003",
		Account:   "Development",
		Severity:  entity.SeverityWarning,
		Message:   "EC2 costs up 45% from last month",
		Threshold: 20,
		Current:   45,
		Timestamp: time.Date(2025, time.January, 5, 8, 0, 0, 0, time.UTC),
	},
	{
		ID:        "alert-004",
		Account:   "Data Analytics",
		Severity:  entity.SeverityInfo,
		Message:   "S3 Intelligent-Tiering saved £12,345 this month",
		Threshold: 0,
		Current:   12345,
		Timestamp: time.Date(2025, time.January, 4, 14, 20, 0, 0, time.UTC),
	},
}

var regionalCosts = []entity.RegionalCost{
	{Region: "us-east-1", Name: "N. Virginia", Cost: 342567.89, Percentage: 38.1},
	{Region: "us-west-2", Name: "Oregon", Cost: 234567.78, Percentage: 26.1},
	{Region: "eu-west-1", Name: "Ireland", Cost: 178901.23, Percentage: 19.9},
	{Region: "ap-southeast-1", Name: "Singapore", Cost: 87654.32, Percentage: 9.7},
	{Region: "eu-central-1", Name: "Frankfurt", Cost: 43210.98, Percentage: 4.8},
	{Region: "ap-northeast-1", Name: "Tokyo", Cost: 12545.58, Percentage: 1.4},
}
