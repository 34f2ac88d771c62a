package view

import "github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"

// AlertRow is one budget alert line.
type AlertRow struct {
	ID       string
	Account  string
	Message  string
	Title    string
	When     string
	Severity entity.AlertSeverity
	Variant  Variant
}

// AlertRows builds one row per alert, preserving order.
func AlertRows(alerts []entity.BudgetAlert) []AlertRow {
	rows := make([]AlertRow, 0, len(alerts))
	for _, a := range alerts {
		rows = append(rows, AlertRow{
			ID:       a.ID,
			Account:  a.Account,
			Message:  a.Message,
			Title:    a.Account + ": " + a.Message,
			When:     Timestamp(a.Timestamp),
			Severity: a.Severity,
			Variant:  SeverityVariant(a.Severity),
		})
	}
	return rows
}
