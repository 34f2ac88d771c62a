package view

import (
	"strings"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
)

// servicePalette cycles through the icon tile colors.
var servicePalette = []string{
	"#f97316", "#3b82f6", "#22c55e", "#a855f7",
	"#ec4899", "#06b6d4", "#eab308", "#6366f1",
	"#14b8a6", "#ef4444", "#10b981", "#6b7280",
}

// ServiceRow is one line of the service breakdown.
type ServiceRow struct {
	Icon      string
	Service   string
	Cost      string
	Share     string
	Change    string
	Direction Direction
	Color     string
}

// ServiceIcon returns the two-letter tile label for a service name.
func ServiceIcon(service string) string {
	r := []rune(service)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

// ServiceRows builds one row per service, preserving order.
func ServiceRows(services []entity.ServiceCost) []ServiceRow {
	rows := make([]ServiceRow, 0, len(services))
	for i, s := range services {
		rows = append(rows, ServiceRow{
			Icon:      ServiceIcon(s.Service),
			Service:   s.Service,
			Cost:      Currency(s.Cost),
			Share:     Percent(s.Percentage),
			Change:    SignedPercent(s.Change),
			Direction: directionOf(s.Change),
			Color:     servicePalette[i%len(servicePalette)],
		})
	}
	return rows
}
