package view

import (
	"fmt"
	"math"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
)

// TrendSeries is one line of the cost trend chart.
type TrendSeries struct {
	Name   string
	Color  string
	Values []float64
}

// TrendChart is the cost trend line chart.
type TrendChart struct {
	Labels []string
	Series []TrendSeries
	// Changes holds the month-over-month change of the total, empty for the first month.
	Changes []string
	Max     float64
	Ticks   []string
}

const tickCount = 4

// NewTrendChart builds the trend chart; series order is Total, EC2, S3, RDS, Lambda.
func NewTrendChart(points []entity.CostTrendPoint) TrendChart {
	chart := TrendChart{
		Labels: make([]string, 0, len(points)),
		Series: []TrendSeries{
			{Name: "Total Cost", Color: "#f59e0b"},
			{Name: "EC2", Color: "#3b82f6"},
			{Name: "S3", Color: "#22c55e"},
			{Name: "RDS", Color: "#8b5cf6"},
			{Name: "Lambda", Color: "#ec4899"},
		},
		Changes: make([]string, 0, len(points)),
	}

	for i, p := range points {
		chart.Labels = append(chart.Labels, MonthLabel(p.Date.Time))
		for s, v := range []float64{p.Total, p.EC2, p.S3, p.RDS, p.Lambda} {
			chart.Series[s].Values = append(chart.Series[s].Values, v)
			if v > chart.Max {
				chart.Max = v
			}
		}

		change := ""
		if i > 0 {
			change = MonthOverMonth(points[i-1].Total, p.Total)
		}
		chart.Changes = append(chart.Changes, change)
	}

	for i := 0; i <= tickCount; i++ {
		chart.Ticks = append(chart.Ticks, CompactCurrency(chart.Max*float64(i)/tickCount))
	}

	return chart
}

// MonthOverMonth formats the relative change from prev to cur.
func MonthOverMonth(prev, cur float64) string {
	if prev < 0.01 {
		if cur < 0.01 {
			return "0%"
		}
		return "N/A"
	}

	change := (cur - prev) / prev * 100.0
	switch {
	case math.Abs(change) < 0.01:
		return "0%"
	case change > 999:
		return ">+999%"
	case change < -999:
		return ">-999%"
	case change > 0:
		return fmt.Sprintf("+%.2f%%", change)
	default:
		return fmt.Sprintf("%.2f%%", change)
	}
}
