package view

import "github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"

var regionPalette = []string{"#f59e0b", "#3b82f6", "#22c55e", "#8b5cf6", "#ec4899", "#14b8a6"}

// RegionBar is one bar of the regional distribution chart.
type RegionBar struct {
	Region string
	Name   string
	Cost   string
	Share  string
	Value  float64
	// Width is the bar length relative to the most expensive region, 0-100.
	Width float64
	Color string
}

// RegionBars builds one bar per region, preserving order.
func RegionBars(regions []entity.RegionalCost) []RegionBar {
	var maxCost float64
	for _, r := range regions {
		if r.Cost > maxCost {
			maxCost = r.Cost
		}
	}

	bars := make([]RegionBar, 0, len(regions))
	for i, r := range regions {
		var width float64
		if maxCost > 0 {
			width = clampPercent(r.Cost / maxCost * 100)
		}
		bars = append(bars, RegionBar{
			Region: r.Region,
			Name:   r.Name,
			Cost:   Currency(r.Cost),
			Share:  Percent(r.Percentage) + " of total",
			Value:  r.Cost,
			Width:  width,
			Color:  regionPalette[i%len(regionPalette)],
		})
	}
	return bars
}
