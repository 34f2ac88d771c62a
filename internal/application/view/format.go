package view

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	monthLayout     = "Jan 2006"
	timestampLayout = "Jan 2, 2006 15:04"
)

var gbPrinter = message.NewPrinter(language.BritishEnglish)

// Currency formats v as whole pounds with en-GB grouping, e.g. £487,235.
func Currency(v float64) string {
	rounded := decimal.NewFromFloat(v).Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + "£" + gbPrinter.Sprintf("%d", rounded.IntPart())
}

// CompactCurrency formats v in thousands for chart axes, e.g. £756k.
func CompactCurrency(v float64) string {
	thousands := decimal.NewFromFloat(v).Div(decimal.NewFromInt(1000)).Round(0)
	return "£" + thousands.String() + "k"
}

// Number prints v with the shortest representation, as JSON would.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Percent prints v followed by a percent sign without rounding.
func Percent(v float64) string {
	return Number(v) + "%"
}

// SignedPercent prefixes positive values with a plus sign.
func SignedPercent(v float64) string {
	if v > 0 {
		return "+" + Percent(v)
	}
	return Percent(v)
}

// FixedPercent rounds v to one decimal place.
func FixedPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// MonthLabel formats a trend date as e.g. "Jul 2024".
func MonthLabel(t time.Time) string {
	return t.UTC().Format(monthLayout)
}

// Timestamp formats an alert time as e.g. "Jan 5, 2025 10:30" in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
