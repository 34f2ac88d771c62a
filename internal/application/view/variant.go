package view

import "github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"

// Variant is the badge style a value is rendered with.
type Variant string

const (
	VariantSuccess     Variant = "success"
	VariantWarning     Variant = "warning"
	VariantDestructive Variant = "destructive"
	VariantInfo        Variant = "info"
)

// Direction is the sign of a change.
type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

func directionOf(v float64) Direction {
	switch {
	case v > 0:
		return Up
	case v < 0:
		return Down
	default:
		return Flat
	}
}

// StatusVariant maps an account status to its badge.
func StatusVariant(status entity.AccountStatus) Variant {
	switch status {
	case entity.AccountWarning:
		return VariantWarning
	case entity.AccountCritical:
		return VariantDestructive
	default:
		return VariantSuccess
	}
}

// SeverityVariant maps an alert severity to its badge.
func SeverityVariant(severity entity.AlertSeverity) Variant {
	switch severity {
	case entity.SeverityCritical:
		return VariantDestructive
	case entity.SeverityWarning:
		return VariantWarning
	default:
		return VariantInfo
	}
}

// BudgetVariant grades a percentage of budget used.
func BudgetVariant(percent float64) Variant {
	switch {
	case percent >= 100:
		return VariantDestructive
	case percent >= 90:
		return VariantWarning
	default:
		return VariantSuccess
	}
}
