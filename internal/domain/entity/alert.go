package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// AlertSeverity classifies a budget alert.
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityInfo     AlertSeverity = "info"
)

// Valid reports whether s belongs to the closed set of severities.
func (s AlertSeverity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// UnmarshalJSON rejects severities outside the closed set.
func (s *AlertSeverity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	severity := AlertSeverity(raw)
	if !severity.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSeverity, raw)
	}
	*s = severity
	return nil
}

// BudgetAlert is a budget notification raised for an account.
// Account holds the account name, not its id.
type BudgetAlert struct {
	ID        string        `json:"id"`
	Account   string        `json:"account"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	Threshold float64       `json:"threshold"`
	Current   float64       `json:"current"`
	Timestamp time.Time     `json:"timestamp"`
}

// Validate rejects a missing or unknown severity.
func (a BudgetAlert) Validate() error {
	if !a.Severity.Valid() {
		return fmt.Errorf("alert %s: %w: %q", a.ID, ErrInvalidSeverity, a.Severity)
	}
	return nil
}
