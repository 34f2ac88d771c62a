package entity

import (
	"encoding/json"
	"fmt"
)

// AccountStatus é o estado do orçamento de uma conta.
type AccountStatus string

const (
	AccountHealthy  AccountStatus = "healthy"
	AccountWarning  AccountStatus = "warning"
	AccountCritical AccountStatus = "critical"
)

// Valid reports whether s belongs to the closed set of account statuses.
func (s AccountStatus) Valid() bool {
	switch s {
	case AccountHealthy, AccountWarning, AccountCritical:
		return true
	}
	return false
}

// UnmarshalJSON rejects statuses outside the closed set.
func (s *AccountStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status := AccountStatus(raw)
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	*s = status
	return nil
}

// Account represents one AWS account with its monthly budget and spend.
type Account struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	AccountNumber string        `json:"accountNumber"`
	MonthlyBudget float64       `json:"monthlyBudget"`
	CurrentSpend  float64       `json:"currentSpend"`
	Status        AccountStatus `json:"status"`
}

// Validate rejects a missing or unknown status.
func (a Account) Validate() error {
	if !a.Status.Valid() {
		return fmt.Errorf("account %s: %w: %q", a.ID, ErrInvalidStatus, a.Status)
	}
	return nil
}
