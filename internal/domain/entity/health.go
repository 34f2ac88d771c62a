package entity

import "time"

// isoMillis matches JavaScript's Date.toISOString output.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

const StatusHealthy = "healthy"

// Health is the liveness payload returned by the API.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealth builds a healthy payload stamped with now in UTC.
func NewHealth(now time.Time) Health {
	return Health{
		Status:    StatusHealthy,
		Timestamp: now.UTC().Format(isoMillis),
	}
}
