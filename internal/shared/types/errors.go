package types

import "errors"

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrDashboardUnavailable = errors.New("dashboard data unavailable")
	ErrUnsupportedFormat    = errors.New("unsupported config file format")
)
