package entity

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid account status")
	ErrInvalidSeverity = errors.New("invalid alert severity")
)
