package model

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedReport = errors.New("malformed report")
	ErrInvalidEvent    = errors.New("invalid event")
)

// Malformed wraps ErrMalformedReport with the scanner name and a reason.
func Malformed(t ReportType, format string, args ...any) error {
	return fmt.Errorf("%s %w: %s", t, ErrMalformedReport, fmt.Sprintf(format, args...))
}
