package domain

import (
	"errors"
	"regexp"
	"time"
)

var ErrInvalidDate = errors.New("date must be in ISO 8601 format (YYYY-MM-DD)")

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate checks that s is a plausible YYYY-MM-DD calendar day.
// Dates are compared as opaque strings everywhere else; no timezone
// normalization happens here or anywhere downstream.
func ValidateDate(s string) error {
	if !dateRe.MatchString(s) {
		return ErrInvalidDate
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ErrInvalidDate
	}
	return nil
}
