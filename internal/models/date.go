package models

import (
	"errors"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ErrInvalidDate is returned when a date string matches none of the
// accepted layouts.
var ErrInvalidDate = errors.New("invalid date format")

// ParseDate accepts the date formats clients send: full RFC 3339, the
// datetime-local input format, or a plain calendar date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
