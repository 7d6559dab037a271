package utils

import (
	"fmt"
	"strings"
	"time"
)

// registryDateFormats are tried in order; the extract uses ISO dates but
// older files carry the French day-first layout.
var registryDateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	time.RFC3339,
}

// ParseDate converts a registry date field to a time.Time.
func ParseDate(val string) (time.Time, error) {
	v := strings.TrimSpace(val)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, f := range registryDateFormats {
		if t, err := time.Parse(f, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", v)
}

// NullableDate returns nil when the value is not a date, so it can be bound
// straight to a nullable SQL parameter.
func NullableDate(val string) interface{} {
	t, err := ParseDate(val)
	if err != nil {
		return nil
	}
	return t
}
