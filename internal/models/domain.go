package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	PriorityMin     = 1
	PriorityMax     = 5
	DefaultPriority = 5

	// DateLayout is the calendar date format used for deadlines everywhere.
	DateLayout = "2006-01-02"
)

func IsValidPriority(value int) bool {
	return value >= PriorityMin && value <= PriorityMax
}

// ParsePriority parses a 1-5 priority. On failure it returns DefaultPriority
// alongside the error so interactive callers can fall back to it.
func ParsePriority(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return DefaultPriority, fmt.Errorf("priority is required")
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return DefaultPriority, fmt.Errorf("invalid priority: %s", value)
	}
	if !IsValidPriority(parsed) {
		return DefaultPriority, fmt.Errorf("priority out of range (%d-%d): %d", PriorityMin, PriorityMax, parsed)
	}
	return parsed, nil
}

// ParseDeadline parses a YYYY-MM-DD date. Blank input means no deadline.
func ParseDeadline(raw string) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return &parsed, nil
}

// FormatDeadline renders a deadline, or "" when there is none.
func FormatDeadline(deadline *time.Time) string {
	if deadline == nil {
		return ""
	}
	return deadline.Format(DateLayout)
}
