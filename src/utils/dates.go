package utils

import "time"

const ShortDashDateLayout = "2006-01-02"

// FormatShortDate renders a date the way the API serializes it.
func FormatShortDate(t time.Time) string {
	return t.Format(ShortDashDateLayout)
}

// FormatShortDatePtr renders a nullable date, keeping nil as nil.
func FormatShortDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(ShortDashDateLayout)
	return &s
}

// Today returns the current date in the API's date format.
func Today() string {
	return time.Now().Format(ShortDashDateLayout)
}
