package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeBookingNumber trims and upper-cases a booking reference so lookups
// are insensitive to how the guest typed it.
func NormalizeBookingNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
