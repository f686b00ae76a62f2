package domain

import "time"

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Back-to-back stays (one check-out equal to the next check-in) do not overlap.
//
// Every overlap decision in the system goes through this predicate; the SQL
// store encodes the same rule as `check_in < ? AND ? < check_out`.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
