package order

import (
	"fmt"
	"time"
)

// FormatOrderNo builds a human-readable order identifier from the product
// code, the order day and that day's sequence number, e.g. "TSH-29082026-003".
// The sequence is zero-padded to three digits and widens past the 999th
// order of a day, so identifiers never collide within a day.
func FormatOrderNo(code string, day time.Time, seq int) string {
	return fmt.Sprintf("%s-%02d%02d%04d-%03d", code, day.Day(), int(day.Month()), day.Year(), seq)
}
