package helper_util

import "time"

// timeLayout keeps fractional seconds at full width so stored timestamp
// strings sort lexicographically in chronological order. Neo4j orders
// string properties byte-wise, and RFC3339Nano trims trailing zeros,
// which breaks that property for timestamps within the same second.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTime renders t in UTC with fixed-width fractional seconds.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// Helper function to parse time
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err
}
