package utils

import "fmt"

// FormatEntrySize converts a byte length into a human-readable unit string.
// Sizes below one kilobyte are printed as whole bytes; larger sizes carry a
// single decimal place, e.g. "10B", "1.5KB", "3.2MB".
func FormatEntrySize(sizeBytes int64) string {
	if sizeBytes < 0 {
		return "0B"
	}
	if sizeBytes < 1024 {
		return fmt.Sprintf("%dB", sizeBytes)
	}
	units := []string{"KB", "MB", "GB", "TB", "PB"}
	value := float64(sizeBytes) / 1024
	unitIndex := 0
	for value >= 1024 && unitIndex < len(units)-1 {
		value /= 1024
		unitIndex++
	}
	return fmt.Sprintf("%.1f%s", value, units[unitIndex])
}
