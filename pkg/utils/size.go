package utils

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count as a short human-readable string with one
// decimal place, e.g. "12.3 MB". Units step by 1024.
func FormatSize(sizeBytes int64) string {
	size := float64(sizeBytes)
	for _, unit := range sizeUnits {
		if size < 1024.0 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024.0
	}

	return fmt.Sprintf("%.1f TB", size)
}
