package utils

import "fmt"

// FormatSize renders a byte count for upload listings: B under 1 KiB, one
// decimal of KB under 1 MiB, one decimal of MB above.
func FormatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	if bytes < 1048576 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/1048576)
}
