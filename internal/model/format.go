package model

import "fmt"

// FormatSize renders an installed size in MB with two decimals, matching
// the index's own reporting granularity. Unknown sizes render as "N/A".
func FormatSize(bytes int64) string {
	if bytes == SizeUnknown {
		return "N/A"
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}
