// Package util holds small helpers shared by the infra and usecase layers.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ContentHash returns the lowercase hex SHA256 digest of data.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// FormatBytes renders a size in binary units for logs, e.g. "1.5 KB".
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	value := float64(n) / unit
	suffix := 0
	for value >= unit && suffix < len(byteSuffixes)-1 {
		value /= unit
		suffix++
	}

	return fmt.Sprintf("%.1f %cB", value, byteSuffixes[suffix])
}

const byteSuffixes = "KMGTPE"
