package lanes

import (
	"os"
	"strconv"
)

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// detectedWidth is the lane width selected from CPU features
	// (set by platform-specific init, 1 on unknown platforms).
	detectedWidth = 1
)

// PreferredWidth returns the default lane width for float32 data on this
// CPU: 16 with AVX-512, 8 with AVX2+FMA, 4 with NEON, 1 otherwise.
// float64 callers may halve it; any width >= 1 is numerically identical.
//
// Set CLUSTERGO_LANES to a positive integer to override detection.
func PreferredWidth() int {
	if override := os.Getenv("CLUSTERGO_LANES"); override != "" {
		if w, err := strconv.Atoi(override); err == nil && w >= 1 {
			return w
		}
		// Invalid override - fall through to auto-detection
	}
	return detectedWidth
}
