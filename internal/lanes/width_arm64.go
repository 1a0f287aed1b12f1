//go:build arm64

package lanes

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		detectedWidth = 4
	}
}
