//go:build amd64

package lanes

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F:
		detectedWidth = 16
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		detectedWidth = 8
	default:
		detectedWidth = 4
	}
}
