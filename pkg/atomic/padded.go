package atomic

import (
	"golang.org/x/sys/cpu"
)

// PaddedInt is an Int that is surrounded by padding, so that it
// occupies its own cache line. This prevents false sharing when many
// goroutines each update their own counter.
type PaddedInt struct {
	_ cpu.CacheLinePad
	Int
	_ cpu.CacheLinePad
}
