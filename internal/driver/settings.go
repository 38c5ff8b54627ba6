package driver

import (
	"fmt"

	"github.com/HF-Foundation/HF-CLI/internal/ir"
)

// Settings is the per-invocation compile configuration. It is
// validated once at the CLI boundary and shared read-only across all
// files.
type Settings struct {
	// OptLevel is the optimization level, 0 through 3.
	OptLevel uint8
	// KeepGoing compiles the remaining files after a per-file
	// failure instead of stopping at the first one.
	KeepGoing bool
	// Quiet suppresses per-file success lines on stdout.
	Quiet bool
}

// Validate rejects settings outside their closed ranges. It runs
// before any file is touched.
func (s Settings) Validate() error {
	if s.OptLevel > ir.MaxOptLevel {
		return fmt.Errorf("optimization level %d out of range [0, %d]", s.OptLevel, ir.MaxOptLevel)
	}
	return nil
}
