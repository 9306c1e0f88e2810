package keywords

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel every construction-time configuration
// error wraps (errors.Is(err, ErrInvalidConfig) is true for all of them).
var ErrInvalidConfig = errors.New("keywords: invalid configuration")

var (
	ErrInvalidWindow    = errors.New("window size must be >= 2")
	ErrInvalidDamping   = errors.New("damping factor must be in (0, 1]")
	ErrInvalidNGram     = errors.New("n-gram size must be >= 1")
	ErrInvalidThreshold = errors.New("deduplication threshold must be in [0, 1]")
	ErrInvalidMaxIter   = errors.New("max iterations must be >= 1")
	ErrInvalidTolerance = errors.New("convergence tolerance must be > 0")
)

// invalidConfig wraps a specific reason under ErrInvalidConfig, so callers
// can either match the specific sentinel or the umbrella one.
func invalidConfig(reason error) error {
	return fmt.Errorf("keywords: %w: %w", ErrInvalidConfig, reason)
}
