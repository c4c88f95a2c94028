package config

import (
	"github.com/sgaunet/gohead/pkg/constants"
	"github.com/sgaunet/gohead/pkg/copier"
	"github.com/sgaunet/gohead/pkg/sizespec"
)

// RunConfig is what the copy loop needs to know. It is built once from the
// command line and passed by value afterwards.
type RunConfig struct {
	BoundaryKind copier.BoundaryKind
	Magnitude    uint64
	Verbose      bool
}

// DefaultRunConfig returns the configuration for a bare invocation: first 10
// lines, headers on when there is more than one source.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		BoundaryKind: copier.Line,
		Magnitude:    constants.DefaultLines,
		Verbose:      true,
	}
}

// SetBytes applies -c: count bytes.
func (c *RunConfig) SetBytes(size sizespec.Size) {
	c.BoundaryKind = copier.Byte
	c.Magnitude = size.Magnitude()
}

// SetLines applies -n. Byte counting switches to line counting; an earlier -z
// keeps counting NUL-terminated records.
func (c *RunConfig) SetLines(size sizespec.Size) {
	if c.BoundaryKind == copier.Byte {
		c.BoundaryKind = copier.Line
	}
	c.Magnitude = size.Magnitude()
}

// SetZeroTerminated applies -z.
func (c *RunConfig) SetZeroTerminated() {
	c.BoundaryKind = copier.ZeroDelimited
}

// SetVerbose applies -v (true) and -q (false). The last one given wins.
func (c *RunConfig) SetVerbose(verbose bool) {
	c.Verbose = verbose
}

// ShowHeaders reports whether headers are printed for n sources.
func (c RunConfig) ShowHeaders(n int) bool {
	return c.Verbose && n > 1
}
