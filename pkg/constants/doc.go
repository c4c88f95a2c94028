// Package constants provides centralized constants for the gohead project.
//
// This package consolidates the defaults, size multipliers, output formats and
// I/O limits used across the codebase into a single source of truth.
//
// Organization:
//   - defaults.go: run defaults (line count, program name)
//   - size.go: multiplier suffix values and I/O buffer sizes
//   - output.go: header and diagnostic formatting constants
//   - s3.go: S3 source constants (scheme, request limiter defaults)
//
// Modifying Constants:
// The size multipliers and output formats are part of the command-line contract.
// Scripts depend on them byte for byte. Before modifying:
//  1. Check the documentation comment for the contract it implements
//  2. Update the help text in cmd/gohead if a user-visible value changes
//  3. Update related tests
package constants
