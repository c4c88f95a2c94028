// Package sizespec parses NUM arguments: a run of decimal digits followed by an
// optional multiplier suffix such as K or MB.
package sizespec

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/sgaunet/gohead/pkg/constants"
)

var (
	// ErrInvalidSizeSpec is returned when a token does not follow the NUM grammar.
	ErrInvalidSizeSpec = errors.New("invalid size identifier")
	// ErrNumericOverflow is returned when a valid token does not fit in 64 bits.
	ErrNumericOverflow = errors.New("size identifier out of range")
)

// suffixes maps each accepted suffix to its multiplier. Lookups are case-sensitive.
var suffixes = map[string]uint64{
	"b":  constants.Block,
	"kB": constants.KB,
	"K":  constants.KiB,
	"MB": constants.MB,
	"M":  constants.MiB,
	"GB": constants.GB,
	"G":  constants.GiB,
}

// Size is a validated count of boundary units. The zero value is a count of 0.
type Size struct {
	magnitude uint64
}

// Magnitude returns the count.
func (s Size) Magnitude() uint64 {
	return s.magnitude
}

func (s Size) String() string {
	return strconv.FormatUint(s.magnitude, 10)
}

// Multiplier returns the factor for suffix. The empty suffix has factor 1.
func Multiplier(suffix string) (uint64, bool) {
	if suffix == "" {
		return 1, true
	}
	m, ok := suffixes[suffix]
	return m, ok
}

// split cuts token into its digit run and suffix run. It reports false as soon
// as a digit follows a non-digit or a non-digit comes before any digit.
func split(token string) (digits, suffix string, ok bool) {
	end := 0
	for i := 0; i < len(token); i++ {
		c := token[i]
		if isDigit(c) {
			if end != i {
				return "", "", false
			}
			end = i + 1
			continue
		}
		if end == 0 {
			return "", "", false
		}
	}
	return token[:end], token[end:], true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsValid reports whether token is a well-formed size: at least one ASCII digit,
// then nothing or exactly one known suffix. Signs are not accepted.
func IsValid(token string) bool {
	digits, suffix, ok := split(token)
	if !ok || digits == "" {
		return false
	}
	_, ok = Multiplier(suffix)
	return ok
}

// Parse converts token into a Size. Callers are expected to check IsValid first
// to report bad input; Parse still refuses invalid tokens with ErrInvalidSizeSpec.
func Parse(token string) (Size, error) {
	if !IsValid(token) {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSizeSpec, token)
	}
	digits, suffix, _ := split(token)
	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Size{}, fmt.Errorf("%w: %q", ErrNumericOverflow, token)
		}
		return Size{}, fmt.Errorf("%w: %q: %w", ErrInvalidSizeSpec, token, err)
	}
	m, _ := Multiplier(suffix)
	hi, lo := bits.Mul64(value, m)
	if hi != 0 {
		return Size{}, fmt.Errorf("%w: %q", ErrNumericOverflow, token)
	}
	return Size{magnitude: lo}, nil
}

