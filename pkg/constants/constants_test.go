package constants_test

import (
	"testing"

	"github.com/sgaunet/gohead/pkg/constants"
)

func TestSizeConstants(t *testing.T) {
	// Verify multipliers match the documented suffix table
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"Block", constants.Block, 512},
		{"KB", constants.KB, 1000},
		{"KiB", constants.KiB, 1024},
		{"MB", constants.MB, 1000 * 1000},
		{"MiB", constants.MiB, 1024 * 1024},
		{"GB", constants.GB, 1000 * 1000 * 1000},
		{"GiB", constants.GiB, 1024 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

func TestBufferSizeConstants(t *testing.T) {
	if constants.CopyBufferSize != 32*constants.KiB {
		t.Errorf("CopyBufferSize = %d, want %d (32KiB)", constants.CopyBufferSize, 32*constants.KiB)
	}
	if constants.OutputBufferSize != 32*constants.KiB {
		t.Errorf("OutputBufferSize = %d, want %d (32KiB)", constants.OutputBufferSize, 32*constants.KiB)
	}
}

func TestOutputConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"HeaderPrefix", constants.HeaderPrefix, "====>"},
		{"HeaderSuffix", constants.HeaderSuffix, "<===="},
		{"StdinLabel", constants.StdinLabel, "Standard Input"},
		{"StdinArg", constants.StdinArg, "-"},
		{"S3Scheme", constants.S3Scheme, "s3://"},
		{"RedactedValue", constants.RedactedValue, "***REDACTED***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

func TestDefaultConstants(t *testing.T) {
	if constants.DefaultLines != 10 {
		t.Errorf("DefaultLines = %d, want 10", constants.DefaultLines)
	}
	if constants.DefaultS3RequestsPerSecond < 1 {
		t.Error("DefaultS3RequestsPerSecond should be at least 1")
	}
	if constants.DefaultS3RequestBurst < 1 {
		t.Error("DefaultS3RequestBurst should be at least 1")
	}
}
