package constants

// Multiplier Suffixes
//
// NUM arguments accept two families of units. The traditional single-letter
// units are binary (K, M, G); the two-letter units are decimal (kB, MB, GB).
// Both families are kept exactly as documented in the help text.
const (
	// Block is the value of the "b" suffix (512 bytes, one traditional disk block).
	Block = 512

	// KB is the value of the "kB" suffix (1,000).
	KB = 1000

	// KiB is the value of the "K" suffix (1,024).
	KiB = 1024

	// MB is the value of the "MB" suffix (1,000,000).
	MB = 1000 * KB

	// MiB is the value of the "M" suffix (1,048,576).
	MiB = 1024 * KiB

	// GB is the value of the "GB" suffix (1,000,000,000).
	GB = 1000 * MB

	// GiB is the value of the "G" suffix (1,073,741,824).
	GiB = 1024 * MiB
)

// Buffer Sizes
//
// These control memory allocation for streaming copies.
// Memory use per source is bounded by these values whatever the input size.
const (
	// CopyBufferSize is the read buffer size used by the bounded copier.
	CopyBufferSize = 32 * KiB

	// OutputBufferSize is the write buffer size used for standard output.
	OutputBufferSize = 32 * KiB
)
