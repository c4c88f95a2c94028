package constants

// S3 Sources.
const (
	// S3Scheme is the URI scheme that selects an S3 object as a source.
	S3Scheme = "s3://"

	// S3PathMinParts is the minimum number of path components for S3 URIs.
	// Format: bucket/key → 2 parts.
	S3PathMinParts = 2

	// DefaultS3RequestsPerSecond is the default rate of GetObject requests.
	DefaultS3RequestsPerSecond = 10

	// DefaultS3RequestBurst is the default burst of GetObject requests.
	DefaultS3RequestBurst = 1
)

// Configuration Redaction.
const (
	// RedactedValue is the placeholder for redacted credentials in logs/output.
	RedactedValue = "***REDACTED***"
)
