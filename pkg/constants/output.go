package constants

// Source Headers
//
// With more than one source (and unless -q is given), each source is preceded by
// a header line of the form HeaderPrefix + label + HeaderSuffix.
const (
	// HeaderPrefix opens a source header.
	HeaderPrefix = "====>"

	// HeaderSuffix closes a source header.
	HeaderSuffix = "<===="

	// StdinLabel is the header label used for standard input.
	StdinLabel = "Standard Input"

	// StdinArg is the positional argument that selects standard input.
	StdinArg = "-"
)
