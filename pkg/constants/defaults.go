package constants

// Run Defaults.
const (
	// ProgramName is used in diagnostics and in the help text.
	ProgramName = "gohead"

	// DefaultLines is the number of lines printed when neither -n nor -c is given.
	DefaultLines = 10
)
