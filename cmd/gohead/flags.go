package main

import (
	"errors"
	"flag"
	"io"
	"strconv"

	"github.com/sgaunet/gohead/pkg/config"
	"github.com/sgaunet/gohead/pkg/constants"
	"github.com/sgaunet/gohead/pkg/sizespec"
)

// errInvalidSize carries the rejected NUM so the diagnostic can quote it verbatim.
type errInvalidSize struct {
	token string
	err   error
}

func (e *errInvalidSize) Error() string {
	if errors.Is(e.err, sizespec.ErrNumericOverflow) {
		return "Invalid size identifier " + e.token + " (value too large)"
	}
	return "Invalid size identifier " + e.token
}

func (e *errInvalidSize) Unwrap() error {
	return e.err
}

// parseArgs turns the command line into a RunConfig and the list of sources.
// Flags apply in the order given and may follow file names; "--" ends option
// parsing. flag.ErrHelp is returned for --help.
func parseArgs(args []string) (config.RunConfig, []string, error) {
	rc := config.DefaultRunConfig()
	var sizeErr error

	fs := flag.NewFlagSet(constants.ProgramName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	size := func(apply func(sizespec.Size)) func(string) error {
		return func(token string) error {
			if !sizespec.IsValid(token) {
				sizeErr = &errInvalidSize{token: token, err: sizespec.ErrInvalidSizeSpec}
				return sizeErr
			}
			s, err := sizespec.Parse(token)
			if err != nil {
				sizeErr = &errInvalidSize{token: token, err: err}
				return sizeErr
			}
			apply(s)
			return nil
		}
	}
	bytes := size(rc.SetBytes)
	lines := size(rc.SetLines)
	// An explicit false value (-q=false) leaves the configuration alone.
	toggle := func(apply func()) func(string) error {
		return func(value string) error {
			on, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			if on {
				apply()
			}
			return nil
		}
	}
	quiet := toggle(func() { rc.SetVerbose(false) })
	verbose := toggle(func() { rc.SetVerbose(true) })
	zero := toggle(rc.SetZeroTerminated)

	fs.Func("c", "print the first NUM bytes of each file", bytes)
	fs.Func("bytes", "print the first NUM bytes of each file", bytes)
	fs.Func("n", "print the first NUM lines instead of the first 10", lines)
	fs.Func("lines", "print the first NUM lines instead of the first 10", lines)
	fs.BoolFunc("q", "never print headers giving file names", quiet)
	fs.BoolFunc("quiet", "never print headers giving file names", quiet)
	fs.BoolFunc("v", "always print headers giving file names", verbose)
	fs.BoolFunc("verbose", "always print headers giving file names", verbose)
	fs.BoolFunc("z", "line delimiter is NUL, not newline", zero)
	fs.BoolFunc("zero-terminated", "line delimiter is NUL, not newline", zero)

	var files []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if sizeErr != nil {
				return rc, nil, sizeErr
			}
			return rc, nil, err
		}
		remaining := fs.Args()
		consumed := rest[:len(rest)-len(remaining)]
		if len(consumed) > 0 && consumed[len(consumed)-1] == "--" {
			files = append(files, remaining...)
			break
		}
		if len(remaining) == 0 {
			break
		}
		files = append(files, remaining[0])
		rest = remaining[1:]
	}
	return rc, files, nil
}

